// seehuhn.de/go/pdfsplice - merge and split PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pdfsplice

import (
	"seehuhn.de/go/pdf/pagetree"
)

// NumPages reports the number of pages in the given PDF file,
// decrypting it with password if the file is encrypted.
func NumPages(path, password string) (int, error) {
	r, err := openInput(path, password)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	return pagetree.NumPages(r)
}
