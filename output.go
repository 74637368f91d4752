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
	"os"

	"seehuhn.de/go/pdf"
)

// createOutput opens path for writing.  Unless overwrite is set, a
// pre-existing file is refused with [*ExistsError].
func createOutput(path string, overwrite bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, 0666)
	if err != nil {
		if os.IsExist(err) {
			return nil, &ExistsError{Paths: []string{path}}
		}
		return nil, err
	}
	return file, nil
}

// writePDF creates a PDF file at path and calls build to fill in its
// contents.  If anything goes wrong the partial output file is removed.
func writePDF(path string, overwrite bool, v pdf.Version, build func(out *pdf.Writer) error) error {
	file, err := createOutput(path, overwrite)
	if err != nil {
		return err
	}

	out, err := pdf.NewWriter(file, v, nil)
	if err == nil {
		err = build(out)
	}
	if err == nil {
		err = out.Close()
	}
	if err != nil {
		file.Close()
		os.Remove(path)
		return err
	}
	return file.Close()
}
