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
	"errors"
	"io/fs"
	"os"

	"seehuhn.de/go/pdf"
)

// openInput opens a PDF file for reading, decrypting it with password if
// the file is encrypted.  The caller must close the returned reader.
//
// A missing file is reported as [*NotFoundError].  An encrypted file
// with no password given is reported as [*PasswordRequiredError], and a
// rejected password as [*DecryptionError].
func openInput(path, password string) (*pdf.Reader, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, err
	}

	opt := &pdf.ReaderOptions{
		ReadPassword: func(_ []byte, try int) string {
			if try > 0 {
				// The password was already rejected once.  Giving up
				// makes pdf.Open fail with an authentication error.
				return ""
			}
			return password
		},
	}
	r, err := pdf.Open(path, opt)
	if err != nil {
		var authErr *pdf.AuthenticationError
		if errors.As(err, &authErr) {
			if password == "" {
				return nil, &PasswordRequiredError{Path: path}
			}
			return nil, &DecryptionError{Path: path}
		}
		return nil, err
	}
	return r, nil
}
