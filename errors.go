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
	"strings"
)

// NotFoundError indicates that an input file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "input not found: " + e.Path
}

// PasswordRequiredError indicates that an input file is encrypted and no
// password was supplied.
type PasswordRequiredError struct {
	Path string
}

func (e *PasswordRequiredError) Error() string {
	return "file is encrypted: " + e.Path + " (use -password)"
}

// DecryptionError indicates that the supplied password was rejected by an
// encrypted input file.
type DecryptionError struct {
	Path string
}

func (e *DecryptionError) Error() string {
	return "failed to decrypt: " + e.Path + " (check -password)"
}

// ExistsError indicates that one or more planned output files already
// exist.  Paths lists every colliding file.
type ExistsError struct {
	Paths []string
}

func (e *ExistsError) Error() string {
	if len(e.Paths) == 1 {
		return "refusing to overwrite existing file: " + e.Paths[0] + " (use -overwrite)"
	}
	return "refusing to overwrite existing files:\n  " +
		strings.Join(e.Paths, "\n  ") +
		"\n(use -overwrite)"
}
