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

// Package pdfsplice merges and splits PDF files.
//
// [Merge] concatenates a list of input files into one output document,
// keeping the document information of the first input.  [Split] copies
// page ranges of one input into separate output documents.  Page ranges
// are given in the syntax of package
// [seehuhn.de/go/pdfsplice/pagerange].
//
// All PDF reading and writing is done by seehuhn.de/go/pdf; this
// package only arranges which pages go where.  Failures are reported
// with typed errors ([*NotFoundError], [*PasswordRequiredError],
// [*DecryptionError], [*ExistsError]) so that callers can tell the
// cases apart without parsing messages.
package pdfsplice
