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
	"fmt"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// copyPages copies the pages firstPage..lastPage (0-based, inclusive)
// from r to the page tree of the output file, translating all object
// references into the output file.
func copyPages(out *pdf.Writer, tree *pagetree.Writer, r *pdf.Reader, firstPage, lastPage int) error {
	copier := pdf.NewCopier(out, r)
	for pageNo := firstPage; pageNo <= lastPage; pageNo++ {
		refIn, pageIn, err := pagetree.GetPage(r, pageNo)
		if err != nil {
			return fmt.Errorf("failed to get page %d: %w", pageNo+1, err)
		}

		// Annotations can refer to other pages and to the document
		// structure, which are not part of the copy.
		delete(pageIn, "Annots")

		pageOut, err := copier.CopyDict(pageIn)
		if err != nil {
			return fmt.Errorf("failed to copy page %d: %w", pageNo+1, err)
		}

		refOut := out.Alloc()
		if refIn != 0 {
			copier.Redirect(refIn, refOut)
		}

		err = tree.AppendPageDict(refOut, pageOut)
		if err != nil {
			return fmt.Errorf("failed to append page %d: %w", pageNo+1, err)
		}
	}
	return nil
}
