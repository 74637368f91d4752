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
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// MergeOptions describes a merge operation.
type MergeOptions struct {
	// Inputs lists the input files.  Pages appear in the output in this
	// order, and within each input in the input's own page order.
	Inputs []string

	// Output is the name of the merged file.  Missing parent
	// directories are created.
	Output string

	// Password is used to decrypt every encrypted input.  There are no
	// per-file passwords.
	Password string

	// Overwrite allows replacing an existing output file.
	Overwrite bool
}

// Merge concatenates the input files into a single output document.
// At least one input file is required.
//
// The document information dictionary of the output is copied from the
// first input; if the first input has none, the output has none, no
// matter what the other inputs contain.
func Merge(opt *MergeOptions) error {
	if len(opt.Inputs) == 0 {
		return errors.New("no input files given")
	}

	if !opt.Overwrite {
		if _, err := os.Stat(opt.Output); err == nil {
			return &ExistsError{Paths: []string{opt.Output}}
		}
	}

	var readers []*pdf.Reader
	defer func() {
		for _, r := range readers {
			r.Close()
		}
	}()
	for _, fname := range opt.Inputs {
		r, err := openInput(fname, opt.Password)
		if err != nil {
			return err
		}
		readers = append(readers, r)
	}

	// The output uses the highest PDF version found among the inputs.
	v := pdf.V1_0
	for _, r := range readers {
		if rv := r.GetMeta().Version; rv > v {
			v = rv
		}
	}

	if dir := filepath.Dir(opt.Output); dir != "." {
		err := os.MkdirAll(dir, 0777)
		if err != nil {
			return err
		}
	}

	return writePDF(opt.Output, opt.Overwrite, v, func(out *pdf.Writer) error {
		rm := pdf.NewResourceManager(out)
		tree := pagetree.NewWriter(out, rm)

		for i, r := range readers {
			numPages, err := pagetree.NumPages(r)
			if err != nil {
				return fmt.Errorf("%s: %w", opt.Inputs[i], err)
			}
			err = copyPages(out, tree, r, 0, numPages-1)
			if err != nil {
				return fmt.Errorf("%s: %w", opt.Inputs[i], err)
			}
		}

		treeRef, err := tree.Close()
		if err != nil {
			return err
		}
		err = rm.Close()
		if err != nil {
			return err
		}

		meta := out.GetMeta()
		meta.Catalog.Pages = treeRef
		meta.Info = readers[0].GetMeta().Info
		return nil
	})
}
