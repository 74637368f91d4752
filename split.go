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
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"

	"seehuhn.de/go/pdfsplice/pagerange"
)

// SplitOptions describes a split operation.
type SplitOptions struct {
	// Input is the file to split.
	Input string

	// Ranges is the page range specification, e.g. "1-3,7,9-".
	// See package [seehuhn.de/go/pdfsplice/pagerange] for the syntax.
	Ranges string

	// OutDir is the directory for the output files.  It is created if
	// missing.  The empty string means the current directory.
	OutDir string

	// NamePattern, if non-empty, determines the output file names.  The
	// placeholders {base}, {start}, {end} and {page} are replaced by the
	// input file name without extension, the first and last page of the
	// segment, and the page number for single-page segments ({page} is
	// empty for multi-page segments).
	//
	// If NamePattern is empty, single-page segments are named
	// "{base}_p{start}.pdf" and multi-page segments
	// "{base}_p{start}-{end}.pdf".
	NamePattern string

	// Password is used to decrypt the input if it is encrypted.
	Password string

	// Overwrite allows replacing existing output files.
	Overwrite bool
}

// A segment is one planned output file of a split operation.
type segment struct {
	pages  pagerange.Range
	target string
}

// Split writes one output file per page range of the specification.
//
// All output file names are planned, and checked against existing
// files, before anything is written: if any planned file exists and
// Overwrite is not set, Split fails with an [*ExistsError] listing
// every collision, and no file is written.
func Split(opt *SplitOptions) error {
	if _, err := os.Stat(opt.Input); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Path: opt.Input}
		}
		return err
	}

	outDir := opt.OutDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0777); err != nil {
		return err
	}

	r, err := openInput(opt.Input, opt.Password)
	if err != nil {
		return err
	}
	defer r.Close()

	numPages, err := pagetree.NumPages(r)
	if err != nil {
		return err
	}
	ranges, err := pagerange.Parse(opt.Ranges, numPages)
	if err != nil {
		return err
	}

	plan := planSegments(opt.Input, outDir, opt.NamePattern, ranges)

	if !opt.Overwrite {
		var clashes []string
		for _, seg := range plan {
			if _, err := os.Stat(seg.target); err == nil {
				clashes = append(clashes, seg.target)
			}
		}
		if len(clashes) > 0 {
			return &ExistsError{Paths: clashes}
		}
	}

	v := r.GetMeta().Version
	for _, seg := range plan {
		// The collision check above already enforced the overwrite
		// guard.  Targets are truncated here so that a pattern which
		// maps several segments to the same name lets the last
		// segment win instead of tripping over the batch's own
		// earlier output.
		err := writePDF(seg.target, true, v, func(out *pdf.Writer) error {
			rm := pdf.NewResourceManager(out)
			tree := pagetree.NewWriter(out, rm)

			err := copyPages(out, tree, r, seg.pages.Start-1, seg.pages.End-1)
			if err != nil {
				return err
			}

			treeRef, err := tree.Close()
			if err != nil {
				return err
			}
			err = rm.Close()
			if err != nil {
				return err
			}

			out.GetMeta().Catalog.Pages = treeRef
			return nil
		})
		if err != nil {
			return fmt.Errorf("%s: %w", seg.target, err)
		}
	}
	return nil
}

// planSegments computes the full list of output files before any write
// begins.
func planSegments(input, outDir, pattern string, ranges []pagerange.Range) []segment {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	plan := make([]segment, len(ranges))
	for i, pr := range ranges {
		plan[i] = segment{
			pages:  pr,
			target: filepath.Join(outDir, segmentName(base, pr, pattern)),
		}
	}
	return plan
}

// segmentName computes the file name for one output segment.
func segmentName(base string, r pagerange.Range, pattern string) string {
	if pattern == "" {
		if r.Start == r.End {
			return fmt.Sprintf("%s_p%d.pdf", base, r.Start)
		}
		return fmt.Sprintf("%s_p%d-%d.pdf", base, r.Start, r.End)
	}

	page := ""
	if r.Start == r.End {
		page = strconv.Itoa(r.Start)
	}
	name := strings.ReplaceAll(pattern, "{base}", base)
	name = strings.ReplaceAll(name, "{start}", strconv.Itoa(r.Start))
	name = strings.ReplaceAll(name, "{end}", strconv.Itoa(r.End))
	name = strings.ReplaceAll(name, "{page}", page)
	return name
}
