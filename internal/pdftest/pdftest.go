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

// Package pdftest creates small PDF files for use in tests.
package pdftest

import (
	"os"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// pageHeight is the height of all test pages, in PDF points.
const pageHeight = 842

// Write creates a PDF file at path with one blank page per entry of
// widths.  Page i has a MediaBox widths[i] points wide, so that tests
// can identify individual pages after merging or splitting.
//
// The writer options opt (e.g. for encryption) and the document
// information info may be nil.
func Write(path string, widths []float64, opt *pdf.WriterOptions, info *pdf.Info) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	out, err := pdf.NewWriter(file, pdf.V1_7, opt)
	if err != nil {
		file.Close()
		return err
	}

	rm := pdf.NewResourceManager(out)
	tree := pagetree.NewWriter(out, rm)
	for _, width := range widths {
		pageDict := pdf.Dict{
			"Type":     pdf.Name("Page"),
			"MediaBox": &pdf.Rectangle{URx: width, URy: pageHeight},
		}
		err = tree.AppendPageDict(out.Alloc(), pageDict)
		if err != nil {
			file.Close()
			return err
		}
	}
	treeRef, err := tree.Close()
	if err != nil {
		file.Close()
		return err
	}
	err = rm.Close()
	if err != nil {
		file.Close()
		return err
	}

	meta := out.GetMeta()
	meta.Catalog.Pages = treeRef
	meta.Info = info

	err = out.Close()
	if err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Widths returns the MediaBox widths of all pages of the PDF file at
// path, in page order.
func Widths(path string) ([]float64, error) {
	r, err := pdf.Open(path, nil)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	numPages, err := pagetree.NumPages(r)
	if err != nil {
		return nil, err
	}

	widths := make([]float64, numPages)
	for pageNo := range numPages {
		_, pageDict, err := pagetree.GetPage(r, pageNo)
		if err != nil {
			return nil, err
		}
		box, err := pdf.GetRectangle(r, pageDict["MediaBox"])
		if err != nil {
			return nil, err
		}
		widths[pageNo] = box.URx - box.LLx
	}
	return widths, nil
}

// Info returns the document information dictionary of the PDF file at
// path, or nil if the file has none.
func Info(path string) (*pdf.Info, error) {
	r, err := pdf.Open(path, nil)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.GetMeta().Info, nil
}
