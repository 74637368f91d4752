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
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/pdf"

	"seehuhn.de/go/pdfsplice/internal/pdftest"
	"seehuhn.de/go/pdfsplice/pagerange"
)

// tenPages is the page width sequence of the standard test document.
var tenPages = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

func writeTestDoc(t *testing.T, dir string) string {
	t.Helper()
	fname := filepath.Join(dir, "doc.pdf")
	err := pdftest.Write(fname, tenPages, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestSplitDefaultNames(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDoc(t, dir)
	outDir := filepath.Join(dir, "out")

	err := Split(&SplitOptions{
		Input:  input,
		Ranges: "1-2,5",
		OutDir: outDir,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := pdftest.Widths(filepath.Join(outDir, "doc_p1-2.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{10, 20}, got); d != "" {
		t.Errorf("wrong pages in doc_p1-2.pdf (-want +got):\n%s", d)
	}

	got, err = pdftest.Widths(filepath.Join(outDir, "doc_p5.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{50}, got); d != "" {
		t.Errorf("wrong pages in doc_p5.pdf (-want +got):\n%s", d)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("wrong number of output files: got %d, expected 2", len(entries))
	}
}

func TestSplitOpenRanges(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDoc(t, dir)
	outDir := filepath.Join(dir, "out")

	err := Split(&SplitOptions{
		Input:  input,
		Ranges: "-3,9-",
		OutDir: outDir,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := pdftest.Widths(filepath.Join(outDir, "doc_p1-3.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{10, 20, 30}, got); d != "" {
		t.Errorf("wrong pages in doc_p1-3.pdf (-want +got):\n%s", d)
	}

	got, err = pdftest.Widths(filepath.Join(outDir, "doc_p9-10.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{90, 100}, got); d != "" {
		t.Errorf("wrong pages in doc_p9-10.pdf (-want +got):\n%s", d)
	}
}

func TestSplitOverlappingRanges(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDoc(t, dir)
	outDir := filepath.Join(dir, "out")

	// Overlapping ranges are legal and duplicate pages across the
	// output files.
	err := Split(&SplitOptions{
		Input:  input,
		Ranges: "1-3,2-4",
		OutDir: outDir,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := pdftest.Widths(filepath.Join(outDir, "doc_p1-3.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{10, 20, 30}, got); d != "" {
		t.Errorf("wrong pages in doc_p1-3.pdf (-want +got):\n%s", d)
	}

	got, err = pdftest.Widths(filepath.Join(outDir, "doc_p2-4.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{20, 30, 40}, got); d != "" {
		t.Errorf("wrong pages in doc_p2-4.pdf (-want +got):\n%s", d)
	}
}

func TestSplitNamePattern(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDoc(t, dir)
	outDir := filepath.Join(dir, "out")

	err := Split(&SplitOptions{
		Input:       input,
		Ranges:      "2-3,4",
		OutDir:      outDir,
		NamePattern: "{base}-{start}to{end}-{page}.pdf",
	})
	if err != nil {
		t.Fatal(err)
	}

	// {page} is empty for the multi-page segment.
	if _, err := os.Stat(filepath.Join(outDir, "doc-2to3-.pdf")); err != nil {
		t.Error(err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "doc-4to4-4.pdf")); err != nil {
		t.Error(err)
	}
}

func TestSegmentName(t *testing.T) {
	type testCase struct {
		name    string
		r       pagerange.Range
		pattern string
		want    string
	}
	testCases := []testCase{
		{
			name: "default single page",
			r:    pagerange.Range{Start: 5, End: 5},
			want: "doc_p5.pdf",
		},
		{
			name: "default multi page",
			r:    pagerange.Range{Start: 1, End: 3},
			want: "doc_p1-3.pdf",
		},
		{
			name:    "pattern single page",
			r:       pagerange.Range{Start: 7, End: 7},
			pattern: "{base}_{page}.pdf",
			want:    "doc_7.pdf",
		},
		{
			name:    "pattern page empty for multi page",
			r:       pagerange.Range{Start: 2, End: 4},
			pattern: "{base}_{page}.pdf",
			want:    "doc_.pdf",
		},
		{
			name:    "pattern start and end",
			r:       pagerange.Range{Start: 2, End: 4},
			pattern: "x{start}-{end}y",
			want:    "x2-4y",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := segmentName("doc", tc.r, tc.pattern)
			if got != tc.want {
				t.Errorf("wrong name: got %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestSplitDuplicateTargetNames(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDoc(t, dir)
	outDir := filepath.Join(dir, "out")

	// A pattern without {start}/{end}/{page} maps every segment to the
	// same file.  The collision check only guards against pre-existing
	// files, so the last segment wins.
	err := Split(&SplitOptions{
		Input:       input,
		Ranges:      "1,2",
		OutDir:      outDir,
		NamePattern: "{base}.pdf",
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := pdftest.Widths(filepath.Join(outDir, "doc.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{20}, got); d != "" {
		t.Errorf("wrong pages (-want +got):\n%s", d)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("wrong number of output files: got %d, expected 1", len(entries))
	}
}

func TestSplitCollisions(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDoc(t, dir)
	outDir := filepath.Join(dir, "out")

	opt := &SplitOptions{
		Input:  input,
		Ranges: "1-2,5,7",
		OutDir: outDir,
	}
	err := Split(opt)
	if err != nil {
		t.Fatal(err)
	}

	// remove one output so that only two of the three targets collide
	err = os.Remove(filepath.Join(outDir, "doc_p7.pdf"))
	if err != nil {
		t.Fatal(err)
	}

	err = Split(opt)
	var existsErr *ExistsError
	if !errors.As(err, &existsErr) {
		t.Fatalf("wrong error %T: %v", err, err)
	}
	want := []string{
		filepath.Join(outDir, "doc_p1-2.pdf"),
		filepath.Join(outDir, "doc_p5.pdf"),
	}
	if d := cmp.Diff(want, existsErr.Paths); d != "" {
		t.Errorf("wrong collision list (-want +got):\n%s", d)
	}

	// The collision check is a batch-level pre-check: the
	// non-colliding target must not have been written either.
	if _, err := os.Stat(filepath.Join(outDir, "doc_p7.pdf")); !os.IsNotExist(err) {
		t.Error("output file was written despite the collision")
	}
}

func TestSplitOverwrite(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDoc(t, dir)
	outDir := filepath.Join(dir, "out")

	target := filepath.Join(outDir, "doc_p5.pdf")
	if err := os.MkdirAll(outDir, 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(target, []byte("old"), 0666); err != nil {
		t.Fatal(err)
	}

	err := Split(&SplitOptions{
		Input:     input,
		Ranges:    "5",
		OutDir:    outDir,
		Overwrite: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := pdftest.Widths(target)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{50}, got); d != "" {
		t.Errorf("wrong pages (-want +got):\n%s", d)
	}
}

func TestSplitInvalidSpec(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDoc(t, dir)
	outDir := filepath.Join(dir, "out")

	err := Split(&SplitOptions{
		Input:  input,
		Ranges: "1-2,11",
		OutDir: outDir,
	})
	var specErr *pagerange.InvalidSpecError
	if !errors.As(err, &specErr) {
		t.Fatalf("wrong error %T: %v", err, err)
	}
	if specErr.Token != "11" {
		t.Errorf("wrong token: got %q, expected %q", specErr.Token, "11")
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output files were written despite the error: %v", entries)
	}
}

func TestSplitInputNotFound(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.pdf")

	err := Split(&SplitOptions{
		Input:  missing,
		Ranges: "1",
		OutDir: dir,
	})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("wrong error %T: %v", err, err)
	}
	if notFound.Path != missing {
		t.Errorf("wrong path: got %q, expected %q", notFound.Path, missing)
	}
}

func TestSplitEncrypted(t *testing.T) {
	writerOpt := &pdf.WriterOptions{
		UserPassword:  "secret",
		OwnerPassword: "hush",
	}
	dir := t.TempDir()
	input := filepath.Join(dir, "doc.pdf")
	outDir := filepath.Join(dir, "out")
	err := pdftest.Write(input, tenPages, writerOpt, nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("no password", func(t *testing.T) {
		err := Split(&SplitOptions{
			Input:  input,
			Ranges: "1-2",
			OutDir: outDir,
		})
		var pwErr *PasswordRequiredError
		if !errors.As(err, &pwErr) {
			t.Fatalf("wrong error %T: %v", err, err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		err := Split(&SplitOptions{
			Input:    input,
			Ranges:   "1-2",
			OutDir:   outDir,
			Password: "wrong",
		})
		var decErr *DecryptionError
		if !errors.As(err, &decErr) {
			t.Fatalf("wrong error %T: %v", err, err)
		}
	})

	t.Run("correct password", func(t *testing.T) {
		err := Split(&SplitOptions{
			Input:    input,
			Ranges:   "1-2",
			OutDir:   outDir,
			Password: "secret",
		})
		if err != nil {
			t.Fatal(err)
		}
		got, err := pdftest.Widths(filepath.Join(outDir, "doc_p1-2.pdf"))
		if err != nil {
			t.Fatal(err)
		}
		if d := cmp.Diff([]float64{10, 20}, got); d != "" {
			t.Errorf("wrong pages (-want +got):\n%s", d)
		}
	})
}

func TestSplitDefaultOutDir(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDoc(t, dir)

	// An empty OutDir means the current directory.
	t.Chdir(dir)

	err := Split(&SplitOptions{
		Input:  input,
		Ranges: "5",
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "doc_p5.pdf")); err != nil {
		t.Error(err)
	}
}
