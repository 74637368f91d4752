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

// Package pagerange parses page range specifications like "1-3,7,9-".
//
// A specification is a comma-separated list of tokens.  Each token selects
// an inclusive range of 1-based page numbers:
//
//	N     page N
//	A-B   pages A through B
//	-B    pages 1 through B
//	A-    pages A through the last page
//
// Whitespace around tokens is ignored, and empty tokens are dropped.
// Ranges are returned in the order given, without de-duplication:
// repeated or overlapping tokens are deliberate and select pages more
// than once.
package pagerange

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is an inclusive interval of 1-based page numbers.
type Range struct {
	Start int
	End   int
}

// Len returns the number of pages in the range.
func (r Range) Len() int {
	return r.End - r.Start + 1
}

func (r Range) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// InvalidSpecError indicates that a page range specification is malformed
// or out of bounds.
type InvalidSpecError struct {
	// Token is the offending token.  If the specification contained no
	// tokens at all, Token is the complete specification.
	Token string

	// Reason is a human-readable description of the problem.
	Reason string
}

func (e *InvalidSpecError) Error() string {
	return e.Reason
}

// Parse parses a page range specification against a document with the
// given number of pages.  Every returned range r satisfies
// 1 <= r.Start <= r.End <= numPages.  On error, the returned error is of
// type [*InvalidSpecError].
func Parse(spec string, numPages int) ([]Range, error) {
	var res []Range
	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		r, err := parseToken(tok, numPages)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	if len(res) == 0 {
		return nil, &InvalidSpecError{
			Token:  spec,
			Reason: fmt.Sprintf("no pages matched ranges: %q", spec),
		}
	}
	return res, nil
}

func parseToken(tok string, numPages int) (Range, error) {
	invalid := &InvalidSpecError{
		Token:  tok,
		Reason: fmt.Sprintf("invalid range token: %q", tok),
	}

	if tok == "-" {
		return Range{}, invalid
	}

	var start, end int
	var err error
	switch {
	case strings.HasPrefix(tok, "-"): // -B
		start = 1
		end, err = atoi(tok[1:])
	case strings.HasSuffix(tok, "-"): // A-
		start, err = atoi(tok[:len(tok)-1])
		end = numPages
	case strings.Contains(tok, "-"): // A-B
		a, b, _ := strings.Cut(tok, "-")
		start, err = atoi(a)
		if err == nil {
			end, err = atoi(b)
		}
	default: // N
		start, err = atoi(tok)
		end = start
	}
	if err != nil {
		return Range{}, invalid
	}

	if start <= 0 || end <= 0 {
		return Range{}, &InvalidSpecError{
			Token:  tok,
			Reason: fmt.Sprintf("range must be positive: %q", tok),
		}
	}
	if start > end {
		return Range{}, &InvalidSpecError{
			Token:  tok,
			Reason: fmt.Sprintf("range start > end: %q", tok),
		}
	}
	if start > numPages || end > numPages {
		return Range{}, &InvalidSpecError{
			Token:  tok,
			Reason: fmt.Sprintf("range out of bounds for file with %d pages: %s", numPages, tok),
		}
	}
	return Range{Start: start, End: end}, nil
}

// atoi is strconv.Atoi with surrounding whitespace allowed, so that
// tokens like "5 - 7" parse the same way as "5-7".
func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
