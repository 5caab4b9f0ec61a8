/**
 * Copyright (c) 2024, the mearie authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package source defines the Source, Span and Location records that every
// other package in this module builds on. No I/O happens here: a Source is
// always handed to the pipeline already resident in memory by a caller (the
// host-language extractor, a foreign-runtime binding, a test), per §1 and §6
// of the specification.
package source

import "fmt"

// Source is a single unit of GraphQL text together with enough bookkeeping
// to resolve absolute file/line/column information for diagnostics, even
// when the text was extracted from a larger host-language file.
type Source struct {
	// Code is the GraphQL text itself (an SDL document or an operation
	// document).
	Code string

	// FilePath is a caller-supplied label. It is never opened, read or
	// validated; it exists purely so Location values are meaningful to the
	// caller.
	FilePath string

	// StartLine is the 0-indexed line at which Code begins within FilePath.
	// Non-zero when Code was sliced out of a larger host file (e.g. a
	// template literal starting on line 40 of Foo.ts).
	StartLine uint32
}

// New creates a Source with no line offset and the placeholder FilePath
// "GraphQL request", for in-memory use (tests, ad-hoc documents).
func New(code string) Source {
	return Source{Code: code, FilePath: "GraphQL request"}
}

// Span is a byte half-open range [Start, End) into a Source's Code. Spans
// are cheap, comparable and copied by value throughout the AST.
type Span struct {
	Start uint32
	End   uint32
}

// Empty reports whether the span covers zero bytes (used for synthesized
// nodes that have no counterpart in the original text, e.g. fields injected
// by the transformer).
func (s Span) Empty() bool {
	return s.Start == s.End
}

// Text extracts the substring of src.Code that s covers.
func (s Span) Text(src Source) string {
	return src.Code[s.Start:s.End]
}

// Cover returns the smallest span that contains both s and other.
func (s Span) Cover(other Span) Span {
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

// Location is a resolved, human-readable position: a file path plus a
// 1-based line and, when known, a 1-based column.
type Location struct {
	FilePath string
	Line     uint32
	Column   uint32 // 0 means "unknown"
}

func (l Location) String() string {
	if l.Column == 0 {
		return fmt.Sprintf("%s:%d", l.FilePath, l.Line)
	}
	return fmt.Sprintf("%s:%d:%d", l.FilePath, l.Line, l.Column)
}

// LocationOf resolves the Location of a byte position within src by
// scanning for newlines, the same approach as a typical GraphQL source
// mapper: walk the text once, counting lines and columns up to pos.
func LocationOf(src Source, pos uint32) Location {
	var (
		line   uint32 = 1
		column uint32 = 1
	)

	code := src.Code
	if int(pos) > len(code) {
		pos = uint32(len(code))
	}

	var i uint32
	for i < pos {
		switch code[i] {
		case '\r':
			if i+1 < pos && code[i+1] == '\n' {
				i++
				if i == pos {
					line++
					column = 0
				}
			} else {
				line++
				column = 1
				i++
			}
		case '\n':
			line++
			column = 1
			i++
		default:
			column++
			i++
		}
	}

	return Location{
		FilePath: src.FilePath,
		Line:     src.StartLine + line,
		Column:   column,
	}
}

// LocationOfSpan resolves the Location of the start of span within src.
func LocationOfSpan(src Source, span Span) Location {
	return LocationOf(src, span.Start)
}
