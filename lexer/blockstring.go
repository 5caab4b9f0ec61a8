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

package lexer

import (
	"regexp"
	"strings"
)

var splitLinesRegex = regexp.MustCompile("\r\n|[\n\r]")

// DedentBlockString implements the GraphQL spec's BlockStringValue() static
// algorithm: it strips the common leading indentation from every line but
// the first and drops leading/trailing blank lines, similar to Python's
// docstring trim or Ruby's strip_heredoc. The raw token value (as produced
// by the lexer) keeps the surrounding `"""`-delimited text verbatim per
// §4.2; the parser applies this helper to the text between the delimiters
// when it builds a description or string value, not the lexer itself.
func DedentBlockString(raw string) string {
	lines := splitLinesRegex.Split(raw, -1)

	commonIndent := -1
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		indent := leadingWhitespaceLen(line)
		if indent < len(line) && (commonIndent == -1 || indent < commonIndent) {
			commonIndent = indent
			if commonIndent == 0 {
				break
			}
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			line := lines[i]
			if commonIndent > len(line) {
				lines[i] = ""
			} else {
				lines[i] = line[commonIndent:]
			}
		}
	}

	for len(lines) > 0 && isBlankLine(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlankLine(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func leadingWhitespaceLen(in string) (n int) {
	for _, ch := range in {
		if ch == ' ' || ch == '\t' {
			n++
		} else {
			break
		}
	}
	return
}

func isBlankLine(in string) bool {
	return leadingWhitespaceLen(in) == len(in)
}
