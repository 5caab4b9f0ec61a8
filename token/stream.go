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

package token

import "github.com/devunt/mearie-sub001/source"

// Token is a single lexical token together with its location in the source
// and, for kinds that carry interpreted content (Name, Int, Float, String,
// BlockString), that content.
type Token struct {
	Kind  Kind
	Span  source.Span
	Value string
}

// Description renders a token for use inside error messages, e.g.
// `Name "hello"` or `!`.
func (t Token) Description() string {
	if t.Value != "" {
		return t.Kind.String() + ` "` + t.Value + `"`
	}
	return t.Kind.String()
}
