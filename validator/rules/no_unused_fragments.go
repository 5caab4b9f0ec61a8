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

package rules

import "github.com/devunt/mearie-sub001/validator"

// NoUnusedFragments implements "every declared fragment must be used at
// least once", checked once the whole run has finished walking every
// document (a spread in one document may use a fragment declared in
// another).
type NoUnusedFragments struct{}

// Finish implements validator.FinishRule.
func (NoUnusedFragments) Finish(ctx *validator.Context) {
	for _, frag := range ctx.Docs.Fragments() {
		if !ctx.FragmentUsed(string(frag.Name)) {
			ctx.Errorf(frag.Span_, "fragment %q is never used", frag.Name)
		}
	}
}
