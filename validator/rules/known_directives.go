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

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/validator"
)

// KnownDirectives implements "every directive name is either built-in or
// declared in the schema" and "every directive appears only at a location
// listed in its definition".
type KnownDirectives struct{}

// CheckDirective implements validator.DirectiveRule.
func (KnownDirectives) CheckDirective(ctx *validator.Context, loc validator.DirectiveLocation, dir *ast.Directive) validator.Action {
	def := ctx.Schema.GetDirective(string(dir.Name))
	if def == nil {
		ctx.Errorf(dir.Span_, "unknown directive %q", "@"+string(dir.Name))
		return validator.Next
	}

	for _, l := range def.Locations {
		if l == string(loc) {
			return validator.Next
		}
	}
	ctx.Errorf(dir.Span_, "directive %q may not be used on %s", "@"+string(dir.Name), loc)
	return validator.Next
}
