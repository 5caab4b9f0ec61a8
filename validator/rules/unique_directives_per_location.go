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

// UniqueDirectivesPerLocation implements "a directive that is not declared
// repeatable appears at most once at each location". Each directive-bearing
// node checks only its own directive list, since repeatability is a
// per-application-site concern, not a cross-node one.
type UniqueDirectivesPerLocation struct{}

func (UniqueDirectivesPerLocation) check(ctx *validator.Context, dirs ast.Directives) {
	seen := make(map[string]bool, len(dirs))
	for _, d := range dirs {
		name := string(d.Name)
		def := ctx.Schema.GetDirective(name)
		if def != nil && def.Repeatable {
			continue
		}
		if seen[name] {
			ctx.Errorf(d.Span_, "the directive %q can only be used once at this location", "@"+name)
		}
		seen[name] = true
	}
}

// CheckOperation implements validator.OperationRule.
func (r UniqueDirectivesPerLocation) CheckOperation(ctx *validator.Context, op *ast.OperationDefinition) validator.Action {
	r.check(ctx, op.Directives)
	return validator.Next
}

// CheckFragment implements validator.FragmentRule.
func (r UniqueDirectivesPerLocation) CheckFragment(ctx *validator.Context, frag *ast.FragmentDefinition) validator.Action {
	r.check(ctx, frag.Directives)
	return validator.Next
}

// CheckField implements validator.FieldRule.
func (r UniqueDirectivesPerLocation) CheckField(ctx *validator.Context, field *ast.Field) validator.Action {
	r.check(ctx, field.Directives)
	return validator.Next
}

// CheckFragmentSpread implements validator.FragmentSpreadRule.
func (r UniqueDirectivesPerLocation) CheckFragmentSpread(ctx *validator.Context, spread *ast.FragmentSpread) validator.Action {
	r.check(ctx, spread.Directives)
	return validator.Next
}

// CheckInlineFragment implements validator.InlineFragmentRule.
func (r UniqueDirectivesPerLocation) CheckInlineFragment(ctx *validator.Context, frag *ast.InlineFragment) validator.Action {
	r.check(ctx, frag.Directives)
	return validator.Next
}
