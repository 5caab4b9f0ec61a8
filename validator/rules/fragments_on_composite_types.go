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

// FragmentsOnCompositeTypes implements "type condition must refer to an
// existing composite type" for both named fragment definitions and inline
// fragments.
type FragmentsOnCompositeTypes struct{}

// CheckFragment implements validator.FragmentRule.
func (FragmentsOnCompositeTypes) CheckFragment(ctx *validator.Context, frag *ast.FragmentDefinition) validator.Action {
	typeName := string(frag.TypeCondition.Name)
	if !ctx.Schema.HasType(typeName) {
		ctx.Errorf(frag.TypeCondition.Span_, "unknown type %q", typeName)
		return validator.Next
	}
	if !ctx.Schema.IsComposite(typeName) {
		ctx.Errorf(frag.TypeCondition.Span_, "fragment %q cannot condition on non composite type %q", frag.Name, typeName)
	}
	return validator.Next
}

// CheckInlineFragment implements validator.InlineFragmentRule.
func (FragmentsOnCompositeTypes) CheckInlineFragment(ctx *validator.Context, frag *ast.InlineFragment) validator.Action {
	if !frag.HasTypeCondition() {
		return validator.Next
	}
	typeName := string(frag.TypeCondition.Name)
	if !ctx.Schema.HasType(typeName) {
		ctx.Errorf(frag.TypeCondition.Span_, "unknown type %q", typeName)
		return validator.Next
	}
	if !ctx.Schema.IsComposite(typeName) {
		ctx.Errorf(frag.TypeCondition.Span_, "fragment cannot condition on non composite type %q", typeName)
	}
	return validator.Next
}
