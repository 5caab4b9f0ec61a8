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

// KnownFragmentNames implements "every spread must resolve to a known
// fragment name".
type KnownFragmentNames struct{}

// CheckFragmentSpread implements validator.FragmentSpreadRule.
func (KnownFragmentNames) CheckFragmentSpread(ctx *validator.Context, spread *ast.FragmentSpread) validator.Action {
	if !ctx.Docs.HasFragment(string(spread.Name)) {
		ctx.Errorf(spread.Span_, "unknown fragment %q", spread.Name)
	}
	return validator.Next
}

// PossibleFragmentSpreads implements "a fragment spread at a location with
// parent type P targeting fragment type F is valid iff the possible types
// of F and of P overlap".
type PossibleFragmentSpreads struct{}

// CheckFragmentSpread implements validator.FragmentSpreadRule.
func (PossibleFragmentSpreads) CheckFragmentSpread(ctx *validator.Context, spread *ast.FragmentSpread) validator.Action {
	frag := ctx.Docs.GetFragment(string(spread.Name))
	if frag == nil {
		return validator.Next
	}
	parentType := ctx.ParentType()
	fragType := string(frag.TypeCondition.Name)
	if parentType == "" || !ctx.Schema.HasType(fragType) {
		return validator.Next
	}
	if !ctx.Schema.TypesOverlap(parentType, fragType) {
		ctx.Errorf(spread.Span_, "fragment %q cannot be spread here as objects of type %q can never be of type %q",
			spread.Name, parentType, fragType)
	}
	return validator.Next
}

// CheckInlineFragment implements validator.InlineFragmentRule: the same
// possible-types overlap check, for an inline fragment's own type
// condition against its enclosing parent type.
func (PossibleFragmentSpreads) CheckInlineFragment(ctx *validator.Context, frag *ast.InlineFragment) validator.Action {
	if !frag.HasTypeCondition() {
		return validator.Next
	}
	parentType := ctx.ParentType()
	fragType := string(frag.TypeCondition.Name)
	if parentType == "" || !ctx.Schema.HasType(fragType) {
		return validator.Next
	}
	if !ctx.Schema.TypesOverlap(parentType, fragType) {
		ctx.Errorf(frag.Span_, "fragment cannot be spread here as objects of type %q can never be of type %q",
			parentType, fragType)
	}
	return validator.Next
}
