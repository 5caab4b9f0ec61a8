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

// OverlappingFieldsCanBeMerged implements "when two selections share a
// response key in the same set, they must reference the same field name
// with identical arguments". This checks only fields that are literal
// siblings of the same selection set; merge-compatibility across fragment
// spreads expanded into the same set is not attempted (a documented
// simplification — see DESIGN.md).
type OverlappingFieldsCanBeMerged struct{}

// CheckSelectionSet implements validator.SelectionSetRule.
func (OverlappingFieldsCanBeMerged) CheckSelectionSet(ctx *validator.Context, parentType string, set ast.SelectionSet) validator.Action {
	seen := make(map[string]*ast.Field)
	for _, sel := range set {
		field, ok := sel.(*ast.Field)
		if !ok {
			continue
		}
		key := field.ResponseKey()
		prior, ok := seen[key]
		if !ok {
			seen[key] = field
			continue
		}
		if prior.Name != field.Name {
			ctx.Errorf(field.Span_, "fields %q conflict because %q and %q are different fields", key, prior.Name, field.Name)
			continue
		}
		if !argumentsEqual(prior.Arguments, field.Arguments) {
			ctx.Errorf(field.Span_, "fields %q conflict because they have differing arguments", key)
		}
	}
	return validator.Next
}
