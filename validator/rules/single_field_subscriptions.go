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

// SingleFieldSubscriptions implements the rule that a subscription operation
// selects exactly one root field, counting only the literal root selections
// (a spread or inline fragment counts as one selection at this level, not
// as however many fields it expands to).
type SingleFieldSubscriptions struct{}

// CheckOperation implements validator.OperationRule.
func (SingleFieldSubscriptions) CheckOperation(ctx *validator.Context, op *ast.OperationDefinition) validator.Action {
	if op.Operation != ast.OperationTypeSubscription {
		return validator.Next
	}
	if len(op.SelectionSet) != 1 {
		name := "Anonymous Subscription"
		if !op.IsAnonymous() {
			name = "Subscription \"" + string(op.Name) + "\""
		}
		ctx.Errorf(op.Span_, "%s must select only one top level field", name)
	}
	return validator.Next
}
