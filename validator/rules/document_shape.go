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

// SingleOperationOrFragment implements the "Document shape" rule: a document
// used for operation codegen contains exactly one operation or exactly one
// fragment.
type SingleOperationOrFragment struct{}

// CheckDocument implements validator.DocumentRule.
func (SingleOperationOrFragment) CheckDocument(ctx *validator.Context, doc *ast.Document) validator.Action {
	var operations, fragments int
	for _, def := range doc.Definitions {
		switch def.(type) {
		case *ast.OperationDefinition:
			operations++
		case *ast.FragmentDefinition:
			fragments++
		}
	}

	total := operations + fragments
	if total == 1 {
		return validator.Next
	}

	span := doc.Span_
	if len(doc.Definitions) > 0 {
		span = doc.Definitions[0].Loc()
	}
	ctx.Errorf(span, "document must contain exactly one operation or one fragment")
	return validator.Next
}

// LoneAnonymousOperation implements the "if any anonymous operation exists,
// it must be the only operation" rule.
type LoneAnonymousOperation struct{}

// CheckDocument implements validator.DocumentRule.
func (LoneAnonymousOperation) CheckDocument(ctx *validator.Context, doc *ast.Document) validator.Action {
	var operations []*ast.OperationDefinition
	for _, def := range doc.Definitions {
		if op, ok := def.(*ast.OperationDefinition); ok {
			operations = append(operations, op)
		}
	}

	if len(operations) <= 1 {
		return validator.Next
	}

	for _, op := range operations {
		if op.IsAnonymous() {
			ctx.Errorf(op.Span_, "this anonymous operation must be the only defined operation")
		}
	}
	return validator.Next
}
