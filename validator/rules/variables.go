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

// UniqueVariableNames implements "variable names unique within an
// operation".
type UniqueVariableNames struct{}

// CheckOperation implements validator.OperationRule.
func (UniqueVariableNames) CheckOperation(ctx *validator.Context, op *ast.OperationDefinition) validator.Action {
	seen := make(map[string]bool, len(op.VariableDefinitions))
	for _, def := range op.VariableDefinitions {
		name := string(def.Variable)
		if seen[name] {
			ctx.Errorf(def.Span_, "there can be only one variable named \"$%s\"", name)
		}
		seen[name] = true
	}
	return validator.Next
}

// VariablesAreInputTypes implements "each variable must be an input type".
type VariablesAreInputTypes struct{}

// CheckVariableDefinition implements validator.VariableDefinitionRule.
func (VariablesAreInputTypes) CheckVariableDefinition(ctx *validator.Context, op *ast.OperationDefinition, def *ast.VariableDefinition) validator.Action {
	if !ctx.Schema.IsInputType(def.Type) {
		ctx.Errorf(def.Span_, "variable \"$%s\" cannot be of non-input type %q", def.Variable, ast.TypeString(def.Type))
	}
	return validator.Next
}
