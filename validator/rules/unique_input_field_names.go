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

// UniqueInputFieldNames implements "input object literals do not duplicate
// field names; nested input objects likewise", checked wherever a value
// can appear: field arguments, directive arguments, and variable default
// values.
type UniqueInputFieldNames struct{}

func checkValueForDuplicateFields(ctx *validator.Context, v ast.Value) {
	switch val := v.(type) {
	case *ast.ObjectValue:
		seen := make(map[string]bool, len(val.Fields))
		for _, f := range val.Fields {
			name := string(f.Name)
			if seen[name] {
				ctx.Errorf(f.Span_, "there can be only one input field named %q", name)
			}
			seen[name] = true
			checkValueForDuplicateFields(ctx, f.Value)
		}
	case *ast.ListValue:
		for _, item := range val.Items {
			checkValueForDuplicateFields(ctx, item)
		}
	}
}

// CheckField implements validator.FieldRule.
func (UniqueInputFieldNames) CheckField(ctx *validator.Context, field *ast.Field) validator.Action {
	for _, arg := range field.Arguments {
		checkValueForDuplicateFields(ctx, arg.Value)
	}
	return validator.Next
}

// CheckDirective implements validator.DirectiveRule.
func (UniqueInputFieldNames) CheckDirective(ctx *validator.Context, _ validator.DirectiveLocation, dir *ast.Directive) validator.Action {
	for _, arg := range dir.Arguments {
		checkValueForDuplicateFields(ctx, arg.Value)
	}
	return validator.Next
}

// CheckVariableDefinition implements validator.VariableDefinitionRule.
func (UniqueInputFieldNames) CheckVariableDefinition(ctx *validator.Context, _ *ast.OperationDefinition, def *ast.VariableDefinition) validator.Action {
	if def.DefaultValue != nil {
		checkValueForDuplicateFields(ctx, def.DefaultValue)
	}
	return validator.Next
}
