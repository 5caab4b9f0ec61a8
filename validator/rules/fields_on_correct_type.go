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

// introspectionFields are always valid regardless of what the parent type
// declares.
var introspectionFields = map[string]bool{
	"__typename": true,
	"__schema":   true,
	"__type":     true,
}

// FieldsOnCorrectType implements "every field must exist on its parent
// type".
type FieldsOnCorrectType struct{}

// CheckField implements validator.FieldRule.
func (FieldsOnCorrectType) CheckField(ctx *validator.Context, field *ast.Field) validator.Action {
	parentType := ctx.ParentType()
	if parentType == "" || introspectionFields[string(field.Name)] {
		return validator.Next
	}

	if ctx.Schema.GetField(parentType, string(field.Name)) != nil {
		return validator.Next
	}

	ctx.Errorf(field.Span_, "cannot query field %q on type %q", field.Name, parentType)
	return validator.Skip
}

// ScalarLeafs implements "leaf fields must not have a selection set;
// composite fields must have a non-empty selection set".
type ScalarLeafs struct{}

// CheckField implements validator.FieldRule.
func (ScalarLeafs) CheckField(ctx *validator.Context, field *ast.Field) validator.Action {
	if introspectionFields[string(field.Name)] && string(field.Name) != "__type" {
		if len(field.SelectionSet) > 0 {
			ctx.Errorf(field.Span_, "field %q must not have a selection", field.ResponseKey())
		}
		return validator.Next
	}

	def := ctx.Schema.GetField(ctx.ParentType(), string(field.Name))
	if def == nil {
		// FieldsOnCorrectType already reported this; nothing more to say.
		return validator.Next
	}

	typeName := string(def.Type.InnermostNamed())
	isLeaf := ctx.Schema.IsLeafKind(typeName)

	switch {
	case isLeaf && len(field.SelectionSet) > 0:
		ctx.Errorf(field.Span_, "field %q must not have a selection since type %q has no subfields", field.ResponseKey(), typeName)
	case !isLeaf && len(field.SelectionSet) == 0:
		ctx.Errorf(field.Span_, "field %q of type %q must have a selection of subfields", field.ResponseKey(), typeName)
	}
	return validator.Next
}
