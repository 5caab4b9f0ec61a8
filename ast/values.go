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

package ast

import "github.com/devunt/mearie-sub001/source"

// Value is the sum type of every value a GraphQL argument, default value or
// input object field may hold: Variable | IntValue | FloatValue |
// StringValue | BooleanValue | NullValue | EnumValue | ListValue |
// ObjectValue.
type Value interface {
	Node
	isValue()
}

type valueBase struct{}

func (valueBase) isValue() {}

// Variable is a `$name` reference.
type Variable struct {
	valueBase
	Name  VariableName
	Span_ source.Span
}

func (v *Variable) Loc() source.Span { return v.Span_ }

// IntValue holds an integer literal, preserved verbatim as text so that
// values outside Go's native int range are not silently truncated.
type IntValue struct {
	valueBase
	Raw   string
	Span_ source.Span
}

func (v *IntValue) Loc() source.Span { return v.Span_ }

// FloatValue holds a float literal as text, for the same reason as IntValue.
type FloatValue struct {
	valueBase
	Raw   string
	Span_ source.Span
}

func (v *FloatValue) Loc() source.Span { return v.Span_ }

// StringValue holds a string or block-string literal. Block holds the
// original delimiter kind so the printer can choose how to re-render the
// value and the dedent rule can be applied only to block strings.
type StringValue struct {
	valueBase
	Content string
	Block   bool
	Span_   source.Span
}

func (v *StringValue) Loc() source.Span { return v.Span_ }

// BooleanValue holds `true` or `false`.
type BooleanValue struct {
	valueBase
	Content bool
	Span_   source.Span
}

func (v *BooleanValue) Loc() source.Span { return v.Span_ }

// NullValue holds `null`.
type NullValue struct {
	valueBase
	Span_ source.Span
}

func (v *NullValue) Loc() source.Span { return v.Span_ }

// EnumValue holds a bare name used as an enum member reference.
type EnumValue struct {
	valueBase
	Content string
	Span_   source.Span
}

func (v *EnumValue) Loc() source.Span { return v.Span_ }

// ListValue holds `[ value, ... ]`.
type ListValue struct {
	valueBase
	Items []Value
	Span_ source.Span
}

func (v *ListValue) Loc() source.Span { return v.Span_ }

// ObjectField is a single `name: value` member of an ObjectValue.
type ObjectField struct {
	Name  ArgumentName
	Value Value
	Span_ source.Span
}

func (f *ObjectField) Loc() source.Span { return f.Span_ }

// ObjectValue holds `{ name: value, ... }`, an ordered sequence of fields.
type ObjectValue struct {
	valueBase
	Fields []*ObjectField
	Span_  source.Span
}

func (v *ObjectValue) Loc() source.Span { return v.Span_ }

// Get returns the first field named name, or nil. Used by validation rules
// that check for duplicate input object field names (the caller is
// expected to have already checked uniqueness when it matters).
func (v *ObjectValue) Get(name string) *ObjectField {
	for _, f := range v.Fields {
		if string(f.Name) == name {
			return f
		}
	}
	return nil
}
