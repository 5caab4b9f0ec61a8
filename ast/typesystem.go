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

// TypeSystemDefinition is implemented by SchemaDefinition, every
// TypeDefinition variant, and DirectiveDefinition.
type TypeSystemDefinition interface {
	Definition
	isTypeSystemDefinition()
}

// TypeSystemExtension is implemented by SchemaExtension and every
// TypeExtension variant.
type TypeSystemExtension interface {
	Definition
	isTypeSystemExtension()
}

type typeSystemDefinitionBase struct{ definitionBase }

func (typeSystemDefinitionBase) isTypeSystemDefinition() {}

type typeSystemExtensionBase struct{ definitionBase }

func (typeSystemExtensionBase) isTypeSystemExtension() {}

// Description is an optional docstring attached to a type-system
// definition (§4.3 "Descriptions attach to the immediately following
// type-system definition").
type Description struct {
	Content string
	Block   bool
}

//===----------------------------------------------------------------------------------------===//
// Schema
//===----------------------------------------------------------------------------------------===//

// RootOperationTypeDefinition is one `query: Query` entry inside a
// `schema { ... }` block.
type RootOperationTypeDefinition struct {
	Operation OperationType
	Type      NamedType
}

// SchemaDefinition declares which named types serve as the query, mutation
// and subscription roots.
type SchemaDefinition struct {
	typeSystemDefinitionBase
	Description  *Description
	RootTypes    []RootOperationTypeDefinition
	Span_        source.Span
}

func (s *SchemaDefinition) Loc() source.Span { return s.Span_ }

// SchemaExtension is `extend schema { ... }`.
type SchemaExtension struct {
	typeSystemExtensionBase
	RootTypes []RootOperationTypeDefinition
	Span_     source.Span
}

func (s *SchemaExtension) Loc() source.Span { return s.Span_ }

//===----------------------------------------------------------------------------------------===//
// Directive definitions
//===----------------------------------------------------------------------------------------===//

// DirectiveDefinition declares a directive's name, arguments, repeatability
// and valid locations.
type DirectiveDefinition struct {
	typeSystemDefinitionBase
	Description  *Description
	Name         DirectiveName
	Arguments    []*InputValueDefinition
	Repeatable   bool
	Locations    []string
	Span_        source.Span
}

func (d *DirectiveDefinition) Loc() source.Span { return d.Span_ }

//===----------------------------------------------------------------------------------------===//
// Field / input value / enum value definitions (shared by several TypeDefinitions)
//===----------------------------------------------------------------------------------------===//

// InputValueDefinition is one argument of a field/directive, or one field of
// an input object type.
type InputValueDefinition struct {
	Description  *Description
	Name         ArgumentName
	Type         Type
	DefaultValue Value // nil if absent
	Directives   Directives
	Span_        source.Span
}

func (v *InputValueDefinition) Loc() source.Span { return v.Span_ }

// HasDefault reports whether a default value was given.
func (v *InputValueDefinition) HasDefault() bool { return v.DefaultValue != nil }

// IsRequired reports whether this input value must be supplied: non-null
// type and no default value.
func (v *InputValueDefinition) IsRequired() bool {
	_, nonNull := v.Type.(NonNullType)
	return nonNull && !v.HasDefault()
}

// FieldDefinition is one field of an object or interface type.
type FieldDefinition struct {
	Description *Description
	Name        FieldName
	Arguments   []*InputValueDefinition
	Type        Type
	Directives  Directives
	Span_       source.Span
}

func (f *FieldDefinition) Loc() source.Span { return f.Span_ }

// EnumValueDefinition is one member of an enum type.
type EnumValueDefinition struct {
	Description *Description
	Name        Name
	Directives  Directives
	Span_       source.Span
}

func (v *EnumValueDefinition) Loc() source.Span { return v.Span_ }

//===----------------------------------------------------------------------------------------===//
// Scalar
//===----------------------------------------------------------------------------------------===//

type ScalarTypeDefinition struct {
	typeSystemDefinitionBase
	Description *Description
	Name        TypeName
	Span_       source.Span
}

func (t *ScalarTypeDefinition) Loc() source.Span { return t.Span_ }

type ScalarTypeExtension struct {
	typeSystemExtensionBase
	Name  TypeName
	Span_ source.Span
}

func (t *ScalarTypeExtension) Loc() source.Span { return t.Span_ }

//===----------------------------------------------------------------------------------------===//
// Object
//===----------------------------------------------------------------------------------------===//

type ObjectTypeDefinition struct {
	typeSystemDefinitionBase
	Description *Description
	Name        TypeName
	Interfaces  []TypeName
	Fields      []*FieldDefinition
	Span_       source.Span
}

func (t *ObjectTypeDefinition) Loc() source.Span { return t.Span_ }

type ObjectTypeExtension struct {
	typeSystemExtensionBase
	Name       TypeName
	Interfaces []TypeName
	Fields     []*FieldDefinition
	Span_      source.Span
}

func (t *ObjectTypeExtension) Loc() source.Span { return t.Span_ }

//===----------------------------------------------------------------------------------------===//
// Interface
//===----------------------------------------------------------------------------------------===//

type InterfaceTypeDefinition struct {
	typeSystemDefinitionBase
	Description *Description
	Name        TypeName
	Interfaces  []TypeName
	Fields      []*FieldDefinition
	Span_       source.Span
}

func (t *InterfaceTypeDefinition) Loc() source.Span { return t.Span_ }

type InterfaceTypeExtension struct {
	typeSystemExtensionBase
	Name       TypeName
	Interfaces []TypeName
	Fields     []*FieldDefinition
	Span_      source.Span
}

func (t *InterfaceTypeExtension) Loc() source.Span { return t.Span_ }

//===----------------------------------------------------------------------------------------===//
// Union
//===----------------------------------------------------------------------------------------===//

type UnionTypeDefinition struct {
	typeSystemDefinitionBase
	Description *Description
	Name        TypeName
	Members     []TypeName
	Span_       source.Span
}

func (t *UnionTypeDefinition) Loc() source.Span { return t.Span_ }

type UnionTypeExtension struct {
	typeSystemExtensionBase
	Name    TypeName
	Members []TypeName
	Span_   source.Span
}

func (t *UnionTypeExtension) Loc() source.Span { return t.Span_ }

//===----------------------------------------------------------------------------------------===//
// Enum
//===----------------------------------------------------------------------------------------===//

type EnumTypeDefinition struct {
	typeSystemDefinitionBase
	Description *Description
	Name        TypeName
	Values      []*EnumValueDefinition
	Span_       source.Span
}

func (t *EnumTypeDefinition) Loc() source.Span { return t.Span_ }

type EnumTypeExtension struct {
	typeSystemExtensionBase
	Name   TypeName
	Values []*EnumValueDefinition
	Span_  source.Span
}

func (t *EnumTypeExtension) Loc() source.Span { return t.Span_ }

//===----------------------------------------------------------------------------------------===//
// Input object
//===----------------------------------------------------------------------------------------===//

type InputObjectTypeDefinition struct {
	typeSystemDefinitionBase
	Description *Description
	Name        TypeName
	Fields      []*InputValueDefinition
	Span_       source.Span
}

func (t *InputObjectTypeDefinition) Loc() source.Span { return t.Span_ }

type InputObjectTypeExtension struct {
	typeSystemExtensionBase
	Name   TypeName
	Fields []*InputValueDefinition
	Span_  source.Span
}

func (t *InputObjectTypeExtension) Loc() source.Span { return t.Span_ }
