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

// Package schema builds and exposes the SchemaIndex (§4.4 of the spec):
// a catalog of types, fields, implementations, members and directives,
// assembled once from SDL documents (the built-in SDL plus the caller's own)
// and consulted many times by the validator, transformer and generator.
//
// Grounded on the teacher's graphql/schema.go TypeMap (a name -> Type table
// built incrementally by walking type-system definitions) generalized to an
// insertion-ordered table (internal/orderedmap) so iteration is deterministic
// per spec §9, and on the original's schema/mod.rs integration test, which
// pins the exact accessor surface (is_object, implements, get_possible_types,
// custom_scalars, query_type, ...) this package exposes in Go form.
package schema

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/internal/orderedmap"
)

// Kind classifies a named type by which of the six TypeDefinition variants
// declared it.
type Kind int

// Enumeration of Kind.
const (
	KindScalar Kind = iota
	KindObject
	KindInterface
	KindUnion
	KindEnum
	KindInputObject
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindObject:
		return "object"
	case KindInterface:
		return "interface"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindInputObject:
		return "input object"
	default:
		return "unknown"
	}
}

// fieldTable is the ordered name -> FieldDefinition map shared by object and
// interface TypeInfo entries.
type fieldTable = orderedmap.Map[*ast.FieldDefinition]

// TypeInfo is everything the index knows about one named type.
type TypeInfo struct {
	Name        ast.TypeName
	Kind        Kind
	Description *ast.Description

	// Object / Interface
	Interfaces []ast.TypeName
	Fields     *fieldTable

	// Union
	Members []ast.TypeName

	// Enum
	Values []*ast.EnumValueDefinition

	// InputObject
	InputFields *orderedmap.Map[*ast.InputValueDefinition]
}

// SchemaIndex is the built, queryable catalog described by spec §3/§4.4.
type SchemaIndex struct {
	types      *orderedmap.Map[*TypeInfo]
	directives *orderedmap.Map[*ast.DirectiveDefinition]

	customScalars []string

	queryType        ast.TypeName
	mutationType     ast.TypeName
	subscriptionType ast.TypeName
}

// HasType reports whether name was declared (by any of the six
// TypeDefinition kinds).
func (s *SchemaIndex) HasType(name string) bool {
	return s.types.Has(name)
}

// TypeInfo returns the TypeInfo for name, or nil if undeclared.
func (s *SchemaIndex) TypeInfo(name string) *TypeInfo {
	info, _ := s.types.Get(name)
	return info
}

func (s *SchemaIndex) kindIs(name string, want Kind) bool {
	info, ok := s.types.Get(name)
	return ok && info.Kind == want
}

func (s *SchemaIndex) IsScalar(name string) bool      { return s.kindIs(name, KindScalar) }
func (s *SchemaIndex) IsObject(name string) bool      { return s.kindIs(name, KindObject) }
func (s *SchemaIndex) IsInterface(name string) bool   { return s.kindIs(name, KindInterface) }
func (s *SchemaIndex) IsUnion(name string) bool       { return s.kindIs(name, KindUnion) }
func (s *SchemaIndex) IsEnum(name string) bool        { return s.kindIs(name, KindEnum) }
func (s *SchemaIndex) IsInputObject(name string) bool { return s.kindIs(name, KindInputObject) }

// IsComposite reports whether name is an object, interface or union — a
// selection-set-requiring type per GLOSSARY "Composite type".
func (s *SchemaIndex) IsComposite(name string) bool {
	info, ok := s.types.Get(name)
	if !ok {
		return false
	}
	switch info.Kind {
	case KindObject, KindInterface, KindUnion:
		return true
	default:
		return false
	}
}

// IsLeafKind reports whether name is a scalar or enum — a type that forbids
// a selection set per GLOSSARY "Composite type".
func (s *SchemaIndex) IsLeafKind(name string) bool {
	return s.IsScalar(name) || s.IsEnum(name)
}

// IsInputType reports whether t is valid in an input position (variable
// type, argument/input-field type): a scalar, enum or input object, or a
// list/non-null composed of one, per spec §4.6 "Variables".
func (s *SchemaIndex) IsInputType(t ast.Type) bool {
	name := string(t.InnermostNamed())
	info, ok := s.types.Get(name)
	if !ok {
		return false
	}
	switch info.Kind {
	case KindScalar, KindEnum, KindInputObject:
		return true
	default:
		return false
	}
}

// GetField returns the field definition named field on typeName (an object
// or interface), or nil if either the type or the field does not exist.
func (s *SchemaIndex) GetField(typeName, field string) *ast.FieldDefinition {
	info, ok := s.types.Get(typeName)
	if !ok || info.Fields == nil {
		return nil
	}
	def, _ := info.Fields.Get(field)
	return def
}

// GetObjectFields returns the ordered field table for typeName (object or
// interface), or nil.
func (s *SchemaIndex) GetObjectFields(typeName string) *fieldTable {
	info, ok := s.types.Get(typeName)
	if !ok {
		return nil
	}
	return info.Fields
}

// GetPossibleTypes returns the possible types of an abstract or concrete
// type: union members, interface implementors, or the type itself for a
// concrete (object) type (GLOSSARY "Possible types").
func (s *SchemaIndex) GetPossibleTypes(typeName string) []ast.TypeName {
	info, ok := s.types.Get(typeName)
	if !ok {
		return nil
	}
	switch info.Kind {
	case KindUnion:
		return info.Members
	case KindInterface:
		var out []ast.TypeName
		s.types.Each(func(_ string, t *TypeInfo) {
			if t.Kind == KindObject && implementsInterface(t, typeName) {
				out = append(out, t.Name)
			}
		})
		return out
	case KindObject:
		return []ast.TypeName{info.Name}
	default:
		return nil
	}
}

func implementsInterface(obj *TypeInfo, iface string) bool {
	for _, i := range obj.Interfaces {
		if string(i) == iface {
			return true
		}
	}
	return false
}

// Implements reports whether object declares `implements interface`.
func (s *SchemaIndex) Implements(object, iface string) bool {
	info, ok := s.types.Get(object)
	if !ok || info.Kind != KindObject {
		return false
	}
	return implementsInterface(info, iface)
}

// TypesOverlap reports whether a and b share at least one possible type —
// the rule used by "fragment spread is possible" (§4.6 Fragments): identity,
// subtype, or any common implementor/member.
func (s *SchemaIndex) TypesOverlap(a, b string) bool {
	if a == b {
		return true
	}
	aInfo, aOk := s.types.Get(a)
	bInfo, bOk := s.types.Get(b)
	if !aOk || !bOk {
		return false
	}
	if aInfo.Kind == KindObject && bInfo.Kind == KindObject {
		return false
	}
	aTypes := s.GetPossibleTypes(a)
	bSet := make(map[string]bool, len(s.GetPossibleTypes(b)))
	for _, t := range s.GetPossibleTypes(b) {
		bSet[string(t)] = true
	}
	for _, t := range aTypes {
		if bSet[string(t)] {
			return true
		}
	}
	return false
}

// CustomScalars returns the non-built-in scalar names in first-seen order.
func (s *SchemaIndex) CustomScalars() []string {
	return s.customScalars
}

// Enums returns the names of every enum type in declaration order.
func (s *SchemaIndex) Enums() []string {
	var out []string
	s.types.Each(func(name string, t *TypeInfo) {
		if t.Kind == KindEnum {
			out = append(out, name)
		}
	})
	return out
}

// Types returns every TypeInfo in declaration order.
func (s *SchemaIndex) Types() []*TypeInfo {
	return s.types.Values()
}

// GetDirective returns the directive definition named name (given without
// the leading `@`), or nil.
func (s *SchemaIndex) GetDirective(name string) *ast.DirectiveDefinition {
	def, _ := s.directives.Get(name)
	return def
}

// QueryType, MutationType and SubscriptionType return the name of the
// corresponding root type, or "" if the schema declares none (§4.4: a
// schema definition's roots, or else the literal names Query/Mutation/
// Subscription when a type by that name exists).
func (s *SchemaIndex) QueryType() ast.TypeName        { return s.queryType }
func (s *SchemaIndex) MutationType() ast.TypeName     { return s.mutationType }
func (s *SchemaIndex) SubscriptionType() ast.TypeName { return s.subscriptionType }
