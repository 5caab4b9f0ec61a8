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

// The field-type mapping and discriminated-union narrowing in this file are
// grounded on the original's codegen/type_builder.rs: a selection set
// compiles to an object type literal, inline fragments with a type
// condition fan that literal out into a union of per-__typename members
// instead of flattening their fields into the common shape (§4.8,
// SPEC_FULL.md §D.6).
package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devunt/mearie-sub001/ast"
)

// variant is one inline-fragment arm collected out of a selection set: the
// type condition it narrows to (the parent type itself, if the fragment
// carries no explicit `on Type`) and the selections guarded by it.
type variant struct {
	typeCondition string
	set           ast.SelectionSet
}

// collect partitions set into its three constituents: the plain field
// selections rendered as object members, the fragment spreads contributing
// a FragmentRefs intersection member, and the inline-fragment variants that
// force a discriminated union.
func (g *Generator) collect(parentType string, set ast.SelectionSet) (members []string, refs []string, variants []variant) {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			members = append(members, fmt.Sprintf("%s: %s", s.ResponseKey(), g.fieldType(parentType, s)))
		case *ast.FragmentSpread:
			refs = append(refs, string(s.Name))
		case *ast.InlineFragment:
			tc := parentType
			if s.HasTypeCondition() {
				tc = string(s.TypeCondition.Name)
			}
			variants = append(variants, variant{typeCondition: tc, set: s.SelectionSet})
		}
	}
	return members, refs, variants
}

// objectLiteral renders members as a TypeScript object type literal, `{}`
// when there are none (an empty selection set, or one consisting solely of
// fragment spreads).
func objectLiteral(members []string) string {
	if len(members) == 0 {
		return "{}"
	}
	return "{ " + strings.Join(members, "; ") + " }"
}

// quotedUnion renders names as a union of string-literal types, e.g.
// `"A" | "B"`, used for both FragmentRefs<...> and the __typename literal
// at an abstract position.
func quotedUnion(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = strconv.Quote(n)
	}
	return strings.Join(quoted, " | ")
}

// selectionShape renders set (selected against parentType) as the TypeScript
// type of the object it produces: a plain object literal, optionally
// intersected with a FragmentRefs member, or — when the set contains inline
// fragments — a discriminated union of (common fields & variant fields)
// members, one per inline-fragment arm (§4.8 last bullet, SPEC_FULL.md §D.6).
func (g *Generator) selectionShape(parentType string, set ast.SelectionSet) string {
	members, refs, variants := g.collect(parentType, set)

	base := objectLiteral(members)
	if len(refs) > 0 {
		base = fmt.Sprintf("%s & FragmentRefs<%s>", base, quotedUnion(refs))
	}
	if len(variants) == 0 {
		return base
	}

	arms := make([]string, len(variants))
	for i, v := range variants {
		own := g.selectionShape(v.typeCondition, v.set)
		arms[i] = fmt.Sprintf("(%s & %s)", base, own)
	}
	return strings.Join(arms, " | ")
}

// fieldType renders the response type of one field selection, applying
// §4.8's field-type mapping: nullability/list wrapping from the schema's
// field type, scalars as an indexed Scalars[...] access, enums and nested
// selections as their own shape, and the `__typename` meta field as a
// literal (or union of literals at an abstract parent type).
func (g *Generator) fieldType(parentType string, field *ast.Field) string {
	if string(field.Name) == "__typename" {
		return g.typenameLiteral(parentType)
	}

	def := g.schema.GetField(parentType, string(field.Name))
	if def == nil {
		// Introspection meta fields (__schema, __type) execute outside this
		// core (spec Non-goals: no execution); their shape is opaque here.
		return "unknown"
	}

	innermost := string(def.Type.InnermostNamed())

	var leaf string
	switch {
	case len(field.SelectionSet) > 0:
		leaf = g.selectionShape(innermost, field.SelectionSet)
	case g.schema.IsEnum(innermost):
		leaf = enumTypeName(innermost)
	default:
		leaf = scalarIndex(innermost)
	}

	return renderType(def.Type, leaf)
}

// typenameLiteral is the type of a synthesized or user-written `__typename`
// selection: the concrete type name at an object position, or a union of
// every possible type's name at an interface/union position.
func (g *Generator) typenameLiteral(parentType string) string {
	if g.schema.IsObject(parentType) {
		return strconv.Quote(parentType)
	}
	possible := g.schema.GetPossibleTypes(parentType)
	names := make([]string, len(possible))
	for i, p := range possible {
		names[i] = string(p)
	}
	if len(names) == 0 {
		return "string"
	}
	return quotedUnion(names)
}

// renderType wraps leaf (the innermost rendering of a field's named type)
// in Nullable<...>/List<...> per t's list/non-null structure, exactly as
// §4.8's field-type mapping bullets prescribe.
func renderType(t ast.Type, leaf string) string {
	switch v := t.(type) {
	case ast.NonNullType:
		return renderNonNull(v.Item, leaf)
	case ast.ListType:
		return fmt.Sprintf("Nullable<List<%s>>", renderType(v.Item, leaf))
	default:
		return fmt.Sprintf("Nullable<%s>", leaf)
	}
}

func renderNonNull(t ast.Type, leaf string) string {
	if v, ok := t.(ast.ListType); ok {
		return fmt.Sprintf("List<%s>", renderType(v.Item, leaf))
	}
	return leaf
}

// enumTypeName is the name under which an enum's union-of-literals alias is
// declared inside the `~graphql` module (§4.8 item 1); referenced from
// types.d.ts through the `Graphql` namespace import since that file sits
// outside the module.
func enumTypeName(name string) string {
	return "Graphql." + name
}
