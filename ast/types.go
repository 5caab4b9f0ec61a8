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

// Type is the sum type of a type reference: NamedType | ListType |
// NonNullType, composing recursively (NonNull wraps Named or List; List
// wraps any Type including another List or a NonNull).
type Type interface {
	Node
	isType()

	// InnermostNamed unwraps List/NonNull layers and returns the named type
	// underneath, e.g. [[User!]!]! -> User.
	InnermostNamed() TypeName

	// Nullable reports whether this exact type reference is nullable at its
	// outermost layer (i.e. it is not NonNullType).
	Nullable() bool
}

type typeBase struct{}

func (typeBase) isType() {}

// NamedType is a bare reference to a named type, e.g. `String`.
type NamedType struct {
	typeBase
	Name  TypeName
	Span_ source.Span
}

func (t NamedType) Loc() source.Span        { return t.Span_ }
func (t NamedType) InnermostNamed() TypeName { return t.Name }
func (t NamedType) Nullable() bool           { return true }

// ListType is `[T]` for some inner Type.
type ListType struct {
	typeBase
	Item  Type
	Span_ source.Span
}

func (t ListType) Loc() source.Span        { return t.Span_ }
func (t ListType) InnermostNamed() TypeName { return t.Item.InnermostNamed() }
func (t ListType) Nullable() bool           { return true }

// NonNullType is `T!`, where T is a NamedType or a ListType (non-null binds
// tightest and may not wrap another NonNullType directly, enforced by the
// parser, not by this representation).
type NonNullType struct {
	typeBase
	Item  Type
	Span_ source.Span
}

func (t NonNullType) Loc() source.Span        { return t.Span_ }
func (t NonNullType) InnermostNamed() TypeName { return t.Item.InnermostNamed() }
func (t NonNullType) Nullable() bool           { return false }

// IsList reports whether t's outermost layer is a list (ignoring a wrapping
// NonNull), i.e. whether t is `[T]` or `[T]!`.
func IsList(t Type) bool {
	if nn, ok := t.(NonNullType); ok {
		t = nn.Item
	}
	_, ok := t.(ListType)
	return ok
}

// TypeString renders t the way the printer would, without going through the
// full printer (used by validation error messages).
func TypeString(t Type) string {
	switch t := t.(type) {
	case NamedType:
		return string(t.Name)
	case ListType:
		return "[" + TypeString(t.Item) + "]"
	case NonNullType:
		return TypeString(t.Item) + "!"
	default:
		return "<unknown type>"
	}
}
