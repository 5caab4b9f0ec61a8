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

// Package ast defines the GraphQL abstract syntax tree produced by the
// parser. Nodes are modeled as tagged unions via small interfaces with a
// handful of concrete implementations, matched with a single shallow type
// switch wherever dispatch is needed (the printer, the visitor, the
// transformer) rather than deep virtual-method polymorphism — see DESIGN.md.
//
// Every node is allocated inside an *arena.Arena and lives exactly as long as
// that arena does; nothing in this package performs its own memory
// management.
package ast

import "github.com/devunt/mearie-sub001/source"

// Node is implemented by every AST node. Loc reports the node's extent in
// its originating Source.
type Node interface {
	Loc() source.Span
}

// Name is an interned identifier: two Names holding equal text compare equal
// by value, and when both were produced by the same arena they additionally
// share backing storage (see arena.Same).
type Name string

// TypeName, FieldName, ArgumentName, VariableName, DirectiveName and
// FragmentName are type-safe aliases of Name that keep a type name from
// being accidentally passed where a field name is expected, etc., while
// still comparing equal to a raw string via an explicit conversion
// (string(typeName) == "User").
type (
	TypeName      Name
	FieldName     Name
	ArgumentName  Name
	VariableName  Name
	DirectiveName Name
	FragmentName  Name
)

//===----------------------------------------------------------------------------------------===//
// Document
//===----------------------------------------------------------------------------------------===//

// Document is the root of a parsed GraphQL text: either an SDL document (a
// sequence of TypeSystemDefinition/TypeSystemExtension) or an executable
// document (a sequence of OperationDefinition/FragmentDefinition). A single
// Document never mixes both in practice, but the grammar does not forbid it
// and nothing here enforces the split; §4.4/§4.5 indices simply ignore
// definitions that are not relevant to them.
type Document struct {
	Definitions []Definition
	Span_       source.Span
}

func (d *Document) Loc() source.Span { return d.Span_ }

// Definition is any top-level member of a Document.
type Definition interface {
	Node

	// Directives returns the directives applied to this definition. Prefixed
	// Get to avoid colliding with a Directives field on embedders.
	GetDirectives() Directives
}

// definitionBase is embedded by every concrete Definition to provide the
// common Directives accessor, the way artemis's ast.DefinitionBase does.
type definitionBase struct {
	Directives Directives
}

func (b definitionBase) GetDirectives() Directives { return b.Directives }

//===----------------------------------------------------------------------------------------===//
// Directives & Arguments
//===----------------------------------------------------------------------------------------===//

// Directive is a single `@name(args...)` application.
type Directive struct {
	Name      DirectiveName
	Arguments Arguments
	Span_     source.Span
}

func (d *Directive) Loc() source.Span { return d.Span_ }

// Directives is an ordered list of Directive applications; input order is
// preserved end to end (lexer -> parser -> printer) per §4.9.
type Directives []*Directive

// Get returns the first directive named name, or nil.
func (ds Directives) Get(name string) *Directive {
	for _, d := range ds {
		if string(d.Name) == name {
			return d
		}
	}
	return nil
}

// Argument is a single `name: value` pair, used both for field/directive
// arguments and (via ObjectField) object literal members.
type Argument struct {
	Name  ArgumentName
	Value Value
	Span_ source.Span
}

func (a *Argument) Loc() source.Span { return a.Span_ }

// Arguments is an ordered list of Argument.
type Arguments []*Argument

// Get returns the first argument named name, or nil.
func (as Arguments) Get(name string) *Argument {
	for _, a := range as {
		if string(a.Name) == name {
			return a
		}
	}
	return nil
}
