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

// OperationType distinguishes query/mutation/subscription.
type OperationType string

// Enumeration of OperationType.
const (
	OperationTypeQuery        OperationType = "query"
	OperationTypeMutation     OperationType = "mutation"
	OperationTypeSubscription OperationType = "subscription"
)

// ExecutableDefinition is implemented by OperationDefinition and
// FragmentDefinition, the two kinds of definition a document index catalogs.
type ExecutableDefinition interface {
	Definition
	isExecutableDefinition()
}

// OperationDefinition is a query/mutation/subscription, possibly anonymous
// (Name == "").
type OperationDefinition struct {
	definitionBase
	Operation           OperationType
	Name                Name // "" for an anonymous operation
	VariableDefinitions []*VariableDefinition
	SelectionSet        SelectionSet
	Span_               source.Span
}

func (o *OperationDefinition) Loc() source.Span         { return o.Span_ }
func (o *OperationDefinition) isExecutableDefinition()  {}

// IsAnonymous reports whether the operation has no explicit name, i.e. was
// written as a bare selection set or with `query`/`mutation`/`subscription`
// but no identifier before `(` or `{`.
func (o *OperationDefinition) IsAnonymous() bool { return o.Name == "" }

// VariableDefinition is one `$name: Type = default` entry in an operation's
// or fragment's variable list.
type VariableDefinition struct {
	Variable     VariableName
	Type         Type
	DefaultValue Value // nil if absent
	Directives   Directives
	Span_        source.Span
}

func (v *VariableDefinition) Loc() source.Span { return v.Span_ }

// FragmentDefinition is a named fragment. VariableDefinitions holds the
// client-only fragment-argument extension (§4.3); the transformer's
// fragment-argument-compilation rule strips it (§4.7 item 3).
type FragmentDefinition struct {
	definitionBase
	Name                FragmentName
	VariableDefinitions []*VariableDefinition
	TypeCondition       NamedType
	SelectionSet        SelectionSet
	Span_               source.Span
}

func (f *FragmentDefinition) Loc() source.Span        { return f.Span_ }
func (f *FragmentDefinition) isExecutableDefinition() {}

// SelectionSet is the braced list of selections under a composite-typed
// position.
type SelectionSet []Selection

// Selection is the sum type of a selection set member: Field |
// FragmentSpread | InlineFragment.
type Selection interface {
	Node
	GetDirectives() Directives
	isSelection()
}

type selectionBase struct {
	Directives Directives
}

func (b selectionBase) GetDirectives() Directives { return b.Directives }
func (selectionBase) isSelection()                {}

// Field is a single field selection, with an optional alias and (for
// composite-typed fields) a nested SelectionSet.
type Field struct {
	selectionBase
	Alias        Name // "" if no alias; see ResponseKey
	Name         FieldName
	Arguments    Arguments
	SelectionSet SelectionSet
	Span_        source.Span
}

func (f *Field) Loc() source.Span { return f.Span_ }

// ResponseKey is the alias if present, otherwise the field name — the key
// used to detect whether two selections must be merge-compatible (§4.6,
// GLOSSARY "Response key").
func (f *Field) ResponseKey() string {
	if f.Alias != "" {
		return string(f.Alias)
	}
	return string(f.Name)
}

// FragmentSpread is `...Name` with optional directives and (client-only)
// fragment-argument values, stripped by the transformer.
type FragmentSpread struct {
	selectionBase
	Name      FragmentName
	Arguments Arguments
	Span_     source.Span
}

func (s *FragmentSpread) Loc() source.Span { return s.Span_ }

// InlineFragment is `... [on TypeCondition] { selectionSet }`.
type InlineFragment struct {
	selectionBase
	TypeCondition *NamedType // nil if no type condition
	SelectionSet  SelectionSet
	Span_         source.Span
}

func (f *InlineFragment) Loc() source.Span { return f.Span_ }

// HasTypeCondition reports whether an explicit `on Type` was written.
func (f *InlineFragment) HasTypeCondition() bool { return f.TypeCondition != nil }
