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

// Package transform rewrites a parsed executable document into the form
// that is actually sent to a server: client-only directives and fragment
// arguments stripped, __typename and an entity-key field injected where the
// generated typed surface needs them to narrow unions and normalize cache
// entries. It shares the walk-with-control-signal discipline of the
// validator package, but where a validator hook only approves or rejects a
// node, a transform hook returns the node that should take its place (or
// nil to delete it).
package transform

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/ast/visitor"
)

// Action re-exports the traversal control signal shared with the validator.
type Action = visitor.Action

const (
	Next  = visitor.Next
	Skip  = visitor.Skip
	Break = visitor.Break
)

// FieldRule rewrites a single field selection. Returning nil deletes the
// field from its enclosing selection set.
type FieldRule interface {
	TransformField(ctx *Context, field *ast.Field) *ast.Field
}

// FragmentSpreadRule rewrites a single fragment spread.
type FragmentSpreadRule interface {
	TransformFragmentSpread(ctx *Context, spread *ast.FragmentSpread) *ast.FragmentSpread
}

// FragmentRule rewrites a fragment definition's own fields (not its
// selection set, which the walker recurses into separately).
type FragmentRule interface {
	TransformFragment(ctx *Context, frag *ast.FragmentDefinition) *ast.FragmentDefinition
}

// SelectionSetRule rewrites a whole selection set, most often by prepending
// synthetic selections. It runs after every selection in the set has
// already been individually transformed and after any deletions have been
// applied, so a SelectionSetRule sees the set's final member list.
type SelectionSetRule interface {
	TransformSelectionSet(ctx *Context, parentType string, set ast.SelectionSet) ast.SelectionSet
}

// Rule is any of the hook interfaces above. A concrete rule type may
// implement more than one.
type Rule = any

// rules buckets registered Rule values by which hook interfaces they
// implement, the same one-time-per-run bucketing the validator's rule
// engine uses (see validator.buildRules) so the walker need not do a type
// assertion per node per rule.
type rules struct {
	field          []FieldRule
	fragmentSpread []FragmentSpreadRule
	fragment       []FragmentRule
	selectionSet   []SelectionSetRule
}

func buildRules(rs []Rule) *rules {
	b := &rules{}
	for _, r := range rs {
		if fr, ok := r.(FieldRule); ok {
			b.field = append(b.field, fr)
		}
		if fr, ok := r.(FragmentSpreadRule); ok {
			b.fragmentSpread = append(b.fragmentSpread, fr)
		}
		if fr, ok := r.(FragmentRule); ok {
			b.fragment = append(b.fragment, fr)
		}
		if fr, ok := r.(SelectionSetRule); ok {
			b.selectionSet = append(b.selectionSet, fr)
		}
	}
	return b
}

// standardRules holds the rule set registered by transform/rules's init(),
// the same import-cycle workaround the validator package uses (see
// validator/rule.go's RegisterStandardRules/StandardRules): the concrete
// rule types live in a child package that imports transform for the hook
// interfaces and Context, so transform itself cannot import them back.
var standardRules []Rule

// RegisterStandardRules is called by transform/rules's init() to install
// the standard rule set (§4.7's fixed three-rule order: strip @required,
// inject __typename/entity-key, compile away fragment arguments). Not meant
// to be called from anywhere else.
func RegisterStandardRules(rs ...Rule) {
	standardRules = append(standardRules, rs...)
}

// StandardRules returns the rule set registered by RegisterStandardRules,
// in the fixed order §4.7 prescribes. Panics if nothing registered, the
// same diagnostic validator.StandardRules gives for a forgotten blank
// import.
func StandardRules() []Rule {
	if len(standardRules) == 0 {
		panic(`transform: no standard rules registered; blank-import "github.com/devunt/mearie-sub001/transform/rules"`)
	}
	return standardRules
}
