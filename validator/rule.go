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

// Package validator implements the visitor-driven validation rule engine
// described by spec §4.6: a single depth-first traversal over an executable
// document that fans pre-order hooks out to every registered rule. A rule
// is any value implementing one or more of the hook interfaces below;
// unimplemented hooks cost nothing to skip, per DESIGN NOTES "Visitor
// composition" (hooks are matched once per rule via a type assertion, the
// same bucketing idiom as the teacher's validator/rule.go + validate.go,
// simplified to the subset of node kinds this spec's grammar actually
// needs a hook for).
package validator

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/ast/visitor"
)

// Action is the traversal control signal a hook returns; re-exported from
// ast/visitor so rule implementations only need to import this package.
type Action = visitor.Action

const (
	Next  = visitor.Next
	Skip  = visitor.Skip
	Break = visitor.Break
)

// DirectiveLocation identifies where a directive application was found,
// using the GraphQL spec's executable DirectiveLocation names.
type DirectiveLocation string

// Enumeration of the executable DirectiveLocations this toolchain cares
// about (type-system locations are schema.Build's concern, not the
// validator's).
const (
	LocationQuery              DirectiveLocation = "QUERY"
	LocationMutation           DirectiveLocation = "MUTATION"
	LocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	LocationField              DirectiveLocation = "FIELD"
	LocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"
)

// DocumentRule checks the whole document as a unit (§4.6 "Document shape").
type DocumentRule interface {
	CheckDocument(ctx *Context, doc *ast.Document) Action
}

// OperationRule checks one operation definition.
type OperationRule interface {
	CheckOperation(ctx *Context, op *ast.OperationDefinition) Action
}

// FragmentRule checks one fragment definition.
type FragmentRule interface {
	CheckFragment(ctx *Context, frag *ast.FragmentDefinition) Action
}

// VariableDefinitionRule checks one `$var: Type = default` entry of an
// operation (fragment-argument variable definitions are skipped; §4.7 item
// 3 notes these are a codegen-time concern by design).
type VariableDefinitionRule interface {
	CheckVariableDefinition(ctx *Context, op *ast.OperationDefinition, def *ast.VariableDefinition) Action
}

// SelectionSetRule checks a whole selection set at once (needed for
// same-response-key merge checks, which require seeing every sibling).
type SelectionSetRule interface {
	CheckSelectionSet(ctx *Context, parentType string, set ast.SelectionSet) Action
}

// FieldRule checks one field selection. ctx.ParentType() is the type that
// declares (or fails to declare) the field.
type FieldRule interface {
	CheckField(ctx *Context, field *ast.Field) Action
}

// FragmentSpreadRule checks one `...Name` selection.
type FragmentSpreadRule interface {
	CheckFragmentSpread(ctx *Context, spread *ast.FragmentSpread) Action
}

// InlineFragmentRule checks one `... [on Type] { ... }` selection.
type InlineFragmentRule interface {
	CheckInlineFragment(ctx *Context, frag *ast.InlineFragment) Action
}

// DirectiveRule checks one directive application, wherever it appears.
type DirectiveRule interface {
	CheckDirective(ctx *Context, loc DirectiveLocation, dir *ast.Directive) Action
}

// FinishRule runs once after every document has been walked, for checks
// that need global knowledge (fragment usage, fragment spread cycles).
type FinishRule interface {
	Finish(ctx *Context)
}

// Rule is any value satisfying at least one of the hook interfaces above.
// It exists purely as documentation; the engine accepts plain
// interface{}/any and buckets by type assertion, the same as the teacher's
// ValidateWithRules(schema, document, rs ...interface{}).
type Rule = any

// rules buckets registered Rule values by which hook interface they
// implement, built once per Validate call so the hot traversal loop never
// does a type assertion per node per rule — only the cheap slice append at
// startup pays that cost (DESIGN NOTES "Visitor composition").
type rules struct {
	document             []DocumentRule
	operation            []OperationRule
	fragment             []FragmentRule
	variableDefinition   []VariableDefinitionRule
	selectionSet         []SelectionSetRule
	field                []FieldRule
	fragmentSpread       []FragmentSpreadRule
	inlineFragment       []InlineFragmentRule
	directive            []DirectiveRule
	finish               []FinishRule
}

func buildRules(rs []Rule) *rules {
	out := &rules{}
	for _, r := range rs {
		if x, ok := r.(DocumentRule); ok {
			out.document = append(out.document, x)
		}
		if x, ok := r.(OperationRule); ok {
			out.operation = append(out.operation, x)
		}
		if x, ok := r.(FragmentRule); ok {
			out.fragment = append(out.fragment, x)
		}
		if x, ok := r.(VariableDefinitionRule); ok {
			out.variableDefinition = append(out.variableDefinition, x)
		}
		if x, ok := r.(SelectionSetRule); ok {
			out.selectionSet = append(out.selectionSet, x)
		}
		if x, ok := r.(FieldRule); ok {
			out.field = append(out.field, x)
		}
		if x, ok := r.(FragmentSpreadRule); ok {
			out.fragmentSpread = append(out.fragmentSpread, x)
		}
		if x, ok := r.(InlineFragmentRule); ok {
			out.inlineFragment = append(out.inlineFragment, x)
		}
		if x, ok := r.(DirectiveRule); ok {
			out.directive = append(out.directive, x)
		}
		if x, ok := r.(FinishRule); ok {
			out.finish = append(out.finish, x)
		}
	}
	return out
}

// standardRules holds the rule set registered by validator/rules's init()
// function. It cannot be populated here directly: the concrete rule types
// live in a child package that imports validator for the hook interfaces
// and Context, so validator itself cannot import them back without a
// cycle. This mirrors the teacher's own
// InitStandardRules/StandardRules split (graphql/validator/standard_rules.go),
// simplified to drop its runtime.Caller-based caller-checking, which this
// module's tests do not need.
var standardRules []Rule

// RegisterStandardRules is called by validator/rules's init() to install
// the standard rule set. It is not meant to be called from anywhere else.
func RegisterStandardRules(rs ...Rule) {
	standardRules = append(standardRules, rs...)
}

// StandardRules returns the rule set registered by RegisterStandardRules.
// Validate panics if it is empty, the same diagnostic the teacher gives:
// the caller forgot to blank-import validator/rules.
func StandardRules() []Rule {
	if len(standardRules) == 0 {
		panic(`validator: no standard rules registered; blank-import "github.com/devunt/mearie-sub001/validator/rules"`)
	}
	return standardRules
}
