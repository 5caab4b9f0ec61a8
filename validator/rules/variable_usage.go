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
	"github.com/devunt/mearie-sub001/docindex"
	"github.com/devunt/mearie-sub001/validator"
)

// VariableUsage implements "every variable used in the operation's
// arguments (recursively into list and object literal positions and into
// spread fragments) is defined; every defined variable is used at least
// once", both scoped to the operation. Fragments have no independent
// variable scope in executable GraphQL, so a spread's fragment is walked
// in place; a visited-fragment-names set guards against the cycle
// no-fragment-cycles separately reports.
type VariableUsage struct{}

// CheckOperation implements validator.OperationRule.
func (VariableUsage) CheckOperation(ctx *validator.Context, op *ast.OperationDefinition) validator.Action {
	defined := make(map[string]*ast.VariableDefinition, len(op.VariableDefinitions))
	for _, def := range op.VariableDefinitions {
		defined[string(def.Variable)] = def
	}

	used := make(map[string]bool)
	collectUsedVariables(ctx.Docs, op.SelectionSet, used, make(map[string]bool))
	for _, dir := range op.Directives {
		collectUsedVariablesInArgs(dir.Arguments, used)
	}

	for name := range used {
		if _, ok := defined[name]; !ok {
			ctx.Errorf(op.Span_, "variable \"$%s\" is not defined", name)
		}
	}
	for name, def := range defined {
		if !used[name] {
			ctx.Errorf(def.Span_, "variable \"$%s\" is never used", name)
		}
	}
	return validator.Next
}

func collectUsedVariables(docs *docindex.DocumentIndex, set ast.SelectionSet, used, visitedFragments map[string]bool) {
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			collectUsedVariablesInArgs(s.Arguments, used)
			for _, dir := range s.Directives {
				collectUsedVariablesInArgs(dir.Arguments, used)
			}
			collectUsedVariables(docs, s.SelectionSet, used, visitedFragments)
		case *ast.InlineFragment:
			for _, dir := range s.Directives {
				collectUsedVariablesInArgs(dir.Arguments, used)
			}
			collectUsedVariables(docs, s.SelectionSet, used, visitedFragments)
		case *ast.FragmentSpread:
			for _, dir := range s.Directives {
				collectUsedVariablesInArgs(dir.Arguments, used)
			}
			name := string(s.Name)
			if visitedFragments[name] {
				continue
			}
			visitedFragments[name] = true
			frag := docs.GetFragment(name)
			if frag == nil {
				continue
			}
			collectUsedVariables(docs, frag.SelectionSet, used, visitedFragments)
		}
	}
}

func collectUsedVariablesInArgs(args ast.Arguments, used map[string]bool) {
	for _, a := range args {
		collectUsedVariablesInValue(a.Value, used)
	}
}

func collectUsedVariablesInValue(v ast.Value, used map[string]bool) {
	switch val := v.(type) {
	case *ast.Variable:
		used[string(val.Name)] = true
	case *ast.ListValue:
		for _, item := range val.Items {
			collectUsedVariablesInValue(item, used)
		}
	case *ast.ObjectValue:
		for _, f := range val.Fields {
			collectUsedVariablesInValue(f.Value, used)
		}
	}
}
