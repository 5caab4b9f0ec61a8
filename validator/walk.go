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

package validator

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/docindex"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/schema"
	"github.com/devunt/mearie-sub001/source"
)

// Validate runs the standard rule set (the rules registered by
// validator/rules's init(), via RegisterStandardRules) over every document
// in docs, returning every error found. docs and srcs must correspond
// index-for-index, the same pairing docindex.BuildFromDocuments expects;
// the pipeline package is expected to hand Validate the exact slices it
// gave docindex.Build.
func Validate(schemaIdx *schema.SchemaIndex, docIdx *docindex.DocumentIndex, docs []*ast.Document, srcs []source.Source) gqlerrors.List {
	return ValidateWithRules(schemaIdx, docIdx, docs, srcs, StandardRules())
}

// ValidateWithRules runs an explicit rule set instead of the standard one,
// letting tests exercise a single rule (or a handful) in isolation — the
// same shape as the teacher's ValidateWithRules helper.
func ValidateWithRules(schemaIdx *schema.SchemaIndex, docIdx *docindex.DocumentIndex, docs []*ast.Document, srcs []source.Source, rs []Rule) gqlerrors.List {
	var errs gqlerrors.List
	ctx := newContext(schemaIdx, docIdx, &errs)
	built := buildRules(rs)

	w := &walker{ctx: ctx, rules: built}
	for i, doc := range docs {
		ctx.SetSource(srcs[i])
		w.walkDocument(doc)
	}

	for _, r := range built.finish {
		r.Finish(ctx)
	}

	return errs
}

type walker struct {
	ctx   *Context
	rules *rules
}

func (w *walker) walkDocument(doc *ast.Document) {
	for _, r := range w.rules.document {
		if r.CheckDocument(w.ctx, doc) != Next {
			return
		}
	}

	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			w.walkOperation(d)
		case *ast.FragmentDefinition:
			w.walkFragment(d)
		}
	}
}

func (w *walker) walkOperation(op *ast.OperationDefinition) {
	for _, r := range w.rules.operation {
		if r.CheckOperation(w.ctx, op) != Next {
			return
		}
	}

	for _, dir := range op.Directives {
		w.checkDirective(operationDirectiveLocation(op.Operation), dir)
	}

	for _, def := range op.VariableDefinitions {
		for _, r := range w.rules.variableDefinition {
			r.CheckVariableDefinition(w.ctx, op, def)
		}
		for _, dir := range def.Directives {
			w.checkDirective(LocationVariableDefinition, dir)
		}
	}

	rootType := w.rootTypeOf(op.Operation)
	w.ctx.PushType(rootType)
	w.walkSelectionSet(rootType, op.SelectionSet)
	w.ctx.PopType()
}

func operationDirectiveLocation(op ast.OperationType) DirectiveLocation {
	switch op {
	case ast.OperationTypeMutation:
		return LocationMutation
	case ast.OperationTypeSubscription:
		return LocationSubscription
	default:
		return LocationQuery
	}
}

func (w *walker) rootTypeOf(op ast.OperationType) string {
	switch op {
	case ast.OperationTypeMutation:
		return string(w.ctx.Schema.MutationType())
	case ast.OperationTypeSubscription:
		return string(w.ctx.Schema.SubscriptionType())
	default:
		return string(w.ctx.Schema.QueryType())
	}
}

func (w *walker) walkFragment(frag *ast.FragmentDefinition) {
	for _, r := range w.rules.fragment {
		if r.CheckFragment(w.ctx, frag) != Next {
			return
		}
	}

	for _, dir := range frag.Directives {
		w.checkDirective(LocationFragmentDefinition, dir)
	}

	typeName := string(frag.TypeCondition.Name)
	w.ctx.PushType(typeName)
	w.walkSelectionSet(typeName, frag.SelectionSet)
	w.ctx.PopType()
}

func (w *walker) walkSelectionSet(parentType string, set ast.SelectionSet) {
	for _, r := range w.rules.selectionSet {
		if r.CheckSelectionSet(w.ctx, parentType, set) != Next {
			return
		}
	}

	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			w.walkField(parentType, s)
		case *ast.FragmentSpread:
			w.walkFragmentSpread(s)
		case *ast.InlineFragment:
			w.walkInlineFragment(parentType, s)
		}
	}
}

func (w *walker) walkField(parentType string, field *ast.Field) {
	for _, r := range w.rules.field {
		if r.CheckField(w.ctx, field) != Next {
			return
		}
	}

	for _, dir := range field.Directives {
		w.checkDirective(LocationField, dir)
	}

	if field.SelectionSet == nil {
		return
	}

	fieldType := ""
	if def := w.ctx.Schema.GetField(parentType, string(field.Name)); def != nil {
		fieldType = string(def.Type.InnermostNamed())
	}
	w.ctx.PushType(fieldType)
	w.walkSelectionSet(fieldType, field.SelectionSet)
	w.ctx.PopType()
}

func (w *walker) walkFragmentSpread(spread *ast.FragmentSpread) {
	w.ctx.MarkFragmentUsed(string(spread.Name))

	for _, r := range w.rules.fragmentSpread {
		if r.CheckFragmentSpread(w.ctx, spread) != Next {
			return
		}
	}

	for _, dir := range spread.Directives {
		w.checkDirective(LocationFragmentSpread, dir)
	}
}

func (w *walker) walkInlineFragment(parentType string, frag *ast.InlineFragment) {
	for _, r := range w.rules.inlineFragment {
		if r.CheckInlineFragment(w.ctx, frag) != Next {
			return
		}
	}

	for _, dir := range frag.Directives {
		w.checkDirective(LocationInlineFragment, dir)
	}

	targetType := parentType
	if frag.HasTypeCondition() {
		targetType = string(frag.TypeCondition.Name)
	}
	w.ctx.PushType(targetType)
	w.walkSelectionSet(targetType, frag.SelectionSet)
	w.ctx.PopType()
}

func (w *walker) checkDirective(loc DirectiveLocation, dir *ast.Directive) {
	for _, r := range w.rules.directive {
		if r.CheckDirective(w.ctx, loc, dir) != Next {
			return
		}
	}
}
