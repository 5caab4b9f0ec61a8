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

package transform

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/internal/arena"
)

// walker performs the structural clone-and-rewrite pass described by §4.7:
// a depth-first traversal that copies every node into a fresh tree, giving
// each registered rule the chance to replace or delete the node it hooks.
// Unspecified hooks default to a structural clone, the same default the
// spec names ("Unspecified hooks default to a structural clone into a
// fresh arena-owned tree").
type walker struct {
	ctx   *Context
	rules *rules
}

func (w *walker) walkDocument(doc *ast.Document) *ast.Document {
	defs := make([]ast.Definition, 0, len(doc.Definitions))
	for _, def := range doc.Definitions {
		switch d := def.(type) {
		case *ast.OperationDefinition:
			defs = append(defs, w.walkOperation(d))
		case *ast.FragmentDefinition:
			if nf := w.walkFragment(d); nf != nil {
				defs = append(defs, nf)
			}
		default:
			// A TypeSystemDefinition has no business in an executable
			// document; carried through unchanged rather than dropped
			// silently, matching the parser's own tolerance for a mixed
			// document (ast.Document's doc comment).
			defs = append(defs, def)
		}
	}
	return arena.AllocNode(w.ctx.Arena, ast.Document{Definitions: defs, Span_: doc.Span_})
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

func (w *walker) walkOperation(op *ast.OperationDefinition) *ast.OperationDefinition {
	clone := arena.AllocNode(w.ctx.Arena, *op)

	rootType := w.rootTypeOf(op.Operation)
	w.ctx.PushType(rootType)
	clone.SelectionSet = w.walkSelectionSet(rootType, op.SelectionSet)
	w.ctx.PopType()

	return clone
}

func (w *walker) walkFragment(frag *ast.FragmentDefinition) *ast.FragmentDefinition {
	clone := arena.AllocNode(w.ctx.Arena, *frag)

	for _, r := range w.rules.fragment {
		clone = r.TransformFragment(w.ctx, clone)
		if clone == nil {
			return nil
		}
	}

	typeName := string(frag.TypeCondition.Name)
	w.ctx.PushType(typeName)
	clone.SelectionSet = w.walkSelectionSet(typeName, frag.SelectionSet)
	w.ctx.PopType()

	return clone
}

func (w *walker) walkSelectionSet(parentType string, set ast.SelectionSet) ast.SelectionSet {
	out := make(ast.SelectionSet, 0, len(set))
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.Field:
			if nf := w.walkField(parentType, s); nf != nil {
				out = append(out, nf)
			}
		case *ast.FragmentSpread:
			if ns := w.walkFragmentSpread(s); ns != nil {
				out = append(out, ns)
			}
		case *ast.InlineFragment:
			if ni := w.walkInlineFragment(parentType, s); ni != nil {
				out = append(out, ni)
			}
		}
	}

	for _, r := range w.rules.selectionSet {
		out = r.TransformSelectionSet(w.ctx, parentType, out)
	}

	return out
}

func (w *walker) walkField(parentType string, field *ast.Field) *ast.Field {
	clone := arena.AllocNode(w.ctx.Arena, *field)

	for _, r := range w.rules.field {
		clone = r.TransformField(w.ctx, clone)
		if clone == nil {
			return nil
		}
	}

	if len(field.SelectionSet) > 0 {
		fieldType := ""
		if def := w.ctx.Schema.GetField(parentType, string(field.Name)); def != nil {
			fieldType = string(def.Type.InnermostNamed())
		}
		w.ctx.PushType(fieldType)
		clone.SelectionSet = w.walkSelectionSet(fieldType, field.SelectionSet)
		w.ctx.PopType()
	}

	return clone
}

func (w *walker) walkFragmentSpread(spread *ast.FragmentSpread) *ast.FragmentSpread {
	clone := arena.AllocNode(w.ctx.Arena, *spread)

	for _, r := range w.rules.fragmentSpread {
		clone = r.TransformFragmentSpread(w.ctx, clone)
		if clone == nil {
			return nil
		}
	}

	return clone
}

func (w *walker) walkInlineFragment(parentType string, frag *ast.InlineFragment) *ast.InlineFragment {
	clone := arena.AllocNode(w.ctx.Arena, *frag)

	targetType := parentType
	if frag.HasTypeCondition() {
		targetType = string(frag.TypeCondition.Name)
	}

	w.ctx.PushType(targetType)
	clone.SelectionSet = w.walkSelectionSet(targetType, frag.SelectionSet)
	w.ctx.PopType()

	return clone
}
