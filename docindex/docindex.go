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

// Package docindex builds and exposes the DocumentIndex (§4.5): the catalog
// of operation and fragment definitions drawn from one or more operation
// documents, keyed by name for the validator, transformer and generator to
// consult. Grounded on the same TypeMap-style incremental build as
// schema.Build, generalized with internal/orderedmap for deterministic
// iteration (spec §9).
package docindex

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/internal/orderedmap"
	"github.com/devunt/mearie-sub001/parser"
	"github.com/devunt/mearie-sub001/source"
)

// DocumentIndex is the built, queryable catalog described by spec §3/§4.5.
type DocumentIndex struct {
	operations      []*ast.OperationDefinition
	operationByName *orderedmap.Map[*ast.OperationDefinition]
	fragments       *orderedmap.Map[*ast.FragmentDefinition]
	sourceOf        map[ast.Definition]source.Source
}

// Operations returns every operation definition (named and anonymous) in
// the order their documents were supplied and, within a document, in
// declaration order.
func (d *DocumentIndex) Operations() []*ast.OperationDefinition {
	return d.operations
}

// Fragments returns every fragment definition in declaration order.
func (d *DocumentIndex) Fragments() []*ast.FragmentDefinition {
	return d.fragments.Values()
}

// GetOperation looks up a named operation. Anonymous operations are never
// returned (they have no name to look up by).
func (d *DocumentIndex) GetOperation(name string) *ast.OperationDefinition {
	op, _ := d.operationByName.Get(name)
	return op
}

// GetFragment looks up a fragment by name.
func (d *DocumentIndex) GetFragment(name string) *ast.FragmentDefinition {
	frag, _ := d.fragments.Get(name)
	return frag
}

// HasFragment reports whether a fragment named name is registered.
func (d *DocumentIndex) HasFragment(name string) bool {
	return d.fragments.Has(name)
}

// Count returns the total number of executable definitions (operations plus
// fragments) registered.
func (d *DocumentIndex) Count() int {
	return len(d.operations) + d.fragments.Len()
}

// SourceOf returns the Source the given definition was parsed from, needed
// by the generator to recover a definition's exact text for the `graphql`
// overload's literal-string parameter (§4.8 item 5).
func (d *DocumentIndex) SourceOf(def ast.Definition) (source.Source, bool) {
	src, ok := d.sourceOf[def]
	return src, ok
}

// ParseAll parses every src in order, allocating into a, and returns the
// documents that parsed successfully (in the same order as their source)
// plus the matching source for each. Parse failures are appended to errs
// and that document is skipped, per §7 ("parse errors skip the offending
// document but not others"). The pipeline orchestrator uses this to get
// one shared []*ast.Document it can hand to both Build and the validator
// (which needs per-document boundaries for the "exactly one operation or
// fragment" rule, §4.6 "Document shape").
func ParseAll(a *arena.Arena, srcs []source.Source, errs *gqlerrors.List) ([]*ast.Document, []source.Source) {
	docs := make([]*ast.Document, 0, len(srcs))
	kept := make([]source.Source, 0, len(srcs))
	for _, src := range srcs {
		doc, err := parser.Parse(src, a)
		if err != nil {
			if gerr, ok := err.(gqlerrors.Error); ok {
				errs.Add(gerr)
			} else {
				errs.Add(gqlerrors.New(gqlerrors.StageParse, err.Error()))
			}
			continue
		}
		docs = append(docs, doc)
		kept = append(kept, src)
	}
	return docs, kept
}

// Build parses srcs (each an operation document: one or more operations
// and/or fragments) in order and assembles a DocumentIndex. AST nodes are
// allocated into a. Duplicate operation names and duplicate fragment names
// are reported in the returned error list per §3's invariants; the returned
// index is still populated with whichever definitions parsed and did not
// collide, per §7's partial-output policy.
func Build(a *arena.Arena, srcs []source.Source) (*DocumentIndex, gqlerrors.List) {
	var errs gqlerrors.List
	docs, kept := ParseAll(a, srcs, &errs)
	idx := BuildFromDocuments(docs, kept, &errs)
	return idx, errs
}

// BuildFromDocuments assembles a DocumentIndex from already-parsed
// documents, each paired with the Source it came from (same length,
// matching index). errs accumulates duplicate-name problems.
func BuildFromDocuments(docs []*ast.Document, srcs []source.Source, errs *gqlerrors.List) *DocumentIndex {
	idx := &DocumentIndex{
		operationByName: orderedmap.New[*ast.OperationDefinition](),
		fragments:       orderedmap.New[*ast.FragmentDefinition](),
		sourceOf:        make(map[ast.Definition]source.Source),
	}

	for i, doc := range docs {
		src := srcs[i]
		for _, def := range doc.Definitions {
			switch d := def.(type) {
			case *ast.OperationDefinition:
				idx.sourceOf[d] = src
				if !d.IsAnonymous() {
					if idx.operationByName.Has(string(d.Name)) {
						errs.Add(gqlerrors.At(gqlerrors.StageValidation,
							"there can be only one operation named \""+string(d.Name)+"\"", src, d.Span_))
						continue
					}
					idx.operationByName.Set(string(d.Name), d)
				}
				idx.operations = append(idx.operations, d)
			case *ast.FragmentDefinition:
				idx.sourceOf[d] = src
				if idx.fragments.Has(string(d.Name)) {
					errs.Add(gqlerrors.At(gqlerrors.StageValidation,
						"there can be only one fragment named \""+string(d.Name)+"\"", src, d.Span_))
					continue
				}
				idx.fragments.Set(string(d.Name), d)
			}
		}
	}

	return idx
}
