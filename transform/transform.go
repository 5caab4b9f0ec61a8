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
	"github.com/devunt/mearie-sub001/ast/printer"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/schema"
	"github.com/devunt/mearie-sub001/source"
)

// Result is the product of one transformation pass: the rewritten AST plus
// a Source whose Code is the canonical reprint of that AST (§4.7: "the
// visitor emits a new Document whose source.code is re-printed from the
// transformed AST"). FilePath and StartLine are carried over from the input
// Source unchanged, since the rewritten text still originates from the same
// file position as far as a caller's diagnostics are concerned.
type Result struct {
	Document *ast.Document
	Source   source.Source
}

// Transform runs the standard rule set (the rules registered by
// transform/rules's init(), via RegisterStandardRules) over doc, in the
// fixed order §4.7 prescribes: strip @required, inject __typename/entity-
// key, compile away fragment arguments.
func Transform(schemaIdx *schema.SchemaIndex, a *arena.Arena, doc *ast.Document, src source.Source) Result {
	return TransformWithRules(schemaIdx, a, doc, src, StandardRules())
}

// TransformWithRules runs an explicit rule set instead of the standard one,
// letting tests exercise a single rule in isolation.
func TransformWithRules(schemaIdx *schema.SchemaIndex, a *arena.Arena, doc *ast.Document, src source.Source, rs []Rule) Result {
	ctx := newContext(schemaIdx, a)
	w := &walker{ctx: ctx, rules: buildRules(rs)}

	newDoc := w.walkDocument(doc)
	printed := printer.PrintDocument(newDoc)

	return Result{
		Document: newDoc,
		Source: source.Source{
			Code:      printed,
			FilePath:  src.FilePath,
			StartLine: src.StartLine,
		},
	}
}
