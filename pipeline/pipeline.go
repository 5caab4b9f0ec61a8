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

// Package pipeline orchestrates the stages described by spec §2 and §5:
// build the schema index, parse and index the documents, validate, then
// transform each document and hand the transformed result to the
// generator — schemas in the order supplied, then documents in the order
// supplied, then rules in their fixed published order (§5 "Ordering
// guarantees"). A single Arena backs the whole call and every stage
// appends to one shared gqlerrors.List instead of aborting (§7
// "Propagation"): a parse failure skips that document, a validation
// failure does not stop any parsed document (the failing one included)
// from being transformed and generated, and the generator returns its two
// output files even when errors were recorded.
//
// Grounded on the teacher's own top-level entry points (graphql.Do,
// graphql.BuildSchema) composing schema build, validation and execution
// behind one call, adapted here to this core's build/validate/transform/
// generate shape instead of the teacher's build/validate/execute one.
package pipeline

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/codegen"
	"github.com/devunt/mearie-sub001/config"
	"github.com/devunt/mearie-sub001/docindex"
	"github.com/devunt/mearie-sub001/extract"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/schema"
	"github.com/devunt/mearie-sub001/source"
	"github.com/devunt/mearie-sub001/transform"
	"github.com/devunt/mearie-sub001/validator"
)

// Options is the pipeline's Input surface (§6): the schema and document
// sources, the one recognized Config, and an optional extraction
// collaborator for hosts whose document sources are host-language files
// with embedded GraphQL literals rather than bare .graphql text.
type Options struct {
	SchemaSources   []source.Source
	DocumentSources []source.Source
	Config          config.Config

	// Extract, when non-nil, runs over DocumentSources first and replaces
	// them with whatever GraphQL fragments it finds embedded in them
	// (§6 "Extraction collaborator interface"). Leave nil when
	// DocumentSources are already plain GraphQL text.
	Extract extract.Func
}

// Result is the pipeline's Output surface (§6): the generated sources and
// the accumulated error list from every stage.
type Result struct {
	Sources []source.Source
	Errors  gqlerrors.List
}

// Run executes the full pipeline once: extraction (if configured), schema
// build, document parse and index, validation, per-document transform, and
// generation. The arena backing the call is owned entirely by Run and
// discarded when it returns; output sources own their own text (§5
// "Resource discipline").
func Run(opts Options) Result {
	var errs gqlerrors.List
	a := arena.New()

	docSources := opts.DocumentSources
	if opts.Extract != nil {
		docSources = runExtraction(opts.Extract, opts.DocumentSources, &errs)
	}

	schemaIdx, schemaErrs := schema.Build(a, opts.SchemaSources)
	errs.AddAll(&schemaErrs)

	docs, keptSources := docindex.ParseAll(a, docSources, &errs)
	docIdx := docindex.BuildFromDocuments(docs, keptSources, &errs)

	validationErrs := validator.Validate(schemaIdx, docIdx, docs, keptSources)
	errs.AddAll(&validationErrs)

	transformedDocs, transformedSources := transformAll(schemaIdx, a, docs, keptSources)
	transformedIdx := docindex.BuildFromDocuments(transformedDocs, transformedSources, &errs)

	gen := codegen.New(schemaIdx, transformedIdx, opts.Config)
	sources, genErrs := gen.Generate()
	errs.AddAll(&genErrs)

	return Result{Sources: sources, Errors: errs}
}

// runExtraction runs fn over every host source in order, in document order,
// concatenating whatever GraphQL fragments each yields; extraction errors
// are folded into errs rather than aborting the remaining sources (§7).
func runExtraction(fn extract.Func, hostSources []source.Source, errs *gqlerrors.List) []source.Source {
	var out []source.Source
	for _, host := range hostSources {
		result := fn(host)
		out = append(out, result.Sources...)
		errs.AddAll(&result.Errors)
	}
	return out
}

// transformAll runs the standard transform rule set over every successfully
// parsed document in order, pairing each transformed *ast.Document with a
// Source carrying its canonical reprint — the text the generator's graphql()
// overloads key their literal-string matching on (§4.8 item 5), and the
// text a runtime would actually send over the wire.
func transformAll(schemaIdx *schema.SchemaIndex, a *arena.Arena, docs []*ast.Document, srcs []source.Source) ([]*ast.Document, []source.Source) {
	outDocs := make([]*ast.Document, len(docs))
	outSources := make([]source.Source, len(docs))

	for i, doc := range docs {
		result := transform.Transform(schemaIdx, a, doc, srcs[i])
		outDocs[i] = result.Document
		outSources[i] = result.Source
	}

	return outDocs, outSources
}
