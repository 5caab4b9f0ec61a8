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

// Package codegen is the typed-surface generator described by spec §4.8:
// given a built schema index and a (transformed) document index, it emits
// a deterministic pair of TypeScript declaration files, assembled by direct
// string building the way the teacher's ast/printer does (no text/template,
// no AST-building library — a strings.Builder and fmt.Fprintf, the same manual
// assembly texture as the other_examples schemagen reference this package
// is grounded on). Output ordering follows insertion order throughout:
// schema types via schema.SchemaIndex.Types()/Enums(), documents via
// docindex.DocumentIndex.Operations()/Fragments() — nothing here reads a
// clock or a random source (§4.8 "Determinism").
package codegen

import (
	"fmt"

	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/config"
	"github.com/devunt/mearie-sub001/docindex"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/schema"
	"github.com/devunt/mearie-sub001/source"
)

// generatedHeader is prepended to every emitted file.
const generatedHeader = "// Code generated by the GraphQL toolchain. DO NOT EDIT.\n\n"

// virtualModule is the stable virtual module name the typed surface is
// declared under (§4.8: "exported under a stable virtual module name, e.g.
// `~graphql`").
const virtualModule = "~graphql"

// Generator produces the typed-surface declaration files described by
// §4.8, from a built SchemaIndex and a (transformed) DocumentIndex.
type Generator struct {
	schema *schema.SchemaIndex
	docs   *docindex.DocumentIndex
	cfg    config.Config
}

// New builds a Generator over schemaIdx and docIdx. cfg supplies the
// `scalars` override map (§6's Input surface); the zero Config is a valid
// argument and falls every custom scalar back to `unknown`.
func New(schemaIdx *schema.SchemaIndex, docIdx *docindex.DocumentIndex, cfg config.Config) *Generator {
	return &Generator{schema: schemaIdx, docs: docIdx, cfg: cfg}
}

// Generate returns the generator's output sources: graphql.d.ts (the typed
// module declaration) and types.d.ts (the per-artifact types), in that
// order, per §6's Output surface ("At minimum the set includes
// graphql.d.ts ... and types.d.ts"), plus any codegen-stage errors found
// along the way (§7's error taxonomy). The sources are still returned even
// when errs is non-empty — a document whose own root type is missing still
// lets every other document generate (§7 "Propagation").
func (g *Generator) Generate() ([]source.Source, gqlerrors.List) {
	errs := g.checkRootTypes()
	return []source.Source{
		{Code: g.moduleFile(), FilePath: "graphql.d.ts"},
		{Code: g.typesFile(), FilePath: "types.d.ts"},
	}, errs
}

// checkRootTypes reports a StageCodegen error for every operation kind
// present in g.docs whose schema has no corresponding root type (spec §7:
// "Missing root type for an operation kind that occurs in a document").
// Each kind is reported at most once, at the first operation of that kind
// encountered in document order.
func (g *Generator) checkRootTypes() gqlerrors.List {
	var errs gqlerrors.List
	reported := map[ast.OperationType]bool{}

	for _, op := range g.docs.Operations() {
		if reported[op.Operation] {
			continue
		}
		reported[op.Operation] = true

		if g.rootTypeOf(op.Operation) != "" {
			continue
		}

		src, _ := g.docs.SourceOf(op)
		errs.Add(gqlerrors.At(gqlerrors.StageCodegen,
			fmt.Sprintf("missing root type for %s operations", op.Operation),
			src, op.Loc()))
	}

	return errs
}

// rootTypeOf returns the schema's root type name for op's operation kind,
// or "" if the schema declares none — the same mapping the validator and
// transformer each keep their own copy of (validator/walk.go,
// transform/walk.go), since none of the three packages import another.
func (g *Generator) rootTypeOf(op ast.OperationType) string {
	switch op {
	case ast.OperationTypeMutation:
		return string(g.schema.MutationType())
	case ast.OperationTypeSubscription:
		return string(g.schema.SubscriptionType())
	default:
		return string(g.schema.QueryType())
	}
}

// namedOperations returns every operation in g.docs that has an explicit
// name, in declaration order. An anonymous operation has no identifier a
// type alias or graphql() overload could be keyed on, so it contributes no
// output here; it still executes fine at runtime, it just isn't part of
// this typed surface.
func (g *Generator) namedOperations() []*ast.OperationDefinition {
	var out []*ast.OperationDefinition
	for _, op := range g.docs.Operations() {
		if !op.IsAnonymous() {
			out = append(out, op)
		}
	}
	return out
}
