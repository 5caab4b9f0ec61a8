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

package schema

import (
	"fmt"

	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/internal/orderedmap"
	"github.com/devunt/mearie-sub001/parser"
	"github.com/devunt/mearie-sub001/source"
)

// Build assembles a SchemaIndex from the built-in SDL (§4.4) followed by
// srcs in the order given, folding type-system extensions into the
// definitions they extend. All AST nodes produced while parsing are
// allocated into a, so the returned index's TypeInfo/FieldDefinition
// pointers stay valid for as long as a does.
//
// Build never returns a nil index: even a schema with build errors gets a
// best-effort index back (§7 "a non-empty errors list does not imply an
// empty result"), so a caller inspecting only a subset of the reported
// problems can still make partial progress.
func Build(a *arena.Arena, srcs []source.Source) (*SchemaIndex, gqlerrors.List) {
	b := &builder{
		types:      orderedmap.New[*TypeInfo](),
		directives: orderedmap.New[*ast.DirectiveDefinition](),
	}

	builtinSrc := source.Source{Code: Builtin, FilePath: "<builtin>"}
	doc, err := parser.Parse(builtinSrc, a)
	if err != nil {
		// The built-in SDL is fixed at compile time; a failure here is a bug
		// in this package, not a user error, so it is not worth a structured
		// Error. Panicking surfaces it immediately in development/tests.
		panic(fmt.Sprintf("schema: built-in SDL failed to parse: %v", err))
	}
	b.ingest(doc, builtinSrc)

	for _, src := range srcs {
		doc, err := parser.Parse(src, a)
		if err != nil {
			if gerr, ok := err.(gqlerrors.Error); ok {
				b.errs.Add(gerr)
			} else {
				b.errs.Add(gqlerrors.New(gqlerrors.StageParse, err.Error()))
			}
			continue
		}
		b.ingest(doc, src)
	}

	return b.finish(), b.errs
}

type builder struct {
	types      *orderedmap.Map[*TypeInfo]
	directives *orderedmap.Map[*ast.DirectiveDefinition]

	customScalarOrder []string

	sawSchemaDef     bool
	queryType        ast.TypeName
	mutationType     ast.TypeName
	subscriptionType ast.TypeName

	errs gqlerrors.List
}

func (b *builder) errorf(src source.Source, span source.Span, format string, args ...any) {
	b.errs.Add(gqlerrors.At(gqlerrors.StageValidation, fmt.Sprintf(format, args...), src, span))
}

func (b *builder) ingest(doc *ast.Document, src source.Source) {
	for _, def := range doc.Definitions {
		b.addDefinition(def, src)
	}
}

func (b *builder) declareType(name string, info *TypeInfo, span source.Span, src source.Source) {
	if b.types.Has(name) {
		b.errorf(src, span, "there can be only one type named %q", name)
		return
	}
	b.types.Set(name, info)
}

func (b *builder) addDefinition(def ast.Definition, src source.Source) {
	switch d := def.(type) {
	case *ast.ScalarTypeDefinition:
		b.declareType(string(d.Name), &TypeInfo{Name: d.Name, Kind: KindScalar, Description: d.Description}, d.Span_, src)
		if !builtinScalars[string(d.Name)] {
			b.customScalarOrder = append(b.customScalarOrder, string(d.Name))
		}

	case *ast.ObjectTypeDefinition:
		fields := orderedmap.New[*ast.FieldDefinition]()
		for _, f := range d.Fields {
			if fields.Has(string(f.Name)) {
				b.errorf(src, f.Span_, "field %q is already defined on type %q", f.Name, d.Name)
				continue
			}
			fields.Set(string(f.Name), f)
		}
		b.declareType(string(d.Name), &TypeInfo{
			Name: d.Name, Kind: KindObject, Description: d.Description,
			Interfaces: d.Interfaces, Fields: fields,
		}, d.Span_, src)

	case *ast.InterfaceTypeDefinition:
		fields := orderedmap.New[*ast.FieldDefinition]()
		for _, f := range d.Fields {
			if fields.Has(string(f.Name)) {
				b.errorf(src, f.Span_, "field %q is already defined on type %q", f.Name, d.Name)
				continue
			}
			fields.Set(string(f.Name), f)
		}
		b.declareType(string(d.Name), &TypeInfo{
			Name: d.Name, Kind: KindInterface, Description: d.Description,
			Interfaces: d.Interfaces, Fields: fields,
		}, d.Span_, src)

	case *ast.UnionTypeDefinition:
		b.declareType(string(d.Name), &TypeInfo{
			Name: d.Name, Kind: KindUnion, Description: d.Description, Members: d.Members,
		}, d.Span_, src)

	case *ast.EnumTypeDefinition:
		b.declareType(string(d.Name), &TypeInfo{
			Name: d.Name, Kind: KindEnum, Description: d.Description, Values: d.Values,
		}, d.Span_, src)

	case *ast.InputObjectTypeDefinition:
		fields := orderedmap.New[*ast.InputValueDefinition]()
		for _, f := range d.Fields {
			if fields.Has(string(f.Name)) {
				b.errorf(src, f.Span_, "field %q is already defined on input type %q", f.Name, d.Name)
				continue
			}
			fields.Set(string(f.Name), f)
		}
		b.declareType(string(d.Name), &TypeInfo{
			Name: d.Name, Kind: KindInputObject, Description: d.Description, InputFields: fields,
		}, d.Span_, src)

	case *ast.DirectiveDefinition:
		if b.directives.Has(string(d.Name)) {
			b.errorf(src, d.Span_, "there can be only one directive named \"@%s\"", d.Name)
			return
		}
		b.directives.Set(string(d.Name), d)

	case *ast.SchemaDefinition:
		b.sawSchemaDef = true
		b.applyRootTypes(d.RootTypes)

	case *ast.ScalarTypeExtension:
		b.extendScalar(string(d.Name), d.Span_, src)
	case *ast.ObjectTypeExtension:
		b.extendObjectLike(string(d.Name), d.Interfaces, d.Fields, d.Span_, src)
	case *ast.InterfaceTypeExtension:
		b.extendObjectLike(string(d.Name), d.Interfaces, d.Fields, d.Span_, src)
	case *ast.UnionTypeExtension:
		b.extendUnion(string(d.Name), d.Members, d.Span_, src)
	case *ast.EnumTypeExtension:
		b.extendEnum(string(d.Name), d.Values, d.Span_, src)
	case *ast.InputObjectTypeExtension:
		b.extendInputObject(string(d.Name), d.Fields, d.Span_, src)
	case *ast.SchemaExtension:
		b.applyRootTypes(d.RootTypes)
	}
}

func (b *builder) applyRootTypes(roots []ast.RootOperationTypeDefinition) {
	for _, r := range roots {
		switch r.Operation {
		case ast.OperationTypeQuery:
			b.queryType = r.Type.Name
		case ast.OperationTypeMutation:
			b.mutationType = r.Type.Name
		case ast.OperationTypeSubscription:
			b.subscriptionType = r.Type.Name
		}
	}
}

func (b *builder) extendScalar(name string, span source.Span, src source.Source) {
	if !b.types.Has(name) {
		b.errorf(src, span, "cannot extend type %q because it is not defined", name)
	}
}

func (b *builder) extendObjectLike(name string, ifaces []ast.TypeName, fields []*ast.FieldDefinition, span source.Span, src source.Source) {
	info, ok := b.types.Get(name)
	if !ok {
		b.errorf(src, span, "cannot extend type %q because it is not defined", name)
		return
	}
	info.Interfaces = append(info.Interfaces, ifaces...)
	if info.Fields == nil {
		info.Fields = orderedmap.New[*ast.FieldDefinition]()
	}
	for _, f := range fields {
		if info.Fields.Has(string(f.Name)) {
			b.errorf(src, f.Span_, "field %q is already defined on type %q", f.Name, name)
			continue
		}
		info.Fields.Set(string(f.Name), f)
	}
}

func (b *builder) extendUnion(name string, members []ast.TypeName, span source.Span, src source.Source) {
	info, ok := b.types.Get(name)
	if !ok {
		b.errorf(src, span, "cannot extend type %q because it is not defined", name)
		return
	}
	info.Members = append(info.Members, members...)
}

func (b *builder) extendEnum(name string, values []*ast.EnumValueDefinition, span source.Span, src source.Source) {
	info, ok := b.types.Get(name)
	if !ok {
		b.errorf(src, span, "cannot extend type %q because it is not defined", name)
		return
	}
	info.Values = append(info.Values, values...)
}

func (b *builder) extendInputObject(name string, fields []*ast.InputValueDefinition, span source.Span, src source.Source) {
	info, ok := b.types.Get(name)
	if !ok {
		b.errorf(src, span, "cannot extend type %q because it is not defined", name)
		return
	}
	if info.InputFields == nil {
		info.InputFields = orderedmap.New[*ast.InputValueDefinition]()
	}
	for _, f := range fields {
		if info.InputFields.Has(string(f.Name)) {
			b.errorf(src, f.Span_, "field %q is already defined on input type %q", f.Name, name)
			continue
		}
		info.InputFields.Set(string(f.Name), f)
	}
}

// finish resolves the default root type names (§4.4: literal Query/
// Mutation/Subscription, only when such an object type exists and no
// explicit schema definition overrode it) and builds the final index.
func (b *builder) finish() *SchemaIndex {
	if !b.sawSchemaDef {
		if b.queryType == "" && b.kindIs("Query", KindObject) {
			b.queryType = "Query"
		}
		if b.mutationType == "" && b.kindIs("Mutation", KindObject) {
			b.mutationType = "Mutation"
		}
		if b.subscriptionType == "" && b.kindIs("Subscription", KindObject) {
			b.subscriptionType = "Subscription"
		}
	}

	idx := &SchemaIndex{
		types:            b.types,
		directives:       b.directives,
		customScalars:    b.customScalarOrder,
		queryType:        b.queryType,
		mutationType:     b.mutationType,
		subscriptionType: b.subscriptionType,
	}
	return idx
}

func (b *builder) kindIs(name string, want Kind) bool {
	info, ok := b.types.Get(name)
	return ok && info.Kind == want
}
