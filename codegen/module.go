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

package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/schema"
)

// moduleFile assembles graphql.d.ts: the top-level per-definition aliases
// followed by the `~graphql` module declaration, in the fixed order §4.8
// prescribes.
func (g *Generator) moduleFile() string {
	var b strings.Builder
	b.WriteString(generatedHeader)

	for _, op := range g.namedOperations() {
		fmt.Fprintf(&b, "export type %s = import(\"./types\").%s;\n", op.Name, op.Name)
		fmt.Fprintf(&b, "export type %sVariables = import(\"./types\").%sVariables;\n", op.Name, op.Name)
	}
	for _, frag := range g.docs.Fragments() {
		fmt.Fprintf(&b, "export type %s = import(\"./types\").%s;\n", frag.Name, frag.Name)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "declare module %q {\n", virtualModule)
	g.writeEnumAliases(&b)
	g.writeScalarsType(&b)
	g.writeInputObjectAliases(&b)
	g.writeArtifactReexports(&b)
	g.writeGraphQLOverloads(&b)
	g.writeSchemaConstant(&b)
	b.WriteString("}\n")

	return b.String()
}

// writeEnumAliases is module body item 1: one type alias per enum, a union
// of string literals of its values.
func (g *Generator) writeEnumAliases(b *strings.Builder) {
	enums := g.schema.Enums()
	for _, name := range enums {
		info := g.schema.TypeInfo(name)
		values := make([]string, len(info.Values))
		for i, v := range info.Values {
			values[i] = strconv.Quote(string(v.Name))
		}
		fmt.Fprintf(b, "  export type %s = %s;\n", name, strings.Join(values, " | "))
	}
	if len(enums) > 0 {
		b.WriteString("\n")
	}
}

// writeScalarsType is module body item 2: the Scalars type, built-ins first
// in the fixed order §4.8 lists them, then custom scalars in the order they
// were first seen while building the schema index.
func (g *Generator) writeScalarsType(b *strings.Builder) {
	b.WriteString("  export type Scalars = {\n")
	for _, name := range builtinScalarNames {
		fmt.Fprintf(b, "    %s: %s;\n", name, g.scalarHostType(name))
	}
	for _, name := range g.schema.CustomScalars() {
		fmt.Fprintf(b, "    %s: %s;\n", name, g.scalarHostType(name))
	}
	b.WriteString("  };\n\n")
}

// inputObjectNames returns every input object type's name in schema
// declaration order.
func (g *Generator) inputObjectNames() []string {
	var out []string
	for _, info := range g.schema.Types() {
		if info.Kind == schema.KindInputObject {
			out = append(out, string(info.Name))
		}
	}
	return out
}

// writeInputObjectAliases is module body item 3: one type alias per input
// object, fields rendered with the same field-type mapping as response
// shapes minus the selection-set case (input positions have none).
func (g *Generator) writeInputObjectAliases(b *strings.Builder) {
	names := g.inputObjectNames()
	for _, name := range names {
		info := g.schema.TypeInfo(name)
		fields := info.InputFields.Values()
		members := make([]string, len(fields))
		for i, f := range fields {
			members[i] = fmt.Sprintf("%s: %s", f.Name, g.renderModuleInputType(f.Type))
		}
		fmt.Fprintf(b, "  export type %s = %s;\n", name, objectLiteral(members))
	}
	if len(names) > 0 {
		b.WriteString("\n")
	}
}

// renderModuleInputType renders an input-position type reference using
// names local to the module body (no Graphql. qualifier needed, since this
// text lives inside the module declaration itself).
func (g *Generator) renderModuleInputType(t ast.Type) string {
	name := string(t.InnermostNamed())

	var leaf string
	switch {
	case g.schema.IsScalar(name):
		leaf = fmt.Sprintf("Scalars[%q]", name)
	default:
		// Enum or input object: both are declared by name in this same
		// module body, so a bare reference resolves.
		leaf = name
	}
	return renderType(t, leaf)
}

// writeArtifactReexports is module body item 4: a re-export of each
// operation's and fragment's artifact type, plus a `<Name>$key` branded
// type per fragment (SPEC_FULL.md §D.5: an opaque tag over the fragment's
// own artifact type, proving at the type level that a value carries that
// fragment's data).
func (g *Generator) writeArtifactReexports(b *strings.Builder) {
	for _, op := range g.namedOperations() {
		fmt.Fprintf(b, "  export type %s = import(\"./types\").%s;\n", op.Name, op.Name)
		fmt.Fprintf(b, "  export type %sVariables = import(\"./types\").%sVariables;\n", op.Name, op.Name)
	}
	for _, frag := range g.docs.Fragments() {
		name := string(frag.Name)
		fmt.Fprintf(b, "  export type %s = import(\"./types\").%s;\n", name, name)
		fmt.Fprintf(b, "  export type %s$key = %s & { readonly \" $fragmentName\": %q };\n", name, name, name)
	}
	b.WriteString("\n")
}

// writeGraphQLOverloads is module body item 5: a default overload plus one
// overload per operation/fragment whose parameter is a template-literal
// type containing the exact source text of that definition (as the
// transformed document index reprints it), resolved purely by literal
// string matching at the call site.
func (g *Generator) writeGraphQLOverloads(b *strings.Builder) {
	b.WriteString("  export function graphql(source: string): unknown;\n")
	for _, op := range g.namedOperations() {
		g.writeOverload(b, op, string(op.Name))
	}
	for _, frag := range g.docs.Fragments() {
		g.writeOverload(b, frag, string(frag.Name))
	}
	b.WriteString("\n")
}

func (g *Generator) writeOverload(b *strings.Builder, def ast.Definition, typeName string) {
	src, ok := g.docs.SourceOf(def)
	if !ok {
		return
	}
	fmt.Fprintf(b, "  export function graphql(source: %s): %s;\n", tsTemplateLiteral(src.Code), typeName)
}

// writeSchemaConstant is module body item 6: the opaque $Schema handle and
// the runtime `schema` constant of that type (SPEC_FULL.md §D.4).
func (g *Generator) writeSchemaConstant(b *strings.Builder) {
	b.WriteString("  export type $Schema = unknown;\n")
	b.WriteString("  export const schema: $Schema;\n")
}

// tsTemplateLiteral renders s as a backtick-delimited TypeScript literal
// type with no substitutions — equivalent to a string-literal type, but
// able to hold the embedded newlines GraphQL source text contains.
func tsTemplateLiteral(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", "\\${")
	return "`" + s + "`"
}

// typesFile assembles types.d.ts: the shared utility types, then one
// artifact type alias per named operation and per fragment, rendered by the
// field-type mapping in shape.go.
func (g *Generator) typesFile() string {
	var b strings.Builder
	b.WriteString(generatedHeader)
	fmt.Fprintf(&b, "import type * as Graphql from %q;\n\n", virtualModule)

	b.WriteString("export type Nullable<T> = T | null;\n")
	b.WriteString("export type List<T> = ReadonlyArray<T>;\n")
	b.WriteString("export type FragmentRefs<TKey extends string> = { readonly \" $fragmentRefs\": Record<TKey, true> };\n\n")

	for _, op := range g.namedOperations() {
		shape := g.selectionShape(g.rootTypeFor(op), op.SelectionSet)
		fmt.Fprintf(&b, "export type %s = %s;\n", op.Name, shape)
		fmt.Fprintf(&b, "export type %sVariables = %s;\n", op.Name, g.variablesShape(op))
	}
	for _, frag := range g.docs.Fragments() {
		shape := g.selectionShape(string(frag.TypeCondition.Name), frag.SelectionSet)
		fmt.Fprintf(&b, "export type %s = %s;\n", frag.Name, shape)
	}

	return b.String()
}

// rootTypeFor returns the schema root type an operation's top-level
// selection set is checked against.
func (g *Generator) rootTypeFor(op *ast.OperationDefinition) string {
	switch op.Operation {
	case ast.OperationTypeMutation:
		return string(g.schema.MutationType())
	case ast.OperationTypeSubscription:
		return string(g.schema.SubscriptionType())
	default:
		return string(g.schema.QueryType())
	}
}
