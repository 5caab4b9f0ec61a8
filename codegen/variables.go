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

// variablesShape types the object callers must pass alongside a named
// operation, grounded on the original's
// codegen/generator/operation_variables_generator.rs (SPEC_FULL.md §D.8).
package codegen

import (
	"fmt"

	"github.com/devunt/mearie-sub001/ast"
)

// variablesShape renders op's VariableDefinitions as a TypeScript object
// type: one member per variable, keyed optional when the variable may be
// omitted at the call site. A variable is omittable unless its declared
// type is non-null and it carries no default value — the original
// generator's rule, reproduced verbatim here: `$a: Int` and `$a: Int = 1`
// are both optional (the latter falls back to its default; the former to
// GraphQL null), only `$a: Int!` is required.
func (g *Generator) variablesShape(op *ast.OperationDefinition) string {
	members := make([]string, len(op.VariableDefinitions))
	for i, def := range op.VariableDefinitions {
		leaf := g.variableLeafType(string(def.Type.InnermostNamed()))
		typeStr := renderType(def.Type, leaf)

		_, nonNull := def.Type.(ast.NonNullType)
		required := nonNull && def.DefaultValue == nil

		if required {
			members[i] = fmt.Sprintf("%s: %s", def.Variable, typeStr)
		} else {
			members[i] = fmt.Sprintf("%s?: %s", def.Variable, typeStr)
		}
	}
	return objectLiteral(members)
}

// variableLeafType renders a variable's named type for use in types.d.ts,
// outside the `~graphql` module: scalars go through the same indexed
// Scalars access response shapes use, enums and input objects (both
// declared inside the module body) through the same Graphql.-qualified
// reference enumTypeName already provides for enums.
func (g *Generator) variableLeafType(name string) string {
	if g.schema.IsScalar(name) {
		return scalarIndex(name)
	}
	return enumTypeName(name)
}
