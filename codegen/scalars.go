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

import "fmt"

// builtinScalarNames lists the five built-in scalar names in the fixed order
// §4.8 item 2 lists them; builtinScalarHost maps each to its host
// primitive. Grounded on the
// original's codegen/generator/scalars_generator.rs
// create_scalar_property_signature table (ID/String -> string, Int/Float ->
// number, Boolean -> boolean), rendered here in TypeScript's primitive
// spelling since that's this generator's output language.
var builtinScalarNames = []string{"ID", "String", "Int", "Float", "Boolean"}

func builtinScalarHost(name string) (string, bool) {
	switch name {
	case "ID", "String":
		return "string", true
	case "Int", "Float":
		return "number", true
	case "Boolean":
		return "boolean", true
	default:
		return "", false
	}
}

// scalarHostType returns the TypeScript type a scalar named name should be
// mapped to inside the generated Scalars type: its built-in primitive, a
// caller-configured override (config.Config.Scalars), or "unknown" as the
// default for an unconfigured custom scalar (§4.8 item 2).
func (g *Generator) scalarHostType(name string) string {
	if host, ok := builtinScalarHost(name); ok {
		return host
	}
	if override, ok := g.cfg.ScalarOverride(name); ok {
		return override
	}
	return "unknown"
}

// scalarIndex renders a named scalar as the indexed-access reference §4.8's
// field-type mapping prescribes, so ambient module augmentation can still
// override the mapping without regenerating this file. Scalars itself is
// declared inside the `~graphql` module (item 2), so types.d.ts reaches it
// through the `Graphql` namespace import every generated file carries.
func scalarIndex(name string) string {
	return fmt.Sprintf("Graphql.Scalars[%q]", name)
}
