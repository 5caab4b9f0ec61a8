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

// Builtin is the SDL folded into every SchemaIndex before a caller's own
// documents (§4.4): the five standard scalars, the always-available
// directives, and the client-only `@required` marker this toolchain
// recognizes (§3 SchemaIndex, grounded on the original's
// schema/builtin.rs::BUILTIN_SCHEMA).
const Builtin = `
scalar ID
scalar String
scalar Int
scalar Float
scalar Boolean

directive @skip(if: Boolean!) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT

directive @include(if: Boolean!) on FIELD | FRAGMENT_SPREAD | INLINE_FRAGMENT

directive @deprecated(reason: String = "No longer supported") on FIELD_DEFINITION | ENUM_VALUE | ARGUMENT_DEFINITION | INPUT_FIELD_DEFINITION

directive @specifiedBy(url: String!) on SCALAR

directive @required on FIELD
`

// builtinScalars lists the five standard scalar names so the builder can
// tell a built-in scalar apart from a custom one without re-deriving the
// set from Builtin's text (§4.4 "if not one of the five built-ins").
var builtinScalars = map[string]bool{
	"ID":      true,
	"String":  true,
	"Int":     true,
	"Float":   true,
	"Boolean": true,
}
