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

package rules

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/transform"
)

// StripRequired removes any `@required` directive application, wherever it
// appears (§4.7 rule 1). It is a client-only marker the built-in schema
// only permits on FIELD (schema.Builtin: "directive @required on FIELD"),
// so a FieldRule is all this needs.
type StripRequired struct{}

// TransformField drops `@required` from field's directive list, leaving
// every other directive in place and in its original order.
func (StripRequired) TransformField(ctx *transform.Context, field *ast.Field) *ast.Field {
	if field.Directives.Get("required") == nil {
		return field
	}

	kept := make(ast.Directives, 0, len(field.Directives))
	for _, d := range field.Directives {
		if string(d.Name) != "required" {
			kept = append(kept, d)
		}
	}
	field.Directives = arena.AllocNodeSlice(ctx.Arena, kept)
	return field
}
