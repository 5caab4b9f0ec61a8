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
	"github.com/devunt/mearie-sub001/validator"
)

// checkArguments applies the three argument rules shared by fields and
// directives: every argument is declared, no argument name repeats, and
// every required (non-null, no default) argument definition is supplied.
// kind/name describe the owner for error messages ("field" / "Q", "directive"
// / "@include").
func checkArguments(ctx *validator.Context, defs []*ast.InputValueDefinition, args ast.Arguments, kind, name string, owner ast.Node) {
	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		argName := string(arg.Name)
		if seen[argName] {
			ctx.Errorf(arg.Span_, "there can be only one argument named %q", argName)
		}
		seen[argName] = true

		if findArgDef(defs, argName) == nil {
			ctx.Errorf(arg.Span_, "unknown argument %q on %s %q", argName, kind, name)
		}
	}

	for _, def := range defs {
		if def.IsRequired() && args.Get(string(def.Name)) == nil {
			ctx.Errorf(owner.Loc(), "%s %q argument %q of type %q is required, but it was not provided",
				kind, name, def.Name, ast.TypeString(def.Type))
		}
	}
}

func findArgDef(defs []*ast.InputValueDefinition, name string) *ast.InputValueDefinition {
	for _, d := range defs {
		if string(d.Name) == name {
			return d
		}
	}
	return nil
}

// FieldArguments implements "arguments on a field must be declared on the
// field's definition; duplicate argument names on a single field are
// rejected" plus "required arguments must be provided".
type FieldArguments struct{}

// CheckField implements validator.FieldRule.
func (FieldArguments) CheckField(ctx *validator.Context, field *ast.Field) validator.Action {
	def := ctx.Schema.GetField(ctx.ParentType(), string(field.Name))
	if def == nil {
		return validator.Next
	}
	checkArguments(ctx, def.Arguments, field.Arguments, "field", string(field.Name), field)
	return validator.Next
}

// DirectiveArguments implements the same three rules for directive
// applications.
type DirectiveArguments struct{}

// CheckDirective implements validator.DirectiveRule.
func (DirectiveArguments) CheckDirective(ctx *validator.Context, loc validator.DirectiveLocation, dir *ast.Directive) validator.Action {
	def := ctx.Schema.GetDirective(string(dir.Name))
	if def == nil {
		return validator.Next
	}
	checkArguments(ctx, def.Arguments, dir.Arguments, "directive", "@"+string(dir.Name), dir)
	return validator.Next
}
