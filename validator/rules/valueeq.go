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

import "github.com/devunt/mearie-sub001/ast"

// valueEqual reports whether two Value nodes are structurally identical,
// ignoring source position. Used by overlapping-fields-can-be-merged to
// compare argument values.
func valueEqual(a, b ast.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case *ast.Variable:
		bv, ok := b.(*ast.Variable)
		return ok && av.Name == bv.Name
	case *ast.IntValue:
		bv, ok := b.(*ast.IntValue)
		return ok && av.Raw == bv.Raw
	case *ast.FloatValue:
		bv, ok := b.(*ast.FloatValue)
		return ok && av.Raw == bv.Raw
	case *ast.StringValue:
		bv, ok := b.(*ast.StringValue)
		return ok && av.Content == bv.Content
	case *ast.BooleanValue:
		bv, ok := b.(*ast.BooleanValue)
		return ok && av.Content == bv.Content
	case *ast.NullValue:
		_, ok := b.(*ast.NullValue)
		return ok
	case *ast.EnumValue:
		bv, ok := b.(*ast.EnumValue)
		return ok && av.Content == bv.Content
	case *ast.ListValue:
		bv, ok := b.(*ast.ListValue)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !valueEqual(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *ast.ObjectValue:
		bv, ok := b.(*ast.ObjectValue)
		if !ok || len(av.Fields) != len(bv.Fields) {
			return false
		}
		for _, f := range av.Fields {
			other := bv.Get(string(f.Name))
			if other == nil || !valueEqual(f.Value, other.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// argumentsEqual reports whether two argument lists carry the same set of
// name/value pairs, independent of order.
func argumentsEqual(a, b ast.Arguments) bool {
	if len(a) != len(b) {
		return false
	}
	for _, arg := range a {
		other := b.Get(string(arg.Name))
		if other == nil || !valueEqual(arg.Value, other.Value) {
			return false
		}
	}
	return true
}
