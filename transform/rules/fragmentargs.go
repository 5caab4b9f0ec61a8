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
	"github.com/devunt/mearie-sub001/transform"
)

// FragmentArguments implements the third and last stage of the
// three-stage fragment-argument handling described by §4.7 rule 3 and
// SPEC_FULL.md §D.3: the validator and codegen both see a fragment's
// `VariableDefinitions` and a spread's `Arguments` (the client-only
// fragment-argument extension parsed by §4.3), and only this rule strips
// them, once the document has validated. Field argument values that refer
// to a stripped fragment variable are left untouched here; resolving them
// is a codegen-time concern this package does not attempt (§9 Open
// Question).
type FragmentArguments struct{}

// TransformFragment deletes a fragment definition's variable list.
func (FragmentArguments) TransformFragment(_ *transform.Context, frag *ast.FragmentDefinition) *ast.FragmentDefinition {
	frag.VariableDefinitions = nil
	return frag
}

// TransformFragmentSpread deletes a spread's argument list.
func (FragmentArguments) TransformFragmentSpread(_ *transform.Context, spread *ast.FragmentSpread) *ast.FragmentSpread {
	spread.Arguments = nil
	return spread
}
