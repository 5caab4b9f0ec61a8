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

// Package rules is the standard rule set required by spec §4.6. Importing
// it for side effect (`import _ ".../validator/rules"`) registers every
// rule with the validator package via validator.RegisterStandardRules, the
// same split the teacher's validator/rules package uses to avoid an import
// cycle with validator (which defines the hook interfaces rules here
// implement).
package rules

import "github.com/devunt/mearie-sub001/validator"

func init() {
	validator.RegisterStandardRules(
		SingleOperationOrFragment{},
		LoneAnonymousOperation{},
		UniqueVariableNames{},
		VariablesAreInputTypes{},
		VariableUsage{},
		SingleFieldSubscriptions{},
		FieldsOnCorrectType{},
		ScalarLeafs{},
		OverlappingFieldsCanBeMerged{},
		FieldArguments{},
		DirectiveArguments{},
		FragmentsOnCompositeTypes{},
		KnownFragmentNames{},
		PossibleFragmentSpreads{},
		NoFragmentCycles{},
		NoUnusedFragments{},
		UniqueInputFieldNames{},
		KnownDirectives{},
		UniqueDirectivesPerLocation{},
	)
}
