package rules_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("FieldsOnCorrectType", func() {
	It("accepts a field declared on the parent type", func() {
		errs := validate(`{ dog { name } }`)
		Expect(errs.HasErrors()).To(BeFalse())
	})

	It("rejects an undeclared field", func() {
		errs := validate(`{ dog { nonsenseField } }`)
		Expect(errs.HasErrors()).To(BeTrue())
		Expect(errs.Errors()[0].Message).To(ContainSubstring(`cannot query field "nonsenseField"`))
	})

	It("always allows __typename", func() {
		errs := validate(`{ dog { __typename } }`)
		Expect(errs.HasErrors()).To(BeFalse())
	})
})

var _ = Describe("ScalarLeafs", func() {
	It("rejects a selection on a scalar field", func() {
		errs := validate(`{ dog { name { nope } } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})

	It("rejects a composite field with no selection", func() {
		errs := validate(`{ dog }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})
})

var _ = Describe("LoneAnonymousOperation", func() {
	It("rejects an anonymous operation mixed with a named one", func() {
		errs := validate(`{ dog { name } } query Named { dog { name } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})
})

var _ = Describe("SingleFieldSubscriptions", func() {
	It("rejects a subscription with two root fields", func() {
		errs := validateWithSchema(testSchemaSDL+"\ntype Subscription { dog: Dog pet: Pet }\n",
			`subscription { dog { name } pet { name } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})
})

var _ = Describe("NoFragmentCycles", func() {
	It("rejects a fragment that spreads itself transitively", func() {
		errs := validate(`
			query Q { dog { ...A } }
			fragment A on Dog { ...B }
			fragment B on Dog { ...A }
		`)
		Expect(errs.HasErrors()).To(BeTrue())
	})
})

var _ = Describe("NoUnusedFragments", func() {
	It("rejects a fragment that no operation spreads", func() {
		errs := validate(`
			query Q { dog { name } }
			fragment Unused on Dog { name }
		`)
		Expect(errs.HasErrors()).To(BeTrue())
	})
})

var _ = Describe("PossibleFragmentSpreads", func() {
	It("accepts a spread whose possible types overlap the parent", func() {
		errs := validate(
			`query Q { pet { ...OnDog } }`,
			`fragment OnDog on Dog { name }`,
		)
		Expect(errs.HasErrors()).To(BeFalse())
	})

	It("rejects a spread whose type can never match the parent", func() {
		errs := validate(`
			query Q { dog { ...OnCat } }
			fragment OnCat on Cat { name }
		`)
		Expect(errs.HasErrors()).To(BeTrue())
	})
})

var _ = Describe("Variable usage", func() {
	It("rejects a used but undefined variable", func() {
		errs := validate(`query Q { human(id: $id) { name } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})

	It("rejects a defined but unused variable", func() {
		errs := validate(`query Q($id: ID!) { dog { name } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})

	It("accepts a variable used through a spread fragment", func() {
		errs := validate(
			`query Q($id: ID!) { ...HumanFrag }`,
			`fragment HumanFrag on Query { human(id: $id) { name } }`,
		)
		Expect(errs.HasErrors()).To(BeFalse())
	})
})

var _ = Describe("Field arguments", func() {
	It("rejects an unknown argument", func() {
		errs := validate(`{ human(bogus: "x") { name } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})

	It("rejects a missing required argument", func() {
		errs := validate(`{ human { name } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})

	It("rejects a duplicate argument", func() {
		errs := validate(`{ human(id: "1", id: "2") { name } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})
})

var _ = Describe("OverlappingFieldsCanBeMerged", func() {
	It("rejects the same response key used for two different fields", func() {
		errs := validate(`{ dog { name name: barks } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})
})

var _ = Describe("KnownDirectives", func() {
	It("rejects an unknown directive", func() {
		errs := validate(`{ dog { name @bogus } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})

	It("rejects a directive used at the wrong location", func() {
		errs := validate(`query Q @onField { dog { name } }`)
		Expect(errs.HasErrors()).To(BeTrue())
	})

	It("accepts a directive at its declared location", func() {
		errs := validate(`{ dog { name @onField } }`)
		Expect(errs.HasErrors()).To(BeFalse())
	})
})
