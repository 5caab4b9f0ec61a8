package transform_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/ast/printer"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/parser"
	"github.com/devunt/mearie-sub001/schema"
	"github.com/devunt/mearie-sub001/source"
	"github.com/devunt/mearie-sub001/transform"

	_ "github.com/devunt/mearie-sub001/transform/rules"
)

func TestGraphQLTransform(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "transform")
}

// transformed parses schemaSDL and query, runs the standard transform rule
// set over query, and returns the canonical reprint of the result.
func transformed(schemaSDL, query string) string {
	a := arena.New()
	schemaIdx, errs := schema.Build(a, []source.Source{source.New(schemaSDL)})
	if errs.HasErrors() {
		panic(errs.Errors())
	}

	src := source.New(query)
	doc, err := parser.Parse(src, a)
	if err != nil {
		panic(err)
	}

	result := transform.Transform(schemaIdx, a, doc, src)
	return result.Source.Code
}

var _ = Describe("Transform", func() {
	It("leaves a minimal root-level query untouched", func() {
		out := transformed(`type Query { hello: String }`, `query H { hello }`)
		Expect(out).To(Equal("query H {\n  hello\n}"))
	})

	It("injects __typename and id on a nested object selection", func() {
		schemaSDL := `type Query { user: User } type User { id: ID! name: String }`
		out := transformed(schemaSDL, `query Q { user { name } }`)
		Expect(out).To(Equal("query Q {\n  user {\n    __typename\n    id\n    name\n  }\n}"))
	})

	It("strips @required while still injecting the entity key", func() {
		schemaSDL := `type Query { user: User } type User { id: ID! name: String }`
		out := transformed(schemaSDL, `query Q { user { name @required } }`)
		Expect(out).To(Equal("query Q {\n  user {\n    __typename\n    id\n    name\n  }\n}"))
	})

	It("injects __typename on an interface selection and its inline fragment", func() {
		schemaSDL := `
			interface Node { id: ID! }
			type User implements Node { id: ID! name: String }
			type Query { node: Node }
		`
		out := transformed(schemaSDL, `query Q { node { ... on User { name } } }`)
		Expect(out).To(Equal(
			"query Q {\n  node {\n    __typename\n    ... on User {\n      __typename\n      id\n      name\n    }\n  }\n}",
		))
	})

	It("does not re-select an entity key the user already wrote", func() {
		schemaSDL := `type Query { user: User } type User { id: ID! name: String }`
		out := transformed(schemaSDL, `query Q { user { id name } }`)
		Expect(out).To(Equal("query Q {\n  user {\n    __typename\n    id\n    name\n  }\n}"))
	})

	It("prefers id over _id over uuid", func() {
		schemaSDL := `type Query { user: User } type User { id: ID! _id: ID! uuid: ID! name: String }`
		out := transformed(schemaSDL, `query Q { user { name } }`)
		Expect(out).To(Equal("query Q {\n  user {\n    __typename\n    id\n    name\n  }\n}"))
	})

	It("is idempotent", func() {
		schemaSDL := `type Query { user: User } type User { id: ID! name: String }`
		a := arena.New()
		schemaIdx, errs := schema.Build(a, []source.Source{source.New(schemaSDL)})
		Expect(errs.HasErrors()).To(BeFalse())

		src := source.New(`query Q { user { name } }`)
		doc, err := parser.Parse(src, a)
		Expect(err).NotTo(HaveOccurred())

		once := transform.Transform(schemaIdx, a, doc, src)
		twice := transform.Transform(schemaIdx, a, once.Document, once.Source)

		Expect(printer.PrintDocument(twice.Document)).To(Equal(printer.PrintDocument(once.Document)))
	})

	It("strips fragment variable definitions and spread arguments", func() {
		schemaSDL := `type Query { user: User } type User { id: ID! name: String }`
		a := arena.New()
		schemaIdx, errs := schema.Build(a, []source.Source{source.New(schemaSDL)})
		Expect(errs.HasErrors()).To(BeFalse())

		src := source.New(`
			query Q { user { ...Named(prefix: "Mr.") } }
			fragment Named($prefix: String) on User { name }
		`)
		doc, err := parser.Parse(src, a)
		Expect(err).NotTo(HaveOccurred())

		result := transform.Transform(schemaIdx, a, doc, src)
		Expect(result.Source.Code).NotTo(ContainSubstring("prefix"))
	})
})
