package printer_test

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/ast/printer"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/parser"
	"github.com/devunt/mearie-sub001/source"
)

// ignoreSpans treats any two source.Span values as equal, so a structural
// diff between two independently parsed documents reflects only shape, not
// where each token happened to land in its source text. The Exporter lets
// the diff descend into the AST's unexported embedded bases (which hold
// each node's Directives) instead of panicking on them.
var ignoreSpans = cmp.Options{
	cmp.Comparer(func(a, b source.Span) bool { return true }),
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
}

func TestPrinter(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "printer")
}

func printCode(code string) string {
	doc, err := parser.Parse(source.New(code), arena.New())
	Expect(err).NotTo(HaveOccurred())
	return printer.PrintDocument(doc)
}

var _ = Describe("Printer", func() {
	It("elides the query keyword for an anonymous, undirected, variable-free query", func() {
		Expect(printCode(`{ hello }`)).To(Equal("{\n  hello\n}"))
	})

	It("keeps the query keyword when the operation is named", func() {
		Expect(printCode(`query Hello { hello }`)).To(Equal("query Hello {\n  hello\n}"))
	})

	It("keeps the query keyword when variables are present, even if anonymous", func() {
		out := printCode(`query($x: Int) { hello }`)
		Expect(out).To(Equal("query ($x: Int) {\n  hello\n}"))
	})

	It("prints nested selection sets with two-space indent per level", func() {
		out := printCode(`{ user { name address { city } } }`)
		Expect(out).To(Equal("{\n  user {\n    name\n    address {\n      city\n    }\n  }\n}"))
	})

	It("prints a field alias, arguments and directives in input order", func() {
		out := printCode(`{ n: hello(a: 1, b: 2) @skip(if: true) @include(if: false) }`)
		Expect(out).To(ContainSubstring(`n: hello(a: 1, b: 2) @skip(if: true) @include(if: false)`))
	})

	It("prints fragment spreads and inline fragments", func() {
		out := printCode(`{ node { ...F ... on User { name } } }`)
		Expect(out).To(ContainSubstring("...F"))
		Expect(out).To(ContainSubstring("... on User {\n      name\n    }"))
	})

	It("prints a fragment definition with its type condition", func() {
		out := printCode(`fragment F on User { name }`)
		Expect(out).To(Equal("fragment F on User {\n  name\n}"))
	})

	It("escapes a string value conservatively", func() {
		out := printCode(`{ f(s: "a\nb\tc\"d") }`)
		Expect(out).To(ContainSubstring(`"a\nb\tc\"d"`))
	})

	It("round-trips a document through parse -> print -> parse producing the same text twice", func() {
		code := `query Q($a: Int = 1) { user(id: $a) { __typename name } }`
		once := printCode(code)
		doc, err := parser.Parse(source.New(once), arena.New())
		Expect(err).NotTo(HaveOccurred())
		Expect(printer.PrintDocument(doc)).To(Equal(once))
	})

	It("prints multiple definitions separated by a blank line", func() {
		out := printCode(`query A { a } query B { b }`)
		Expect(out).To(ContainSubstring("}\n\nquery B"))
	})

	It("reprints to a document structurally equal to the original, spans aside", func() {
		code := `query Q($a: Int = 1, $b: String = "x") {
			user(id: $a) {
				__typename
				name
				...Info
				... on Admin { role }
			}
		}
		fragment Info on User { email }`

		a := arena.New()
		original, err := parser.Parse(source.New(code), a)
		Expect(err).NotTo(HaveOccurred())

		reprinted, err := parser.Parse(source.New(printer.PrintDocument(original)), arena.New())
		Expect(err).NotTo(HaveOccurred())

		Expect(cmp.Diff(original, reprinted, ignoreSpans)).To(BeEmpty())
	})
})
