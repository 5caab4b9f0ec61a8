package docindex_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/docindex"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/source"
)

func TestDocIndex(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "docindex")
}

func build(codes ...string) (*docindex.DocumentIndex, []gqlerrors.Error) {
	srcs := make([]source.Source, len(codes))
	for i, c := range codes {
		srcs[i] = source.New(c)
	}
	idx, errs := docindex.Build(arena.New(), srcs)
	return idx, errs.Errors()
}

var _ = Describe("DocumentIndex", func() {
	It("catalogs named and anonymous operations and fragments across documents", func() {
		idx, errs := build(
			`query A { hello }`,
			`{ goodbye } fragment F on Query { hello }`,
		)
		Expect(errs).To(BeEmpty())
		Expect(idx.Operations()).To(HaveLen(2))
		Expect(idx.Fragments()).To(HaveLen(1))
		Expect(idx.Count()).To(Equal(3))

		a := idx.GetOperation("A")
		Expect(a).NotTo(BeNil())
		Expect(idx.GetOperation("Missing")).To(BeNil())

		Expect(idx.HasFragment("F")).To(BeTrue())
		Expect(idx.GetFragment("F")).NotTo(BeNil())
	})

	It("rejects two operations with the same explicit name", func() {
		_, errs := build(`query A { hello } query A { goodbye }`)
		Expect(errs).To(HaveLen(1))
	})

	It("rejects two fragments with the same name", func() {
		_, errs := build(`fragment F on Query { a } fragment F on Query { b }`)
		Expect(errs).To(HaveLen(1))
	})

	It("allows more than one anonymous operation at the index level (validator's job to reject)", func() {
		_, errs := build(`{ a } { b }`)
		Expect(errs).To(BeEmpty())
	})

	It("tracks the originating source text of each definition for the generator", func() {
		src := source.New(`query A { hello }`)
		idx, errs := docindex.Build(arena.New(), []source.Source{src})
		Expect(errs.HasErrors()).To(BeFalse())
		op := idx.GetOperation("A")
		got, ok := idx.SourceOf(op)
		Expect(ok).To(BeTrue())
		Expect(got.Code).To(Equal(src.Code))
	})

	It("skips a document that fails to parse but keeps the others", func() {
		idx, errs := build(`query A { hello }`, `query B {`)
		Expect(errs).NotTo(BeEmpty())
		Expect(idx.GetOperation("A")).NotTo(BeNil())
		Expect(idx.GetOperation("B")).To(BeNil())
	})
})
