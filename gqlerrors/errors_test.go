package gqlerrors_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/source"
)

func TestGqlErrors(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "gqlerrors")
}

var _ = Describe("Error and List", func() {
	It("builds a location-less error with New", func() {
		err := gqlerrors.New(gqlerrors.StageCodegen, "boom")
		Expect(err.Stage).To(Equal(gqlerrors.StageCodegen))
		Expect(err.Message).To(Equal("boom"))
		Expect(err.Location).To(BeNil())
		Expect(err.Error()).To(Equal("boom"))
	})

	It("resolves a location from a source span with At", func() {
		src := source.New("abc\ndef")
		err := gqlerrors.At(gqlerrors.StageParse, "bad token", src, source.Span{Start: 5, End: 6})
		Expect(err.Location).NotTo(BeNil())
		Expect(err.Location.Line).To(Equal(uint32(2)))
	})

	It("accumulates errors in List in the order added and reports HasErrors", func() {
		var l gqlerrors.List
		Expect(l.HasErrors()).To(BeFalse())
		l.Add(gqlerrors.New(gqlerrors.StageValidation, "first"))
		l.Add(gqlerrors.New(gqlerrors.StageValidation, "second"))
		Expect(l.HasErrors()).To(BeTrue())
		Expect(l.Errors()).To(HaveLen(2))
		Expect(l.Errors()[0].Message).To(Equal("first"))
	})

	It("merges another List's errors with AddAll, tolerating a nil other", func() {
		var a, b gqlerrors.List
		b.Add(gqlerrors.New(gqlerrors.StageCodegen, "from b"))
		a.AddAll(&b)
		a.AddAll(nil)
		Expect(a.Errors()).To(HaveLen(1))
	})

	It("marshals an Error to the documented JSON shape", func() {
		err := gqlerrors.New(gqlerrors.StageParse, "oops")
		data, marshalErr := err.MarshalJSON()
		Expect(marshalErr).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring(`"stage":"parse"`))
		Expect(string(data)).To(ContainSubstring(`"message":"oops"`))
	})

	It("marshals an empty List as an empty JSON array", func() {
		var l gqlerrors.List
		data, err := l.MarshalJSON()
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("[]"))
	})
})
