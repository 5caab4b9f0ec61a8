package source_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/source"
)

func TestSource(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Source Suite")
}

var _ = Describe("LocationOf", func() {
	It("resolves line 1 column 1 at the start", func() {
		src := source.New("query { hello }")
		loc := source.LocationOf(src, 0)
		Expect(loc.Line).To(Equal(uint32(1)))
		Expect(loc.Column).To(Equal(uint32(1)))
	})

	It("advances line on newline", func() {
		src := source.New("query {\n  hello\n}")
		loc := source.LocationOf(src, uint32(len("query {\n  ")))
		Expect(loc.Line).To(Equal(uint32(2)))
		Expect(loc.Column).To(Equal(uint32(3)))
	})

	It("honors StartLine as an absolute offset", func() {
		src := source.Source{Code: "hello", FilePath: "Foo.ts", StartLine: 39}
		loc := source.LocationOf(src, 0)
		Expect(loc.Line).To(Equal(uint32(40)))
		Expect(loc.FilePath).To(Equal("Foo.ts"))
	})

	It("treats \\r\\n as a single line boundary", func() {
		src := source.New("a\r\nb")
		loc := source.LocationOf(src, 3)
		Expect(loc.Line).To(Equal(uint32(2)))
		Expect(loc.Column).To(Equal(uint32(1)))
	})
})

var _ = Describe("Span", func() {
	It("extracts text", func() {
		src := source.New("hello world")
		span := source.Span{Start: 6, End: 11}
		Expect(span.Text(src)).To(Equal("world"))
	})

	It("covers the union of two spans", func() {
		a := source.Span{Start: 2, End: 5}
		b := source.Span{Start: 4, End: 9}
		Expect(a.Cover(b)).To(Equal(source.Span{Start: 2, End: 9}))
	})
})
