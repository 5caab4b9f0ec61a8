package orderedmap_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/internal/orderedmap"
)

func TestOrderedMap(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "orderedmap")
}

var _ = Describe("Map", func() {
	It("iterates in insertion order regardless of key sort order", func() {
		m := orderedmap.New[int]()
		m.Set("z", 1)
		m.Set("a", 2)
		m.Set("m", 3)
		Expect(m.Keys()).To(Equal([]string{"z", "a", "m"}))
		Expect(m.Values()).To(Equal([]int{1, 2, 3}))
	})

	It("does not move a key's position when overwritten", func() {
		m := orderedmap.New[int]()
		m.Set("a", 1)
		m.Set("b", 2)
		m.Set("a", 99)
		Expect(m.Keys()).To(Equal([]string{"a", "b"}))
		v, ok := m.Get("a")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(99))
	})

	It("reports Has/Len accurately and Get's zero value for a missing key", func() {
		m := orderedmap.New[string]()
		Expect(m.Has("x")).To(BeFalse())
		Expect(m.Len()).To(Equal(0))
		m.Set("x", "hello")
		Expect(m.Has("x")).To(BeTrue())
		Expect(m.Len()).To(Equal(1))
		v, ok := m.Get("missing")
		Expect(ok).To(BeFalse())
		Expect(v).To(Equal(""))
	})

	It("calls Each in insertion order", func() {
		m := orderedmap.New[int]()
		m.Set("c", 3)
		m.Set("b", 2)
		m.Set("a", 1)

		var seen []string
		m.Each(func(k string, v int) {
			seen = append(seen, k)
		})
		Expect(seen).To(Equal([]string{"c", "b", "a"}))
	})
})
