package arena_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/internal/arena"
)

func TestArena(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Arena Suite")
}

var _ = Describe("Arena", func() {
	It("interns equal strings to the same backing storage", func() {
		a := arena.New()

		x := a.Intern("hello")
		y := a.Intern("hel" + "lo")

		Expect(x).To(Equal("hello"))
		Expect(arena.Same(x, y)).To(BeTrue())
	})

	It("keeps distinct strings distinct", func() {
		a := arena.New()

		x := a.Intern("foo")
		y := a.Intern("bar")

		Expect(arena.Same(x, y)).To(BeFalse())
	})

	It("survives growth past one block", func() {
		a := arena.New()

		first := a.Intern("a-fairly-short-name")
		for i := 0; i < 10000; i++ {
			a.Intern("padding-to-force-new-blocks-of-backing-storage")
		}

		Expect(a.Intern("a-fairly-short-name")).To(Equal(first))
	})
})

var _ = Describe("Nodes", func() {
	type point struct{ X, Y int }

	It("hands out stable pointers across block growth", func() {
		var nodes arena.Nodes[point]

		first := nodes.Alloc(point{X: 1, Y: 2})
		for i := 0; i < 1000; i++ {
			nodes.Alloc(point{X: i, Y: i})
		}

		Expect(*first).To(Equal(point{X: 1, Y: 2}))
	})

	It("builds frozen slices via AllocSlice", func() {
		var nodes arena.Nodes[point]

		values := []point{{X: 1}, {X: 2}, {X: 3}}
		out := arena.AllocSlice(&nodes, values)

		Expect(out).To(HaveLen(3))
		Expect(out[1]).To(Equal(point{X: 2}))
	})
})

var _ = Describe("AllocNode/AllocNodeSlice", func() {
	type point struct{ X, Y int }

	It("gives every concrete type its own backing Nodes[T], created lazily", func() {
		a := arena.New()

		p := arena.AllocNode(a, point{X: 1, Y: 2})
		Expect(*p).To(Equal(point{X: 1, Y: 2}))

		s := arena.AllocNode(a, "not a point")
		Expect(*s).To(Equal("not a point"))
	})

	It("keys the registry by T itself, not the dynamic type of an interface value", func() {
		a := arena.New()

		var values []any
		values = append(values, 1, "two", 3.0)
		out := arena.AllocNodeSlice(a, values)

		Expect(out).To(HaveLen(3))
		Expect(out[1]).To(Equal(any("two")))

		// A second slice of the same interface type shares the registry
		// entry keyed by `any`, not one fragmented per dynamic type.
		more := arena.AllocNodeSlice(a, []any{"four"})
		Expect(more).To(HaveLen(1))
	})
})
