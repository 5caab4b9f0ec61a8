package schema_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/schema"
	"github.com/devunt/mearie-sub001/source"
)

func TestSchema(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "schema")
}

func build(sdl ...string) (*schema.SchemaIndex, []gqlerrors.Error) {
	srcs := make([]source.Source, len(sdl))
	for i, s := range sdl {
		srcs[i] = source.New(s)
	}
	idx, errs := schema.Build(arena.New(), srcs)
	return idx, errs.Errors()
}

var _ = Describe("SchemaIndex", func() {
	It("registers the built-in scalars and directives without user SDL", func() {
		idx, errs := build()
		Expect(errs).To(BeEmpty())
		Expect(idx.IsScalar("String")).To(BeTrue())
		Expect(idx.IsScalar("Int")).To(BeTrue())
		Expect(idx.IsScalar("Float")).To(BeTrue())
		Expect(idx.IsScalar("Boolean")).To(BeTrue())
		Expect(idx.IsScalar("ID")).To(BeTrue())
		Expect(idx.GetDirective("skip")).NotTo(BeNil())
		Expect(idx.GetDirective("include")).NotTo(BeNil())
		Expect(idx.GetDirective("deprecated")).NotTo(BeNil())
		Expect(idx.GetDirective("specifiedBy")).NotTo(BeNil())
		Expect(idx.GetDirective("required")).NotTo(BeNil())
		Expect(idx.CustomScalars()).To(BeEmpty())
	})

	It("defaults root types to Query/Mutation/Subscription when present and undeclared", func() {
		idx, errs := build(`
			type Query { hello: String }
			type Mutation { noop: Boolean }
		`)
		Expect(errs).To(BeEmpty())
		Expect(idx.QueryType()).To(BeEquivalentTo("Query"))
		Expect(idx.MutationType()).To(BeEquivalentTo("Mutation"))
		Expect(idx.SubscriptionType()).To(BeEquivalentTo(""))
	})

	It("honors an explicit schema definition's root type names", func() {
		idx, errs := build(`
			schema { query: RootQuery }
			type RootQuery { hello: String }
			type Query { unused: Boolean }
		`)
		Expect(errs).To(BeEmpty())
		Expect(idx.QueryType()).To(BeEquivalentTo("RootQuery"))
	})

	It("classifies every TypeDefinition kind and records custom scalars in first-seen order", func() {
		idx, errs := build(`
			scalar DateTime
			scalar JSON
			type Query { hello: String }
			interface Node { id: ID! }
			union Accountable = Query
			enum Role { ADMIN MEMBER }
			input Filter { active: Boolean }
		`)
		Expect(errs).To(BeEmpty())
		Expect(idx.IsScalar("DateTime")).To(BeTrue())
		Expect(idx.IsObject("Query")).To(BeTrue())
		Expect(idx.IsInterface("Node")).To(BeTrue())
		Expect(idx.IsUnion("Accountable")).To(BeTrue())
		Expect(idx.IsEnum("Role")).To(BeTrue())
		Expect(idx.IsInputObject("Filter")).To(BeTrue())
		Expect(idx.CustomScalars()).To(Equal([]string{"DateTime", "JSON"}))
	})

	It("records which interfaces an object implements and computes possible types", func() {
		idx, errs := build(`
			interface Node { id: ID! }
			type User implements Node { id: ID! name: String }
			type Post implements Node { id: ID! title: String }
			type Query { node: Node }
		`)
		Expect(errs).To(BeEmpty())
		Expect(idx.Implements("User", "Node")).To(BeTrue())
		Expect(idx.Implements("Post", "Node")).To(BeTrue())

		possible := idx.GetPossibleTypes("Node")
		names := make([]string, len(possible))
		for i, p := range possible {
			names[i] = string(p)
		}
		Expect(names).To(ConsistOf("User", "Post"))
	})

	It("returns an empty possible-types set for an interface with no implementors", func() {
		idx, errs := build(`interface Lonely { id: ID! } type Query { hello: String }`)
		Expect(errs).To(BeEmpty())
		Expect(idx.GetPossibleTypes("Lonely")).To(BeEmpty())
	})

	It("returns union members as possible types", func() {
		idx, errs := build(`
			type User { id: ID! }
			type Post { id: ID! }
			union Accountable = User | Post
			type Query { hello: String }
		`)
		Expect(errs).To(BeEmpty())
		possible := idx.GetPossibleTypes("Accountable")
		names := make([]string, len(possible))
		for i, p := range possible {
			names[i] = string(p)
		}
		Expect(names).To(ConsistOf("User", "Post"))
	})

	It("merges extension fields and members into the extended definition", func() {
		idx, errs := build(`
			type User { id: ID! }
			extend type User { name: String }
			union Accountable = User
			type Post { id: ID! }
			extend union Accountable = Post
			type Query { hello: String }
		`)
		Expect(errs).To(BeEmpty())
		Expect(idx.GetField("User", "name")).NotTo(BeNil())
		possible := idx.GetPossibleTypes("Accountable")
		Expect(possible).To(HaveLen(2))
	})

	It("reports an error when extending an undefined type", func() {
		_, errs := build(`extend type Ghost { x: String } type Query { hello: String }`)
		Expect(errs).NotTo(BeEmpty())
	})

	It("rejects duplicate type names", func() {
		_, errs := build(`type User { id: ID! } type User { name: String } type Query { hello: String }`)
		Expect(errs).NotTo(BeEmpty())
	})

	It("rejects a duplicate field within one type", func() {
		_, errs := build(`type Query { hello: String hello: Int }`)
		Expect(errs).NotTo(BeEmpty())
	})

	It("reports overlapping possible types via TypesOverlap", func() {
		idx, errs := build(`
			interface Node { id: ID! }
			type User implements Node { id: ID! }
			type Query { node: Node }
		`)
		Expect(errs).To(BeEmpty())
		Expect(idx.TypesOverlap("Node", "User")).To(BeTrue())
		Expect(idx.TypesOverlap("Node", "Node")).To(BeTrue())
		Expect(idx.TypesOverlap("User", "Query")).To(BeFalse())
	})

	It("classifies input types across scalars, enums and input objects, but not objects", func() {
		idx, errs := build(`
			enum Role { ADMIN }
			input Filter { active: Boolean }
			type Query { hello: String }
		`)
		Expect(errs).To(BeEmpty())
		Expect(idx.IsInputType(ast.NamedType{Name: "Role"})).To(BeTrue())
		Expect(idx.IsInputType(ast.NamedType{Name: "Filter"})).To(BeTrue())
		Expect(idx.IsInputType(ast.NamedType{Name: "String"})).To(BeTrue())
		Expect(idx.IsInputType(ast.NamedType{Name: "Query"})).To(BeFalse())
		Expect(idx.IsInputType(ast.NonNullType{Item: ast.NamedType{Name: "Role"}})).To(BeTrue())
	})
})
