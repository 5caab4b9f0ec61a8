package parser_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/parser"
	"github.com/devunt/mearie-sub001/source"
)

func TestParser(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "parser")
}

func mustParse(code string) *ast.Document {
	doc, err := parser.Parse(source.New(code), arena.New())
	Expect(err).NotTo(HaveOccurred())
	return doc
}

var _ = Describe("Parser", func() {
	It("parses a bare selection set as an anonymous query", func() {
		doc := mustParse(`{ hello }`)
		Expect(doc.Definitions).To(HaveLen(1))
		op, ok := doc.Definitions[0].(*ast.OperationDefinition)
		Expect(ok).To(BeTrue())
		Expect(op.Operation).To(Equal(ast.OperationTypeQuery))
		Expect(op.Name).To(BeEmpty())
		Expect(op.SelectionSet).To(HaveLen(1))
	})

	It("parses a named operation with variables and directives", func() {
		doc := mustParse(`query Greet($name: String! = "x") @foo { hello(name: $name) }`)
		op := doc.Definitions[0].(*ast.OperationDefinition)
		Expect(op.Operation).To(Equal(ast.OperationTypeQuery))
		Expect(string(op.Name)).To(Equal("Greet"))
		Expect(op.VariableDefinitions).To(HaveLen(1))
		Expect(string(op.VariableDefinitions[0].Variable)).To(Equal("name"))
		Expect(op.VariableDefinitions[0].DefaultValue).NotTo(BeNil())
		Expect(op.Directives).To(HaveLen(1))
	})

	It("parses a mutation and a subscription keyword", func() {
		doc := mustParse(`mutation M { doIt } subscription S { onIt }`)
		Expect(doc.Definitions).To(HaveLen(2))
		Expect(doc.Definitions[0].(*ast.OperationDefinition).Operation).To(Equal(ast.OperationTypeMutation))
		Expect(doc.Definitions[1].(*ast.OperationDefinition).Operation).To(Equal(ast.OperationTypeSubscription))
	})

	It("parses field alias", func() {
		doc := mustParse(`{ renamed: hello }`)
		op := doc.Definitions[0].(*ast.OperationDefinition)
		field := op.SelectionSet[0].(*ast.Field)
		Expect(string(field.Alias)).To(Equal("renamed"))
		Expect(string(field.Name)).To(Equal("hello"))
	})

	It("parses nested selection sets, fragment spreads and inline fragments", func() {
		doc := mustParse(`{
			node {
				...Frag
				... on User { name }
				... { id }
			}
		}`)
		op := doc.Definitions[0].(*ast.OperationDefinition)
		node := op.SelectionSet[0].(*ast.Field)
		Expect(node.SelectionSet).To(HaveLen(3))
		Expect(node.SelectionSet[0]).To(BeAssignableToTypeOf(&ast.FragmentSpread{}))
		Expect(node.SelectionSet[1]).To(BeAssignableToTypeOf(&ast.InlineFragment{}))
		Expect(node.SelectionSet[2]).To(BeAssignableToTypeOf(&ast.InlineFragment{}))
	})

	It("parses a fragment definition with a type condition", func() {
		doc := mustParse(`fragment F on User { name }`)
		frag := doc.Definitions[0].(*ast.FragmentDefinition)
		Expect(string(frag.Name)).To(Equal("F"))
		Expect(string(frag.TypeCondition.Name)).To(Equal("User"))
	})

	It("parses fragment-argument extension syntax on definition and spread", func() {
		doc := mustParse(`fragment F($limit: Int) on User { name } query Q { user { ...F(limit: 3) } }`)
		frag := doc.Definitions[0].(*ast.FragmentDefinition)
		Expect(frag.VariableDefinitions).To(HaveLen(1))

		op := doc.Definitions[1].(*ast.OperationDefinition)
		user := op.SelectionSet[0].(*ast.Field)
		spread := user.SelectionSet[0].(*ast.FragmentSpread)
		Expect(spread.Arguments).To(HaveLen(1))
		Expect(string(spread.Arguments[0].Name)).To(Equal("limit"))
	})

	It("parses every value kind", func() {
		doc := mustParse(`{ f(i: 1, fl: 1.5, s: "hi", b: true, n: null, e: RED, l: [1, 2], o: { a: 1 }) }`)
		field := doc.Definitions[0].(*ast.OperationDefinition).SelectionSet[0].(*ast.Field)
		Expect(field.Arguments).To(HaveLen(8))
		Expect(field.Arguments[0].Value).To(BeAssignableToTypeOf(&ast.IntValue{}))
		Expect(field.Arguments[1].Value).To(BeAssignableToTypeOf(&ast.FloatValue{}))
		Expect(field.Arguments[2].Value).To(BeAssignableToTypeOf(&ast.StringValue{}))
		Expect(field.Arguments[3].Value).To(BeAssignableToTypeOf(&ast.BooleanValue{}))
		Expect(field.Arguments[4].Value).To(BeAssignableToTypeOf(&ast.NullValue{}))
		Expect(field.Arguments[5].Value).To(BeAssignableToTypeOf(&ast.EnumValue{}))
		Expect(field.Arguments[6].Value).To(BeAssignableToTypeOf(&ast.ListValue{}))
		Expect(field.Arguments[7].Value).To(BeAssignableToTypeOf(&ast.ObjectValue{}))
	})

	It("parses list, non-null and nested wrapper types", func() {
		doc := mustParse(`query Q($a: [String!]!) { hello }`)
		op := doc.Definitions[0].(*ast.OperationDefinition)
		varType := op.VariableDefinitions[0].Type
		nonNull, ok := varType.(ast.NonNullType)
		Expect(ok).To(BeTrue())
		list, ok := nonNull.Item.(ast.ListType)
		Expect(ok).To(BeTrue())
		innerNonNull, ok := list.Item.(ast.NonNullType)
		Expect(ok).To(BeTrue())
		Expect(innerNonNull.Item).To(BeAssignableToTypeOf(ast.NamedType{}))
	})

	It("parses a full SDL document with object, interface, union, enum, input and directive definitions", func() {
		doc := mustParse(`
			"""A user."""
			type User implements Node {
				id: ID!
				name: String
			}
			interface Node { id: ID! }
			union Accountable = User
			enum Role { ADMIN MEMBER }
			input Filter { active: Boolean = true }
			directive @auth(role: Role) on FIELD_DEFINITION
			schema { query: Query }
			type Query { me: User }
		`)
		Expect(doc.Definitions).To(HaveLen(8))
		obj := doc.Definitions[0].(*ast.ObjectTypeDefinition)
		Expect(obj.Description).NotTo(BeNil())
		Expect(obj.Interfaces).To(HaveLen(1))
		Expect(obj.Fields).To(HaveLen(2))
	})

	It("parses type-system extensions", func() {
		doc := mustParse(`
			type User { id: ID! }
			extend type User { name: String }
		`)
		ext := doc.Definitions[1].(*ast.ObjectTypeExtension)
		Expect(string(ext.Name)).To(Equal("User"))
		Expect(ext.Fields).To(HaveLen(1))
	})

	It("reports a syntax error with the offending token's span", func() {
		_, err := parser.Parse(source.New(`query { `), arena.New())
		Expect(err).To(HaveOccurred())
	})

	It("rejects a non-null directly wrapping a non-null", func() {
		_, err := parser.Parse(source.New(`query Q($a: String!!) { hello }`), arena.New())
		Expect(err).To(HaveOccurred())
	})

	It("preserves a block string description verbatim on a type", func() {
		doc := mustParse("\"\"\"desc\nmore\"\"\"\ntype User { id: ID! }")
		obj := doc.Definitions[0].(*ast.ObjectTypeDefinition)
		Expect(obj.Description.Block).To(BeTrue())
		Expect(obj.Description.Content).To(ContainSubstring("desc"))
	})
})
