package codegen_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/codegen"
	"github.com/devunt/mearie-sub001/config"
	"github.com/devunt/mearie-sub001/docindex"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/parser"
	"github.com/devunt/mearie-sub001/schema"
	"github.com/devunt/mearie-sub001/source"
	"github.com/devunt/mearie-sub001/transform"

	_ "github.com/devunt/mearie-sub001/transform/rules"
)

func TestGraphQLCodegen(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "codegen")
}

// generated builds schemaSDL and every query in queries, runs the standard
// transform over each, rebuilds a DocumentIndex from the transformed
// results (the same index the pipeline hands the generator), and returns
// the generator's output sources using cfg's scalar overrides.
func generated(schemaSDL string, queries []string, cfg config.Config) []source.Source {
	a := arena.New()
	schemaIdx, errs := schema.Build(a, []source.Source{source.New(schemaSDL)})
	if errs.HasErrors() {
		panic(errs.Errors())
	}

	docs := make([]*ast.Document, len(queries))
	srcs := make([]source.Source, len(queries))
	for i, q := range queries {
		src := source.New(q)
		doc, err := parser.Parse(src, a)
		if err != nil {
			panic(err)
		}
		result := transform.Transform(schemaIdx, a, doc, src)
		docs[i] = result.Document
		srcs[i] = result.Source
	}

	var buildErrs gqlerrors.List
	idx := docindex.BuildFromDocuments(docs, srcs, &buildErrs)
	if buildErrs.HasErrors() {
		panic(buildErrs.Errors())
	}

	gen := codegen.New(schemaIdx, idx, cfg)
	out, genErrs := gen.Generate()
	if genErrs.HasErrors() {
		panic(genErrs.Errors())
	}
	return out
}

// generatedWithErrors is generated's counterpart for tests that expect
// Generate() itself to report a codegen-stage error rather than panicking
// on one.
func generatedWithErrors(schemaSDL string, queries []string, cfg config.Config) ([]source.Source, gqlerrors.List) {
	a := arena.New()
	schemaIdx, errs := schema.Build(a, []source.Source{source.New(schemaSDL)})
	if errs.HasErrors() {
		panic(errs.Errors())
	}

	docs := make([]*ast.Document, len(queries))
	srcs := make([]source.Source, len(queries))
	for i, q := range queries {
		src := source.New(q)
		doc, err := parser.Parse(src, a)
		if err != nil {
			panic(err)
		}
		result := transform.Transform(schemaIdx, a, doc, src)
		docs[i] = result.Document
		srcs[i] = result.Source
	}

	var buildErrs gqlerrors.List
	idx := docindex.BuildFromDocuments(docs, srcs, &buildErrs)
	if buildErrs.HasErrors() {
		panic(buildErrs.Errors())
	}

	gen := codegen.New(schemaIdx, idx, cfg)
	return gen.Generate()
}

var _ = Describe("Generator", func() {
	It("emits an operation alias and the Scalars builtin table", func() {
		out := generated(
			`type Query { hello: String }`,
			[]string{`query Hello { hello }`},
			config.Config{},
		)
		Expect(out).To(HaveLen(2))

		module := out[0].Code
		Expect(module).To(ContainSubstring(`export type Hello = import("./types").Hello;`))
		Expect(module).To(ContainSubstring(`declare module "~graphql"`))
		Expect(module).To(ContainSubstring(`ID: string;`))
		Expect(module).To(ContainSubstring(`Int: number;`))
		Expect(module).To(ContainSubstring(`Boolean: boolean;`))
		Expect(module).To(ContainSubstring("export function graphql(source: string): unknown;"))
		Expect(module).To(ContainSubstring("export type $Schema = unknown;"))
		Expect(module).To(ContainSubstring("export const schema: $Schema;"))

		types := out[1].Code
		Expect(types).To(ContainSubstring(`import type * as Graphql from "~graphql";`))
		Expect(types).To(ContainSubstring(`export type Hello = { hello: Nullable<Graphql.Scalars["String"]> };`))
	})

	It("maps a custom scalar to its configured override, or unknown by default", func() {
		schemaSDL := `scalar DateTime type Query { now: DateTime }`

		withoutOverride := generated(schemaSDL, []string{`query Now { now }`}, config.Config{})
		Expect(withoutOverride[0].Code).To(ContainSubstring("DateTime: unknown;"))

		withOverride := generated(schemaSDL, []string{`query Now { now }`}, config.Config{
			Scalars: map[string]string{"DateTime": "string"},
		})
		Expect(withOverride[0].Code).To(ContainSubstring("DateTime: string;"))
	})

	It("renders an enum as a union of string literals", func() {
		schemaSDL := `enum Role { ADMIN MEMBER } type Query { role: Role }`
		out := generated(schemaSDL, []string{`query GetRole { role }`}, config.Config{})
		Expect(out[0].Code).To(ContainSubstring(`export type Role = "ADMIN" | "MEMBER";`))
		Expect(out[1].Code).To(ContainSubstring(`role: Nullable<Graphql.Role>`))
	})

	It("renders an input object alias", func() {
		schemaSDL := `
			input Filter { active: Boolean }
			type Query { users(filter: Filter): String }
		`
		out := generated(schemaSDL, []string{`query Users($f: Filter) { users(filter: $f) }`}, config.Config{})
		Expect(out[0].Code).To(ContainSubstring(`export type Filter = { active: Nullable<Scalars["Boolean"]> };`))
	})

	It("intersects a FragmentRefs member for a spread and emits a $key type", func() {
		schemaSDL := `type Query { user: User } type User { id: ID! name: String }`
		out := generated(schemaSDL, []string{
			`query Q { user { ...UserFields } }`,
			`fragment UserFields on User { name }`,
		}, config.Config{})

		types := out[1].Code
		Expect(types).To(ContainSubstring(`FragmentRefs<"UserFields">`))
		Expect(types).To(ContainSubstring("export type UserFields ="))

		module := out[0].Code
		Expect(module).To(ContainSubstring(`export type UserFields$key = UserFields & { readonly " $fragmentName": "UserFields" };`))
	})

	It("unions inline-fragment variants by __typename", func() {
		schemaSDL := `
			interface Node { id: ID! }
			type User implements Node { id: ID! name: String }
			type Post implements Node { id: ID! title: String }
			type Query { node: Node }
		`
		out := generated(schemaSDL, []string{
			`query Q { node { ... on User { name } ... on Post { title } } }`,
		}, config.Config{})
		Expect(out[1].Code).To(ContainSubstring(`) | (`))
		Expect(out[1].Code).To(ContainSubstring(`__typename: "User"`))
		Expect(out[1].Code).To(ContainSubstring(`__typename: "Post"`))
	})

	It("keys a graphql() overload by the transformed source text", func() {
		out := generated(
			`type Query { hello: String }`,
			[]string{"query Hello { hello }"},
			config.Config{},
		)
		Expect(out[0].Code).To(ContainSubstring("export function graphql(source: `query Hello {\n  hello\n}`): Hello;"))
	})

	It("types an operation's variables, required only for a non-null variable with no default", func() {
		schemaSDL := `
			input Filter { active: Boolean }
			type Query { users(limit: Int, filter: Filter): String }
		`
		out := generated(schemaSDL, []string{
			`query Users($required: Int!, $optional: Int, $defaulted: Int! = 5, $filter: Filter) {
				users(limit: $required, filter: $filter)
			}`,
		}, config.Config{})

		types := out[1].Code
		Expect(types).To(ContainSubstring("export type UsersVariables = "))
		Expect(types).To(ContainSubstring(`required: Graphql.Scalars["Int"]`))
		Expect(types).NotTo(ContainSubstring(`required?:`))
		Expect(types).To(ContainSubstring(`optional?: Nullable<Graphql.Scalars["Int"]>`))
		Expect(types).To(ContainSubstring(`defaulted?: Graphql.Scalars["Int"]`))
		Expect(types).To(ContainSubstring(`filter?: Nullable<Graphql.Filter>`))

		module := out[0].Code
		Expect(module).To(ContainSubstring(`export type UsersVariables = import("./types").UsersVariables;`))
	})

	It("reports a codegen error for an operation kind with no root type, but still generates", func() {
		out, genErrs := generatedWithErrors(
			`type Query { hello: String }`,
			[]string{`mutation DoThing { hello }`},
			config.Config{},
		)
		Expect(out).To(HaveLen(2))
		Expect(genErrs.HasErrors()).To(BeTrue())

		errs := genErrs.Errors()
		Expect(errs).To(HaveLen(1))
		Expect(errs[0].Stage).To(Equal(gqlerrors.StageCodegen))
		Expect(errs[0].Message).To(ContainSubstring("missing root type for mutation operations"))
	})
})
