package pipeline_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/config"
	"github.com/devunt/mearie-sub001/extract"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/pipeline"
	"github.com/devunt/mearie-sub001/source"

	_ "github.com/devunt/mearie-sub001/transform/rules"
	_ "github.com/devunt/mearie-sub001/validator/rules"
)

func TestGraphQLPipeline(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "pipeline")
}

var _ = Describe("Run", func() {
	It("produces graphql.d.ts and types.d.ts for a valid schema and document set", func() {
		result := pipeline.Run(pipeline.Options{
			SchemaSources: []source.Source{
				source.New(`type Query { user: User } type User { id: ID! name: String }`),
			},
			DocumentSources: []source.Source{
				source.New(`query GetUser { user { name } }`),
			},
		})

		Expect(result.Errors.HasErrors()).To(BeFalse())
		Expect(result.Sources).To(HaveLen(2))
		Expect(result.Sources[0].FilePath).To(Equal("graphql.d.ts"))
		Expect(result.Sources[1].FilePath).To(Equal("types.d.ts"))
		Expect(result.Sources[0].Code).To(ContainSubstring(`export type GetUser = import("./types").GetUser;`))
		Expect(result.Sources[1].Code).To(ContainSubstring("__typename"))
	})

	It("records a parse error for one document without dropping the others", func() {
		result := pipeline.Run(pipeline.Options{
			SchemaSources: []source.Source{
				source.New(`type Query { hello: String }`),
			},
			DocumentSources: []source.Source{
				source.New(`query Broken { hello`),
				source.New(`query Hello { hello }`),
			},
		})

		Expect(result.Errors.HasErrors()).To(BeTrue())
		found := false
		for _, e := range result.Errors.Errors() {
			if e.Stage == gqlerrors.StageParse {
				found = true
			}
		}
		Expect(found).To(BeTrue())

		Expect(result.Sources[0].Code).To(ContainSubstring(`export type Hello = import("./types").Hello;`))
		Expect(result.Sources[0].Code).NotTo(ContainSubstring("Broken"))
	})

	It("records a validation error while still generating output for the valid definitions", func() {
		result := pipeline.Run(pipeline.Options{
			SchemaSources: []source.Source{
				source.New(`type Query { user: User } type User { id: ID! name: String }`),
			},
			DocumentSources: []source.Source{
				source.New(`query Bad { user { missingField } }`),
				source.New(`query Good { user { name } }`),
			},
		})

		Expect(result.Errors.HasErrors()).To(BeTrue())
		found := false
		for _, e := range result.Errors.Errors() {
			if e.Stage == gqlerrors.StageValidation {
				found = true
			}
		}
		Expect(found).To(BeTrue())
		Expect(result.Sources[0].Code).To(ContainSubstring(`export type Good = import("./types").Good;`))
	})

	It("runs the extraction collaborator before parsing, when configured", func() {
		extractor := func(src source.Source) extract.Result {
			return extract.Result{
				Sources: []source.Source{
					{Code: "query FromHost { hello }", FilePath: src.FilePath, StartLine: 3},
				},
			}
		}

		result := pipeline.Run(pipeline.Options{
			SchemaSources: []source.Source{
				source.New(`type Query { hello: String }`),
			},
			DocumentSources: []source.Source{
				source.New("const doc = graphql(`query FromHost { hello }`)"),
			},
			Extract: extractor,
		})

		Expect(result.Errors.HasErrors()).To(BeFalse())
		Expect(result.Sources[0].Code).To(ContainSubstring(`export type FromHost = import("./types").FromHost;`))
	})

	It("applies a configured scalar override in the generated Scalars type", func() {
		result := pipeline.Run(pipeline.Options{
			SchemaSources: []source.Source{
				source.New(`scalar DateTime type Query { now: DateTime }`),
			},
			DocumentSources: []source.Source{
				source.New(`query Now { now }`),
			},
			Config: config.Config{Scalars: map[string]string{"DateTime": "string"}},
		})

		Expect(result.Sources[0].Code).To(ContainSubstring("DateTime: string;"))
	})

	It("records a codegen error for an operation kind the schema declares no root type for", func() {
		result := pipeline.Run(pipeline.Options{
			SchemaSources: []source.Source{
				source.New(`type Query { hello: String }`),
			},
			DocumentSources: []source.Source{
				source.New(`mutation DoThing { hello }`),
			},
		})

		Expect(result.Errors.HasErrors()).To(BeTrue())
		found := false
		for _, e := range result.Errors.Errors() {
			if e.Stage == gqlerrors.StageCodegen {
				found = true
			}
		}
		Expect(found).To(BeTrue())
		Expect(result.Sources).To(HaveLen(2))
	})
})
