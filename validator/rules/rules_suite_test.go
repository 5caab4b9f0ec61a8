package rules_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/docindex"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/schema"
	"github.com/devunt/mearie-sub001/source"
	"github.com/devunt/mearie-sub001/validator"

	_ "github.com/devunt/mearie-sub001/validator/rules"
)

func TestGraphQLValidatorRules(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "validator/rules")
}

const testSchemaSDL = `
type Query {
  human(id: ID!): Human
  dog: Dog
  pet: Pet
  catOrDog: CatOrDog
}

interface Being {
  name: String
}

interface Pet {
  name: String
}

type Human implements Being {
  name: String
  pets: [Pet]
}

type Dog implements Being & Pet {
  name: String
  barks: Boolean
  doesKnowCommand(dogCommand: DogCommand!): Boolean
}

type Cat implements Being & Pet {
  name: String
  meows: Boolean
}

union CatOrDog = Cat | Dog

enum DogCommand {
  SIT
  DOWN
  HEEL
}

directive @onField on FIELD
`

// validate parses each query as its own document against testSchemaSDL and
// runs the full standard rule set, returning every error produced by schema
// build, parsing and validation combined.
func validate(queries ...string) gqlerrors.List {
	return validateWithSchema(testSchemaSDL, queries...)
}

func validateWithSchema(schemaSDL string, queries ...string) gqlerrors.List {
	a := arena.New()
	schemaIdx, errs := schema.Build(a, []source.Source{source.New(schemaSDL)})

	srcs := make([]source.Source, len(queries))
	for i, q := range queries {
		srcs[i] = source.New(q)
	}
	docs, kept := docindex.ParseAll(a, srcs, &errs)
	docIdx := docindex.BuildFromDocuments(docs, kept, &errs)

	errs.AddAll(ptr(validator.Validate(schemaIdx, docIdx, docs, kept)))
	return errs
}

func ptr(l gqlerrors.List) *gqlerrors.List { return &l }
