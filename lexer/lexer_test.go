package lexer_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/devunt/mearie-sub001/lexer"
	"github.com/devunt/mearie-sub001/source"
	"github.com/devunt/mearie-sub001/token"
)

func TestLexer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "lexer")
}

func lexAll(code string) ([]token.Token, error) {
	l := lexer.New(source.New(code))
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

var _ = Describe("Lexer", func() {
	It("skips whitespace, commas and a leading BOM", func() {
		tokens, err := lexAll("\uFEFF  ,,,\t\n  foo  ")
		Expect(err).NotTo(HaveOccurred())
		Expect(tokens).To(HaveLen(2))
		Expect(tokens[0].Kind).To(Equal(token.Name))
		Expect(tokens[0].Value).To(Equal("foo"))
		Expect(tokens[1].Kind).To(Equal(token.EOF))
	})

	It("drops comments", func() {
		tokens, err := lexAll("# a comment\nfoo # trailing\n")
		Expect(err).NotTo(HaveOccurred())
		Expect(tokens).To(HaveLen(2))
		Expect(tokens[0].Value).To(Equal("foo"))
	})

	It("lexes every punctuator", func() {
		tokens, err := lexAll("! $ & ( ) ... : = @ [ ] { } |")
		Expect(err).NotTo(HaveOccurred())
		kinds := make([]token.Kind, 0, len(tokens)-1)
		for _, tok := range tokens[:len(tokens)-1] {
			kinds = append(kinds, tok.Kind)
		}
		Expect(kinds).To(Equal([]token.Kind{
			token.Bang, token.Dollar, token.Amp, token.LeftParen, token.RightParen,
			token.Spread, token.Colon, token.Equals, token.At, token.LeftBracket,
			token.RightBracket, token.LeftBrace, token.RightBrace, token.Pipe,
		}))
	})

	It("rejects a lone double dot", func() {
		_, err := lexAll("..")
		Expect(err).To(HaveOccurred())
	})

	itLexesAs := func(desc string, code string, kind token.Kind, value string) {
		It(desc, func() {
			tokens, err := lexAll(code)
			Expect(err).NotTo(HaveOccurred())
			Expect(tokens[0].Kind).To(Equal(kind))
			Expect(tokens[0].Value).To(Equal(value))
		})
	}

	itLexesAs("lexes a positive int", "123", token.Int, "123")
	itLexesAs("lexes a negative int", "-123", token.Int, "-123")
	itLexesAs("lexes zero", "0", token.Int, "0")
	itLexesAs("lexes a float with fraction", "1.5", token.Float, "1.5")
	itLexesAs("lexes a float with exponent", "1e10", token.Float, "1e10")
	itLexesAs("lexes a float with fraction and exponent", "1.5e-10", token.Float, "1.5e-10")

	It("rejects a leading zero followed by a digit", func() {
		_, err := lexAll("0123")
		Expect(err).To(HaveOccurred())
	})

	It("lexes a simple string with escapes", func() {
		tokens, err := lexAll(`"hi\n\t\"there\""`)
		Expect(err).NotTo(HaveOccurred())
		Expect(tokens[0].Kind).To(Equal(token.String))
		Expect(tokens[0].Value).To(Equal("hi\n\t\"there\""))
	})

	It("lexes a unicode escape", func() {
		tokens, err := lexAll(`"\u0041"`)
		Expect(err).NotTo(HaveOccurred())
		Expect(tokens[0].Value).To(Equal("A"))
	})

	It("rejects an unterminated string", func() {
		_, err := lexAll(`"abc`)
		Expect(err).To(HaveOccurred())
	})

	It("lexes an empty block string", func() {
		tokens, err := lexAll(`""""""`)
		Expect(err).NotTo(HaveOccurred())
		Expect(tokens[0].Kind).To(Equal(token.BlockString))
		Expect(tokens[0].Value).To(Equal(`""""""`))
	})

	It("lexes a block string containing an escaped triple quote", func() {
		tokens, err := lexAll(`"""a \""" b"""`)
		Expect(err).NotTo(HaveOccurred())
		Expect(tokens[0].Kind).To(Equal(token.BlockString))
		Expect(tokens[0].Value).To(Equal(`"""a \""" b"""`))
	})

	It("reports unexpected characters", func() {
		_, err := lexAll("~")
		Expect(err).To(HaveOccurred())
	})

	It("reports a single quote as an unexpected character with a helpful hint", func() {
		_, err := lexAll("'")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("single quote"))
	})
})
