/**
 * Copyright (c) 2024, the mearie authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package token defines the lexical token kinds produced by the lexer.
package token

import "fmt"

// Kind enumerates the kinds of tokens the lexer emits.
//
// Reference: https://spec.graphql.org/October2021/#sec-Appendix-Grammar-Summary.Lexical-Tokens
type Kind int

const (
	EOF Kind = iota + 1

	// Punctuation
	Bang         // !
	Dollar       // $
	Amp          // &
	LeftParen    // (
	RightParen   // )
	Spread       // ...
	Colon        // :
	Equals       // =
	At           // @
	LeftBracket  // [
	RightBracket // ]
	LeftBrace    // {
	Pipe         // |
	RightBrace   // }

	// Names, literals and comments. Keywords have no Kind of their own: they
	// lex as Name tokens (GraphQL has no reserved words at the lexical level)
	// and the parser classifies them by Value (see the Keyword constants).
	Name
	Int
	Float
	String
	BlockString
	Comment
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "<EOF>"
	case Bang:
		return "!"
	case Dollar:
		return "$"
	case Amp:
		return "&"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case Spread:
		return "..."
	case Colon:
		return ":"
	case Equals:
		return "="
	case At:
		return "@"
	case LeftBracket:
		return "["
	case RightBracket:
		return "]"
	case LeftBrace:
		return "{"
	case Pipe:
		return "|"
	case RightBrace:
		return "}"
	case Name:
		return "Name"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case BlockString:
		return "BlockString"
	case Comment:
		return "Comment"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords that the parser recognizes by inspecting a Name token's Value.
// GraphQL keywords are contextual: "type", for instance, is also a valid
// field or argument name outside of a type-system definition position, so
// the lexer never special-cases them.
const (
	KeywordQuery        = "query"
	KeywordMutation     = "mutation"
	KeywordSubscription = "subscription"
	KeywordFragment     = "fragment"
	KeywordOn           = "on"
	KeywordType         = "type"
	KeywordInterface    = "interface"
	KeywordUnion        = "union"
	KeywordEnum         = "enum"
	KeywordInput        = "input"
	KeywordScalar       = "scalar"
	KeywordSchema       = "schema"
	KeywordExtend       = "extend"
	KeywordImplements   = "implements"
	KeywordDirective    = "directive"
	KeywordRepeatable   = "repeatable"
	KeywordNull         = "null"
	KeywordTrue         = "true"
	KeywordFalse        = "false"
)
