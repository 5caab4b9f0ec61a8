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

// Package lexer turns GraphQL source text into a stream of tokens, skipping
// whitespace (commas included, per the GraphQL spec) and line comments.
// Reference: https://spec.graphql.org/October2021/#sec-Appendix-Grammar-Summary.Lexical-Tokens
package lexer

import (
	"bytes"
	"fmt"

	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/source"
	"github.com/devunt/mearie-sub001/token"
)

// Lexer is a stateful stream generator: each call to Next returns the next
// non-ignored token in the Source. Once it yields a token.EOF token, every
// later call returns the same EOF token again.
type Lexer struct {
	src  source.Source
	pos  uint32
	size uint32
	done bool
}

// New creates a Lexer positioned at the start of src.
func New(src source.Source) *Lexer {
	return &Lexer{src: src, size: uint32(len(src.Code))}
}

// Next lexes and returns the next non-ignored token.
func (l *Lexer) Next() (token.Token, error) {
	for {
		tok, err := l.lexToken()
		if err != nil {
			return token.Token{}, err
		}
		if tok.Kind == token.Comment {
			continue
		}
		if tok.Kind == token.EOF {
			l.done = true
		}
		return tok, nil
	}
}

func (l *Lexer) peekByte() byte {
	if l.pos >= l.size {
		return 0
	}
	return l.src.Code[l.pos]
}

func (l *Lexer) byteAt(pos uint32) byte {
	if pos >= l.size {
		return 0
	}
	return l.src.Code[pos]
}

func (l *Lexer) consume() byte {
	b := l.peekByte()
	if l.pos < l.size {
		l.pos++
	}
	return b
}

func (l *Lexer) consumeWhitespace() {
	pos := l.pos
	size := l.size
	code := l.src.Code

	// Skip a UTF-8 BOM at the very start of the source.
	if pos == 0 && size-pos >= 3 && code[0] == '\xEF' && code[1] == '\xBB' && code[2] == '\xBF' {
		pos += 3
	}

	for pos < size {
		switch code[pos] {
		case '\t', ' ', ',', '\n':
			pos++
		case '\r':
			if size-pos >= 2 && code[pos+1] == '\n' {
				pos++
			}
			pos++
		default:
			l.pos = pos
			return
		}
	}
	l.pos = pos
}

func (l *Lexer) consumeDigits() byte {
	for {
		c := l.peekByte()
		if c >= '0' && c <= '9' {
			l.consume()
		} else {
			return c
		}
	}
}

func (l *Lexer) charAtPosToStr(pos uint32) string {
	if pos >= l.size {
		return "<EOF>"
	}
	r, _ := decodeRuneAt(l.src.Code, pos)
	if r >= 0x20 && r < 0x7F {
		return fmt.Sprintf(`"%c"`, r)
	}
	return fmt.Sprintf(`"\u%04X"`, r)
}

func (l *Lexer) syntaxErrorAt(pos uint32, message string) error {
	return gqlerrors.At(gqlerrors.StageParse, "Syntax Error: "+message, l.src, source.Span{Start: pos, End: pos})
}

func (l *Lexer) unexpectedCharacterError(pos uint32) error {
	c := l.byteAt(pos)
	var message string
	switch {
	case c < 0x20 && c != '\t' && c != '\n' && c != '\r':
		message = fmt.Sprintf("Cannot contain the invalid character %s.", l.charAtPosToStr(pos))
	case c == '\'':
		message = "Unexpected single quote character ('), did you mean to use a double quote (\")?"
	default:
		message = fmt.Sprintf("Cannot parse the unexpected character %s.", l.charAtPosToStr(pos))
	}
	return l.syntaxErrorAt(pos, message)
}

func (l *Lexer) makeToken(kind token.Kind, start uint32) token.Token {
	return token.Token{Kind: kind, Span: source.Span{Start: start, End: l.pos}}
}

func (l *Lexer) makeTokenWithValue(kind token.Kind, start uint32, value string) token.Token {
	return token.Token{Kind: kind, Span: source.Span{Start: start, End: l.pos}, Value: value}
}

func (l *Lexer) lexToken() (token.Token, error) {
	l.consumeWhitespace()

	start := l.pos
	c := l.peekByte()
	if c == 0 && l.pos >= l.size {
		return token.Token{Kind: token.EOF, Span: source.Span{Start: start, End: start}}, nil
	}

	simple := func(kind token.Kind) (token.Token, error) {
		l.consume()
		return l.makeToken(kind, start), nil
	}

	switch c {
	case '!':
		return simple(token.Bang)
	case '#':
		return l.lexComment(start), nil
	case '$':
		return simple(token.Dollar)
	case '&':
		return simple(token.Amp)
	case '(':
		return simple(token.LeftParen)
	case ')':
		return simple(token.RightParen)
	case '.':
		l.consume()
		if l.peekByte() != '.' {
			return token.Token{}, l.unexpectedCharacterError(l.pos - 1)
		}
		l.consume()
		if l.peekByte() != '.' {
			return token.Token{}, l.unexpectedCharacterError(l.pos - 2)
		}
		l.consume()
		return l.makeToken(token.Spread, start), nil
	case ':':
		return simple(token.Colon)
	case '=':
		return simple(token.Equals)
	case '@':
		return simple(token.At)
	case '[':
		return simple(token.LeftBracket)
	case ']':
		return simple(token.RightBracket)
	case '{':
		return simple(token.LeftBrace)
	case '|':
		return simple(token.Pipe)
	case '}':
		return simple(token.RightBrace)

	case 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N',
		'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
		'_', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n',
		'o', 'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z':
		return l.lexName(start), nil

	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return l.lexNumber(start)

	case '"':
		l.consume()
		if l.peekByte() == '"' {
			l.consume()
			if l.peekByte() == '"' {
				l.consume()
				return l.lexBlockString(start)
			}
			return l.makeTokenWithValue(token.String, start, ""), nil
		}
		return l.lexString(start)
	}

	return token.Token{}, l.unexpectedCharacterError(start)
}

// lexComment consumes a `# ... \n` comment. Reference:
// https://spec.graphql.org/October2021/#sec-Comments
func (l *Lexer) lexComment(start uint32) token.Token {
	l.consume()
	for {
		c := l.peekByte()
		if c > 0x1F || c == '\t' {
			l.consume()
			continue
		}
		break
	}
	return l.makeToken(token.Comment, start)
}

// lexNumber reads an Int or Float literal.
// Reference: https://spec.graphql.org/October2021/#sec-Int-Value
func (l *Lexer) lexNumber(start uint32) (token.Token, error) {
	c := l.consume()
	kind := token.Int

	if c == '-' {
		c = l.peekByte()
		if c < '0' || c > '9' {
			return token.Token{}, l.syntaxErrorAt(l.pos,
				fmt.Sprintf("Invalid number, expected digit after '-' but got: %s.", l.charAtPosToStr(l.pos)))
		}
		l.consume()
	}

	if c == '0' {
		c = l.peekByte()
		if c >= '0' && c <= '9' {
			return token.Token{}, l.syntaxErrorAt(l.pos,
				fmt.Sprintf("Invalid number, unexpected digit after 0: %s.", l.charAtPosToStr(l.pos)))
		}
	} else {
		c = l.consumeDigits()
	}

	if c == '.' {
		kind = token.Float
		l.consume()
		c = l.peekByte()
		if c >= '0' && c <= '9' {
			l.consume()
			c = l.consumeDigits()
		} else {
			return token.Token{}, l.syntaxErrorAt(l.pos,
				fmt.Sprintf("Invalid number, expected digit after decimal point ('.') but got: %s.", l.charAtPosToStr(l.pos)))
		}
	}

	if c == 'E' || c == 'e' {
		l.consume()
		kind = token.Float

		c = l.peekByte()
		if c == '+' || c == '-' {
			l.consume()
		}

		c = l.peekByte()
		if c >= '0' && c <= '9' {
			l.consume()
			l.consumeDigits()
		} else {
			return token.Token{}, l.syntaxErrorAt(l.pos,
				fmt.Sprintf("Invalid number, expected digit but got: %s.", l.charAtPosToStr(l.pos)))
		}
	}

	return l.makeTokenWithValue(kind, start, l.src.Code[start:l.pos]), nil
}

// lexString reads a `"..."` string literal.
func (l *Lexer) lexString(start uint32) (token.Token, error) {
	var value bytes.Buffer
	for l.pos < l.size {
		c := l.peekByte()
		if c == '\n' || c == '\r' {
			break
		}
		if c == '"' {
			l.consume()
			return l.makeTokenWithValue(token.String, start, value.String()), nil
		}
		if c < 0x20 && c != '\t' {
			return token.Token{}, l.syntaxErrorAt(l.pos,
				fmt.Sprintf("Invalid character within String: %s.", l.charAtPosToStr(l.pos)))
		}
		l.consume()

		if c != '\\' {
			value.WriteByte(c)
			continue
		}

		c = l.consume()
		switch c {
		case '"':
			value.WriteByte('"')
		case '\\':
			value.WriteByte('\\')
		case '/':
			value.WriteByte('/')
		case 'b':
			value.WriteByte('\b')
		case 'f':
			value.WriteByte('\f')
		case 'n':
			value.WriteByte('\n')
		case 'r':
			value.WriteByte('\r')
		case 't':
			value.WriteByte('\t')
		case 'u':
			escStart := l.pos
			if l.size-l.pos < 4 {
				return token.Token{}, l.syntaxErrorAt(escStart-1,
					fmt.Sprintf("Invalid character escape sequence: \\u%s.", l.src.Code[escStart:l.size]))
			}
			code := uniCharCode(l.consume(), l.consume(), l.consume(), l.consume())
			if code < 0 {
				return token.Token{}, l.syntaxErrorAt(escStart-1,
					fmt.Sprintf("Invalid character escape sequence: \\u%s.", l.src.Code[escStart:escStart+4]))
			}
			value.WriteRune(code)
		default:
			return token.Token{}, l.syntaxErrorAt(l.pos-1,
				fmt.Sprintf("Invalid character escape sequence: \\%c.", c))
		}
	}
	return token.Token{}, l.syntaxErrorAt(l.pos, "Unterminated string.")
}

// lexBlockString reads a `"""..."""` block string literal, keeping the
// delimiters and inner text verbatim per §4.2; dedenting is a separate step
// (lexer.DedentBlockString), applied only where it's needed.
func (l *Lexer) lexBlockString(start uint32) (token.Token, error) {
	var raw bytes.Buffer
	raw.WriteString(`"""`)

	for l.pos < l.size {
		c := l.peekByte()

		if c == '"' {
			l.consume()
			if l.peekByte() == '"' {
				l.consume()
				if l.peekByte() == '"' {
					l.consume()
					raw.WriteString(`"""`)
					return l.makeTokenWithValue(token.BlockString, start, raw.String()), nil
				}
				raw.WriteString(`""`)
				continue
			}
			raw.WriteByte('"')
			continue
		}

		if c == '\\' {
			l.consume()
			if l.peekByte() != '"' {
				raw.WriteByte('\\')
				continue
			}
			l.consume()
			if l.peekByte() != '"' {
				raw.WriteString(`\"`)
				continue
			}
			l.consume()
			if l.peekByte() != '"' {
				raw.WriteString(`\""`)
				continue
			}
			l.consume()
			raw.WriteString(`\"""`)
			continue
		}

		if c < 0x20 && c != '\t' && c != '\r' && c != '\n' {
			return token.Token{}, l.syntaxErrorAt(l.pos,
				fmt.Sprintf("Invalid character within String: %s.", l.charAtPosToStr(l.pos)))
		}
		l.consume()
		raw.WriteByte(c)
	}

	return token.Token{}, l.syntaxErrorAt(l.pos, "Unterminated string.")
}

// lexName reads a Name token. Reference:
// https://spec.graphql.org/October2021/#sec-Names
func (l *Lexer) lexName(start uint32) token.Token {
	l.consume()
	for {
		c := l.peekByte()
		if c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			l.consume()
			continue
		}
		break
	}
	return l.makeTokenWithValue(token.Name, start, l.src.Code[start:l.pos])
}

func decodeRuneAt(s string, pos uint32) (rune, int) {
	for i, r := range s[pos:] {
		_ = i
		return r, 1
	}
	return -1, 0
}

func uniCharCode(a, b, c, d byte) rune {
	return (char2hex(a) << 12) | (char2hex(b) << 8) | (char2hex(c) << 4) | char2hex(d)
}

func char2hex(a byte) rune {
	switch {
	case a >= '0' && a <= '9':
		return rune(a - '0')
	case a >= 'A' && a <= 'F':
		return rune(a - 'A' + 10)
	case a >= 'a' && a <= 'f':
		return rune(a - 'a' + 10)
	default:
		return -1
	}
}
