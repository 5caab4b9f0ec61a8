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

// Package parser turns a token stream into an ast.Document, covering both the
// Executable Definitions grammar (operations and fragments, §4.1/§4.3) and
// the Type System Definition grammar (SDL, §4.1/§4.4), since a single pass
// through this toolchain sees both kinds of document.
package parser

import (
	"fmt"

	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/lexer"
	"github.com/devunt/mearie-sub001/source"
	"github.com/devunt/mearie-sub001/token"
)

// Parser holds the state needed to turn one Source into an ast.Document: a
// lexer and the single token of lookahead every production below consumes.
type Parser struct {
	lx        *lexer.Lexer
	src       source.Source
	arena     *arena.Arena
	tok       token.Token
	descStart uint32
}

// New creates a Parser over src. Identifiers parsed from src are interned
// into a, so passing the same Arena to every Source belonging to one schema
// or document index lets equal names share backing storage (arena.Same).
func New(src source.Source, a *arena.Arena) (*Parser, error) {
	p := &Parser{lx: lexer.New(src), src: src, arena: a}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse lexes and parses src in one call, interning names into a.
func Parse(src source.Source, a *arena.Arena) (*ast.Document, error) {
	p, err := New(src, a)
	if err != nil {
		return nil, err
	}
	return p.ParseDocument()
}

func (p *Parser) intern(s string) string {
	if p.arena == nil {
		return s
	}
	return p.arena.Intern(s)
}

func (p *Parser) advance() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) peek() token.Token { return p.tok }

func (p *Parser) skip(kind token.Kind) (bool, error) {
	if p.tok.Kind != kind {
		return false, nil
	}
	if err := p.advance(); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.tok
	if tok.Kind != kind {
		return token.Token{}, p.syntaxErrorf(tok.Span, "Expected %s, found %s", kind, tok.Description())
	}
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

func (p *Parser) skipKeyword(keyword string) (bool, error) {
	if tok := p.tok; tok.Kind == token.Name && tok.Value == keyword {
		if err := p.advance(); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (p *Parser) expectKeyword(keyword string) error {
	ok, err := p.skipKeyword(keyword)
	if err != nil {
		return err
	}
	if !ok {
		return p.syntaxErrorf(p.tok.Span, `Expected "%s", found %s`, keyword, p.tok.Description())
	}
	return nil
}

func (p *Parser) unexpected() error {
	tok := p.tok
	return p.syntaxErrorf(tok.Span, "Unexpected %s", tok.Description())
}

func (p *Parser) syntaxErrorf(span source.Span, format string, args ...any) error {
	return gqlerrors.At(gqlerrors.StageParse, "Syntax Error: "+fmt.Sprintf(format, args...), p.src, span)
}

// isKeyword reports whether the current token is a Name token spelling one
// of the given contextual keywords.
func (p *Parser) isKeyword(keywords ...string) bool {
	tok := p.tok
	if tok.Kind != token.Name {
		return false
	}
	for _, kw := range keywords {
		if tok.Value == kw {
			return true
		}
	}
	return false
}

func (p *Parser) parseName() (ast.Name, error) {
	tok, err := p.expect(token.Name)
	if err != nil {
		return "", err
	}
	return ast.Name(p.intern(tok.Value)), nil
}

//===----------------------------------------------------------------------------------------===//
// Document
//===----------------------------------------------------------------------------------------===//

// ParseDocument parses every definition in the Source.
//
//	Document :: Definition+
func (p *Parser) ParseDocument() (*ast.Document, error) {
	start := p.tok.Span.Start

	var definitions []ast.Definition
	for p.tok.Kind != token.EOF {
		def, err := p.parseDefinition()
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, def)
	}

	return arena.AllocNode(p.arena, ast.Document{
		Definitions: definitions,
		Span_:       source.Span{Start: start, End: p.tok.Span.End},
	}), nil
}

//	Definition ::
//		ExecutableDefinition
//		TypeSystemDefinition
//		TypeSystemExtension
func (p *Parser) parseDefinition() (ast.Definition, error) {
	if p.tok.Kind == token.LeftBrace {
		return p.parseOperationDefinition()
	}

	if p.tok.Kind == token.String || p.tok.Kind == token.BlockString {
		return p.parseTypeSystemDefinitionWithDescription()
	}

	if p.tok.Kind == token.Name {
		switch p.tok.Value {
		case token.KeywordQuery, token.KeywordMutation, token.KeywordSubscription:
			return p.parseOperationDefinition()
		case token.KeywordFragment:
			return p.parseFragmentDefinition()
		case token.KeywordSchema:
			return p.parseSchemaDefinition(nil)
		case token.KeywordScalar:
			return p.parseScalarTypeDefinition(nil)
		case token.KeywordType:
			return p.parseObjectTypeDefinition(nil)
		case token.KeywordInterface:
			return p.parseInterfaceTypeDefinition(nil)
		case token.KeywordUnion:
			return p.parseUnionTypeDefinition(nil)
		case token.KeywordEnum:
			return p.parseEnumTypeDefinition(nil)
		case token.KeywordInput:
			return p.parseInputObjectTypeDefinition(nil)
		case token.KeywordDirective:
			return p.parseDirectiveDefinition(nil)
		case token.KeywordExtend:
			return p.parseTypeSystemExtension()
		}
	}

	return nil, p.unexpected()
}

func (p *Parser) parseTypeSystemDefinitionWithDescription() (ast.Definition, error) {
	p.descStart = p.tok.Span.Start
	desc, err := p.parseDescription()
	if err != nil {
		return nil, err
	}

	if !p.isKeyword(token.KeywordSchema, token.KeywordScalar, token.KeywordType, token.KeywordInterface,
		token.KeywordUnion, token.KeywordEnum, token.KeywordInput, token.KeywordDirective) {
		return nil, p.syntaxErrorf(p.tok.Span, "Unexpected %s: descriptions may only be applied to a type system definition", p.tok.Description())
	}

	switch p.tok.Value {
	case token.KeywordSchema:
		return p.parseSchemaDefinition(desc)
	case token.KeywordScalar:
		return p.parseScalarTypeDefinition(desc)
	case token.KeywordType:
		return p.parseObjectTypeDefinition(desc)
	case token.KeywordInterface:
		return p.parseInterfaceTypeDefinition(desc)
	case token.KeywordUnion:
		return p.parseUnionTypeDefinition(desc)
	case token.KeywordEnum:
		return p.parseEnumTypeDefinition(desc)
	case token.KeywordInput:
		return p.parseInputObjectTypeDefinition(desc)
	default:
		return p.parseDirectiveDefinition(desc)
	}
}

// Description :: StringValue
func (p *Parser) parseDescription() (*ast.Description, error) {
	tok := p.tok
	block := tok.Kind == token.BlockString
	content, err := p.parseStringTokenContent()
	if err != nil {
		return nil, err
	}
	return arena.AllocNode(p.arena, ast.Description{Content: content, Block: block}), nil
}

func (p *Parser) parseStringTokenContent() (string, error) {
	tok := p.tok
	if tok.Kind == token.BlockString {
		if err := p.advance(); err != nil {
			return "", err
		}
		return lexer.DedentBlockString(tok.Value[3 : len(tok.Value)-3]), nil
	}
	if _, err := p.expect(token.String); err != nil {
		return "", err
	}
	return tok.Value, nil
}

func (p *Parser) parseTypeSystemExtension() (ast.Definition, error) {
	if err := p.expectKeyword(token.KeywordExtend); err != nil {
		return nil, err
	}

	if !p.isKeyword(token.KeywordSchema, token.KeywordScalar, token.KeywordType, token.KeywordInterface,
		token.KeywordUnion, token.KeywordEnum, token.KeywordInput) {
		return nil, p.unexpected()
	}

	switch p.tok.Value {
	case token.KeywordSchema:
		return p.parseSchemaExtension()
	case token.KeywordScalar:
		return p.parseScalarTypeExtension()
	case token.KeywordType:
		return p.parseObjectTypeExtension()
	case token.KeywordInterface:
		return p.parseInterfaceTypeExtension()
	case token.KeywordUnion:
		return p.parseUnionTypeExtension()
	case token.KeywordEnum:
		return p.parseEnumTypeExtension()
	default:
		return p.parseInputObjectTypeExtension()
	}
}

//===----------------------------------------------------------------------------------------===//
// Executable definitions: operations and fragments
//===----------------------------------------------------------------------------------------===//

//	OperationDefinition ::
//		OperationType Name? VariableDefinitions? Directives? SelectionSet
//		SelectionSet
func (p *Parser) parseOperationDefinition() (*ast.OperationDefinition, error) {
	start := p.tok.Span.Start

	if p.tok.Kind == token.LeftBrace {
		selectionSet, err := p.parseSelectionSet()
		if err != nil {
			return nil, err
		}
		return arena.AllocNode(p.arena, ast.OperationDefinition{
			Operation:    ast.OperationTypeQuery,
			SelectionSet: selectionSet,
			Span_:        source.Span{Start: start, End: p.lastEnd()},
		}), nil
	}


	opTok, err := p.expect(token.Name)
	if err != nil {
		return nil, err
	}

	var name ast.Name
	if p.tok.Kind == token.Name {
		if name, err = p.parseName(); err != nil {
			return nil, err
		}
	}

	var variableDefinitions []*ast.VariableDefinition
	if p.tok.Kind == token.LeftParen {
		if variableDefinitions, err = p.parseVariableDefinitions(); err != nil {
			return nil, err
		}
	}

	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(false); err != nil {
			return nil, err
		}
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	opDef := arena.AllocNode(p.arena, ast.OperationDefinition{
		Operation:           ast.OperationType(opTok.Value),
		Name:                name,
		VariableDefinitions: variableDefinitions,
		SelectionSet:        selectionSet,
		Span_:               source.Span{Start: start, End: p.lastEnd()},
	})
	opDef.Directives = directives
	return opDef, nil
}

//	SelectionSet :: { Selection+ }
func (p *Parser) parseSelectionSet() (ast.SelectionSet, error) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}

	var selections ast.SelectionSet
	for {
		selection, err := p.parseSelection()
		if err != nil {
			return nil, err
		}
		selections = append(selections, selection)

		stop, err := p.skip(token.RightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return arena.AllocNodeSlice(p.arena, selections), nil
}

//	Selection :: Field | FragmentSpread | InlineFragment
func (p *Parser) parseSelection() (ast.Selection, error) {
	isSpread, err := p.skip(token.Spread)
	if err != nil {
		return nil, err
	}
	if isSpread {
		if p.tok.Kind == token.Name && p.tok.Value != token.KeywordOn {
			return p.parseFragmentSpread()
		}
		return p.parseInlineFragment()
	}
	return p.parseField()
}

//	Field :: Alias? Name Arguments? Directives? SelectionSet?
func (p *Parser) parseField() (*ast.Field, error) {
	start := p.tok.Span.Start

	nameOrAlias, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var alias, name ast.Name
	hasColon, err := p.skip(token.Colon)
	if err != nil {
		return nil, err
	}
	if hasColon {
		alias = nameOrAlias
		if name, err = p.parseName(); err != nil {
			return nil, err
		}
	} else {
		name = nameOrAlias
	}

	var arguments ast.Arguments
	if p.tok.Kind == token.LeftParen {
		if arguments, err = p.parseArguments(false); err != nil {
			return nil, err
		}
	}

	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(false); err != nil {
			return nil, err
		}
	}

	var selectionSet ast.SelectionSet
	if p.tok.Kind == token.LeftBrace {
		if selectionSet, err = p.parseSelectionSet(); err != nil {
			return nil, err
		}
	}

	field := arena.AllocNode(p.arena, ast.Field{
		Alias:        alias,
		Name:         ast.FieldName(name),
		Arguments:    arguments,
		SelectionSet: selectionSet,
		Span_:        source.Span{Start: start, End: p.lastEnd()},
	})
	field.Directives = directives
	return field, nil
}

// FragmentSpread :: ... FragmentName Arguments? Directives?
//
// Arguments here is the client-only fragment-argument extension (§4.3): a
// named fragment declared with VariableDefinitions may be spread with
// Arguments supplying them, the same grammar shape as a directive's.
func (p *Parser) parseFragmentSpread() (*ast.FragmentSpread, error) {
	start := p.tok.Span.Start

	name, err := p.parseFragmentName()
	if err != nil {
		return nil, err
	}

	var arguments ast.Arguments
	if p.tok.Kind == token.LeftParen {
		if arguments, err = p.parseArguments(false); err != nil {
			return nil, err
		}
	}

	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(false); err != nil {
			return nil, err
		}
	}

	spread := arena.AllocNode(p.arena, ast.FragmentSpread{
		Name:      ast.FragmentName(name),
		Arguments: arguments,
		Span_:     source.Span{Start: start, End: p.lastEnd()},
	})
	spread.Directives = directives
	return spread, nil
}

//	FragmentDefinition ::
//		fragment FragmentName VariableDefinitions? TypeCondition Directives? SelectionSet
func (p *Parser) parseFragmentDefinition() (*ast.FragmentDefinition, error) {
	start := p.tok.Span.Start

	if err := p.expectKeyword(token.KeywordFragment); err != nil {
		return nil, err
	}

	name, err := p.parseFragmentName()
	if err != nil {
		return nil, err
	}

	var variableDefinitions []*ast.VariableDefinition
	if p.tok.Kind == token.LeftParen {
		if variableDefinitions, err = p.parseVariableDefinitions(); err != nil {
			return nil, err
		}
	}

	typeCondition, err := p.parseTypeCondition()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(false); err != nil {
			return nil, err
		}
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	fragDef := arena.AllocNode(p.arena, ast.FragmentDefinition{
		Name:                ast.FragmentName(name),
		VariableDefinitions: variableDefinitions,
		TypeCondition:       typeCondition,
		SelectionSet:        selectionSet,
		Span_:               source.Span{Start: start, End: p.lastEnd()},
	})
	fragDef.Directives = directives
	return fragDef, nil
}

// FragmentName :: Name but not "on"
func (p *Parser) parseFragmentName() (ast.Name, error) {
	if p.isKeyword(token.KeywordOn) {
		return "", p.syntaxErrorf(p.tok.Span, `Expected a fragment name before "on"`)
	}
	return p.parseName()
}

// TypeCondition :: on NamedType
func (p *Parser) parseTypeCondition() (ast.NamedType, error) {
	if err := p.expectKeyword(token.KeywordOn); err != nil {
		return ast.NamedType{}, err
	}
	return p.parseNamedType()
}

// InlineFragment :: ... TypeCondition? Directives? SelectionSet
func (p *Parser) parseInlineFragment() (*ast.InlineFragment, error) {
	start := p.tok.Span.Start

	var typeCondition *ast.NamedType
	if p.isKeyword(token.KeywordOn) {
		tc, err := p.parseTypeCondition()
		if err != nil {
			return nil, err
		}
		typeCondition = &tc
	}

	var directives ast.Directives
	if p.tok.Kind == token.At {
		var err error
		if directives, err = p.parseDirectives(false); err != nil {
			return nil, err
		}
	}

	selectionSet, err := p.parseSelectionSet()
	if err != nil {
		return nil, err
	}

	inline := arena.AllocNode(p.arena, ast.InlineFragment{
		TypeCondition: typeCondition,
		SelectionSet:  selectionSet,
		Span_:         source.Span{Start: start, End: p.lastEnd()},
	})
	inline.Directives = directives
	return inline, nil
}

//===----------------------------------------------------------------------------------------===//
// Arguments and values
//===----------------------------------------------------------------------------------------===//

// Arguments :: ( Argument+ )
func (p *Parser) parseArguments(isConst bool) (ast.Arguments, error) {
	if _, err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}

	var arguments ast.Arguments
	for {
		argument, err := p.parseArgument(isConst)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, argument)

		stop, err := p.skip(token.RightParen)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return arena.AllocNodeSlice(p.arena, arguments), nil
}

// Argument :: Name : Value
func (p *Parser) parseArgument(isConst bool) (*ast.Argument, error) {
	start := p.tok.Span.Start

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	value, err := p.parseValue(isConst)
	if err != nil {
		return nil, err
	}

	return arena.AllocNode(p.arena, ast.Argument{
		Name:  ast.ArgumentName(name),
		Value: value,
		Span_: source.Span{Start: start, End: p.lastEnd()},
	}), nil
}

// Value :: Variable | IntValue | FloatValue | StringValue | BooleanValue |
// NullValue | EnumValue | ListValue | ObjectValue
func (p *Parser) parseValue(isConst bool) (ast.Value, error) {
	start := p.tok.Span.Start
	tok := p.tok

	switch tok.Kind {
	case token.Dollar:
		if isConst {
			return nil, p.unexpected()
		}
		return p.parseVariable()

	case token.Int:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return arena.AllocNode(p.arena, ast.IntValue{Raw: tok.Value, Span_: tok.Span}), nil

	case token.Float:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return arena.AllocNode(p.arena, ast.FloatValue{Raw: tok.Value, Span_: tok.Span}), nil

	case token.String, token.BlockString:
		content, err := p.parseStringTokenContent()
		if err != nil {
			return nil, err
		}
		return arena.AllocNode(p.arena, ast.StringValue{Content: content, Block: tok.Kind == token.BlockString, Span_: source.Span{Start: start, End: p.lastEnd()}}), nil

	case token.Name:
		if err := p.advance(); err != nil {
			return nil, err
		}
		switch tok.Value {
		case "true":
			return arena.AllocNode(p.arena, ast.BooleanValue{Content: true, Span_: tok.Span}), nil
		case "false":
			return arena.AllocNode(p.arena, ast.BooleanValue{Content: false, Span_: tok.Span}), nil
		case "null":
			return arena.AllocNode(p.arena, ast.NullValue{Span_: tok.Span}), nil
		default:
			return arena.AllocNode(p.arena, ast.EnumValue{Content: p.intern(tok.Value), Span_: tok.Span}), nil
		}

	case token.LeftBracket:
		return p.parseListValue(isConst)

	case token.LeftBrace:
		return p.parseObjectValue(isConst)
	}

	return nil, p.unexpected()
}

// ListValue :: [ ] | [ Value+ ]
func (p *Parser) parseListValue(isConst bool) (*ast.ListValue, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(token.LeftBracket); err != nil {
		return nil, err
	}

	var items []ast.Value
	for {
		stop, err := p.skip(token.RightBracket)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
		value, err := p.parseValue(isConst)
		if err != nil {
			return nil, err
		}
		items = append(items, value)
	}

	return arena.AllocNode(p.arena, ast.ListValue{Items: arena.AllocNodeSlice(p.arena, items), Span_: source.Span{Start: start, End: p.lastEnd()}}), nil
}

// ObjectValue :: { } | { ObjectField+ }
func (p *Parser) parseObjectValue(isConst bool) (*ast.ObjectValue, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}

	var fields []*ast.ObjectField
	for {
		stop, err := p.skip(token.RightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
		field, err := p.parseObjectField(isConst)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	return arena.AllocNode(p.arena, ast.ObjectValue{Fields: arena.AllocNodeSlice(p.arena, fields), Span_: source.Span{Start: start, End: p.lastEnd()}}), nil
}

// ObjectField :: Name : Value
func (p *Parser) parseObjectField(isConst bool) (*ast.ObjectField, error) {
	start := p.tok.Span.Start

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	value, err := p.parseValue(isConst)
	if err != nil {
		return nil, err
	}

	return arena.AllocNode(p.arena, ast.ObjectField{
		Name:  ast.ArgumentName(name),
		Value: value,
		Span_: source.Span{Start: start, End: p.lastEnd()},
	}), nil
}

// Variable :: $ Name
func (p *Parser) parseVariable() (*ast.Variable, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(token.Dollar); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return arena.AllocNode(p.arena, ast.Variable{Name: ast.VariableName(name), Span_: source.Span{Start: start, End: p.lastEnd()}}), nil
}

//===----------------------------------------------------------------------------------------===//
// Variable definitions and types
//===----------------------------------------------------------------------------------------===//

// VariableDefinitions :: ( VariableDefinition+ )
func (p *Parser) parseVariableDefinitions() ([]*ast.VariableDefinition, error) {
	if _, err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}

	var variableDefinitions []*ast.VariableDefinition
	for {
		variableDefinition, err := p.parseVariableDefinition()
		if err != nil {
			return nil, err
		}
		variableDefinitions = append(variableDefinitions, variableDefinition)

		stop, err := p.skip(token.RightParen)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return arena.AllocNodeSlice(p.arena, variableDefinitions), nil
}

// VariableDefinition :: Variable : Type DefaultValue? Directives?
func (p *Parser) parseVariableDefinition() (*ast.VariableDefinition, error) {
	start := p.tok.Span.Start

	variable, err := p.parseVariable()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	varType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var defaultValue ast.Value
	if p.tok.Kind == token.Equals {
		if defaultValue, err = p.parseDefaultValue(); err != nil {
			return nil, err
		}
	}

	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	return arena.AllocNode(p.arena, ast.VariableDefinition{
		Variable:     variable.Name,
		Type:         varType,
		DefaultValue: defaultValue,
		Directives:   directives,
		Span_:        source.Span{Start: start, End: p.lastEnd()},
	}), nil
}

// Type :: NamedType | ListType | NonNullType
func (p *Parser) parseType() (ast.Type, error) {
	start := p.tok.Span.Start

	var t ast.Type
	if p.tok.Kind == token.LeftBracket {
		if err := p.advance(); err != nil {
			return nil, err
		}
		item, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightBracket); err != nil {
			return nil, err
		}
		t = ast.ListType{Item: item, Span_: source.Span{Start: start, End: p.lastEnd()}}
	} else {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		t = named
	}

	isNonNull, err := p.skip(token.Bang)
	if err != nil {
		return nil, err
	}
	if isNonNull {
		t = ast.NonNullType{Item: t, Span_: source.Span{Start: start, End: p.lastEnd()}}
	}

	return t, nil
}

// NamedType :: Name
func (p *Parser) parseNamedType() (ast.NamedType, error) {
	start := p.tok.Span.Start
	name, err := p.parseName()
	if err != nil {
		return ast.NamedType{}, err
	}
	return ast.NamedType{Name: ast.TypeName(name), Span_: source.Span{Start: start, End: p.lastEnd()}}, nil
}

// DefaultValue :: = Value
func (p *Parser) parseDefaultValue() (ast.Value, error) {
	if _, err := p.expect(token.Equals); err != nil {
		return nil, err
	}
	return p.parseValue(true)
}

//===----------------------------------------------------------------------------------------===//
// Directives
//===----------------------------------------------------------------------------------------===//

// Directives :: Directive+
func (p *Parser) parseDirectives(isConst bool) (ast.Directives, error) {
	var directives ast.Directives
	for {
		directive, err := p.parseDirective(isConst)
		if err != nil {
			return nil, err
		}
		directives = append(directives, directive)

		if p.tok.Kind != token.At {
			break
		}
	}
	return arena.AllocNodeSlice(p.arena, directives), nil
}

// Directive :: @ Name Arguments?
func (p *Parser) parseDirective(isConst bool) (*ast.Directive, error) {
	start := p.tok.Span.Start
	if _, err := p.expect(token.At); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments ast.Arguments
	if p.tok.Kind == token.LeftParen {
		if arguments, err = p.parseArguments(isConst); err != nil {
			return nil, err
		}
	}

	return arena.AllocNode(p.arena, ast.Directive{
		Name:      ast.DirectiveName(name),
		Arguments: arguments,
		Span_:     source.Span{Start: start, End: p.lastEnd()},
	}), nil
}

// descStartOr reports the span start to use for a type-system definition:
// the start of its description when one was parsed, otherwise the current
// token (the definition's own leading keyword).
func (p *Parser) descStartOr(desc *ast.Description) uint32 {
	if desc != nil {
		return p.descStart
	}
	return p.tok.Span.Start
}

// lastEnd reports the start of the current lookahead token (or EOF's
// position for the last production in a document), used as the end of the
// production just parsed; any whitespace or comments between the two tokens
// fall inside that span.
func (p *Parser) lastEnd() uint32 {
	return p.tok.Span.Start
}

