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

package parser

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/source"
	"github.com/devunt/mearie-sub001/token"
)

//===----------------------------------------------------------------------------------------===//
// Schema
//===----------------------------------------------------------------------------------------===//

// SchemaDefinition :: schema Directives? { RootOperationTypeDefinition+ }
func (p *Parser) parseSchemaDefinition(desc *ast.Description) (*ast.SchemaDefinition, error) {
	start := p.descStartOr(desc)

	if err := p.expectKeyword(token.KeywordSchema); err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.tok.Kind == token.At {
		var err error
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	rootTypes, err := p.parseRootOperationTypeDefinitions()
	if err != nil {
		return nil, err
	}

	def := arena.AllocNode(p.arena, ast.SchemaDefinition{
		Description: desc,
		RootTypes:   rootTypes,
		Span_:       source.Span{Start: start, End: p.lastEnd()},
	})
	def.Directives = directives
	return def, nil
}

// SchemaExtension :: extend schema Directives? { RootOperationTypeDefinition+ }
//
//	extend schema Directives
func (p *Parser) parseSchemaExtension() (*ast.SchemaExtension, error) {
	start := p.tok.Span.Start

	if err := p.expectKeyword(token.KeywordSchema); err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.tok.Kind == token.At {
		var err error
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	var rootTypes []ast.RootOperationTypeDefinition
	if p.tok.Kind == token.LeftBrace {
		var err error
		if rootTypes, err = p.parseRootOperationTypeDefinitions(); err != nil {
			return nil, err
		}
	} else if directives == nil {
		return nil, p.unexpected()
	}

	ext := arena.AllocNode(p.arena, ast.SchemaExtension{
		RootTypes: rootTypes,
		Span_:     source.Span{Start: start, End: p.lastEnd()},
	})
	ext.Directives = directives
	return ext, nil
}

func (p *Parser) parseRootOperationTypeDefinitions() ([]ast.RootOperationTypeDefinition, error) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}

	var rootTypes []ast.RootOperationTypeDefinition
	for {
		opTok, err := p.expect(token.Name)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		namedType, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		rootTypes = append(rootTypes, ast.RootOperationTypeDefinition{
			Operation: ast.OperationType(opTok.Value),
			Type:      namedType,
		})

		stop, err := p.skip(token.RightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return rootTypes, nil
}

//===----------------------------------------------------------------------------------------===//
// Directive definitions
//===----------------------------------------------------------------------------------------===//

// DirectiveDefinition ::
//
//	Description? directive @ Name ArgumentsDefinition? repeatable? on DirectiveLocations
func (p *Parser) parseDirectiveDefinition(desc *ast.Description) (*ast.DirectiveDefinition, error) {
	start := p.descStartOr(desc)

	if err := p.expectKeyword(token.KeywordDirective); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.At); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	if p.tok.Kind == token.LeftParen {
		if arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}

	repeatable, err := p.skipKeyword(token.KeywordRepeatable)
	if err != nil {
		return nil, err
	}

	if err := p.expectKeyword(token.KeywordOn); err != nil {
		return nil, err
	}
	locations, err := p.parseDirectiveLocations()
	if err != nil {
		return nil, err
	}

	return arena.AllocNode(p.arena, ast.DirectiveDefinition{
		Description: desc,
		Name:        ast.DirectiveName(name),
		Arguments:   arguments,
		Repeatable:  repeatable,
		Locations:   locations,
		Span_:       source.Span{Start: start, End: p.lastEnd()},
	}), nil
}

// DirectiveLocations :: `|`? Name (`|` Name)*
func (p *Parser) parseDirectiveLocations() ([]string, error) {
	if _, err := p.skip(token.Pipe); err != nil {
		return nil, err
	}

	var locations []string
	for {
		tok, err := p.expect(token.Name)
		if err != nil {
			return nil, err
		}
		locations = append(locations, tok.Value)

		hasPipe, err := p.skip(token.Pipe)
		if err != nil {
			return nil, err
		}
		if !hasPipe {
			break
		}
	}
	return locations, nil
}

//===----------------------------------------------------------------------------------------===//
// Shared productions: fields, arguments, interfaces, directives
//===----------------------------------------------------------------------------------------===//

// ArgumentsDefinition :: ( InputValueDefinition+ )
func (p *Parser) parseArgumentsDefinition() ([]*ast.InputValueDefinition, error) {
	if _, err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}

	var values []*ast.InputValueDefinition
	for {
		value, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		values = append(values, value)

		stop, err := p.skip(token.RightParen)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return arena.AllocNodeSlice(p.arena, values), nil
}

// InputValueDefinition :: Description? Name : Type DefaultValue? Directives?
func (p *Parser) parseInputValueDefinition() (*ast.InputValueDefinition, error) {
	start := p.tok.Span.Start

	var desc *ast.Description
	if p.tok.Kind == token.String || p.tok.Kind == token.BlockString {
		var err error
		if desc, err = p.parseDescription(); err != nil {
			return nil, err
		}
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	valueType, err := p.parseType()
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

	return arena.AllocNode(p.arena, ast.InputValueDefinition{
		Description:  desc,
		Name:         ast.ArgumentName(name),
		Type:         valueType,
		DefaultValue: defaultValue,
		Directives:   directives,
		Span_:        source.Span{Start: start, End: p.lastEnd()},
	}), nil
}

// FieldsDefinition :: { FieldDefinition+ }
func (p *Parser) parseFieldsDefinition() ([]*ast.FieldDefinition, error) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}

	var fields []*ast.FieldDefinition
	for {
		field, err := p.parseFieldDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		stop, err := p.skip(token.RightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return arena.AllocNodeSlice(p.arena, fields), nil
}

// FieldDefinition :: Description? Name ArgumentsDefinition? : Type Directives?
func (p *Parser) parseFieldDefinition() (*ast.FieldDefinition, error) {
	start := p.tok.Span.Start

	var desc *ast.Description
	if p.tok.Kind == token.String || p.tok.Kind == token.BlockString {
		var err error
		if desc, err = p.parseDescription(); err != nil {
			return nil, err
		}
	}

	name, err := p.parseName()
	if err != nil {
		return nil, err
	}

	var arguments []*ast.InputValueDefinition
	if p.tok.Kind == token.LeftParen {
		if arguments, err = p.parseArgumentsDefinition(); err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	fieldType, err := p.parseType()
	if err != nil {
		return nil, err
	}

	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}

	return arena.AllocNode(p.arena, ast.FieldDefinition{
		Description: desc,
		Name:        ast.FieldName(name),
		Arguments:   arguments,
		Type:        fieldType,
		Directives:  directives,
		Span_:       source.Span{Start: start, End: p.lastEnd()},
	}), nil
}

// ImplementsInterfaces :: implements `&`? NamedType (`&` NamedType)*
func (p *Parser) parseImplementsInterfaces() ([]ast.TypeName, error) {
	ok, err := p.skipKeyword(token.KeywordImplements)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if _, err := p.skip(token.Amp); err != nil {
		return nil, err
	}

	var interfaces []ast.TypeName
	for {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, named.Name)

		hasAmp, err := p.skip(token.Amp)
		if err != nil {
			return nil, err
		}
		if !hasAmp {
			break
		}
	}
	return interfaces, nil
}

//===----------------------------------------------------------------------------------------===//
// Scalar
//===----------------------------------------------------------------------------------------===//

func (p *Parser) parseScalarTypeDefinition(desc *ast.Description) (*ast.ScalarTypeDefinition, error) {
	start := p.descStartOr(desc)
	if err := p.expectKeyword(token.KeywordScalar); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	def := arena.AllocNode(p.arena, ast.ScalarTypeDefinition{
		Description: desc,
		Name:        ast.TypeName(name),
		Span_:       source.Span{Start: start, End: p.lastEnd()},
	})
	def.Directives = directives
	return def, nil
}

func (p *Parser) parseScalarTypeExtension() (*ast.ScalarTypeExtension, error) {
	start := p.tok.Span.Start
	if err := p.expectKeyword(token.KeywordScalar); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	directives, err := p.parseDirectives(true)
	if err != nil {
		return nil, err
	}
	if directives == nil {
		return nil, p.unexpected()
	}
	ext := arena.AllocNode(p.arena, ast.ScalarTypeExtension{Name: ast.TypeName(name), Span_: source.Span{Start: start, End: p.lastEnd()}})
	ext.Directives = directives
	return ext, nil
}

//===----------------------------------------------------------------------------------------===//
// Object
//===----------------------------------------------------------------------------------------===//

func (p *Parser) parseObjectTypeDefinition(desc *ast.Description) (*ast.ObjectTypeDefinition, error) {
	start := p.descStartOr(desc)
	if err := p.expectKeyword(token.KeywordType); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	var fields []*ast.FieldDefinition
	if p.tok.Kind == token.LeftBrace {
		if fields, err = p.parseFieldsDefinition(); err != nil {
			return nil, err
		}
	}
	def := arena.AllocNode(p.arena, ast.ObjectTypeDefinition{
		Description: desc,
		Name:        ast.TypeName(name),
		Interfaces:  interfaces,
		Fields:      fields,
		Span_:       source.Span{Start: start, End: p.lastEnd()},
	})
	def.Directives = directives
	return def, nil
}

func (p *Parser) parseObjectTypeExtension() (*ast.ObjectTypeExtension, error) {
	start := p.tok.Span.Start
	if err := p.expectKeyword(token.KeywordType); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	var fields []*ast.FieldDefinition
	if p.tok.Kind == token.LeftBrace {
		if fields, err = p.parseFieldsDefinition(); err != nil {
			return nil, err
		}
	}
	if len(interfaces) == 0 && directives == nil && fields == nil {
		return nil, p.unexpected()
	}
	ext := arena.AllocNode(p.arena, ast.ObjectTypeExtension{
		Name:       ast.TypeName(name),
		Interfaces: interfaces,
		Fields:     fields,
		Span_:      source.Span{Start: start, End: p.lastEnd()},
	})
	ext.Directives = directives
	return ext, nil
}

//===----------------------------------------------------------------------------------------===//
// Interface
//===----------------------------------------------------------------------------------------===//

func (p *Parser) parseInterfaceTypeDefinition(desc *ast.Description) (*ast.InterfaceTypeDefinition, error) {
	start := p.descStartOr(desc)
	if err := p.expectKeyword(token.KeywordInterface); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	var fields []*ast.FieldDefinition
	if p.tok.Kind == token.LeftBrace {
		if fields, err = p.parseFieldsDefinition(); err != nil {
			return nil, err
		}
	}
	def := arena.AllocNode(p.arena, ast.InterfaceTypeDefinition{
		Description: desc,
		Name:        ast.TypeName(name),
		Interfaces:  interfaces,
		Fields:      fields,
		Span_:       source.Span{Start: start, End: p.lastEnd()},
	})
	def.Directives = directives
	return def, nil
}

func (p *Parser) parseInterfaceTypeExtension() (*ast.InterfaceTypeExtension, error) {
	start := p.tok.Span.Start
	if err := p.expectKeyword(token.KeywordInterface); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	interfaces, err := p.parseImplementsInterfaces()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	var fields []*ast.FieldDefinition
	if p.tok.Kind == token.LeftBrace {
		if fields, err = p.parseFieldsDefinition(); err != nil {
			return nil, err
		}
	}
	if len(interfaces) == 0 && directives == nil && fields == nil {
		return nil, p.unexpected()
	}
	ext := arena.AllocNode(p.arena, ast.InterfaceTypeExtension{
		Name:       ast.TypeName(name),
		Interfaces: interfaces,
		Fields:     fields,
		Span_:      source.Span{Start: start, End: p.lastEnd()},
	})
	ext.Directives = directives
	return ext, nil
}

//===----------------------------------------------------------------------------------------===//
// Union
//===----------------------------------------------------------------------------------------===//

// UnionMemberTypes :: = `|`? NamedType (`|` NamedType)*
func (p *Parser) parseUnionMemberTypes() ([]ast.TypeName, error) {
	ok, err := p.skip(token.Equals)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	if _, err := p.skip(token.Pipe); err != nil {
		return nil, err
	}

	var members []ast.TypeName
	for {
		named, err := p.parseNamedType()
		if err != nil {
			return nil, err
		}
		members = append(members, named.Name)

		hasPipe, err := p.skip(token.Pipe)
		if err != nil {
			return nil, err
		}
		if !hasPipe {
			break
		}
	}
	return members, nil
}

func (p *Parser) parseUnionTypeDefinition(desc *ast.Description) (*ast.UnionTypeDefinition, error) {
	start := p.descStartOr(desc)
	if err := p.expectKeyword(token.KeywordUnion); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	members, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}
	def := arena.AllocNode(p.arena, ast.UnionTypeDefinition{
		Description: desc,
		Name:        ast.TypeName(name),
		Members:     members,
		Span_:       source.Span{Start: start, End: p.lastEnd()},
	})
	def.Directives = directives
	return def, nil
}

func (p *Parser) parseUnionTypeExtension() (*ast.UnionTypeExtension, error) {
	start := p.tok.Span.Start
	if err := p.expectKeyword(token.KeywordUnion); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	members, err := p.parseUnionMemberTypes()
	if err != nil {
		return nil, err
	}
	if directives == nil && members == nil {
		return nil, p.unexpected()
	}
	ext := arena.AllocNode(p.arena, ast.UnionTypeExtension{
		Name:    ast.TypeName(name),
		Members: members,
		Span_:   source.Span{Start: start, End: p.lastEnd()},
	})
	ext.Directives = directives
	return ext, nil
}

//===----------------------------------------------------------------------------------------===//
// Enum
//===----------------------------------------------------------------------------------------===//

func (p *Parser) parseEnumValuesDefinition() ([]*ast.EnumValueDefinition, error) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}

	var values []*ast.EnumValueDefinition
	for {
		start := p.tok.Span.Start
		var desc *ast.Description
		if p.tok.Kind == token.String || p.tok.Kind == token.BlockString {
			var err error
			if desc, err = p.parseDescription(); err != nil {
				return nil, err
			}
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		var directives ast.Directives
		if p.tok.Kind == token.At {
			if directives, err = p.parseDirectives(true); err != nil {
				return nil, err
			}
		}
		value := arena.AllocNode(p.arena, ast.EnumValueDefinition{
			Description: desc,
			Name:        name,
			Span_:       source.Span{Start: start, End: p.lastEnd()},
		})
		value.Directives = directives
		values = append(values, value)

		stop, err := p.skip(token.RightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return arena.AllocNodeSlice(p.arena, values), nil
}

func (p *Parser) parseEnumTypeDefinition(desc *ast.Description) (*ast.EnumTypeDefinition, error) {
	start := p.descStartOr(desc)
	if err := p.expectKeyword(token.KeywordEnum); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	var values []*ast.EnumValueDefinition
	if p.tok.Kind == token.LeftBrace {
		if values, err = p.parseEnumValuesDefinition(); err != nil {
			return nil, err
		}
	}
	def := arena.AllocNode(p.arena, ast.EnumTypeDefinition{
		Description: desc,
		Name:        ast.TypeName(name),
		Values:      values,
		Span_:       source.Span{Start: start, End: p.lastEnd()},
	})
	def.Directives = directives
	return def, nil
}

func (p *Parser) parseEnumTypeExtension() (*ast.EnumTypeExtension, error) {
	start := p.tok.Span.Start
	if err := p.expectKeyword(token.KeywordEnum); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	var values []*ast.EnumValueDefinition
	if p.tok.Kind == token.LeftBrace {
		if values, err = p.parseEnumValuesDefinition(); err != nil {
			return nil, err
		}
	}
	if directives == nil && values == nil {
		return nil, p.unexpected()
	}
	ext := arena.AllocNode(p.arena, ast.EnumTypeExtension{
		Name:   ast.TypeName(name),
		Values: values,
		Span_:  source.Span{Start: start, End: p.lastEnd()},
	})
	ext.Directives = directives
	return ext, nil
}

//===----------------------------------------------------------------------------------------===//
// Input object
//===----------------------------------------------------------------------------------------===//

func (p *Parser) parseInputFieldsDefinition() ([]*ast.InputValueDefinition, error) {
	if _, err := p.expect(token.LeftBrace); err != nil {
		return nil, err
	}

	var fields []*ast.InputValueDefinition
	for {
		field, err := p.parseInputValueDefinition()
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		stop, err := p.skip(token.RightBrace)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
	}
	return arena.AllocNodeSlice(p.arena, fields), nil
}

func (p *Parser) parseInputObjectTypeDefinition(desc *ast.Description) (*ast.InputObjectTypeDefinition, error) {
	start := p.descStartOr(desc)
	if err := p.expectKeyword(token.KeywordInput); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	var fields []*ast.InputValueDefinition
	if p.tok.Kind == token.LeftBrace {
		if fields, err = p.parseInputFieldsDefinition(); err != nil {
			return nil, err
		}
	}
	def := arena.AllocNode(p.arena, ast.InputObjectTypeDefinition{
		Description: desc,
		Name:        ast.TypeName(name),
		Fields:      fields,
		Span_:       source.Span{Start: start, End: p.lastEnd()},
	})
	def.Directives = directives
	return def, nil
}

func (p *Parser) parseInputObjectTypeExtension() (*ast.InputObjectTypeExtension, error) {
	start := p.tok.Span.Start
	if err := p.expectKeyword(token.KeywordInput); err != nil {
		return nil, err
	}
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	var directives ast.Directives
	if p.tok.Kind == token.At {
		if directives, err = p.parseDirectives(true); err != nil {
			return nil, err
		}
	}
	var fields []*ast.InputValueDefinition
	if p.tok.Kind == token.LeftBrace {
		if fields, err = p.parseInputFieldsDefinition(); err != nil {
			return nil, err
		}
	}
	if directives == nil && fields == nil {
		return nil, p.unexpected()
	}
	ext := arena.AllocNode(p.arena, ast.InputObjectTypeExtension{
		Name:   ast.TypeName(name),
		Fields: fields,
		Span_:  source.Span{Start: start, End: p.lastEnd()},
	})
	ext.Directives = directives
	return ext, nil
}
