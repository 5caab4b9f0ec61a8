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

// Package printer reserializes an *ast.Document into canonical GraphQL text
// (§4.9). It is the transformer's last step: after a rewriting pass produces
// a new arena-owned tree, the transformer reprints it so that downstream
// callers can recover the exact text that will be sent to a server.
package printer

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/devunt/mearie-sub001/ast"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Print renders node as canonical GraphQL text: two-space indentation per
// nesting level, braceless empty selection sets, an elided `query` keyword
// for anonymous/undirected/variable-free queries, input-order directives and
// arguments (§4.9).
func Print(node ast.Node) string {
	p := &printer{}
	p.printNode(node)
	return p.buf.String()
}

// PrintDocument is a typed convenience wrapper over Print for the common
// case of reprinting a whole document.
func PrintDocument(doc *ast.Document) string {
	return Print(doc)
}

type printer struct {
	buf    strings.Builder
	indent int
}

func (p *printer) writeString(s string) { p.buf.WriteString(s) }

func (p *printer) beginBlock() {
	p.writeString("{\n")
	p.indent++
}

func (p *printer) endBlock() {
	p.indent--
	p.newlineIndent()
	p.writeString("}")
}

func (p *printer) newlineIndent() {
	p.writeString("\n")
	p.writeIndent()
}

func (p *printer) writeIndent() {
	p.writeString(strings.Repeat("  ", p.indent))
}

func (p *printer) printNode(node ast.Node) {
	switch n := node.(type) {
	case *ast.Document:
		p.printDocument(n)
	case ast.Definition:
		p.printDefinition(n)
	case ast.Selection:
		p.printSelection(n)
	case ast.Value:
		p.printValue(n)
	case ast.Type:
		p.printType(n)
	default:
		panic(fmt.Sprintf("printer: unsupported node type %T", node))
	}
}

//===----------------------------------------------------------------------------------------===//
// Document
//===----------------------------------------------------------------------------------------===//

func (p *printer) printDocument(doc *ast.Document) {
	for i, def := range doc.Definitions {
		if i > 0 {
			p.writeString("\n\n")
		}
		p.printDefinition(def)
	}
}

func (p *printer) printDefinition(def ast.Definition) {
	switch d := def.(type) {
	case *ast.OperationDefinition:
		p.printOperationDefinition(d)
	case *ast.FragmentDefinition:
		p.printFragmentDefinition(d)
	default:
		panic(fmt.Sprintf("printer: unsupported definition type %T", def))
	}
}

func (p *printer) printOperationDefinition(op *ast.OperationDefinition) {
	elideKeyword := op.IsAnonymous() && len(op.GetDirectives()) == 0 &&
		len(op.VariableDefinitions) == 0 && op.Operation == ast.OperationTypeQuery

	if elideKeyword {
		p.printSelectionSet(op.SelectionSet)
		return
	}

	p.writeString(string(op.Operation))

	if !op.IsAnonymous() || len(op.VariableDefinitions) > 0 {
		p.writeString(" ")
		if !op.IsAnonymous() {
			p.writeString(string(op.Name))
		}
		if len(op.VariableDefinitions) > 0 {
			p.printVariableDefinitions(op.VariableDefinitions)
		}
	}

	if len(op.GetDirectives()) > 0 {
		p.writeString(" ")
		p.printDirectives(op.GetDirectives())
	}

	if len(op.SelectionSet) > 0 {
		p.writeString(" ")
		p.printSelectionSet(op.SelectionSet)
	}
}

func (p *printer) printVariableDefinitions(defs []*ast.VariableDefinition) {
	p.writeString("(")
	for i, d := range defs {
		if i > 0 {
			p.writeString(", ")
		}
		p.printVariableDefinition(d)
	}
	p.writeString(")")
}

func (p *printer) printVariableDefinition(d *ast.VariableDefinition) {
	p.writeString("$")
	p.writeString(string(d.Variable))
	p.writeString(": ")
	p.printType(d.Type)
	if d.DefaultValue != nil {
		p.writeString(" = ")
		p.printValue(d.DefaultValue)
	}
	if len(d.Directives) > 0 {
		p.writeString(" ")
		p.printDirectives(d.Directives)
	}
}

func (p *printer) printFragmentDefinition(f *ast.FragmentDefinition) {
	p.writeString("fragment ")
	p.writeString(string(f.Name))
	if len(f.VariableDefinitions) > 0 {
		p.printVariableDefinitions(f.VariableDefinitions)
	}
	p.writeString(" on ")
	p.writeString(string(f.TypeCondition.Name))
	if len(f.GetDirectives()) > 0 {
		p.writeString(" ")
		p.printDirectives(f.GetDirectives())
	}
	p.writeString(" ")
	p.printSelectionSet(f.SelectionSet)
}

//===----------------------------------------------------------------------------------------===//
// Selections
//===----------------------------------------------------------------------------------------===//

func (p *printer) printSelectionSet(set ast.SelectionSet) {
	if len(set) == 0 {
		return
	}
	p.beginBlock()
	for i, sel := range set {
		if i > 0 {
			p.newlineIndent()
		} else {
			p.writeIndent()
		}
		p.printSelection(sel)
	}
	p.endBlock()
}

func (p *printer) printSelection(sel ast.Selection) {
	switch s := sel.(type) {
	case *ast.Field:
		p.printField(s)
	case *ast.FragmentSpread:
		p.printFragmentSpread(s)
	case *ast.InlineFragment:
		p.printInlineFragment(s)
	default:
		panic(fmt.Sprintf("printer: unsupported selection type %T", sel))
	}
}

func (p *printer) printField(f *ast.Field) {
	if f.Alias != "" {
		p.writeString(string(f.Alias))
		p.writeString(": ")
	}
	p.writeString(string(f.Name))
	if len(f.Arguments) > 0 {
		p.printArguments(f.Arguments)
	}
	if len(f.GetDirectives()) > 0 {
		p.writeString(" ")
		p.printDirectives(f.GetDirectives())
	}
	if len(f.SelectionSet) > 0 {
		p.writeString(" ")
		p.printSelectionSet(f.SelectionSet)
	}
}

func (p *printer) printFragmentSpread(s *ast.FragmentSpread) {
	p.writeString("...")
	p.writeString(string(s.Name))
	if len(s.Arguments) > 0 {
		p.printArguments(s.Arguments)
	}
	if len(s.GetDirectives()) > 0 {
		p.writeString(" ")
		p.printDirectives(s.GetDirectives())
	}
}

func (p *printer) printInlineFragment(f *ast.InlineFragment) {
	p.writeString("...")
	if f.HasTypeCondition() {
		p.writeString(" on ")
		p.writeString(string(f.TypeCondition.Name))
	}
	if len(f.GetDirectives()) > 0 {
		p.writeString(" ")
		p.printDirectives(f.GetDirectives())
	}
	if len(f.SelectionSet) > 0 {
		p.writeString(" ")
		p.printSelectionSet(f.SelectionSet)
	}
}

func (p *printer) printArguments(args ast.Arguments) {
	p.writeString("(")
	for i, a := range args {
		if i > 0 {
			p.writeString(", ")
		}
		p.writeString(string(a.Name))
		p.writeString(": ")
		p.printValue(a.Value)
	}
	p.writeString(")")
}

//===----------------------------------------------------------------------------------------===//
// Directives
//===----------------------------------------------------------------------------------------===//

func (p *printer) printDirectives(ds ast.Directives) {
	for i, d := range ds {
		if i > 0 {
			p.writeString(" ")
		}
		p.writeString("@")
		p.writeString(string(d.Name))
		if len(d.Arguments) > 0 {
			p.printArguments(d.Arguments)
		}
	}
}

//===----------------------------------------------------------------------------------------===//
// Values
//===----------------------------------------------------------------------------------------===//

func (p *printer) printValue(v ast.Value) {
	switch val := v.(type) {
	case *ast.Variable:
		p.writeString("$")
		p.writeString(string(val.Name))
	case *ast.IntValue:
		p.writeString(val.Raw)
	case *ast.FloatValue:
		p.writeString(val.Raw)
	case *ast.StringValue:
		p.printStringValue(val)
	case *ast.BooleanValue:
		if val.Content {
			p.writeString("true")
		} else {
			p.writeString("false")
		}
	case *ast.NullValue:
		p.writeString("null")
	case *ast.EnumValue:
		p.writeString(val.Content)
	case *ast.ListValue:
		p.writeString("[")
		for i, item := range val.Items {
			if i > 0 {
				p.writeString(", ")
			}
			p.printValue(item)
		}
		p.writeString("]")
	case *ast.ObjectValue:
		p.writeString("{")
		for i, f := range val.Fields {
			if i > 0 {
				p.writeString(", ")
			}
			p.writeString(string(f.Name))
			p.writeString(": ")
			p.printValue(f.Value)
		}
		p.writeString("}")
	default:
		panic(fmt.Sprintf("printer: unsupported value type %T", v))
	}
}

// printStringValue escapes a plain string literal the way graphql-js'
// JSON.stringify-based printer does (using jsoniter instead of
// encoding/json, per the teacher's substitution; see DESIGN.md) and
// re-prints block strings using the indented-block-form algorithm from
// the teacher's ast/printer.go, ported to this package's indent tracking.
func (p *printer) printStringValue(v *ast.StringValue) {
	if v.Block {
		p.printBlockString(v.Content)
		return
	}
	encoded, err := json.Marshal(v.Content)
	if err != nil {
		// The lexer copies string bytes without checking UTF-8, so Content
		// may hold any byte sequence; this branch exists only to avoid a
		// silent drop should marshaling ever fail.
		panic(err)
	}
	p.writeString(string(encoded))
}

func (p *printer) printBlockString(value string) {
	isSingleLine := !strings.ContainsRune(value, '\n')
	hasLeadingSpace := len(value) > 0 && (value[0] == ' ' || value[0] == '\t')
	hasTrailingQuote := len(value) > 0 && value[len(value)-1] == '"'
	printAsMultipleLines := !isSingleLine || hasTrailingQuote

	p.writeString(`"""`)

	if printAsMultipleLines && !(isSingleLine && hasLeadingSpace) {
		p.newlineIndent()
	}

	escaped := strings.ReplaceAll(value, `"""`, `\"""`)
	if printAsMultipleLines {
		escaped = strings.ReplaceAll(escaped, "\n", "\n"+strings.Repeat("  ", p.indent))
	}
	p.writeString(escaped)

	if printAsMultipleLines {
		p.newlineIndent()
	}

	p.writeString(`"""`)
}

//===----------------------------------------------------------------------------------------===//
// Types
//===----------------------------------------------------------------------------------------===//

func (p *printer) printType(t ast.Type) {
	switch ty := t.(type) {
	case ast.NamedType:
		p.writeString(string(ty.Name))
	case ast.ListType:
		p.writeString("[")
		p.printType(ty.Item)
		p.writeString("]")
	case ast.NonNullType:
		p.printType(ty.Item)
		p.writeString("!")
	default:
		panic(fmt.Sprintf("printer: unsupported type reference %T", t))
	}
}
