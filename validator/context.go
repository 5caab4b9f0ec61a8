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

package validator

import (
	"fmt"

	"github.com/devunt/mearie-sub001/docindex"
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/schema"
	"github.com/devunt/mearie-sub001/source"
)

// Context is the shared, mutable state every rule hook receives, modeled on
// the teacher's validator/validation_context.go: a schema to look types up
// in, the document index for cross-document fragment resolution, the
// current parent-type stack (§4.6 "Visitor state-stack discipline"), and a
// single accumulating error list rules append to instead of returning
// anything (§4.6 "errors are not exceptions").
type Context struct {
	Schema *schema.SchemaIndex
	Docs   *docindex.DocumentIndex

	src  source.Source
	errs *gqlerrors.List

	typeStack []string

	// usedFragments accumulates every fragment name reached by a spread
	// anywhere in the whole validation run, consulted by the
	// fragments-must-be-used Finish rule once traversal completes.
	usedFragments map[string]bool
}

func newContext(schemaIdx *schema.SchemaIndex, docs *docindex.DocumentIndex, errs *gqlerrors.List) *Context {
	return &Context{
		Schema:        schemaIdx,
		Docs:          docs,
		errs:          errs,
		usedFragments: make(map[string]bool),
	}
}

// SetSource points subsequent Errorf calls at src, switched by the engine
// as it moves from one input document to the next.
func (c *Context) SetSource(src source.Source) { c.src = src }

// Source returns the Source currently being walked.
func (c *Context) Source() source.Source { return c.src }

// Errorf appends a structured validation error located at span within the
// current source.
func (c *Context) Errorf(span source.Span, format string, args ...any) {
	c.errs.Add(gqlerrors.At(gqlerrors.StageValidation, fmt.Sprintf(format, args...), c.src, span))
}

// ParentType returns the name of the type whose fields are selectable at
// the current point in the traversal, or "" if unknown (e.g. the field
// itself was undefined, so its children cannot be typed either).
func (c *Context) ParentType() string {
	if len(c.typeStack) == 0 {
		return ""
	}
	return c.typeStack[len(c.typeStack)-1]
}

// PushType enters a new parent-type scope (on a field, fragment definition
// or inline fragment), per §4.6's state-stack discipline.
func (c *Context) PushType(name string) {
	c.typeStack = append(c.typeStack, name)
}

// PopType leaves the current parent-type scope.
func (c *Context) PopType() {
	c.typeStack = c.typeStack[:len(c.typeStack)-1]
}

// MarkFragmentUsed records that name was reached by a spread somewhere in
// the run, for the fragments-must-be-used Finish rule.
func (c *Context) MarkFragmentUsed(name string) {
	c.usedFragments[name] = true
}

// FragmentUsed reports whether MarkFragmentUsed(name) was ever called.
func (c *Context) FragmentUsed(name string) bool {
	return c.usedFragments[name]
}
