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

package transform

import (
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/schema"
)

// Context is the shared, mutable state every transform hook receives: the
// schema the document is transformed against (so a rule can ask whether the
// current parent type is composite, has an `id` field, and so on), the
// arena new nodes are allocated into, and the current parent-type stack —
// the same state-stack discipline the validator's Context threads (§4.6),
// reused here because the transformer walks the document the same way.
type Context struct {
	Schema *schema.SchemaIndex
	Arena  *arena.Arena

	typeStack []string
}

func newContext(schemaIdx *schema.SchemaIndex, a *arena.Arena) *Context {
	return &Context{Schema: schemaIdx, Arena: a}
}

// ParentType returns the name of the schema type whose fields are
// selectable at the current point in the traversal, or "" if unknown.
func (c *Context) ParentType() string {
	if len(c.typeStack) == 0 {
		return ""
	}
	return c.typeStack[len(c.typeStack)-1]
}

// PushType enters a new parent-type scope.
func (c *Context) PushType(name string) {
	c.typeStack = append(c.typeStack, name)
}

// PopType leaves the current parent-type scope.
func (c *Context) PopType() {
	c.typeStack = c.typeStack[:len(c.typeStack)-1]
}

// IsRootType reports whether name is the schema's query, mutation or
// subscription root — the exclusion the __typename/entity-key injection
// rule checks (§4.7 item 2: "is not a root operation type").
func (c *Context) IsRootType(name string) bool {
	return name != "" && (name == string(c.Schema.QueryType()) ||
		name == string(c.Schema.MutationType()) ||
		name == string(c.Schema.SubscriptionType()))
}
