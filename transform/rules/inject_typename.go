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

package rules

import (
	"github.com/devunt/mearie-sub001/ast"
	"github.com/devunt/mearie-sub001/internal/arena"
	"github.com/devunt/mearie-sub001/transform"
)

// entityKeyCandidates lists the field names considered for the auto-
// selected entity-key field, in priority order (GLOSSARY "Entity-key
// field"; §4.7 rule 2 names `id`, `_id`, `uuid`, "first match wins").
var entityKeyCandidates = []string{"id", "_id", "uuid"}

// InjectTypenameAndEntityKey prepends `__typename` and, on object types,
// the first available entity-key field to every selection set whose
// parent type is composite and is not a root operation type (§4.7 rule 2).
// The rule is idempotent: it only prepends a selection that is not already
// present, so a second pass over an already-transformed document is a
// no-op.
type InjectTypenameAndEntityKey struct{}

// TransformSelectionSet runs after every member of set has already been
// individually transformed (§4.7's FieldRule/FragmentSpreadRule pass), so
// it sees the set's final member list and only needs to decide what to
// prepend.
func (InjectTypenameAndEntityKey) TransformSelectionSet(ctx *transform.Context, parentType string, set ast.SelectionSet) ast.SelectionSet {
	if parentType == "" || ctx.IsRootType(parentType) {
		return set
	}
	if !ctx.Schema.IsComposite(parentType) {
		return set
	}

	var prepend ast.SelectionSet

	if !hasFieldNamed(set, "__typename") {
		prepend = append(prepend, arena.AllocNode(ctx.Arena, ast.Field{Name: "__typename"}))
	}

	if ctx.Schema.IsObject(parentType) {
		if key := entityKeyField(ctx, parentType); key != "" && !hasFieldNamed(set, key) {
			prepend = append(prepend, arena.AllocNode(ctx.Arena, ast.Field{Name: ast.FieldName(key)}))
		}
	}

	if len(prepend) == 0 {
		return set
	}
	return append(prepend, set...)
}

func hasFieldNamed(set ast.SelectionSet, name string) bool {
	for _, sel := range set {
		if f, ok := sel.(*ast.Field); ok && f.Alias == "" && string(f.Name) == name {
			return true
		}
	}
	return false
}

// entityKeyField returns the first of entityKeyCandidates declared on
// typeName whose own type is a non-null, non-list scalar, or "" if none
// qualifies.
func entityKeyField(ctx *transform.Context, typeName string) string {
	for _, name := range entityKeyCandidates {
		def := ctx.Schema.GetField(typeName, name)
		if def == nil {
			continue
		}
		if def.Type.Nullable() || ast.IsList(def.Type) {
			continue
		}
		if !ctx.Schema.IsScalar(string(def.Type.InnermostNamed())) {
			continue
		}
		return name
	}
	return ""
}
