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

// Package visitor holds the traversal control signal shared by the validator
// (§4.6) and the transformer (§4.7), which both walk the same kind of
// document depth-first. The validator's walker acts on these signals; the
// transformer's walker does not inspect them.
package visitor

// Action is the value a hook returns to control the traversal.
type Action int

// Enumeration of Action.
const (
	// Next continues the traversal normally.
	Next Action = iota

	// Skip does not descend into the current node's children, but the
	// traversal otherwise continues.
	Skip

	// Break has the same effect as Skip in the validator's walker: no
	// further hooks run for the current node and its children are not
	// visited. It does not abort the rest of the traversal.
	Break
)
