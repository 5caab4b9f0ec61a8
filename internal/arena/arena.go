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

// Package arena implements the bump-allocated storage that backs every AST
// produced by the lexer, parser and transformer, plus the pointer-identity
// string interner that the rest of the pipeline relies on for cheap name
// equality.
//
// Go has no built-in arena allocator (the experimental runtime/arena package
// was withdrawn), so this one is built the way a chunked bump allocator is
// usually built in a GC'd language: fixed-capacity blocks are appended to a
// slice, and once a block is full a new one is allocated. A pointer handed
// out by Alloc into a block that has already been sized never moves, because
// only new blocks are appended afterwards; the owning slice itself may be
// reallocated, but the blocks it points to are not.
package arena

import (
	"reflect"
	"unsafe"
)

const defaultBlockSize = 4096

// Arena owns all memory for a single pipeline invocation: every AST node
// allocated while processing one set of schema/document sources, plus the
// canonical copy of every interned string. Nothing about Arena is safe for
// concurrent use; per §5 of the spec, one Arena belongs to one single-
// threaded pipeline run.
type Arena struct {
	blockSize int
	strings   []byte
	interned  map[string]string
	nodes     map[reflect.Type]any
}

// New creates an empty Arena whose byte storage for interned strings grows
// in chunks of defaultBlockSize bytes.
func New() *Arena {
	return &Arena{
		blockSize: defaultBlockSize,
		interned:  make(map[string]string),
		nodes:     make(map[reflect.Type]any),
	}
}

// nodesFor returns this Arena's Nodes[T], creating it on first use. The key
// is T itself rather than reflect.TypeOf(value), so this stays correct even
// if T is instantiated as an interface type (AllocNodeSlice's case below):
// reflect.TypeOf on an interface-typed value reports its dynamic type, which
// would otherwise fragment one logical sequence across several registry
// entries.
func nodesFor[T any](a *Arena) *Nodes[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	n, ok := a.nodes[key].(*Nodes[T])
	if !ok {
		n = &Nodes[T]{}
		a.nodes[key] = n
	}
	return n
}

// AllocNode copies value into this Arena's node storage for type T and
// returns a stable pointer to the copy, the same ownership guarantee Intern
// gives strings. This is how the parser and transformer obtain every AST
// node pointer: one Nodes[T] per concrete node type, created lazily.
func AllocNode[T any](a *Arena, value T) *T {
	return nodesFor[T](a).Alloc(value)
}

// AllocNodeSlice freezes a sequence built incrementally with append (a
// selection set, an argument list, ...) into this Arena's backing storage,
// the use AllocSlice was written for.
func AllocNodeSlice[T any](a *Arena, values []T) []T {
	return AllocSlice(nodesFor[T](a), values)
}

// Intern returns a reference to the canonical copy of s within this arena.
// Two calls to Intern with equal strings return the exact same backing
// string header (same Data pointer), so callers may compare interned copies
// by pointer identity via Same in addition to the regular ==
// comparison (which is always correct but not O(1) on pointer width alone
// for long strings).
func (a *Arena) Intern(s string) string {
	if canonical, ok := a.interned[s]; ok {
		return canonical
	}

	canonical := a.copyString(s)
	a.interned[canonical] = canonical
	return canonical
}

// copyString copies s into the arena's byte storage and returns a string
// header pointing into that storage, so the returned string survives even if
// the caller's original buffer (e.g. a lexer scratch buffer) is reused.
func (a *Arena) copyString(s string) string {
	if len(s) == 0 {
		return ""
	}

	if cap(a.strings)-len(a.strings) < len(s) {
		// Grow by at least blockSize, or enough to fit s if s itself is larger
		// than one block. Previously-allocated interned strings keep pointing
		// into the old (now orphaned but still live, since Go is GC'd) backing
		// array: we never touch a.strings[:oldLen] again.
		size := a.blockSize
		if size < len(s) {
			size = len(s)
		}
		a.strings = make([]byte, 0, size)
	}

	start := len(a.strings)
	a.strings = append(a.strings, s...)
	return bytesToString(a.strings[start : start+len(s)])
}

// bytesToString reinterprets b as a string without copying. It is the
// caller's responsibility to guarantee b is never mutated afterwards, which
// holds here because copyString only ever appends past the end of the bytes
// it has already handed out and never rewrites them; once a block is full
// it moves on to a fresh backing array.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// Same reports whether two strings are the same canonical copy interned by
// this arena, i.e. whether they share a backing pointer. Both arguments must
// have previously been returned by Intern on this same Arena; Same is a
// pointer-identity shortcut for Interned equality, not a general string
// comparison (use == for that).
func Same(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return unsafe.StringData(a) == unsafe.StringData(b)
}
