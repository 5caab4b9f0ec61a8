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

// Package extract describes the extraction-collaborator contract (§6,
// "Extraction collaborator interface") without implementing it: a host
// that embeds GraphQL string literals in another language's source files
// is expected to provide its own Func that turns one such file into
// the GraphQL fragments it contains, each tagged with the absolute line it
// starts on so downstream error locations stay meaningful. Actually walking
// a host language's AST or token stream to find those literals is outside
// this module's scope; pipeline only needs the shape of the result.
package extract

import (
	"github.com/devunt/mearie-sub001/gqlerrors"
	"github.com/devunt/mearie-sub001/source"
)

// Result is what a Func hands back for one host source file:
// zero or more embedded GraphQL sources, plus any errors encountered while
// scanning for them (e.g. an unterminated template literal).
type Result struct {
	Sources []source.Source
	Errors  gqlerrors.List
}

// Func is the shape of an extraction collaborator: given a Source whose
// Code is host-language text, return the GraphQL fragments embedded in it.
// pipeline.Options.Extract holds one of these; a caller with no embedded
// GraphQL (document sources supplied directly, already-separated .graphql
// files) leaves it nil and skips the extraction stage entirely.
type Func func(src source.Source) Result
