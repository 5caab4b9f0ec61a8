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

// Package gqlerrors defines the one structured error record every pipeline
// stage reports through, per §7 of the specification: errors never unwind
// the pipeline, they accumulate in a shared list.
package gqlerrors

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/devunt/mearie-sub001/source"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Stage identifies which phase of the pipeline produced an Error.
type Stage string

// Enumeration of Stage.
const (
	StageExtraction Stage = "extraction"
	StageParse      Stage = "parse"
	StageValidation Stage = "validation"
	StageCodegen    Stage = "codegen"
)

// Location is the optional position an Error refers to.
type Location struct {
	FilePath string `json:"file_path"`
	Line     uint32 `json:"line"`
	Column   uint32 `json:"column,omitempty"`
}

// Error is a single structured diagnostic. It implements Go's error
// interface so it can be returned from internal helpers that only ever
// produce one error at a time (the lexer, the parser), while still being
// collected into a List by stages that may produce many.
type Error struct {
	Stage    Stage     `json:"stage"`
	Message  string    `json:"message"`
	Location *Location `json:"location,omitempty"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// New builds an Error with no location.
func New(stage Stage, message string) Error {
	return Error{Stage: stage, Message: message}
}

// At builds an Error located at the start of span within src.
func At(stage Stage, message string, src source.Source, span source.Span) Error {
	loc := source.LocationOfSpan(src, span)
	return Error{
		Stage:   stage,
		Message: message,
		Location: &Location{
			FilePath: loc.FilePath,
			Line:     loc.Line,
			Column:   loc.Column,
		},
	}
}

// MarshalJSON and UnmarshalJSON route through jsoniter rather than
// encoding/json, continuing the teacher's substitution of json-iterator/go
// for JSON work (see jsonwriter, executor/result_marshaler.go) so that a
// foreign-runtime binding marshaling an error list across an FFI boundary
// pays jsoniter's cost, not the standard library's.
func (e Error) MarshalJSON() ([]byte, error) {
	type alias Error
	return json.Marshal(alias(e))
}

func (e *Error) UnmarshalJSON(data []byte) error {
	type alias Error
	return json.Unmarshal(data, (*alias)(e))
}

// List accumulates Errors from one or more pipeline stages without ever
// aborting processing, per §7's propagation rule.
type List struct {
	errors []Error
}

// Add appends err to the list.
func (l *List) Add(err Error) {
	l.errors = append(l.errors, err)
}

// AddAll appends every error in other's accumulated list.
func (l *List) AddAll(other *List) {
	if other == nil {
		return
	}
	l.errors = append(l.errors, other.errors...)
}

// HasErrors reports whether any error has been recorded.
func (l *List) HasErrors() bool {
	return len(l.errors) > 0
}

// Errors returns the accumulated errors in the order they were added. The
// returned slice must not be mutated by the caller.
func (l *List) Errors() []Error {
	return l.errors
}

// MarshalJSON marshals the accumulated errors as a JSON array.
func (l List) MarshalJSON() ([]byte, error) {
	if l.errors == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.errors)
}
