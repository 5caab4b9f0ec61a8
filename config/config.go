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

// Package config holds the one configuration record the pipeline accepts
// (§6's Input surface): the caller-supplied scalar-name overrides the
// generator consults when it would otherwise fall back to `unknown` for a
// custom scalar. Kept as its own package, rather than a field on
// pipeline.Options, so a host embedding only the generator doesn't have to
// pull in schema/docindex/validator/transform to describe one map.
package config

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config is the pipeline's one recognized option record.
type Config struct {
	// Scalars maps a custom scalar's GraphQL name to the host type name the
	// generator should reference instead of `unknown` in the emitted
	// Scalars type (§4.8 item 2).
	Scalars map[string]string `json:"scalars"`
}

// Parse decodes a JSON-encoded Config, the shape a foreign-language caller
// hands across an FFI boundary (no Go caller needs this; config.Config{...}
// constructs one directly).
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ScalarOverride returns the caller-configured host type for a custom
// scalar named name, and whether one was configured.
func (c Config) ScalarOverride(name string) (string, bool) {
	if c.Scalars == nil {
		return "", false
	}
	v, ok := c.Scalars[name]
	return v, ok
}
