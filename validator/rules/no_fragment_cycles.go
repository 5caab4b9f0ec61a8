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
	"github.com/devunt/mearie-sub001/validator"
)

// NoFragmentCycles implements "fragment spreads must not form cycles,
// directly or transitively", reporting one error per cycle found, located
// at the fragment the search for that cycle started from.
type NoFragmentCycles struct{}

// Finish implements validator.FinishRule.
func (NoFragmentCycles) Finish(ctx *validator.Context) {
	visited := make(map[string]bool)

	for _, frag := range ctx.Docs.Fragments() {
		name := string(frag.Name)
		if visited[name] {
			continue
		}
		path := map[string]bool{}
		var walk func(name string, order []string) []string
		walk = func(name string, order []string) []string {
			if visited[name] {
				return nil
			}
			if path[name] {
				return append(order, name)
			}
			path[name] = true
			order = append(order, name)
			f := ctx.Docs.GetFragment(name)
			if f == nil {
				delete(path, name)
				return nil
			}
			for _, spreadName := range spreadNamesIn(f.SelectionSet) {
				if cycle := walk(spreadName, order); cycle != nil {
					return cycle
				}
			}
			delete(path, name)
			visited[name] = true
			return nil
		}

		if cycle := walk(name, nil); cycle != nil {
			f := ctx.Docs.GetFragment(cycle[0])
			ctx.Errorf(f.Span_, "cannot spread fragment %q within itself via %s", cycle[0], joinNames(cycle))
			for _, n := range cycle {
				visited[n] = true
			}
		}
	}
}

func spreadNamesIn(set ast.SelectionSet) []string {
	var out []string
	for _, sel := range set {
		switch s := sel.(type) {
		case *ast.FragmentSpread:
			out = append(out, string(s.Name))
		case *ast.InlineFragment:
			out = append(out, spreadNamesIn(s.SelectionSet)...)
		case *ast.Field:
			out = append(out, spreadNamesIn(s.SelectionSet)...)
		}
	}
	return out
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
