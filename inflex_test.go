// Copyright (c) 2026 The inflex Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package inflex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/noizu/inflex"
)

type symbol string

func TestSingularize(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"men", "man"},
		{"man", "man"},
		{"geese", "goose"},
		{"cacti", "cactus"},
		{"pegs", "peg"},
		{"apples", "apple"},
		{"MEN", "Man"},
	} {
		if got := inflex.Singularize(tt.in); got != tt.want {
			t.Errorf("Singularize(%q): got %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"child", "children"},
		{"person", "people"},
		{"apple", "apples"},
		{"apples", "apples"},
		{"sheep", "sheep"},
	} {
		if got := inflex.Pluralize(tt.in); got != tt.want {
			t.Errorf("Pluralize(%q): got %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestInflect(t *testing.T) {
	for _, tt := range []struct {
		desc string
		word string
		n    float64
		want string
	}{
		{desc: "one child", word: "child", n: 1, want: "child"},
		{desc: "many children", word: "child", n: 22, want: "children"},
		{desc: "one peg", word: "pegs", n: 1, want: "peg"},
		{desc: "many pegs", word: "pegs", n: 22, want: "pegs"},
		{desc: "zero", word: "apple", n: 0, want: "apples"},
		{desc: "negative one", word: "apple", n: -1, want: "apples"},
		{desc: "fraction", word: "apple", n: 1.5, want: "apples"},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			if got := inflex.Inflect(tt.word, tt.n); got != tt.want {
				t.Errorf("Inflect(%q, %v): got %q, expected %q", tt.word, tt.n, got, tt.want)
			}
		})
	}

	if got := inflex.Inflect("child", uint8(1)); got != "child" {
		t.Errorf("Inflect with uint8: got %q", got)
	}
	if got := inflex.Inflect("child", int64(3)); got != "children" {
		t.Errorf("Inflect with int64: got %q", got)
	}
}

func TestTextInputs(t *testing.T) {
	got := []string{
		inflex.Pluralize(symbol("child")),
		inflex.Pluralize([]byte("child")),
		inflex.Pluralize([]rune("child")),
		inflex.Singularize(symbol("geese")),
		inflex.Inflect(symbol("person"), 2),
	}
	want := []string{"children", "children", "children", "goose", "people"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}

	if !inflex.IsUncountable(symbol("news")) {
		t.Error("news should be uncountable")
	}
	if inflex.IsUncountable("News") {
		t.Error("News should not be uncountable")
	}
}

func TestRoundTrip(t *testing.T) {
	for _, w := range []string{"apple", "dog", "box", "church", "city", "wish", "key", "human"} {
		p := inflex.Pluralize(w)
		if got := inflex.Singularize(p); got != w {
			t.Errorf("Singularize(Pluralize(%q)) = Singularize(%q) = %q", w, p, got)
		}
		if got := inflex.Singularize(inflex.Singularize(w)); got != inflex.Singularize(w) {
			t.Errorf("Singularize is not stable for %q: %q", w, got)
		}
	}
}

func TestDefault(t *testing.T) {
	var in inflex.Inflector = inflex.Default
	if got := in.Pluralize("goose"); got != "geese" {
		t.Errorf("got %q", got)
	}
	if got := in.Singularize("children"); got != "child" {
		t.Errorf("got %q", got)
	}
}
