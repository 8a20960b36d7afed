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

// Package inflex converts English nouns between their singular and plural
// forms.
//
//	inflex.Pluralize("child")   // children
//	inflex.Singularize("geese") // goose
//	inflex.Inflect("peg", 3)    // pegs
//
// Words are inflected by ordered regular expression rules; the first rule
// that matches a word decides its form. A fixed set of uncountable words
// such as "sheep" and "news" is returned unchanged. The rules are built once
// and are safe for concurrent use.
package inflex

import (
	"github.com/noizu/inflex/internal"
)

// Text is any string-like word. Named string types, such as symbol or
// identifier types, satisfy it.
type Text interface {
	~string | ~[]byte | ~[]rune
}

// Number is any count Inflect accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Inflector converts words between singular and plural form.
type Inflector interface {
	Singularize(string) string
	Pluralize(string) string
}

// Default is the Inflector backed by the built-in rules.
var Default Inflector = internal.NewInflector()

// Singularize returns the singular form of word.
func Singularize[W Text](word W) string {
	return internal.SingularRules.Resolve(string(word))
}

// Pluralize returns the plural form of word.
func Pluralize[W Text](word W) string {
	return internal.PluralRules.Resolve(string(word))
}

// Inflect returns word in the form matching n: singular when n is exactly 1,
// plural for any other count including zero and negatives.
func Inflect[W Text, N Number](word W, n N) string {
	if n == 1 {
		return Singularize(word)
	}
	return Pluralize(word)
}

// IsUncountable reports whether word never changes form. The comparison is
// exact and case-sensitive.
func IsUncountable[W Text](word W) bool {
	return internal.IsUncountable(string(word))
}
