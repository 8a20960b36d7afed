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

package internal

// uncountables never change form. Membership is an exact, case-sensitive
// comparison against the input word.
var uncountables = map[string]struct{}{
	"aircraft":    {},
	"bellows":     {},
	"bison":       {},
	"deer":        {},
	"equipment":   {},
	"fish":        {},
	"hovercraft":  {},
	"information": {},
	"jeans":       {},
	"means":       {},
	"measles":     {},
	"money":       {},
	"moose":       {},
	"news":        {},
	"pants":       {},
	"police":      {},
	"rice":        {},
	"series":      {},
	"sheep":       {},
	"spacecraft":  {},
	"species":     {},
	"swine":       {},
	"tights":      {},
	"tongs":       {},
	"trousers":    {},
}

// IsUncountable reports whether word is one of the words that have no
// distinct plural form. "Sheep" is not uncountable, "sheep" is.
func IsUncountable(word string) bool {
	_, ok := uncountables[word]
	return ok
}

// Uncountables returns the uncountable words in no particular order.
func Uncountables() []string {
	words := make([]string, 0, len(uncountables))
	for w := range uncountables {
		words = append(words, w)
	}
	return words
}
