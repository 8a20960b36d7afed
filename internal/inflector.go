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

import (
	"regexp"
)

type Inflector interface {
	Singularize(string) string
	Pluralize(string) string
}

// Rule is a compiled inflection rule.
type Rule struct {
	find    *regexp.Regexp
	replace string
}

func newRule(find, replace string) Rule {
	return Rule{
		find:    regexp.MustCompile("(?i)" + find),
		replace: replace,
	}
}

// Pattern returns the source of the rule's regular expression.
func (r Rule) Pattern() string {
	return r.find.String()
}

// Replacement returns the rule's replacement template.
func (r Rule) Replacement() string {
	return r.replace
}

func (r Rule) Match(word string) bool {
	return r.find.MatchString(word)
}

func (r Rule) Apply(word string) string {
	return r.find.ReplaceAllString(word, r.replace)
}

// RuleTable is an ordered list of rules. The first matching rule wins.
type RuleTable []Rule

// Match returns the first rule in t that matches word and its position.
func (t RuleTable) Match(word string) (Rule, int, bool) {
	for i, r := range t {
		if r.Match(word) {
			return r, i, true
		}
	}
	return Rule{}, -1, false
}

// Resolve inflects word with the first matching rule. Uncountable words and
// words no rule matches are returned unchanged.
func (t RuleTable) Resolve(word string) string {
	if IsUncountable(word) {
		return word
	}
	r, _, ok := t.Match(word)
	if !ok {
		return word
	}
	return r.Apply(word)
}

var (
	// SingularRules converts plural words to singular.
	SingularRules RuleTable

	// PluralRules converts singular words to plural.
	PluralRules RuleTable
)

func init() {
	SingularRules = buildTable(defaultSingularInflections, func(r irregularRule) string { return r.singular })
	PluralRules = buildTable(defaultPluralInflections, func(r irregularRule) string { return r.plural })
}

func buildTable(rules []inflectionRule, irregular func(irregularRule) string) RuleTable {
	t := make(RuleTable, 0, len(irregularRules)+len(rules))
	for _, rule := range irregularRules {
		t = append(t, newRule(rule.find, irregular(rule)))
	}
	for _, rule := range rules {
		t = append(t, newRule(rule.find, rule.replace))
	}
	return t
}

type ruleInflector struct{}

func (i *ruleInflector) Singularize(s string) string {
	return SingularRules.Resolve(s)
}

func (i *ruleInflector) Pluralize(s string) string {
	return PluralRules.Resolve(s)
}

func NewInflector() Inflector {
	return &ruleInflector{}
}
