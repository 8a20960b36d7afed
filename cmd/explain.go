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

package cmd

import (
	"github.com/noizu/inflex/internal"
	"github.com/spf13/cobra"
)

func newExplainCmd(opts *rootCmdOption) *cobra.Command {
	return &cobra.Command{
		Use:   "explain WORD...",
		Short: "Show the rule each table applies to a word.",
		Args:  requireWords,
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []explanation
			for _, w := range args {
				for _, table := range []struct {
					name  string
					rules internal.RuleTable
				}{
					{"singular", internal.SingularRules},
					{"plural", internal.PluralRules},
				} {
					e := explain(table.name, table.rules, w)
					opts.logger.Debug("explain", "word", w, "table", e.Table, "rule", e.Rule)
					out = append(out, e)
				}
			}
			return writeExplanations(cmd.OutOrStdout(), opts.Format, out)
		},
	}
}

func explain(name string, table internal.RuleTable, word string) explanation {
	e := explanation{
		Word:   word,
		Table:  name,
		Rule:   -1,
		Result: table.Resolve(word),
	}
	if internal.IsUncountable(word) {
		e.Uncountable = true
		return e
	}
	if rule, i, ok := table.Match(word); ok {
		e.Rule = i
		e.Pattern = rule.Pattern()
		e.Replacement = rule.Replacement()
	}
	return e
}
