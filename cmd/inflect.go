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
	"fmt"
	"strconv"

	"github.com/noizu/inflex"
	"github.com/spf13/cobra"
)

func newSingularizeCmd(opts *rootCmdOption) *cobra.Command {
	return &cobra.Command{
		Use:   "singularize WORD...",
		Short: "Print the singular form of each word.",
		Args:  requireWords,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			for _, w := range args {
				r := inflex.Singularize(w)
				opts.logger.Debug("singularize", "word", w, "result", r)
				results = append(results, result{Word: w, Result: r})
			}
			return writeResults(cmd.OutOrStdout(), opts.Format, results)
		},
	}
}

func newPluralizeCmd(opts *rootCmdOption) *cobra.Command {
	return &cobra.Command{
		Use:   "pluralize WORD...",
		Short: "Print the plural form of each word.",
		Args:  requireWords,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]result, 0, len(args))
			for _, w := range args {
				r := inflex.Pluralize(w)
				opts.logger.Debug("pluralize", "word", w, "result", r)
				results = append(results, result{Word: w, Result: r})
			}
			return writeResults(cmd.OutOrStdout(), opts.Format, results)
		},
	}
}

func newInflectCmd(opts *rootCmdOption) *cobra.Command {
	return &cobra.Command{
		Use:   "inflect WORD COUNT",
		Short: "Print the form of WORD that agrees with COUNT.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("must specify 2 arguments")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid count %q: %v", args[1], err)
			}
			r := inflex.Inflect(args[0], n)
			opts.logger.Debug("inflect", "word", args[0], "count", n, "result", r)
			return writeResults(cmd.OutOrStdout(), opts.Format, []result{
				{Word: args[0], Count: args[1], Result: r},
			})
		},
	}
}
