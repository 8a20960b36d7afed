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
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatYAML = "yaml"

	exampleUsage = `
  # Pluralize words
  inflex pluralize child person apple

  # Pick the form for a count
  inflex inflect peg 3

  # Show which rule inflects a word, as yaml
  inflex explain mice --format yaml
`
)

// rootCmdOption is the type that specifies the global command line arguments.
type rootCmdOption struct {
	// Format is the output format, text or yaml.
	Format string

	// Verbose logs every resolution to stderr.
	Verbose bool

	logger *slog.Logger
}

func (o *rootCmdOption) validate() error {
	switch o.Format {
	case formatText, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown format %q: must be %s or %s", o.Format, formatText, formatYAML)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newRootCmd() *cobra.Command {
	opts := &rootCmdOption{}
	cmd := &cobra.Command{
		Use:     "inflex",
		Short:   "inflex converts English nouns between singular and plural form.",
		Example: strings.Trim(exampleUsage, "\n"),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.Format, "format", "f", formatText, "output format (text, yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log each resolution to stderr")

	cmd.AddCommand(
		newSingularizeCmd(opts),
		newPluralizeCmd(opts),
		newInflectCmd(opts),
		newExplainCmd(opts),
	)
	return cmd
}

func Execute() error {
	return newRootCmd().Execute()
}

func requireWords(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("must specify at least 1 word")
	}
	return nil
}
