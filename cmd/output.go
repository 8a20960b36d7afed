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

	"gopkg.in/yaml.v2"
)

type result struct {
	Word   string `yaml:"word"`
	Count  string `yaml:"count,omitempty"`
	Result string `yaml:"result"`
}

type explanation struct {
	Word        string `yaml:"word"`
	Table       string `yaml:"table"`
	Uncountable bool   `yaml:"uncountable,omitempty"`
	Rule        int    `yaml:"rule"`
	Pattern     string `yaml:"pattern,omitempty"`
	Replacement string `yaml:"replacement,omitempty"`
	Result      string `yaml:"result"`
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %v", err)
	}
	return enc.Close()
}

func writeResults(w io.Writer, format string, results []result) error {
	if format == formatYAML {
		return writeYAML(w, results)
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Result); err != nil {
			return err
		}
	}
	return nil
}

func writeExplanations(w io.Writer, format string, out []explanation) error {
	if format == formatYAML {
		return writeYAML(w, out)
	}
	for _, e := range out {
		var err error
		switch {
		case e.Uncountable:
			_, err = fmt.Fprintf(w, "%s\t%s -> %s\tuncountable\n", e.Table, e.Word, e.Result)
		case e.Rule < 0:
			_, err = fmt.Fprintf(w, "%s\t%s -> %s\tno rule\n", e.Table, e.Word, e.Result)
		default:
			_, err = fmt.Fprintf(w, "%s\t%s -> %s\trule %d: %s => %q\n", e.Table, e.Word, e.Result, e.Rule, e.Pattern, e.Replacement)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
