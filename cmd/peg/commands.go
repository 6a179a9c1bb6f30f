package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"golang.org/x/exp/slices"

	"github.com/alecthomas/peg"
)

type listCmd struct{}

func (l *listCmd) Run(ctx *runContext) error {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		b := builtins[name]
		fmt.Fprintf(ctx.Stdout, "%s  %s\n", color.GreenString(name), b.help)
		for _, line := range strings.Split(strings.TrimSuffix(describe(b.expr), "\n"), "\n") {
			fmt.Fprintf(ctx.Stdout, "    %s\n", line)
		}
	}
	return nil
}

func describe(expr peg.Expression) string {
	if g, ok := expr.(*peg.Grammar); ok {
		return g.String()
	}
	return peg.MustNew(expr).String()
}

type matchCmd struct {
	Limit    int  `short:"n" help:"Maximum number of matches to print per input (0 for all)."`
	Complete bool `short:"c" help:"Only print matches that consume the whole input."`
	Trace    bool `help:"Trace rule expansion to stderr."`

	Grammar string   `arg:"" help:"Built-in grammar to match with (see \"peg list\")."`
	Inputs  []string `arg:"" help:"Inputs to match."`
}

func (m *matchCmd) Run(ctx *runContext) error {
	b, ok := builtins[m.Grammar]
	if !ok {
		return fmt.Errorf("unknown grammar %q", m.Grammar)
	}
	options := []peg.Option{peg.Limit(m.Limit)}
	if m.Complete {
		options = append(options, peg.Complete())
	}
	if m.Trace {
		options = append(options, peg.Trace(ctx.Stderr))
	}
	parser, err := peg.New(b.expr, options...)
	if err != nil {
		return err
	}
	header := color.New(color.Bold)
	for _, input := range m.Inputs {
		matches, err := parser.All(input)
		if err != nil {
			return fmt.Errorf("%q: %w", input, err)
		}
		noun := "matches"
		if len(matches) == 1 {
			noun = "match"
		}
		header.Fprintf(ctx.Stdout, "%q: %d %s\n", input, len(matches), noun)
		for _, match := range matches {
			printMatch(ctx.Stdout, match)
		}
	}
	return nil
}

func printMatch(w io.Writer, m peg.Match) {
	fmt.Fprintf(w, "  %s %s", color.CyanString("@%d", m.Pos), display(m.Result.Unpack()))
	for v, r := range m.Env.Bindings() {
		fmt.Fprintf(w, " %s=%s", color.YellowString(v.String()), display(r.Unpack()))
	}
	fmt.Fprintln(w)
}

// display formats runes as characters and sequences as bracketed lists.
func display(v any) string {
	switch v := v.(type) {
	case rune:
		return strconv.QuoteRune(v)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = display(item)
		}
		return "[" + strings.Join(items, " ") + "]"
	}
	return repr.String(v)
}
