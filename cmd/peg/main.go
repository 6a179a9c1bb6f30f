// Command peg matches inputs against a set of built-in grammars and prints every
// interpretation it finds, longest first.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

var version = "dev"

type cli struct {
	Version kong.VersionFlag `help:"Show version."`
	List    listCmd          `cmd:"" help:"List the built-in grammars."`
	Match   matchCmd         `cmd:"" help:"Match inputs against a built-in grammar."`
}

// Passed to the Run method of each command.
type runContext struct {
	Stdout io.Writer
	Stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer, options ...kong.Option) error {
	options = append([]kong.Option{
		kong.Name("peg"),
		kong.Description(`Match inputs against backtracking parsing expression grammars.`),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
	}, options...)
	parser, err := kong.New(&cli{}, options...)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return kctx.Run(&runContext{Stdout: stdout, Stderr: stderr})
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "peg: error: %s\n", err)
		os.Exit(1)
	}
}
