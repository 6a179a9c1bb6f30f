package peg

import (
	"fmt"
	"io"
	"strings"
)

// Trace the parse to "w".
func Trace(w io.Writer) Option {
	return func(p *Parser) error {
		p.trace = w
		return nil
	}
}

type tracer struct {
	w io.Writer
}

func (e Env) withTracer(w io.Writer) Env {
	if w == nil {
		e.tracer = nil
	} else {
		e.tracer = &tracer{w: w}
	}
	return e
}

func (e Env) tracef(format string, args ...any) {
	if e.tracer == nil {
		return
	}
	fmt.Fprintf(e.tracer.w, "%s%s\n", strings.Repeat("  ", e.depth()), fmt.Sprintf(format, args...))
}
