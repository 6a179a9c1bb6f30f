package peg

import "fmt"

// An Option to modify the behaviour of the Parser.
type Option func(p *Parser) error

// Start parsing at pos rather than 0.
func Start(pos int) Option {
	return func(p *Parser) error {
		if pos < 0 {
			return fmt.Errorf("start position %d is negative", pos)
		}
		p.start = pos
		return nil
	}
}

// Complete only accepts matches that consume the whole input.
//
// Inputs that are not indexable are unaffected.
func Complete() Option {
	return func(p *Parser) error {
		p.complete = true
		return nil
	}
}

// Limit the number of matches produced per input. Zero means no limit.
func Limit(n int) Option {
	return func(p *Parser) error {
		if n < 0 {
			return fmt.Errorf("limit %d is negative", n)
		}
		p.limit = n
		return nil
	}
}

// Bindings seeds every parse with env.
func Bindings(env Env) Option {
	return func(p *Parser) error {
		p.env = env
		return nil
	}
}
