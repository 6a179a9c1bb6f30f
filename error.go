package peg

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned by Parser.First when the input does not match.
var ErrNoMatch = errors.New("no match")

// Error represents a programming error in a grammar, as opposed to input that simply does not
// match.
//
// Errors are raised as panics while a grammar is being instantiated and returned by the Parser
// methods that drive the parse.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position the error occurred at.
	Position() int
}

// UnboundVariableError is raised when Construct reaches a variable that is not bound.
type UnboundVariableError struct {
	Param    string
	Variable *Variable
	Pos      int
}

func (u *UnboundVariableError) Message() string {
	return fmt.Sprintf("parameter %q refers to unbound variable %s", u.Param, u.Variable)
}
func (u *UnboundVariableError) Position() int { return u.Pos }
func (u *UnboundVariableError) Error() string { return formatError(u.Pos, u.Message()) }

// FactoryError wraps an error returned by a Make, Apply or Construct factory.
type FactoryError struct {
	Err error
	Pos int
}

func (f *FactoryError) Message() string { return "factory failed: " + f.Err.Error() }
func (f *FactoryError) Position() int   { return f.Pos }
func (f *FactoryError) Error() string   { return formatError(f.Pos, f.Message()) }
func (f *FactoryError) Unwrap() error   { return f.Err }

// UndefinedRuleError is raised when a grammar refers to a rule that was never defined.
type UndefinedRuleError struct {
	Rule string
	Pos  int
}

func (u *UndefinedRuleError) Message() string { return fmt.Sprintf("undefined rule %q", u.Rule) }
func (u *UndefinedRuleError) Position() int   { return u.Pos }
func (u *UndefinedRuleError) Error() string   { return formatError(u.Pos, u.Message()) }

// ContractError is raised when a Primitive moves backwards or past the end of its input.
type ContractError struct {
	Name string
	Pos  int
	Next int
}

func (c *ContractError) Message() string {
	return fmt.Sprintf("primitive %s moved from %d to invalid position %d", c.Name, c.Pos, c.Next)
}
func (c *ContractError) Position() int { return c.Pos }
func (c *ContractError) Error() string { return formatError(c.Pos, c.Message()) }

func formatError(pos int, message string) string {
	return fmt.Sprintf("%d: %s", pos, message)
}

func recoverToError(err *error) {
	if msg := recover(); msg != nil {
		switch msg := msg.(type) {
		case Error:
			*err = msg
		default:
			panic(msg)
		}
	}
}
