package model

import "fmt"

// LexicalError reports an unrecognized character in the input.
// Hint carries an optional remediation suggestion for common mistakes;
// it is advisory output only and never changes parse results.
type LexicalError struct {
	Message  string
	Position int
	Hint     string
}

func (e *LexicalError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("position %d: %s (%s)", e.Position, e.Message, e.Hint)
	}

	return fmt.Sprintf("position %d: %s", e.Position, e.Message)
}

// SyntaxError reports a grammar violation. Position and Length delimit the
// offending source range for UI highlighting.
type SyntaxError struct {
	Message  string
	Position int
	Length   int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("position %d: %s", e.Position, e.Message)
}

// UndefinedVariableError reports an evaluation against a binding set that
// lacks a referenced variable.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("variable %q has no binding", e.Name)
}

// TooManyVariablesError reports a request that exceeds one of the hard
// variable caps (8 for truth tables, 6 for minimization, 4 for Karnaugh
// maps). The operation is rejected outright, never silently truncated.
type TooManyVariablesError struct {
	Operation string
	Count     int
	Limit     int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("%s supports at most %d variables, got %d", e.Operation, e.Limit, e.Count)
}
