package state

import "fmt"

// PathError reports an invalid path argument or goto target. It is
// recoverable: the browser keeps its previous state.
type PathError struct {
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path: %s", e.Path)
}

// PatternError reports an invalid search regular expression.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid search pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// ExecError reports an external command that failed to launch or
// exited non-zero.
type ExecError struct {
	Cmd string
	Err error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to execute %q: %v", e.Cmd, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
