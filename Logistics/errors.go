package Logistics

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPackage = errors.New("unknown package")
	ErrPackageExists  = errors.New("package already registered")
	ErrUnknownCommand = errors.New("unknown command")
)

// ParseError locates a bad token of the input. Pos counts tokens from 1.
// Token is empty when the input ended in the middle of a command.
type ParseError struct {
	Token string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("token %d: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("token %d %q: %v", e.Pos, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// rejected events are skipped by Run.
func rejected(err error) bool {
	return errors.Is(err, ErrUnknownPackage) || errors.Is(err, ErrPackageExists)
}
