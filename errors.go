package Entangled_Threads

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when a negative size or capacity is requested.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrIndexOutOfRange is wrapped by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrKeyAlreadyPresent is returned by inserts that find the key already stored. The stored value is left untouched.
	ErrKeyAlreadyPresent = errors.New("key already present")
	// ErrProtocolMisuse is returned when links are asked to change in a way that would break a list:
	// superseding a record that isn't in the list, linking a record twice into one dimension, or releasing a record twice.
	ErrProtocolMisuse = errors.New("relocation protocol misuse")
)

// IndexError reports an access at Index outside [0, Bound).
type IndexError struct {
	Op    string
	Index int
	Bound int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Bound)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// CapacityError reports a negative capacity request.
func CapacityError(op string, n int) error {
	return fmt.Errorf("%s: %w: %d", op, ErrInvalidCapacity, n)
}
