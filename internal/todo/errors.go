package todo

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrOutOfRange   = errors.New("index out of range")
)

// TypeError is returned by Add when the value is not an Item.
type TypeError struct {
	Value any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("add: %s: %T is not a todo item", ErrTypeMismatch, e.Value)
}

func (e *TypeError) Unwrap() error { return ErrTypeMismatch }

// IndexError is returned by index-based operations for an index outside
// [0, Size).
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: %s: have %d, got %d", e.Op, ErrOutOfRange, e.Size, e.Index)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }
