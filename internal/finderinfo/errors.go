package finderinfo

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is matched by every *TruncatedError.
	ErrTruncated = errors.New("truncated input")
	// ErrIO is matched by every *IOError.
	ErrIO = errors.New("i/o failure")
)

// Part names the region of the attribute a truncation was detected in.
type Part string

const (
	PartLegacy   Part = "legacy"
	PartExtended Part = "extended"
	PartRecord   Part = "record"
)

// TruncatedError reports that fewer bytes were available than a decode needs.
type TruncatedError struct {
	Part Part
	Want int
	Got  int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%s finder info truncated: got %d bytes, expected %d", e.Part, e.Got, e.Want)
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// IOError wraps a failure reported by the byte source or sink.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func truncated(part Part, want, got int) error {
	return &TruncatedError{Part: part, Want: want, Got: got}
}
