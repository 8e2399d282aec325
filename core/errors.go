package core

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the pipeline. Match them with errors.Is.
var (
	ErrInputNotFound     = errors.New("input not found")
	ErrMalformedCaption  = errors.New("malformed caption")
	ErrMalformedListItem = errors.New("malformed list item")
	ErrMalformedAnchor   = errors.New("malformed anchor")
)

// StageError records which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
