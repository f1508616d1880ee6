package lambda

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTerm is the panic value for a Term that is none of
	// Var, Abs or App. It cannot happen through this package's API.
	ErrMalformedTerm = errors.New("malformed term")

	// ErrStepLimit is returned by Normalize when the limit is hit
	// before a normal form.
	ErrStepLimit = errors.New("step limit reached")

	// ErrParse wraps every parser failure.
	ErrParse = errors.New("parse error")
)

func malformed(t Term) error {
	return fmt.Errorf("%w: %T", ErrMalformedTerm, t)
}
