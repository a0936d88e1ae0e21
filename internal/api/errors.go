package api

import (
	"errors"
	"fmt"
)

// Error taxonomy for remote calls. Screens catch these at the call site and
// render them as inline text; nothing propagates as an uncaught fault.
// A policy denial from the gate check is not an error: it travels as an
// Eligibility value with the service's message.

// ErrTransport indicates a failed or timed-out call: connection errors,
// non-2xx statuses, or undecodable bodies.
type ErrTransport struct {
	Op  string
	Err error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrEmpty indicates the service answered successfully but had no data:
// zero questions for a skill, or no journey for a (user, skill) pair.
// It is a data-availability condition, not a transport fault.
type ErrEmpty struct {
	Resource string
}

func (e *ErrEmpty) Error() string {
	return fmt.Sprintf("no %s available", e.Resource)
}

// ErrInvalidPayload indicates the service returned JSON that does not
// conform to the expected schema.
type ErrInvalidPayload struct {
	Op  string
	Err error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("%s: invalid response: %v", e.Op, e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }

// IsEmpty reports whether err is an ErrEmpty.
func IsEmpty(err error) bool {
	var e *ErrEmpty
	return errors.As(err, &e)
}
