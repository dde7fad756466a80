package polynomial

import (
	"errors"
	"fmt"
)

// Error kinds separate caller mistakes from internal consistency
// failures that a correct caller should never see.
const (
	KindInvalidInput          = "invalid_input"
	KindPreconditionViolation = "precondition_violation"
)

// Error carries the failing operation and an error kind alongside the
// message so service layers can map failures without string matching.
type Error struct {
	Kind    string
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Message
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewInvalidInputError reports a caller error, such as an empty
// coefficient slice.
func NewInvalidInputError(op, format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Op: op, Message: fmt.Sprintf(format, args...)}
}

// NewPreconditionError reports an internal invariant failure, such as a
// bisection interval that does not bracket a sign change.
func NewPreconditionError(op, format string, args ...interface{}) *Error {
	return &Error{Kind: KindPreconditionViolation, Op: op, Message: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is, or wraps, a caller-input
// error.
func IsInvalidInput(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvalidInput
}
