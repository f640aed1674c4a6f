package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies every failure the client surfaces. Screens branch on the
// kind, never on error strings or sentinel response fields.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindNotFound
	KindUnauthorized
	KindStorage
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindStorage:
		return "storage"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is the one error shape crossing package boundaries.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is match on kind so callers can compare against
// lightweight probes like &Error{Kind: KindNotFound}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf walks the chain and returns the first classified kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
