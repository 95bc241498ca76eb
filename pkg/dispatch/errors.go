package dispatch

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch is matched by every *TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidArgument is matched by every *ArgumentError. It signals a
	// defect in the calling code, not invalid user data.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownKind is returned by ParseKind for names outside the kind set.
	ErrUnknownKind = errors.New("unknown kind")
)

// TypeMismatchError is returned by Gate when a value is not of the expected kind.
type TypeMismatchError struct {
	Expected Kind
	Actual   Kind
	GoType   string
}

func newTypeMismatch(expected Kind, v any) *TypeMismatchError {
	return &TypeMismatchError{
		Expected: expected,
		Actual:   KindOf(v),
		GoType:   fmt.Sprintf("%T", v),
	}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected kind %s, got %s (%s)", e.Expected, e.Actual, e.GoType)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ArgumentError describes a combinator invoked with an unusable argument.
type ArgumentError struct {
	Name   string
	Kind   Kind
	GoType string
	Reason string
	Err    error
}

// NewArgumentError builds an ArgumentError for the argument called name.
func NewArgumentError(name string, v any, reason string) *ArgumentError {
	return &ArgumentError{
		Name:   name,
		Kind:   KindOf(v),
		GoType: fmt.Sprintf("%T", v),
		Reason: reason,
	}
}

func (e *ArgumentError) Error() string {
	msg := fmt.Sprintf("invalid argument %q: %s, got %s (%s)", e.Name, e.Reason, e.Kind, e.GoType)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// AsArgumentError converts a *TypeMismatchError raised while checking the
// argument called name into an *ArgumentError wrapping it. Other errors, and
// nil, are returned unchanged.
func AsArgumentError(name string, v any, err error) error {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return err
	}
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		return err
	}
	argErr = NewArgumentError(name, v, "expected kind "+mismatch.Expected.String())
	argErr.Err = err
	return argErr
}
