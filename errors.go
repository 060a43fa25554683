package enumstring

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for the lookup and construction failure conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidEnumValue indicates an enumerator that is not present in the mapping.
	ErrInvalidEnumValue = errors.New("enum value not found in the mapping")

	// ErrInvalidStringValue indicates a label that is not present in the mapping,
	// either exactly or case-insensitively depending on the lookup used.
	ErrInvalidStringValue = errors.New("string value not found in the mapping")

	// ErrOddArguments indicates a FromArgs call with an odd number of arguments.
	// Mappings are built from alternating enumerator/label pairs, so the count
	// must be even.
	ErrOddArguments = errors.New("argument count must be even")

	// ErrBadArgument indicates a FromArgs argument that is neither an enumerator
	// of the mapping's type (in an even position) nor a string (in an odd position).
	ErrBadArgument = errors.New("argument has unexpected type")

	// ErrNotRegistered indicates that no mapping has been registered for the
	// requested enum type. See the registry package.
	ErrNotRegistered = errors.New("no mapping registered for enum type")
)

// Error kinds categorize errors by their type.
const (
	// KindInvalidEnum represents enumerator-to-label lookups that found no entry.
	KindInvalidEnum = "invalid_enum_value"

	// KindInvalidString represents label-to-enumerator lookups that found no entry.
	KindInvalidString = "invalid_string_value"

	// KindOutOfRange represents malformed construction input.
	KindOutOfRange = "out_of_range"

	// KindNotRegistered represents lookups against an enum type that has no
	// registered mapping.
	KindNotRegistered = "not_registered"
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the category of
// error.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &enumstring.Error{
//		Op:   "Map.ToEnum",
//		Kind: enumstring.KindInvalidString,
//		Err:  enumstring.ErrInvalidStringValue,
//	}
type Error struct {
	// Op is the operation that failed (e.g., "Map.ToString", "FromArgs").
	Op string

	// Kind categorizes the error (e.g., KindInvalidEnum, KindOutOfRange).
	Kind string

	// Err is the underlying error that caused this error.
	Err error

	// Context provides additional context about the error (optional).
	// This can include the offending label, enumerator value, or argument index.
	Context map[string]any
}

// Error implements the error interface, returning a formatted error message
// that includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("enumstring: %s: %s", e.Op, e.Kind)
	}

	if len(e.Context) > 0 {
		return fmt.Sprintf("enumstring: %s (%s): %v [context: %+v]", e.Op, e.Kind, e.Err, e.Context)
	}

	return fmt.Sprintf("enumstring: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison based on
// the underlying error or on another Error's Op and Kind.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	// Check if target is an Error with matching Kind
	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	// Delegate to underlying error
	return errors.Is(e.Err, target)
}

// WithContext returns a new Error with the provided context added.
// This is useful for attaching the offending value to a lookup failure.
//
// Example:
//
//	err := enumstring.NewInvalidStringError("Map.ToEnum")
//	err = err.WithContext(map[string]any{"label": "purple"})
func (e *Error) WithContext(ctx map[string]any) *Error {
	newErr := *e
	if newErr.Context == nil {
		newErr.Context = make(map[string]any)
	}
	for k, v := range ctx {
		newErr.Context[k] = v
	}
	return &newErr
}

// LogValue implements slog.LogValuer, rendering the error as a structured
// group so log records carry the operation and kind as separate attributes.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("op", e.Op),
		slog.String("kind", e.Kind),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}
	for k, v := range e.Context {
		attrs = append(attrs, slog.Any(k, v))
	}
	return slog.GroupValue(attrs...)
}

// NewInvalidEnumError creates a new Error with KindInvalidEnum.
func NewInvalidEnumError(op string) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidEnum,
		Err:  ErrInvalidEnumValue,
	}
}

// NewInvalidStringError creates a new Error with KindInvalidString.
func NewInvalidStringError(op string) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidString,
		Err:  ErrInvalidStringValue,
	}
}

// NewOutOfRangeError creates a new Error with KindOutOfRange wrapping the
// given construction failure.
func NewOutOfRangeError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindOutOfRange,
		Err:  err,
	}
}

// NewNotRegisteredError creates a new Error with KindNotRegistered.
func NewNotRegisteredError(op string) *Error {
	return &Error{
		Op:   op,
		Kind: KindNotRegistered,
		Err:  ErrNotRegistered,
	}
}

// IsNotFound reports whether err represents either of the "not found" lookup
// failures: an unknown enumerator or an unknown label. Construction and
// registration failures are not "not found" errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrInvalidEnumValue) || errors.Is(err, ErrInvalidStringValue)
}
