// Package serrors defines the semantic error taxonomy of the application.
// Services classify every failure exactly once with one of the Kind sentinels
// below; outer layers (HTTP, CLI) only ever inspect the kind.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind or NewSubKind. It allows distinguishing semantic kinds from
// ordinary errors.
type Kind interface {
	error
	isKind()
	// Parent returns the kind this kind refines, or nil for top-level kinds.
	Parent() Kind
}

// kind is an unexported implementation of Kind used as a sentinel value for a
// semantic error category. A non-nil parent makes it a sub-kind.
type kind struct {
	s      string
	parent Kind
}

func (k *kind) Error() string { return k.s }
func (k *kind) isKind()       {}
func (k *kind) Parent() Kind  { return k.parent }

// Is makes a sub-kind match its parent (and the parent's parent, and so on).
func (k *kind) Is(target error) bool {
	if k.parent == nil {
		return false
	}

	return errors.Is(k.parent, target)
}

// NewKind creates a new top-level semantic error kind (a sentinel) with the
// provided name. Kinds are comparable and can be used with errors.Is/As through
// the serrors.Error wrapper.
func NewKind(name string) Kind { return &kind{s: name} }

// NewSubKind creates a kind that refines parent: errors.Is(err, parent) holds
// for any error carrying the sub-kind.
func NewSubKind(parent Kind, name string) Kind { return &kind{s: name, parent: parent} }

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrConflict indicates a uniqueness constraint rejected the write.
	ErrConflict = NewKind("CONFLICT")
	// ErrInvalidInput indicates the caller supplied data that failed validation.
	ErrInvalidInput = NewKind("INVALID_INPUT")
	// ErrCrypto indicates the password hashing primitive failed or a stored hash is unusable.
	ErrCrypto = NewKind("CRYPTO")
	// ErrTranslator indicates the external translation capability failed.
	ErrTranslator = NewKind("TRANSLATOR")
	// ErrNotFoundLanguage indicates a language code the translation capability does not support.
	ErrNotFoundLanguage = NewKind("NOT_FOUND_LANGUAGE")
	// ErrDatabase indicates any storage failure that is neither NotFound nor Conflict.
	ErrDatabase = NewKind("DATABASE")
	// ErrUnauthenticated indicates presented credentials did not match.
	ErrUnauthenticated = NewKind("UNAUTHENTICATED")
	// ErrUnknown is the catch-all kind. Nothing produces it on purpose.
	ErrUnknown = NewKind("UNKNOWN")

	ErrKeyAlreadyExists      = NewSubKind(ErrConflict, "KEY_ALREADY_EXISTS")
	ErrWordPairAlreadyExists = NewSubKind(ErrConflict, "WORD_PAIR_ALREADY_EXISTS")
	ErrInvalidKey            = NewSubKind(ErrInvalidInput, "INVALID_KEY")
	ErrInvalidPassword       = NewSubKind(ErrInvalidInput, "INVALID_PASSWORD")
	ErrWrongPassword         = NewSubKind(ErrUnauthenticated, "WRONG_PASSWORD")
)

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional arbitrary message. It fully supports
// errors.Is/errors.As and unwrapping.
//
// Matching semantics:
//   - errors.Is(err, target) will match if target matches the kind sentinel,
//     any of its parents, or the wrapped error.
//   - errors.As(err, target) will succeed for either the kind sentinel or the
//     wrapped error.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind  // semantic kind sentinel
	err  error // wrapped error (optional)
	msg  string
}

// With constructs a new semantic error with the given kind and an arbitrary
// human-readable message. Use Wrap if you also want to wrap a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wraps the provided
// cause (err) and allows adding an arbitrary message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind without extra
// message or concrete cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error, enabling errors.Unwrap/Is/As to traverse
// the underlying cause chain.
func (e *Error) Unwrap() error { return e.err }

// Is enables matching against either the semantic kind sentinel (including
// its parents) or the wrapped error in the chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the semantic kind sentinel or the
// wrapped error in the chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the arbitrary message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the outermost *Error in err's chain, or
// ErrUnknown when err carries no kind at all.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e.kind != nil {
		return e.kind
	}

	return ErrUnknown
}
