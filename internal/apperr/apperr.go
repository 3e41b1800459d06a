// Package apperr defines the error taxonomy shared by the store and the session.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the category of a recoverable condition.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindParse
	KindIO
	KindEmptyInput
	KindNoProjectLoaded
	KindDuplicateName
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	case KindEmptyInput:
		return "empty_input"
	case KindNoProjectLoaded:
		return "no_project_loaded"
	case KindDuplicateName:
		return "duplicate_name"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Any *Error of the same Kind matches.
var (
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrParse           = &Error{Kind: KindParse}
	ErrIO              = &Error{Kind: KindIO}
	ErrEmptyInput      = &Error{Kind: KindEmptyInput}
	ErrNoProjectLoaded = &Error{Kind: KindNoProjectLoaded}
	ErrDuplicateName   = &Error{Kind: KindDuplicateName}
)

// Error is a categorized condition raised by a store or session operation.
type Error struct {
	Kind Kind
	Op   string // operation, e.g. "load"
	Name string // project name, when one is involved
	Err  error
}

func (e *Error) Error() string {
	msg := e.message()
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) message() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("project %q not found", e.Name)
	case KindParse:
		return fmt.Sprintf("project %q is malformed", e.Name)
	case KindIO:
		if e.Name == "" {
			return e.Op + " failed"
		}
		return fmt.Sprintf("%s %q failed", e.Op, e.Name)
	case KindEmptyInput:
		return "project name cannot be empty"
	case KindNoProjectLoaded:
		return "no project loaded"
	case KindDuplicateName:
		return fmt.Sprintf("project %q already exists", e.Name)
	default:
		return "unexpected error"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func NotFound(op, name string, cause error) *Error {
	return &Error{Kind: KindNotFound, Op: op, Name: name, Err: cause}
}

func Parse(op, name string, cause error) *Error {
	return &Error{Kind: KindParse, Op: op, Name: name, Err: cause}
}

func IO(op, name string, cause error) *Error {
	return &Error{Kind: KindIO, Op: op, Name: name, Err: cause}
}

func EmptyInput() *Error {
	return &Error{Kind: KindEmptyInput, Op: "add"}
}

func NoProjectLoaded(op string) *Error {
	return &Error{Kind: KindNoProjectLoaded, Op: op}
}

func DuplicateName(name string) *Error {
	return &Error{Kind: KindDuplicateName, Op: "add", Name: name}
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsUserError reports whether err was caused by user input rather than by the
// system. User errors are shown as plain status messages and are not logged.
func IsUserError(err error) bool {
	switch KindOf(err) {
	case KindEmptyInput, KindNoProjectLoaded, KindDuplicateName:
		return true
	default:
		return false
	}
}
