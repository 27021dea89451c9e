// Package errors provides structured error types for floatchat.
// These errors provide context about what operation failed and, for style
// contract violations, which roles were involved.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op describes an operation, usually as "package.Function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindConflictingOverride
	KindMissingOverride
	KindInvalid
	KindPersistence
	KindNotInitialized
	KindNotFound
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindConflictingOverride:
		return "conflicting override"
	case KindMissingOverride:
		return "missing override"
	case KindInvalid:
		return "invalid"
	case KindPersistence:
		return "persistence error"
	case KindNotInitialized:
		return "not initialized"
	case KindNotFound:
		return "not found"
	case KindIO:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Roles lists the style roles an error refers to.
type Roles []string

// Error is the structured error type for floatchat.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
	Roles   Roles  // Style roles involved, if any
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - Roles: the style roles involved
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case Roles:
			e.Roles = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// GetRoles returns the style roles attached to an error, or nil.
func GetRoles(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Roles
	}
	return nil
}

// IsConfigError reports whether err was raised while building or updating
// an instance configuration.
func IsConfigError(err error) bool {
	switch GetKind(err) {
	case KindConflictingOverride, KindMissingOverride, KindInvalid:
		return true
	}
	return false
}

// IsPersistenceError reports whether err came from reading or writing a
// configuration file.
func IsPersistenceError(err error) bool {
	return Is(err, KindPersistence)
}

// Style contract errors
func ConflictingOverride(role, value, want string) error {
	return E(Op("style.Validate"), KindConflictingOverride, Roles{role},
		fmt.Sprintf("cannot set custom %q (%q) when use_default_css is true; expected default %q or unset, set use_default_css=false to use custom classes", role, value, want))
}

func MissingOverride(roles []string) error {
	return E(Op("style.Validate"), KindMissingOverride, Roles(roles),
		fmt.Sprintf("when use_default_css is false every class must be provided; missing: %s", strings.Join(roles, ", ")))
}

// Config errors
func ConfigInvalid(op Op, reason string) error {
	return E(op, KindInvalid, reason)
}

func PersistenceFailed(op Op, path string, err error) error {
	return E(op, KindPersistence, fmt.Sprintf("config file %s", path), err)
}

// Widget errors
func NotInitialized(instance string) error {
	return E(Op("widget.DefineEvents"), KindNotInitialized,
		fmt.Sprintf("components not initialized for %s; call CreateLayout first", instance))
}
