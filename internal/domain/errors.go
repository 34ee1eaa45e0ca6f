package domain

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Services wrap them with context via the constructors
// below; transports map them to status codes with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrConditionsNotMet = errors.New("conditions not met")
	ErrConflict         = errors.New("conflict")
	ErrNoRights         = errors.New("no rights for this operation")
)

type domainError struct {
	kind error
	msg  string
}

func (e *domainError) Error() string { return e.msg }

func (e *domainError) Unwrap() error { return e.kind }

func NotFoundf(format string, args ...any) error {
	return &domainError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func Validationf(format string, args ...any) error {
	return &domainError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func ConditionsNotMetf(format string, args ...any) error {
	return &domainError{kind: ErrConditionsNotMet, msg: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) error {
	return &domainError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func NoRights() error {
	return &domainError{kind: ErrNoRights, msg: ErrNoRights.Error()}
}
