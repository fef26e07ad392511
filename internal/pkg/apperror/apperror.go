package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a service error so the HTTP layer can map it to a
// status code without string matching.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindAuthorization
	KindIntegrity
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewConflict(message string) *AppError {
	return &AppError{Kind: KindConflict, Message: message}
}

func NewAuthorization(message string) *AppError {
	return &AppError{Kind: KindAuthorization, Message: message}
}

func NewIntegrity(message string, err error) *AppError {
	return &AppError{Kind: KindIntegrity, Message: message, Err: err}
}

// KindOf reports the Kind of err, or (0, false) when err is not an AppError.
func KindOf(err error) (Kind, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

func IsConflict(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindConflict
}
