package internal

import "errors"

// ErrNotFound is returned by every storage backend when a record does not
// exist or belongs to a different user. Handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// AppError is the structured error carried inside API responses.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewAppError(code int, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}
