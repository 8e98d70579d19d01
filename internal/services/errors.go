package services

import "errors"

// Error kinds. Handlers translate them into HTTP status codes with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrStore      = errors.New("store failure")
)

// FilmError carries the caller-visible message of a failed operation
// together with its kind and underlying cause.
type FilmError struct {
	Kind    error
	Message string
	Err     error
}

func (e *FilmError) Error() string {
	return e.Message
}

func (e *FilmError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func validationError(message string, cause error) error {
	return &FilmError{Kind: ErrValidation, Message: message, Err: cause}
}

func notFoundError(cause error) error {
	return &FilmError{Kind: ErrNotFound, Message: "Film not found", Err: cause}
}

func storeError(cause error) error {
	return &FilmError{Kind: ErrStore, Message: cause.Error(), Err: cause}
}
