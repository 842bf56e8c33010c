package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for API responses.
type Kind string

const (
	KindNotFound             Kind = "not_found"
	KindInvalidInput         Kind = "invalid_input"
	KindProviderUnavailable  Kind = "provider_unavailable"
	KindGenerationFailed     Kind = "generation_failed"
	KindTranscriptionFailed  Kind = "transcription_failed"
	KindTranscriptionTimeout Kind = "transcription_timeout"
	KindInternal             Kind = "internal"
)

// Error carries a kind plus the operation and underlying cause.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op
	}
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error with a message and no cause.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap attaches a kind and operation to an underlying error.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf walks the error chain for the outermost *Error kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Detail returns the human-readable message for API responses. The full
// chain is included so collaborator errors surface verbatim.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// HTTPStatus maps an error kind to a response status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindProviderUnavailable:
		return http.StatusServiceUnavailable
	case KindTranscriptionTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
