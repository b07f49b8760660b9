// Package apierr defines the error kinds the JSON API exposes to clients.
//
// Each Kind has a fixed, safe message and status code. The wrapped error is
// kept for logging only and is never written to a response.
package apierr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/studymate/internal/app/system/dbgate"
	"go.mongodb.org/mongo-driver/mongo"
)

// Kind classifies a failure at the HTTP boundary.
type Kind int

const (
	// StoreOperation is any store failure not covered by another kind.
	StoreOperation Kind = iota
	StoreUnavailable
	InvalidID
	InvalidInput
	NotFound
)

// Code is the machine-readable value of the "error" field.
func (k Kind) Code() string {
	switch k {
	case StoreUnavailable:
		return "store_unavailable"
	case InvalidID:
		return "invalid_id"
	case InvalidInput:
		return "invalid_input"
	case NotFound:
		return "not_found"
	default:
		return "store_error"
	}
}

// Status is the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case InvalidID, InvalidInput:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string { return k.Code() }

// Error is a classified error. Message is safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind.Code(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind.Code(), e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind.
func New(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// InvalidIDf reports a missing or malformed identifier.
func InvalidIDf(format string, args ...any) *Error {
	return &Error{Kind: InvalidID, Message: fmt.Sprintf(format, args...)}
}

// Invalid reports a request body that failed decoding or validation.
// The message is shown to the client, so it must describe the input only.
func Invalid(msg string, err error) *Error {
	return &Error{Kind: InvalidInput, Message: msg, Err: err}
}

// Store wraps a store failure with a client-safe message.
func Store(msg string, err error) *Error {
	return &Error{Kind: StoreOperation, Message: msg, Err: err}
}

// Classify converts any error into an *Error. Errors that are already
// classified pass through; dbgate.ErrNotReady becomes StoreUnavailable and
// mongo.ErrNoDocuments becomes NotFound. Everything else is StoreOperation
// with fallback as the client message.
func Classify(err error, fallback string) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	switch {
	case errors.Is(err, dbgate.ErrNotReady):
		return &Error{Kind: StoreUnavailable, Message: "Database not connected", Err: err}
	case errors.Is(err, mongo.ErrNoDocuments):
		return &Error{Kind: NotFound, Message: "Not found", Err: err}
	}
	return Store(fallback, err)
}
