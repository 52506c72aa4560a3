package calerr

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Kind identifies one of the five error categories. The set is closed; any
// new failure mode must be mapped into one of these.
type Kind string

const (
	KindAuthentication Kind = "authentication"
	KindValidation     Kind = "validation"
	KindProvider       Kind = "provider"
	KindNotFound       Kind = "not-found"
	KindUnknown        Kind = "unknown"
)

// Error is the normalized failure representation crossing operation
// boundaries. Details carries structured context such as the offending
// field name or the provider's HTTP status and response body.
type Error struct {
	Kind    Kind           `json:"kind"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// HTTPStatus maps the error kind to the REST status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// New creates an Error of the given kind.
func New(kind Kind, message string, details map[string]any) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// Authentication creates an authentication-kind error.
func Authentication(message string, details map[string]any) *Error {
	return New(KindAuthentication, message, details)
}

// MissingField creates a validation error for a required field that was
// absent or empty.
func MissingField(field string) *Error {
	return New(KindValidation, fmt.Sprintf("%s is required", field), map[string]any{
		"field": field,
	})
}

// InvalidDate creates a validation error for a date-like field that failed
// to parse, attaching the literal value.
func InvalidDate(field, value string) *Error {
	return New(KindValidation, fmt.Sprintf("%s is not a valid timestamp", field), map[string]any{
		"field": field,
		"value": value,
	})
}

// NotFound creates a not-found error.
func NotFound(message string, details map[string]any) *Error {
	return New(KindNotFound, message, details)
}

// IsNotFound reports whether err normalizes to a not-found error.
func IsNotFound(err error) bool {
	return Normalize(err).Kind == KindNotFound
}

// Normalize collapses an arbitrary failure into the closed taxonomy. It is
// idempotent: an error that already is (or wraps) a *calerr.Error passes
// through unchanged. Structured googleapi responses are matched on their
// status code; anything else becomes a provider error carrying the original
// message, or an unknown error when no message is available.
func Normalize(err error) *Error {
	if err == nil {
		return nil
	}

	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		details := map[string]any{
			"statusCode": gerr.Code,
			"body":       gerr.Body,
		}
		switch {
		case gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden:
			return Authentication("google calendar rejected the credentials", details)
		case gerr.Code == http.StatusNotFound:
			return NotFound("resource not found", details)
		default:
			message := gerr.Message
			if message == "" {
				message = "google calendar api request failed"
			}
			return New(KindProvider, message, details)
		}
	}

	if msg := err.Error(); msg != "" {
		return New(KindProvider, msg, nil)
	}

	return New(KindUnknown, "unknown error", map[string]any{
		"value": fmt.Sprintf("%v", err),
	})
}
