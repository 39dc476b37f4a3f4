// Package errors defines the error types surfaced by a pull.
package errors

import (
	"fmt"

	errs "github.com/pkg/errors"
)

const (
	stMissingConfigurationErrorMsg = "%s is not set"
	stHTTPErrorMsg                 = "jira API returned status %d"
)

type simpleError struct {
	message string
}

func (err simpleError) Error() string {
	return err.message
}

// ErrNoActiveNote is returned when there is no note open to append to.
var ErrNoActiveNote = NoActiveNoteError{simpleError{"no active note (run: pulljira open <path>)"}}

// NoActiveNoteError means that the host has no note open for editing.
type NoActiveNoteError struct {
	simpleError
}

// MissingConfigurationError means that a required setting is absent.
type MissingConfigurationError struct {
	Field string
}

// Error implements the error interface
func (err MissingConfigurationError) Error() string {
	return fmt.Sprintf(stMissingConfigurationErrorMsg, err.Field)
}

// NewMissingConfigurationError returns the custom defined error of type MissingConfigurationError.
func NewMissingConfigurationError(field string) MissingConfigurationError {
	return MissingConfigurationError{Field: field}
}

// TransportError means that the request never produced an HTTP response.
type TransportError struct {
	Err error
}

// Error implements the error interface
func (err TransportError) Error() string {
	return fmt.Sprintf("failed to reach jira: %s", err.Err)
}

// Unwrap returns the underlying network error.
func (err TransportError) Unwrap() error {
	return err.Err
}

// NewTransportError returns the custom defined error of type TransportError.
func NewTransportError(err error) TransportError {
	return TransportError{Err: err}
}

// HTTPError means that the tracker answered with a non-success status.
type HTTPError struct {
	StatusCode int
	// Detail holds the error messages reported by the tracker, if any.
	Detail string
}

// Error implements the error interface
func (err HTTPError) Error() string {
	msg := fmt.Sprintf(stHTTPErrorMsg, err.StatusCode)
	if err.Detail != "" {
		msg += ": " + err.Detail
	}
	return msg
}

// NewHTTPError returns the custom defined error of type HTTPError.
func NewHTTPError(status int, detail string) HTTPError {
	return HTTPError{StatusCode: status, Detail: detail}
}

// IsMissingConfiguration returns true if the cause of the given error is a
// MissingConfigurationError.
func IsMissingConfiguration(err error) bool {
	_, ok := errs.Cause(err).(MissingConfigurationError)
	return ok
}

// IsNoActiveNote returns true if the cause of the given error is a
// NoActiveNoteError.
func IsNoActiveNote(err error) bool {
	_, ok := errs.Cause(err).(NoActiveNoteError)
	return ok
}

// IsTransport returns true if the cause of the given error is a TransportError.
func IsTransport(err error) bool {
	_, ok := errs.Cause(err).(TransportError)
	return ok
}

// IsHTTP returns true if the cause of the given error is an HTTPError.
func IsHTTP(err error) bool {
	_, ok := errs.Cause(err).(HTTPError)
	return ok
}
