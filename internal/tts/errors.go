package tts

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a synthesis failure.
type Kind int

const (
	KindInternal Kind = iota
	KindClient
	KindConfig
	KindUpstream
	KindContract
)

func (k Kind) String() string {
	switch k {
	case KindClient:
		return "client"
	case KindConfig:
		return "config"
	case KindUpstream:
		return "upstream"
	case KindContract:
		return "contract"
	default:
		return "internal"
	}
}

// Error is a failure with a caller-facing message and HTTP status.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error (%d): %s: %v", e.Kind, e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error (%d): %s", e.Kind, e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func clientError(msg string) *Error {
	return &Error{Kind: KindClient, Status: http.StatusBadRequest, Message: msg}
}

func configError(msg string) *Error {
	return &Error{Kind: KindConfig, Status: http.StatusInternalServerError, Message: msg}
}

func upstreamError(status int, msg string) *Error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{Kind: KindUpstream, Status: status, Message: msg}
}

func contractError(msg string) *Error {
	return &Error{Kind: KindContract, Status: http.StatusInternalServerError, Message: msg}
}

// StatusOf returns the HTTP status for err, 500 when err is not an *Error.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the caller-facing message for err. Errors that are not
// an *Error are reported as "Server error: <err>".
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Server error: " + err.Error()
}

// KindOf returns the kind of err, KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
