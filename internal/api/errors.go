// ABOUTME: Error taxonomy for API failures surfaced to commands and the TUI
// ABOUTME: Classifies transport/status problems so raw errors never reach output

package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API operation.
type Kind int

const (
	// KindNetwork means no response was received (connectivity, timeout).
	KindNetwork Kind = iota
	// KindProtocol means the response or configuration violated the expected contract.
	KindProtocol
	// KindAuthentication means the server rejected the supplied credentials.
	KindAuthentication
	// KindAuthorization means login succeeded but the account lacks admin privileges.
	KindAuthorization
	// KindSessionExpired means a previously valid token was rejected mid-session.
	KindSessionExpired
	// KindServer means the backend returned a 5xx status.
	KindServer
)

// Error is a classified API failure.
type Error struct {
	Kind       Kind
	StatusCode int // zero when no response was received
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// StatusError is a business-level failure relayed verbatim from the backend.
// The gate does not interpret these; callers decide what they mean.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: "network error", Err: err}
}

func protocolError(msg string) *Error {
	return &Error{Kind: KindProtocol, Message: msg}
}

func authenticationError(status int, msg string) *Error {
	return &Error{Kind: KindAuthentication, StatusCode: status, Message: msg}
}

// ErrAdminRequired is returned when the backend authenticates an account
// that nonetheless may not hold a console session.
var ErrAdminRequired = &Error{Kind: KindAuthorization, Message: "admin privileges required"}

func sessionExpiredError() *Error {
	return &Error{Kind: KindSessionExpired, StatusCode: 401, Message: "session expired"}
}

func serverError(status int, msg string) *Error {
	if msg == "" {
		msg = "server error"
	}
	return &Error{Kind: KindServer, StatusCode: status, Message: msg}
}

func isKind(err error, k Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == k
}

// IsNetwork reports whether err means no response was received.
func IsNetwork(err error) bool { return isKind(err, KindNetwork) }

// IsProtocol reports whether err means the response shape or configuration was invalid.
func IsProtocol(err error) bool { return isKind(err, KindProtocol) }

// IsAuthentication reports whether err means the login credentials were rejected.
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }

// IsAuthorization reports whether err means the account lacks admin privileges.
func IsAuthorization(err error) bool { return isKind(err, KindAuthorization) }

// IsSessionExpired reports whether err means the active session was rejected.
func IsSessionExpired(err error) bool { return isKind(err, KindSessionExpired) }

// IsServer reports whether err means the backend returned a 5xx status.
func IsServer(err error) bool { return isKind(err, KindServer) }

// UserMessage maps an error to the single human-readable message shown for
// its category. Unclassified errors fall through unchanged so backend
// business messages stay visible.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch apiErr.Kind {
		case KindNetwork:
			return "Network error. Check your connection and try again."
		case KindProtocol:
			return "Unexpected response from the server. Check your API configuration."
		case KindAuthentication:
			return "Login failed. Check your email and password."
		case KindAuthorization:
			return "Access denied. Admin privileges required."
		case KindSessionExpired:
			return "Your session has expired. Please log in again."
		case KindServer:
			return "Server error. Please try again later."
		}
	}
	return err.Error()
}
