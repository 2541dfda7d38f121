package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnauthenticated is returned before any network I/O when a protected
// call is attempted with no token in the session.
var ErrUnauthenticated = errors.New("no authentication token found, please log in")

type Kind int

const (
	// KindAuthRejected: the backend refused the presented token. The client
	// clears the session before surfacing this.
	KindAuthRejected Kind = iota
	// KindConflict: the backend reported a concurrent-edit conflict.
	KindConflict
	// KindResource: any other non-success HTTP status.
	KindResource
	// KindNetwork: the request could not complete at all.
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindAuthRejected:
		return "auth_rejected"
	case KindConflict:
		return "conflict"
	case KindResource:
		return "resource"
	case KindNetwork:
		return "network"
	}
	return "unknown"
}

// Error is a failed backend interaction. Message carries the backend's own
// detail text when the response body provided one.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.err }

// IsAuthRejected reports whether err is a backend authentication rejection.
func IsAuthRejected(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindAuthRejected
}

func netError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: fmt.Sprintf("request failed: %v", err), err: err}
}

// statusError maps a non-success response to an Error, preferring the
// backend's "detail" then "error" body field over the generic message.
func statusError(status int, body []byte) *Error {
	kind := KindResource
	switch status {
	case 401:
		kind = KindAuthRejected
	case 409:
		kind = KindConflict
	}
	msg := fmt.Sprintf("HTTP error: %d", status)
	var payload struct {
		Detail string `json:"detail"`
		Err    string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			msg = payload.Detail
		} else if payload.Err != "" {
			msg = payload.Err
		}
	}
	return &Error{Kind: kind, Status: status, Message: msg}
}
