package mojangapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidUsername is returned before any network call when the given
	// username is not a possible Minecraft username.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrUsernameNotFound means the username does not belong to any account.
	ErrUsernameNotFound = errors.New("username not found")

	// ErrUUIDNotFound means the UUID does not belong to any account.
	ErrUUIDNotFound = errors.New("uuid not found")

	// ErrTransport means the request could not be completed. The call may be
	// retried later.
	ErrTransport = errors.New("mojang API request failed")

	// ErrParse means the Mojang API returned a body that could not be
	// interpreted.
	ErrParse = errors.New("failed to parse mojang API response")
)

// StatusError is returned when the Mojang API responds with a status code
// other than 200 or 204.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mojang API returned status code %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether the status code is believed to be intermittent.
func (e *StatusError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
