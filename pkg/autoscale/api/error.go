package api

import "fmt"

// Error is a service-side failure decoded from an <ErrorResponse> body.
type Error struct {
	// Type is "Sender" or "Receiver".
	Type       string
	Code       string
	Message    string
	RequestID  string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("HTTP status %d", e.StatusCode)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}
