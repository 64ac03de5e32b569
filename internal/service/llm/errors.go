package llm

import (
	"errors"
	"fmt"
)

var ErrEmptyChoices = errors.New("completion has no choices")

// APIError is a non 2xx answer of the completion endpoint.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("llm api error: %d %s - %s", e.StatusCode, e.Type, e.Message)
}
