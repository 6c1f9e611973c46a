package auth

import "fmt"

// APIError is the normalized shape every non-2xx backend response collapses
// to before it reaches a caller.
type APIError struct {
	Message string              `json:"message"`
	Status  int                 `json:"status"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// NewAPIError builds an APIError with the given status and message.
func NewAPIError(status int, message string) *APIError {
	return &APIError{Message: message, Status: status}
}
