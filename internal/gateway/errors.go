package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/iho/fintrack/internal/domain"
)

// APIError is a non-2xx response from the remote service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// Unwrap maps the HTTP status onto the domain error taxonomy so callers
// can branch with errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return nil
	}
}

// errorBody is the error envelope servers send alongside non-2xx codes.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func apiError(status int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	msg := eb.Message
	if msg == "" {
		msg = eb.Error
	}
	return &APIError{Status: status, Message: msg}
}
