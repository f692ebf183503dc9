package api

import (
	"errors"
	"fmt"

	"github.com/rosdobro/dobrodela-cli/internal/common"
)

// APIError is a structured backend failure: a human-readable (translated)
// message, the HTTP status, and the raw backend detail string.
type APIError struct {
	Message string
	Status  int
	Detail  string

	err error // optional sentinel, matched via errors.Is
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error { return e.err }

// AsAPIError unwraps err into an *APIError if one is present in its chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// sessionExpiredError is returned when a 401 survives the single
// refresh-and-retry cycle. Matches common.ErrSessionExpired.
func sessionExpiredError() *APIError {
	return &APIError{
		Message: MsgSessionExpired,
		Status:  401,
		Detail:  "TOKEN_EXPIRED",
		err:     common.ErrSessionExpired,
	}
}
