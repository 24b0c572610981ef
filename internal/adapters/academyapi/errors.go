package academyapi

import (
	"errors"
	"fmt"
)

// APIError is a non-2xx answer from the academy API.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("academy api %s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("academy api %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
}

// AsAPIError returns the APIError in err's chain, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
