package resend

import (
	"fmt"
	"net/http"
)

// APIError is a non-2xx answer from the Resend API. Message is the provider's
// error message, parsed from the JSON body when possible.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.Authentication() {
		return fmt.Sprintf("resend: authentication failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("resend: email send failed (status %d): %s", e.StatusCode, e.Message)
}

// Authentication reports whether the provider rejected the credential rather
// than the payload. Lets callers tell key problems from payload problems.
func (e *APIError) Authentication() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
