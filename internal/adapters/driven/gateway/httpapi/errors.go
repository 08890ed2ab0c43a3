package httpapi

// APIError is a failure reported by the search service itself, as
// opposed to a transport failure. Error returns the server-supplied
// message verbatim so callers can show it to the user unchanged.
type APIError struct {
	// StatusCode is the HTTP status the service responded with.
	StatusCode int

	// Message is the server-supplied error text.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}
