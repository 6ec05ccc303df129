package domain

import "errors"

// ErrStateKeyNotFound is returned by a state store when a key is absent.
// Absent keys are a normal, handled condition: the user may clear the
// state directory between any two operations.
var ErrStateKeyNotFound = errors.New("state key not found")

// ErrorKind classifies a failed API call.
type ErrorKind string

const (
	ErrorKindBusiness       ErrorKind = "business"
	ErrorKindAuthentication ErrorKind = "authentication"
	ErrorKindAuthorization  ErrorKind = "authorization"
	ErrorKindNotFound       ErrorKind = "not_found"
	ErrorKindServer         ErrorKind = "server"
	ErrorKindNetwork        ErrorKind = "network"
)

// APIError carries the pipeline's classification of a rejected call. Status
// is the transport status code when one was received, Code the
// application-level envelope code for business rejections.
type APIError struct {
	Kind    ErrorKind
	Message string
	Status  int
	Code    int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind) + " error"
}

// ErrorKindOf extracts the pipeline classification from err, or "" when err
// did not originate from the request pipeline.
func ErrorKindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}

func IsAuthenticationError(err error) bool {
	return ErrorKindOf(err) == ErrorKindAuthentication
}
