package models

// Domain errors. helper.HTTPHelper maps each type to an HTTP status.

type ErrorValidation struct {
	Field   string
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

type ErrorUnauthorized struct {
	Message string
	// Data is echoed in the response body, e.g. a hint to show a sign-in prompt.
	Data map[string]interface{}
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorForbidden struct{ Message string }

func (e ErrorForbidden) Error() string { return e.Message }

type ErrorNotFound struct{ Message string }

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorConflict struct{ Message string }

func (e ErrorConflict) Error() string { return e.Message }

// ErrorInternalServer carries a user-readable message; Err is logged, never sent.
type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string { return e.Message }

func (e ErrorInternalServer) Unwrap() error { return e.Err }

// Internal wraps a backend failure behind a user-readable message.
func Internal(message string, err error) error {
	return ErrorInternalServer{Message: message, Err: err}
}
