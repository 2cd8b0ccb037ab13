package handler

import "net/http"

// Error is a structured request error carrying the HTTP status it
// reduces to. Handlers and middleware raise these through the error
// return; the dispatcher's error handler turns them into responses.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.Message
}

// WithMessage returns a copy of the error with a custom message.
func (e Error) WithMessage(message string) Error {
	e.Message = message
	return e
}

// Is matches errors by code, so wrapped copies with customized
// messages still compare equal to the predefined values.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code
}

// Predefined request errors. NotFound covers both unmatched paths and
// method mismatches: the two are indistinguishable to the caller unless
// the configured error handler customizes them.
var (
	ErrNotFound          = Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: http.StatusText(http.StatusNotFound)}
	ErrForbidden         = Error{Status: http.StatusForbidden, Code: "FORBIDDEN", Message: http.StatusText(http.StatusForbidden)}
	ErrInternal          = Error{Status: http.StatusInternalServerError, Code: "INTERNAL_ERROR", Message: http.StatusText(http.StatusInternalServerError)}
	ErrRouteParamMissing = Error{Status: http.StatusInternalServerError, Code: "ROUTE_PARAM_MISSING", Message: "route parameter does not exist"}
)

// Internal wraps a message into an internal error. The default error
// handler renders internal messages only when verbose rendering is
// explicitly enabled.
func Internal(message string) Error {
	return ErrInternal.WithMessage(message)
}
