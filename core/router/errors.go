package router

import "errors"

var (
	// Registration errors, raised as panics at setup time.
	ErrNilHandler  = errors.New("nil route handler")
	ErrNoMethods   = errors.New("no methods provided")
	ErrTableFrozen = errors.New("route table is frozen")

	// Freeze validation
	ErrDuplicateRouteName = errors.New("duplicate route name")

	// Reverse routing
	ErrURLNameNotFound = errors.New("no route with given name")
)

// URLError reports a failed reverse URL generation: the route name that
// was requested and the underlying cause, either ErrURLNameNotFound or
// a pattern build error (missing parameter, type mismatch).
type URLError struct {
	Route string
	Err   error
}

func (e *URLError) Error() string {
	return "url for route " + e.Route + ": " + e.Err.Error()
}

func (e *URLError) Unwrap() error {
	return e.Err
}
