package router

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/pattern"
)

// Route binds a method set and a compiled pattern to a handler. Routes
// are constructed during application setup and immutable once the table
// is frozen; the chainable setters panic after freezing.
type Route[G, S any] struct {
	name    string
	methods map[string]struct{} // nil matches every method
	pattern pattern.Pattern
	handler handler.HandlerFunc[G, S]
	table   *Router[G, S]
}

// Name assigns the route a name for reverse URL generation. Names must
// be unique across the table; Freeze rejects duplicates.
func (rt *Route[G, S]) Name(name string) *Route[G, S] {
	rt.table.mustBeOpen()
	rt.name = name
	return rt
}

// Methods restricts the route to the given HTTP methods. Matching is
// case-insensitive on registration; without a call the route matches
// every method.
func (rt *Route[G, S]) Methods(methods ...string) *Route[G, S] {
	rt.table.mustBeOpen()
	if len(methods) == 0 {
		panic(ErrNoMethods)
	}
	rt.methods = make(map[string]struct{}, len(methods))
	for _, m := range methods {
		rt.methods[strings.ToUpper(m)] = struct{}{}
	}
	return rt
}

// matchesMethod is the cheap pre-check run before pattern matching.
func (rt *Route[G, S]) matchesMethod(method string) bool {
	if rt.methods == nil {
		return true
	}
	_, ok := rt.methods[method]
	return ok
}

// Pattern returns the route's compiled pattern.
func (rt *Route[G, S]) Pattern() pattern.Pattern { return rt.pattern }

// Handler returns the route's handler.
func (rt *Route[G, S]) Handler() handler.HandlerFunc[G, S] { return rt.handler }

// RouteInfo describes a registered route, for introspection.
type RouteInfo struct {
	Name    string
	Methods []string // nil = all
	Pattern string
}

func (rt *Route[G, S]) info() RouteInfo {
	var methods []string
	for m := range rt.methods {
		methods = append(methods, m)
	}
	return RouteInfo{Name: rt.name, Methods: methods, Pattern: rt.pattern.String()}
}

func (rt *Route[G, S]) describe() string {
	if rt.name != "" {
		return fmt.Sprintf("%s (%s)", rt.pattern.String(), rt.name)
	}
	return rt.pattern.String()
}
