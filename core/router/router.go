package router

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/pattern"
)

// Router is an ordered route table. Dispatch scans it in declaration
// order and the first route whose method set and pattern both match
// wins. Declaration order is a user-visible contract: a route that
// shadows a later one (e.g. "/{x:text}" declared before "/a") is
// resolved by order alone, never by specificity.
type Router[G, S any] struct {
	routes []*Route[G, S]
	frozen bool
}

// New creates an empty route table.
func New[G, S any]() *Router[G, S] {
	return &Router[G, S]{}
}

func (r *Router[G, S]) mustBeOpen() {
	if r.frozen {
		panic(ErrTableFrozen)
	}
}

// Handle registers a route for the given pattern, matching every
// method. The returned route is chainable: .Methods(...), .Name(...).
func (r *Router[G, S]) Handle(p pattern.Pattern, h handler.HandlerFunc[G, S]) *Route[G, S] {
	r.mustBeOpen()
	if h == nil {
		panic(ErrNilHandler)
	}
	rt := &Route[G, S]{pattern: p, handler: h, table: r}
	r.routes = append(r.routes, rt)
	return rt
}

// HandlePath is Handle over the string pattern form; it panics on an
// invalid pattern, which surfaces misdeclared routes at setup time.
func (r *Router[G, S]) HandlePath(path string, h handler.HandlerFunc[G, S]) *Route[G, S] {
	return r.Handle(pattern.MustCompile(path), h)
}

// Get registers a GET route for the string pattern form.
func (r *Router[G, S]) Get(path string, h handler.HandlerFunc[G, S]) *Route[G, S] {
	return r.HandlePath(path, h).Methods(http.MethodGet)
}

// Post registers a POST route.
func (r *Router[G, S]) Post(path string, h handler.HandlerFunc[G, S]) *Route[G, S] {
	return r.HandlePath(path, h).Methods(http.MethodPost)
}

// Put registers a PUT route.
func (r *Router[G, S]) Put(path string, h handler.HandlerFunc[G, S]) *Route[G, S] {
	return r.HandlePath(path, h).Methods(http.MethodPut)
}

// Delete registers a DELETE route.
func (r *Router[G, S]) Delete(path string, h handler.HandlerFunc[G, S]) *Route[G, S] {
	return r.HandlePath(path, h).Methods(http.MethodDelete)
}

// Patch registers a PATCH route.
func (r *Router[G, S]) Patch(path string, h handler.HandlerFunc[G, S]) *Route[G, S] {
	return r.HandlePath(path, h).Methods(http.MethodPatch)
}

// Head registers a HEAD route.
func (r *Router[G, S]) Head(path string, h handler.HandlerFunc[G, S]) *Route[G, S] {
	return r.HandlePath(path, h).Methods(http.MethodHead)
}

// Options registers an OPTIONS route.
func (r *Router[G, S]) Options(path string, h handler.HandlerFunc[G, S]) *Route[G, S] {
	return r.HandlePath(path, h).Methods(http.MethodOptions)
}

// Extend appends another table's routes, preserving their order.
// Route fragments contributed independently concatenate this way.
func (r *Router[G, S]) Extend(other *Router[G, S]) {
	r.mustBeOpen()
	for _, rt := range other.routes {
		rt.table = r
		r.routes = append(r.routes, rt)
	}
}

// Freeze validates the table and marks it immutable. It fails when two
// routes share a name. Freeze is idempotent.
func (r *Router[G, S]) Freeze() error {
	if r.frozen {
		return nil
	}
	seen := make(map[string]struct{})
	for _, rt := range r.routes {
		if rt.name == "" {
			continue
		}
		if _, dup := seen[rt.name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateRouteName, rt.name)
		}
		seen[rt.name] = struct{}{}
	}
	r.frozen = true
	return nil
}

// Dispatch selects the route for a request. The path is split into
// segments once; routes are scanned in declaration order with the
// method check first as a cheap reject, then the pattern match. The
// first route satisfying both wins. ok=false means no route matched;
// the caller signals not-found, the table itself never raises.
func (r *Router[G, S]) Dispatch(method, path string) (*Route[G, S], pattern.Params, bool) {
	segments := pattern.Split(path)
	for _, rt := range r.routes {
		if !rt.matchesMethod(method) {
			continue
		}
		if params, ok := rt.pattern.Match(segments); ok {
			return rt, params, true
		}
	}
	return nil, nil, false
}

// URLFor regenerates the URL of the named route from the given
// parameters. Failures (unknown name, missing parameter, parameter of
// the wrong erased type) come back as a *URLError value; reverse
// routing never raises through the request's error channel.
func (r *Router[G, S]) URLFor(name string, params pattern.Params) (string, error) {
	for _, rt := range r.routes {
		// Unnamed routes store the empty name; an empty lookup must not
		// match them.
		if name == "" || rt.name != name {
			continue
		}
		url, err := rt.pattern.Build(params)
		if err != nil {
			return "", &URLError{Route: name, Err: err}
		}
		return url, nil
	}
	return "", &URLError{Route: name, Err: ErrURLNameNotFound}
}

// Routes returns a description of every registered route in
// declaration order.
func (r *Router[G, S]) Routes() []RouteInfo {
	infos := make([]RouteInfo, 0, len(r.routes))
	for _, rt := range r.routes {
		infos = append(infos, rt.info())
	}
	return infos
}

var _ handler.URLReverser = (*Router[struct{}, struct{}])(nil)
