package handler

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrymomot/routekit/core/pattern"
	"github.com/dmitrymomot/routekit/core/settings"
)

// URLReverser regenerates a URL from a route name and parameters.
// The route table implements it; the context carries it so handlers can
// build URLs without importing the router.
type URLReverser interface {
	URLFor(name string, params pattern.Params) (string, error)
}

// Context is the per-request execution environment. The read-only part
// is identical in shape for every request: the global application
// context G (shared across all concurrent requests, never mutated), the
// incoming request with its parsed form data, the matched route's
// parameters, the settings registry, and the reverse router. The
// mutable part is exclusively owned by the request: a fresh state value
// S, the outgoing header map, and an untyped key/value stash.
//
// Context implements context.Context by delegating to the request's
// context, so handler logic can embed further I/O under it.
type Context[G, S any] struct {
	global   G
	req      *http.Request
	params   pattern.Params
	settings *settings.Registry
	reverse  URLReverser

	state  *S
	header http.Header
	values map[string]any
}

// NewContext builds a request context. The dispatcher is the usual
// caller; tests construct contexts directly the same way.
func NewContext[G, S any](r *http.Request, global G, state *S, params pattern.Params, reg *settings.Registry, reverse URLReverser) *Context[G, S] {
	return &Context[G, S]{
		global:   global,
		req:      r,
		params:   params,
		settings: reg,
		reverse:  reverse,
		state:    state,
		header:   make(http.Header),
	}
}

// Deadline delegates to the request's context.
func (c *Context[G, S]) Deadline() (deadline time.Time, ok bool) {
	return c.req.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context[G, S]) Done() <-chan struct{} {
	return c.req.Context().Done()
}

// Err delegates to the request's context.
func (c *Context[G, S]) Err() error {
	return c.req.Context().Err()
}

// Value returns a value from the request-scoped stash, falling back to
// the request's own context values.
func (c *Context[G, S]) Value(key any) any {
	if name, ok := key.(string); ok && c.values != nil {
		if v, ok := c.values[name]; ok {
			return v
		}
	}
	return c.req.Context().Value(key)
}

// Global returns the shared application context.
func (c *Context[G, S]) Global() G { return c.global }

// Request returns the incoming request.
func (c *Context[G, S]) Request() *http.Request { return c.req }

// Form returns the parsed form data of the request. The dispatcher
// parses the body before the handler runs; a body that is not
// form-encoded yields empty values.
func (c *Context[G, S]) Form() url.Values {
	if c.req.PostForm == nil {
		return url.Values{}
	}
	return c.req.PostForm
}

// Params returns the parameters captured by the matched route pattern.
func (c *Context[G, S]) Params() pattern.Params { return c.params }

// Param looks up a route parameter by name. It raises
// ErrRouteParamMissing when no parameter with that name was captured;
// requesting a parameter that does not exist is a programmer error,
// surfaced rather than defaulted.
func (c *Context[G, S]) Param(name string) (pattern.Param, error) {
	p, ok := c.params.Get(name)
	if !ok {
		return pattern.Param{}, ErrRouteParamMissing.WithMessage("route parameter " + name + " does not exist")
	}
	return p, nil
}

// ParamInt looks up an integer route parameter. A parameter that is
// absent or of a different erased type raises ErrRouteParamMissing.
func (c *Context[G, S]) ParamInt(name string) (int64, error) {
	p, err := c.Param(name)
	if err != nil {
		return 0, err
	}
	v, ok := p.Int()
	if !ok {
		return 0, ErrRouteParamMissing.WithMessage("route parameter " + name + " is not an integer")
	}
	return v, nil
}

// ParamText looks up a text route parameter. A parameter that is absent
// or of a different erased type raises ErrRouteParamMissing.
func (c *Context[G, S]) ParamText(name string) (string, error) {
	p, err := c.Param(name)
	if err != nil {
		return "", err
	}
	s, ok := p.Text()
	if !ok {
		return "", ErrRouteParamMissing.WithMessage("route parameter " + name + " is not text")
	}
	return s, nil
}

// Settings returns the shared settings registry.
func (c *Context[G, S]) Settings() *settings.Registry { return c.settings }

// URLFor builds the URL of a named route. Failures are returned as
// values, never raised: they typically occur during response
// construction and callers handle them without aborting the request.
func (c *Context[G, S]) URLFor(name string, params pattern.Params) (string, error) {
	return c.reverse.URLFor(name, params)
}

// State returns the mutable request-scoped state. It is initialized
// fresh per request and never shared with other requests.
func (c *Context[G, S]) State() *S { return c.state }

// SetValue stores a value in the request-scoped stash, for middleware
// that needs to pass untyped data downstream.
func (c *Context[G, S]) SetValue(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

// SetHeader sets an outgoing response header; the last write per name
// wins. The dispatcher applies accumulated headers to the writer before
// the response renders, so headers written before a raise survive into
// the error response.
func (c *Context[G, S]) SetHeader(name, value string) {
	c.header.Set(name, value)
}

// Header returns the accumulated outgoing headers.
func (c *Context[G, S]) Header() http.Header { return c.header }

var _ context.Context = (*Context[struct{}, struct{}])(nil)
