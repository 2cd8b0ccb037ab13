package pattern

import (
	"fmt"
	"strconv"
)

// Kind classifies the erased type of a captured value.
type Kind uint8

const (
	Text Kind = iota
	Int
)

// String returns the kind name as used in the "{name:kind}" form.
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	default:
		return "text"
	}
}

// Param is a single captured value: a name, the advisory kind, and the
// type-erased value behind it. Values produced by the built-in captures
// are int64 (Int) or string (Text); custom captures may store anything.
type Param struct {
	name  string
	kind  Kind
	value any
}

// IntValue constructs an integer parameter, for reverse-routing callers.
func IntValue(name string, v int64) Param {
	return Param{name: name, kind: Int, value: v}
}

// TextValue constructs a text parameter, for reverse-routing callers.
func TextValue(name string, s string) Param {
	return Param{name: name, kind: Text, value: s}
}

// Name returns the parameter name.
func (p Param) Name() string { return p.name }

// Kind returns the advisory kind recorded at capture time.
func (p Param) Kind() Kind { return p.kind }

// Value returns the type-erased captured value.
func (p Param) Value() any { return p.value }

// Int downcasts the value to int64. ok is false when the erased type
// is not int64; the value is never coerced.
func (p Param) Int() (int64, bool) {
	v, ok := p.value.(int64)
	return v, ok
}

// Text downcasts the value to string without coercion.
func (p Param) Text() (string, bool) {
	s, ok := p.value.(string)
	return s, ok
}

// String returns the display representation of the value, as used when
// rebuilding a path segment.
func (p Param) String() string {
	switch v := p.value.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(p.value)
	}
}

// text renders the value for Build, checking it against the capture's
// declared kind.
func (p Param) text(kind Kind) (string, bool) {
	switch kind {
	case Int:
		v, ok := p.value.(int64)
		if !ok {
			return "", false
		}
		return strconv.FormatInt(v, 10), true
	default:
		s, ok := p.value.(string)
		if !ok {
			return "", false
		}
		return s, true
	}
}

// Params is an ordered list of captured parameters, insertion order
// matching left-to-right pattern order. Names need not be unique;
// lookup returns the first match.
type Params []Param

// Get returns the first parameter with the given name.
func (ps Params) Get(name string) (Param, bool) {
	for _, p := range ps {
		if p.name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Int returns the first parameter with the given name as int64.
// ok is false when absent or of a different erased type.
func (ps Params) Int(name string) (int64, bool) {
	p, ok := ps.Get(name)
	if !ok {
		return 0, false
	}
	return p.Int()
}

// Text returns the first parameter with the given name as string.
func (ps Params) Text(name string) (string, bool) {
	p, ok := ps.Get(name)
	if !ok {
		return "", false
	}
	return p.Text()
}
