package pattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// Build errors. Both are wrapped with the parameter name.
	ErrNoParam           = errors.New("no value for capture parameter")
	ErrParamTypeMismatch = errors.New("capture parameter type mismatch")

	// Compile errors
	ErrParamDelimiter = errors.New("capture closing delimiter '}' is missing")
	ErrEmptyParamName = errors.New("capture parameter name is empty")
	ErrUnknownKind    = errors.New("unknown capture kind")
)

// ParseFunc converts one path segment into a captured value.
// It must be pure: same input, same result, no side effects.
type ParseFunc func(segment string) (any, bool)

// segment is one node of a compiled pattern: either a literal
// (capture == nil) or a typed capture.
type segment struct {
	literal string
	capture *capture
}

type capture struct {
	name  string
	kind  Kind
	parse ParseFunc
}

// Pattern is a compiled URL pattern: an ordered list of literal and
// capture segments. Matching is a single deterministic left-to-right
// pass with no backtracking; a pattern of N segments matches exactly
// N path segments. The zero value matches the root path "/".
type Pattern struct {
	segs []segment
}

// Lit returns a pattern of one literal segment. It matches only an
// exactly equal path segment; no case folding or normalization.
func Lit(text string) Pattern {
	return Pattern{segs: []segment{{literal: text}}}
}

// IntParam returns a capture of one segment as a base-10 integer.
func IntParam(name string) Pattern {
	return Capture(name, Int, func(seg string) (any, bool) {
		v, err := strconv.ParseInt(seg, 10, 64)
		if err != nil {
			return nil, false
		}
		return v, true
	})
}

// TextParam returns a capture of one segment as raw text.
// It accepts any non-empty segment.
func TextParam(name string) Pattern {
	return Capture(name, Text, func(seg string) (any, bool) {
		if seg == "" {
			return nil, false
		}
		return seg, true
	})
}

// Capture returns a single-segment capture with a custom parse
// function. The kind is advisory metadata: it selects the erased type
// Build expects and the display form of the pattern; matching is
// governed by parse alone.
func Capture(name string, kind Kind, parse ParseFunc) Pattern {
	return Pattern{segs: []segment{{capture: &capture{name: name, kind: kind, parse: parse}}}}
}

// Join concatenates patterns path-wise, preserving segment order.
func Join(patterns ...Pattern) Pattern {
	var segs []segment
	for _, p := range patterns {
		segs = append(segs, p.segs...)
	}
	return Pattern{segs: segs}
}

// Compile parses a path pattern string into a Pattern. Captures are
// written as "{name}" or "{name:kind}" where kind is "int" or "text";
// a bare "{name}" is a text capture. Everything else is literal.
//
//	Compile("/users/{id:int}/posts/{slug}")
func Compile(path string) (Pattern, error) {
	var parts []Pattern
	for _, seg := range Split(path) {
		if !strings.HasPrefix(seg, "{") {
			parts = append(parts, Lit(seg))
			continue
		}
		if !strings.HasSuffix(seg, "}") {
			return Pattern{}, fmt.Errorf("%w: %q", ErrParamDelimiter, seg)
		}
		name, kind, _ := strings.Cut(seg[1:len(seg)-1], ":")
		if name == "" {
			return Pattern{}, fmt.Errorf("%w: %q", ErrEmptyParamName, seg)
		}
		switch kind {
		case "", "text":
			parts = append(parts, TextParam(name))
		case "int":
			parts = append(parts, IntParam(name))
		default:
			return Pattern{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		}
	}
	return Join(parts...), nil
}

// MustCompile is Compile that panics on error, for use at setup time.
func MustCompile(path string) Pattern {
	p, err := Compile(path)
	if err != nil {
		panic(err)
	}
	return p
}

// Split breaks a path into its segments. Leading, trailing, and
// doubled slashes contribute no segments; "/" splits to none.
func Split(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// Match evaluates the pattern against path segments. It returns the
// captured parameters in left-to-right order, or ok=false when the
// segment count differs or any segment fails to match. The first
// failure aborts the pass; there is no backtracking.
func (p Pattern) Match(segments []string) (Params, bool) {
	if len(segments) != len(p.segs) {
		return nil, false
	}
	var params Params
	for i, seg := range p.segs {
		if seg.capture == nil {
			if segments[i] != seg.literal {
				return nil, false
			}
			continue
		}
		v, ok := seg.capture.parse(segments[i])
		if !ok {
			return nil, false
		}
		params = append(params, Param{name: seg.capture.name, kind: seg.capture.kind, value: v})
	}
	return params, true
}

// MatchPath is Match over Split(path).
func (p Pattern) MatchPath(path string) (Params, bool) {
	return p.Match(Split(path))
}

// Build regenerates a path from the pattern and the given parameters.
// Literal segments emit themselves; each capture looks up the first
// parameter with its name. A missing parameter yields ErrNoParam, a
// parameter whose erased type does not fit the capture's kind yields
// ErrParamTypeMismatch. Parameters produced by Match on the same
// pattern always rebuild a path Match accepts again.
func (p Pattern) Build(params Params) (string, error) {
	segs := make([]string, 0, len(p.segs))
	for _, seg := range p.segs {
		if seg.capture == nil {
			segs = append(segs, seg.literal)
			continue
		}
		param, ok := params.Get(seg.capture.name)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrNoParam, seg.capture.name)
		}
		text, ok := param.text(seg.capture.kind)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrParamTypeMismatch, seg.capture.name)
		}
		segs = append(segs, text)
	}
	return "/" + strings.Join(segs, "/"), nil
}

// String returns the pattern in its path form, captures as {name:kind}.
func (p Pattern) String() string {
	if len(p.segs) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range p.segs {
		b.WriteByte('/')
		if seg.capture == nil {
			b.WriteString(seg.literal)
		} else {
			b.WriteByte('{')
			b.WriteString(seg.capture.name)
			b.WriteByte(':')
			b.WriteString(seg.capture.kind.String())
			b.WriteByte('}')
		}
	}
	return b.String()
}
