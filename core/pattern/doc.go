// Package pattern implements typed, bidirectional URL patterns: the same
// compiled pattern both matches incoming path segments and regenerates a
// path from named parameters.
//
// Patterns are built from literal segments and typed captures, composed
// path-wise:
//
//	p := pattern.Join(pattern.Lit("users"), pattern.IntParam("id"))
//
// or compiled from the string form:
//
//	p := pattern.MustCompile("/users/{id:int}")
//
// Matching is a single left-to-right pass with no backtracking and no
// optional segments: a pattern of N segments matches exactly N path
// segments, literals compare exactly, and the first failed capture fails
// the whole match.
//
//	params, ok := p.MatchPath("/users/42") // params = [id=42]
//
// The same structure generates URLs. Build looks each capture up by name
// in the given parameters and reports a missing parameter or an erased
// type that does not fit the capture's kind as an error value:
//
//	path, err := p.Build(pattern.Params{pattern.IntValue("id", 7)}) // "/users/7"
//
// Parameters returned by Match always rebuild a path that Match accepts
// again with equal parameters.
package pattern
