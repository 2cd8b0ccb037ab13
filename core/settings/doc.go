// Package settings provides a type-erased, name-keyed configuration
// store shared across requests.
//
// Retrieval is generic and checked at runtime: the caller must request
// the exact type that was stored, and a wrong type fails distinctly
// from a missing key:
//
//	reg := settings.New()
//	reg.Set("page_size", 25)
//
//	n, err := settings.Get[int](reg, "page_size")    // 25
//	s, err := settings.Get[string](reg, "page_size") // ErrTypeMismatch
//	x, err := settings.Get[int](reg, "missing")      // ErrNotFound
//
// A registry may also be seeded from a flat YAML document with LoadYAML
// or LoadYAMLFile.
package settings
