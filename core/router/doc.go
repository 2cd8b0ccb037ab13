// Package router implements the ordered route table: method-aware
// dispatch over typed URL patterns, and reverse URL generation from
// route names.
//
// Dispatch is first-match-wins over declaration order. There is no
// longest-match or specificity tie-break: with
//
//	r.Get("/a", handleA)
//	r.Get("/{x:text}", handleB)
//
// a GET /a always dispatches to handleA because it was declared first,
// and would always dispatch to handleB if the declarations were
// swapped. Order your routes from most to least specific.
//
// Named routes support reverse generation:
//
//	r.Get("/users/{id:int}", showUser).Name("user")
//	url, err := r.URLFor("user", pattern.Params{pattern.IntValue("id", 7)})
//	// url == "/users/7"
//
// A table is assembled during setup and frozen before serving; Freeze
// validates that route names are unique and makes the table immutable,
// after which it is safe for unsynchronized concurrent reads.
package router
