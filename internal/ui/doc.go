// Package ui holds the small pieces of page state that individual sections
// own: the FAQ accordion, the navigation bar's scroll observer and the
// mobile menu overlay.
//
// None of the types here are safe for concurrent use; callers serialize
// access per visitor.
package ui
