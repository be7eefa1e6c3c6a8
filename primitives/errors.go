// File: errors.go
// Role: sentinel errors for the primitives package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. Option constructors validate and panic on meaningless inputs
// (mirroring the kernel's ambient builder convention); FromPolygonSoup
// never panics — it wraps a sentinel with %w and returns it. Cube and Plane
// panic on a non-positive dimension and otherwise return FromPolygonSoup's
// error.
package primitives

import "errors"

// ErrEmptySoup indicates FromPolygonSoup was given zero polygons.
var ErrEmptySoup = errors.New("primitives: empty polygon soup")

// ErrDegeneratePolygon indicates a soup polygon has fewer than three
// distinct vertex positions.
var ErrDegeneratePolygon = errors.New("primitives: polygon needs at least three distinct vertices")

// ErrUnstitchableEdge indicates a soup edge is shared by more than two
// polygons, or by two polygons that walk it in the same direction; no
// two-sided winged edge can represent either.
var ErrUnstitchableEdge = errors.New("primitives: edge shared by more than two polygons")
