// File: cube.go
// Role: Cube — an axis-aligned hexahedron of the given side length, built
// as a six-quad polygon soup with outward-facing winding.
package primitives

import (
	"github.com/winged/brep/geom"
	"github.com/winged/brep/mesh"
)

// Cube returns a closed, manifold, six-faced hexahedron mesh centered at
// the origin with the given side length, along with its six face handles
// in -Z,+Z,-Y,+Y,-X,+X order. Panics if side is not positive — this is a
// constructor precondition, not a runtime mesh error.
func Cube(side float64) (*mesh.Mesh, []mesh.FaceHandle, error) {
	if side <= 0 {
		panic("primitives: Cube(non-positive side)")
	}
	h := side / 2

	p := func(x, y, z float64) geom.Vec3 { return geom.Vec3{X: x * h, Y: y * h, Z: z * h} }

	// Corners named by sign octant.
	c000 := p(-1, -1, -1)
	c100 := p(1, -1, -1)
	c110 := p(1, 1, -1)
	c010 := p(-1, 1, -1)
	c001 := p(-1, -1, 1)
	c101 := p(1, -1, 1)
	c111 := p(1, 1, 1)
	c011 := p(-1, 1, 1)

	loops := [][]geom.Vec3{
		{c000, c010, c110, c100}, // -Z, viewed from outside (-Z looking toward +Z)
		{c001, c101, c111, c011}, // +Z
		{c000, c100, c101, c001}, // -Y
		{c010, c011, c111, c110}, // +Y
		{c000, c001, c011, c010}, // -X
		{c100, c110, c111, c101}, // +X
	}

	return FromPolygonSoup(loops)
}
