// File: plane.go
// Role: Plane — a single rectangular quad face in the XY plane.
package primitives

import (
	"github.com/winged/brep/geom"
	"github.com/winged/brep/mesh"
)

// Plane returns a single-face, single-quad mesh of the given width and
// height, centered at the origin in the Z=0 plane, with +Z outward normal.
// Panics if width or height is not positive.
func Plane(width, height float64) (*mesh.Mesh, mesh.FaceHandle, error) {
	if width <= 0 || height <= 0 {
		panic("primitives: Plane(non-positive dimension)")
	}
	hw, hh := width/2, height/2

	loop := []geom.Vec3{
		{X: -hw, Y: -hh, Z: 0},
		{X: hw, Y: -hh, Z: 0},
		{X: hw, Y: hh, Z: 0},
		{X: -hw, Y: hh, Z: 0},
	}

	m, faces, err := FromPolygonSoup([][]geom.Vec3{loop})
	if err != nil {
		return nil, mesh.FaceHandle{}, err
	}

	return m, faces[0], nil
}
