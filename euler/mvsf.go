// File: mvsf.go
// Role: Make-Vertex-Spawn-Face — the only Euler operator that can start a
// shell from nothing.
package euler

import (
	"github.com/winged/brep/geom"
	"github.com/winged/brep/mesh"
)

// MVSF creates one new vertex at pos and one new face with no boundary yet,
// and registers a new shell. It is the sole entry point for growing a mesh
// from V=E=F=0: every other operator requires existing entities to act on.
//
// Preconditions: none beyond a non-nil mesh.
//
// Postconditions: V+1, F+1, S+1; E and G unchanged.
//
// Complexity: O(1).
func MVSF(m *mesh.Mesh, pos geom.Vec3) (mesh.VertexHandle, mesh.FaceHandle) {
	v := m.AddVertex(pos)
	f, frec := m.AddFace()
	frec.Seed = v

	return v, f
}
