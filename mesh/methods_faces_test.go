package mesh_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/winged/brep/geom"
	"github.com/winged/brep/mesh"
)

// wireTriangle hand-assembles a single-face triangle directly through the
// mesh pool primitives (bypassing euler entirely), to exercise
// WalkFaceBoundary and RefreshNormal in isolation from the operator layer.
func wireTriangle(t *testing.T) (*mesh.Mesh, mesh.FaceHandle, [3]mesh.VertexHandle, [3]mesh.EdgeHandle) {
	t.Helper()

	m := mesh.NewMesh()
	fh, frec := m.AddFace()

	v0 := m.AddVertex(geom.Vec3{X: 0, Y: 0, Z: 0})
	v1 := m.AddVertex(geom.Vec3{X: 1, Y: 0, Z: 0})
	v2 := m.AddVertex(geom.Vec3{X: 0, Y: 1, Z: 0})

	e0h, e0 := m.AddEdge(v0, v1, fh, mesh.FaceHandle{})
	e1h, e1 := m.AddEdge(v1, v2, fh, mesh.FaceHandle{})
	e2h, e2 := m.AddEdge(v2, v0, fh, mesh.FaceHandle{})

	e0.NextAtV1OnF1, e0.PrevAtV1OnF1 = e1h, e2h
	e1.NextAtV1OnF1, e1.PrevAtV1OnF1 = e2h, e0h
	e2.NextAtV1OnF1, e2.PrevAtV1OnF1 = e0h, e1h

	frec.Boundary = e0h

	return m, fh, [3]mesh.VertexHandle{v0, v1, v2}, [3]mesh.EdgeHandle{e0h, e1h, e2h}
}

func TestWalkFaceBoundary_Triangle(t *testing.T) {
	t.Parallel()

	m, fh, verts, edges := wireTriangle(t)

	gotEdges, gotVerts, gotSides, err := m.WalkFaceBoundary(fh)
	require.NoError(t, err)
	require.Equal(t, edges[:], gotEdges)
	require.Equal(t, verts[:], gotVerts)
	require.Equal(t, []bool{true, true, true}, gotSides)
}

func TestRefreshNormal_Triangle(t *testing.T) {
	t.Parallel()

	m, fh, _, _ := wireTriangle(t)

	require.NoError(t, m.RefreshNormal(fh))
	face, ok := m.Face(fh)
	require.True(t, ok)
	require.True(t, face.Normal().Equal(geom.Vec3{Z: 1}, 1e-9))
}

func TestWalkFaceBoundary_InconsistentWingAborts(t *testing.T) {
	t.Parallel()

	m, fh, _, edges := wireTriangle(t)

	// Corrupt the cycle: point e1's next back to itself instead of e2. The
	// walk arrives at v2, finds that e1 neither departs v2 on F1 nor has an
	// F2 side on this face, and aborts instead of continuing.
	e1, _ := m.Edge(edges[1])
	e1.NextAtV1OnF1 = edges[1]

	_, _, _, err := m.WalkFaceBoundary(fh)
	require.Error(t, err)
}
