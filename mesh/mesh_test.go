package mesh_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/winged/brep/geom"
	"github.com/winged/brep/mesh"
)

func TestMesh_EmptyCounts(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	require.Equal(t, 0, m.VertexCount())
	require.Equal(t, 0, m.EdgeCount())
	require.Equal(t, 0, m.FaceCount())
	require.Equal(t, 0, m.Genus())
}

func TestMesh_AddVertex(t *testing.T) {
	t.Parallel()

	// Stage 1: create and resolve.
	m := mesh.NewMesh()
	h := m.AddVertex(geom.Vec3{X: 1, Y: 2, Z: 3})
	require.False(t, h.IsNil())

	v, ok := m.Vertex(h)
	require.True(t, ok)
	require.Equal(t, geom.Vec3{X: 1, Y: 2, Z: 3}, v.Position)
	require.Equal(t, 1, m.VertexCount())

	// Stage 2: SetPosition mutates in place.
	require.True(t, m.SetPosition(h, geom.Vec3{X: 9}))
	v2, _ := m.Vertex(h)
	require.Equal(t, geom.Vec3{X: 9}, v2.Position)
}

func TestMesh_VertexStaleHandle(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	h := m.AddVertex(geom.Vec3{})

	_, ok := m.Vertex(mesh.VertexHandle{ID: h.ID, Gen: h.Gen + 1})
	require.False(t, ok)

	_, ok = m.Vertex(mesh.VertexHandle{})
	require.False(t, ok)

	_, ok = m.Vertex(mesh.VertexHandle{ID: 999})
	require.False(t, ok)
}

func TestMesh_Vertices_CreationOrder(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	h1 := m.AddVertex(geom.Vec3{X: 1})
	h2 := m.AddVertex(geom.Vec3{X: 2})
	h3 := m.AddVertex(geom.Vec3{X: 3})

	got := m.Vertices()
	require.Len(t, got, 3)
	require.Equal(t, []mesh.VertexHandle{h1, h2, h3}, []mesh.VertexHandle{got[0].Handle, got[1].Handle, got[2].Handle})
}

func TestMesh_AddEdgeAndRemove(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	v1 := m.AddVertex(geom.Vec3{})
	v2 := m.AddVertex(geom.Vec3{X: 1})

	eh, e := m.AddEdge(v1, v2, mesh.FaceHandle{}, mesh.FaceHandle{})
	require.Equal(t, v1, e.V1)
	require.Equal(t, v2, e.V2)
	require.Equal(t, 1, m.EdgeCount())

	got, ok := m.Edge(eh)
	require.True(t, ok)
	require.Same(t, e, got)

	require.True(t, m.RemoveEdge(eh))
	require.Equal(t, 0, m.EdgeCount())
	_, ok = m.Edge(eh)
	require.False(t, ok)
	require.False(t, m.RemoveEdge(eh))
}

func TestMesh_AddFaceAndRemove(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	fh, f := m.AddFace()
	require.True(t, f.Boundary.IsNil())
	require.Equal(t, 1, m.FaceCount())

	require.True(t, m.RemoveFace(fh))
	require.Equal(t, 0, m.FaceCount())
	_, ok := m.Face(fh)
	require.False(t, ok)
}

func TestMesh_WalkFaceBoundary_NoBoundaryYet(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	fh, _ := m.AddFace()

	edges, verts, sides, err := m.WalkFaceBoundary(fh)
	require.NoError(t, err)
	require.Nil(t, edges)
	require.Nil(t, verts)
	require.Nil(t, sides)
}

func TestMesh_WalkFaceBoundary_StaleFace(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	fh, _ := m.AddFace()
	m.RemoveFace(fh)

	_, _, _, err := m.WalkFaceBoundary(fh)
	require.Error(t, err)

	var kerr *mesh.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, mesh.KindStaleHandle, kerr.Kind)
}

func TestKernelError_ErrorsIs(t *testing.T) {
	t.Parallel()

	err := mesh.NewError(mesh.KindBadArgument, "Test", 42, mesh.ErrIdenticalEndpoint)
	require.True(t, errors.Is(err, mesh.ErrIdenticalEndpoint))
	require.Contains(t, err.Error(), "Test")
	require.Contains(t, err.Error(), "42")
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		k    mesh.Kind
		want string
	}{
		{mesh.KindBadArgument, "bad-argument"},
		{mesh.KindStaleHandle, "stale-handle"},
		{mesh.KindTopologyViolation, "topology-violation"},
		{mesh.KindInconsistency, "inconsistency"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, c.k.String())
	}
}
