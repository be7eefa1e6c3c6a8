package euler_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/winged/brep/euler"
	"github.com/winged/brep/geom"
	"github.com/winged/brep/mesh"
	"github.com/winged/brep/navigate"
	"github.com/winged/brep/validate"
)

func TestMVSF(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	v, f := euler.MVSF(m, geom.Vec3{X: 1, Y: 2, Z: 3})

	require.Equal(t, 1, m.VertexCount())
	require.Equal(t, 1, m.FaceCount())
	require.Equal(t, 0, m.EdgeCount())

	vert, ok := m.Vertex(v)
	require.True(t, ok)
	require.Equal(t, geom.Vec3{X: 1, Y: 2, Z: 3}, vert.Position)

	face, ok := m.Face(f)
	require.True(t, ok)
	require.True(t, face.Boundary.IsNil())
}

// buildTriangle exercises MVSF + two MEV + one MEF, the minimal sequence
// for an end-to-end closed triangle with one face on each side (F=2).
func buildTriangle(t *testing.T) (*mesh.Mesh, mesh.FaceHandle, mesh.FaceHandle, [3]mesh.VertexHandle) {
	t.Helper()

	m := mesh.NewMesh()
	v0, f0 := euler.MVSF(m, geom.Vec3{X: 0, Y: 0, Z: 0})

	v1, _, err := euler.MEV(m, v0, geom.Vec3{X: 1, Y: 0, Z: 0}, f0)
	require.NoError(t, err)

	v2, _, err := euler.MEV(m, v1, geom.Vec3{X: 0, Y: 1, Z: 0}, f0)
	require.NoError(t, err)

	_, f1, err := euler.MEF(m, v2, v0, f0)
	require.NoError(t, err)

	return m, f0, f1, [3]mesh.VertexHandle{v0, v1, v2}
}

func TestMEV_GrowsBoundary(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	v0, f0 := euler.MVSF(m, geom.Vec3{})

	v1, e1, err := euler.MEV(m, v0, geom.Vec3{X: 1}, f0)
	require.NoError(t, err)
	require.Equal(t, 2, m.VertexCount())
	require.Equal(t, 1, m.EdgeCount())

	edges, verts, _, err := m.WalkFaceBoundary(f0)
	require.NoError(t, err)
	require.Equal(t, []mesh.EdgeHandle{e1, e1}, edges)
	require.Equal(t, []mesh.VertexHandle{v0, v1}, verts)
}

func TestMEV_StaleVertex(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	_, f0 := euler.MVSF(m, geom.Vec3{})

	_, _, err := euler.MEV(m, mesh.VertexHandle{ID: 999}, geom.Vec3{}, f0)
	require.Error(t, err)

	var kerr *mesh.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, mesh.KindStaleHandle, kerr.Kind)
}

func TestMEV_AnchorNotOnFace(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	v0, _ := euler.MVSF(m, geom.Vec3{})
	_, otherF := euler.MVSF(m, geom.Vec3{X: 5})

	_, _, err := euler.MEV(m, v0, geom.Vec3{X: 1}, otherF)
	require.Error(t, err)

	var kerr *mesh.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, mesh.KindBadArgument, kerr.Kind)
}

func TestMEF_SplitsFaceAndPreservesEulerInvariant(t *testing.T) {
	t.Parallel()

	m, f0, f1, verts := buildTriangle(t)

	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 3, m.EdgeCount())
	require.Equal(t, 2, m.FaceCount())

	// Both split faces' boundaries should each walk as a 3-cycle touching
	// all three vertices once.
	for _, f := range []mesh.FaceHandle{f0, f1} {
		_, bverts, _, err := m.WalkFaceBoundary(f)
		require.NoError(t, err)
		require.Len(t, bverts, 3)
		require.ElementsMatch(t, verts[:], bverts)
	}

	s, err := navigate.ShellCount(m)
	require.NoError(t, err)
	require.Equal(t, 1, s)

	v, e, fc, g := m.VertexCount(), m.EdgeCount(), m.FaceCount(), m.Genus()
	require.Equal(t, 2*(s-g), v-e+fc)
}

func TestMEF_IdenticalEndpointsRejected(t *testing.T) {
	t.Parallel()

	m, f0, _, verts := buildTriangle(t)

	_, _, err := euler.MEF(m, verts[0], verts[0], f0)
	require.Error(t, err)

	var kerr *mesh.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, mesh.KindBadArgument, kerr.Kind)
}

func TestMEF_VertexNotOnBoundary(t *testing.T) {
	t.Parallel()

	m, f0, _, verts := buildTriangle(t)
	stray := m.AddVertex(geom.Vec3{X: 99})

	_, _, err := euler.MEF(m, stray, verts[0], f0)
	require.Error(t, err)

	var kerr *mesh.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, mesh.KindTopologyViolation, kerr.Kind)
}

func TestKEF_UndoesMEF_RoundTrip(t *testing.T) {
	t.Parallel()

	m, f0, f1, verts := buildTriangle(t)

	// The new chord edge is whichever edge connects verts[2] and verts[0]
	// (the MEF call argument order in buildTriangle).
	edges, evs, _, err := m.WalkFaceBoundary(f0)
	require.NoError(t, err)

	var chord mesh.EdgeHandle
	for i := range evs {
		e, _ := m.Edge(edges[i])
		if (e.V1 == verts[2] && e.V2 == verts[0]) || (e.V1 == verts[0] && e.V2 == verts[2]) {
			chord = edges[i]
			break
		}
	}
	require.False(t, chord.IsNil())

	survivor, err := euler.KEF(m, chord)
	require.NoError(t, err)
	require.True(t, survivor == f0 || survivor == f1)

	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 2, m.EdgeCount())
	require.Equal(t, 1, m.FaceCount())

	// The two surviving edges form a spur chain again: the merged face's
	// walk traverses each once outbound and once inbound.
	bedges, _, _, err := m.WalkFaceBoundary(survivor)
	require.NoError(t, err)
	require.Len(t, bedges, 4)
	for _, eh := range bedges {
		require.NotEqual(t, chord, eh)
	}
	require.NoError(t, validate.Validate(m))
}

func TestKEF_SquareCollapsesToSpurChain(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	v0, f0 := euler.MVSF(m, geom.Vec3{X: 0, Y: 0, Z: 0})
	v1, _, err := euler.MEV(m, v0, geom.Vec3{X: 1, Y: 0, Z: 0}, f0)
	require.NoError(t, err)
	v2, _, err := euler.MEV(m, v1, geom.Vec3{X: 1, Y: 1, Z: 0}, f0)
	require.NoError(t, err)
	v3, _, err := euler.MEV(m, v2, geom.Vec3{X: 0, Y: 1, Z: 0}, f0)
	require.NoError(t, err)

	closing, _, err := euler.MEF(m, v3, v0, f0)
	require.NoError(t, err)
	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 4, m.EdgeCount())
	require.Equal(t, 2, m.FaceCount())
	require.NoError(t, validate.Validate(m))

	survivor, err := euler.KEF(m, closing)
	require.NoError(t, err)

	require.Equal(t, 4, m.VertexCount())
	require.Equal(t, 3, m.EdgeCount())
	require.Equal(t, 1, m.FaceCount())
	require.NoError(t, validate.Validate(m))

	// Three edges, each traversed twice by the lone face's boundary walk.
	bedges, _, _, err := m.WalkFaceBoundary(survivor)
	require.NoError(t, err)
	require.Len(t, bedges, 6)
	seen := map[mesh.EdgeHandle]int{}
	for _, eh := range bedges {
		seen[eh]++
	}
	require.Len(t, seen, 3)
	for _, n := range seen {
		require.Equal(t, 2, n)
	}
}

func TestOperators_RejectNilHandles(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	v0, f0 := euler.MVSF(m, geom.Vec3{})

	_, _, err := euler.MEV(m, mesh.VertexHandle{}, geom.Vec3{X: 1}, f0)
	requireKind(t, err, mesh.KindBadArgument)

	_, _, err = euler.MEF(m, v0, mesh.VertexHandle{}, f0)
	requireKind(t, err, mesh.KindBadArgument)

	_, err = euler.KEF(m, mesh.EdgeHandle{})
	requireKind(t, err, mesh.KindBadArgument)

	requireKind(t, euler.KFMRH(m, mesh.FaceHandle{}, f0), mesh.KindBadArgument)
}

func requireKind(t *testing.T, err error, want mesh.Kind) {
	t.Helper()

	require.Error(t, err)
	var kerr *mesh.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, want, kerr.Kind)
}

func TestKEF_RequiresTwoDistinctFaces(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	v0, f0 := euler.MVSF(m, geom.Vec3{})
	_, e1, err := euler.MEV(m, v0, geom.Vec3{X: 1}, f0)
	require.NoError(t, err)

	_, err = euler.KEF(m, e1)
	require.Error(t, err)

	var kerr *mesh.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, mesh.KindTopologyViolation, kerr.Kind)
}

func TestKEFBoundary_RemovesDanglingSpurAndItsFace(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	v0, f0 := euler.MVSF(m, geom.Vec3{})
	_, e1, err := euler.MEV(m, v0, geom.Vec3{X: 1}, f0)
	require.NoError(t, err)

	_, err = euler.KEFBoundary(m, e1)
	require.NoError(t, err)

	require.Equal(t, 2, m.VertexCount())
	require.Equal(t, 0, m.EdgeCount())
	require.Equal(t, 0, m.FaceCount())
}

func TestKEFBoundary_RejectsTwoSidedEdge(t *testing.T) {
	t.Parallel()

	m, f0, _, verts := buildTriangle(t)
	edges, _, _, err := m.WalkFaceBoundary(f0)
	require.NoError(t, err)
	_ = verts

	_, err = euler.KEFBoundary(m, edges[0])
	require.Error(t, err)

	var kerr *mesh.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, mesh.KindTopologyViolation, kerr.Kind)
}

func TestKFMRH_AbsorbsInnerFaceAsHoleAndRaisesGenus(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()

	// Outer triangle on one shell.
	outerV0, fOuter := euler.MVSF(m, geom.Vec3{X: 0, Y: 0, Z: 0})
	outerV1, _, err := euler.MEV(m, outerV0, geom.Vec3{X: 10, Y: 0, Z: 0}, fOuter)
	require.NoError(t, err)
	outerV2, _, err := euler.MEV(m, outerV1, geom.Vec3{X: 0, Y: 10, Z: 0}, fOuter)
	require.NoError(t, err)
	_, _, err = euler.MEF(m, outerV2, outerV0, fOuter)
	require.NoError(t, err)

	// Inner triangle on a second, disjoint shell.
	innerV0, fInner := euler.MVSF(m, geom.Vec3{X: 1, Y: 1, Z: 0})
	innerV1, _, err := euler.MEV(m, innerV0, geom.Vec3{X: 2, Y: 1, Z: 0}, fInner)
	require.NoError(t, err)
	innerV2, _, err := euler.MEV(m, innerV1, geom.Vec3{X: 1, Y: 2, Z: 0}, fInner)
	require.NoError(t, err)
	_, innerFace2, err := euler.MEF(m, innerV2, innerV0, fInner)
	require.NoError(t, err)

	faceCountBefore := m.FaceCount()
	genusBefore := m.Genus()

	require.NoError(t, euler.KFMRH(m, fInner, fOuter))

	require.Equal(t, faceCountBefore-1, m.FaceCount())
	require.Equal(t, genusBefore+1, m.Genus())

	outerRec, ok := m.Face(fOuter)
	require.True(t, ok)
	require.Len(t, outerRec.InnerBoundaries, 1)

	loops, err := navigate.InnerBoundaryLoops(m, fOuter)
	require.NoError(t, err)
	require.Len(t, loops, 1)
	require.Len(t, loops[0], 3)

	// innerFace2 is the flip side of the same physical triangle (from the
	// MEF split, not the "inner" argument itself) — it survives KFMRH
	// untouched, only its edges' other face slot was relabelled.
	_, ok = m.Face(innerFace2)
	require.True(t, ok)
	_, ok = m.Face(fInner)
	require.False(t, ok)
}

func TestKFMRH_RejectsOverlappingBoundaries(t *testing.T) {
	t.Parallel()

	m, f0, f1, _ := buildTriangle(t)

	err := euler.KFMRH(m, f0, f1)
	require.Error(t, err)

	var kerr *mesh.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, mesh.KindTopologyViolation, kerr.Kind)
}

func TestKFMRH_RejectsSameFace(t *testing.T) {
	t.Parallel()

	m := mesh.NewMesh()
	_, f0 := euler.MVSF(m, geom.Vec3{})

	err := euler.KFMRH(m, f0, f0)
	require.Error(t, err)

	var kerr *mesh.KernelError
	require.True(t, errors.As(err, &kerr))
	require.Equal(t, mesh.KindBadArgument, kerr.Kind)
}
