// File: types.go
// Role: Vertex, Edge, Face records and their generational handles.
//
// Handle design: arena-plus-generational-handle. Each pool is a
// growable slice; a handle is (id, generation). Deletion bumps the slot's
// generation so a handle captured before deletion is detected as stale on
// the next dereference, without reference counting or cycle-collection
// concerns.
package mesh

import "github.com/winged/brep/geom"

// VertexHandle is a stable, generational reference to a Vertex.
// The zero value denotes an absent/nil handle (valid IDs start at 1).
type VertexHandle struct {
	ID  uint64
	Gen uint32
}

// IsNil reports whether h is the absent handle.
func (h VertexHandle) IsNil() bool { return h.ID == 0 }

// EdgeHandle is a stable, generational reference to an Edge.
type EdgeHandle struct {
	ID  uint64
	Gen uint32
}

// IsNil reports whether h is the absent handle.
func (h EdgeHandle) IsNil() bool { return h.ID == 0 }

// FaceHandle is a stable, generational reference to a Face.
type FaceHandle struct {
	ID  uint64
	Gen uint32
}

// IsNil reports whether h is the absent handle.
func (h FaceHandle) IsNil() bool { return h.ID == 0 }

// Vertex holds a 3D position and the handle of one incident edge (absent
// for an isolated vertex created by MVSF before any MEV).
type Vertex struct {
	Handle   VertexHandle
	Position geom.Vec3
	Edge     EdgeHandle // one incident edge; zero if isolated
}

// Edge is the winged-edge record: two endpoints, two adjacent faces (either
// may be absent for a boundary edge), and four wing links that encode the
// ordered boundary walk of each adjacent face at its respective endpoint.
//
// Orientation: walking F1's boundary proceeds V1 -> V2; walking
// F2's boundary proceeds V2 -> V1.
type Edge struct {
	Handle EdgeHandle

	V1, V2 VertexHandle
	F1, F2 FaceHandle

	// PrevAtV1OnF1/NextAtV1OnF1: the preceding/following edge in F1's
	// boundary walk, incident at V1.
	PrevAtV1OnF1, NextAtV1OnF1 EdgeHandle

	// PrevAtV2OnF2/NextAtV2OnF2: the preceding/following edge in F2's
	// boundary walk, incident at V2.
	PrevAtV2OnF2, NextAtV2OnF2 EdgeHandle
}

// Face holds the handle of one boundary edge (absent only for a face with no
// boundary yet, i.e. freshly seeded by MVSF) and a cached normal that
// RefreshNormal recomputes whenever an operator changes the boundary.
//
// Seed is the vertex MVSF created this face alongside. It is meaningful only
// while Boundary is nil: it is the witness MEV checks when asked to hang the
// face's first spur off an isolated vertex, since an empty boundary walk
// cannot testify which vertex the face belongs with.
//
// InnerBoundaries holds the start-edge handle of each additional boundary
// loop folded into this face by KFMRH: a single Boundary
// handle can only anchor one cycle, so a face left with a hole after its
// ring has been absorbed needs one more handle per absorbed ring. Empty for
// every face that has never been the target of KFMRH.
type Face struct {
	Handle   FaceHandle
	Boundary EdgeHandle
	Seed     VertexHandle

	InnerBoundaries []EdgeHandle

	normal geom.Vec3
}

// Normal returns the face's cached outward normal, computed via Newell's
// method over the current boundary walk. Returns the zero vector for a
// degenerate (boundary-less or zero-length) walk.
func (f *Face) Normal() geom.Vec3 {
	return f.normal
}
