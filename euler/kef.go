// File: kef.go
// Role: Kill-Edge-Face — the inverse of MEF, merging the two faces an edge
// separates back into one; plus its boundary variant for a dangling edge
// whose face has no other boundary.
package euler

import "github.com/winged/brep/mesh"

// KEF removes edge e and merges its two distinct adjacent faces into one
// surviving face (e.F1, keeping its handle), stitching the two boundary
// cycles e used to separate back into a single cycle. Any inner boundary
// rings the merged-away face carried move to the survivor.
//
// Preconditions: e live, with F1 and F2 both present and distinct.
//
// Postconditions: E-1, F-1; V, S, G unchanged. The surviving face's cached
// normal is refreshed.
//
// Complexity: O(E) — every edge in the mesh is scanned once to rewrite any
// face slot that referenced the merged-away face.
func KEF(m *mesh.Mesh, e mesh.EdgeHandle) (mesh.FaceHandle, error) {
	if e.IsNil() {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindBadArgument, "KEF", 0, mesh.ErrNilHandle)
	}
	edge, ok := m.Edge(e)
	if !ok {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindStaleHandle, "KEF", e.ID, mesh.ErrStaleHandle)
	}
	if edge.F1.IsNil() || edge.F2.IsNil() {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindTopologyViolation, "KEF", e.ID, mesh.ErrNotTwoSided)
	}
	if edge.F1 == edge.F2 {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindTopologyViolation, "KEF", e.ID, mesh.ErrSameFace)
	}

	f1 := edge.F1
	f2 := edge.F2
	u, w := edge.V1, edge.V2

	prevF1 := prevAt(edge, true)
	nextF1 := nextAt(edge, true)
	prevF2 := prevAt(edge, false)
	nextF2 := nextAt(edge, false)

	prevF1Edge, ok := m.Edge(prevF1)
	if !ok {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindInconsistency, "KEF", e.ID, mesh.ErrInconsistentWing)
	}
	nextF1Edge, ok := m.Edge(nextF1)
	if !ok {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindInconsistency, "KEF", e.ID, mesh.ErrInconsistentWing)
	}
	prevF2Edge, ok := m.Edge(prevF2)
	if !ok {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindInconsistency, "KEF", e.ID, mesh.ErrInconsistentWing)
	}
	nextF2Edge, ok := m.Edge(nextF2)
	if !ok {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindInconsistency, "KEF", e.ID, mesh.ErrInconsistentWing)
	}

	// Resolve every rewrite site before mutating anything. e's F1 walk runs
	// u -> w, its F2 walk w -> u, so the neighbors pair up as: prevF1 arrives
	// at u, nextF2 departs u, prevF2 arrives at w, nextF1 departs w. Each
	// neighbor is resolved against the face whose cycle it is currently on.
	prevF1Role, ok := arrivalRoleAt(prevF1Edge, u, f1)
	if !ok {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindInconsistency, "KEF", e.ID, mesh.ErrInconsistentWing)
	}
	nextF1Role, ok := roleAt(nextF1Edge, w, f1)
	if !ok {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindInconsistency, "KEF", e.ID, mesh.ErrInconsistentWing)
	}
	prevF2Role, ok := arrivalRoleAt(prevF2Edge, w, f2)
	if !ok {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindInconsistency, "KEF", e.ID, mesh.ErrInconsistentWing)
	}
	nextF2Role, ok := roleAt(nextF2Edge, u, f2)
	if !ok {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindInconsistency, "KEF", e.ID, mesh.ErrInconsistentWing)
	}

	// Global face-slot rewrite: every edge referencing f2 now references f1.
	for _, other := range m.Edges() {
		if other.F1 == f2 {
			other.F1 = f1
		}
		if other.F2 == f2 {
			other.F2 = f1
		}
	}

	f1rec, _ := m.Face(f1)
	f2rec, _ := m.Face(f2)
	if f1rec.Boundary == e {
		f1rec.Boundary = nextF2
	}
	for i, ring := range f1rec.InnerBoundaries {
		if ring == e {
			f1rec.InnerBoundaries[i] = nextF2
		}
	}
	f1rec.InnerBoundaries = append(f1rec.InnerBoundaries, f2rec.InnerBoundaries...)

	// Close the merged cycle over the gap e leaves: ...prevF1 -> nextF2...
	// at u, and ...prevF2 -> nextF1... at w.
	setNextAt(prevF1Edge, prevF1Role, nextF2)
	setPrevAt(nextF2Edge, nextF2Role, prevF1)
	setNextAt(prevF2Edge, prevF2Role, nextF1)
	setPrevAt(nextF1Edge, nextF1Role, prevF2)

	// Repoint either endpoint whose stored incident edge was e.
	uv, _ := m.Vertex(u)
	if uv != nil && uv.Edge == e {
		uv.Edge = prevF1
	}
	wv, _ := m.Vertex(w)
	if wv != nil && wv.Edge == e {
		wv.Edge = nextF1
	}

	m.RemoveEdge(e)
	m.RemoveFace(f2)

	if err := m.RefreshNormal(f1); err != nil {
		return mesh.FaceHandle{}, err
	}

	return f1, nil
}

// KEFBoundary removes a dangling edge whose face has no boundary besides the
// edge itself, and removes that face along with it — the boundary variant of
// KEF for an edge with no second face to merge into. It accepts both a
// just-made MEV spur (both face slots name the same face, which walks the
// edge once in each direction) and a directly-assembled one-sided edge (one
// slot absent), as long as the face's entire boundary walk passes only
// through e; removing the face out from under any other edge would leave
// that edge's face slot dangling.
//
// Preconditions: e live, bordering exactly one distinct face f, and f's
// boundary walk consists solely of traversals of e.
//
// Postconditions: E-1, F-1; V, G unchanged. e's endpoints become isolated
// if e was their only edge, and navigate.ShellCount then counts each such
// vertex as a shell of its own (a lone MEV spur goes from S=1 to S=2). Returns a handle to the removed face for
// inspection (it is stale the instant this call returns).
//
// Complexity: O(E) in the worst case, to find a replacement anchor edge for
// an endpoint that still has other incident edges.
func KEFBoundary(m *mesh.Mesh, e mesh.EdgeHandle) (mesh.FaceHandle, error) {
	if e.IsNil() {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindBadArgument, "KEFBoundary", 0, mesh.ErrNilHandle)
	}
	edge, ok := m.Edge(e)
	if !ok {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindStaleHandle, "KEFBoundary", e.ID, mesh.ErrStaleHandle)
	}

	var f mesh.FaceHandle
	switch {
	case !edge.F1.IsNil() && edge.F1 == edge.F2:
		f = edge.F1
	case !edge.F1.IsNil() && edge.F2.IsNil():
		f = edge.F1
	case edge.F1.IsNil() && !edge.F2.IsNil():
		f = edge.F2
	default:
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindTopologyViolation, "KEFBoundary", e.ID, mesh.ErrNotDanglingSpur)
	}

	steps, _, _, err := m.WalkFaceBoundary(f)
	if err != nil {
		return mesh.FaceHandle{}, err
	}
	if len(steps) == 0 {
		return mesh.FaceHandle{}, mesh.NewError(mesh.KindInconsistency, "KEFBoundary", e.ID, mesh.ErrInconsistentWing)
	}
	for _, step := range steps {
		if step != e {
			return mesh.FaceHandle{}, mesh.NewError(mesh.KindTopologyViolation, "KEFBoundary", e.ID, mesh.ErrNotDanglingSpur)
		}
	}

	for _, vh := range [2]mesh.VertexHandle{edge.V1, edge.V2} {
		v, ok := m.Vertex(vh)
		if !ok || v.Edge != e {
			continue
		}
		v.Edge = mesh.EdgeHandle{}
		for _, other := range m.Edges() {
			if other.Handle != e && (other.V1 == vh || other.V2 == vh) {
				v.Edge = other.Handle
				break
			}
		}
	}

	m.RemoveEdge(e)
	m.RemoveFace(f)

	return f, nil
}
