// File: methods_faces.go
// Role: Face pool lifecycle & queries, plus the shared boundary-walk
// primitive used both for cached-normal recomputation (owned here, since
// a face's cached normal is recomputed whenever its boundary is modified)
// and, by the navigate package, for the pure BoundaryEdges/BoundaryVertices
// queries.
package mesh

import "github.com/winged/brep/geom"

// AddFace allocates a new Face with no boundary edge yet (the MVSF "seed"
// state) and returns its handle and a live pointer for the caller to wire.
//
// Complexity: O(1) amortized.
func (m *Mesh) AddFace() (FaceHandle, *Face) {
	m.muFaces.Lock()
	defer m.muFaces.Unlock()

	id := uint64(len(m.faces)) + 1
	gen := uint32(1)
	h := FaceHandle{ID: id, Gen: gen}
	f := &Face{Handle: h}
	m.faces = append(m.faces, f)
	m.faceGen = append(m.faceGen, gen)
	m.liveF++

	return h, f
}

// Face resolves a handle to its live Face, or false if nil/out of
// range/stale.
//
// Complexity: O(1).
func (m *Mesh) Face(h FaceHandle) (*Face, bool) {
	if h.IsNil() {
		return nil, false
	}

	m.muFaces.RLock()
	defer m.muFaces.RUnlock()

	idx := int(h.ID) - 1
	if idx < 0 || idx >= len(m.faces) {
		return nil, false
	}
	if m.faceGen[idx] != h.Gen {
		return nil, false
	}
	f := m.faces[idx]
	if f == nil {
		return nil, false
	}

	return f, true
}

// Faces returns all live faces in creation order.
//
// Complexity: O(F).
func (m *Mesh) Faces() []*Face {
	m.muFaces.RLock()
	defer m.muFaces.RUnlock()

	out := make([]*Face, 0, m.liveF)
	for _, f := range m.faces {
		if f != nil {
			out = append(out, f)
		}
	}

	return out
}

// RemoveFace bumps the slot's generation and clears it, invalidating any
// outstanding handle. Used by KEF (both its two-sided and boundary-variant
// forms) and by KFMRH.
//
// Complexity: O(1).
func (m *Mesh) RemoveFace(h FaceHandle) bool {
	m.muFaces.Lock()
	defer m.muFaces.Unlock()

	idx := int(h.ID) - 1
	if idx < 0 || idx >= len(m.faces) || m.faceGen[idx] != h.Gen || m.faces[idx] == nil {
		return false
	}
	m.faces[idx] = nil
	m.faceGen[idx]++
	m.liveF--

	return true
}

// boundaryState names one step of a face's ordered boundary walk: the edge
// being traversed and which of its two face-sides (F1, walked V1->V2, or
// F2, walked V2->V1) is being followed.
type boundaryState struct {
	edge EdgeHandle
	onF1 bool
}

// WalkFaceBoundary returns face f's boundary walk starting at its Boundary
// edge: the ordered edge sequence, the corresponding departure-vertex
// sequence (the same sequence BoundaryVertices exposes), and the
// corresponding per-step side flags (true if the step was taken via the
// F1/V1->V2 sense). A face with no boundary yet (the MVSF seed state)
// returns three nil slices and no error.
//
// Side resolution, derived from first principles: stepping from edge e via
// its F1 side uses NextAtV1OnF1 to find the next edge; stepping via F2 uses
// NextAtV2OnF2. The next edge's side is resolved by matching the vertex the
// walk just arrived at (the far endpoint of the edge just traversed) against
// the next edge's own V1/F1 or V2/F2 pairing, rather than by the next edge's
// face slots alone: a dangling spur left by MEV has both slots equal to f,
// so slot matching alone can't tell a fresh spur (reached for the first
// time) from the one just traversed turning back on itself.
//
// Termination: the walk aborts with KindInconsistency the moment it would
// revisit an (edge, side) pair before returning to the start, so it never
// loops forever on a corrupted mesh.
//
// Complexity: O(boundary length).
func (m *Mesh) WalkFaceBoundary(f FaceHandle) ([]EdgeHandle, []VertexHandle, []bool, error) {
	face, ok := m.Face(f)
	if !ok {
		return nil, nil, nil, NewError(KindStaleHandle, "WalkFaceBoundary", f.ID, ErrStaleHandle)
	}
	if face.Boundary.IsNil() {
		return nil, nil, nil, nil
	}

	return m.WalkBoundaryFrom(face.Boundary, f)
}

// WalkBoundaryFrom walks the boundary cycle of face f that passes through the
// given start edge, with the same semantics and return values as
// WalkFaceBoundary. WalkFaceBoundary is this walk anchored at f's stored
// Boundary handle; callers with another anchor (an inner ring folded into f
// by KFMRH, whose cycle is unreachable from f.Boundary) use this directly.
func (m *Mesh) WalkBoundaryFrom(startHandle EdgeHandle, f FaceHandle) ([]EdgeHandle, []VertexHandle, []bool, error) {
	start, ok := m.Edge(startHandle)
	if !ok {
		return nil, nil, nil, NewError(KindInconsistency, "WalkBoundaryFrom", f.ID, ErrInconsistentWing)
	}
	startOnF1 := start.F1 == f
	if !startOnF1 && start.F2 != f {
		return nil, nil, nil, NewError(KindInconsistency, "WalkBoundaryFrom", f.ID, ErrInconsistentWing)
	}

	var edges []EdgeHandle
	var verts []VertexHandle
	var sides []bool
	visited := make(map[boundaryState]bool)

	cur := boundaryState{edge: startHandle, onF1: startOnF1}
	startState := cur
	for i := 0; ; i++ {
		if i > 0 && cur == startState {
			break
		}
		if visited[cur] {
			return nil, nil, nil, NewError(KindInconsistency, "WalkBoundaryFrom", f.ID, ErrInconsistentWing)
		}
		visited[cur] = true

		e, ok := m.Edge(cur.edge)
		if !ok {
			return nil, nil, nil, NewError(KindInconsistency, "WalkBoundaryFrom", f.ID, ErrInconsistentWing)
		}

		var depart, arrival VertexHandle
		var next EdgeHandle
		if cur.onF1 {
			depart, arrival = e.V1, e.V2
			next = e.NextAtV1OnF1
		} else {
			depart, arrival = e.V2, e.V1
			next = e.NextAtV2OnF2
		}
		edges = append(edges, cur.edge)
		verts = append(verts, depart)
		sides = append(sides, cur.onF1)

		if next.IsNil() {
			return nil, nil, nil, NewError(KindInconsistency, "WalkBoundaryFrom", f.ID, ErrInconsistentWing)
		}
		ne, ok := m.Edge(next)
		if !ok {
			return nil, nil, nil, NewError(KindInconsistency, "WalkBoundaryFrom", f.ID, ErrInconsistentWing)
		}

		var nextOnF1 bool
		switch {
		case ne.V1 == arrival && ne.F1 == f:
			nextOnF1 = true
		case ne.V2 == arrival && ne.F2 == f:
			nextOnF1 = false
		default:
			return nil, nil, nil, NewError(KindInconsistency, "WalkBoundaryFrom", f.ID, ErrInconsistentWing)
		}
		cur = boundaryState{edge: next, onF1: nextOnF1}
	}

	return edges, verts, sides, nil
}

// RefreshNormal recomputes and caches f's normal from its current outer
// boundary walk using Newell's method. Called by every Euler operator that
// modifies a face's boundary, so a boundary change never leaves the cached
// normal stale; SetPosition does not call it.
//
// Complexity: O(boundary length).
func (m *Mesh) RefreshNormal(f FaceHandle) error {
	face, ok := m.Face(f)
	if !ok {
		return NewError(KindStaleHandle, "RefreshNormal", f.ID, ErrStaleHandle)
	}

	_, verts, _, err := m.WalkFaceBoundary(f)
	if err != nil {
		return err
	}

	positions := make([]geom.Vec3, 0, len(verts))
	for _, vh := range verts {
		v, ok := m.Vertex(vh)
		if !ok {
			return NewError(KindInconsistency, "RefreshNormal", f.ID, ErrInconsistentWing)
		}
		positions = append(positions, v.Position)
	}

	m.muFaces.Lock()
	face.normal = geom.NewellNormal(positions)
	m.muFaces.Unlock()

	return nil
}
