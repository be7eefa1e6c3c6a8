// File: vertex.go
// Role: vertex-centric adjacency — the edges and faces touching a vertex.
package navigate

import "github.com/winged/brep/mesh"

// IncidentEdges returns every edge touching v, in the rotational order
// produced by walking the wing links around v starting from v's stored edge.
// An isolated vertex (no stored edge) returns an empty, non-nil slice.
//
// Derivation: edge e touches v at one endpoint, and its two rotational
// neighbors around v are the edge arriving at v on the face-cycle keyed to
// that endpoint (PrevAtV1OnF1 when v is e's V1, PrevAtV2OnF2 when it is
// e's V2) and the edge departing v on the opposite face-cycle (NextAtV2OnF2,
// respectively NextAtV1OnF1) — the same links mesh.WalkBoundaryFrom follows
// one face at a time, read here across faces. A closed fan returns to the
// start edge; an open fan (v on a mesh boundary, where the outermost edges'
// open sides self-reference) is walked to one end and then from the start to
// the other end, so the anchor's position within the fan does not decide how
// much of it is seen.
//
// Complexity: O(vertex valence).
func IncidentEdges(m *mesh.Mesh, v mesh.VertexHandle) ([]mesh.EdgeHandle, error) {
	vert, ok := m.Vertex(v)
	if !ok {
		return nil, mesh.NewError(mesh.KindStaleHandle, "IncidentEdges", v.ID, mesh.ErrStaleHandle)
	}
	if vert.Edge.IsNil() {
		return []mesh.EdgeHandle{}, nil
	}

	start := vert.Edge
	visited := make(map[mesh.EdgeHandle]bool)

	arrivalSide, closed, err := walkFan(m, v, start, visited, true, false)
	if err != nil {
		return nil, err
	}
	if closed {
		return arrivalSide, nil
	}

	// The fan is open: the remaining edges sit on the start edge's other
	// rotational side. Walk them and prepend in reverse, so the result still
	// reads as one sweep from fan end to fan end.
	departSide, _, err := walkFan(m, v, start, visited, false, true)
	if err != nil {
		return nil, err
	}

	out := make([]mesh.EdgeHandle, 0, len(arrivalSide)+len(departSide))
	for i := len(departSide) - 1; i >= 0; i-- {
		out = append(out, departSide[i])
	}
	out = append(out, arrivalSide...)

	return out, nil
}

// walkFan rotates around v from start, following the arrival-side links
// (prev at v's endpoint) when viaPrev is true and the departure-side links
// (next on the opposite wing pair) otherwise. It stops on returning to
// start (closed true), on an edge whose link self-references (an open fan
// end), and reports an inconsistency if a hop would revisit an edge.
// skipStart suppresses re-emitting the start edge on the second,
// opposite-direction pass over an open fan.
func walkFan(m *mesh.Mesh, v mesh.VertexHandle, start mesh.EdgeHandle, visited map[mesh.EdgeHandle]bool, viaPrev, skipStart bool) ([]mesh.EdgeHandle, bool, error) {
	var out []mesh.EdgeHandle
	cur := start

	for i := 0; ; i++ {
		if i > 0 && cur == start {
			return out, true, nil
		}
		isSkippedStart := skipStart && i == 0
		if visited[cur] && !isSkippedStart {
			return nil, false, mesh.NewError(mesh.KindInconsistency, "IncidentEdges", v.ID, mesh.ErrInconsistentWing)
		}
		visited[cur] = true
		if !isSkippedStart {
			out = append(out, cur)
		}

		e, ok := m.Edge(cur)
		if !ok {
			return nil, false, mesh.NewError(mesh.KindInconsistency, "IncidentEdges", v.ID, mesh.ErrInconsistentWing)
		}

		var next mesh.EdgeHandle
		switch v {
		case e.V1:
			if viaPrev {
				next = e.PrevAtV1OnF1
			} else {
				next = e.NextAtV2OnF2
			}
		case e.V2:
			if viaPrev {
				next = e.PrevAtV2OnF2
			} else {
				next = e.NextAtV1OnF1
			}
		default:
			return nil, false, mesh.NewError(mesh.KindInconsistency, "IncidentEdges", v.ID, mesh.ErrInconsistentWing)
		}
		if next.IsNil() {
			return nil, false, mesh.NewError(mesh.KindInconsistency, "IncidentEdges", v.ID, mesh.ErrInconsistentWing)
		}
		if next == cur {
			// This endpoint's wing self-loops: the open end of the fan.
			return out, false, nil
		}
		cur = next
	}
}

// IncidentFaces returns the distinct faces touching v, derived from its
// incident edges' F1/F2 slots, in first-encountered order.
//
// Complexity: O(vertex valence).
func IncidentFaces(m *mesh.Mesh, v mesh.VertexHandle) ([]mesh.FaceHandle, error) {
	edges, err := IncidentEdges(m, v)
	if err != nil {
		return nil, err
	}

	seen := make(map[mesh.FaceHandle]bool)
	out := make([]mesh.FaceHandle, 0, len(edges))
	for _, eh := range edges {
		e, ok := m.Edge(eh)
		if !ok {
			return nil, mesh.NewError(mesh.KindInconsistency, "IncidentFaces", v.ID, mesh.ErrInconsistentWing)
		}
		for _, f := range [2]mesh.FaceHandle{e.F1, e.F2} {
			if f.IsNil() || seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}

	return out, nil
}
