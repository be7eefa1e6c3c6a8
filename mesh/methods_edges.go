// File: methods_edges.go
// Role: Edge pool lifecycle & queries.
package mesh

// AddEdge allocates a new Edge with the given endpoints and (possibly
// absent) adjacent faces, with all four wing links zero (to be stitched by
// the caller — an Euler operator). Returns the new edge's handle and a live
// pointer for wing stitching.
//
// Complexity: O(1) amortized.
func (m *Mesh) AddEdge(v1, v2 VertexHandle, f1, f2 FaceHandle) (EdgeHandle, *Edge) {
	m.muEdges.Lock()
	defer m.muEdges.Unlock()

	id := uint64(len(m.edges)) + 1
	gen := uint32(1)
	h := EdgeHandle{ID: id, Gen: gen}
	e := &Edge{Handle: h, V1: v1, V2: v2, F1: f1, F2: f2}
	m.edges = append(m.edges, e)
	m.edgeGen = append(m.edgeGen, gen)
	m.liveE++

	return h, e
}

// Edge resolves a handle to its live Edge, or false if nil/out of
// range/stale.
//
// Complexity: O(1).
func (m *Mesh) Edge(h EdgeHandle) (*Edge, bool) {
	if h.IsNil() {
		return nil, false
	}

	m.muEdges.RLock()
	defer m.muEdges.RUnlock()

	idx := int(h.ID) - 1
	if idx < 0 || idx >= len(m.edges) {
		return nil, false
	}
	if m.edgeGen[idx] != h.Gen {
		return nil, false
	}
	e := m.edges[idx]
	if e == nil {
		return nil, false
	}

	return e, true
}

// Edges returns all live edges in creation order.
//
// Complexity: O(E).
func (m *Mesh) Edges() []*Edge {
	m.muEdges.RLock()
	defer m.muEdges.RUnlock()

	out := make([]*Edge, 0, m.liveE)
	for _, e := range m.edges {
		if e != nil {
			out = append(out, e)
		}
	}

	return out
}

// RemoveEdge bumps the slot's generation and clears it, invalidating any
// outstanding handle. Used by the KEF Euler operator (both its two-sided and
// boundary-variant forms).
//
// Complexity: O(1).
func (m *Mesh) RemoveEdge(h EdgeHandle) bool {
	m.muEdges.Lock()
	defer m.muEdges.Unlock()

	idx := int(h.ID) - 1
	if idx < 0 || idx >= len(m.edges) || m.edgeGen[idx] != h.Gen || m.edges[idx] == nil {
		return false
	}
	m.edges[idx] = nil
	m.edgeGen[idx]++
	m.liveE--

	return true
}
