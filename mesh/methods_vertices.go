// File: methods_vertices.go
// Role: Vertex pool lifecycle & queries.
//
// Determinism:
//   - Vertices() returns live vertices in creation order (ascending id).
package mesh

import "github.com/winged/brep/geom"

// AddVertex allocates a new Vertex at the given position and returns its
// handle. This is the only way to bring a Vertex into existence; it is used
// internally by the MVSF and MEV Euler operators.
//
// Complexity: O(1) amortized.
func (m *Mesh) AddVertex(pos geom.Vec3) VertexHandle {
	m.muVertices.Lock()
	defer m.muVertices.Unlock()

	id := uint64(len(m.vertices)) + 1
	gen := uint32(1)
	h := VertexHandle{ID: id, Gen: gen}
	m.vertices = append(m.vertices, &Vertex{Handle: h, Position: pos})
	m.vertexGen = append(m.vertexGen, gen)
	m.liveV++

	return h
}

// Vertex resolves a handle to its live Vertex. The second return is false if
// the handle is nil, out of range, or stale (the slot was deleted or
// reused with a newer generation).
//
// Complexity: O(1).
func (m *Mesh) Vertex(h VertexHandle) (*Vertex, bool) {
	if h.IsNil() {
		return nil, false
	}

	m.muVertices.RLock()
	defer m.muVertices.RUnlock()

	idx := int(h.ID) - 1
	if idx < 0 || idx >= len(m.vertices) {
		return nil, false
	}
	if m.vertexGen[idx] != h.Gen {
		return nil, false
	}
	v := m.vertices[idx]
	if v == nil {
		return nil, false
	}

	return v, true
}

// SetPosition edits a vertex's position in place. This has no topological
// side effects and never invalidates cached face normals of
// faces that do not recompute from this vertex's position until their own
// boundary is next mutated; callers who need normals refreshed after a
// position edit should call Mesh.RefreshNormal explicitly.
//
// Complexity: O(1).
func (m *Mesh) SetPosition(h VertexHandle, pos geom.Vec3) bool {
	v, ok := m.Vertex(h)
	if !ok {
		return false
	}
	m.muVertices.Lock()
	defer m.muVertices.Unlock()
	v.Position = pos

	return true
}

// Vertices returns all live vertices in creation order. The returned slice
// is a fresh snapshot; pointers are shared with the pool by convention
// (mutate only via sanctioned Mesh/euler operations).
//
// Complexity: O(V).
func (m *Mesh) Vertices() []*Vertex {
	m.muVertices.RLock()
	defer m.muVertices.RUnlock()

	out := make([]*Vertex, 0, m.liveV)
	for _, v := range m.vertices {
		if v != nil {
			out = append(out, v)
		}
	}

	return out
}

// removeVertex bumps the slot's generation and clears it, invalidating any
// outstanding handle. Unexported: the Euler operator set never kills a
// vertex directly (no KEV operator), and nothing in the repository calls
// this primitive.
func (m *Mesh) removeVertex(h VertexHandle) bool {
	m.muVertices.Lock()
	defer m.muVertices.Unlock()

	idx := int(h.ID) - 1
	if idx < 0 || idx >= len(m.vertices) || m.vertexGen[idx] != h.Gen || m.vertices[idx] == nil {
		return false
	}
	m.vertices[idx] = nil
	m.vertexGen[idx]++
	m.liveV--

	return true
}
