// File: face.go
// Role: face-centric adjacency — the edges and vertices bounding a face.
package navigate

import "github.com/winged/brep/mesh"

// BoundaryEdges returns face f's outer boundary in walk order, by
// delegating to mesh.WalkFaceBoundary (the same primitive the kernel uses
// to recompute cached normals). A face with no boundary yet (freshly seeded
// by MVSF) returns an empty, non-nil slice.
//
// Complexity: O(boundary length).
func BoundaryEdges(m *mesh.Mesh, f mesh.FaceHandle) ([]mesh.EdgeHandle, error) {
	edges, _, _, err := m.WalkFaceBoundary(f)
	if err != nil {
		return nil, err
	}
	if edges == nil {
		edges = []mesh.EdgeHandle{}
	}

	return edges, nil
}

// BoundaryVertices returns the departure vertex of each step of face f's
// outer boundary walk: v1 when the step is on the F1 side, v2 on the F2
// side.
//
// Complexity: O(boundary length).
func BoundaryVertices(m *mesh.Mesh, f mesh.FaceHandle) ([]mesh.VertexHandle, error) {
	_, verts, _, err := m.WalkFaceBoundary(f)
	if err != nil {
		return nil, err
	}
	if verts == nil {
		verts = []mesh.VertexHandle{}
	}

	return verts, nil
}

// InnerBoundaryLoops returns, for each inner boundary ring folded into f by
// a prior KFMRH, the ordered edge sequence of that ring. This supplements
// the single-ring BoundaryEdges for faces with holes.
//
// Complexity: O(total hole boundary length).
func InnerBoundaryLoops(m *mesh.Mesh, f mesh.FaceHandle) ([][]mesh.EdgeHandle, error) {
	face, ok := m.Face(f)
	if !ok {
		return nil, mesh.NewError(mesh.KindStaleHandle, "InnerBoundaryLoops", f.ID, mesh.ErrStaleHandle)
	}

	loops := make([][]mesh.EdgeHandle, 0, len(face.InnerBoundaries))
	for _, start := range face.InnerBoundaries {
		// The ring's cycle is unreachable from f.Boundary, so anchor the walk
		// at the ring's own stored start edge.
		loop, _, _, err := m.WalkBoundaryFrom(start, f)
		if err != nil {
			return nil, err
		}
		loops = append(loops, loop)
	}

	return loops, nil
}
