// File: kfmrh.go
// Role: Kill-Face-Make-Ring-Hole — absorbs an inner face's boundary into an
// outer face as a hole, raising the genus.
package euler

import "github.com/winged/brep/mesh"

// KFMRH removes face inner and folds its boundary loop into face outer as
// an additional inner boundary (a hole): every edge that referenced inner
// now references outer, and outer gains one more independent boundary-loop
// start handle. Genus increases by one, modelling a handle/through-hole
// that connects what had been two separate boundary rings on one shell.
//
// Preconditions: inner and outer live and distinct; their boundary-vertex
// sets are disjoint (the simplest sufficient witness that inner is not
// already reachable from outer's own boundary walk, i.e. that merging them
// creates a hole rather than re-deriving an existing adjacency).
//
// Postconditions: F-1, G+1; V, E, S unchanged. outer's cached normal is
// unaffected (its outer ring is untouched); inner's former ring keeps its
// existing wing links, just relabelled to outer.
//
// Complexity: O(E) — scans every edge once, as KEF does, plus O(boundary
// length) for the disjointness check.
func KFMRH(m *mesh.Mesh, inner, outer mesh.FaceHandle) error {
	if inner.IsNil() || outer.IsNil() {
		return mesh.NewError(mesh.KindBadArgument, "KFMRH", 0, mesh.ErrNilHandle)
	}
	if inner == outer {
		return mesh.NewError(mesh.KindBadArgument, "KFMRH", inner.ID, mesh.ErrSameFace)
	}
	innerRec, ok := m.Face(inner)
	if !ok {
		return mesh.NewError(mesh.KindStaleHandle, "KFMRH", inner.ID, mesh.ErrStaleHandle)
	}
	outerRec, ok := m.Face(outer)
	if !ok {
		return mesh.NewError(mesh.KindStaleHandle, "KFMRH", outer.ID, mesh.ErrStaleHandle)
	}

	_, innerVerts, _, err := m.WalkFaceBoundary(inner)
	if err != nil {
		return err
	}
	_, outerVerts, _, err := m.WalkFaceBoundary(outer)
	if err != nil {
		return err
	}

	seen := make(map[mesh.VertexHandle]bool, len(outerVerts))
	for _, v := range outerVerts {
		seen[v] = true
	}
	for _, v := range innerVerts {
		if seen[v] {
			return mesh.NewError(mesh.KindTopologyViolation, "KFMRH", inner.ID, mesh.ErrBoundariesTouch)
		}
	}

	innerBoundary := innerRec.Boundary

	for _, other := range m.Edges() {
		if other.F1 == inner {
			other.F1 = outer
		}
		if other.F2 == inner {
			other.F2 = outer
		}
	}

	if !innerBoundary.IsNil() {
		outerRec.InnerBoundaries = append(outerRec.InnerBoundaries, innerBoundary)
	}
	// Rings the absorbed face already carried stay rings, now of outer.
	outerRec.InnerBoundaries = append(outerRec.InnerBoundaries, innerRec.InnerBoundaries...)

	m.RemoveFace(inner)
	m.IncrementGenus()

	return nil
}
