// File: manifold.go
// Role: IsManifold — a stricter, independent cross-check of Validate's
// wing-consistency finding, in the spirit of a dense adjacency-matrix
// edge-counting census (tallying a square matrix's non-zero cells), except
// the tally here is keyed by edge handle rather than by matrix cell: every
// live edge must be encountered by exactly as many face-boundary walks as
// it has non-nil face slots (one for a boundary edge, two for an interior
// edge — and two for a still-dangling spur, since a face's own boundary
// walk passes through such an edge twice).
package validate

import (
	"github.com/winged/brep/mesh"
	"github.com/winged/brep/navigate"
)

// IsManifold runs Validate first, then performs the independent edge-census
// cross-check described above. A mismatch (an edge walked a different
// number of times than its face-slot arity predicts — too few meaning a
// dangling/unreachable wing, too many meaning a bowtie or duplicate
// reference) is reported as a topology violation distinct from Validate's
// own inconsistency findings, since it encodes a genuine non-manifold
// adjacency rather than a corrupted pointer.
func IsManifold(m *mesh.Mesh) error {
	if err := Validate(m); err != nil {
		return err
	}

	census := make(map[mesh.EdgeHandle]int)

	for _, f := range m.Faces() {
		edges, _, _, err := m.WalkFaceBoundary(f.Handle)
		if err != nil {
			return err
		}
		for _, eh := range edges {
			census[eh]++
		}
		for _, start := range f.InnerBoundaries {
			loop, _, _, err := m.WalkBoundaryFrom(start, f.Handle)
			if err != nil {
				return err
			}
			for _, eh := range loop {
				census[eh]++
			}
		}
	}

	for _, e := range m.Edges() {
		want := 0
		if !e.F1.IsNil() {
			want++
		}
		if !e.F2.IsNil() {
			want++
		}
		if census[e.Handle] != want {
			return mesh.NewError(mesh.KindTopologyViolation, "IsManifold", e.Handle.ID, mesh.ErrInconsistentWing)
		}
	}

	degree := make(map[mesh.VertexHandle]int)
	for _, e := range m.Edges() {
		degree[e.V1]++
		degree[e.V2]++
	}

	for _, v := range m.Vertices() {
		edges, err := navigate.IncidentEdges(m, v.Handle)
		if err != nil {
			return err
		}
		// A bow-tie vertex (two disjoint fans sharing v) has an incident-edges
		// walk that closes into a single cycle well short of v's true degree:
		// the walk only ever follows the wing chain of the fan it started in.
		if len(edges) != degree[v.Handle] {
			return mesh.NewError(mesh.KindTopologyViolation, "IsManifold", v.Handle.ID, mesh.ErrInconsistentWing)
		}
	}

	return nil
}
