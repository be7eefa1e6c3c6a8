// File: validate.go
// Role: Validate — the baseline consistency check every kernel client is
// expected to run after a batch of Euler operator calls (or after loading a
// mesh from an untrusted source).
package validate

import (
	"github.com/winged/brep/geom"
	"github.com/winged/brep/mesh"
	"github.com/winged/brep/navigate"
)

const normalTolerance = 1e-6

// Validate checks the invariants a kernel client can rely on holding between
// Euler operator calls:
//
//  1. Referential closure and endpoint consistency: every handle stored in a
//     live entity resolves to a live entity, no edge has identical
//     endpoints, no edge has both face slots absent, and a vertex's stored
//     incident edge really has that vertex as an endpoint.
//  2. For a fully closed mesh (no edge has an absent face slot), the
//     Euler-Poincare invariant V - E + F - R == 2*(S - G), where R counts
//     the inner rings KFMRH has folded into faces. This does not apply to a
//     mesh with open boundary (e.g. one built by FromPolygonSoup from
//     unclosed polygons), where the formula has no single closed-surface
//     form, so the check is skipped rather than misapplied.
//  3. Every live face's boundary walk terminates (forward via next_* links)
//     without detecting an inconsistency.
//  4. The reverse walk (via prev_* links) visits the same edge set as the
//     forward walk, for every live face.
//  5. Every live face's cached normal matches a fresh Newell recomputation
//     from its current boundary, within tolerance.
//
// Returns nil if all hold, or the first *mesh.KernelError encountered.
func Validate(m *mesh.Mesh) error {
	if err := checkReferences(m); err != nil {
		return err
	}
	if err := checkEulerInvariant(m); err != nil {
		return err
	}

	for _, f := range m.Faces() {
		forward, verts, _, err := m.WalkFaceBoundary(f.Handle)
		if err != nil {
			return err
		}

		reverse, err := walkFaceBoundaryReverse(m, f.Handle)
		if err != nil {
			return err
		}
		if !sameEdgeSet(forward, reverse) {
			return mesh.NewError(mesh.KindInconsistency, "Validate", f.Handle.ID, mesh.ErrInconsistentWing)
		}

		if len(verts) > 0 {
			positions := make([]geom.Vec3, 0, len(verts))
			for _, vh := range verts {
				v, ok := m.Vertex(vh)
				if !ok {
					return mesh.NewError(mesh.KindInconsistency, "Validate", f.Handle.ID, mesh.ErrInconsistentWing)
				}
				positions = append(positions, v.Position)
			}
			fresh := geom.NewellNormal(positions)
			if !fresh.Equal(f.Normal(), normalTolerance) {
				return mesh.NewError(mesh.KindInconsistency, "Validate", f.Handle.ID, mesh.ErrInconsistentWing)
			}
		}
	}

	return nil
}

// checkReferences is the O(V + E + F) referential-closure pass: every stored
// handle must resolve, and the cheap per-record shape rules must hold.
func checkReferences(m *mesh.Mesh) error {
	for _, v := range m.Vertices() {
		if v.Edge.IsNil() {
			continue
		}
		e, ok := m.Edge(v.Edge)
		if !ok {
			return mesh.NewError(mesh.KindInconsistency, "Validate", v.Handle.ID, mesh.ErrStaleHandle)
		}
		if e.V1 != v.Handle && e.V2 != v.Handle {
			return mesh.NewError(mesh.KindInconsistency, "Validate", v.Handle.ID, mesh.ErrInconsistentWing)
		}
	}

	for _, e := range m.Edges() {
		if e.V1 == e.V2 {
			return mesh.NewError(mesh.KindInconsistency, "Validate", e.Handle.ID, mesh.ErrIdenticalEndpoint)
		}
		if _, ok := m.Vertex(e.V1); !ok {
			return mesh.NewError(mesh.KindInconsistency, "Validate", e.Handle.ID, mesh.ErrStaleHandle)
		}
		if _, ok := m.Vertex(e.V2); !ok {
			return mesh.NewError(mesh.KindInconsistency, "Validate", e.Handle.ID, mesh.ErrStaleHandle)
		}
		if e.F1.IsNil() && e.F2.IsNil() {
			return mesh.NewError(mesh.KindInconsistency, "Validate", e.Handle.ID, mesh.ErrInconsistentWing)
		}
		for _, fh := range [2]mesh.FaceHandle{e.F1, e.F2} {
			if fh.IsNil() {
				continue
			}
			if _, ok := m.Face(fh); !ok {
				return mesh.NewError(mesh.KindInconsistency, "Validate", e.Handle.ID, mesh.ErrStaleHandle)
			}
		}
		for _, wh := range [4]mesh.EdgeHandle{e.PrevAtV1OnF1, e.NextAtV1OnF1, e.PrevAtV2OnF2, e.NextAtV2OnF2} {
			if wh.IsNil() {
				continue
			}
			if _, ok := m.Edge(wh); !ok {
				return mesh.NewError(mesh.KindInconsistency, "Validate", e.Handle.ID, mesh.ErrStaleHandle)
			}
		}
	}

	for _, f := range m.Faces() {
		for _, bh := range append([]mesh.EdgeHandle{f.Boundary}, f.InnerBoundaries...) {
			if bh.IsNil() {
				continue
			}
			e, ok := m.Edge(bh)
			if !ok {
				return mesh.NewError(mesh.KindInconsistency, "Validate", f.Handle.ID, mesh.ErrStaleHandle)
			}
			if e.F1 != f.Handle && e.F2 != f.Handle {
				return mesh.NewError(mesh.KindInconsistency, "Validate", f.Handle.ID, mesh.ErrInconsistentWing)
			}
		}
	}

	return nil
}

func checkEulerInvariant(m *mesh.Mesh) error {
	// The 2*(S-G) form of the invariant only holds when every shell is
	// closed. An edge with an absent face slot means some shell has an open
	// boundary, where the Euler characteristic depends on the boundary loop
	// count too (a disk, not a sphere or torus) — not something this
	// operator-delta formula expresses. Euler operators never produce such
	// an edge themselves (MEV/MEF/KEF always leave both slots occupied, a
	// spur included); only a directly-assembled open mesh can.
	for _, e := range m.Edges() {
		if e.F1.IsNil() || e.F2.IsNil() {
			return nil
		}
	}

	v := m.VertexCount()
	e := m.EdgeCount()
	f := m.FaceCount()
	g := m.Genus()

	// Each inner ring KFMRH folds into a face lowers the face count without
	// touching V or E; the ring count restores the books.
	r := 0
	for _, face := range m.Faces() {
		r += len(face.InnerBoundaries)
	}

	s, err := navigate.ShellCount(m)
	if err != nil {
		return err
	}

	if v-e+f-r != 2*(s-g) {
		return mesh.NewError(mesh.KindInconsistency, "Validate", 0, mesh.ErrInconsistentWing)
	}

	return nil
}

// walkFaceBoundaryReverse walks face f's boundary backwards via the prev_*
// links, mirroring the forward walk, and returns the edges visited (in
// reverse order, which sameEdgeSet treats as equivalent). The preceding
// step's side is resolved the same way the forward walk resolves its
// successor: by matching the vertex the steps share — the previous step
// arrives at the current step's departure vertex — never by face slots
// alone, which cannot distinguish a spur's two passes.
func walkFaceBoundaryReverse(m *mesh.Mesh, f mesh.FaceHandle) ([]mesh.EdgeHandle, error) {
	face, ok := m.Face(f)
	if !ok {
		return nil, mesh.NewError(mesh.KindStaleHandle, "Validate", f.ID, mesh.ErrStaleHandle)
	}
	if face.Boundary.IsNil() {
		return nil, nil
	}

	start, ok := m.Edge(face.Boundary)
	if !ok {
		return nil, mesh.NewError(mesh.KindInconsistency, "Validate", f.ID, mesh.ErrInconsistentWing)
	}
	onF1 := start.F1 == f
	if !onF1 && start.F2 != f {
		return nil, mesh.NewError(mesh.KindInconsistency, "Validate", f.ID, mesh.ErrInconsistentWing)
	}

	type state struct {
		edge mesh.EdgeHandle
		onF1 bool
	}
	cur := state{face.Boundary, onF1}
	startState := cur
	visited := make(map[state]bool)
	var out []mesh.EdgeHandle

	for i := 0; ; i++ {
		if i > 0 && cur == startState {
			break
		}
		if visited[cur] {
			return nil, mesh.NewError(mesh.KindInconsistency, "Validate", f.ID, mesh.ErrInconsistentWing)
		}
		visited[cur] = true

		e, ok := m.Edge(cur.edge)
		if !ok {
			return nil, mesh.NewError(mesh.KindInconsistency, "Validate", f.ID, mesh.ErrInconsistentWing)
		}
		out = append(out, cur.edge)

		var depart mesh.VertexHandle
		var prev mesh.EdgeHandle
		if cur.onF1 {
			depart = e.V1
			prev = e.PrevAtV1OnF1
		} else {
			depart = e.V2
			prev = e.PrevAtV2OnF2
		}
		if prev.IsNil() {
			return nil, mesh.NewError(mesh.KindInconsistency, "Validate", f.ID, mesh.ErrInconsistentWing)
		}
		pe, ok := m.Edge(prev)
		if !ok {
			return nil, mesh.NewError(mesh.KindInconsistency, "Validate", f.ID, mesh.ErrInconsistentWing)
		}

		var prevOnF1 bool
		switch {
		case pe.V2 == depart && pe.F1 == f:
			prevOnF1 = true
		case pe.V1 == depart && pe.F2 == f:
			prevOnF1 = false
		default:
			return nil, mesh.NewError(mesh.KindInconsistency, "Validate", f.ID, mesh.ErrInconsistentWing)
		}
		cur = state{prev, prevOnF1}
	}

	return out, nil
}

func sameEdgeSet(a, b []mesh.EdgeHandle) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[mesh.EdgeHandle]int, len(a))
	for _, h := range a {
		counts[h]++
	}
	for _, h := range b {
		counts[h]--
	}
	for _, c := range counts {
		if c != 0 {
			return false
		}
	}

	return true
}
