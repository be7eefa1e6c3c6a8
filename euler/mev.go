// File: mev.go
// Role: Make-Edge-Vertex — grows a face's boundary by one dangling spur
// edge from an existing vertex to a brand-new one.
package euler

import (
	"github.com/winged/brep/geom"
	"github.com/winged/brep/mesh"
)

// MEV creates a new vertex w at pos, a new edge (u, w), and attaches that
// edge to face f's boundary as a dangling spur: both of the new edge's face
// slots are f, and it is traversed once outbound (u -> w) and once inbound
// (w -> u) by f's boundary walk.
//
// Preconditions: u and f must be live. If u already has an
// incident edge, that edge must itself touch f (one of its face slots must
// equal f) — the simplest sufficient witness that f's boundary walk already
// reaches u, since u is literally one of that edge's endpoints. If u is
// isolated, f must still be in its MVSF seed state (no boundary) with u as
// its recorded seed vertex; an isolated vertex cannot be on any non-empty
// boundary walk, and a seed face belongs with exactly one vertex.
//
// Postconditions: V+1, E+1; F, S, G unchanged. f's cached normal is
// refreshed.
//
// Complexity: O(boundary length of f), from the final normal refresh; the
// splice itself is O(1), touching only u's single anchor edge, if any.
func MEV(m *mesh.Mesh, u mesh.VertexHandle, pos geom.Vec3, f mesh.FaceHandle) (mesh.VertexHandle, mesh.EdgeHandle, error) {
	if u.IsNil() || f.IsNil() {
		return mesh.VertexHandle{}, mesh.EdgeHandle{}, mesh.NewError(mesh.KindBadArgument, "MEV", 0, mesh.ErrNilHandle)
	}
	uv, ok := m.Vertex(u)
	if !ok {
		return mesh.VertexHandle{}, mesh.EdgeHandle{}, mesh.NewError(mesh.KindStaleHandle, "MEV", u.ID, mesh.ErrStaleHandle)
	}
	face, ok := m.Face(f)
	if !ok {
		return mesh.VertexHandle{}, mesh.EdgeHandle{}, mesh.NewError(mesh.KindStaleHandle, "MEV", f.ID, mesh.ErrStaleHandle)
	}

	// Resolve the splice site fully before allocating anything, so a failed
	// precondition leaves the mesh untouched.
	var (
		anchor, prevEdge     *mesh.Edge
		anchorIsF1, prevIsF1 bool
	)
	if uv.Edge.IsNil() {
		if !face.Boundary.IsNil() || face.Seed != u {
			return mesh.VertexHandle{}, mesh.EdgeHandle{}, mesh.NewError(mesh.KindBadArgument, "MEV", u.ID, mesh.ErrNotSeedVertex)
		}
	} else {
		anchor, ok = m.Edge(uv.Edge)
		if !ok {
			return mesh.VertexHandle{}, mesh.EdgeHandle{}, mesh.NewError(mesh.KindInconsistency, "MEV", u.ID, mesh.ErrInconsistentWing)
		}
		if anchor.F1 != f && anchor.F2 != f {
			return mesh.VertexHandle{}, mesh.EdgeHandle{}, mesh.NewError(mesh.KindTopologyViolation, "MEV", u.ID, mesh.ErrNotOnBoundary)
		}

		anchorIsF1, ok = roleAt(anchor, u, f)
		if !ok {
			return mesh.VertexHandle{}, mesh.EdgeHandle{}, mesh.NewError(mesh.KindInconsistency, "MEV", u.ID, mesh.ErrInconsistentWing)
		}
		oldPrev := prevAt(anchor, anchorIsF1)

		prevEdge, ok = m.Edge(oldPrev)
		if !ok {
			return mesh.VertexHandle{}, mesh.EdgeHandle{}, mesh.NewError(mesh.KindInconsistency, "MEV", u.ID, mesh.ErrInconsistentWing)
		}
		// The step before anchor's departure from u is the step that arrives
		// at u, so the link to rewrite lives on prevEdge's arriving side.
		prevIsF1, ok = arrivalRoleAt(prevEdge, u, f)
		if !ok {
			return mesh.VertexHandle{}, mesh.EdgeHandle{}, mesh.NewError(mesh.KindInconsistency, "MEV", u.ID, mesh.ErrInconsistentWing)
		}
	}

	w := m.AddVertex(pos)
	eh, e := m.AddEdge(u, w, f, f)

	if anchor == nil {
		// u was isolated: e is the only edge at u, and f had no boundary yet.
		e.PrevAtV1OnF1 = eh
		e.NextAtV1OnF1 = eh
		e.PrevAtV2OnF2 = eh
		e.NextAtV2OnF2 = eh
		face.Boundary = eh
		uv.Edge = eh
	} else {
		// Splice the spur's two passes between prevEdge and anchor.
		e.PrevAtV1OnF1 = prevEdge.Handle
		e.NextAtV1OnF1 = eh
		e.PrevAtV2OnF2 = eh
		e.NextAtV2OnF2 = anchor.Handle

		setNextAt(prevEdge, prevIsF1, eh)
		setPrevAt(anchor, anchorIsF1, eh)
	}

	// w is brand new: valence 1, self-referential wing at its own endpoint.
	w2, _ := m.Vertex(w)
	w2.Edge = eh

	if err := m.RefreshNormal(f); err != nil {
		return mesh.VertexHandle{}, mesh.EdgeHandle{}, err
	}

	return w, eh, nil
}
