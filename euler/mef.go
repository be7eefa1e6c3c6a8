// File: mef.go
// Role: Make-Edge-Face — closes a chord between two vertices already on the
// same face's boundary, splitting that face into two.
package euler

import "github.com/winged/brep/mesh"

// MEF creates a new edge (a, b) between two vertices already reachable on
// face f's boundary walk and a new face f2, splitting f's boundary cycle
// into two: one sub-cycle keeps f's identity, the other becomes f2's.
//
// Tie-break: f retains whichever of the two sub-cycles
// contains f's current Boundary edge (equivalently, the sub-cycle "traversed
// first" starting from that handle); f2 receives the other.
//
// Preconditions: a, b, f live; a != b; both a and b must occur (at least
// once) as departure vertices of f's boundary walk.
//
// Postconditions: E+1, F+1; V, S, G unchanged. Both faces' cached normals
// are refreshed.
//
// Complexity: O(boundary length of f).
func MEF(m *mesh.Mesh, a, b mesh.VertexHandle, f mesh.FaceHandle) (mesh.EdgeHandle, mesh.FaceHandle, error) {
	if a.IsNil() || b.IsNil() || f.IsNil() {
		return mesh.EdgeHandle{}, mesh.FaceHandle{}, mesh.NewError(mesh.KindBadArgument, "MEF", 0, mesh.ErrNilHandle)
	}
	if a == b {
		return mesh.EdgeHandle{}, mesh.FaceHandle{}, mesh.NewError(mesh.KindBadArgument, "MEF", a.ID, mesh.ErrIdenticalEndpoint)
	}
	if _, ok := m.Vertex(a); !ok {
		return mesh.EdgeHandle{}, mesh.FaceHandle{}, mesh.NewError(mesh.KindStaleHandle, "MEF", a.ID, mesh.ErrStaleHandle)
	}
	if _, ok := m.Vertex(b); !ok {
		return mesh.EdgeHandle{}, mesh.FaceHandle{}, mesh.NewError(mesh.KindStaleHandle, "MEF", b.ID, mesh.ErrStaleHandle)
	}
	if _, ok := m.Face(f); !ok {
		return mesh.EdgeHandle{}, mesh.FaceHandle{}, mesh.NewError(mesh.KindStaleHandle, "MEF", f.ID, mesh.ErrStaleHandle)
	}

	edges, verts, sides, err := m.WalkFaceBoundary(f)
	if err != nil {
		return mesh.EdgeHandle{}, mesh.FaceHandle{}, err
	}
	n := len(edges)

	ia, ib := -1, -1
	for i, vh := range verts {
		if vh == a && ia == -1 {
			ia = i
		}
		if vh == b && ib == -1 {
			ib = i
		}
	}
	if ia == -1 || ib == -1 || ia == ib {
		return mesh.EdgeHandle{}, mesh.FaceHandle{}, mesh.NewError(mesh.KindTopologyViolation, "MEF", f.ID, mesh.ErrNotOnBoundary)
	}

	// chainAB: walk positions [ia, ib) circularly (a's chain up to b).
	// chainBA: walk positions [ib, ia) circularly (b's chain up to a).
	inChainAB := func(idx int) bool {
		if ia < ib {
			return idx >= ia && idx < ib
		}
		return idx >= ia || idx < ib
	}

	containsZero := inChainAB(0)

	lastIdx := func(lo int) int { return (lo - 1 + n) % n }

	firstAB := edges[ia]
	lastAB := edges[lastIdx(ib)]
	firstBA := edges[ib]
	lastBA := edges[lastIdx(ia)]

	firstABSide := sides[ia]
	lastABSide := sides[lastIdx(ib)]
	firstBASide := sides[ib]
	lastBASide := sides[lastIdx(ia)]

	firstABEdge, _ := m.Edge(firstAB)
	lastABEdge, _ := m.Edge(lastAB)
	firstBAEdge, _ := m.Edge(firstBA)
	lastBAEdge, _ := m.Edge(lastBA)

	// faceForBA keeps chain_from_b_to_a and is addressed by the new edge's F1
	// side (walked a->b); faceForAB keeps chain_from_a_to_b and is addressed
	// by the new edge's F2 side (walked b->a).
	var fKeepIsF1 bool
	if containsZero {
		// chainAB contains the original boundary edge: f keeps chain_from_a_to_b,
		// which is addressed via the new edge's F2 side.
		fKeepIsF1 = false
	} else {
		fKeepIsF1 = true
	}

	eh, e := m.AddEdge(a, b, mesh.FaceHandle{}, mesh.FaceHandle{})
	f2, f2rec := m.AddFace()

	faceRec, _ := m.Face(f)

	if fKeepIsF1 {
		e.F1 = f
		e.F2 = f2
	} else {
		e.F1 = f2
		e.F2 = f
	}

	e.NextAtV1OnF1 = firstBA
	e.PrevAtV1OnF1 = lastBA
	e.NextAtV2OnF2 = firstAB
	e.PrevAtV2OnF2 = lastAB

	setNextAt(lastBAEdge, lastBASide, eh)
	setPrevAt(firstBAEdge, firstBASide, eh)
	setNextAt(lastABEdge, lastABSide, eh)
	setPrevAt(firstABEdge, firstABSide, eh)

	// Reassign the chain that did NOT stay with f to f2's face slot.
	if fKeepIsF1 {
		// f kept chainBA (addressed via new edge's F1); chainAB moves to f2.
		for i := ia; ; i = (i + 1) % n {
			if i == ib {
				break
			}
			reassignFaceSlot(m, edges[i], f, f2, sides[i])
		}
		f2rec.Boundary = firstAB
		faceRec.Boundary = firstBA
	} else {
		for i := ib; ; i = (i + 1) % n {
			if i == ia {
				break
			}
			reassignFaceSlot(m, edges[i], f, f2, sides[i])
		}
		f2rec.Boundary = firstBA
		faceRec.Boundary = firstAB
	}

	if err := m.RefreshNormal(f); err != nil {
		return mesh.EdgeHandle{}, mesh.FaceHandle{}, err
	}
	if err := m.RefreshNormal(f2); err != nil {
		return mesh.EdgeHandle{}, mesh.FaceHandle{}, err
	}

	return eh, f2, nil
}

// reassignFaceSlot rewrites whichever of edge eh's face slots equals from
// (per the given side flag) to to.
func reassignFaceSlot(m *mesh.Mesh, eh mesh.EdgeHandle, from, to mesh.FaceHandle, isF1 bool) {
	e, ok := m.Edge(eh)
	if !ok {
		return
	}
	if isF1 {
		if e.F1 == from {
			e.F1 = to
		}
	} else {
		if e.F2 == from {
			e.F2 = to
		}
	}
}
