// File: wings.go
// Role: small role-indexed accessors over a mesh.Edge's four wing links,
// shared by every operator in this package so the MEV/MEF/KEF/KFMRH wiring
// code can talk about "the field naming the next/prev edge at this vertex,
// on this face" without a wall of repeated if/else on F1 vs F2.
package euler

import "github.com/winged/brep/mesh"

// roleAt reports how edge e touches vertex v with respect to face f: isF1
// true means v == e.V1 && e.F1 == f (the "V1 on F1" pairing); isF1 false
// means v == e.V2 && e.F2 == f. ok is false if neither pairing holds.
func roleAt(e *mesh.Edge, v mesh.VertexHandle, f mesh.FaceHandle) (isF1, ok bool) {
	if e.V1 == v && e.F1 == f {
		return true, true
	}
	if e.V2 == v && e.F2 == f {
		return false, true
	}
	return false, false
}

// arrivalRoleAt reports how edge e's walk on face f arrives at vertex v:
// isF1 true means its F1 side (walked V1->V2) arrives at v, i.e. v == e.V2
// && e.F1 == f; isF1 false means its F2 side (walked V2->V1) arrives at v,
// i.e. v == e.V1 && e.F2 == f. ok is false if neither pairing holds. This is
// roleAt's mirror: roleAt finds the role that departs from v, this one
// finds the role that arrives at it.
func arrivalRoleAt(e *mesh.Edge, v mesh.VertexHandle, f mesh.FaceHandle) (isF1, ok bool) {
	if e.V2 == v && e.F1 == f {
		return true, true
	}
	if e.V1 == v && e.F2 == f {
		return false, true
	}
	return false, false
}

// prevAt returns e's prev-link for the given side.
func prevAt(e *mesh.Edge, isF1 bool) mesh.EdgeHandle {
	if isF1 {
		return e.PrevAtV1OnF1
	}
	return e.PrevAtV2OnF2
}

// nextAt returns e's next-link for the given side.
func nextAt(e *mesh.Edge, isF1 bool) mesh.EdgeHandle {
	if isF1 {
		return e.NextAtV1OnF1
	}
	return e.NextAtV2OnF2
}

// setPrevAt assigns e's prev-link for the given side.
func setPrevAt(e *mesh.Edge, isF1 bool, h mesh.EdgeHandle) {
	if isF1 {
		e.PrevAtV1OnF1 = h
	} else {
		e.PrevAtV2OnF2 = h
	}
}

// setNextAt assigns e's next-link for the given side.
func setNextAt(e *mesh.Edge, isF1 bool, h mesh.EdgeHandle) {
	if isF1 {
		e.NextAtV1OnF1 = h
	} else {
		e.NextAtV2OnF2 = h
	}
}
