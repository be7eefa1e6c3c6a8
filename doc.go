// Package brep is a boundary-representation (B-rep) solid modeling kernel:
// a winged-edge topological mesh, the five Euler operators that are the
// only sanctioned way to mutate it, pure navigation queries over it, and
// structural/manifold validation.
//
// Under the hood, everything is organized under six subpackages:
//
//	geom/       — Vec3 and Newell's-method polygon normal/area
//	mesh/       — Vertex/Edge/Face pools, generational handles, the Mesh container
//	euler/      — MVSF, MEV, MEF, KEF (and its boundary variant), KFMRH
//	navigate/   — IncidentEdges, IncidentFaces, BoundaryEdges, BoundaryVertices, ShellCount
//	validate/   — Validate and IsManifold
//	primitives/ — Cube, Plane, FromPolygonSoup
//
// Every exported mutator lives in euler; mesh's own pool methods
// (AddVertex, AddEdge, AddFace and their removal counterparts) are building
// blocks the operators compose, not an alternate public API — callers
// assembling a solid should go through euler and primitives, and inspect it
// through navigate and validate.
//
//	go get github.com/winged/brep
package brep
