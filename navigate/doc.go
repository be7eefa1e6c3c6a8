// Package navigate implements the pure, read-only adjacency queries:
// IncidentEdges, IncidentFaces, BoundaryEdges, and BoundaryVertices.
// None of these mutate the mesh; each walks wing links
// starting from a single stored handle and terminates by returning to its
// start, by reaching a self-referencing open end (IncidentEdges on an open
// fan), or by reporting mesh.KindInconsistency the moment it would revisit a
// state without having returned — so a corrupted mesh is surfaced as an
// error rather than hanging the caller.
package navigate
