// Package mesh implements the winged-edge entity pools and Mesh container
// that anchor the B-rep kernel: Vertex, Edge, and Face records addressed by
// generational handles, owned exclusively by a Mesh.
//
// Mesh is a single-owner, single-threaded resource: concurrent read-only
// queries across goroutines are safe, but concurrent mutation of the same
// Mesh requires external mutual exclusion.
//
// This package only allocates, looks up, counts, and reclaims entities. The
// topology-preserving mutators (MVSF, MEV, MEF, KEF, KFMRH) live in the
// sibling euler package; pure traversal lives in navigate; consistency
// checks live in validate.
package mesh
