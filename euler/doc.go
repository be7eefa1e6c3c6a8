// Package euler implements the five Euler operators that are the only
// sanctioned way to mutate a mesh.Mesh's topology: MVSF, MEV, MEF, KEF (and
// its boundary variant), and KFMRH. Each operator validates its
// preconditions before touching anything, applies its topological delta by
// stitching winged-edge links directly, refreshes any face normal its
// boundary change invalidated, and returns a *mesh.KernelError (never a bare
// error) on failure.
//
// MVSF, MEV, MEF and KEF preserve the Euler-Poincare invariant
// V - E + F = 2*(S - G) for any closed shell they touch. KFMRH preserves it
// in the ring-aware form V - E + F - R = 2*(S - G), R being the inner rings
// folded into faces, which is the form validate.Validate checks. KEFBoundary
// can leave isolated vertices with no seed face, for which neither form
// holds.
package euler
