// Package validate implements the mesh-wide consistency checks: Validate
// (the Euler-Poincare invariant plus wing-link mutual consistency and
// normal-cache freshness) and IsManifold (the stricter per-edge,
// per-face-cycle-consistency predicate). Both are read-only: they never
// mutate the mesh they inspect.
package validate
