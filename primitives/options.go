// File: options.go
// Role: functional options for FromPolygonSoup.
//
// Contract (mirrors the kernel's ambient builder convention):
//   - Options are functional (type Option func(*soupConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//   - FromPolygonSoup itself never panics.
package primitives

import "github.com/winged/brep/geom"

// Option customizes FromPolygonSoup's vertex-welding and orientation
// behavior before construction begins.
type Option func(cfg *soupConfig)

type soupConfig struct {
	weldTolerance float64
	normalHint    geom.Vec3
	hasNormalHint bool
}

func defaultSoupConfig() *soupConfig {
	return &soupConfig{weldTolerance: 1e-9}
}

// WithWeldTolerance sets the distance under which two soup vertex positions
// are treated as the same mesh vertex. Panics on a negative tolerance.
func WithWeldTolerance(tol float64) Option {
	if tol < 0 {
		panic("primitives: WithWeldTolerance(negative)")
	}
	return func(c *soupConfig) {
		c.weldTolerance = tol
	}
}

// WithOrientationHint supplies a reference direction used only to decide,
// for the very first polygon of the soup, whether its vertex order already
// matches the intended outward sense, reversing it if not. No other polygon
// is reoriented: one that then walks a shared edge in the same direction as
// its neighbour is rejected with ErrUnstitchableEdge. Panics on the zero
// vector.
func WithOrientationHint(dir geom.Vec3) Option {
	if dir.Length() < 1e-12 {
		panic("primitives: WithOrientationHint(zero vector)")
	}
	return func(c *soupConfig) {
		c.normalHint = dir.Normalize()
		c.hasNormalHint = true
	}
}
