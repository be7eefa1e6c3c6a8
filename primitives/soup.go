// File: soup.go
// Role: FromPolygonSoup — assembles a mesh.Mesh directly from a list of
// polygon loops (each a CCW-ordered ring of positions), welding shared
// vertices and stitching shared edges into two-sided winged edges.
//
// This does not replay a sequence of euler operator calls — for an
// already-known, fully-formed solid (as opposed to the incremental
// construction MEV/MEF model), direct winged-edge assembly from each
// polygon's own vertex cycle is simpler to get right and just as valid a
// mesh.Mesh producer as the builder package's direct core.Graph assembly
// is for a graph. Cube and Plane are both thin wrappers around this.
package primitives

import (
	"fmt"

	"github.com/winged/brep/geom"
	"github.com/winged/brep/mesh"
)

type directedPair struct {
	u, v mesh.VertexHandle
}

// FromPolygonSoup builds a mesh from loops, a list of polygons each given as
// a CCW-ordered ring of positions (at least three per polygon). Positions
// within WithWeldTolerance of each other are merged into a single vertex. An
// edge shared by exactly two polygons (in opposite winding order, as a
// consistent manifold requires) becomes a two-sided winged edge; an edge
// used by only one polygon becomes a boundary edge with one face slot
// absent; an edge claimed by a third polygon, or by two polygons in the
// same winding direction, is rejected.
//
// Complexity: O(P*K*V) for the vertex weld (each of the P*K positions of P
// polygons of average size K is compared against the up to V vertices welded
// so far) plus O(P*K) for edge stitching and wiring.
func FromPolygonSoup(loops [][]geom.Vec3, opts ...Option) (*mesh.Mesh, []mesh.FaceHandle, error) {
	cfg := defaultSoupConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(loops) == 0 {
		return nil, nil, fmt.Errorf("FromPolygonSoup: %w", ErrEmptySoup)
	}

	m := mesh.NewMesh()
	var weldedPositions []geom.Vec3
	var weldedHandles []mesh.VertexHandle

	weld := func(p geom.Vec3) mesh.VertexHandle {
		for i, wp := range weldedPositions {
			if wp.Equal(p, cfg.weldTolerance) {
				return weldedHandles[i]
			}
		}
		h := m.AddVertex(p)
		weldedPositions = append(weldedPositions, p)
		weldedHandles = append(weldedHandles, h)

		return h
	}

	polyVerts := make([][]mesh.VertexHandle, len(loops))
	for pi, loop := range loops {
		distinct := map[mesh.VertexHandle]bool{}
		verts := make([]mesh.VertexHandle, 0, len(loop))
		for _, p := range loop {
			h := weld(p)
			verts = append(verts, h)
			distinct[h] = true
		}
		if len(distinct) < 3 {
			return nil, nil, fmt.Errorf("FromPolygonSoup: polygon %d: %w", pi, ErrDegeneratePolygon)
		}
		polyVerts[pi] = verts
	}

	// An orientation hint only decides the first polygon's winding; no other
	// polygon is reversed, and the edge-stitching loop below rejects any
	// polygon whose shared edges then run the same way as its neighbour's.
	if cfg.hasNormalHint && len(loops) > 0 {
		n := geom.NewellNormal(loops[0])
		if n.Dot(cfg.normalHint) < 0 {
			reverse(polyVerts[0])
		}
	}

	faces := make([]mesh.FaceHandle, len(loops))
	for pi := range loops {
		fh, _ := m.AddFace()
		faces[pi] = fh
	}

	// edgeOf maps an unordered vertex pair to its edge handle and the
	// direction (u,v) its creator used for V1,V2. The creating polygon
	// always owns the F1 (V1->V2) sense; a sharing polygon must therefore
	// walk the pair the other way and claim F2.
	type edgeEntry struct {
		handle  mesh.EdgeHandle
		v1, v2  mesh.VertexHandle
		f2Owner int // polygon index owning the F2 sense, -1 if none yet
	}
	edgeOf := make(map[directedPair]*edgeEntry)
	key := func(a, b mesh.VertexHandle) directedPair {
		if a.ID < b.ID {
			return directedPair{a, b}
		}
		return directedPair{b, a}
	}

	// polyEdgeSeq[pi][i] is the edge handle used by polygon pi between
	// verts[i] and verts[i+1], and polyEdgeSide[pi][i] is true if polygon pi
	// uses that edge's F1 (V1->V2) sense.
	polyEdgeSeq := make([][]mesh.EdgeHandle, len(loops))
	polyEdgeSide := make([][]bool, len(loops))

	for pi, verts := range polyVerts {
		n := len(verts)
		polyEdgeSeq[pi] = make([]mesh.EdgeHandle, n)
		polyEdgeSide[pi] = make([]bool, n)

		for i := 0; i < n; i++ {
			u := verts[i]
			v := verts[(i+1)%n]
			k := key(u, v)
			ent, exists := edgeOf[k]
			if !exists {
				eh, _ := m.AddEdge(u, v, faces[pi], mesh.FaceHandle{})
				edgeOf[k] = &edgeEntry{handle: eh, v1: u, v2: v, f2Owner: -1}
				polyEdgeSeq[pi][i] = eh
				polyEdgeSide[pi][i] = true

				continue
			}

			// A second polygon naming the pair in the creator's own direction
			// duplicates that winding; a third claimant of either sense has no
			// free slot left. Both are unstitchable.
			if ent.v1 == u || ent.f2Owner != -1 {
				return nil, nil, fmt.Errorf("FromPolygonSoup: %w", ErrUnstitchableEdge)
			}
			ent.f2Owner = pi
			edge, _ := m.Edge(ent.handle)
			edge.F2 = faces[pi]
			polyEdgeSeq[pi][i] = ent.handle
			polyEdgeSide[pi][i] = false
		}
	}

	for pi, seq := range polyEdgeSeq {
		n := len(seq)
		for i := 0; i < n; i++ {
			eh := seq[i]
			side := polyEdgeSide[pi][i]
			e, _ := m.Edge(eh)
			next := seq[(i+1)%n]
			prev := seq[(i-1+n)%n]
			if side {
				e.NextAtV1OnF1 = next
				e.PrevAtV1OnF1 = prev
			} else {
				e.NextAtV2OnF2 = next
				e.PrevAtV2OnF2 = prev
			}
		}
		if n > 0 {
			frec, _ := m.Face(faces[pi])
			frec.Boundary = seq[0]
		}
	}

	// A true mesh-boundary edge (never claimed on its F2 side, because no
	// second polygon shares it) leaves PrevAtV2OnF2/NextAtV2OnF2 unset —
	// there is no F2 boundary walk to stitch them into. navigate.IncidentEdges
	// still needs a wing link at that endpoint to know the vertex fan ends
	// here, so self-reference it, the same terminator MEV uses for a
	// valence-1 spur's own endpoint.
	for _, ent := range edgeOf {
		if ent.f2Owner == -1 {
			e, _ := m.Edge(ent.handle)
			e.NextAtV2OnF2 = ent.handle
			e.PrevAtV2OnF2 = ent.handle
		}
	}

	for pi, verts := range polyVerts {
		for i, vh := range verts {
			v, _ := m.Vertex(vh)
			if v.Edge.IsNil() {
				v.Edge = polyEdgeSeq[pi][i]
			}
		}
	}

	for _, fh := range faces {
		if err := m.RefreshNormal(fh); err != nil {
			return nil, nil, err
		}
	}

	return m, faces, nil
}

// reverse reverses verts in place.
func reverse(verts []mesh.VertexHandle) {
	for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}
}
