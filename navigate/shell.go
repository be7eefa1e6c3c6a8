// File: shell.go
// Role: shell counting — the S term of the Euler-Poincare invariant
// V - E + F = 2*(S - G), computed as the number of connected components of
// the vertex/edge skeleton rather than stored and maintained incrementally.
package navigate

import "github.com/winged/brep/mesh"

// ShellCount returns the number of connected components of m's
// vertex/edge skeleton (a BFS union over IncidentEdges). Isolated vertices
// created by MVSF but not yet attached to any edge each count as their own
// shell, matching MVSF's postcondition of S+1.
//
// Complexity: O(V + E).
func ShellCount(m *mesh.Mesh) (int, error) {
	vertices := m.Vertices()
	visited := make(map[mesh.VertexHandle]bool, len(vertices))
	shells := 0

	for _, v := range vertices {
		if visited[v.Handle] {
			continue
		}
		shells++
		queue := []mesh.VertexHandle{v.Handle}
		visited[v.Handle] = true

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			edges, err := IncidentEdges(m, cur)
			if err != nil {
				return 0, err
			}
			for _, eh := range edges {
				e, ok := m.Edge(eh)
				if !ok {
					continue
				}
				for _, other := range [2]mesh.VertexHandle{e.V1, e.V2} {
					if !visited[other] {
						visited[other] = true
						queue = append(queue, other)
					}
				}
			}
		}
	}

	return shells, nil
}
