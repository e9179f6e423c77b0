package navmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Node is one walkable polygon of a zone. IDs and neighbour references are local to the
// node's group.
type Node struct {
	ID         int        `msgpack:"id"`
	Group      int        `msgpack:"group"`
	VertexIDs  [3]int     `msgpack:"vertexIds"`
	Centroid   mgl64.Vec3 `msgpack:"centroid"`
	Neighbours []int      `msgpack:"neighbours"`
	Portals    [][2]int   `msgpack:"portals"` // shared edge per neighbour, same order as Neighbours
}

// Zone is a built navmesh: welded vertices plus polygons split into disconnected groups.
type Zone struct {
	Vertices []mgl64.Vec3 `msgpack:"vertices"`
	Groups   [][]*Node    `msgpack:"groups"`

	broadphase *broadphase
}

// CreateZone welds vertices closer than mergeTolerance, drops degenerate triangles, links
// polygons sharing an edge and splits them into reachability groups.
func CreateZone(g *Geometry, mergeTolerance float64) (*Zone, error) {
	tris, err := g.Triangles()
	if err != nil {
		return nil, err
	}

	remap, vertices := mergeVertices(g, mergeTolerance)

	type poly struct {
		ids        [3]int
		neighbours []int
		portals    [][2]int
	}
	var polys []*poly
	for _, t := range tris {
		a, b, c := remap[t[0]], remap[t[1]], remap[t[2]]
		if a == b || b == c || a == c {
			continue
		}
		polys = append(polys, &poly{ids: [3]int{a, b, c}})
	}
	if len(polys) == 0 {
		return nil, ErrEmptyGeometry
	}

	type edgeKey struct{ lo, hi int }
	edges := make(map[edgeKey][]int)
	for i, p := range polys {
		for k := 0; k < 3; k++ {
			u, v := p.ids[k], p.ids[(k+1)%3]
			key := edgeKey{min(u, v), max(u, v)}
			edges[key] = append(edges[key], i)
		}
	}
	for i, p := range polys {
		for k := 0; k < 3; k++ {
			u, v := p.ids[k], p.ids[(k+1)%3]
			for _, j := range edges[edgeKey{min(u, v), max(u, v)}] {
				if j == i || containsInt(p.neighbours, j) {
					continue
				}
				p.neighbours = append(p.neighbours, j)
				p.portals = append(p.portals, [2]int{u, v})
			}
		}
	}

	// Flood fill into groups; nodes are renumbered group-locally.
	groupOf := make([]int, len(polys))
	localID := make([]int, len(polys))
	for i := range groupOf {
		groupOf[i] = -1
	}
	var members [][]int
	for start := range polys {
		if groupOf[start] >= 0 {
			continue
		}
		gi := len(members)
		queue := []int{start}
		groupOf[start] = gi
		var list []int
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			localID[cur] = len(list)
			list = append(list, cur)
			for _, n := range polys[cur].neighbours {
				if groupOf[n] < 0 {
					groupOf[n] = gi
					queue = append(queue, n)
				}
			}
		}
		members = append(members, list)
	}

	zone := &Zone{Vertices: vertices, Groups: make([][]*Node, len(members))}
	for gi, list := range members {
		nodes := make([]*Node, len(list))
		for li, pi := range list {
			p := polys[pi]
			n := &Node{
				ID:        li,
				Group:     gi,
				VertexIDs: p.ids,
				Centroid:  vertices[p.ids[0]].Add(vertices[p.ids[1]]).Add(vertices[p.ids[2]]).Mul(1.0 / 3.0),
				Portals:   p.portals,
			}
			for _, nb := range p.neighbours {
				n.Neighbours = append(n.Neighbours, localID[nb])
			}
			nodes[li] = n
		}
		zone.Groups[gi] = nodes
	}
	return zone, nil
}

// Triangle returns the corner positions of a node.
func (z *Zone) Triangle(n *Node) (a, b, c mgl64.Vec3) {
	return z.Vertices[n.VertexIDs[0]], z.Vertices[n.VertexIDs[1]], z.Vertices[n.VertexIDs[2]]
}

func (z *Zone) group(g int) []*Node {
	if g < 0 || g >= len(z.Groups) {
		return nil
	}
	return z.Groups[g]
}

// portal returns the edge shared by from and to, or false when they are not adjacent.
func (z *Zone) portal(from, to *Node) ([2]int, bool) {
	for i, nb := range from.Neighbours {
		if nb == to.ID {
			return from.Portals[i], true
		}
	}
	return [2]int{}, false
}

func mergeVertices(g *Geometry, tolerance float64) ([]int, []mgl64.Vec3) {
	if tolerance <= 0 {
		tolerance = 1e-4
	}
	type key [3]int64
	seen := make(map[key]int)
	remap := make([]int, g.VertexCount())
	var out []mgl64.Vec3
	for i := 0; i < g.VertexCount(); i++ {
		v := g.Vertex(i)
		k := key{
			int64(math.Round(v[0] / tolerance)),
			int64(math.Round(v[1] / tolerance)),
			int64(math.Round(v[2] / tolerance)),
		}
		if idx, ok := seen[k]; ok {
			remap[i] = idx
			continue
		}
		seen[k] = len(out)
		remap[i] = len(out)
		out = append(out, v)
	}
	return remap, out
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
