package navmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// clampSearchDepth limits how many polygons away from the start node ClampStep looks.
const clampSearchDepth = 2

// ClampStep constrains a movement from start toward end so that it stays on the navmesh. It
// returns the node the clamped point lies on and the clamped point itself. start is the
// mover's current position and node the polygon it currently occupies.
func (p *Pathfinding) ClampStep(start, end mgl64.Vec3, node *Node, zoneID string, group int) (*Node, mgl64.Vec3) {
	z, ok := p.zones[zoneID]
	if !ok || node == nil {
		return node, start
	}
	nodes := z.group(group)
	if nodes == nil || node.ID >= len(nodes) {
		return node, start
	}

	a, b, c := z.Triangle(node)
	endPoint := projectOntoPlane(end, a, b, c)

	type frame struct {
		id    int
		depth int
	}
	visited := map[int]bool{node.ID: true}
	stack := []frame{{node.ID, 0}}

	var closestNode *Node
	closestPoint := start
	closestDist := math.Inf(1)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := nodes[cur.id]
		ta, tb, tc := z.Triangle(n)
		pt := closestPointOnTriangle(endPoint, ta, tb, tc)
		if d := distSq(pt, endPoint); d < closestDist {
			closestNode = n
			closestPoint = pt
			closestDist = d
		}

		if cur.depth >= clampSearchDepth {
			continue
		}
		for _, nb := range n.Neighbours {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			stack = append(stack, frame{nb, cur.depth + 1})
		}
	}
	return closestNode, closestPoint
}
