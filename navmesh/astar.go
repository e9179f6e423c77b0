package navmesh

import (
	astar "github.com/beefsack/go-astar"
)

// polyGraph holds one search entry per polygon of a group.
type polyGraph struct {
	nodes []*polyNode
}

// polyNode wraps a group node for go-astar.
// Implements astar.Pather
type polyNode struct {
	node  *Node
	graph *polyGraph
}

func newPolyGraph(nodes []*Node) *polyGraph {
	g := &polyGraph{nodes: make([]*polyNode, len(nodes))}
	for i, n := range nodes {
		g.nodes[i] = &polyNode{node: n, graph: g}
	}
	return g
}

// PathNeighbors returns the polygons sharing an edge with this one (implements astar.Pather)
func (p *polyNode) PathNeighbors() []astar.Pather {
	neighbors := make([]astar.Pather, 0, len(p.node.Neighbours))
	for _, id := range p.node.Neighbours {
		neighbors = append(neighbors, p.graph.nodes[id])
	}
	return neighbors
}

// PathNeighborCost is the centroid distance between adjacent polygons (implements astar.Pather)
func (p *polyNode) PathNeighborCost(to astar.Pather) float64 {
	return p.distance(to.(*polyNode))
}

// PathEstimatedCost is the straight line centroid distance heuristic (implements astar.Pather)
func (p *polyNode) PathEstimatedCost(to astar.Pather) float64 {
	return p.distance(to.(*polyNode))
}

func (p *polyNode) distance(o *polyNode) float64 {
	return p.node.Centroid.Sub(o.node.Centroid).Len()
}

// searchNodes returns the polygon route from start to goal, both inclusive, or nil.
func searchNodes(nodes []*Node, start, goal *Node) []*Node {
	if start.ID == goal.ID {
		return []*Node{start}
	}

	g := newPolyGraph(nodes)
	path, _, found := astar.Path(g.nodes[start.ID], g.nodes[goal.ID])
	if !found || len(path) == 0 {
		return nil
	}

	route := make([]*Node, len(path))
	for i, p := range path {
		route[i] = p.(*polyNode).node
	}
	// go-astar walks parents back from the goal
	if route[0].ID != start.ID {
		for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
			route[i], route[j] = route[j], route[i]
		}
	}
	return route
}
