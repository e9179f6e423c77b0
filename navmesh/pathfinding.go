package navmesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// groupSearchRadiusSq bounds how far a point may be from a group's nearest centroid and still
// be considered part of it.
const groupSearchRadiusSq = 50 * 50

var ErrUnknownZone = errors.New("navmesh: unknown zone")

// Pathfinding holds named zones and answers queries against them. It is not safe for
// concurrent use; queries happen on the simulation tick.
type Pathfinding struct {
	zones map[string]*Zone
}

func New() *Pathfinding {
	return &Pathfinding{zones: make(map[string]*Zone)}
}

// SetZoneData registers a zone under an id, replacing any previous zone with that id.
func (p *Pathfinding) SetZoneData(zoneID string, zone *Zone) {
	zone.broadphase = newBroadphase(zone)
	p.zones[zoneID] = zone
	nodes := 0
	for _, g := range zone.Groups {
		nodes += len(g)
	}
	log.Debug("navmesh zone registered", "zone", zoneID, "groups", len(zone.Groups), "nodes", nodes)
}

func (p *Pathfinding) Zone(zoneID string) (*Zone, error) {
	z, ok := p.zones[zoneID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownZone, zoneID)
	}
	return z, nil
}

// GetGroup returns the group holding the centroid closest to point. It reports false when the
// zone is unknown or no centroid lies within the search radius.
func (p *Pathfinding) GetGroup(zoneID string, point mgl64.Vec3) (int, bool) {
	z, ok := p.zones[zoneID]
	if !ok {
		return 0, false
	}

	best := -1
	bestDist := math.Inf(1)
	for gi, group := range z.Groups {
		for _, n := range group {
			d := distSq(n.Centroid, point)
			if d < bestDist {
				bestDist = d
				best = gi
			}
		}
	}
	if best < 0 || bestDist > groupSearchRadiusSq {
		return 0, false
	}
	return best, true
}

// GetClosestNode returns the node of the group whose centroid is nearest to point. With
// checkPolygon set only nodes whose polygon contains the point are considered.
func (p *Pathfinding) GetClosestNode(point mgl64.Vec3, zoneID string, group int, checkPolygon bool) *Node {
	z, ok := p.zones[zoneID]
	if !ok {
		return nil
	}

	var closest *Node
	closestDist := math.Inf(1)
	for _, n := range z.group(group) {
		d := distSq(n.Centroid, point)
		if d >= closestDist {
			continue
		}
		if checkPolygon && !pointInNode(z, n, point) {
			continue
		}
		closest = n
		closestDist = d
	}
	return closest
}

// FindPath returns the waypoints leading from start to end, excluding start. It returns nil when
// either end cannot be placed on the group or no route connects them.
func (p *Pathfinding) FindPath(start, end mgl64.Vec3, zoneID string, group int) []mgl64.Vec3 {
	z, ok := p.zones[zoneID]
	if !ok {
		return nil
	}
	nodes := z.group(group)
	if nodes == nil {
		return nil
	}

	closestNode := p.GetClosestNode(start, zoneID, group, false)
	farthestNode := p.GetClosestNode(end, zoneID, group, true)
	if closestNode == nil || farthestNode == nil {
		return nil
	}

	route := searchNodes(nodes, closestNode, farthestNode)
	if route == nil {
		return nil
	}

	ch := &channel{}
	ch.push(start, start)
	for i := 0; i+1 < len(route); i++ {
		left, right, ok := z.orientedPortal(route[i], route[i+1])
		if !ok {
			return nil
		}
		ch.push(left, right)
	}
	ch.push(end, end)

	pts := ch.stringPull()
	if len(pts) <= 1 {
		return []mgl64.Vec3{end}
	}
	return append([]mgl64.Vec3(nil), pts[1:]...)
}

// orientedPortal returns the shared edge of from and to as seen when walking from -> to.
func (z *Zone) orientedPortal(from, to *Node) (left, right mgl64.Vec3, ok bool) {
	edge, ok := z.portal(from, to)
	if !ok {
		return left, right, false
	}
	a := z.Vertices[edge[0]]
	b := z.Vertices[edge[1]]
	u := a.Sub(from.Centroid)
	v := b.Sub(from.Centroid)
	if u[0]*v[2]-u[2]*v[0] > 0 {
		return b, a, true
	}
	return a, b, true
}
