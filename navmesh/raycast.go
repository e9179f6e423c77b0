package navmesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// ResolvNavPolygon tags navmesh polygon footprints in the broadphase space.
const ResolvNavPolygon = "navpoly"

// Hit is a ray intersection against the navmesh surface.
type Hit struct {
	Point    mgl64.Vec3
	Distance float64
	Node     *Node
}

// broadphase indexes polygon XZ footprints in a resolv space so vertical probes only test the
// triangles sharing their cell. resolv works on integer pixel bounds, so world units are scaled
// by broadphaseScale and one cell spans one world unit.
type broadphase struct {
	space  *resolv.Space
	origin mgl64.Vec3
}

const (
	broadphaseScale = 16
	broadphaseCell  = broadphaseScale
)

func newBroadphase(z *Zone) *broadphase {
	if len(z.Vertices) == 0 {
		return nil
	}
	lo := mgl64.Vec3{math.Inf(1), 0, math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), 0, math.Inf(-1)}
	for _, v := range z.Vertices {
		lo[0], lo[2] = math.Min(lo[0], v[0]), math.Min(lo[2], v[2])
		hi[0], hi[2] = math.Max(hi[0], v[0]), math.Max(hi[2], v[2])
	}

	// One spare cell on every side
	cellsX := int(math.Ceil(hi[0]-lo[0])) + 3
	cellsZ := int(math.Ceil(hi[2]-lo[2])) + 3
	bp := &broadphase{
		space:  resolv.NewSpace(cellsX*broadphaseCell, cellsZ*broadphaseCell, broadphaseCell, broadphaseCell),
		origin: mgl64.Vec3{lo[0] - 1, 0, lo[2] - 1},
	}

	for _, group := range z.Groups {
		for _, n := range group {
			a, b, c := z.Triangle(n)
			x0, z0 := bp.toSpace(min(a[0], b[0], c[0]), min(a[2], b[2], c[2]))
			x1, z1 := bp.toSpace(max(a[0], b[0], c[0]), max(a[2], b[2], c[2]))
			// resolv registers up to X+W-1, the extra pixel keeps the far edge's cell
			obj := resolv.NewObject(x0, z0, x1-x0+1, z1-z0+1, ResolvNavPolygon)
			obj.Data = n
			bp.space.Add(obj)
		}
	}
	return bp
}

func (bp *broadphase) toSpace(x, z float64) (float64, float64) {
	return (x - bp.origin[0]) * broadphaseScale, (z - bp.origin[2]) * broadphaseScale
}

// candidates returns the polygons whose footprint covers the cell holding the XZ position of pt.
func (bp *broadphase) candidates(pt mgl64.Vec3) []*Node {
	cx, cz := bp.space.WorldToSpace(bp.toSpace(pt[0], pt[2]))
	cell := bp.space.Cell(cx, cz)
	if cell == nil || !cell.ContainsTags(ResolvNavPolygon) {
		return nil
	}
	nodes := make([]*Node, 0, len(cell.Objects))
	for _, obj := range cell.Objects {
		if n, ok := obj.Data.(*Node); ok && obj.HasTags(ResolvNavPolygon) {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// RaycastDown casts a ray straight down from origin and returns the first navmesh surface
// below it.
func (p *Pathfinding) RaycastDown(zoneID string, origin mgl64.Vec3) (Hit, bool) {
	z, ok := p.zones[zoneID]
	if !ok {
		return Hit{}, false
	}

	nodes := z.allNodes()
	if z.broadphase != nil {
		nodes = z.broadphase.candidates(origin)
	}
	return z.raycastNodes(nodes, origin, mgl64.Vec3{0, -1, 0})
}

// Raycast casts an arbitrary ray against every polygon of the zone.
func (p *Pathfinding) Raycast(zoneID string, origin, dir mgl64.Vec3) (Hit, bool) {
	z, ok := p.zones[zoneID]
	if !ok || dir.LenSqr() == 0 {
		return Hit{}, false
	}
	return z.raycastNodes(z.allNodes(), origin, dir.Normalize())
}

func (z *Zone) raycastNodes(nodes []*Node, origin, dir mgl64.Vec3) (Hit, bool) {
	var best Hit
	found := false
	for _, n := range nodes {
		a, b, c := z.Triangle(n)
		t, ok := intersectTriangle(origin, dir, a, b, c)
		if !ok || (found && t >= best.Distance) {
			continue
		}
		best = Hit{Point: origin.Add(dir.Mul(t)), Distance: t, Node: n}
		found = true
	}
	return best, found
}

func (z *Zone) allNodes() []*Node {
	var nodes []*Node
	for _, g := range z.Groups {
		nodes = append(nodes, g...)
	}
	return nodes
}
