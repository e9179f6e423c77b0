// Package locomotion steers agents along navmesh paths one waypoint at a time.
package locomotion

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/navpatrol/navmesh"
)

const (
	// ArriveEpsilonSq is the squared distance under which a leg counts as reached.
	ArriveEpsilonSq = 0.01
	// TurnFactor is the per-frame slerp amount toward the leg heading.
	TurnFactor = 0.1
)

// State is the movement state a navigator reports to the animation layer.
type State int

const (
	Idle State = iota
	Walking
)

func (s State) String() string {
	switch s {
	case Walking:
		return "walking"
	default:
		return "idle"
	}
}

// Body is the part of an agent's transform that locomotion writes.
type Body struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Pathfinder is the navmesh query surface the navigator depends on.
type Pathfinder interface {
	GetGroup(zoneID string, point mgl64.Vec3) (int, bool)
	GetClosestNode(point mgl64.Vec3, zoneID string, group int, checkPolygon bool) *navmesh.Node
	FindPath(start, end mgl64.Vec3, zoneID string, group int) []mgl64.Vec3
	ClampStep(start, end mgl64.Vec3, node *navmesh.Node, zoneID string, group int) (*navmesh.Node, mgl64.Vec3)
}

// Sampler picks patrol destinations.
type Sampler interface {
	Sample(r *rand.Rand) (mgl64.Vec3, bool)
}

// PlanResult describes the outcome of PlanPath.
type PlanResult struct {
	Found     bool
	Waypoints []mgl64.Vec3
	// Fallback is the nearest mesh point toward an unreachable destination.
	Fallback    mgl64.Vec3
	HasFallback bool
}

// Navigator holds an agent's path and movement state. An agent with a Patrol sampler keeps
// planning new legs forever; one without comes to rest on its final waypoint.
type Navigator struct {
	Speed  float64
	Path   []mgl64.Vec3
	State  State
	ZoneID string

	Pathfinder Pathfinder
	Patrol     Sampler
	Rand       *rand.Rand

	group      int
	groupKnown bool
	heading    mgl64.Quat
}

func NewNavigator(speed float64, pf Pathfinder, zoneID string) *Navigator {
	return &Navigator{
		Speed:      speed,
		ZoneID:     zoneID,
		Pathfinder: pf,
		heading:    mgl64.QuatIdent(),
	}
}

// Group returns the cached navmesh group, resolving it from position on first use.
func (n *Navigator) Group(position mgl64.Vec3) (int, bool) {
	if !n.groupKnown && n.Pathfinder != nil {
		n.group, n.groupKnown = n.Pathfinder.GetGroup(n.ZoneID, position)
	}
	return n.group, n.groupKnown
}

// Heading is the orientation the body is currently turning toward.
func (n *Navigator) Heading() mgl64.Quat {
	return n.heading
}

// PlanPath replaces the current path with one leading to dest. A missing path leaves the
// navigator idle and reports the clamped fallback point.
func (n *Navigator) PlanPath(body *Body, dest mgl64.Vec3) PlanResult {
	if n.Pathfinder == nil {
		n.Path = []mgl64.Vec3{dest}
		n.State = Walking
		n.face(body, dest)
		return PlanResult{Found: true, Waypoints: n.Path}
	}

	group, ok := n.Group(body.Position)
	var path []mgl64.Vec3
	if ok {
		path = n.Pathfinder.FindPath(body.Position, dest, n.ZoneID, group)
	}

	if len(path) == 0 {
		n.Path = nil
		n.State = Idle
		res := PlanResult{}
		if ok {
			if node := n.Pathfinder.GetClosestNode(body.Position, n.ZoneID, group, false); node != nil {
				_, res.Fallback = n.Pathfinder.ClampStep(body.Position, dest, node, n.ZoneID, group)
				res.HasFallback = true
			}
		}
		destGroup, destOK := n.Pathfinder.GetGroup(n.ZoneID, dest)
		log.Debug("no path", "zone", n.ZoneID, "from", body.Position, "to", dest,
			"group", group, "destGroup", destGroup, "destOnMesh", destOK)
		return res
	}

	n.Path = path
	n.State = Walking
	n.face(body, path[0])
	return PlanResult{Found: true, Waypoints: path}
}

// Advance moves the body toward the front waypoint. It pops at most one waypoint and reports
// whether a leg was completed.
func (n *Navigator) Advance(body *Body, dt float64) bool {
	if len(n.Path) == 0 {
		return false
	}

	target := n.Path[0]
	before := target.Sub(body.Position).LenSqr()
	complete := before < ArriveEpsilonSq

	if !complete {
		dir := target.Sub(body.Position).Normalize()
		body.Position = body.Position.Add(dir.Mul(n.Speed * dt))
		body.Rotation = slerp(body.Rotation, n.heading, TurnFactor)

		// Passed the waypoint this frame
		if target.Sub(body.Position).LenSqr() > before {
			complete = true
		}
	}
	if !complete {
		return false
	}

	n.Path = n.Path[1:]
	if len(n.Path) > 0 {
		n.face(body, n.Path[0])
		return true
	}

	if n.Patrol != nil {
		if dest, ok := n.Patrol.Sample(n.Rand); ok {
			n.PlanPath(body, dest)
			return true
		}
	}
	body.Position = target
	n.State = Idle
	return true
}

// Halt drops the remaining path without touching the movement state.
func (n *Navigator) Halt() {
	n.Path = nil
}

// face sets the heading to a pure yaw toward p, ignoring height.
func (n *Navigator) face(body *Body, p mgl64.Vec3) {
	dx := p[0] - body.Position[0]
	dz := p[2] - body.Position[2]
	if dx*dx+dz*dz < 1e-12 {
		return
	}
	n.heading = mgl64.QuatRotate(math.Atan2(dx, dz), mgl64.Vec3{0, 1, 0})
}

// slerp takes the short arc between a and b. Zero quaternions are treated as identity.
func slerp(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Len() == 0 {
		a = mgl64.QuatIdent()
	}
	if b.Len() == 0 {
		b = mgl64.QuatIdent()
	}
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}
