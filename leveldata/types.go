// Package leveldata reads level layout from TMX files: patrol waypoints, the player spawn and
// which navmesh the level walks on. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// Level is the walkable layout of one map.
type Level struct {
	Name           string
	Zone           string // navmesh zone id
	NavMesh        string // navmesh path relative to the level filesystem
	Waypoints      *WaypointPool
	PlayerSpawn    mgl64.Vec3
	HasPlayerSpawn bool
}

// WaypointPool is an immutable set of patrol destinations shared by every agent.
type WaypointPool struct {
	points []mgl64.Vec3
}

func NewWaypointPool(points []mgl64.Vec3) *WaypointPool {
	return &WaypointPool{points: append([]mgl64.Vec3(nil), points...)}
}

func (p *WaypointPool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.points)
}

func (p *WaypointPool) At(i int) mgl64.Vec3 {
	return p.points[i]
}

// Points returns a copy of the pool.
func (p *WaypointPool) Points() []mgl64.Vec3 {
	return append([]mgl64.Vec3(nil), p.points...)
}

// Sample draws a uniformly random waypoint. A nil source uses the global one.
func (p *WaypointPool) Sample(r *rand.Rand) (mgl64.Vec3, bool) {
	if p.Len() == 0 {
		return mgl64.Vec3{}, false
	}
	var i int
	if r != nil {
		i = r.Intn(len(p.points))
	} else {
		i = rand.Intn(len(p.points))
	}
	return p.points[i], true
}
