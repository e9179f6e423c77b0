package systems

import (
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/tags"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// orderProbeHeight is how far above the mesh a click ray starts.
const orderProbeHeight = 100.0

// view maps between world X/Z and the top-down debug view.
type view struct {
	centerX, centerZ float64
	scale            float64
	width, height    float64
}

func newView(e *ecs.ECS, width, height int) view {
	v := view{scale: cfg.Camera.ViewScale, width: float64(width), height: float64(height)}
	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		v.centerX, v.centerZ = camera.Position.X, camera.Position.Y
	}
	return v
}

// toScreen projects a world point. +Z is up the screen.
func (v view) toScreen(p mgl64.Vec3) (float32, float32) {
	x := v.width/2 + (p.X()-v.centerX)*v.scale
	y := v.height/2 - (p.Z()-v.centerZ)*v.scale
	return float32(x), float32(y)
}

func (v view) toWorld(sx, sy float64) (x, z float64) {
	return v.centerX + (sx-v.width/2)/v.scale, v.centerZ - (sy-v.height/2)/v.scale
}

// UpdateMoveOrders resolves clicks into navmesh points and re-plans the ordered agent. A click
// off the mesh is ignored.
func UpdateMoveOrders(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if len(input.Orders) == 0 {
		return
	}
	nm := getNavMesh(e)
	if nm == nil || !nm.Ready {
		return
	}

	v := newView(e, cfg.C.Width, cfg.C.Height)
	for _, order := range input.Orders {
		x, z := v.toWorld(order.Screen.X, order.Screen.Y)
		hit, ok := nm.Pathfinding.Raycast(nm.ZoneID, mgl64.Vec3{x, orderProbeHeight, z}, mgl64.Vec3{0, -1, 0})
		if !ok {
			log.Debug("move order off mesh", "x", x, "z", z)
			continue
		}

		var target *donburi.Entry
		if order.Player {
			target, _ = tags.Player.First(e.World)
		} else if agents := Agents(e); len(agents) > 0 {
			target = agents[0]
		}
		if target == nil {
			continue
		}
		SendTo(target, hit.Point)
	}
}

// SendTo plans a path for entry to dest. A shot agent gets back up only when a path is found.
func SendTo(entry *donburi.Entry, dest mgl64.Vec3) bool {
	nav := components.Navigator.Get(entry)
	transform := components.Transform.Get(entry)
	res := nav.PlanPath(&transform.Body, dest)
	if !res.Found {
		log.Info("destination unreachable", "to", dest, "nearest", res.Fallback, "clamped", res.HasFallback)
		return false
	}

	components.Animation.Get(entry).Locked = false
	log.Info("move order", "to", dest, "waypoints", len(res.Waypoints))
	return true
}
