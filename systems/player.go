package systems

import (
	"math"

	"github.com/automoto/navpatrol/animation"
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/controller"
	"github.com/automoto/navpatrol/locomotion"
	"github.com/automoto/navpatrol/systems/factory"
	"github.com/automoto/navpatrol/tags"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	fireRange   = 25.0
	fireConeCos = 0.97 // about 14 degrees either side
)

// UpdatePlayerSpawn creates the player once its model, the level and the navmesh have loaded.
// The spawn point is the saved pose, then the level's PlayerSpawn, then cfg.Player.Spawn.
func UpdatePlayerSpawn(e *ecs.ECS) {
	spawn := getPlayerSpawn(e)
	if spawn == nil || spawn.Spawned || spawn.Model == nil {
		return
	}
	pool := getAgentPool(e)
	if pool != nil && !pool.LevelDone {
		return
	}
	nm := getNavMesh(e)
	if nm == nil || !nm.Ready {
		return
	}

	pos := mgl64.Vec3{cfg.Player.Spawn[0], cfg.Player.Spawn[1], cfg.Player.Spawn[2]}
	yaw := 0.0
	switch {
	case spawn.HasSaved:
		pos, yaw = spawn.SavedPos, spawn.SavedYaw
	case pool != nil && pool.Level != nil && pool.Level.HasPlayerSpawn:
		pos = pool.Level.PlayerSpawn
	}

	player := factory.CreatePlayer(e, spawn.Model, nm.Pathfinding, nm.ZoneID, pos, yaw)
	spawn.Spawned = true

	// Snap the camera to the spawn so it does not pan in from the origin
	factory.CreateCamera(e, components.Transform.Get(player).Body)
	log.Info("player spawned", "at", pos, "restored", spawn.HasSaved)
}

// UpdatePlayer applies the tick's intent to the player. Direct control cancels any move order
// the player was walking.
func UpdatePlayer(e *ecs.ECS) {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	dt, elapsed := tick(e)

	player := components.Player.Get(entry)
	transform := components.Transform.Get(entry)
	nav := components.Navigator.Get(entry)

	var surface controller.Surface
	if nm := getNavMesh(e); nm != nil && nm.Ready {
		surface = nm.Pathfinding
	}

	if input.Intent.Moving() && nav.State == locomotion.Walking {
		nav.Halt()
		nav.State = locomotion.Idle
	}
	player.Last = player.Update(dt, elapsed, input.Intent, &transform.Body, surface)

	if player.Last.Fired {
		if target := aimedAgent(e, transform.Body); target != nil {
			ShootAgent(target)
		}
	}
}

// aimedAgent returns the nearest standing agent inside the firing cone, or nil.
func aimedAgent(e *ecs.ECS, from locomotion.Body) *donburi.Entry {
	forward := from.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	forward[1] = 0
	if forward.Len() == 0 {
		return nil
	}
	forward = forward.Normalize()

	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, agent := range Agents(e) {
		if components.Animation.Get(agent).Locked {
			continue
		}
		to := components.Transform.Get(agent).Position.Sub(from.Position)
		to[1] = 0
		dist := to.Len()
		if dist == 0 || dist > fireRange || dist >= bestDist {
			continue
		}
		if to.Mul(1/dist).Dot(forward) < fireConeCos {
			continue
		}
		best, bestDist = agent, dist
	}
	return best
}

// ShootAgent plays the terminal "shot" action and drops the agent's path. The agent stays
// down until it is given a new move order.
func ShootAgent(entry *donburi.Entry) {
	anim := components.Animation.Get(entry)
	if _, err := anim.SetAction(animation.Shot); err != nil {
		return
	}
	anim.Locked = true
	nav := components.Navigator.Get(entry)
	nav.Halt()
	nav.State = locomotion.Idle
	log.Info("agent shot", "entity", entry.Entity())
}
