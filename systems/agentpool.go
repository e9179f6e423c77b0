package systems

import (
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/leveldata"
	"github.com/automoto/navpatrol/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAgentPool spawns the patrol crowd as soon as the navmesh is registered and the agent
// model and level have loaded. Until then it checks again every tick.
func UpdateAgentPool(e *ecs.ECS) {
	pool := getAgentPool(e)
	if pool == nil || pool.Spawned {
		return
	}

	nm := getNavMesh(e)
	if nm == nil || !nm.Ready || pool.Model == nil || !pool.LevelDone {
		if !pool.Waiting {
			log.Debug("agent pool waiting",
				"navmesh", nm != nil && nm.Ready,
				"model", pool.Model != nil,
				"level", pool.LevelDone)
			pool.Waiting = true
		}
		return
	}

	if pool.Waypoints.Len() == 0 {
		pool.Waypoints = fallbackWaypoints()
	}
	if pool.Waypoints.Len() == 0 {
		log.Error("no patrol waypoints, agent pool disabled")
		pool.Spawned = true
		return
	}

	spawnAgents(e, pool, nm)
}

func spawnAgents(e *ecs.ECS, pool *components.AgentPoolData, nm *components.NavMeshData) {
	for i := 0; i < pool.Count; i++ {
		start, _ := pool.Waypoints.Sample(pool.Rand)
		agent := factory.CreateAgent(e, pool.Model, nm.Pathfinding, nm.ZoneID, pool.Waypoints, pool.Rand, start)
		pool.Agents = append(pool.Agents, agent.Entity())

		dest, _ := pool.Waypoints.Sample(pool.Rand)
		transform := components.Transform.Get(agent)
		nav := components.Navigator.Get(agent)
		res := nav.PlanPath(&transform.Body, dest)
		log.Debug("agent spawned", "index", i, "at", start, "to", dest, "found", res.Found)
	}
	pool.Spawned = true
	log.Info("agent pool ready", "agents", len(pool.Agents), "waypoints", pool.Waypoints.Len())
}

func fallbackWaypoints() *leveldata.WaypointPool {
	points := make([]mgl64.Vec3, len(cfg.Pool.Waypoints))
	for i, p := range cfg.Pool.Waypoints {
		points[i] = mgl64.Vec3{p[0], p[1], p[2]}
	}
	return leveldata.NewWaypointPool(points)
}

// Agents returns the live patrol agents in spawn order.
func Agents(e *ecs.ECS) []*donburi.Entry {
	pool := getAgentPool(e)
	if pool == nil {
		return nil
	}
	out := make([]*donburi.Entry, 0, len(pool.Agents))
	for _, id := range pool.Agents {
		if e.World.Valid(id) {
			out = append(out, e.World.Entry(id))
		}
	}
	return out
}
