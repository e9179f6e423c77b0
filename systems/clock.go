package systems

import (
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the scene clock by one tick. Must run first.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Ticks++
	clock.Elapsed += clock.DT
}

// tick returns the seconds per tick and the scene time.
func tick(e *ecs.ECS) (dt, elapsed float64) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 1 / float64(cfg.C.TPS), 0
	}
	clock := components.Clock.Get(entry)
	return clock.DT, clock.Elapsed
}

func getNavMesh(e *ecs.ECS) *components.NavMeshData {
	entry, ok := components.NavMesh.First(e.World)
	if !ok {
		return nil
	}
	return components.NavMesh.Get(entry)
}

func getAgentPool(e *ecs.ECS) *components.AgentPoolData {
	entry, ok := components.AgentPool.First(e.World)
	if !ok {
		return nil
	}
	return components.AgentPool.Get(entry)
}
