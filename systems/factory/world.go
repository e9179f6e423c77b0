package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/navpatrol/archetypes"
	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/navmesh"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateNavMesh(ecs *ecs.ECS, zoneID string) *donburi.Entry {
	entry := archetypes.NavMesh.Spawn(ecs)
	components.NavMesh.Set(entry, &components.NavMeshData{
		Pathfinding: navmesh.New(),
		ZoneID:      zoneID,
	})
	return entry
}

// CreateAgentPool makes the pool singleton. A zero seed picks one from the clock.
func CreateAgentPool(ecs *ecs.ECS, count int, seed int64) *donburi.Entry {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entry := archetypes.AgentPool.Spawn(ecs)
	components.AgentPool.Set(entry, &components.AgentPoolData{
		Count: count,
		Rand:  rand.New(rand.NewSource(seed)),
	})
	return entry
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(entry, &components.ClockData{DT: 1 / float64(cfg.C.TPS)})
	return entry
}

func CreateLoading(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Loading.Spawn(ecs)
	components.Loading.Set(entry, &components.LoadingData{Loader: assets.NewLoader()})
	return entry
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

func CreatePlayerSpawn(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.PlayerSpawn.Spawn(ecs)
}
