package systems

import (
	"io/fs"

	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/leveldata"
	"github.com/automoto/navpatrol/navmesh"
	"github.com/yohamta/donburi/ecs"
)

// StartLoading queues every background load the scene depends on. Results are applied by
// UpdateLoading on a later tick.
func StartLoading(e *ecs.ECS, fsys fs.FS) {
	entry, ok := components.Loading.First(e.World)
	if !ok {
		return
	}
	loader := components.Loading.Get(entry).Loader

	navPath := cfg.NavMesh.Path
	assets.Load(loader, navPath,
		func() (*navmesh.Zone, error) {
			return assets.LoadZone(fsys, navPath, cfg.NavMesh.MergeTolerance, cfg.NavMesh.RotateX)
		},
		func(zone *navmesh.Zone) {
			if nm := getNavMesh(e); nm != nil {
				nm.Pathfinding.SetZoneData(nm.ZoneID, zone)
				nm.Ready = true
			}
		},
		func(error) {
			if nm := getNavMesh(e); nm != nil {
				nm.Failed = true
			}
		},
	)

	levelPath := cfg.Pool.Level
	assets.Load(loader, levelPath,
		func() (*leveldata.Level, error) {
			return leveldata.LoadLevel(fsys, levelPath)
		},
		func(level *leveldata.Level) {
			if pool := getAgentPool(e); pool != nil {
				pool.Level = level
				pool.Waypoints = level.Waypoints
				pool.LevelDone = true
			}
		},
		func(error) {
			if pool := getAgentPool(e); pool != nil {
				pool.LevelDone = true
			}
		},
	)

	agentModel := cfg.Pool.Model
	assets.Load(loader, agentModel,
		func() (*assets.Model, error) {
			return assets.LoadModel(fsys, agentModel)
		},
		func(m *assets.Model) {
			if pool := getAgentPool(e); pool != nil {
				pool.Model = m
				pool.ModelDone = true
			}
		},
		func(error) {
			if pool := getAgentPool(e); pool != nil {
				pool.ModelDone = true
			}
		},
	)

	playerModel := cfg.Player.Model
	assets.Load(loader, playerModel,
		func() (*assets.Model, error) {
			return assets.LoadModel(fsys, playerModel)
		},
		func(m *assets.Model) {
			if spawn := getPlayerSpawn(e); spawn != nil {
				spawn.Model = m
				spawn.ModelDone = true
			}
		},
		func(error) {
			if spawn := getPlayerSpawn(e); spawn != nil {
				spawn.ModelDone = true
			}
		},
	)
}

// UpdateLoading delivers finished loads. Must run before any system that checks load
// preconditions.
func UpdateLoading(e *ecs.ECS) {
	entry, ok := components.Loading.First(e.World)
	if !ok {
		return
	}
	components.Loading.Get(entry).Loader.Poll()
}

func getPlayerSpawn(e *ecs.ECS) *components.PlayerSpawnData {
	entry, ok := components.PlayerSpawn.First(e.World)
	if !ok {
		return nil
	}
	return components.PlayerSpawn.Get(entry)
}
