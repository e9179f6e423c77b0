package archetypes

import (
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Agent = newArchetype(
		tags.Agent,
		components.Transform,
		components.Navigator,
		components.Animation,
		components.Model,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Navigator,
		components.Animation,
		components.Model,
	)
	Camera = newArchetype(
		components.Camera,
	)
	NavMesh = newArchetype(
		components.NavMesh,
	)
	AgentPool = newArchetype(
		components.AgentPool,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Loading = newArchetype(
		components.Loading,
	)
	Input = newArchetype(
		components.Input,
	)
	PlayerSpawn = newArchetype(
		components.PlayerSpawn,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
