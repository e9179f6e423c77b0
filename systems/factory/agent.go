package factory

import (
	"math/rand"

	"github.com/automoto/navpatrol/archetypes"
	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/leveldata"
	"github.com/automoto/navpatrol/locomotion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAgent spawns one patrol agent at position, facing +Z, with its own skeleton clone.
// The agent keeps patrolling between members of waypoints once it has a first path.
func CreateAgent(ecs *ecs.ECS, model *assets.Model, pf locomotion.Pathfinder, zoneID string,
	waypoints *leveldata.WaypointPool, r *rand.Rand, position mgl64.Vec3) *donburi.Entry {
	agent := archetypes.Agent.Spawn(ecs)

	components.Transform.SetValue(agent, components.TransformData{
		Body: locomotion.Body{
			Position: position,
			Rotation: mgl64.QuatIdent(),
		},
		Scale: cfg.Locomotion.AgentScale,
	})

	nav := locomotion.NewNavigator(cfg.Locomotion.AgentSpeed, pf, zoneID)
	nav.Patrol = waypoints
	nav.Rand = r
	components.Navigator.SetValue(agent, components.NavigatorData{Navigator: nav})

	instance := model.Clone()
	components.Model.SetValue(agent, components.ModelData{Model: instance})
	components.Animation.Set(agent, GenerateAnimations(instance, nil))

	return agent
}
