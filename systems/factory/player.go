package factory

import (
	"github.com/automoto/navpatrol/archetypes"
	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/controller"
	"github.com/automoto/navpatrol/locomotion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerSettings converts cfg.Player into controller tuning.
func PlayerSettings() controller.Settings {
	return controller.Settings{
		Speed:             cfg.Player.Speed,
		BackwardScale:     cfg.Player.BackwardScale,
		ProbeHeight:       cfg.Player.ProbeHeight,
		TurnRate:          cfg.Player.TurnRate,
		TurnDeadzone:      cfg.Player.TurnDeadzone,
		RunSpeedThreshold: cfg.Player.RunSpeedThreshold,
		RunGrace:          cfg.Player.RunGrace,
	}
}

// CreatePlayer spawns the directly controlled agent. Its navigator has no patrol pool, so a
// move order ends with the player standing on the clicked point.
func CreatePlayer(ecs *ecs.ECS, model *assets.Model, pf locomotion.Pathfinder, zoneID string,
	position mgl64.Vec3, yaw float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Transform.SetValue(player, components.TransformData{
		Body: locomotion.Body{
			Position: position,
			Rotation: mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0}),
		},
		Scale: cfg.Player.Scale,
	})
	components.Player.SetValue(player, components.PlayerData{
		Player: controller.NewPlayer(PlayerSettings(), zoneID),
	})

	nav := locomotion.NewNavigator(cfg.Player.Speed, pf, zoneID)
	components.Navigator.SetValue(player, components.NavigatorData{Navigator: nav})

	instance := model.Clone()
	components.Model.SetValue(player, components.ModelData{Model: instance})
	components.Animation.Set(player, GenerateAnimations(instance, GenerateAimPose(instance)))

	return player
}
