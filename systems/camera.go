package systems

import (
	"github.com/automoto/navpatrol/components"
	"github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera moves the rig after the player and keeps the debug view centred on it.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Transform.Get(playerEntry).Body
	input := getOrCreateInput(e)
	dt, _ := tick(e)

	camera.Rig.Update(dt, input.Intent, target)

	// Center the view on the player, with some smoothing
	smoothing := config.Camera.FollowFactor
	camera.Position.X += (target.Position.X() - camera.Position.X) * smoothing
	camera.Position.Y += (target.Position.Z() - camera.Position.Y) * smoothing
}
