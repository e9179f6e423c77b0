package factory

import (
	"github.com/automoto/navpatrol/archetypes"
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/controller"
	"github.com/automoto/navpatrol/locomotion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the rig behind target and centres the debug view on it.
func CreateCamera(ecs *ecs.ECS, target locomotion.Body) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	off := cfg.Camera.Offset
	components.Camera.Set(camera, &components.CameraData{
		Rig:      controller.NewRig(mgl64.Vec3{off[0], off[1], off[2]}, cfg.Camera.FollowFactor, target),
		Position: math.NewVec2(target.Position.X(), target.Position.Z()),
	})
	return camera
}
