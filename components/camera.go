package components

import (
	"github.com/automoto/navpatrol/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Rig *controller.Rig
	// Center of the top-down debug view, in world X/Z
	Position math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
