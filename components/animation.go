package components

import (
	"github.com/automoto/navpatrol/animation"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	*animation.StateMachine
	// Locked is set while a terminal one-shot owns the pose, so movement sync leaves it alone.
	Locked bool
}

var Animation = donburi.NewComponentType[AnimationData]()
