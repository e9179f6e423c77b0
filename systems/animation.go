package systems

import (
	"github.com/automoto/navpatrol/animation"
	"github.com/automoto/navpatrol/components"
	"github.com/automoto/navpatrol/controller"
	"github.com/automoto/navpatrol/locomotion"
	"github.com/automoto/navpatrol/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations picks each entity's action from its movement state and advances its mixer.
// Must run after UpdateLocomotion and UpdatePlayer.
func UpdateAnimations(e *ecs.ECS) {
	dt, _ := tick(e)
	for _, agent := range Agents(e) {
		updateAnimation(agent, dt)
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		updateAnimation(entry, dt)
	})
}

func updateAnimation(entry *donburi.Entry, dt float64) {
	anim := components.Animation.Get(entry)
	if anim.StateMachine == nil {
		return
	}
	if !anim.Locked {
		// Unknown actions are logged by the machine and leave it unchanged
		_, _ = anim.SetAction(movementAction(entry, anim.Set()))
	}
	anim.Update(dt)
}

// movementAction maps the entity's movement state onto an action its clip set can play.
func movementAction(entry *donburi.Entry, set *animation.Set) animation.ActionID {
	walking := false
	if entry.HasComponent(components.Navigator) {
		if nav := components.Navigator.Get(entry); nav.Navigator != nil {
			walking = nav.State == locomotion.Walking
		}
	}

	if entry.HasComponent(components.Player) {
		player := components.Player.Get(entry)
		switch {
		case player.State == controller.MoveRun:
			return animation.Run
		case player.State == controller.MoveWalk || walking:
			return walkAction(set)
		case player.Last.Fired && set.Has(animation.Firing):
			return animation.Firing
		}
		return animation.Idle
	}

	if walking {
		return walkAction(set)
	}
	return animation.Idle
}

// walkAction prefers the patrol "walking" clip and falls back to "walk".
func walkAction(set *animation.Set) animation.ActionID {
	if set.Has(animation.Walking) {
		return animation.Walking
	}
	return animation.Walk
}
