package systems

import (
	"github.com/automoto/navpatrol/components"
	"github.com/automoto/navpatrol/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion moves every patrol agent one step along its path, in spawn order, then the
// player when it is following a move order.
func UpdateLocomotion(e *ecs.ECS) {
	dt, _ := tick(e)
	for _, agent := range Agents(e) {
		advance(agent, dt)
	}
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		advance(entry, dt)
	})
}

func advance(entry *donburi.Entry, dt float64) {
	nav := components.Navigator.Get(entry)
	if nav.Navigator == nil {
		return
	}
	transform := components.Transform.Get(entry)
	nav.Advance(&transform.Body, dt)
}
