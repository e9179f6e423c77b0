package tags

import "github.com/yohamta/donburi"

var (
	Agent  = donburi.NewTag().SetName("Agent")
	Player = donburi.NewTag().SetName("Player")
)
