package components

import (
	"github.com/automoto/navpatrol/controller"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	*controller.Player
	Last controller.Result
}

var Player = donburi.NewComponentType[PlayerData]()
