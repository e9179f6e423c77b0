package components

import (
	"github.com/automoto/navpatrol/locomotion"
	"github.com/yohamta/donburi"
)

type NavigatorData struct {
	*locomotion.Navigator
}

var Navigator = donburi.NewComponentType[NavigatorData]()
