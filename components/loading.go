package components

import (
	"github.com/automoto/navpatrol/assets"
	"github.com/yohamta/donburi"
)

type LoadingData struct {
	Loader *assets.Loader
}

var Loading = donburi.NewComponentType[LoadingData]()
