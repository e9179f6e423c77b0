package components

import (
	"github.com/automoto/navpatrol/assets"
	"github.com/yohamta/donburi"
)

// ModelData is the skeleton instance an entity owns exclusively.
type ModelData struct {
	*assets.Model
}

var Model = donburi.NewComponentType[ModelData]()
