package components

import (
	"github.com/automoto/navpatrol/locomotion"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in the world. The embedded body is what locomotion and the
// player controller move.
type TransformData struct {
	locomotion.Body
	Scale float64
}

var Transform = donburi.NewComponentType[TransformData]()
