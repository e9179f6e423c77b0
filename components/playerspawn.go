package components

import (
	"github.com/automoto/navpatrol/assets"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PlayerSpawnData holds what the player entity needs before it can be created.
type PlayerSpawnData struct {
	Model     *assets.Model
	ModelDone bool
	Spawned   bool

	// Restored pose from the last session, if any
	HasSaved bool
	SavedPos mgl64.Vec3
	SavedYaw float64
}

var PlayerSpawn = donburi.NewComponentType[PlayerSpawnData]()
