package components

import (
	"math/rand"

	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/leveldata"
	"github.com/yohamta/donburi"
)

// AgentPoolData tracks the patrol crowd. Agents are spawned once the model, the navmesh and the
// level waypoints are all available.
type AgentPoolData struct {
	Count     int
	Model     *assets.Model
	ModelDone bool // the model load finished, successfully or not
	Level     *leveldata.Level
	LevelDone bool
	Waypoints *leveldata.WaypointPool
	Rand      *rand.Rand

	// Agents in spawn order
	Agents  []donburi.Entity
	Spawned bool
	Waiting bool // a "waiting" message has been logged
}

var AgentPool = donburi.NewComponentType[AgentPoolData]()
