package components

import (
	"github.com/automoto/navpatrol/navmesh"
	"github.com/yohamta/donburi"
)

// NavMeshData is the shared navmesh facade. Ready flips once the zone geometry is registered.
type NavMeshData struct {
	Pathfinding *navmesh.Pathfinding
	ZoneID      string
	Ready       bool
	Failed      bool
}

var NavMesh = donburi.NewComponentType[NavMeshData]()
