package assets

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"

	"github.com/automoto/navpatrol/navmesh"
)

// LoadZone builds a navmesh zone from a geometry file. ".json" holds geometry written by
// navmeshconv, ".obj" is read directly and ".zone" is a pre-baked zone. rotateX is applied to
// raw geometry before building.
func LoadZone(fsys fs.FS, p string, mergeTolerance, rotateX float64) (*navmesh.Zone, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read navmesh %s: %w", p, err)
	}

	var g *navmesh.Geometry
	switch path.Ext(p) {
	case ".zone":
		return navmesh.DecodeZone(data)
	case ".obj":
		g, err = navmesh.ParseOBJ(bytes.NewReader(data))
	default:
		g, err = navmesh.ParseGeometryJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("navmesh %s: %w", p, err)
	}

	if rotateX != 0 {
		g.RotateX(rotateX)
	}
	zone, err := navmesh.CreateZone(g, mergeTolerance)
	if err != nil {
		return nil, fmt.Errorf("navmesh %s: %w", p, err)
	}
	return zone, nil
}
