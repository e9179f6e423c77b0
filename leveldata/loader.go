package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

const (
	groupWaypoints   = "Waypoints"
	groupPlayerSpawn = "PlayerSpawn"
	originObject     = "Origin"
)

// LoadLevel parses a TMX file. Point objects are in pixels; the "Origin" object in the
// Waypoints group marks world (0, 0) and carries pixelsPerUnit, zone and navmesh properties.
// Each point's "height" property becomes its world y. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")}
	proj := projection{scale: float64(levelMap.TileWidth)}

	// The origin has to be known before any point can be placed
	for _, og := range levelMap.ObjectGroups {
		if og.Name != groupWaypoints {
			continue
		}
		for _, o := range og.Objects {
			if o.Name != originObject {
				continue
			}
			proj.originX, proj.originY = o.X, o.Y
			if ppu := o.Properties.GetFloat("pixelsPerUnit"); ppu > 0 {
				proj.scale = ppu
			}
			level.Zone = o.Properties.GetString("zone")
			level.NavMesh = o.Properties.GetString("navmesh")
		}
	}
	if proj.scale <= 0 {
		proj.scale = 1
	}

	var points []mgl64.Vec3
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupWaypoints:
			for _, o := range og.Objects {
				if o.Name == originObject {
					continue
				}
				points = append(points, proj.world(o.X, o.Y, o.Properties.GetFloat("height")))
			}
		case groupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = proj.world(o.X, o.Y, o.Properties.GetFloat("height"))
				level.HasPlayerSpawn = true
			}
		}
	}
	level.Waypoints = NewWaypointPool(points)

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns them keyed by
// stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// projection maps TMX pixel coordinates onto the world XZ plane.
type projection struct {
	originX, originY float64
	scale            float64
}

func (p projection) world(x, y, height float64) mgl64.Vec3 {
	return mgl64.Vec3{(x - p.originX) / p.scale, height, (y - p.originY) / p.scale}
}
