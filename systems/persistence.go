package systems

import (
	"encoding/json"
	"math"

	"github.com/automoto/navpatrol/components"
	"github.com/automoto/navpatrol/tags"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const poseItem = "player"

// SavedPose is the player's position and heading stored between sessions
type SavedPose struct {
	Position [3]float64 `json:"position"`
	Yaw      float64    `json:"yaw"` // radians about +Y
}

var gdataManager *gdata.Manager

// InitPersistence opens the per-user save location.
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	return nil
}

// LoadPlayerPose returns the saved pose, or nil when there is none.
func LoadPlayerPose() (*SavedPose, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(poseItem)
	if err != nil {
		log.Warn("could not load player pose", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var pose SavedPose
	if err := json.Unmarshal(data, &pose); err != nil {
		log.Warn("could not parse saved player pose", "err", err)
		return nil, err
	}
	return &pose, nil
}

// SavePlayerPose writes the pose to disk.
func SavePlayerPose(p *SavedPose) error {
	if gdataManager == nil || p == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Warn("could not serialize player pose", "err", err)
		return err
	}
	if err := gdataManager.SaveItem(poseItem, data); err != nil {
		log.Warn("could not save player pose", "err", err)
		return err
	}
	return nil
}

// CurrentPlayerPose reads the live player pose, or nil before the player has spawned.
func CurrentPlayerPose(e *ecs.ECS) *SavedPose {
	entry, ok := tags.Player.First(e.World)
	if !ok {
		return nil
	}
	body := components.Transform.Get(entry).Body
	return &SavedPose{
		Position: [3]float64{body.Position[0], body.Position[1], body.Position[2]},
		Yaw:      yawOf(body.Rotation),
	}
}

// ApplySavedPose makes the player spawn at the saved pose.
func ApplySavedPose(e *ecs.ECS, p *SavedPose) {
	spawn := getPlayerSpawn(e)
	if spawn == nil || p == nil {
		return
	}
	spawn.HasSaved = true
	spawn.SavedPos = mgl64.Vec3{p.Position[0], p.Position[1], p.Position[2]}
	spawn.SavedYaw = p.Yaw
}

// yawOf extracts the heading about +Y of a rotation.
func yawOf(q mgl64.Quat) float64 {
	f := q.Rotate(mgl64.Vec3{0, 0, 1})
	return math.Atan2(f.X(), f.Z())
}
