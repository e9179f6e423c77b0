package controller

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/navpatrol/locomotion"
	"github.com/automoto/navpatrol/navmesh"
)

// Movement is the locomotion state reported to the animation layer.
type Movement int

const (
	MoveIdle Movement = iota
	MoveWalk
	MoveRun
)

func (m Movement) String() string {
	switch m {
	case MoveWalk:
		return "walk"
	case MoveRun:
		return "run"
	default:
		return "idle"
	}
}

// Surface answers downward probes against the walkable mesh.
type Surface interface {
	RaycastDown(zoneID string, origin mgl64.Vec3) (navmesh.Hit, bool)
}

// Settings are the tuning values of direct player control.
type Settings struct {
	Speed             float64
	BackwardScale     float64
	ProbeHeight       float64
	TurnRate          float64
	TurnDeadzone      float64
	RunSpeedThreshold float64
	RunGrace          float64
}

// Result describes what one Update did.
type Result struct {
	Moved    bool
	Rejected bool // no surface under the step
	Turned   bool
	Fired    bool
	Step     float64 // signed, negative when backing up
	State    Movement
}

// Player applies intent to a body, keeping it on the navmesh.
type Player struct {
	Settings
	ZoneID string
	State  Movement

	fastSince float64
	fast      bool
}

func NewPlayer(s Settings, zoneID string) *Player {
	return &Player{Settings: s, ZoneID: zoneID}
}

var (
	worldUp      = mgl64.Vec3{0, 1, 0}
	localForward = mgl64.Vec3{0, 0, 1}
)

// Update advances the player by one tick. elapsed is the scene clock in seconds. A step is
// taken only onto a surface hit, so a nil surface rejects every step. Turning works without one.
func (p *Player) Update(dt, elapsed float64, in Intent, body *locomotion.Body, surface Surface) Result {
	var res Result

	if in.Up != 0 {
		speed := p.Speed * dt
		if in.Up < 0 {
			speed *= p.BackwardScale
		}
		step := speed * in.Up
		forward := body.Rotation.Rotate(localForward)
		next := body.Position.Add(forward.Mul(step))
		probe := next.Add(worldUp.Mul(p.ProbeHeight))

		if surface == nil {
			res.Rejected = true
		} else if hit, ok := surface.RaycastDown(p.ZoneID, probe); ok {
			body.Position = hit.Point
			res.Moved = true
			res.Step = step
		} else {
			res.Rejected = true
		}
	}

	if math.Abs(in.Right) > p.TurnDeadzone {
		lateral := in.Right - math.Copysign(p.TurnDeadzone, in.Right)
		yaw := -dt * lateral * p.TurnRate
		body.Rotation = mgl64.QuatRotate(yaw, worldUp).Mul(body.Rotation).Normalize()
		res.Turned = true
	}

	switch {
	case !res.Moved && !res.Turned:
		p.fast = false
		p.State = MoveIdle
	case res.Step > p.RunSpeedThreshold:
		if !p.fast {
			p.fast = true
			p.fastSince = elapsed
		}
		if elapsed-p.fastSince > p.RunGrace {
			p.State = MoveRun
		} else {
			p.State = MoveWalk
		}
	default:
		p.fast = false
		p.State = MoveWalk
	}
	res.State = p.State

	if in.Fire {
		log.Info("fire", "position", body.Position)
		res.Fired = true
	}
	return res
}
