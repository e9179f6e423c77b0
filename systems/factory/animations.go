package factory

import (
	"github.com/automoto/navpatrol/animation"
	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// GenerateAnimations builds a state machine over the model's clips and starts it idle. aim may
// be nil; when set it is attached before the first action so the idle pose is applied.
func GenerateAnimations(model *assets.Model, aim *animation.AimPose) *components.AnimationData {
	machine := animation.NewStateMachine(animation.NewSet(model.Clips))
	machine.Aim = aim
	if _, err := machine.SetAction(animation.Idle); err != nil {
		log.Warn("model has no idle clip", "model", model.Name)
	}
	return &components.AnimationData{StateMachine: machine}
}

// GenerateAimPose pins the configured weapon node to the per-action orientations in
// cfg.Animation. It returns nil when the model carries no such node.
func GenerateAimPose(model *assets.Model) *animation.AimPose {
	prop := model.Root.Find(cfg.Animation.WeaponNode)
	if prop == nil {
		return nil
	}

	pose := &animation.AimPose{
		Prop:      prop,
		Overrides: make(map[animation.ActionID]mgl64.Quat, len(cfg.Animation.AimPoses)),
	}
	for name, deg := range cfg.Animation.AimPoses {
		id, ok := animation.ParseAction(name)
		if !ok {
			log.Warn("unknown action in aim poses", "action", name)
			continue
		}
		pose.Overrides[id] = mgl64.AnglesToQuat(
			mgl64.DegToRad(deg[0]),
			mgl64.DegToRad(deg[1]),
			mgl64.DegToRad(deg[2]),
			mgl64.XYZ,
		)
	}
	return pose
}
