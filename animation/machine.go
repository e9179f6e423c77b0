package animation

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

// CrossFadeDuration is the blend window between two looping actions, in seconds.
const CrossFadeDuration = 0.5

var ErrUnknownAction = errors.New("animation: no clip for action")

// Transition reports how SetAction switched actions.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionStart
	TransitionCrossFade
	TransitionCut
)

func (t Transition) String() string {
	switch t {
	case TransitionStart:
		return "start"
	case TransitionCrossFade:
		return "crossfade"
	case TransitionCut:
		return "cut"
	default:
		return "none"
	}
}

// Rotatable is a scene node whose local orientation can be overridden.
type Rotatable interface {
	SetRotation(q mgl64.Quat)
}

// AimPose pins a held prop to a fixed orientation per action.
type AimPose struct {
	Prop      Rotatable
	Overrides map[ActionID]mgl64.Quat
}

// propCorrection turns the prop's authored axis onto the hand.
var propCorrection = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})

// StateMachine selects which clip an instance plays and blends between them.
type StateMachine struct {
	Aim *AimPose

	set      *Set
	mixer    *Mixer
	current  ActionID
	action   *Action
	previous *Action
	noFade   bool
}

func NewStateMachine(set *Set) *StateMachine {
	return &StateMachine{set: set, mixer: NewMixer(), current: ActionNone}
}

// Current returns the active action, or ActionNone before the first SetAction.
func (m *StateMachine) Current() ActionID {
	return m.current
}

// Action returns the clip action currently playing.
func (m *StateMachine) Action() *Action {
	return m.action
}

// Previous returns the action being faded out, if a crossfade is in progress.
func (m *StateMachine) Previous() *Action {
	return m.previous
}

func (m *StateMachine) Mixer() *Mixer {
	return m.mixer
}

func (m *StateMachine) Set() *Set {
	return m.set
}

// SetAction switches to id. Repeating the current action does nothing. Leaving a terminal
// action cuts it instead of fading.
func (m *StateMachine) SetAction(id ActionID) (Transition, error) {
	if id == m.current && m.action != nil {
		return TransitionNone, nil
	}

	clip, ok := m.set.Clip(id)
	if !ok {
		log.Error("unknown animation", "action", id)
		return TransitionNone, fmt.Errorf("%w: %s", ErrUnknownAction, id)
	}

	action := m.mixer.ClipAction(clip)
	if IsTerminal(id) {
		action.Loop = LoopOnce
		action.ClampWhenFinished = true
	} else {
		action.Loop = LoopRepeat
		action.ClampWhenFinished = false
	}
	action.Reset()
	action.SetEffectiveWeight(1)
	action.Play()

	transition := TransitionStart
	m.previous = nil
	if m.action != nil && m.action != action {
		if m.noFade {
			m.action.Enabled = false
			transition = TransitionCut
		} else {
			m.action.CrossFadeTo(action, CrossFadeDuration)
			m.previous = m.action
			transition = TransitionCrossFade
		}
	}

	m.noFade = IsTerminal(id)
	m.current = id
	m.action = action
	m.applyAim(id)
	return transition, nil
}

// SetActionName parses name and forwards to SetAction.
func (m *StateMachine) SetActionName(name string) (Transition, error) {
	id, ok := ParseAction(name)
	if !ok {
		log.Error("unknown animation", "name", name)
		return TransitionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return m.SetAction(id)
}

// Update advances the mixer. It runs every frame whatever the current action.
func (m *StateMachine) Update(dt float64) {
	m.mixer.Update(dt)
	if m.previous != nil && (!m.previous.Enabled || !m.previous.Fading()) {
		m.previous = nil
	}
}

func (m *StateMachine) applyAim(id ActionID) {
	if m.Aim == nil || m.Aim.Prop == nil {
		return
	}
	q, ok := m.Aim.Overrides[id]
	if !ok {
		return
	}
	m.Aim.Prop.SetRotation(q.Mul(propCorrection))
}
