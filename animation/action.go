package animation

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type LoopMode int

const (
	LoopRepeat LoopMode = iota
	LoopOnce
)

// Action is the playback state of one clip inside a mixer.
type Action struct {
	Clip              *Clip
	Time              float64
	Loop              LoopMode
	ClampWhenFinished bool
	Enabled           bool
	Paused            bool

	weight  float64
	fade    *gween.Tween
	running bool
}

func newAction(c *Clip) *Action {
	return &Action{Clip: c, Enabled: true, weight: 1}
}

// Reset rewinds the action and cancels any fade in progress.
func (a *Action) Reset() *Action {
	a.Time = 0
	a.Enabled = true
	a.Paused = false
	a.fade = nil
	return a
}

func (a *Action) Play() *Action {
	a.running = true
	return a
}

func (a *Action) Stop() *Action {
	a.running = false
	a.fade = nil
	return a
}

// IsRunning reports whether the action is scheduled, enabled and not paused.
func (a *Action) IsRunning() bool {
	return a.running && a.Enabled && !a.Paused
}

// Weight is the influence of the action on the pose; disabled actions have none.
func (a *Action) Weight() float64 {
	if !a.Enabled {
		return 0
	}
	return a.weight
}

func (a *Action) SetEffectiveWeight(w float64) *Action {
	a.weight = w
	a.fade = nil
	return a
}

func (a *Action) Fading() bool {
	return a.fade != nil
}

// FadeIn ramps the weight from 0 to 1 over duration seconds.
func (a *Action) FadeIn(duration float64) *Action {
	return a.scheduleFade(duration, 0, 1)
}

// FadeOut ramps the weight from 1 to 0; the action disables itself when it reaches 0.
func (a *Action) FadeOut(duration float64) *Action {
	return a.scheduleFade(duration, 1, 0)
}

// CrossFadeTo fades this action out while other fades in.
func (a *Action) CrossFadeTo(other *Action, duration float64) *Action {
	a.FadeOut(duration)
	other.FadeIn(duration)
	return a
}

func (a *Action) scheduleFade(duration, from, to float64) *Action {
	a.weight = from
	if duration <= 0 {
		a.weight = to
		a.fade = nil
		if to == 0 {
			a.Enabled = false
		}
		return a
	}
	a.fade = gween.New(float32(from), float32(to), float32(duration), ease.Linear)
	return a
}

func (a *Action) update(dt float64) {
	if !a.running || !a.Enabled {
		return
	}

	if a.fade != nil {
		w, done := a.fade.Update(float32(dt))
		a.weight = float64(w)
		if done {
			a.fade = nil
			if a.weight == 0 {
				a.Enabled = false
				return
			}
		}
	}

	if a.Paused || a.Clip == nil || a.Clip.Duration <= 0 {
		return
	}

	a.Time += dt
	switch a.Loop {
	case LoopRepeat:
		a.Time = math.Mod(a.Time, a.Clip.Duration)
	case LoopOnce:
		if a.Time >= a.Clip.Duration {
			a.Time = a.Clip.Duration
			if a.ClampWhenFinished {
				a.Paused = true
			} else {
				a.Enabled = false
			}
		}
	}
}
