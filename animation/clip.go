package animation

import (
	"strings"

	"github.com/charmbracelet/log"
)

// Clip is a named keyframe track set. Only its timing matters to the mixer.
type Clip struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// Set maps actions to the clips loaded for a model. It is built once and shared read-only by
// every instance of that model.
type Set struct {
	clips map[ActionID]*Clip
}

// NewSet resolves clip names to actions. A model without an exact "idle" clip uses the first
// clip whose name contains "idle". Clips that name no known action are skipped.
func NewSet(clips []*Clip) *Set {
	s := &Set{clips: make(map[ActionID]*Clip)}
	for _, c := range clips {
		id, ok := ParseAction(c.Name)
		if !ok {
			continue
		}
		if _, dup := s.clips[id]; !dup {
			s.clips[id] = c
		}
	}

	if _, ok := s.clips[Idle]; !ok {
		for _, c := range clips {
			if strings.Contains(strings.ToLower(c.Name), "idle") {
				s.clips[Idle] = c
				log.Debug("idle action mapped by substring", "clip", c.Name)
				break
			}
		}
	}
	return s
}

func (s *Set) Clip(id ActionID) (*Clip, bool) {
	c, ok := s.clips[id]
	return c, ok
}

func (s *Set) Has(id ActionID) bool {
	_, ok := s.clips[id]
	return ok
}

func (s *Set) Len() int {
	return len(s.clips)
}
