// Package animation drives skeletal clip playback: a small clip mixer with crossfades and the
// action state machine agents use to pick what to play.
package animation

import "strings"

// ActionID identifies an animation action.
type ActionID int

const (
	ActionNone ActionID = -1

	Idle ActionID = iota
	Walking
	Walk
	Run
	Shot
	Death
	Firing
)

// ActionToClipName maps an ActionID to the lowercase clip name it plays.
var ActionToClipName = map[ActionID]string{
	Idle:    "idle",
	Walking: "walking",
	Walk:    "walk",
	Run:     "run",
	Shot:    "shot",
	Death:   "death",
	Firing:  "firing",
}

var clipNameToAction = func() map[string]ActionID {
	m := make(map[string]ActionID, len(ActionToClipName))
	for id, name := range ActionToClipName {
		m[name] = id
	}
	return m
}()

func (a ActionID) String() string {
	if name, ok := ActionToClipName[a]; ok {
		return name
	}
	return "none"
}

// ParseAction converts a clip name to its ActionID, ignoring case.
func ParseAction(name string) (ActionID, bool) {
	id, ok := clipNameToAction[strings.ToLower(name)]
	if !ok {
		return ActionNone, false
	}
	return id, true
}

// IsTerminal reports whether an action plays once and holds its final pose.
func IsTerminal(id ActionID) bool {
	return id == Shot || id == Death
}
