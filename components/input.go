package components

import (
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// MoveOrder is a click in the debug view asking an agent to walk somewhere.
type MoveOrder struct {
	Screen math.Vec2
	Player bool // true sends the player, false sends the first patrol agent
}

// InputData stores the current and previous frame's pressed state for all actions plus the
// analog and pointer state that feeds the player intent.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	// Sticks with the deadzone applied. Stick.Y is forward positive.
	Stick math.Vec2
	Look  math.Vec2

	// Free-look drag offset from where the drag started, in pixels
	Drag      math.Vec2
	DragStart math.Vec2
	Dragging  bool

	Orders []MoveOrder
	Intent controller.Intent
}

var Input = donburi.NewComponentType[InputData]()
