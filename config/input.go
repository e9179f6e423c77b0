package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionForward
	ActionBackward
	ActionTurnLeft
	ActionTurnRight
	ActionFire
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Mouse button used for free-look drags
	LookButton ebiten.MouseButton
	// Mouse buttons that send a move order in the debug view
	AgentMoveButton  ebiten.MouseButton
	PlayerMoveButton ebiten.MouseButton
	// Stick deflection below this is ignored
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		LookButton:       ebiten.MouseButtonMiddle,
		AgentMoveButton:  ebiten.MouseButtonLeft,
		PlayerMoveButton: ebiten.MouseButtonRight,
		AnalogDeadzone:   0.25,
		Bindings: map[ActionID]InputBinding{
			ActionForward:   {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp}},
			ActionBackward:  {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown}},
			ActionTurnLeft:  {Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft}},
			ActionTurnRight: {Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight}},
			ActionFire: {
				Keys:                   []ebiten.Key{ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight, ebiten.StandardGamepadButtonRightBottom},
			},
			ActionQuit: {
				Keys:                   []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
		},
	}
}
