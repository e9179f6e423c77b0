package systems

import (
	"github.com/automoto/navpatrol/components"
	cfg "github.com/automoto/navpatrol/config"
	"github.com/automoto/navpatrol/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input, records move-order clicks and rebuilds the player intent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Orders = input.Orders[:0]

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	input.Stick, input.Look = getStickState(gamepadIDs)
	if input.Stick != (math.Vec2{}) || input.Look != (math.Vec2{}) {
		gamepadUsed = true
	}

	pollPointer(input)

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	input.Intent = BuildIntent(input)
}

// pollPointer tracks the free-look drag and queues move orders from clicks.
func pollPointer(input *components.InputData) {
	x, y := ebiten.CursorPosition()
	cursor := math.NewVec2(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(cfg.Input.LookButton) {
		input.Dragging = true
		input.DragStart = cursor
	}
	if input.Dragging {
		if ebiten.IsMouseButtonPressed(cfg.Input.LookButton) {
			input.Drag = math.NewVec2(cursor.X-input.DragStart.X, cursor.Y-input.DragStart.Y)
		} else {
			input.Dragging = false
			input.Drag = math.Vec2{}
		}
	}

	if inpututil.IsMouseButtonJustPressed(cfg.Input.AgentMoveButton) {
		input.Orders = append(input.Orders, components.MoveOrder{Screen: cursor})
	}
	if inpututil.IsMouseButtonJustPressed(cfg.Input.PlayerMoveButton) {
		input.Orders = append(input.Orders, components.MoveOrder{Screen: cursor, Player: true})
	}
}

// getStickState reads both analog sticks from the first gamepad that is deflected past the
// deadzone. The move stick's Y is flipped so pushing forward is positive.
func getStickState(gamepads []ebiten.GamepadID) (move, look math.Vec2) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		mx := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal), deadzone)
		my := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical), deadzone)
		lx := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal), deadzone)
		ly := applyDeadzone(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical), deadzone)
		if mx == 0 && my == 0 && lx == 0 && ly == 0 {
			continue
		}
		return math.NewVec2(mx, -my), math.NewVec2(lx, ly)
	}
	return math.Vec2{}, math.Vec2{}
}

func applyDeadzone(v, deadzone float64) float64 {
	if v > -deadzone && v < deadzone {
		return 0
	}
	return v
}

// BuildIntent converts the polled state into the controller's intent. A deflected stick
// overrides the matching keys.
func BuildIntent(input *components.InputData) controller.Intent {
	keys := controller.KeyState{
		Forward:  input.Current[cfg.ActionForward],
		Backward: input.Current[cfg.ActionBackward],
		Left:     input.Current[cfg.ActionTurnLeft],
		Right:    input.Current[cfg.ActionTurnRight],
		Fire:     GetAction(input, cfg.ActionFire).JustPressed,
		Dragging: input.Dragging,
		DragX:    input.Drag.X,
		DragY:    input.Drag.Y,
	}
	in := keys.Intent(cfg.Camera.DragClamp, cfg.Camera.LookUpScale)

	if input.Stick.Y != 0 {
		in.Up = input.Stick.Y
	}
	if input.Stick.X != 0 {
		in.Right = input.Stick.X
	}
	if input.Look.X != 0 || input.Look.Y != 0 {
		in.LookRight = -input.Look.X
		in.LookUp = -input.Look.Y * cfg.Camera.LookUpScale
	}
	return in
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
