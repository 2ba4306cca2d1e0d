package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionThrust              // Up, W, Space - main engine
	ActionRotateLeft          // Left, A - rotate counter-clockwise
	ActionRotateRight         // Right, D - rotate clockwise
	ActionLateralLeft         // Z - left side thruster
	ActionLateralRight        // X - right side thruster
	ActionConfirm             // Enter - continue to next level
	ActionRestart             // R - retry the level after a crash
	ActionQuit                // Q, Ctrl+C - exit game/session
	ActionPause               // P - pause/unpause game

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:         "None",
	ActionThrust:       "Thrust",
	ActionRotateLeft:   "RotateLeft",
	ActionRotateRight:  "RotateRight",
	ActionLateralLeft:  "LateralLeft",
	ActionLateralRight: "LateralRight",
	ActionConfirm:      "Confirm",
	ActionRestart:      "Restart",
	ActionQuit:         "Quit",
	ActionPause:        "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions active during one simulation tick.
// The zero value is an empty frame and frames are copied by value.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as triggered for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << uint(a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.bits&(1<<uint(a)) != 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}
