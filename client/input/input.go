package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJumpJustPressed returns a boolean value indicating whether a jump input
// is just pressed. This is used to handle keyboard, mouse, touch and gamepad
// inputs.
func IsJumpJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else {
			// The button 0 might not be the A button.
			if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
				return true
			}
		}
	}
	return false
}

// IsQuitJustPressed returns whether the quit input is just pressed.
func IsQuitJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
