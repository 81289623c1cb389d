package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type keyAction int

const (
	actionCycleTheme keyAction = iota
	actionAutoTheme
	actionIntensityUp
	actionIntensityDown
	actionRefresh
	actionNextCity
	actionPrevCity
	actionCycleFilter
	actionQuit
)

// pressedActions reads this frame's key presses. Ctrl or Alt chords are left
// to the window manager.
func pressedActions() []keyAction {
	if ctrlDown() || altDown() {
		return nil
	}
	var out []keyAction
	if rl.IsKeyPressed(rl.KeyT) {
		out = append(out, actionCycleTheme)
	}
	if rl.IsKeyPressed(rl.KeyA) {
		out = append(out, actionAutoTheme)
	}
	// '+' shares its key with '='.
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		out = append(out, actionIntensityUp)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		out = append(out, actionIntensityDown)
	}
	if rl.IsKeyPressed(rl.KeyR) && !shiftDown() {
		out = append(out, actionRefresh)
	}
	if rl.IsKeyPressed(rl.KeyC) {
		if shiftDown() {
			out = append(out, actionPrevCity)
		} else {
			out = append(out, actionNextCity)
		}
	}
	if rl.IsKeyPressed(rl.KeyF) {
		out = append(out, actionCycleFilter)
	}
	if rl.IsKeyPressed(rl.KeyQ) && shiftDown() {
		out = append(out, actionQuit)
	}
	return out
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

func altDown() bool {
	return rl.IsKeyDown(rl.KeyLeftAlt) || rl.IsKeyDown(rl.KeyRightAlt)
}
