package game

import "github.com/hajimehoshi/ebiten/v2"

// Keys handled by the window itself rather than the engine.
const (
	keyToggleLog = ebiten.KeyH
	keyCopyScore = ebiten.KeyC
)

// commandForKey maps a just-pressed key to an engine command.
func commandForKey(k ebiten.Key) (Command, bool) {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return CmdUp, true
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return CmdDown, true
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return CmdLeft, true
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return CmdRight, true
	case ebiten.KeyR:
		return CmdReset, true
	case ebiten.KeyEscape:
		return CmdQuit, true
	}
	return CmdNone, false
}
