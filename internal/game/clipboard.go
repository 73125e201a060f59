package game

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("clipboard not available on this system")

// scoreLine is the text copied from the game-over screen.
func scoreLine(score, length int) string {
	return fmt.Sprintf("Snake: scored %d with a length of %d", score, length)
}

// setClipboardText writes text to the system clipboard.
func setClipboardText(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	if text == "" {
		text = " "
	}
	return clipboard.WriteAll(text)
}
