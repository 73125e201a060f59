package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
)

const (
	hudFontSize    = 28
	noticeFontSize = 16
	scoreX         = 10
	scoreY         = 10

	logLines      = 8
	logLineHeight = 16 // DebugPrint glyphs are 6x16
	logPad        = 4
)

const gameOverMessage = "GAME OVER! Press R to Restart"

// hud draws the text overlays: score, game-over banner and the event strip.
type hud struct {
	face   *text.GoTextFace
	notice *text.GoTextFace
}

func newHUD() (*hud, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("game: load hud font: %w", err)
	}
	return &hud{
		face:   &text.GoTextFace{Source: src, Size: hudFontSize},
		notice: &text.GoTextFace{Source: src, Size: noticeFontSize},
	}, nil
}

func (h *hud) drawScore(screen *ebiten.Image, score int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(scoreX, scoreY)
	op.ColorScale.ScaleWithColor(colorScore)
	text.Draw(screen, fmt.Sprintf("Score: %d", score), h.face, op)
}

// drawGameOver centres the banner on the playfield, with an optional notice
// line underneath it.
func (h *hud) drawGameOver(screen *ebiten.Image, width, height int, notice string) {
	w, ht := text.Measure(gameOverMessage, h.face, 0)
	h.drawCentered(screen, gameOverMessage, h.face, float64(width)/2-w/2, float64(height)/2-ht/2, colorGameOver)
	if notice == "" {
		return
	}
	nw, _ := text.Measure(notice, h.notice, 0)
	h.drawCentered(screen, notice, h.notice, float64(width)/2-nw/2, float64(height)/2+ht, colorNotice)
}

func (h *hud) drawCentered(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawEventLog renders the newest engine events in the bottom-left corner.
func drawEventLog(screen *ebiten.Image, events []Event, height int) {
	if len(events) == 0 {
		return
	}
	maxLen := 0
	for _, e := range events {
		if n := len(e.String()); n > maxLen {
			maxLen = n
		}
	}
	boxW := float32(maxLen*6 + logPad*2)
	boxH := float32(len(events)*logLineHeight + logPad*2)
	by := float32(height) - boxH - logPad
	vector.DrawFilledRect(screen, logPad, by, boxW, boxH, colorLogPanel, false)
	for i, e := range events {
		ebitenutil.DebugPrintAt(screen, e.String(), logPad*2, int(by)+logPad+i*logLineHeight)
	}
}
