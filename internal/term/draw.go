package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/snake/internal/game"
)

const gameOverMessage = "GAME OVER! Press R to Restart"

var (
	styleBoard = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleFrame = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorBlack)
	styleScore = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
	styleOver  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack).Bold(true)
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw clears the screen and renders the board, score and game-over banner.
func (f *Frontend) Draw() {
	s := f.screen
	s.Clear()
	cols, rows := f.engine.Cols(), f.engine.Rows()

	for y := 0; y < rows; y++ {
		for x := 0; x < cols*cellCols; x++ {
			s.SetContent(x, boardTop+y, ' ', nil, styleBoard)
		}
	}
	for x := 0; x < cols*cellCols; x++ {
		s.SetContent(x, boardTop+rows, '─', nil, styleFrame)
	}

	for i := 0; i < f.engine.Len(); i++ {
		p := f.engine.Segment(i)
		st := tcell.StyleDefault.Background(rgb(game.SegmentColor(i)))
		f.setCell(p, ' ', ' ', st)
	}

	// Food: red cell with yellow brackets for the glow border.
	food := tcell.StyleDefault.Background(rgb(game.FoodColor())).Foreground(rgb(game.FoodGlowColor())).Bold(true)
	f.setCell(f.engine.Food(), '[', ']', food)

	drawText(s, 0, 0, fmt.Sprintf("Score: %d", f.engine.Score()), styleScore)

	if f.engine.GameOver() {
		w := cols * cellCols
		x := (w - len(gameOverMessage)) / 2
		if x < 0 {
			x = 0
		}
		drawText(s, x, boardTop+rows/2, gameOverMessage, styleOver)
	}
	s.Show()
}

func (f *Frontend) setCell(p game.Point, left, right rune, st tcell.Style) {
	x := p.X * cellCols
	y := boardTop + p.Y
	f.screen.SetContent(x, y, left, nil, st)
	f.screen.SetContent(x+1, y, right, nil, st)
}

func drawText(s tcell.Screen, x, y int, str string, st tcell.Style) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, st)
	}
}
