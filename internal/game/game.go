package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/snake/internal/sound"
)

// foodGlowWidth is the stroke width of the border around the food cell.
const foodGlowWidth = 2

// noticeTicks is how long a notice stays under the game-over banner.
const noticeTicks = 45

// Game is the windowed frontend: it feeds keyboard input into an Engine on
// every Ebiten tick and draws the result. Ebiten's TPS is the frame clock.
type Game struct {
	cfg    Config
	engine *Engine
	hud    *hud
	cues   sound.Player
	logger *log.Logger

	keys    []ebiten.Key // reused just-pressed buffer
	cmds    []Command    // reused command buffer
	showLog bool

	notice      string
	noticeTimer int

	copyText func(string) error
}

// New wraps engine in a window frontend. cues may be nil for silence.
func New(engine *Engine, cues sound.Player, logger *log.Logger) (*Game, error) {
	h, err := newHUD()
	if err != nil {
		return nil, err
	}
	if cues == nil {
		cues = sound.Mute{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Game{
		cfg:      engine.Config(),
		engine:   engine,
		hud:      h,
		cues:     cues,
		logger:   logger,
		copyText: setClipboardText,
	}, nil
}

// Run opens the window and blocks until the player quits.
func (g *Game) Run() error {
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetTPS(g.cfg.FPS)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(g)
}

// Engine exposes the engine the window drives.
func (g *Game) Engine() *Engine { return g.engine }

func (g *Game) Update() error {
	cmds := g.pollCommands()
	out, quit := g.engine.Tick(cmds)
	if quit {
		return ebiten.Termination
	}
	g.playCue(out)
	if g.noticeTimer > 0 {
		g.noticeTimer--
		if g.noticeTimer == 0 {
			g.notice = ""
		}
	}
	return nil
}

// pollCommands turns this tick's key presses into engine commands, handling
// window-only keys on the way. A window close request is queued first so it
// wins over anything else pressed in the same tick.
func (g *Game) pollCommands() []Command {
	g.cmds = g.cmds[:0]
	if ebiten.IsWindowBeingClosed() {
		g.cmds = append(g.cmds, CmdQuit)
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case keyToggleLog:
			g.showLog = !g.showLog
			continue
		case keyCopyScore:
			if g.engine.GameOver() {
				g.copyScore()
			}
			continue
		}
		if c, ok := commandForKey(k); ok {
			g.cmds = append(g.cmds, c)
		}
	}
	return g.cmds
}

func (g *Game) copyScore() {
	if err := g.copyText(scoreLine(g.engine.Score(), g.engine.Len())); err != nil {
		g.logger.Printf("copy score: %v", err)
		g.setNotice("Clipboard unavailable")
		return
	}
	g.setNotice("Score copied to clipboard")
}

func (g *Game) setNotice(s string) {
	g.notice = s
	g.noticeTimer = noticeTicks
}

func (g *Game) playCue(out Outcome) {
	switch out {
	case OutcomeAte:
		g.cues.Play(sound.CueEat)
	case OutcomeCrashed:
		g.cues.Play(sound.CueCrash)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.drawSnake(screen)
	g.drawFood(screen)
	g.hud.drawScore(screen, g.engine.Score())
	if g.engine.GameOver() {
		notice := g.notice
		if notice == "" {
			notice = "Press C to copy your score"
		}
		g.hud.drawGameOver(screen, g.cfg.Width, g.cfg.Height, notice)
	}
	if g.showLog {
		drawEventLog(screen, g.engine.Events().Recent(logLines), g.cfg.Height)
	}
}

func (g *Game) drawSnake(screen *ebiten.Image) {
	cs := float32(g.cfg.CellSize)
	for i := 0; i < g.engine.Len(); i++ {
		x, y := g.engine.Segment(i).Pixels(g.cfg.CellSize)
		vector.DrawFilledRect(screen, float32(x), float32(y), cs, cs, SegmentColor(i), false)
	}
}

// drawFood fills the food cell and strokes a glow border whose outer edge
// sits foodGlowWidth pixels outside the cell.
func (g *Game) drawFood(screen *ebiten.Image) {
	cs := float32(g.cfg.CellSize)
	px, py := g.engine.Food().Pixels(g.cfg.CellSize)
	x, y := float32(px), float32(py)
	vector.DrawFilledRect(screen, x, y, cs, cs, colorFood, false)
	const half = foodGlowWidth / 2
	vector.StrokeRect(screen, x-half, y-half, cs+2*half, cs+2*half, foodGlowWidth, colorFoodGlow, false)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
