package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/gridfall/tetris"
	"github.com/plus3/gridfall/tetris/debugui"
)

// Key repeat for held movement keys, in seconds.
const (
	repeatDelay = 0.2
	repeatRate  = 0.05
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorPanel      = color.RGBA{20, 20, 20, 255}
	colorGridLine   = color.RGBA{30, 30, 30, 255}
)

// Game adapts a session to ebiten's frame loop: it polls the keyboard into
// intents, advances the session by one fixed step per update and draws the
// resulting snapshot. All game rules live in the core; this type only
// translates.
type Game struct {
	session    *tetris.Session
	newSession func() *tetris.Session
	overlay    *debugui.Overlay
	logger     *slog.Logger

	cellSize int
	width    int
	height   int

	leftHeld  float64
	rightHeld float64
	downHeld  float64

	loggedGameOver bool
}

func (g *Game) Update() error {
	if g.overlay != nil {
		g.overlay.BeginFrame()
		defer g.overlay.EndFrame()
	}

	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session = g.newSession()
		g.loggedGameOver = false
		g.logger.Info("session restarted")
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.session.Apply(tetris.TogglePause)
	}

	g.pollMovement(dt)

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		g.session.Apply(tetris.RotateCW)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Apply(tetris.HardDrop)
	}

	g.session.Tick(dt)

	snap := g.session.Snapshot()
	if snap.GameOver && !g.loggedGameOver {
		g.loggedGameOver = true
		g.logger.Info("game over", "score", snap.Score, "level", snap.Level, "lines", snap.Lines)
	}

	if g.overlay != nil {
		g.overlay.RenderSession(snap)
	}

	return nil
}

// pollMovement translates held keys into repeated movement intents, with an
// initial delay before the repeat kicks in.
func (g *Game) pollMovement(dt float64) {
	g.leftHeld = g.pollRepeat(ebiten.KeyArrowLeft, tetris.MoveLeft, g.leftHeld, dt, repeatDelay)
	g.rightHeld = g.pollRepeat(ebiten.KeyArrowRight, tetris.MoveRight, g.rightHeld, dt, repeatDelay)
	g.downHeld = g.pollRepeat(ebiten.KeyArrowDown, tetris.SoftDrop, g.downHeld, dt, repeatRate)
}

func (g *Game) pollRepeat(key ebiten.Key, intent tetris.Intent, held, dt, delay float64) float64 {
	switch {
	case inpututil.IsKeyJustPressed(key):
		g.session.Apply(intent)
		return 0
	case ebiten.IsKeyPressed(key):
		held += dt
		if held > delay {
			g.session.Apply(intent)
			return held - repeatRate
		}
		return held
	default:
		return 0
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snap := g.session.Snapshot()
	cell := float32(g.cellSize)
	boardWidth := float32(g.cellSize * tetris.Cols)

	// Locked cells plus the cell grid itself.
	for row, cells := range snap.Grid {
		for col, c := range cells {
			x := float32(col) * cell
			y := float32(row) * cell
			if c != (tetris.Color{}) {
				vector.DrawFilledRect(screen, x, y, cell, cell, toRGBA(c), false)
			}
			vector.StrokeRect(screen, x, y, cell, cell, 1, colorGridLine, false)
		}
	}

	// Active piece; cells in the spawn buffer stay hidden.
	for _, c := range snap.ActiveCells {
		if c.Row < 0 {
			continue
		}
		x := float32(c.Col) * cell
		y := float32(c.Row) * cell
		vector.DrawFilledRect(screen, x, y, cell, cell, toRGBA(snap.ActiveColor), false)
		vector.StrokeRect(screen, x, y, cell, cell, 1, colorGridLine, false)
	}

	// Side panel with the next-piece preview and the counters.
	vector.DrawFilledRect(screen, boardWidth, 0, sidePanel, float32(g.height), colorPanel, false)

	panelX := int(boardWidth) + 20
	ebitenutil.DebugPrintAt(screen, "NEXT", panelX, 20)

	previewColor := snap.NextKind.Color()
	for _, off := range snap.NextCells {
		x := boardWidth + 20 + float32(off.Col)*cell
		y := 40 + float32(off.Row)*cell
		vector.DrawFilledRect(screen, x, y, cell, cell, toRGBA(previewColor), false)
		vector.StrokeRect(screen, x, y, cell, cell, 1, colorGridLine, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), panelX, 160)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", snap.Level), panelX, 180)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", snap.Lines), panelX, 200)

	if snap.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", panelX, 240)
	}
	if snap.GameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", panelX, 240)
		ebitenutil.DebugPrintAt(screen, "press R to restart", panelX, 260)
	}

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func toRGBA(c tetris.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
