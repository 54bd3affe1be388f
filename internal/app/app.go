//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"sierpinski/internal/core"
	"sierpinski/internal/render"
	"sierpinski/internal/ui"
)

// HasDisplay reports whether Run can open a window.
const HasDisplay = true

const panelWidth = 220

// Game adapts a finished grid to the ebiten.Game interface, optionally
// revealing it one generation at a time.
type Game struct {
	grid    core.View
	painter *render.GridPainter
	hud     *ui.HUD

	scale  int
	rows   int
	paused bool
	pacer  *core.Pacer
}

// New constructs a Game for the provided grid. A nil pacer shows every
// generation immediately.
func New(grid core.View, snapshot core.ParameterSnapshot, title string, scale int, pacer *core.Pacer) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		grid:    grid,
		painter: render.NewGridPainter(grid, render.DefaultColors),
		hud:     ui.NewHUD(title, snapshot, panelWidth),
		scale:   scale,
		pacer:   pacer,
	}
	g.Restart()
	return g
}

// Restart rewinds the reveal to generation 0.
func (g *Game) Restart() {
	if g.pacer == nil {
		g.rows = g.grid.Size().H
		return
	}
	g.rows = 0
	g.pacer.Reset()
}

// Update handles per-frame input and advances the reveal.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Restart()
	}
	if g.pacer != nil {
		due := g.pacer.Take()
		if !g.paused {
			g.rows = min(g.rows+due, g.grid.Size().H)
		}
	}
	g.hud.SetProgress(g.rows, g.grid.Size().H)
	return nil
}

// Draw renders the revealed generations and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.DefaultColors.Off)
	g.painter.Blit(screen, g.rows, g.scale)
	g.hud.Draw(screen, g.grid.Size().W*g.scale, g.grid.Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.grid.Size()
	return s.W*g.scale + panelWidth, s.H * g.scale
}

// Run opens a window showing grid and blocks until it is closed.
func Run(grid *core.Grid, cfg *Config) error {
	var pacer *core.Pacer
	if cfg.Reveal > 0 {
		pacer = core.NewPacer(cfg.Reveal)
	}
	title := Title(grid.H)
	game := New(grid, cfg.Engine().Parameters(), "Rule 90", cfg.Scale, pacer)

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run viewer")
	}
	return nil
}
