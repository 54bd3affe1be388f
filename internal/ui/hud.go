//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sierpinski/internal/core"
)

const (
	panelPadding   = 10
	headerBaseline = 13
	lineHeight     = 16
	infoSpacing    = 24
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the run description to the right of the grid.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int

	title    string
	lines    []string
	progress string
}

// NewHUD constructs a HUD listing snapshot under title.
func NewHUD(title string, snapshot core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, title: title, lines: snapshot.Lines()}
}

// SetProgress updates the revealed-generations counter.
func (h *HUD) SetProgress(shown, total int) {
	if h == nil {
		return
	}
	h.progress = fmt.Sprintf("Shown: %d/%d", shown, total)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	y += infoSpacing
	for _, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
		y += lineHeight
	}
	if h.progress != "" {
		text.Draw(h.panel, h.progress, face, panelPadding, y+lineHeight, dimColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
