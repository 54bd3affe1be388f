//go:build !ebiten

package ui

import "sierpinski/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(string, core.ParameterSnapshot, int) *HUD { return nil }

// SetProgress is a no-op in the headless build.
func (h *HUD) SetProgress(int, int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
