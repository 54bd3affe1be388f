//go:build !ebiten

package app

import "sierpinski/internal/core"

// HasDisplay reports whether Run can open a window.
const HasDisplay = false

// Run always reports that the GUI build tag is missing.
func Run(*core.Grid, *Config) error {
	return ErrHeadless
}
