package app

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrHeadless is returned by Run when the binary was built without a
// display backend.
var ErrHeadless = errors.New("built without the ebiten tag; no display available")

// Title names the rendered figure.
func Title(generations int) string {
	return fmt.Sprintf("Sierpiński triangle from Rule 90 (%d generations)", generations)
}
