package elementary

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidWidth reports a non-positive column count.
	ErrInvalidWidth = errors.New("width must be a positive integer")
	// ErrInvalidGenerations reports a non-positive generation count.
	ErrInvalidGenerations = errors.New("generations must be a positive integer")
	// ErrInvalidWorkers reports a negative worker count.
	ErrInvalidWorkers = errors.New("workers must not be negative")
	// ErrGridTooLarge reports dimensions whose cell count overflows int.
	ErrGridTooLarge = errors.New("grid too large")
)

func validate(width, generations int) error {
	if width <= 0 {
		return errors.Wrapf(ErrInvalidWidth, "width %d", width)
	}
	if generations <= 0 {
		return errors.Wrapf(ErrInvalidGenerations, "generations %d", generations)
	}
	if generations > math.MaxInt/width {
		return errors.Wrapf(ErrGridTooLarge, "%d x %d", generations, width)
	}
	return nil
}
