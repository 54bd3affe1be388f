package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"sierpinski/internal/core"
)

const (
	cellOn  = "█"
	cellOff = " "
)

// TextWriter prints rows of cells as block characters, one line per
// generation.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter wraps w with buffering. Call Flush when done.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteRow prints a single generation.
func (t *TextWriter) WriteRow(row []uint8) error {
	for _, c := range row {
		s := cellOff
		if c != 0 {
			s = cellOn
		}
		if _, err := t.w.WriteString(s); err != nil {
			return errors.Wrap(err, "write row")
		}
	}
	if err := t.w.WriteByte('\n'); err != nil {
		return errors.Wrap(err, "write row")
	}
	return nil
}

// Flush writes any buffered output.
func (t *TextWriter) Flush() error {
	return errors.Wrap(t.w.Flush(), "flush text")
}

// Text prints every generation of v.
func Text(w io.Writer, v core.View) error {
	tw := NewTextWriter(w)
	size := v.Size()
	cells := v.Cells()
	for y := 0; y < size.H; y++ {
		if err := tw.WriteRow(cells[y*size.W : (y+1)*size.W]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
