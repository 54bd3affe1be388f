package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"sierpinski/internal/core"
)

// ErrUnknownFormat reports an output format with no registered encoder.
var ErrUnknownFormat = errors.New("unknown output format")

// ImageEncoder writes an image in one file format.
type ImageEncoder func(w io.Writer, img image.Image) error

var encoders = map[string]ImageEncoder{
	"png": png.Encode,
	"bmp": bmp.Encode,
	"tiff": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
	"pbm": encodePBM,
}

// textFormat bypasses image encoding and prints block characters.
const textFormat = "txt"

// Formats lists the supported output formats in sorted order.
func Formats() []string {
	names := []string{textFormat}
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatFromPath derives an output format from a file extension.
func FormatFromPath(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "tif":
		return "tiff"
	case "text":
		return textFormat
	}
	return ext
}

// Export writes v to w in the named format. Image formats draw each cell as
// a scale x scale block.
func Export(w io.Writer, v core.View, format string, scale int) error {
	if format == textFormat {
		return Text(w, v)
	}
	enc, ok := encoders[format]
	if !ok {
		return errors.Wrapf(ErrUnknownFormat, "%q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
	if err := enc(w, Image(v, scale, DefaultColors)); err != nil {
		return errors.Wrapf(err, "encode %s", format)
	}
	return nil
}

// WriteFile exports v to path. An empty format is derived from the path.
func WriteFile(path string, v core.View, format string, scale int) (err error) {
	if format == "" {
		format = FormatFromPath(path)
	}
	if format != textFormat {
		if _, ok := encoders[format]; !ok {
			return errors.Wrapf(ErrUnknownFormat, "%q for %s", format, path)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return Export(f, v, format, scale)
}

// encodePBM writes a plain (P1) Netpbm bitmap where dark pixels are 1.
func encodePBM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	if _, err := fmt.Fprintf(bw, "P1\n%d %d\n", b.Dx(), b.Dy()); err != nil {
		return err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			bit := byte('0')
			if color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y < 0x80 {
				bit = '1'
			}
			if x > b.Min.X {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if err := bw.WriteByte(bit); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
