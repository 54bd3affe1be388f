package render

import (
	"bytes"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"sierpinski/internal/core"
)

// triangle is the width 5, 3 generation Rule 90 grid.
func triangle() *core.Grid {
	g := core.NewGrid(5, 3)
	for y, row := range [][]uint8{
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	} {
		copy(g.Row(y), row)
	}
	return g
}

func TestImageMapsCellsToColors(t *testing.T) {
	g := triangle()
	img := Image(g, 2, DefaultColors)
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 6 {
		t.Fatalf("bounds %v, expected 10x6", b)
	}
	black := color.GrayModel.Convert(color.Black)
	white := color.GrayModel.Convert(color.White)
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			want := white
			if g.At(x/2, y/2) == 1 {
				want = black
			}
			if got := color.GrayModel.Convert(img.At(x, y)); got != want {
				t.Fatalf("pixel (%d,%d)=%v, expected %v", x, y, got, want)
			}
		}
	}
	if g.Active() != 5 {
		t.Fatal("Image must not modify the grid")
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, []uint8{1, 0}, DefaultColors)
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf=%v, expected %v", buf, want)
	}
}

func TestTextRendersBlocks(t *testing.T) {
	var out bytes.Buffer
	if err := Text(&out, triangle()); err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := "  █  \n █ █ \n█   █\n"
	if out.String() != want {
		t.Fatalf("text=%q, expected %q", out.String(), want)
	}
}

func TestExportFormatsDecode(t *testing.T) {
	g := triangle()

	var buf bytes.Buffer
	if err := Export(&buf, g, "png", 1); err != nil {
		t.Fatalf("png: %v", err)
	}
	if img, err := png.Decode(&buf); err != nil || img.Bounds().Dx() != 5 {
		t.Fatalf("png decode err=%v", err)
	}

	buf.Reset()
	if err := Export(&buf, g, "bmp", 3); err != nil {
		t.Fatalf("bmp: %v", err)
	}
	if img, err := bmp.Decode(&buf); err != nil || img.Bounds().Dy() != 9 {
		t.Fatalf("bmp decode err=%v", err)
	}

	buf.Reset()
	if err := Export(&buf, g, "tiff", 1); err != nil {
		t.Fatalf("tiff: %v", err)
	}
	img, err := tiff.Decode(&buf)
	if err != nil {
		t.Fatalf("tiff decode: %v", err)
	}
	if color.GrayModel.Convert(img.At(2, 0)).(color.Gray).Y != 0 {
		t.Fatal("tiff seed pixel must be black")
	}

	buf.Reset()
	if err := Export(&buf, g, "pbm", 1); err != nil {
		t.Fatalf("pbm: %v", err)
	}
	want := "P1\n5 3\n0 0 1 0 0\n0 1 0 1 0\n1 0 0 0 1\n"
	if buf.String() != want {
		t.Fatalf("pbm=%q, expected %q", buf.String(), want)
	}

	if err := Export(&buf, g, "gif", 1); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("gif err=%v, expected %v", err, ErrUnknownFormat)
	}
}

func TestWriteFileDerivesFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.txt")
	if err := WriteFile(path, triangle(), "", 1); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "  █  \n") {
		t.Fatalf("unexpected file contents %q", data)
	}

	if err := WriteFile(filepath.Join(dir, "tri.jpg"), triangle(), "", 1); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("jpg err=%v, expected %v", err, ErrUnknownFormat)
	}
	if _, err := os.Stat(filepath.Join(dir, "tri.jpg")); !os.IsNotExist(err) {
		t.Fatal("unknown format must not create a file")
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]string{"a.PNG": "png", "b.tif": "tiff", "c.pbm": "pbm", "d.text": "txt", "e": ""}
	for path, want := range cases {
		if got := FormatFromPath(path); got != want {
			t.Fatalf("FormatFromPath(%q)=%q, expected %q", path, got, want)
		}
	}
	if got := Formats(); !slices.Equal(got, []string{"bmp", "pbm", "png", "tiff", "txt"}) {
		t.Fatalf("Formats()=%v", got)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if IsBrokenPipe(nil) {
		t.Fatal("nil is not a broken pipe")
	}
	if !IsBrokenPipe(errors.Wrap(syscall.EPIPE, "write")) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("EPIPE and ErrClosedPipe must count as broken pipes")
	}
	if IsBrokenPipe(errors.New("disk full")) {
		t.Fatal("unrelated error classified as broken pipe")
	}
}
