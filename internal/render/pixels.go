package render

import "image/color"

// Colors selects how binary cells are painted.
type Colors struct {
	On  color.Color
	Off color.Color
}

// DefaultColors paints active cells black on a white background.
var DefaultColors = Colors{On: color.Black, Off: color.White}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, c Colors) {
	on := color.RGBAModel.Convert(c.On).(color.RGBA)
	off := color.RGBAModel.Convert(c.Off).(color.RGBA)
	for i, v := range cells {
		px := off
		if v != 0 {
			px = on
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}
