package raster3d

import (
	"image/color"
)

// Color is a 32-bit packed color with four 8-bit channels, alpha-first to
// match the engine's framebuffer word layout. It is the value pixel shaders
// return and the value Surface.SetPixel writes.
type Color struct {
	A, R, G, B uint8
}

// RGBA constructs an opaque-unless-specified Color from 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// RGB constructs an opaque Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{A: 255, R: r, G: g, B: b}
}

// Color converts to the standard color.Color interface, for interop with
// image encoders (see FromColor for the reverse direction).
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit
// channels of the unpremultiplied 8-bit values.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: nc.A, R: nc.R, G: nc.G, B: nc.B}
}

// MulF scales every channel, including alpha, by a scalar and clamps to
// [0, 255]. Shaders use this to apply lighting factors to a sampled texel.
func (c Color) MulF(s float32) Color {
	return Color{
		A: clamp255(float32(c.A) * s),
		R: clamp255(float32(c.R) * s),
		G: clamp255(float32(c.G) * s),
		B: clamp255(float32(c.B) * s),
	}
}

// Add adds two colors channel-wise, clamping to [0, 255].
func (c Color) Add(o Color) Color {
	return Color{
		A: clamp255(float32(c.A) + float32(o.A)),
		R: clamp255(float32(c.R) + float32(o.R)),
		G: clamp255(float32(c.G) + float32(o.G)),
		B: clamp255(float32(c.B) + float32(o.B)),
	}
}

// clamp255 restricts a value to the 8-bit channel range.
func clamp255(x float32) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)
