package raster3d

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Surface is the color render target the fill stage writes to. Pixel (0,0)
// is top-left, matching the viewport mapping in the geometry stage.
type Surface interface {
	Width() int
	Height() int
	// Lock/Unlock bracket a render call for callers that double-buffer a
	// Surface outside the core (e.g. a windowing layer swapping the
	// backing store). The core itself never blocks on them; the provided
	// Pixmap implementation treats them as no-ops.
	Lock()
	Unlock()
	Clear(c Color)
	SetPixel(x, y int, c Color)
}

// ZBuffer is the depth render target. Depth increases with distance from
// the viewer; Clear resets every texel to the far value (1.0) so any
// written depth in [0,1) passes the "closer" test.
type ZBuffer interface {
	Width() int
	Height() int
	Clear()
	Get(x, y int) float32
	Set(x, y int, z float32)
}

// Pixmap is the default in-memory Surface: a packed row-major Color buffer.
type Pixmap struct {
	width, height int
	data          []Color
}

// NewPixmap creates a Pixmap of the given dimensions, cleared to
// Transparent.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{width: width, height: height, data: make([]Color, width*height)}
}

func (p *Pixmap) Width() int  { return p.width }
func (p *Pixmap) Height() int { return p.height }
func (p *Pixmap) Lock()       {}
func (p *Pixmap) Unlock()     {}

// Clear fills every pixel with c.
func (p *Pixmap) Clear(c Color) {
	for i := range p.data {
		p.data[i] = c
	}
}

// SetPixel writes a pixel, silently discarding out-of-bounds writes (the
// geometry stage never produces them, but defense at the boundary matches
// the teacher's Pixmap.SetPixel).
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.width+x] = c
}

// GetPixel reads back a pixel, returning Transparent out of bounds.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	return p.data[y*p.width+x]
}

// ToImage converts the pixmap to a standard image.NRGBA, for saving or
// display by the external collaborator that owns the window.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := p.GetPixel(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i+0], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return img
}

// SavePNG encodes the pixmap as a PNG file at path.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // caller-provided path, by design
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, p.ToImage())
}

// At implements image.Image, so a Pixmap can itself be handed to any
// stdlib or ecosystem image codec.
func (p *Pixmap) At(x, y int) color.Color { return p.GetPixel(x, y).Color() }

// Bounds implements image.Image.
func (p *Pixmap) Bounds() image.Rectangle { return image.Rect(0, 0, p.width, p.height) }

// ColorModel implements image.Image.
func (p *Pixmap) ColorModel() color.Model { return color.NRGBAModel }

// DepthBuffer is the default in-memory ZBuffer.
type DepthBuffer struct {
	width, height int
	data          []float32
}

// farValue is the depth Clear resets every texel to: spec's "+infinity or
// 1.0, the far value" — 1.0 is used because the projection in Mat4's
// Perspective4 maps the far plane to clip z/w == 1.
const farValue = float32(1.0)

// NewDepthBuffer creates a DepthBuffer of the given dimensions, cleared to
// the far value.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{width: width, height: height, data: make([]float32, width*height)}
	d.Clear()
	return d
}

func (d *DepthBuffer) Width() int  { return d.width }
func (d *DepthBuffer) Height() int { return d.height }

// Clear resets every texel to the far value.
func (d *DepthBuffer) Clear() {
	for i := range d.data {
		d.data[i] = farValue
	}
}

// Get reads back a depth value, returning the far value out of bounds so an
// out-of-bounds query never incorrectly passes a depth test.
func (d *DepthBuffer) Get(x, y int) float32 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return farValue
	}
	return d.data[y*d.width+x]
}

// Set writes a depth value, silently discarding out-of-bounds writes.
func (d *DepthBuffer) Set(x, y int, z float32) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.data[y*d.width+x] = z
}
