package raster3d

import (
	"image"

	"golang.org/x/image/draw"
)

// texelShift is S from spec: texture addressing is done in 24.8 fixed
// point.
const texelShift = 8

// Texture is an immutable row-major Color buffer. The four fixed-point
// fields are precomputed once, at construction (NewTexture), not per
// sample, matching the teacher's pattern of caching derived fields ahead
// of time rather than recomputing them in a hot loop; binding through
// Rasterizer.SetTextures does not recompute them.
type Texture struct {
	Width, Height int
	pixels        []Color

	shiftedWidth  int32
	shiftedHeight int32
	shiftedXLimit int32
	shiftedYLimit int32
}

// NewTexture wraps an existing row-major Color slice of length width*height.
// The slice becomes owned by the Texture and must not be mutated afterward.
func NewTexture(width, height int, pixels []Color) *Texture {
	if len(pixels) != width*height {
		panic("raster3d: texture pixel count does not match width*height")
	}
	t := &Texture{Width: width, Height: height, pixels: pixels}
	t.precomputeFixedPoint()
	return t
}

// FromImage converts an arbitrary image.Image into a Texture. Images are
// first normalized to image.NRGBA via golang.org/x/image/draw (handling
// any input color model, including premultiplied-alpha and indexed
// sources) so the resulting Color buffer has well-defined, unpremultiplied
// channel values regardless of the decoder that produced img. This is the
// one place the core touches an image codec; decoding the file itself
// remains the caller's responsibility (spec treats model/asset loading as
// an external collaborator).
func FromImage(img image.Image) *Texture {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	pixels := make([]Color, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := dst.PixOffset(x, y)
			pixels[y*w+x] = Color{R: dst.Pix[i], G: dst.Pix[i+1], B: dst.Pix[i+2], A: dst.Pix[i+3]}
		}
	}
	return NewTexture(w, h, pixels)
}

// At returns the texel at (x, y) with no bounds checking; callers are the
// sampler, which has already clamped or tiled its indices.
func (t *Texture) At(x, y int) Color {
	return t.pixels[y*t.Width+x]
}

func (t *Texture) precomputeFixedPoint() {
	t.shiftedWidth = int32(t.Width) << texelShift
	t.shiftedHeight = int32(t.Height) << texelShift
	t.shiftedXLimit = int32(t.Width-1) << texelShift
	t.shiftedYLimit = int32(t.Height-1) << texelShift
}
