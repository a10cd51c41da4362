package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// ErrUnsupportedDepth is returned for sources stored with more than 8 bits
// per channel.
var ErrUnsupportedDepth = errors.New("image: unsupported bit depth")

// Luma reduces an RGB triple to 8-bit luminance using the ITU-R 601-2
// weights (0.299, 0.587, 0.114) in 16.16 fixed point, rounding to nearest.
func Luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*19595 + uint32(g)*38470 + uint32(b)*7471 + 1<<15) >> 16)
}

// GrayFromStdImage converts a decoded 8-bit image to a FormatGray8 buffer.
// Color is reduced to luminance from the stored, non-premultiplied values,
// so alpha never changes a sample. 16-bit sources are rejected with
// ErrUnsupportedDepth.
func GrayFromStdImage(img image.Image) (*ImageBuf, error) {
	switch img.(type) {
	case *image.Gray16, *image.RGBA64, *image.NRGBA64, *image.Alpha16:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedDepth, img)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	buf, err := NewImageBuf(width, height, FormatGray8)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d", err, width, height)
	}

	switch src := img.(type) {
	case *image.Gray:
		for y := range height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(buf.RowBytes(y), src.Pix[start:start+width])
		}
		return buf, nil

	case *image.Paletted:
		lut := paletteLuma(src.Palette)
		for y := range height {
			start := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := range width {
				if i := int(src.Pix[start+x]); i < len(lut) {
					_ = buf.SetGray(x, y, lut[i])
				}
			}
		}
		return buf, nil
	}

	// Everything else goes through non-premultiplied RGBA. Sources that
	// already are NRGBA keep their color under any alpha.
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
		bounds = nrgba.Bounds()
	}
	for y := range height {
		for x := range width {
			c := nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			_ = buf.SetRGB(x, y, c.R, c.G, c.B)
		}
	}
	return buf, nil
}

// paletteLuma reduces each palette entry to luminance. PNG stores
// transparent entries as color.NRGBA, which are read as is.
func paletteLuma(p color.Palette) []uint8 {
	lut := make([]uint8, len(p))
	for i, c := range p {
		n, ok := c.(color.NRGBA)
		if !ok {
			n = color.NRGBAModel.Convert(c).(color.NRGBA)
		}
		lut[i] = Luma(n.R, n.G, n.B)
	}
	return lut
}

// MergeRGB interleaves three FormatGray8 buffers of identical size into one
// FormatRGB8 buffer, channel for channel.
func MergeRGB(r, g, b *ImageBuf) (*ImageBuf, error) {
	for _, ch := range []*ImageBuf{r, g, b} {
		if ch.Format() != FormatGray8 {
			return nil, fmt.Errorf("%w: merge channel is %s, want Gray8", ErrFormatMismatch, ch.Format())
		}
	}
	if !r.SameSize(g) || !r.SameSize(b) {
		return nil, fmt.Errorf("%w: merge channels differ in size", ErrInvalidDimensions)
	}

	out, err := NewImageBuf(r.Width(), r.Height(), FormatRGB8)
	if err != nil {
		return nil, err
	}
	for y := range out.Height() {
		for x := range out.Width() {
			if err := out.SetRGB(x, y, r.Gray(x, y), g.Gray(x, y), b.Gray(x, y)); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// ToStdImage returns *image.Gray for FormatGray8 and an opaque *image.NRGBA
// otherwise, which PNG writes as 3-channel truecolor.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)
	if b.format == FormatGray8 {
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	for y := range b.height {
		for x := range b.width {
			r, g, bl := b.GetRGB(x, y)
			nrgba.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: bl, A: 255})
		}
	}
	return nrgba
}
