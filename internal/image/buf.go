package image

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned for a non-positive width or height,
	// or when buffers that must match in size do not.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned for an unknown Format.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrOutOfBounds is returned when writing a pixel outside the buffer.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrFormatMismatch is returned when a buffer has the wrong Format for
	// the operation.
	ErrFormatMismatch = errors.New("image: format mismatch")
)

// ImageBuf is a packed 8-bit pixel buffer. Rows follow each other with no
// padding.
type ImageBuf struct {
	pix    []byte
	width  int
	height int
	format Format
}

// NewImageBuf allocates a zeroed width x height buffer.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &ImageBuf{
		pix:    make([]byte, format.RowBytes(width)*height),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Width returns the width in pixels.
func (b *ImageBuf) Width() int { return b.width }

// Height returns the height in pixels.
func (b *ImageBuf) Height() int { return b.height }

// Format returns the channel layout.
func (b *ImageBuf) Format() Format { return b.format }

// Bounds returns (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// SameSize reports whether b and other have the same width and height.
func (b *ImageBuf) SameSize(other *ImageBuf) bool {
	return b.width == other.width && b.height == other.height
}

// RowBytes returns row y of the pixel data, or nil when y is out of range.
// The slice aliases the buffer.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	n := b.format.RowBytes(b.width)
	return b.pix[y*n : (y+1)*n]
}

// PixelOffset returns the index of pixel (x, y) in the pixel data, or -1.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * b.format.BytesPerPixel()
}

// Gray returns sample (x, y) of a FormatGray8 buffer; 0 when out of range
// or for other formats.
func (b *ImageBuf) Gray(x, y int) uint8 {
	off := b.PixelOffset(x, y)
	if off < 0 || b.format != FormatGray8 {
		return 0
	}
	return b.pix[off]
}

// SetGray stores v at (x, y) of a FormatGray8 buffer.
func (b *ImageBuf) SetGray(x, y int, v uint8) error {
	if b.format != FormatGray8 {
		return fmt.Errorf("%w: SetGray on %s", ErrFormatMismatch, b.format)
	}
	off := b.PixelOffset(x, y)
	if off < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	b.pix[off] = v
	return nil
}

// GetRGB returns pixel (x, y). Gray buffers report the sample in all three
// channels.
func (b *ImageBuf) GetRGB(x, y int) (r, g, bl uint8) {
	off := b.PixelOffset(x, y)
	switch {
	case off < 0:
		return 0, 0, 0
	case b.format == FormatRGB8:
		return b.pix[off], b.pix[off+1], b.pix[off+2]
	}
	v := b.pix[off]
	return v, v, v
}

// SetRGB stores an RGB pixel. Gray buffers store its Luma.
func (b *ImageBuf) SetRGB(x, y int, r, g, bl uint8) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	if b.format == FormatGray8 {
		b.pix[off] = Luma(r, g, bl)
		return nil
	}
	b.pix[off], b.pix[off+1], b.pix[off+2] = r, g, bl
	return nil
}
