// Package image provides the pixel buffers used by the texture packer.
//
// Buffers are tightly packed, row-major and 8 bits per channel. Decoded
// source images are reduced to FormatGray8 luminance; packed output is
// FormatRGB8.
package image

// Format is the channel layout of an ImageBuf.
type Format uint8

const (
	// FormatGray8 holds one luminance byte per pixel.
	FormatGray8 Format = iota

	// FormatRGB8 holds red, green and blue bytes per pixel, no alpha.
	FormatRGB8

	formatCount
)

// BytesPerPixel returns the pixel size, or 0 for an unknown format.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatGray8:
		return 1
	case FormatRGB8:
		return 3
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	}
	return "Unknown"
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes returns the size of one packed row of width pixels.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}
