package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // registers the WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when no encoder exists for a file
	// extension.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Encoder writes an image in one file format.
type Encoder func(w io.Writer, img image.Image) error

// encoders maps lower-case file extensions to their encoder. WebP is
// decode-only in golang.org/x/image and has no entry.
var encoders = map[string]Encoder{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif":  encodeGIF,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: jpeg.DefaultQuality})
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// EncoderFor returns the encoder for a file extension such as ".png".
// Matching is case-insensitive.
func EncoderFor(ext string) (Encoder, error) {
	enc, ok := encoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return enc, nil
}

// Decode decodes an image from the given reader, auto-detecting the format.
// It returns the decoded image and the registered format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("image: decode: %w", err)
	}
	return img, format, nil
}

// LoadImage loads an image from the given file path, detecting the format
// from its content.
func LoadImage(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadGray loads an image file and reduces it to a FormatGray8 buffer.
// The source format name is returned for diagnostics.
func LoadGray(path string) (*ImageBuf, string, error) {
	img, format, err := LoadImage(path)
	if err != nil {
		return nil, "", err
	}
	buf, err := GrayFromStdImage(img)
	if err != nil {
		return nil, "", err
	}
	return buf, format, nil
}

// EncodeToBytes encodes the buffer with the encoder registered for ext.
func (b *ImageBuf) EncodeToBytes(ext string) ([]byte, error) {
	enc, err := EncoderFor(ext)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := enc(&out, b.ToStdImage()); err != nil {
		return nil, fmt.Errorf("image: encode %s: %w", ext, err)
	}
	if out.Len() == 0 {
		return nil, ErrEmptyData
	}
	return out.Bytes(), nil
}

// Save encodes the buffer according to the extension of path and writes it,
// replacing any existing file. Encoding completes in memory before the file
// is touched, so an encode failure leaves the filesystem unchanged.
func (b *ImageBuf) Save(path string) error {
	data, err := b.EncodeToBytes(filepath.Ext(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return fmt.Errorf("image: write file: %w", err)
	}
	return nil
}
