package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEncoderFor(t *testing.T) {
	for _, ext := range []string{".png", ".PNG", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff"} {
		if _, err := EncoderFor(ext); err != nil {
			t.Errorf("EncoderFor(%q) error = %v", ext, err)
		}
	}
	for _, ext := range []string{".webp", ".exr", ""} {
		if _, err := EncoderFor(ext); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("EncoderFor(%q) error = %v, want ErrUnsupportedFormat", ext, err)
		}
	}
}

func TestEncodeDecode_Lossless(t *testing.T) {
	buf, _ := NewImageBuf(3, 2, FormatRGB8)
	_ = buf.SetRGB(0, 0, 0, 10, 20)
	_ = buf.SetRGB(2, 1, 0, 250, 5)

	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		t.Run(ext, func(t *testing.T) {
			data, err := buf.EncodeToBytes(ext)
			if err != nil {
				t.Fatalf("EncodeToBytes(%q) error = %v", ext, err)
			}

			img, _, err := Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
				t.Fatalf("decoded bounds = %v, want 3x2", img.Bounds())
			}
			r, g, b, _ := img.At(2, 1).RGBA()
			if r>>8 != 0 || g>>8 != 250 || b>>8 != 5 {
				t.Errorf("pixel (2,1) = (%d, %d, %d), want (0, 250, 5)", r>>8, g>>8, b>>8)
			}
		})
	}
}

func TestEncodeToBytes_PNGIsOpaqueRGB(t *testing.T) {
	buf, _ := NewImageBuf(2, 2, FormatRGB8)
	data, err := buf.EncodeToBytes(".png")
	if err != nil {
		t.Fatalf("EncodeToBytes() error = %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeConfig() error = %v", err)
	}
	if cfg.ColorModel != color.RGBAModel {
		t.Errorf("ColorModel = %v, want RGBAModel (truecolor without alpha)", cfg.ColorModel)
	}
}

func TestLoadGray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.png")

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(1, 2, color.RGBA{R: 90, G: 90, B: 90, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	buf, format, err := LoadGray(path)
	if err != nil {
		t.Fatalf("LoadGray() error = %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	if got := buf.Gray(1, 2); got != 90 {
		t.Errorf("Gray(1, 2) = %d, want 90", got)
	}
}

func TestLoadImage_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadImage(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadImage(missing) error = %v, want os.ErrNotExist", err)
	}

	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadImage(garbage); !errors.Is(err, image.ErrFormat) {
		t.Errorf("LoadImage(garbage) error = %v, want image.ErrFormat", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	buf, _ := NewImageBuf(2, 2, FormatGray8)

	path := filepath.Join(dir, "out.png")
	if err := buf.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Save() did not create file: %v", err)
	}

	unsupported := filepath.Join(dir, "out.webp")
	if err := buf.Save(unsupported); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save(.webp) error = %v, want ErrUnsupportedFormat", err)
	}
	if _, err := os.Stat(unsupported); !os.IsNotExist(err) {
		t.Error("Save(.webp) should not create a file")
	}

	if err := buf.Save(filepath.Join(dir, "missing", "out.png")); err == nil {
		t.Error("Save() into a missing directory should fail")
	}
}
