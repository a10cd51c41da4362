package texture

import (
	"fmt"
	stdimage "image"

	"github.com/gogpu/assetpipe"
	intImage "github.com/gogpu/assetpipe/internal/image"
)

// Pack merges a metallic map and a roughness map into one metallic/roughness
// texture written next to the metallic map, and returns the written path.
//
// Both inputs are reduced to 8-bit luminance. The output uses the file format
// of the metallic map's extension and replaces any existing file. Nothing is
// written when loading fails or the sizes differ.
//
// Errors are *LoadError, *DimensionMismatchError or *WriteError.
func Pack(metallicPath, roughnessPath string) (string, error) {
	log := assetpipe.Logger()

	metallic, err := loadMap(metallicPath)
	if err != nil {
		return "", err
	}
	roughness, err := loadMap(roughnessPath)
	if err != nil {
		return "", err
	}

	packed, err := packBuffers(metallic, roughness)
	if err != nil {
		return "", err
	}

	outputPath := OutputPath(metallicPath)
	if err := packed.Save(outputPath); err != nil {
		return "", &WriteError{Path: outputPath, Err: err}
	}

	w, h := packed.Bounds()
	log.Info("packed texture",
		"metallic", metallicPath,
		"roughness", roughnessPath,
		"output", outputPath,
		"width", w, "height", h)
	return outputPath, nil
}

// PackImage merges already decoded maps into a metallic/roughness image
// without touching the filesystem. The result is opaque; only its RGB
// channels carry data.
func PackImage(metallic, roughness stdimage.Image) (*stdimage.NRGBA, error) {
	m, err := intImage.GrayFromStdImage(metallic)
	if err != nil {
		return nil, fmt.Errorf("texture: metallic: %w", err)
	}
	r, err := intImage.GrayFromStdImage(roughness)
	if err != nil {
		return nil, fmt.Errorf("texture: roughness: %w", err)
	}

	packed, err := packBuffers(m, r)
	if err != nil {
		return nil, err
	}
	// ToStdImage always yields *image.NRGBA for FormatRGB8.
	return packed.ToStdImage().(*stdimage.NRGBA), nil
}

func loadMap(path string) (*intImage.ImageBuf, error) {
	buf, format, err := intImage.LoadGray(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	assetpipe.Logger().Debug("loaded map", "path", path, "format", format,
		"width", buf.Width(), "height", buf.Height())
	return buf, nil
}

// packBuffers lays out the channels as R = 0, G = roughness, B = metallic.
func packBuffers(metallic, roughness *intImage.ImageBuf) (*intImage.ImageBuf, error) {
	if !metallic.SameSize(roughness) {
		return nil, &DimensionMismatchError{
			Metallic:  stdimage.Pt(metallic.Bounds()),
			Roughness: stdimage.Pt(roughness.Bounds()),
		}
	}

	unused, err := intImage.NewImageBuf(metallic.Width(), metallic.Height(), intImage.FormatGray8)
	if err != nil {
		return nil, err
	}
	return intImage.MergeRGB(unused, roughness, metallic)
}
