package texture

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel errors for texture package.
var (
	// ErrImageLoad is matched by every *LoadError.
	ErrImageLoad = errors.New("texture: image load failed")

	// ErrDimensionMismatch is matched by every *DimensionMismatchError.
	ErrDimensionMismatch = errors.New("texture: dimension mismatch")

	// ErrWrite is matched by every *WriteError.
	ErrWrite = errors.New("texture: write failed")
)

// LoadError is returned when an input map cannot be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("texture: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is reports whether target is ErrImageLoad.
func (e *LoadError) Is(target error) bool { return target == ErrImageLoad }

// DimensionMismatchError is returned when the metallic and roughness maps
// differ in size.
type DimensionMismatchError struct {
	Metallic  image.Point
	Roughness image.Point
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("texture: metallic (%dx%d) and roughness (%dx%d) textures must have the same size",
		e.Metallic.X, e.Metallic.Y, e.Roughness.X, e.Roughness.Y)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }

// WriteError is returned when the packed texture cannot be encoded or
// written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("texture: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is reports whether target is ErrWrite.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }
