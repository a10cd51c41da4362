package shader

import (
	"errors"
	"fmt"
)

// Sentinel errors for shader package.
var (
	// ErrCompile is matched by every *CompileError.
	ErrCompile = errors.New("shader: compilation failed")

	// ErrUnknownShaderStage is returned by a toolchain that cannot infer the
	// stage of a recognized source. Build logs it and skips the file.
	ErrUnknownShaderStage = errors.New("shader: unknown shader stage")

	// ErrInvalidConfig is returned when a BuildConfig is incomplete.
	ErrInvalidConfig = errors.New("shader: invalid build config")
)

// CompileError reports the source file whose compilation aborted a build.
type CompileError struct {
	File string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("shader: compilation failed: %s: %v", e.File, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// Is reports whether target is ErrCompile.
func (e *CompileError) Is(target error) bool { return target == ErrCompile }
