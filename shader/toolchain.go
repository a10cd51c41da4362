package shader

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// OutputExt is the extension of every compiled shader.
const OutputExt = ".spv"

// Toolchain describes one shader language's source files.
type Toolchain struct {
	// Name is used in log messages and manifest labels ("glsl", "slang", "wgsl").
	Name string

	// Extensions lists the recognized source extensions. Matching is
	// case-sensitive.
	Extensions []string

	// StageFor infers the pipeline stage of a recognized source from its
	// file name. It returns ErrUnknownShaderStage when no stage applies.
	StageFor func(file string) (gputypes.ShaderStage, error)
}

// sourceExt returns the recognized extension of file, or "".
func (tc *Toolchain) sourceExt(file string) string {
	for _, ext := range tc.Extensions {
		if strings.HasSuffix(file, ext) {
			return ext
		}
	}
	return ""
}

// Recognizes reports whether file is a source of this toolchain.
func (tc *Toolchain) Recognizes(file string) bool {
	return tc.sourceExt(file) != ""
}

// OutputName maps a source file name to its SPIR-V file name by replacing
// the source extension with OutputExt: "a.vert" -> "a.spv".
func (tc *Toolchain) OutputName(file string) string {
	return strings.TrimSuffix(file, tc.sourceExt(file)) + OutputExt
}

// GLSL recognizes .vert and .frag sources; the extension names the stage.
var GLSL = &Toolchain{
	Name:       "glsl",
	Extensions: []string{".vert", ".frag"},
	StageFor: func(file string) (gputypes.ShaderStage, error) {
		switch {
		case strings.HasSuffix(file, ".vert"):
			return gputypes.ShaderStageVertex, nil
		case strings.HasSuffix(file, ".frag"):
			return gputypes.ShaderStageFragment, nil
		}
		return gputypes.ShaderStageNone, fmt.Errorf("%w: %s", ErrUnknownShaderStage, file)
	},
}

// Slang recognizes .slang sources. The stage comes from the file name:
// "Vert" anywhere in it selects the vertex stage, otherwise "Frag" selects
// the fragment stage. Matching is case-sensitive.
var Slang = &Toolchain{
	Name:       "slang",
	Extensions: []string{".slang"},
	StageFor: func(file string) (gputypes.ShaderStage, error) {
		switch {
		case strings.Contains(file, "Vert"):
			return gputypes.ShaderStageVertex, nil
		case strings.Contains(file, "Frag"):
			return gputypes.ShaderStageFragment, nil
		}
		return gputypes.ShaderStageNone, fmt.Errorf("%w: %s", ErrUnknownShaderStage, file)
	},
}

// WGSL recognizes .wgsl sources. A WGSL module declares its entry points
// itself, so the whole module is compiled for every stage it contains.
var WGSL = &Toolchain{
	Name:       "wgsl",
	Extensions: []string{".wgsl"},
	StageFor: func(string) (gputypes.ShaderStage, error) {
		return gputypes.ShaderStagesAll, nil
	},
}

// Toolchains indexes the built-in toolchains by name.
var Toolchains = map[string]*Toolchain{
	GLSL.Name:  GLSL,
	Slang.Name: Slang,
	WGSL.Name:  WGSL,
}

// stageName returns the lower-case stage name compilers expect on their
// command line.
func stageName(stage gputypes.ShaderStage) (string, error) {
	switch stage {
	case gputypes.ShaderStageVertex:
		return "vertex", nil
	case gputypes.ShaderStageFragment:
		return "fragment", nil
	case gputypes.ShaderStageCompute:
		return "compute", nil
	}
	return "", fmt.Errorf("%w: %v", ErrUnknownShaderStage, stage)
}
