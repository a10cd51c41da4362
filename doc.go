// Package assetpipe provides the content-build helpers used to prepare engine
// assets: shader compilation to SPIR-V and material texture packing.
//
// # Overview
//
// The module is organized into:
//   - shader: batch compilation of a directory of shader sources to SPIR-V,
//     either through an external compiler (glslangValidator, slangc) or
//     in-process through naga for WGSL
//   - texture: merging separate metallic and roughness maps into a single
//     packed metallic/roughness texture
//   - manifest: running a sequence of the above steps described in an HCL file
//
// Each helper has a command under cmd/:
//
//	glsl2spv --input shaders/glsl --output build/shaders
//	slang2spv --input shaders/slang --output build/shaders
//	wgsl2spv --input shaders/wgsl --output build/shaders
//	packtexture --metallic Rock_Metallic.png --roughness Rock_Roughness.png
//	assetpipe assets.hcl
//
// # Failure model
//
// Every operation is synchronous and fail-fast: the first error is returned
// to the caller and nothing after it runs. Library packages never exit the
// process; the commands map returned errors to exit codes.
//
// # Logging
//
// Library packages log through [Logger], which discards everything until
// [SetLogger] is called.
package assetpipe

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
