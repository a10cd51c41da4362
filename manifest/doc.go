// Package manifest runs a sequence of asset pipeline steps described in an
// HCL file.
//
// A manifest holds `shaders` and `texture` blocks, executed in the order they
// appear. The first failing step stops the run.
//
//	shaders "glsl" {
//	  input  = "${env.ASSET_ROOT}/shaders/glsl"
//	  output = "build/shaders"
//	}
//
//	shaders "slang" {
//	  input    = "shaders/slang"
//	  output   = "build/shaders"
//	  compiler = "/opt/slang/bin/slangc"
//	}
//
//	texture "rock" {
//	  metallic  = "textures/Rock_Metallic.png"
//	  roughness = "textures/Rock_Roughness.png"
//	}
//
// The `shaders` label selects the toolchain (glsl, slang or wgsl). The
// process environment is available as the `env` object. Relative paths are
// resolved against the directory containing the manifest.
package manifest
