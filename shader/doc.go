// Package shader compiles directories of shader sources to SPIR-V.
//
// A [Toolchain] decides which files in a directory are shader sources, which
// pipeline stage each one targets and what its .spv output is called. A
// [Compiler] turns one source into one SPIR-V file. [Build] walks the input
// directory (non-recursively, in lexical order) and stops at the first
// compile failure.
//
// Compilers come in two kinds: [ExecCompiler] shells out to a reference
// compiler binary (glslangValidator, slangc), [NagaCompiler] compiles WGSL
// in-process with github.com/gogpu/naga.
//
//	report, err := shader.Build(ctx, shader.BuildConfig{
//	    Input:     "shaders",
//	    Output:    "build/shaders",
//	    Toolchain: shader.GLSL,
//	    Compiler:  shader.GLSLValidator(""),
//	})
package shader
