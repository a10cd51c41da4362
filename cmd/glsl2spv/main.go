// Command glsl2spv compiles the .vert and .frag shaders of a directory to
// SPIR-V with glslangValidator.
//
// Usage:
//
//	glsl2spv --input <dir> --output <dir> [-bin glslangValidator]
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/gogpu/assetpipe/internal/cli"
	"github.com/gogpu/assetpipe/shader"
)

var command = cli.ShaderCommand{
	Name:       "glsl2spv",
	Summary:    "Compile GLSL shaders to SPIR-V",
	DefaultBin: shader.DefaultGLSLValidator,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Report(os.Stderr, run(ctx, os.Stdout, os.Stderr, os.Args[1:]))
	stop()
	os.Exit(code)
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, exit, err := cli.ParseShader(command, args, stdout)
	if err != nil || exit {
		return err
	}
	cli.InstallLogger(stderr, cfg.Log)

	_, err = shader.Build(ctx, shader.BuildConfig{
		Input:     cfg.Input,
		Output:    cfg.Output,
		Toolchain: shader.GLSL,
		Compiler:  shader.GLSLValidator(cfg.Bin),
	})
	return err
}
