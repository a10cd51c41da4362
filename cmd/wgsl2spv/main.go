// Command wgsl2spv compiles the .wgsl shaders of a directory to SPIR-V
// in-process with naga. No external compiler is needed.
//
// Usage:
//
//	wgsl2spv --input <dir> --output <dir> [-debug] [-validate=false]
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
	Name:      "wgsl2spv",
	Summary:   "Compile WGSL shaders to SPIR-V",
	InProcess: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Report(os.Stderr, run(ctx, os.Stdout, os.Stderr, os.Args[1:]))
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, exit, err := cli.ParseShader(command, args, stdout)
	if err != nil || exit {
		return err
	}
	cli.InstallLogger(stderr, cfg.Log)

	compiler := shader.NewNagaCompiler()
	compiler.Options.Debug = cfg.Debug
	compiler.Options.Validate = cfg.Validate

	_, err = shader.Build(ctx, shader.BuildConfig{
		Input:     cfg.Input,
		Output:    cfg.Output,
		Toolchain: shader.WGSL,
		Compiler:  compiler,
	})
	return err
}
