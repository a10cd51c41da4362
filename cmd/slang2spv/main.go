// Command slang2spv compiles the .slang shaders of a directory to SPIR-V
// with slangc. The stage comes from the file name: "Vert" selects vertex,
// "Frag" selects fragment; other sources are skipped with a warning.
//
// Usage:
//
//	slang2spv --input <dir> --output <dir> [-bin slangc]
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
	Name:       "slang2spv",
	Summary:    "Compile Slang shaders to SPIR-V",
	DefaultBin: shader.DefaultSlangc,
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

	_, err = shader.Build(ctx, shader.BuildConfig{
		Input:     cfg.Input,
		Output:    cfg.Output,
		Toolchain: shader.Slang,
		Compiler:  shader.Slangc(cfg.Bin),
	})
	return err
}
