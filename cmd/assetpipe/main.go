// Command assetpipe runs the shader and texture steps of an HCL manifest in
// order, stopping at the first failure.
//
// Usage:
//
//	assetpipe [options] assets.hcl
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/assetpipe"
	"github.com/gogpu/assetpipe/internal/cli"
	"github.com/gogpu/assetpipe/manifest"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Report(os.Stderr, run(ctx, os.Stdout, os.Stderr, os.Args[1:]))
	stop()
	os.Exit(code)
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	cfg, exit, err := cli.ParseManifest(args, stdout)
	if err != nil || exit {
		return err
	}
	logger := cli.InstallLogger(stderr, cfg.Log)
	logger.Debug("assetpipe starting", slog.String("version", assetpipe.Version), slog.String("manifest", cfg.Path))

	m, err := manifest.Load(cfg.Path, nil)
	if err != nil {
		return err
	}
	return (&manifest.Runner{}).Run(ctx, m)
}
