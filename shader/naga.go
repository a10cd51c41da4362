package shader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/assetpipe"
	"github.com/gogpu/naga"
)

// NagaCompiler compiles WGSL to SPIR-V in-process. Job.Stage is ignored:
// every entry point in the module is emitted.
type NagaCompiler struct {
	Options naga.CompileOptions
}

// NewNagaCompiler returns a compiler using naga.DefaultOptions.
func NewNagaCompiler() *NagaCompiler {
	return &NagaCompiler{Options: naga.DefaultOptions()}
}

// Compile reads job.Input, compiles it and writes job.Output.
func (c *NagaCompiler) Compile(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	source, err := os.ReadFile(filepath.Clean(job.Input))
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	spirv, err := naga.CompileWithOptions(string(source), c.Options)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(job.Output), spirv, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	assetpipe.Logger().Debug("naga compiled module", "file", job.Input, "bytes", len(spirv))
	return nil
}
