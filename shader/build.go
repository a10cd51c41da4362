package shader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/assetpipe"
)

// BuildConfig configures one batch compilation.
type BuildConfig struct {
	// Input is the directory holding shader sources. Only its direct
	// entries are considered.
	Input string

	// Output is the directory receiving .spv files. It is created if absent.
	Output string

	Toolchain *Toolchain
	Compiler  Compiler
}

func (cfg *BuildConfig) validate() error {
	switch {
	case cfg.Input == "":
		return fmt.Errorf("%w: input directory is required", ErrInvalidConfig)
	case cfg.Output == "":
		return fmt.Errorf("%w: output directory is required", ErrInvalidConfig)
	case cfg.Toolchain == nil:
		return fmt.Errorf("%w: toolchain is required", ErrInvalidConfig)
	case cfg.Compiler == nil:
		return fmt.Errorf("%w: compiler is required", ErrInvalidConfig)
	}
	return nil
}

// Skipped records an input entry that was not compiled.
type Skipped struct {
	File   string
	Reason string
}

// Report lists what a build did, in processing order.
type Report struct {
	Compiled []Job
	Skipped  []Skipped
}

// Build compiles every source the toolchain recognizes in cfg.Input into
// cfg.Output.
//
// Entries are processed in lexical order. Unrecognized files, directories and
// sources whose stage cannot be inferred are logged and skipped. The first
// compile failure stops the build and is returned as a *CompileError; the
// report then covers the entries processed before it.
func Build(ctx context.Context, cfg BuildConfig) (*Report, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := assetpipe.Logger().With("toolchain", cfg.Toolchain.Name)

	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return nil, fmt.Errorf("shader: create output directory: %w", err)
	}

	entries, err := os.ReadDir(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("shader: read input directory: %w", err)
	}

	report := &Report{}
	outputs := make(map[string]string)

	skip := func(file, reason string) {
		report.Skipped = append(report.Skipped, Skipped{File: file, Reason: reason})
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		name := entry.Name()
		if entry.IsDir() {
			log.Debug("skipping directory", "file", name)
			skip(name, "directory")
			continue
		}
		if !cfg.Toolchain.Recognizes(name) {
			reason := "not a " + cfg.Toolchain.Name + " shader"
			log.Info("skipping file", "file", name, "reason", reason)
			skip(name, reason)
			continue
		}

		stage, err := cfg.Toolchain.StageFor(name)
		if errors.Is(err, ErrUnknownShaderStage) {
			log.Warn("skipping file", "file", name, "reason", "unknown shader stage")
			skip(name, "unknown shader stage")
			continue
		}
		if err != nil {
			return report, err
		}

		job := Job{
			Input:  filepath.Join(cfg.Input, name),
			Output: filepath.Join(cfg.Output, cfg.Toolchain.OutputName(name)),
			Stage:  stage,
		}
		if prev, ok := outputs[job.Output]; ok {
			log.Warn("output overwritten by later source", "output", job.Output, "previous", prev, "file", name)
		}
		outputs[job.Output] = name

		if err := cfg.Compiler.Compile(ctx, job); err != nil {
			return report, &CompileError{File: name, Err: err}
		}
		log.Info("compiled shader", "file", name, "output", job.Output, "stage", stage)
		report.Compiled = append(report.Compiled, job)
	}

	return report, nil
}
