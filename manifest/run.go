package manifest

import (
	"context"
	"fmt"

	"github.com/gogpu/assetpipe"
	"github.com/gogpu/assetpipe/shader"
	"github.com/gogpu/assetpipe/texture"
)

// StepError wraps the failure of one manifest step.
type StepError struct {
	Kind Kind
	Name string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("manifest: %s %q: %v", e.Kind, e.Name, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// CompilerFactory returns the compiler for a toolchain. bin is the step's
// compiler override and may be empty.
type CompilerFactory func(toolchain, bin string) (shader.Compiler, error)

// DefaultCompiler maps glsl to glslangValidator, slang to slangc and wgsl to
// the in-process naga compiler.
func DefaultCompiler(toolchain, bin string) (shader.Compiler, error) {
	switch toolchain {
	case shader.GLSL.Name:
		return shader.GLSLValidator(bin), nil
	case shader.Slang.Name:
		return shader.Slangc(bin), nil
	case shader.WGSL.Name:
		return shader.NewNagaCompiler(), nil
	}
	return nil, fmt.Errorf("%w: unknown toolchain %q", ErrInvalidManifest, toolchain)
}

// Runner executes manifests.
type Runner struct {
	// Compilers selects the compiler per toolchain; nil means DefaultCompiler.
	Compilers CompilerFactory
}

// Run executes the steps of m in order and stops at the first failure, which
// is returned as a *StepError.
func (r *Runner) Run(ctx context.Context, m *Manifest) error {
	log := assetpipe.Logger().With("manifest", m.Path)
	log.Info("running manifest", "steps", len(m.Steps))

	for i, step := range m.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug("running step", "index", i, "kind", step.Kind, "name", step.Name, "range", step.Range.String())

		if err := r.runStep(ctx, step); err != nil {
			return &StepError{Kind: step.Kind, Name: step.Name, Err: err}
		}
	}

	log.Info("manifest complete", "steps", len(m.Steps))
	return nil
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	switch step.Kind {
	case KindShaders:
		factory := r.Compilers
		if factory == nil {
			factory = DefaultCompiler
		}
		compiler, err := factory(step.Name, step.Shaders.Compiler)
		if err != nil {
			return err
		}
		_, err = shader.Build(ctx, shader.BuildConfig{
			Input:     step.Shaders.Input,
			Output:    step.Shaders.Output,
			Toolchain: shader.Toolchains[step.Name],
			Compiler:  compiler,
		})
		return err

	case KindTexture:
		_, err := texture.Pack(step.Texture.Metallic, step.Texture.Roughness)
		return err
	}
	return fmt.Errorf("%w: unknown step kind %q", ErrInvalidManifest, step.Kind)
}
