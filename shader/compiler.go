package shader

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/gogpu/assetpipe"
	"github.com/gogpu/gputypes"
)

// Job is one compile request: a source file, the SPIR-V file to produce and
// the pipeline stage the source targets.
type Job struct {
	Input  string
	Output string
	Stage  gputypes.ShaderStage
}

// Compiler compiles one shader source to a SPIR-V file.
type Compiler interface {
	Compile(ctx context.Context, job Job) error
}

// CompilerFunc adapts an ordinary function to the Compiler interface.
type CompilerFunc func(ctx context.Context, job Job) error

// Compile calls f(ctx, job).
func (f CompilerFunc) Compile(ctx context.Context, job Job) error {
	return f(ctx, job)
}

// ExecCompiler runs an external compiler binary once per job.
type ExecCompiler struct {
	// Bin is the compiler executable, resolved through PATH when it has no
	// directory component.
	Bin string

	// Args builds the command line (without Bin) for a job.
	Args func(job Job) ([]string, error)
}

// Compile runs the compiler and treats a non-zero exit status as failure.
// The compiler's combined output is included in the returned error.
func (c *ExecCompiler) Compile(ctx context.Context, job Job) error {
	args, err := c.Args(job)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, c.Bin, args...)
	assetpipe.Logger().Debug("running compiler", "args", cmd.Args)

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s\nfailed to run %v: %w", out, cmd.Args, err)
	}
	if len(out) > 0 {
		assetpipe.Logger().Debug("compiler output", "file", job.Input, "output", string(out))
	}
	return nil
}

// DefaultGLSLValidator is the Khronos reference compiler binary name.
const DefaultGLSLValidator = "glslangValidator"

// DefaultSlangc is the Slang compiler binary name.
const DefaultSlangc = "slangc"

// GLSLValidator returns a compiler invoking `glslangValidator -V <in> -o <out>`.
// The stage is implied by the source extension. An empty bin selects
// DefaultGLSLValidator.
func GLSLValidator(bin string) *ExecCompiler {
	if bin == "" {
		bin = DefaultGLSLValidator
	}
	return &ExecCompiler{
		Bin: bin,
		Args: func(job Job) ([]string, error) {
			return []string{"-V", job.Input, "-o", job.Output}, nil
		},
	}
}

// Slangc returns a compiler invoking
// `slangc -stage <stage> -target spirv -entry main -o <out> <in>`.
// An empty bin selects DefaultSlangc.
func Slangc(bin string) *ExecCompiler {
	if bin == "" {
		bin = DefaultSlangc
	}
	return &ExecCompiler{
		Bin: bin,
		Args: func(job Job) ([]string, error) {
			stage, err := stageName(job.Stage)
			if err != nil {
				return nil, err
			}
			return []string{
				"-stage", stage,
				"-target", "spirv",
				"-entry", "main",
				"-o", job.Output,
				job.Input,
			}, nil
		},
	}
}
