package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/gogpu/assetpipe/shader"
)

// ErrInvalidManifest is returned for manifests that parse but describe an
// unusable step.
var ErrInvalidManifest = errors.New("manifest: invalid manifest")

// Kind identifies a step type; it is the HCL block type.
type Kind string

// Step kinds.
const (
	KindShaders Kind = "shaders"
	KindTexture Kind = "texture"
)

// ShadersStep compiles one directory of shader sources.
type ShadersStep struct {
	Input  string `hcl:"input"`
	Output string `hcl:"output"`

	// Compiler overrides the external compiler binary. A bare name is looked
	// up on PATH; anything with a path separator is resolved like the other
	// paths. Ignored for wgsl.
	Compiler string `hcl:"compiler,optional"`
}

// TextureStep packs one metallic/roughness pair.
type TextureStep struct {
	Metallic  string `hcl:"metallic"`
	Roughness string `hcl:"roughness"`
}

// Step is one block of a manifest. Exactly one of Shaders and Texture is
// set, matching Kind.
type Step struct {
	Kind  Kind
	Name  string
	Range hcl.Range

	Shaders *ShadersStep
	Texture *TextureStep
}

// Manifest is a decoded manifest file.
type Manifest struct {
	Path  string
	Steps []Step
}

var manifestSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: string(KindShaders), LabelNames: []string{"toolchain"}},
		{Type: string(KindTexture), LabelNames: []string{"name"}},
	},
}

// Load parses and decodes the manifest at path. environ supplies the `env`
// object, in os.Environ form; pass nil to use the process environment.
func Load(path string, environ []string) (*Manifest, error) {
	src, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	if environ == nil {
		environ = os.Environ()
	}
	return Parse(src, path, environ)
}

// Parse decodes manifest source. filename is used in diagnostics and as the
// base for relative paths.
func Parse(src []byte, filename string, environ []string) (*Manifest, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest: failed to parse %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(manifestSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("manifest: failed to decode %s: %w", filename, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envObject(environ)},
	}
	base := filepath.Dir(filename)

	m := &Manifest{Path: filename}
	for _, block := range content.Blocks {
		step, err := decodeStep(block, evalCtx, base)
		if err != nil {
			return nil, err
		}
		m.Steps = append(m.Steps, step)
	}
	return m, nil
}

func decodeStep(block *hcl.Block, evalCtx *hcl.EvalContext, base string) (Step, error) {
	step := Step{
		Kind:  Kind(block.Type),
		Name:  block.Labels[0],
		Range: block.DefRange,
	}

	switch step.Kind {
	case KindShaders:
		if _, ok := shader.Toolchains[step.Name]; !ok {
			return step, fmt.Errorf("%w: %s: unknown toolchain %q", ErrInvalidManifest, block.DefRange, step.Name)
		}
		var s ShadersStep
		if diags := gohcl.DecodeBody(block.Body, evalCtx, &s); diags.HasErrors() {
			return step, fmt.Errorf("manifest: shaders %q: %w", step.Name, diags)
		}
		s.Input = resolve(base, s.Input)
		s.Output = resolve(base, s.Output)
		if strings.ContainsAny(s.Compiler, `/`+string(filepath.Separator)) {
			s.Compiler = resolve(base, s.Compiler)
		}
		step.Shaders = &s

	case KindTexture:
		var tx TextureStep
		if diags := gohcl.DecodeBody(block.Body, evalCtx, &tx); diags.HasErrors() {
			return step, fmt.Errorf("manifest: texture %q: %w", step.Name, diags)
		}
		tx.Metallic = resolve(base, tx.Metallic)
		tx.Roughness = resolve(base, tx.Roughness)
		step.Texture = &tx
	}
	return step, nil
}

// resolve anchors relative paths at base.
func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// envObject exposes environment variables as a cty object keyed by name.
func envObject(environ []string) cty.Value {
	vals := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vals[name] = cty.StringVal(value)
	}
	return cty.ObjectVal(vals)
}
