package cli

import "io"

// ShaderConfig configures glsl2spv, slang2spv and wgsl2spv.
type ShaderConfig struct {
	Input  string
	Output string

	// Bin overrides the external compiler (glsl2spv, slang2spv).
	Bin string

	// Debug and Validate tune the in-process compiler (wgsl2spv).
	Debug    bool
	Validate bool

	Log LogConfig
}

// ShaderCommand describes one shader command for ParseShader.
type ShaderCommand struct {
	Name    string
	Summary string

	// DefaultBin enables the -bin flag when non-empty.
	DefaultBin string

	// InProcess enables the -debug and -validate flags.
	InProcess bool
}

// ParseShader parses a shader command line. It returns the config, whether
// the program should exit cleanly (help), or an *ExitError.
func ParseShader(cmd ShaderCommand, args []string, out io.Writer) (*ShaderConfig, bool, error) {
	c := newCommand(cmd.Name, cmd.Summary, "--input <dir> --output <dir> [options]", out)

	cfg := &ShaderConfig{}
	c.fs.StringVar(&cfg.Input, "input", "", "Input directory containing shader sources (required).")
	c.fs.StringVar(&cfg.Output, "output", "", "Output directory for .spv files, created if absent (required).")
	if cmd.DefaultBin != "" {
		c.fs.StringVar(&cfg.Bin, "bin", cmd.DefaultBin, "Compiler executable.")
	}
	if cmd.InProcess {
		c.fs.BoolVar(&cfg.Debug, "debug", false, "Include debug info in the SPIR-V output.")
		c.fs.BoolVar(&cfg.Validate, "validate", true, "Validate the IR before code generation.")
	}

	if exit, err := c.parse(args); exit || err != nil {
		return nil, exit, err
	}
	if err := c.require(required{"input", cfg.Input}, required{"output", cfg.Output}); err != nil {
		return nil, false, err
	}

	logCfg, err := c.logConfig()
	if err != nil {
		return nil, false, err
	}
	cfg.Log = logCfg
	return cfg, false, nil
}

// TextureConfig configures packtexture.
type TextureConfig struct {
	Metallic  string
	Roughness string
	Log       LogConfig
}

// ParseTexture parses the packtexture command line.
func ParseTexture(args []string, out io.Writer) (*TextureConfig, bool, error) {
	c := newCommand("packtexture",
		"Combine textures of materials that have split metallic and roughness textures",
		"--metallic <path> --roughness <path> [options]", out)

	cfg := &TextureConfig{}
	c.fs.StringVar(&cfg.Metallic, "metallic", "", "Path to the metallic texture (required).")
	c.fs.StringVar(&cfg.Roughness, "roughness", "", "Path to the roughness texture (required).")

	if exit, err := c.parse(args); exit || err != nil {
		return nil, exit, err
	}
	if err := c.require(required{"metallic", cfg.Metallic}, required{"roughness", cfg.Roughness}); err != nil {
		return nil, false, err
	}

	logCfg, err := c.logConfig()
	if err != nil {
		return nil, false, err
	}
	cfg.Log = logCfg
	return cfg, false, nil
}

// ManifestConfig configures assetpipe.
type ManifestConfig struct {
	Path string
	Log  LogConfig
}

// ParseManifest parses the assetpipe command line: options followed by the
// manifest path.
func ParseManifest(args []string, out io.Writer) (*ManifestConfig, bool, error) {
	c := newCommand("assetpipe", "Run the asset pipeline steps of an HCL manifest",
		"[options] <manifest.hcl>", out)

	if exit, err := c.parse(args); exit || err != nil {
		return nil, exit, err
	}
	if c.fs.NArg() != 1 {
		c.fs.Usage()
		return nil, false, usageError("expected exactly one manifest path, got %d", c.fs.NArg())
	}

	logCfg, err := c.logConfig()
	if err != nil {
		return nil, false, err
	}
	return &ManifestConfig{Path: c.fs.Arg(0), Log: logCfg}, false, nil
}
