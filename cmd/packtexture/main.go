// Command packtexture combines the split metallic and roughness textures of
// a material into one metallic/roughness texture (R unused, G roughness,
// B metallic) written next to the metallic texture.
//
// Usage:
//
//	packtexture --metallic Rock_Metallic.png --roughness Rock_Roughness.png
//	# writes Rock_metallicRoughness.png
package main

import (
	"io"
	"os"

	"github.com/gogpu/assetpipe/internal/cli"
	"github.com/gogpu/assetpipe/texture"
)

func main() {
	os.Exit(cli.Report(os.Stderr, run(os.Stdout, os.Stderr, os.Args[1:])))
}

func run(stdout, stderr io.Writer, args []string) error {
	cfg, exit, err := cli.ParseTexture(args, stdout)
	if err != nil || exit {
		return err
	}
	cli.InstallLogger(stderr, cfg.Log)

	_, err = texture.Pack(cfg.Metallic, cfg.Roughness)
	return err
}
