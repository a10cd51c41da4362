package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/assetpipe/internal/cli"
)

const triangleWGSL = `
@vertex
fn main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`

func TestRun(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "triangle.wgsl"), []byte(triangleWGSL), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	args := []string{"-input", in, "-output", out, "-validate=false", "-log-format", "json"}
	if err := run(context.Background(), &stdout, &stderr, args); err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(out, "triangle.spv"))
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 4 || binary.LittleEndian.Uint32(data) != 0x07230203 {
		t.Errorf("output is not SPIR-V (%d bytes)", len(data))
	}
}

func TestRun_RejectsBin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, []string{"-input", "in", "-output", "out", "-bin", "naga"})
	if code := cli.Report(&bytes.Buffer{}, err); code != cli.ExitUsage {
		t.Errorf("exit code = %d, want %d", code, cli.ExitUsage)
	}
}
