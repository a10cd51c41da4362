package shader

import (
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/naga"
)

const vertexWGSL = `
@vertex
fn main(@builtin(vertex_index) idx: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}
`

const spirvMagic = 0x07230203

func testNagaCompiler() *NagaCompiler {
	return &NagaCompiler{Options: naga.CompileOptions{Validate: false}}
}

func TestNagaCompiler(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "fullscreen.wgsl")
	out := filepath.Join(dir, "fullscreen.spv")
	if err := os.WriteFile(in, []byte(vertexWGSL), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := testNagaCompiler().Compile(context.Background(), Job{Input: in, Output: out}); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 20 {
		t.Fatalf("SPIR-V output too short: %d bytes", len(data))
	}
	if magic := binary.LittleEndian.Uint32(data); magic != spirvMagic {
		t.Errorf("magic = %#08x, want %#08x", magic, spirvMagic)
	}
}

func TestNagaCompiler_Errors(t *testing.T) {
	dir := t.TempDir()

	err := testNagaCompiler().Compile(context.Background(), Job{
		Input:  filepath.Join(dir, "missing.wgsl"),
		Output: filepath.Join(dir, "missing.spv"),
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Compile(missing) error = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.wgsl")
	if err := os.WriteFile(bad, []byte("fn main( {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := testNagaCompiler().Compile(context.Background(), Job{Input: bad, Output: filepath.Join(dir, "bad.spv")}); err == nil {
		t.Error("Compile(bad source) should fail")
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.spv")); !os.IsNotExist(err) {
		t.Error("no output should be written for a failed compile")
	}
}

func TestBuild_WGSL(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	if err := os.WriteFile(filepath.Join(in, "fullscreen.wgsl"), []byte(vertexWGSL), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := Build(context.Background(), BuildConfig{
		Input: in, Output: out, Toolchain: WGSL, Compiler: testNagaCompiler(),
	})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(report.Compiled) != 1 {
		t.Fatalf("Compiled = %v, want one job", report.Compiled)
	}
	if _, err := os.Stat(filepath.Join(out, "fullscreen.spv")); err != nil {
		t.Errorf("fullscreen.spv not written: %v", err)
	}
}
