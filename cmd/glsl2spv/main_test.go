package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gogpu/assetpipe/internal/cli"
	"github.com/gogpu/assetpipe/shader"
)

// fakeValidator writes a shell script standing in for glslangValidator.
// It is invoked as "-V <in> -o <out>", copies in to out and fails when the
// source contains "error".
func fakeValidator(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script compiler requires a POSIX shell")
	}
	script := `#!/bin/sh
if grep -q error "$2"; then
  echo "ERROR: $2:1: syntax error"
  exit 2
fi
cp "$2" "$4"
`
	bin := filepath.Join(t.TempDir(), "glslangValidator")
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return bin
}

func writeSources(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, src := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRun(t *testing.T) {
	bin := fakeValidator(t)
	in := writeSources(t, map[string]string{
		"a.vert": "void main() {}",
		"b.frag": "void main() {}",
		"c.txt":  "notes",
	})
	out := filepath.Join(t.TempDir(), "spv")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, []string{"-input", in, "-output", out, "-bin", bin})
	if err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, stderr.String())
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if strings.Join(got, ",") != "a.spv,b.spv" {
		t.Errorf("outputs = %v, want [a.spv b.spv]", got)
	}
	if !strings.Contains(stderr.String(), "c.txt") {
		t.Errorf("skip of c.txt not logged:\n%s", stderr.String())
	}
}

func TestRun_CompileFailureAborts(t *testing.T) {
	bin := fakeValidator(t)
	in := writeSources(t, map[string]string{
		"a.vert": "error here",
		"b.frag": "void main() {}",
	})
	out := t.TempDir()

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, []string{"-input", in, "-output", out, "-bin", bin})
	if !errors.Is(err, shader.ErrCompile) {
		t.Fatalf("run() error = %v, want ErrCompile", err)
	}
	if code := cli.Report(&bytes.Buffer{}, err); code != cli.ExitFailure {
		t.Errorf("exit code = %d, want %d", code, cli.ExitFailure)
	}
	if !strings.Contains(err.Error(), "syntax error") {
		t.Errorf("error should carry compiler output, got %q", err)
	}
	if _, err := os.Stat(filepath.Join(out, "b.spv")); !os.IsNotExist(err) {
		t.Error("b.frag must not be compiled after a.vert failed")
	}
}

func TestRun_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no flags", nil},
		{"missing output", []string{"-input", "in"}},
		{"unknown flag", []string{"-input", "in", "-output", "out", "-recursive"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), &stdout, &stderr, tt.args)
			if code := cli.Report(&bytes.Buffer{}, err); code != cli.ExitUsage {
				t.Errorf("exit code = %d, want %d (err = %v)", code, cli.ExitUsage, err)
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), &stdout, &stderr, []string{"-h"}); err != nil {
		t.Fatalf("run(-h) error = %v", err)
	}
	if !strings.Contains(stdout.String(), "glsl2spv") {
		t.Errorf("help output missing command name:\n%s", stdout.String())
	}
}
