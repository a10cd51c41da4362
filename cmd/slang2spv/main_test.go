package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/gogpu/assetpipe/internal/cli"
)

// fakeSlangc records its arguments into the output file so tests can check
// the stage passed for each source.
func fakeSlangc(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script compiler requires a POSIX shell")
	}
	// slangc -stage <stage> -target spirv -entry main -o <out> <in>
	script := `#!/bin/sh
echo "$2" > "$8"
`
	bin := filepath.Join(t.TempDir(), "slangc")
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return bin
}

func TestRun(t *testing.T) {
	bin := fakeSlangc(t)
	in := t.TempDir()
	for _, name := range []string{"skyVert.slang", "skyFrag.slang", "common.slang", "README.md"} {
		if err := os.WriteFile(filepath.Join(in, name), []byte("// source"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	out := t.TempDir()

	var stdout, stderr bytes.Buffer
	if err := run(context.Background(), &stdout, &stderr, []string{"-input", in, "-output", out, "-bin", bin}); err != nil {
		t.Fatalf("run() error = %v\nstderr: %s", err, stderr.String())
	}

	for file, stage := range map[string]string{"skyVert.spv": "vertex", "skyFrag.spv": "fragment"} {
		data, err := os.ReadFile(filepath.Join(out, file))
		if err != nil {
			t.Fatalf("%s: %v", file, err)
		}
		if got := strings.TrimSpace(string(data)); got != stage {
			t.Errorf("%s compiled with stage %q, want %q", file, got, stage)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "common.spv")); !os.IsNotExist(err) {
		t.Error("common.slang has no stage and must be skipped")
	}
	if !strings.Contains(stderr.String(), "unknown shader stage") {
		t.Errorf("unknown stage not logged:\n%s", stderr.String())
	}
}

func TestRun_MissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), &stdout, &stderr, []string{"-output", t.TempDir()})
	if code := cli.Report(&bytes.Buffer{}, err); code != cli.ExitUsage {
		t.Errorf("exit code = %d, want %d", code, cli.ExitUsage)
	}
}
