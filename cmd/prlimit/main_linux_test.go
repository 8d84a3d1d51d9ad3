package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/criyle/go-prlimit/pkg/rlimit"
)

func TestRunList(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-output", "raw"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != len(rlimit.Names()) {
		t.Errorf("got %d lines, want %d", len(lines), len(rlimit.Names()))
	}
	if !strings.Contains(stdout.String(), "nofile ") {
		t.Errorf("nofile missing: %q", stdout.String())
	}
}

func keepCoreLimit(t *testing.T) rlimit.Limit {
	t.Helper()
	orig, err := rlimit.Get(0, rlimit.Core)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if _, err := rlimit.SetOrGet(0, rlimit.Core, orig); err != nil {
			t.Errorf("restore core limit: %v", err)
		}
	})
	return orig
}

func TestRunSet(t *testing.T) {
	orig := keepCoreLimit(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-output", "raw", "-log-level", "error", "-set", "core=0:"}, &stdout, &stderr)
	if code != exitOK {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	want := "core 0 " + orig.Hard.String() + "\n"
	if stdout.String() != want {
		t.Errorf("got %q, want %q", stdout.String(), want)
	}
}

func TestRunSetQuiet(t *testing.T) {
	keepCoreLimit(t)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-output", "raw", "-set", "core=0:"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("default log level wrote to stderr: %q", stderr.String())
	}

	stderr.Reset()
	if code := run([]string{"-output", "raw", "-log-level", "debug", "-set", "core=0:"}, &stdout, &stderr); code != exitOK {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "limit changed") {
		t.Errorf("debug level did not log the change: %q", stderr.String())
	}
}

func TestRunConfig(t *testing.T) {
	orig := keepCoreLimit(t)

	path := filepath.Join(t.TempDir(), "limits.yaml")
	content := "limits:\n  core: \"0:\"\nlog:\n  level: error\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-output", "raw", "-config", path}, &stdout, &stderr); code != exitOK {
		t.Fatalf("run = %d, stderr: %s", code, stderr.String())
	}
	if want := "core 0 " + orig.Hard.String() + "\n"; stdout.String() != want {
		t.Errorf("got %q, want %q", stdout.String(), want)
	}
}

func TestRunSetFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-output", "raw", "-set", "core=10:5"}, &stdout, &stderr)
	if code != exitError {
		t.Errorf("run = %d, want %d", code, exitError)
	}
	if !strings.Contains(stderr.String(), "invalid argument") {
		t.Errorf("stderr = %q", stderr.String())
	}
}
