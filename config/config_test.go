package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/criyle/go-prlimit/pkg/rlimit"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "limits.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
pid: 123
limits:
  nofile: "1024:4096"
  core: "0"
  stack: ":unlimited"
log:
  format: json
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pid != 123 {
		t.Errorf("Pid = %d, want 123", cfg.Pid)
	}
	if cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v", cfg.Log)
	}

	rs, err := cfg.Requests()
	if err != nil {
		t.Fatal(err)
	}
	want := "RLimits[core=0:0,nofile=1024:4096,stack=:unlimited]"
	if got := rs.String(); got != want {
		t.Errorf("Requests() = %s, want %s", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "limits: {}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Pid != 0 || cfg.Log.Level != DefaultLogLevel || cfg.Log.Format != DefaultLogFormat {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	rs, err := cfg.Requests()
	if err != nil || len(rs) != 0 {
		t.Errorf("Requests() = %v, %v", rs, err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
	if _, err := Load(writeConfig(t, "pid: [1\n")); err == nil {
		t.Error("malformed yaml accepted")
	}
	if _, err := Load(writeConfig(t, "pid: -3\n")); err == nil {
		t.Error("negative pid accepted")
	}
}

func TestRequestsInvalid(t *testing.T) {
	cfg := Config{Limits: map[string]string{"nofile": "many"}}
	if _, err := cfg.Requests(); !errors.Is(err, rlimit.ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}
