package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestLoad_DefaultsWithEnvToken(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HUGGINGFACE_API_TOKEN", "env-token")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Inference.APIToken != "env-token" {
		t.Errorf("expected token from env, got %q", cfg.Inference.APIToken)
	}
	if cfg.History.WindowSize != 10 {
		t.Errorf("expected window size 10, got %d", cfg.History.WindowSize)
	}
	if cfg.Generation.MaxLoops != 10 {
		t.Errorf("expected max loops 10, got %d", cfg.Generation.MaxLoops)
	}
	if cfg.Generation.Temperature != 0.7 || cfg.Generation.TopP != 0.9 {
		t.Errorf("unexpected sampling defaults: %+v", cfg.Generation)
	}
	if len(cfg.Generation.Stop) != 1 || cfg.Generation.Stop[0] != "\nAssistant:" {
		t.Errorf("unexpected stop sequences: %q", cfg.Generation.Stop)
	}
	if cfg.Inference.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.Inference.Timeout)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HUGGINGFACE_API_TOKEN", "")

	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error when no API token is configured")
	}
}

func TestLoad_FileAndFlags(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HUGGINGFACE_API_TOKEN", "")

	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`
inference:
  api_token: file-token
  timeout: 5s
history:
  window_size: 5
  include_assistant_turns: false
generation:
  max_loops: 3
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.Int("port", 8080, "")
	if err := fs.Parse([]string{"--config", path, "--port", "9090"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg, err := Load(fs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Inference.APIToken != "file-token" {
		t.Errorf("expected file token, got %q", cfg.Inference.APIToken)
	}
	if cfg.Inference.Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.Inference.Timeout)
	}
	if cfg.History.WindowSize != 5 || cfg.History.IncludeAssistantTurns {
		t.Errorf("unexpected history config: %+v", cfg.History)
	}
	if cfg.Generation.MaxLoops != 3 {
		t.Errorf("expected max loops 3, got %d", cfg.Generation.MaxLoops)
	}
	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("expected port flag override 9090, got %d", cfg.HTTPServer.Port)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
