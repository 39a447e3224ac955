package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(`
access_token: tok-123
key: api-key-456
user_agent: my-tool/1.0
base_url: http://localhost:8080/
scopes:
  - https://www.googleapis.com/auth/cloud-billing
debug: true
retries: 2
`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got, want := cfg.AccessToken, "tok-123"; got != want {
		t.Errorf("AccessToken = %q, want %q", got, want)
	}
	if got, want := cfg.Key, "api-key-456"; got != want {
		t.Errorf("Key = %q, want %q", got, want)
	}
	if got, want := cfg.BaseURL, "http://localhost:8080/"; got != want {
		t.Errorf("BaseURL = %q, want %q", got, want)
	}
	if len(cfg.Scopes) != 1 {
		t.Errorf("Scopes = %v, want one entry", cfg.Scopes)
	}
	if !cfg.Debug || cfg.Retries != 2 {
		t.Errorf("Debug/Retries = %v/%d, want true/2", cfg.Debug, cfg.Retries)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig succeeded on a missing file")
	}
}
