// ABOUTME: Tests for client configuration management
// ABOUTME: Verifies loading, saving, key updates and environment overrides

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := Path(); got != filepath.Join("/tmp/xdg", "tempmail", "config.yaml") {
		t.Errorf("unexpected path %s", got)
	}
	if Dir() != filepath.Dir(Path()) {
		t.Errorf("Dir() = %s, want %s", Dir(), filepath.Dir(Path()))
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvToken, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://localhost:8080" {
		t.Errorf("unexpected api url %q", cfg.APIURL)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("unexpected timeout %s", cfg.Timeout)
	}
	if Exists() {
		t.Error("expected no config file")
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvToken, "")

	cfg := DefaultConfig()
	if err := cfg.Set("api_url", "https://mail.example.com/"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("timeout", "3s"); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Set("default_destination", "me@inbox.test"); err != nil {
		t.Fatal(err)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.APIURL != "https://mail.example.com" {
		t.Errorf("api url = %q", loaded.APIURL)
	}
	if loaded.Timeout != 3*time.Second {
		t.Errorf("timeout = %s", loaded.Timeout)
	}
	if loaded.DefaultDestination != "me@inbox.test" {
		t.Errorf("default destination = %q", loaded.DefaultDestination)
	}

	info, err := os.Stat(Path())
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("config mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIURL, "http://override:9000")
	t.Setenv(EnvToken, "tok")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIURL != "http://override:9000" || cfg.Token != "tok" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadFileIgnoresEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvAPIURL, "http://override:9000")

	cfg := DefaultConfig()
	cfg.APIURL = "http://stored:8080"
	if err := Save(cfg); err != nil {
		t.Fatal(err)
	}

	stored, err := LoadFile()
	if err != nil {
		t.Fatal(err)
	}
	if stored.APIURL != "http://stored:8080" {
		t.Errorf("LoadFile applied env: %q", stored.APIURL)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := os.MkdirAll(Dir(), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(), []byte("api_url: [oops"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("expected parse error")
	}
}

func TestSetGet(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{name: "token masked", key: "token", value: "abc", want: "***"},
		{name: "timeout", key: "timeout", value: "2m", want: "2m0s"},
		{name: "bad timeout", key: "timeout", value: "soon", wantErr: true},
		{name: "negative timeout", key: "timeout", value: "-1s", wantErr: true},
		{name: "unknown", key: "color", value: "red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			got, err := cfg.Get(tt.key)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}
