package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Group != DefaultGroup {
		t.Errorf("Group = %d, want %d", cfg.Group, DefaultGroup)
	}
	if cfg.TimeoutMS != DefaultTimeoutMS {
		t.Errorf("TimeoutMS = %d, want %d", cfg.TimeoutMS, DefaultTimeoutMS)
	}
	if cfg.Provider != DefaultProvider {
		t.Errorf("Provider = %q, want %q", cfg.Provider, DefaultProvider)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults: %v", err)
	}
	if cfg.Timeout() != 500*time.Millisecond {
		t.Errorf("Timeout() = %v, want 500ms", cfg.Timeout())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}, wantErr: false},
		{name: "max group", mutate: func(c *Config) { c.Group = 15 }, wantErr: false},
		{name: "group too high", mutate: func(c *Config) { c.Group = 16 }, wantErr: true},
		{name: "negative group", mutate: func(c *Config) { c.Group = -1 }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.TimeoutMS = 0 }, wantErr: true},
		{name: "empty provider", mutate: func(c *Config) { c.Provider = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "idnls")
	if err := os.MkdirAll(cfgDir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "group: 7\ntimeout_ms: 1500\nprovider: mdns\nlog_level: debug\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Group != 7 {
		t.Errorf("Group = %d, want 7", cfg.Group)
	}
	if cfg.Timeout() != 1500*time.Millisecond {
		t.Errorf("Timeout() = %v, want 1.5s", cfg.Timeout())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "idnls")
	if err := os.MkdirAll(cfgDir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte("group: 3\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Group != 3 {
		t.Errorf("Group = %d, want 3", cfg.Group)
	}
	if cfg.Provider != DefaultProvider {
		t.Errorf("Provider = %q, want default %q", cfg.Provider, DefaultProvider)
	}
}

func TestLoadRejectsBadFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "group: [unclosed\n"},
		{name: "group out of range", content: "group: 99\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", dir)

			cfgDir := filepath.Join(dir, "idnls")
			if err := os.MkdirAll(cfgDir, 0700); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}

			if _, err := Load(); err == nil {
				t.Error("Load() succeeded on a bad config file")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := &Config{Group: 5, TimeoutMS: 2000, Provider: "mdns", LogLevel: "info"}
	if err := Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}
