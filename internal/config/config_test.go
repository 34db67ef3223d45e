package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != "127.0.0.1:8080" {
		t.Errorf("listen = %q, want default", cfg.Listen)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := Default()
	want.Listen = "0.0.0.0:9000"
	want.DBPath = "/var/lib/dalcal/dalcal.db"
	want.Push.VAPIDPublicKey = "pub"
	want.Push.VAPIDPrivateKey = "priv"
	want.BasicAuth = &BasicAuthConfig{Username: "me", PasswordHash: "$2a$10$x"}

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.Listen != want.Listen || got.DBPath != want.DBPath {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.Push.VAPIDPublicKey != "pub" {
		t.Errorf("push key = %q", got.Push.VAPIDPublicKey)
	}
	if got.BasicAuth == nil || got.BasicAuth.Username != "me" {
		t.Errorf("basic auth = %+v", got.BasicAuth)
	}
}

func TestNormalizeFillsGaps(t *testing.T) {
	cfg := &Config{Listen: "", DBPath: "", LogLevel: ""}
	cfg.Normalize()

	if cfg.Listen == "" || cfg.DBPath == "" || cfg.LogLevel != "info" {
		t.Errorf("normalize left gaps: %+v", cfg)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("expected error for empty path")
	}
}
