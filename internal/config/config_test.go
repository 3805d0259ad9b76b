package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "mapcheck.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// chdir changes the working directory for the test and restores it on
// cleanup, standing in for testing.T.Chdir which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(dir) {
		dir, err = os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			panic("chdir cleanup: " + err.Error())
		}
	})
}

func TestLoadExplicitPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
root: /data/game
watch: true
log:
  level: debug
  file_dir: /tmp/logs
  max_size: 16
  compress: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/data/game" {
		t.Fatalf("root = %q", cfg.Root)
	}
	if !cfg.Watch {
		t.Fatal("watch not set")
	}
	if cfg.Log.Level != "debug" || cfg.Log.FileDir != "/tmp/logs" || cfg.Log.MaxSize != 16 || !cfg.Log.Compress {
		t.Fatalf("log config = %+v", cfg.Log)
	}
	// Defaults fill fields the file leaves unset.
	if cfg.Log.MaxAge != 7 {
		t.Fatalf("max_age default = %d", cfg.Log.MaxAge)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("expected an error for a missing explicit config")
	}
}

func TestLoadUpwardSearch(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "configs", "mapcheck.yml"), []byte("root: /srv/maps\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MAPCHECK_CONFIG", "")
	chdir(t, nested)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/srv/maps" {
		t.Fatalf("root = %q", cfg.Root)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("MAPCHECK_CONFIG", "")
	chdir(t, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "info" || cfg.Log.MaxSize != 64 {
		t.Fatalf("defaults = %+v", cfg.Log)
	}
}
