package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDirXDG(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(custom, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg-test")
	c := New(io.Discard, LogInfo)
	if got := c.configFile(); got != filepath.Join("/etc/xdg-test", appName, "config.toml") {
		t.Errorf("configFile() = %q", got)
	}
	c.configPath = "custom.toml"
	if got := c.configFile(); got != "custom.toml" {
		t.Errorf("configFile() with --config = %q", got)
	}
}

func TestCacheCommands(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	out := filepath.Join(t.TempDir(), "n.svg")

	// A cached render leaves one entry behind.
	if _, err := run(t, "render", "19", "-o", out); err != nil {
		t.Fatalf("render: %v", err)
	}
	fc, err := openFileCache()
	if err != nil {
		t.Fatal(err)
	}
	if n, _, _ := fc.Stats(); n != 1 {
		t.Fatalf("%d cache entries after render, want 1", n)
	}
	stats, err := run(t, "cache", "stats")
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	if !strings.Contains(stats, "entries") || !strings.Contains(stats, fc.Dir()) {
		t.Errorf("stats = %q", stats)
	}

	if _, err := run(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if n, _, _ := fc.Stats(); n != 0 {
		t.Errorf("%d entries after clear", n)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
