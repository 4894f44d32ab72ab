// Package config loads the optional TOML configuration file.
//
// Every field is a pointer so that an absent key can be told apart from a
// zero value. Command-line flags always win over the file.
package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Display DisplayConfig `toml:"display"`
	Layout  LayoutConfig  `toml:"layout"`
	Export  ExportConfig  `toml:"export"`
	Server  ServerConfig  `toml:"server"`
}

// DisplayConfig maps colour settings.
type DisplayConfig struct {
	Theme      *string `toml:"theme"`
	Background *string `toml:"background"`
	Glyph      *string `toml:"glyph"`
	Grid       *bool   `toml:"grid"`
}

// LayoutConfig maps layout engine settings.
type LayoutConfig struct {
	Scale      *float64 `toml:"scale"`
	CellHeight *float64 `toml:"cell-height"`
	GroupWidth *float64 `toml:"group-width"`
	Spacing    *float64 `toml:"spacing"`
}

// ExportConfig maps export size settings.
type ExportConfig struct {
	Size   *string `toml:"size"`
	Width  *int    `toml:"width"`
	Height *int    `toml:"height"`
	Lock   *string `toml:"lock"`
}

// ServerConfig maps `mayanum serve` settings.
type ServerConfig struct {
	Addr      *string `toml:"addr"`
	RedisAddr *string `toml:"redis-addr"`
	MongoURI  *string `toml:"mongo-uri"`
	CacheTTL  *string `toml:"cache-ttl"`
}

// TTL parses cache-ttl, returning fallback when it is unset.
func (s ServerConfig) TTL(fallback time.Duration) (time.Duration, error) {
	if s.CacheTTL == nil || *s.CacheTTL == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(*s.CacheTTL)
	if err != nil {
		return 0, fmt.Errorf("invalid cache-ttl %q: %w", *s.CacheTTL, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("cache-ttl must be positive, got %s", d)
	}
	return d, nil
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Encode writes cfg as TOML. Unset fields are omitted.
func Encode(cfg FileConfig) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultTemplate is written by `mayanum config init`.
func DefaultTemplate() string {
	return `# mayanum configuration
# Uncomment a value to enable it. CLI flags override config values.

[display]
# theme = "light"          # light or dark
# background = "#ffffff"   # any CSS colour: #rgb, #rrggbb, #rrggbbaa, rgb(), rgba(), names
# glyph = "#000000"
# grid = false

[layout]
# scale = 1.0
# cell-height = 100.0
# group-width = 100.0
# spacing = 25.0

[export]
# size = "original"        # original, small, medium, large, custom
# width = 800              # custom width, 100-5000
# height = 600             # custom height, 100-5000
# lock = ""                # width or height keeps the aspect ratio

[server]
# addr = ":8080"
# redis-addr = "localhost:6379"
# mongo-uri = "mongodb://localhost:27017"
# cache-ttl = "168h"
`
}
