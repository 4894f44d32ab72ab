package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mayanum/pkg/errors"
)

// run executes the root command with args and returns what it wrote to
// stdout. A config path inside a temp dir keeps the user's file out.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "config.toml")}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandTree(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"cache", "completion", "config", "convert", "date", "layout", "presets", "render", "serve", "tui"}

	have := map[string]bool{}
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestConvertText(t *testing.T) {
	out, err := run(t, "convert", "123", "--no-glyphs")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, s := range []string{"Number", "123", "6,3₂₀", "6 × 20^1 • 3 × 20^0"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestConvertInvalid(t *testing.T) {
	tests := []struct {
		arg  string
		code errors.Code
	}{
		{"abc", errors.ErrCodeInvalidNumber},
		{"-5", errors.ErrCodeInvalidNumber},
		{"1.5", errors.ErrCodeInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			_, err := run(t, "convert", "--", tt.arg)
			if !errors.Is(err, tt.code) {
				t.Errorf("convert %q: got %v, want code %s", tt.arg, err, tt.code)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	out, err := run(t, "date", "05-01-2025", "--json")
	if err != nil {
		t.Fatalf("date: %v", err)
	}

	var groups []groupJSON
	if err := json.Unmarshal([]byte(out), &groups); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[0].Label != "Day" || groups[0].Value != 5 {
		t.Errorf("day = %+v", groups[0])
	}
	if got := groups[2].Digits; len(got) != 3 || got[0] != 5 || got[1] != 1 || got[2] != 5 {
		t.Errorf("year digits = %v, want [5 1 5]", got)
	}
}

func TestDateInvalid(t *testing.T) {
	_, err := run(t, "date", "29-02-2023")
	if !errors.Is(err, errors.ErrCodeInvalidDate) {
		t.Errorf("got %v, want INVALID_DATE", err)
	}
}

func TestLayoutStdout(t *testing.T) {
	out, err := run(t, "layout", "7")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	var l struct {
		Width      float64           `json:"width"`
		Primitives []json.RawMessage `json:"primitives"`
	}
	if err := json.Unmarshal([]byte(out), &l); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if l.Width != 100 {
		t.Errorf("width = %v, want 100", l.Width)
	}
	if len(l.Primitives) != 3 {
		t.Errorf("got %d primitives, want 3", len(l.Primitives))
	}
}

func TestRenderWritesFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "out")

	if _, err := run(t, "render", "123", "-f", "svg,json", "--no-cache", "-o", base); err != nil {
		t.Fatalf("render: %v", err)
	}
	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatalf("read svg: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("svg output is not an SVG document")
	}
	if _, err := os.Stat(base + ".json"); err != nil {
		t.Errorf("json output: %v", err)
	}
}

func TestRenderSingleFileKeepsName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numeral.svg")
	if _, err := run(t, "render", "--date", "05-01-2025", "--no-cache", "--size", "small", "-o", path); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Contains(data, []byte(`width="600" height="514"`)) {
		t.Errorf("small preset not applied:\n%s", data[:min(len(data), 200)])
	}
}

func TestRenderRejectsArgsWithDate(t *testing.T) {
	if _, err := run(t, "render", "5", "--date", "05-01-2025"); err == nil {
		t.Error("expected an error for a number and --date together")
	}
}

func TestPresetsTable(t *testing.T) {
	out, err := run(t, "presets", "400000")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, s := range []string{"original", "small", "600", "3000"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"--config", path, "config", "init"})
	if err := root.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("template not written: %v", err)
	}

	root = New(io.Discard, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"--config", path, "config", "init"})
	if err := root.Execute(); err == nil {
		t.Error("second init without --force should fail")
	}
}

func TestConfigDefaultsApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[export]\nsize = \"small\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "n.svg")

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"--config", path, "render", "400", "--no-cache", "-o", out})
	if err := root.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// 100x300 natural canvas scaled to the 600 wide preset.
	if !bytes.Contains(data, []byte(`width="600" height="1800"`)) {
		t.Errorf("config size not applied:\n%s", data[:min(len(data), 200)])
	}
}

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "config", "path"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != path {
		t.Errorf("config path = %q, want %q", out.String(), path)
	}
}
