package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/mayanum/pkg/pipeline"
)

func newTestModel(t *testing.T, opts pipeline.Options) (converterModel, string) {
	t.Helper()
	dir := t.TempDir()
	runner := pipeline.NewRunner(nil, nil, log.New(io.Discard))
	return newConverterModel(opts, runner, dir), dir
}

func update(t *testing.T, m converterModel, msg tea.Msg) (converterModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(converterModel), cmd
}

func typeText(t *testing.T, m converterModel, s string) converterModel {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestConverterInitialValue(t *testing.T) {
	m, _ := newTestModel(t, pipeline.Options{Number: "123"})
	if m.mode != modeNumber {
		t.Errorf("mode = %v, want Number", m.mode)
	}
	if len(m.groups) != 1 || m.groups[0].Digits.Value() != 123 {
		t.Fatalf("groups = %+v", m.groups)
	}
	if !strings.Contains(m.View(), "6,3₂₀") {
		t.Errorf("view missing notation:\n%s", m.View())
	}
}

func TestConverterSwitchToDate(t *testing.T) {
	m, _ := newTestModel(t, pipeline.Options{Number: "9"})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != modeDate {
		t.Fatalf("mode = %v, want Date", m.mode)
	}
	if m.input.Value() != "" || m.groups != nil {
		t.Error("switching mode should clear the input")
	}

	m = typeText(t, m, "05-01-2025")
	if len(m.groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(m.groups))
	}
	view := m.View()
	for _, s := range []string{"Day", "Month", "Year"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q", s)
		}
	}
}

func TestConverterShowsErrors(t *testing.T) {
	m, _ := newTestModel(t, pipeline.Options{})
	m = typeText(t, m, "12a")
	if m.err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(m.View(), "not a non-negative integer") {
		t.Errorf("view missing error:\n%s", m.View())
	}
}

func TestConverterExport(t *testing.T) {
	m, dir := newTestModel(t, pipeline.Options{Number: "20"})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("ctrl+s returned no command")
	}

	msg, ok := cmd().(exportedMsg)
	if !ok {
		t.Fatalf("command returned %T", msg)
	}
	if msg.err != nil {
		t.Fatalf("export: %v", msg.err)
	}
	want := filepath.Join(dir, "mayan-numeral-number-20.svg")
	if msg.path != want {
		t.Errorf("path = %q, want %q", msg.path, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("file not written: %v", err)
	}

	m, _ = update(t, m, msg)
	if !strings.HasPrefix(m.status, "saved") {
		t.Errorf("status = %q", m.status)
	}
}

func TestConverterExportEmpty(t *testing.T) {
	m, _ := newTestModel(t, pipeline.Options{})
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("empty input should not export")
	}
	if m.status == "" {
		t.Error("expected a status message")
	}
}

func TestConverterQuit(t *testing.T) {
	m, _ := newTestModel(t, pipeline.Options{})
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := update(t, m, tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("%v: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: expected quit", k)
		}
	}
}

func TestTUIRunnerLogsNothing(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	var buf bytes.Buffer
	c := New(&buf, LogDebug)

	opts := pipeline.Options{Number: "20"}
	runner, err := c.tuiRunner(&opts)
	if err != nil {
		t.Fatalf("tuiRunner() error = %v", err)
	}
	defer runner.Close()

	m := newConverterModel(opts, runner, t.TempDir())
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("ctrl+s returned no command")
	}
	if msg, ok := cmd().(exportedMsg); !ok || msg.err != nil {
		t.Fatalf("export = %+v", msg)
	}
	if buf.Len() != 0 {
		t.Errorf("runner wrote to the terminal:\n%s", buf.String())
	}
}
