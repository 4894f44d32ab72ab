package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mayanum/pkg/errors"
	"github.com/matzehuels/mayanum/pkg/export"
	"github.com/matzehuels/mayanum/pkg/pipeline"
	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
)

var (
	tuiTabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(colorDim)
	tuiActiveTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(colorCyan).Underline(true)
	tuiErrorStyle     = lipgloss.NewStyle().Foreground(colorRed)
	tuiHelpStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// inputMode selects what the converter parses.
type inputMode int

const (
	modeNumber inputMode = iota
	modeDate
)

func (m inputMode) String() string {
	if m == modeDate {
		return "Date"
	}
	return "Number"
}

func (m inputMode) placeholder() string {
	if m == modeDate {
		return "DD-MM-YYYY"
	}
	return "e.g. 2025"
}

// exportedMsg reports the outcome of a ctrl+s export.
type exportedMsg struct {
	path string
	err  error
}

// converterModel is the bubbletea model of the live converter. Every edit
// re-parses the input; ctrl+s writes the current numeral as SVG.
type converterModel struct {
	input  textinput.Model
	mode   inputMode
	opts   pipeline.Options
	runner *pipeline.Runner
	outDir string

	groups []layout.Group
	err    error
	status string
}

func newConverterModel(opts pipeline.Options, runner *pipeline.Runner, outDir string) converterModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 32
	ti.Focus()

	m := converterModel{input: ti, opts: opts, runner: runner, outDir: outDir}
	if opts.Date != "" {
		m.mode = modeDate
		ti.SetValue(opts.Date)
	} else if opts.Number != "" {
		ti.SetValue(opts.Number)
	}
	ti.Placeholder = m.mode.placeholder()
	m.input = ti
	m.refresh()
	return m
}

func (m converterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m converterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.mode = 1 - m.mode
			m.input.SetValue("")
			m.input.Placeholder = m.mode.placeholder()
			m.status = ""
			m.refresh()
			return m, nil
		case "ctrl+s":
			if len(m.groups) == 0 {
				m.status = "nothing to export"
				return m, nil
			}
			return m, m.exportSVG()
		}
	case exportedMsg:
		if msg.err != nil {
			m.status = "export failed: " + errors.UserMessage(msg.err)
		} else {
			m.status = "saved " + msg.path
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.status = ""
		m.refresh()
	}
	return m, cmd
}

// current returns the options for the text in the input box.
func (m converterModel) current() pipeline.Options {
	opts := m.opts
	opts.Number, opts.Date = "", ""
	if m.mode == modeDate {
		opts.Date = m.input.Value()
	} else {
		opts.Number = m.input.Value()
	}
	return opts
}

func (m *converterModel) refresh() {
	m.groups, m.err = nil, nil
	if strings.TrimSpace(m.input.Value()) == "" {
		return
	}
	m.groups, _, m.err = pipeline.Parse(context.Background(), m.current())
}

func (m converterModel) exportSVG() tea.Cmd {
	opts := m.current()
	opts.Formats = []string{string(export.FormatSVG)}
	runner, dir := m.runner, m.outDir
	return func() tea.Msg {
		result, err := runner.Execute(context.Background(), opts)
		if err != nil {
			return exportedMsg{err: err}
		}
		path := filepath.Join(dir, result.FileBase+export.FormatSVG.Ext())
		return exportedMsg{path: path, err: writeFile(path, result.Artifacts[string(export.FormatSVG)])}
	}
}

func (m converterModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Mayan numeral converter"))
	b.WriteString("\n\n")
	for _, mode := range []inputMode{modeNumber, modeDate} {
		style := tuiTabStyle
		if mode == m.mode {
			style = tuiActiveTabStyle
		}
		b.WriteString(style.Render(mode.String()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(tuiErrorStyle.Render(errors.UserMessage(m.err)))
		b.WriteString("\n")
	case len(m.groups) > 0:
		for _, g := range m.groups {
			printGroup(&b, g)
		}
		b.WriteString("\n")
		b.WriteString(glyphPreview(m.groups))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(StyleSuccess.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(tuiHelpStyle.Render("tab switch mode · ctrl+s save svg · esc quit"))
	return b.String()
}

// tuiCommand creates the interactive converter command.
// tuiRunner creates a runner that logs nowhere. The alt screen owns the
// terminal while the converter runs.
func (c *CLI) tuiRunner(opts *pipeline.Options) (*pipeline.Runner, error) {
	runner, err := c.newRunner(false)
	if err != nil {
		return nil, err
	}
	quiet := log.New(io.Discard)
	runner.Logger = quiet
	opts.Logger = quiet
	return runner, nil
}

func (c *CLI) tuiCommand() *cobra.Command {
	var outDir string
	flags := newOptionFlags()

	cmd := &cobra.Command{
		Use:   "tui [number]",
		Short: "Convert numbers and dates interactively",
		Long: `Open a live converter in the terminal. Digits, notation and glyphs update
as you type. Tab switches between number and date input; ctrl+s saves the
current numeral as SVG.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.apply(cmd, c.fileCfg, args)
			runner, err := c.tuiRunner(&opts)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			model := newConverterModel(opts, runner, outDir)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&outDir, "output-dir", "o", ".", "directory for saved SVGs")
	flags.registerInput(cmd)
	flags.registerLayout(cmd)
	flags.registerDisplay(cmd)
	flags.registerExport(cmd)

	return cmd
}
