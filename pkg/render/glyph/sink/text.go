package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/mayanum/pkg/render/glyph/layout"
)

// Terminal glyphs.
const (
	TextDot  = "●"
	TextBar  = "━━━━━━━"
	TextZero = "◎"
)

const (
	textBandWidth = 11
	textGap       = "  "
	// One dot row above at most three bars.
	textCellRows = 4
)

// TextOption configures terminal rendering.
type TextOption func(*textRenderer)

type textRenderer struct {
	glyph  lipgloss.Style
	label  lipgloss.Style
	labels bool
}

// WithGlyphStyle colours dots, bars and shells.
func WithGlyphStyle(s lipgloss.Style) TextOption { return func(r *textRenderer) { r.glyph = s } }

// WithLabelStyle styles the group label row.
func WithLabelStyle(s lipgloss.Style) TextOption { return func(r *textRenderer) { r.label = s } }

// WithLabels prints each group label above its band.
func WithLabels() TextOption { return func(r *textRenderer) { r.labels = true } }

// RenderText draws the layout as a character grid. Each cell is four rows
// tall with the cluster resting on the bottom row, and cells are separated
// by a blank row. Bands are top aligned like the canvas.
func RenderText(l layout.Layout, opts ...TextOption) string {
	r := textRenderer{glyph: lipgloss.NewStyle(), label: lipgloss.NewStyle().Bold(true)}
	for _, opt := range opts {
		opt(&r)
	}
	if len(l.Bands) == 0 {
		return ""
	}

	byCell := make(map[cellKey]layout.Cell, len(l.Cells))
	for _, c := range l.Cells {
		byCell[cellKey{c.Group, c.Index}] = c
	}

	blocks := make([]string, 0, 2*len(l.Bands))
	for gi, b := range l.Bands {
		var lines []string
		if r.labels {
			lines = append(lines, r.center(r.label.Render(b.Label)), "")
		}
		for i := range b.Digits {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, r.cellRows(byCell[cellKey{gi, i}])...)
		}
		if gi > 0 {
			blocks = append(blocks, textGap)
		}
		for i, line := range lines {
			if line == "" {
				lines[i] = strings.Repeat(" ", textBandWidth)
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

func (r textRenderer) cellRows(c layout.Cell) []string {
	rows := make([]string, textCellRows)
	if c.Zero {
		rows[textCellRows-1] = r.center(r.glyph.Render(TextZero))
		return rows
	}

	row := textCellRows - 1
	for range c.Bars {
		rows[row] = r.center(r.glyph.Render(TextBar))
		row--
	}
	if c.Dots > 0 {
		dots := strings.TrimSpace(strings.Repeat(TextDot+" ", c.Dots))
		rows[row] = r.center(r.glyph.Render(dots))
	}
	return rows
}

func (r textRenderer) center(s string) string {
	return lipgloss.PlaceHorizontal(textBandWidth, lipgloss.Center, s)
}
