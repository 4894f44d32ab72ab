package export

import (
	"fmt"
	"strings"

	"github.com/matzehuels/mayanum/pkg/errors"
)

// Format is an export file format.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// AllFormats lists the supported formats.
var AllFormats = []Format{FormatSVG, FormatPNG, FormatPDF, FormatJSON}

var contentTypes = map[Format]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatPDF:  "application/pdf",
	FormatJSON: "application/json",
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := contentTypes[f]; !ok {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (must be svg, png, pdf, or json)", s)
	}
	return f, nil
}

// ParseFormats validates a list of format names, dropping duplicates.
func ParseFormats(names []string) ([]Format, error) {
	seen := make(map[Format]bool, len(names))
	out := make([]Format, 0, len(names))
	for _, n := range names {
		f, err := ParseFormat(n)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string { return contentTypes[f] }

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// NumberFileBase returns the default file name, without extension, for a number.
func NumberFileBase(n uint64) string {
	return fmt.Sprintf("mayan-numeral-number-%d", n)
}

// DateFileBase returns the default file name, without extension, for a date.
func DateFileBase(day, month, year int) string {
	return fmt.Sprintf("mayan-numeral-date-%d-%d-%d", day, month, year)
}
