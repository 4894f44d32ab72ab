package export

import (
	"math"
	"strings"

	"github.com/matzehuels/mayanum/pkg/errors"
)

// Preset names an export size.
type Preset string

const (
	Original Preset = "original"
	Small    Preset = "small"
	Medium   Preset = "medium"
	Large    Preset = "large"
	Custom   Preset = "custom"
)

// Bounds for each axis of a custom size, in pixels.
const (
	MinCustom = 100
	MaxCustom = 5000
)

var presetWidths = map[Preset]int{
	Small:  600,
	Medium: 1200,
	Large:  2400,
}

var presetLabels = map[Preset]string{
	Original: "Original Size",
	Small:    "Small",
	Medium:   "Medium",
	Large:    "Large",
	Custom:   "Custom Size",
}

// AllPresets lists presets in menu order.
var AllPresets = []Preset{Original, Small, Medium, Large, Custom}

// Label returns the human-readable preset name.
func (p Preset) Label() string { return presetLabels[p] }

// ParsePreset validates a preset name. The empty string selects Original.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return Original, nil
	}
	if _, ok := presetLabels[p]; !ok {
		return "", errors.New(errors.ErrCodeInvalidPreset,
			"unknown size preset %q (must be original, small, medium, large, or custom)", s)
	}
	return p, nil
}

// Dimensions is the natural size of a diagram in canvas units.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// AspectRatio returns Width/Height, or 1 when either side is zero or not finite.
func (d Dimensions) AspectRatio() float64 {
	if !usable(d.Width) || !usable(d.Height) {
		return 1
	}
	return d.Width / d.Height
}

func usable(v float64) bool {
	return v != 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Size is a concrete export size in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Axis selects which custom dimension drives the other when the aspect
// ratio is locked.
type Axis string

const (
	LockNone   Axis = ""
	LockWidth  Axis = "width"
	LockHeight Axis = "height"
)

// ParseAxis validates an aspect-lock anchor.
func ParseAxis(s string) (Axis, error) {
	switch a := Axis(strings.ToLower(strings.TrimSpace(s))); a {
	case LockNone, LockWidth, LockHeight:
		return a, nil
	case "none", "off":
		return LockNone, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidSize, "unknown lock axis %q (must be width or height)", s)
	}
}

// CustomSize is a user-requested size. With Lock set, the named axis is kept
// and the other is derived from the original aspect ratio.
type CustomSize struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Lock   Axis `json:"lock,omitempty"`
}

// Clamp limits v to [MinCustom, MaxCustom].
func Clamp(v int) int {
	return min(max(v, MinCustom), MaxCustom)
}

// Resolve computes the export size for a preset. Every preset goes through
// math.Round, so Original is the natural size rounded to whole pixels.
// Unknown presets resolve like Original.
func Resolve(p Preset, original Dimensions, custom CustomSize) Size {
	aspect := original.AspectRatio()

	switch p {
	case Small, Medium, Large:
		w := presetWidths[p]
		return Size{Width: w, Height: round(float64(w) / aspect)}
	case Custom:
		return resolveCustom(custom, aspect)
	default:
		return Size{Width: round(original.Width), Height: round(original.Height)}
	}
}

func resolveCustom(c CustomSize, aspect float64) Size {
	switch c.Lock {
	case LockWidth:
		w := Clamp(c.Width)
		return Size{Width: w, Height: Clamp(round(float64(w) / aspect))}
	case LockHeight:
		h := Clamp(c.Height)
		return Size{Width: Clamp(round(float64(h) * aspect)), Height: h}
	default:
		return Size{Width: Clamp(c.Width), Height: Clamp(c.Height)}
	}
}

func round(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// Choice is one entry of a size menu.
type Choice struct {
	Preset Preset `json:"preset"`
	Label  string `json:"label"`
	Size   Size   `json:"size"`
}

// Presets resolves every preset for the given diagram, in menu order.
func Presets(original Dimensions, custom CustomSize) []Choice {
	out := make([]Choice, 0, len(AllPresets))
	for _, p := range AllPresets {
		out = append(out, Choice{Preset: p, Label: p.Label(), Size: Resolve(p, original, custom)})
	}
	return out
}
