package layout

import "github.com/matzehuels/mayanum/pkg/vigesimal"

// Kind tags a [Primitive] as one of the three glyph shapes.
type Kind int

const (
	KindDot Kind = iota
	KindBar
	KindZero
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDot:
		return "dot"
	case KindBar:
		return "bar"
	case KindZero:
		return "zero"
	default:
		return "unknown"
	}
}

// Intrinsic glyph geometry at scale 1, in canvas units.
const (
	// BarHeight is the vertical slot one bar occupies in a stack.
	BarHeight = 8.0
	// BarWidth is the horizontal span of a bar stroke.
	BarWidth = 44.0
	// BarStroke is the drawn thickness of a bar.
	BarStroke = 6.0

	// DotHeight is the vertical slot reserved for the dot row.
	DotHeight = 12.0
	// DotWidth is the nominal footprint of a dot; row spacing is a multiple of it.
	DotWidth = 6.0
	// DotRadius is the drawn radius of a dot.
	DotRadius = 5.0
	// DotSpacingFactor multiplies DotWidth to get centre-to-centre dot spacing.
	DotSpacingFactor = 2.0

	// ZeroWidth and ZeroHeight are the intrinsic extents of the shell glyph.
	ZeroWidth  = 38.872
	ZeroHeight = 19.749
	// ZeroStroke is the outline width of the shell glyph.
	ZeroStroke = 1.5
)

// Cluster is the glyph decomposition of a single digit.
type Cluster struct {
	Zero bool
	Bars int
	Dots int
}

// ClusterOf maps a digit to its glyphs. Zero is drawn as one shell and
// never as an empty cluster.
func ClusterOf(d vigesimal.Digit) Cluster {
	if d == 0 {
		return Cluster{Zero: true}
	}
	return Cluster{Bars: vigesimal.Bars(d), Dots: vigesimal.Dots(d)}
}

// Height returns the natural height of the cluster at the given scale.
func (c Cluster) Height(scale float64) float64 {
	if c.Zero {
		return ZeroHeight * scale
	}
	h := float64(c.Bars) * BarHeight * scale
	if c.Dots > 0 {
		h += DotHeight * scale
	}
	return h
}

// Point is a 2D coordinate in shell path space or canvas space.
type Point struct {
	X, Y float64
}

// Curve is a path made of consecutive cubic Bézier segments. Each segment
// holds two control points followed by its end point.
type Curve struct {
	Start    Point
	Segments [][3]Point
}

// ShellCenter is the centre of the shell ellipse in path space. Drawing a
// shell at (cx, cy) maps path point p to (cx + (p.X-ShellCenter.X)·s, cy + (p.Y-ShellCenter.Y)·s).
var ShellCenter = Point{X: 25.014, Y: 75.628}

// Radii of the shell outline ellipse in path space.
const (
	ShellRX = ZeroWidth / 2
	ShellRY = ZeroHeight / 2
)

// ShellCurves are the inner strokes of the shell glyph in path space.
var ShellCurves = []Curve{
	{
		Start: Point{43.55, 72.678},
		Segments: [][3]Point{
			{{41.0789, 76.6891}, {33.7038, 79.6023}, {24.998, 79.6023}},
			{{16.3051, 79.6023}, {8.939, 76.698}, {6.457, 72.6964}},
		},
	},
	{
		Start: Point{25.25, 79.628},
		Segments: [][3]Point{
			{{23.4969, 77.8054}, {22.4883, 75.6708}, {22.4883, 73.3896}},
			{{22.4883, 70.5573}, {24.0432, 67.9509}, {26.6474, 65.8871}},
		},
	},
	{
		Start: Point{32.25, 78.888},
		Segments: [][3]Point{
			{{31.3191, 77.4698}, {30.8057, 75.9168}, {30.8057, 74.2893}},
			{{30.8057, 71.5821}, {32.2263, 69.0813}, {34.6259, 67.0634}},
		},
	},
	{
		Start: Point{17.25, 78.798},
		Segments: [][3]Point{
			{{15.7636, 77.0829}, {14.9192, 75.1184}, {14.9192, 73.0312}},
			{{14.9192, 70.6008}, {16.0641, 68.3368}, {18.0344, 66.4391}},
		},
	},
}

// ShellPoint maps a path-space point onto the canvas for a shell centred at
// (cx, cy) with the given scale.
func ShellPoint(p Point, cx, cy, scale float64) Point {
	return Point{
		X: cx + (p.X-ShellCenter.X)*scale,
		Y: cy + (p.Y-ShellCenter.Y)*scale,
	}
}
