package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/mayanum/pkg/vigesimal"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func number(n uint64) Group {
	return Group{Label: "Number", Digits: vigesimal.ToDigits(n)}
}

func kinds(ps []Primitive) (zeros, bars, dots int) {
	for _, p := range ps {
		switch p.Kind {
		case KindZero:
			zeros++
		case KindBar:
			bars++
		case KindDot:
			dots++
		}
	}
	return
}

func TestClusterOf(t *testing.T) {
	tests := []struct {
		d    vigesimal.Digit
		want Cluster
	}{
		{0, Cluster{Zero: true}},
		{1, Cluster{Dots: 1}},
		{4, Cluster{Dots: 4}},
		{5, Cluster{Bars: 1}},
		{7, Cluster{Bars: 1, Dots: 2}},
		{15, Cluster{Bars: 3}},
		{19, Cluster{Bars: 3, Dots: 4}},
	}
	for _, tt := range tests {
		if got := ClusterOf(tt.d); got != tt.want {
			t.Errorf("ClusterOf(%d) = %+v, want %+v", tt.d, got, tt.want)
		}
	}
}

func TestClusterHeight(t *testing.T) {
	tests := []struct {
		c     Cluster
		scale float64
		want  float64
	}{
		{Cluster{Zero: true}, 1, ZeroHeight},
		{Cluster{Dots: 3}, 1, DotHeight},
		{Cluster{Bars: 2}, 1, 2 * BarHeight},
		{Cluster{Bars: 3, Dots: 4}, 2, 2 * (3*BarHeight + DotHeight)},
	}
	for _, tt := range tests {
		if got := tt.c.Height(tt.scale); !approx(got, tt.want) {
			t.Errorf("%+v.Height(%v) = %v, want %v", tt.c, tt.scale, got, tt.want)
		}
	}
}

func TestEveryDigitPrimitives(t *testing.T) {
	for d := vigesimal.Digit(0); d < vigesimal.Base; d++ {
		l := Build(Group{Digits: vigesimal.Digits{d}})
		zeros, bars, dots := kinds(l.Primitives)
		if d == 0 {
			if zeros != 1 || bars != 0 || dots != 0 {
				t.Errorf("digit 0: zeros=%d bars=%d dots=%d, want 1/0/0", zeros, bars, dots)
			}
			continue
		}
		if zeros != 0 || bars != vigesimal.Bars(d) || dots != vigesimal.Dots(d) {
			t.Errorf("digit %d: zeros=%d bars=%d dots=%d", d, zeros, bars, dots)
		}
	}
}

func TestBuildZero(t *testing.T) {
	l := Build(number(0))
	if len(l.Primitives) != 1 {
		t.Fatalf("len(Primitives) = %d, want 1", len(l.Primitives))
	}
	p := l.Primitives[0]
	if p.Kind != KindZero {
		t.Errorf("Kind = %v, want zero", p.Kind)
	}
	if !approx(p.X, 50) || !approx(p.Y, 100-ZeroHeight/2) {
		t.Errorf("zero at (%v, %v)", p.X, p.Y)
	}
	if l.Width != DefaultGroupWidth || l.Height != DefaultCellHeight {
		t.Errorf("size = %vx%v", l.Width, l.Height)
	}
}

func TestBuildSeven(t *testing.T) {
	l := Build(number(7))
	zeros, bars, dots := kinds(l.Primitives)
	if zeros != 0 || bars != 1 || dots != 2 {
		t.Fatalf("zeros=%d bars=%d dots=%d, want 0/1/2", zeros, bars, dots)
	}

	want := []Primitive{
		{Kind: KindBar, X: 50, Y: 96},
		{Kind: KindDot, X: 44, Y: 86},
		{Kind: KindDot, X: 56, Y: 86},
	}
	for i, w := range want {
		p := l.Primitives[i]
		if p.Kind != w.Kind || !approx(p.X, w.X) || !approx(p.Y, w.Y) {
			t.Errorf("primitive %d = %v (%v, %v), want %v (%v, %v)", i, p.Kind, p.X, p.Y, w.Kind, w.X, w.Y)
		}
	}
}

func TestBuildStacking(t *testing.T) {
	l := Build(number(123))
	if len(l.Cells) != 2 {
		t.Fatalf("len(Cells) = %d, want 2", len(l.Cells))
	}

	top := l.PrimitivesAt(0, 0)
	if _, bars, dots := kinds(top); bars != 1 || dots != 1 {
		t.Errorf("top cell: bars=%d dots=%d, want 1/1", bars, dots)
	}
	bottom := l.PrimitivesAt(0, 1)
	if _, bars, dots := kinds(bottom); bars != 0 || dots != 3 {
		t.Errorf("bottom cell: bars=%d dots=%d, want 0/3", bars, dots)
	}

	for _, p := range top {
		if p.Y > 100 || p.Y < 0 {
			t.Errorf("top primitive outside first cell: y=%v", p.Y)
		}
	}
	wantX := []float64{38, 50, 62}
	for i, p := range bottom {
		if !approx(p.X, wantX[i]) || !approx(p.Y, 200-DotHeight/2) {
			t.Errorf("bottom dot %d at (%v, %v)", i, p.X, p.Y)
		}
	}

	if l.Cells[1].Exponent != 0 || l.Cells[0].Exponent != 1 {
		t.Errorf("exponents = %d, %d", l.Cells[0].Exponent, l.Cells[1].Exponent)
	}
}

func TestBuildInnerZeros(t *testing.T) {
	l := Build(number(400))
	if len(l.Cells) != 3 {
		t.Fatalf("len(Cells) = %d, want 3", len(l.Cells))
	}
	for i := 1; i < 3; i++ {
		ps := l.PrimitivesAt(0, i)
		if len(ps) != 1 || ps[0].Kind != KindZero {
			t.Errorf("cell %d = %+v, want single zero", i, ps)
			continue
		}
		wantY := float64(i+1)*DefaultCellHeight - ZeroHeight/2
		if !approx(ps[0].Y, wantY) {
			t.Errorf("cell %d zero y = %v, want %v", i, ps[0].Y, wantY)
		}
	}
	if l.Height != 300 {
		t.Errorf("Height = %v, want 300", l.Height)
	}
}

func TestBuildGroupsDate(t *testing.T) {
	l := BuildGroups([]Group{
		{Label: "Day", Digits: vigesimal.ToDigits(5)},
		{Label: "Month", Digits: vigesimal.ToDigits(1)},
		{Label: "Year", Digits: vigesimal.ToDigits(2025)},
	})

	if !approx(l.Width, 3*DefaultGroupWidth+2*DefaultSpacing) {
		t.Errorf("Width = %v, want 350", l.Width)
	}
	if !approx(l.Height, 3*DefaultCellHeight) {
		t.Errorf("Height = %v, want 300", l.Height)
	}

	wantCenters := []float64{50, 175, 300}
	for i, b := range l.Bands {
		if !approx(b.CenterX(), wantCenters[i]) {
			t.Errorf("band %d centre = %v, want %v", i, b.CenterX(), wantCenters[i])
		}
	}

	day := l.PrimitivesAt(0, 0)
	if _, bars, dots := kinds(day); bars != 1 || dots != 0 {
		t.Errorf("day: bars=%d dots=%d, want 1/0", bars, dots)
	}
	month := l.PrimitivesAt(1, 0)
	if _, bars, dots := kinds(month); bars != 0 || dots != 1 {
		t.Errorf("month: bars=%d dots=%d, want 0/1", bars, dots)
	}
	if !approx(month[0].X, 175) || !approx(month[0].Y, 100-DotHeight/2) {
		t.Errorf("month dot at (%v, %v)", month[0].X, month[0].Y)
	}

	year := []struct{ bars, dots int }{{1, 0}, {0, 1}, {1, 0}}
	for i, w := range year {
		ps := l.PrimitivesAt(2, i)
		if _, bars, dots := kinds(ps); bars != w.bars || dots != w.dots {
			t.Errorf("year cell %d: bars=%d dots=%d, want %d/%d", i, bars, dots, w.bars, w.dots)
		}
		for _, p := range ps {
			if !approx(p.X, 300) {
				t.Errorf("year primitive x = %v, want 300", p.X)
			}
		}
	}
}

func TestHeightScaleInvariant(t *testing.T) {
	for _, n := range []uint64{0, 19, 20, 8000, 987654} {
		for _, s := range []float64{0.5, 1, 2, 3} {
			l := Build(number(n), WithScale(s))
			want := float64(len(vigesimal.ToDigits(n))) * DefaultCellHeight
			if !approx(l.Height, want) {
				t.Errorf("n=%d scale=%v Height = %v, want %v", n, s, l.Height, want)
			}
		}
	}
}

func TestScaleAffectsGlyphsOnly(t *testing.T) {
	one := Build(number(19))
	two := Build(number(19), WithScale(2))

	if one.Width != two.Width || one.Height != two.Height {
		t.Errorf("canvas changed with scale: %vx%v vs %vx%v", one.Width, one.Height, two.Width, two.Height)
	}
	if len(one.Primitives) != len(two.Primitives) {
		t.Fatalf("primitive count changed with scale")
	}
	for i := range one.Primitives {
		a, b := one.Primitives[i], two.Primitives[i]
		if a.Kind != b.Kind {
			t.Errorf("primitive %d kind changed", i)
		}
		if !approx(b.Width(), 2*a.Width()) {
			t.Errorf("primitive %d width %v, want %v", i, b.Width(), 2*a.Width())
		}
		if !approx(100-b.Y, 2*(100-a.Y)) {
			t.Errorf("primitive %d offset from floor %v, want %v", i, 100-b.Y, 2*(100-a.Y))
		}
	}
}

func TestBottomAligned(t *testing.T) {
	for d := vigesimal.Digit(1); d < vigesimal.Base; d++ {
		l := Build(Group{Digits: vigesimal.Digits{d}})
		lowest := 0.0
		for _, p := range l.Primitives {
			lowest = max(lowest, p.Y)
		}
		c := ClusterOf(d)
		var want float64
		if c.Bars > 0 {
			want = 100 - BarHeight/2
		} else {
			want = 100 - DotHeight/2
		}
		if !approx(lowest, want) {
			t.Errorf("digit %d lowest centre = %v, want %v", d, lowest, want)
		}
	}
}

func TestDotsCentered(t *testing.T) {
	for dots := 1; dots <= 4; dots++ {
		l := Build(Group{Digits: vigesimal.Digits{vigesimal.Digit(dots)}}, WithGroupWidth(80))
		var sum float64
		for _, p := range l.Primitives {
			sum += p.X
		}
		if mean := sum / float64(dots); !approx(mean, 40) {
			t.Errorf("%d dots centred at %v, want 40", dots, mean)
		}
	}
}

func TestMetadata(t *testing.T) {
	l := Build(number(2025))
	var total uint64
	for _, c := range l.Cells {
		total += c.Contribution
		if c.Contribution != uint64(c.Value)*c.Multiplier {
			t.Errorf("cell %d contribution = %d", c.Index, c.Contribution)
		}
	}
	if total != 2025 {
		t.Errorf("sum of contributions = %d, want 2025", total)
	}
	for _, p := range l.Primitives {
		c := l.Cells[p.Digit.Index]
		if p.Digit != c.Digit {
			t.Errorf("primitive metadata %+v differs from cell %+v", p.Digit, c.Digit)
		}
	}
}

func TestOptions(t *testing.T) {
	l := BuildGroups([]Group{number(1), number(400)},
		WithCellHeight(50), WithGroupWidth(60), WithSpacing(10), WithScale(0.5))

	if l.Width != 130 || l.Height != 150 {
		t.Errorf("size = %vx%v, want 130x150", l.Width, l.Height)
	}
	if l.Bands[0].Height != 50 || l.Bands[1].Height != 150 {
		t.Errorf("band heights = %v, %v", l.Bands[0].Height, l.Bands[1].Height)
	}

	ignored := Build(number(1), WithScale(-1), WithCellHeight(0), WithGroupWidth(-5), WithSpacing(-1))
	if ignored.Scale != DefaultScale || ignored.CellHeight != DefaultCellHeight ||
		ignored.GroupWidth != DefaultGroupWidth || ignored.Spacing != DefaultSpacing {
		t.Errorf("invalid options were applied: %+v", ignored)
	}
}

func TestBuildGroupsEmpty(t *testing.T) {
	l := BuildGroups(nil)
	if l.Width != 0 || l.Height != 0 || len(l.Primitives) != 0 {
		t.Errorf("empty layout = %+v", l)
	}
}

func TestShellPoint(t *testing.T) {
	p := ShellPoint(ShellCenter, 10, 20, 3)
	if !approx(p.X, 10) || !approx(p.Y, 20) {
		t.Errorf("centre maps to (%v, %v)", p.X, p.Y)
	}
	q := ShellPoint(Point{ShellCenter.X + 1, ShellCenter.Y - 2}, 0, 0, 2)
	if !approx(q.X, 2) || !approx(q.Y, -4) {
		t.Errorf("offset maps to (%v, %v)", q.X, q.Y)
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{KindDot: "dot", KindBar: "bar", KindZero: "zero", Kind(9): "unknown"} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
