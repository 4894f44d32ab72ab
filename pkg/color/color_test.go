package color

import (
	imgcolor "image/color"
	"testing"

	"github.com/matzehuels/mayanum/pkg/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RGBA
		wantErr bool
	}{
		{"named white", "white", White, false},
		{"named upper", "BLACK", Black, false},
		{"transparent", "transparent", Transparent, false},
		{"short hex", "#fff", White, false},
		{"long hex", "#111827", RGBA{0x11, 0x18, 0x27, 1}, false},
		{"no hash", "f9fafb", RGBA{0xf9, 0xfa, 0xfb, 1}, false},
		{"hex alpha", "#00000080", RGBA{0, 0, 0, 0.502}, false},
		{"rgb", "rgb(10, 20, 30)", RGBA{10, 20, 30, 1}, false},
		{"rgba", "rgba(255,0,0,0.5)", RGBA{255, 0, 0, 0.5}, false},

		{"empty", "", RGBA{}, true},
		{"bad hex", "#ggg", RGBA{}, true},
		{"bad length", "#12345", RGBA{}, true},
		{"channel range", "rgb(256, 0, 0)", RGBA{}, true},
		{"alpha range", "rgba(0, 0, 0, 2)", RGBA{}, true},
		{"missing paren", "rgb(1,2,3", RGBA{}, true},
		{"too few", "rgb(1,2)", RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidColor)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCSS(t *testing.T) {
	tests := []struct {
		c    RGBA
		want string
	}{
		{White, "rgba(255, 255, 255, 1)"},
		{RGBA{1, 2, 3, 0.25}, "rgba(1, 2, 3, 0.25)"},
		{Transparent, "rgba(0, 0, 0, 0)"},
	}
	for _, tt := range tests {
		if got := tt.c.CSS(); got != tt.want {
			t.Errorf("CSS() = %q, want %q", got, tt.want)
		}
	}
}

func TestHexAndString(t *testing.T) {
	c := RGBA{0x11, 0x18, 0x27, 1}
	if c.Hex() != "#111827" || c.String() != "#111827" {
		t.Errorf("Hex() = %q String() = %q", c.Hex(), c.String())
	}
	half := RGBA{0, 0, 0, 0.5}
	if half.String() != "rgba(0, 0, 0, 0.5)" {
		t.Errorf("String() = %q", half.String())
	}
}

func TestNRGBA(t *testing.T) {
	if got := (RGBA{10, 20, 30, 1}).NRGBA(); got != (imgcolor.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("NRGBA() = %+v", got)
	}
	if got := Transparent.NRGBA(); got.A != 0 {
		t.Errorf("transparent alpha = %d", got.A)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, c := range []RGBA{White, Black, {0x11, 0x18, 0x27, 1}, {1, 2, 3, 0.25}} {
		b, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		var got RGBA
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", b, err)
		}
		if got != c {
			t.Errorf("round trip %+v -> %q -> %+v", c, b, got)
		}
	}
}

func TestThemeByName(t *testing.T) {
	for name, want := range map[string]Theme{"": Light, "light": Light, "Dark": Dark} {
		got, err := ThemeByName(name)
		if err != nil || got != want {
			t.Errorf("ThemeByName(%q) = %+v, %v", name, got, err)
		}
	}
	if _, err := ThemeByName("sepia"); err == nil {
		t.Error("ThemeByName(sepia) expected error")
	}

	p := Dark.Paint(true)
	if !p.Grid || p.Background != Dark.Background || p.Glyph != Dark.Glyph {
		t.Errorf("Dark.Paint(true) = %+v", p)
	}
	if DefaultPaint() != Light.Paint(false) {
		t.Error("DefaultPaint() differs from light theme")
	}
}
