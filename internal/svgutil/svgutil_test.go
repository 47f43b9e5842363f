package svgutil_test

// Notes:
// - Esc: XML special character escaping
// - Num: two-decimal rounding, no trailing zeros, float noise removal
// - Text: tspan-per-line emission, vertical centering, attribute toggles
// - Rect/Line/Polygon/Circle: attribute emission and determinism

import (
	"strings"
	"testing"

	"github.com/capnet-labs/archdeck/internal/svgutil"
)

// ---------------------------------------------------------------------------
// TestEsc - XML escaping
// ---------------------------------------------------------------------------

func TestEsc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text", input: "PROXY", want: "PROXY"},
		{name: "ampersand", input: "A & B", want: "A &amp; B"},
		{name: "angle brackets", input: "a<b>c", want: "a&lt;b&gt;c"},
		{name: "quotes", input: `say "hi"`, want: "say &quot;hi&quot;"},
		{name: "apostrophe", input: "it's", want: "it&#39;s"},
		{name: "unicode arrows preserved", input: "→ ✓ ✗", want: "→ ✓ ✗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := svgutil.Esc(tt.input); got != tt.want {
				t.Errorf("Esc(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNum - Deterministic number formatting
// ---------------------------------------------------------------------------

func TestNum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "integer", input: 850, want: "850"},
		{name: "no trailing zeros", input: 1.50, want: "1.5"},
		{name: "rounds to two decimals", input: 0.12345, want: "0.12"},
		{name: "float noise removed", input: 363.00000000000006, want: "363"},
		{name: "negative", input: -4.256, want: "-4.26"},
		{name: "zero", input: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := svgutil.Num(tt.input); got != tt.want {
				t.Errorf("Num(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestText - Multi-line text blocks
// ---------------------------------------------------------------------------

func TestText(t *testing.T) {
	t.Parallel()

	t.Run("single line centered on anchor", func(t *testing.T) {
		t.Parallel()

		got := svgutil.Text("USER", svgutil.TextOpts{X: 100, Y: 50, Size: 12, Fill: "#FFFFFF"})
		if !strings.Contains(got, `<tspan x="100" y="50">USER</tspan>`) {
			t.Errorf("single line not anchored at Y: %s", got)
		}
		if !strings.Contains(got, `text-anchor="middle"`) {
			t.Errorf("default anchor missing: %s", got)
		}
	})

	t.Run("three lines symmetric around anchor", func(t *testing.T) {
		t.Parallel()

		got := svgutil.Text("a\nb\nc", svgutil.TextOpts{X: 0, Y: 100, Size: 10, Fill: "#000000"})
		// line height 12.5: lines at 87.5, 100, 112.5
		for _, want := range []string{`y="87.5"`, `y="100"`, `y="112.5"`} {
			if !strings.Contains(got, want) {
				t.Errorf("missing %s in %s", want, got)
			}
		}
	})

	t.Run("bold and italic toggles", func(t *testing.T) {
		t.Parallel()

		got := svgutil.Text("x", svgutil.TextOpts{Size: 10, Fill: "#000", Bold: true, Italic: true})
		if !strings.Contains(got, `font-weight="bold"`) || !strings.Contains(got, `font-style="italic"`) {
			t.Errorf("missing weight/style attributes: %s", got)
		}
	})

	t.Run("content escaped", func(t *testing.T) {
		t.Parallel()

		got := svgutil.Text("a<b", svgutil.TextOpts{Size: 10, Fill: "#000"})
		if strings.Contains(got, "a<b") {
			t.Errorf("unescaped content: %s", got)
		}
	})
}

// ---------------------------------------------------------------------------
// TestTextExtent - Bubble sizing heuristic
// ---------------------------------------------------------------------------

func TestTextExtent(t *testing.T) {
	t.Parallel()

	w, h := svgutil.TextExtent("PASS", 10, 0)
	if w != 24 { // 4 chars * 10 * 0.6
		t.Errorf("width = %v, want 24", w)
	}
	if h != 12.5 { // 1 line * 1.25 * 10
		t.Errorf("height = %v, want 12.5", h)
	}

	_, h2 := svgutil.TextExtent("a\nb", 10, 0)
	if h2 != 25 {
		t.Errorf("two-line height = %v, want 25", h2)
	}
}

// ---------------------------------------------------------------------------
// TestShapes - Rect, Line, Polygon, Circle
// ---------------------------------------------------------------------------

func TestShapes(t *testing.T) {
	t.Parallel()

	t.Run("rounded rect with dashed stroke", func(t *testing.T) {
		t.Parallel()

		got := svgutil.Rect(svgutil.RectOpts{
			X: 1, Y: 2, W: 3, H: 4, Rx: 8,
			Fill: "#E8F5E9", FillOpacity: 0.5,
			Stroke: "#4CAF50", StrokeWidth: 2.5, Dashed: true,
		})
		for _, want := range []string{`rx="8"`, `fill-opacity="0.5"`, `stroke-dasharray="7 5"`, `stroke="#4CAF50"`} {
			if !strings.Contains(got, want) {
				t.Errorf("missing %s in %s", want, got)
			}
		}
	})

	t.Run("square rect omits rx", func(t *testing.T) {
		t.Parallel()

		got := svgutil.Rect(svgutil.RectOpts{W: 10, H: 10, Fill: "#FFF"})
		if strings.Contains(got, "rx=") {
			t.Errorf("unexpected rx attribute: %s", got)
		}
	})

	t.Run("line with opacity", func(t *testing.T) {
		t.Parallel()

		got := svgutil.Line(svgutil.LineOpts{X1: 0, Y1: 0, X2: 5, Y2: 5, Stroke: "#333", StrokeWidth: 2, Opacity: 0.3})
		if !strings.Contains(got, `opacity="0.3"`) {
			t.Errorf("missing opacity: %s", got)
		}
	})

	t.Run("polygon points joined", func(t *testing.T) {
		t.Parallel()

		got := svgutil.Polygon([][2]float64{{0, 0}, {10, 0}, {5, 8}}, "#C62828")
		if !strings.Contains(got, `points="0,0 10,0 5,8"`) {
			t.Errorf("bad points: %s", got)
		}
	})

	t.Run("circle", func(t *testing.T) {
		t.Parallel()

		got := svgutil.Circle(33, 44, 12.75, "#1A237E")
		if got != `<circle cx="33" cy="44" r="12.75" fill="#1A237E"/>` {
			t.Errorf("unexpected output: %s", got)
		}
	})
}
