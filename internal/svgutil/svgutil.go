// Package svgutil provides low-level SVG fragment builders.
//
// All geometry is expressed in SVG user units. Output is deterministic:
// numbers are rounded to two decimals and attributes are emitted in a
// fixed order, so identical inputs produce byte-identical fragments.
package svgutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// xmlEscaper escapes text for use in SVG element content and attributes.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Esc escapes a string for safe embedding in SVG markup.
func Esc(s string) string {
	return xmlEscaper.Replace(s)
}

// Num formats a coordinate rounded to two decimals with no trailing zeros.
func Num(v float64) string {
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// TextOpts configures a text block.
type TextOpts struct {
	X, Y       float64 // anchor; Y is the vertical center of the whole block
	Size       float64 // font size in user units
	Fill       string
	Anchor     string  // "start", "middle", "end" (default "middle")
	Bold       bool
	Italic     bool
	Opacity    float64 // 0 means fully opaque (attribute omitted)
	LineHeight float64 // default 1.25 * Size
}

// Text renders a possibly multi-line text block centered vertically on
// o.Y. Lines are split on "\n" and emitted as individual tspans.
func Text(content string, o TextOpts) string {
	lines := strings.Split(content, "\n")
	lineHeight := o.LineHeight
	if lineHeight == 0 {
		lineHeight = 1.25 * o.Size
	}
	anchor := o.Anchor
	if anchor == "" {
		anchor = "middle"
	}

	var b strings.Builder
	b.WriteString(`<text font-family="Helvetica, Arial, sans-serif" font-size="`)
	b.WriteString(Num(o.Size))
	b.WriteString(`" fill="`)
	b.WriteString(Esc(o.Fill))
	b.WriteString(`" text-anchor="`)
	b.WriteString(anchor)
	b.WriteString(`" dominant-baseline="middle"`)
	if o.Bold {
		b.WriteString(` font-weight="bold"`)
	}
	if o.Italic {
		b.WriteString(` font-style="italic"`)
	}
	if o.Opacity > 0 && o.Opacity < 1 {
		b.WriteString(` opacity="`)
		b.WriteString(Num(o.Opacity))
		b.WriteString(`"`)
	}
	b.WriteString(">")

	n := len(lines)
	for i, line := range lines {
		y := o.Y + (float64(i)-float64(n-1)/2)*lineHeight
		b.WriteString(`<tspan x="`)
		b.WriteString(Num(o.X))
		b.WriteString(`" y="`)
		b.WriteString(Num(y))
		b.WriteString(`">`)
		b.WriteString(Esc(line))
		b.WriteString(`</tspan>`)
	}

	b.WriteString("</text>")
	return b.String()
}

// TextExtent estimates the rendered width and height of a text block.
// Width is a heuristic (0.6 * size per character of the longest line),
// good enough for sizing label bubbles behind short captions.
func TextExtent(content string, size, lineHeight float64) (w, h float64) {
	if lineHeight == 0 {
		lineHeight = 1.25 * size
	}
	lines := strings.Split(content, "\n")
	maxLen := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	return float64(maxLen) * size * 0.6, float64(len(lines)) * lineHeight
}

// RectOpts configures a rectangle.
type RectOpts struct {
	X, Y, W, H  float64
	Rx          float64 // corner radius; 0 = square corners
	Fill        string
	FillOpacity float64 // 0 means fully opaque (attribute omitted)
	Stroke      string  // empty = no stroke
	StrokeWidth float64
	Dashed      bool
}

// Rect renders a rectangle.
func Rect(o RectOpts) string {
	var b strings.Builder
	b.WriteString(`<rect x="`)
	b.WriteString(Num(o.X))
	b.WriteString(`" y="`)
	b.WriteString(Num(o.Y))
	b.WriteString(`" width="`)
	b.WriteString(Num(o.W))
	b.WriteString(`" height="`)
	b.WriteString(Num(o.H))
	b.WriteString(`"`)
	if o.Rx > 0 {
		b.WriteString(` rx="`)
		b.WriteString(Num(o.Rx))
		b.WriteString(`"`)
	}
	b.WriteString(` fill="`)
	b.WriteString(Esc(o.Fill))
	b.WriteString(`"`)
	if o.FillOpacity > 0 && o.FillOpacity < 1 {
		b.WriteString(` fill-opacity="`)
		b.WriteString(Num(o.FillOpacity))
		b.WriteString(`"`)
	}
	if o.Stroke != "" {
		b.WriteString(` stroke="`)
		b.WriteString(Esc(o.Stroke))
		b.WriteString(`" stroke-width="`)
		b.WriteString(Num(o.StrokeWidth))
		b.WriteString(`"`)
		if o.Dashed {
			b.WriteString(` stroke-dasharray="7 5"`)
		}
	}
	b.WriteString(`/>`)
	return b.String()
}

// LineOpts configures a line segment.
type LineOpts struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
	StrokeWidth    float64
	Dashed         bool
	Opacity        float64 // 0 means fully opaque
}

// Line renders a line segment.
func Line(o LineOpts) string {
	var b strings.Builder
	b.WriteString(`<line x1="`)
	b.WriteString(Num(o.X1))
	b.WriteString(`" y1="`)
	b.WriteString(Num(o.Y1))
	b.WriteString(`" x2="`)
	b.WriteString(Num(o.X2))
	b.WriteString(`" y2="`)
	b.WriteString(Num(o.Y2))
	b.WriteString(`" stroke="`)
	b.WriteString(Esc(o.Stroke))
	b.WriteString(`" stroke-width="`)
	b.WriteString(Num(o.StrokeWidth))
	b.WriteString(`"`)
	if o.Dashed {
		b.WriteString(` stroke-dasharray="7 5"`)
	}
	if o.Opacity > 0 && o.Opacity < 1 {
		b.WriteString(` opacity="`)
		b.WriteString(Num(o.Opacity))
		b.WriteString(`"`)
	}
	b.WriteString(`/>`)
	return b.String()
}

// Polygon renders a filled polygon from (x, y) pairs.
func Polygon(points [][2]float64, fill string) string {
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = Num(p[0]) + "," + Num(p[1])
	}
	return fmt.Sprintf(`<polygon points="%s" fill="%s"/>`, strings.Join(coords, " "), Esc(fill))
}

// Circle renders a filled circle.
func Circle(cx, cy, r float64, fill string) string {
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`, Num(cx), Num(cy), Num(r), Esc(fill))
}
