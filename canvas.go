package archdeck

import (
	"fmt"
	"strings"

	"github.com/capnet-labs/archdeck/internal/svgutil"
)

// Page geometry. Pages are 11x8.5in landscape rendered at 100 SVG user
// units per inch. Drawing coordinates are normalized to [0,1] on both
// axes with the origin at the bottom-left corner of the page.
const (
	pageWidthUnits  = 1100.0
	pageHeightUnits = 850.0
)

// Reserved bands. The page frame owns the title bar at the top and the
// footer caption at the bottom; content must stay between them.
const (
	contentFloor = 0.012
	contentCeil  = 0.92
	headerHeight = 0.08 // title bar occupies [1-headerHeight, 1]
)

// footerCaption is the fixed branding line at the bottom of every page.
const footerCaption = "CapNet — The Capability Layer for AI Agents  |  capnet.dev"

// Fixed frame colors outside the semantic palette.
const (
	pageBackground = "#FAFAFA"
	subtitleColor  = "#B0BEC5"
	footerColor    = "#9E9E9E"
	boxStroke      = "#333333"
)

// Point is a position in normalized page coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned region in normalized page coordinates,
// anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// layer indexes the fixed z-order: backgrounds below boxes, boxes below
// arrows, arrows below foreground labels.
type layer int

const (
	layerBackground layer = iota
	layerShape
	layerArrow
	layerLabel
	layerCount
)

// drawOp records one draw call for introspection by tests.
type drawOp struct {
	kind    string // "zone", "box", "arrow", "note", "badge"
	rect    Rect   // extent in normalized coordinates
	labelAt Point  // arrow midpoint-label anchor, when present
	hasLbl  bool
}

// Canvas is the drawing surface for a single page. It accumulates SVG
// fragments in z-ordered layers and is discarded after the page is
// finalized; there is no cross-page reuse.
//
// Draw methods record the first failure and turn subsequent calls into
// no-ops, so composers issue their full sequence of placements and
// check Err once at the end.
type Canvas struct {
	palette  *Palette
	layers   [layerCount][]string
	ops      []drawOp
	title    string
	subtitle string
	framed   bool
	err      error
}

// NewCanvas creates an empty canvas bound to a style palette.
func NewCanvas(palette *Palette) *Canvas {
	return &Canvas{palette: palette}
}

// Err returns the first drawing failure, or nil.
func (c *Canvas) Err() error {
	return c.err
}

// fail records the first error. Later draw calls become no-ops.
func (c *Canvas) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// add appends an SVG fragment to a z-order layer.
func (c *Canvas) add(l layer, fragment string) {
	c.layers[l] = append(c.layers[l], fragment)
}

// record logs a draw call for test introspection.
func (c *Canvas) record(op drawOp) {
	c.ops = append(c.ops, op)
}

// SetupPage draws the page frame: a full-width title bar with the page
// title and optional subtitle, the fixed footer caption, and a light
// neutral page background. It returns the surface for page content;
// content draw calls are confined to the band between the header and
// footer. Calling SetupPage more than once on a canvas is an error.
func (c *Canvas) SetupPage(title, subtitle string) *Surface {
	s := &Surface{canvas: c}
	if c.err != nil {
		return s
	}
	if c.framed {
		c.fail(fmt.Errorf("%w: %q", ErrPageReframed, title))
		return s
	}

	headerStyle, err := c.palette.Resolve("header")
	if err != nil {
		c.fail(err)
		return s
	}

	c.framed = true
	c.title = title
	c.subtitle = subtitle

	// Page background.
	c.add(layerBackground, svgutil.Rect(svgutil.RectOpts{
		X: 0, Y: 0, W: pageWidthUnits, H: pageHeightUnits,
		Fill: pageBackground,
	}))

	// Title bar across the top.
	c.add(layerBackground, svgutil.Rect(svgutil.RectOpts{
		X: 0, Y: 0, W: pageWidthUnits, H: headerHeight * pageHeightUnits,
		Fill: headerStyle.Fill,
	}))
	c.add(layerLabel, svgutil.Text(title, svgutil.TextOpts{
		X: toX(0.5), Y: toY(0.96), Size: fontUnits(18),
		Fill: headerStyle.Text, Bold: true,
	}))
	if subtitle != "" {
		c.add(layerLabel, svgutil.Text(subtitle, svgutil.TextOpts{
			X: toX(0.5), Y: toY(0.925), Size: fontUnits(10),
			Fill: subtitleColor,
		}))
	}

	// Footer caption.
	c.add(layerLabel, svgutil.Text(footerCaption, svgutil.TextOpts{
		X: toX(0.5), Y: toY(0.006), Size: fontUnits(7),
		Fill: footerColor, Italic: true,
	}))

	return s
}

// Finalize validates the canvas and assembles its layers into an
// immutable Page. The canvas must not be drawn on afterwards.
func (c *Canvas) Finalize() (Page, error) {
	if c.err != nil {
		return Page{}, c.err
	}
	if !c.framed {
		return Page{}, ErrPageNotFramed
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s">`,
		svgutil.Num(pageWidthUnits), svgutil.Num(pageHeightUnits))
	for l := layer(0); l < layerCount; l++ {
		for _, fragment := range c.layers[l] {
			b.WriteString(fragment)
		}
	}
	b.WriteString("</svg>")

	return Page{Title: c.title, Subtitle: c.subtitle, SVG: b.String()}, nil
}

// checkRect validates that a region lies inside the content band.
func (c *Canvas) checkRect(kind string, r Rect) bool {
	if c.err != nil {
		return false
	}
	if r.W < 0 || r.H < 0 ||
		r.X < 0 || r.X+r.W > 1 ||
		r.Y < contentFloor || r.Y+r.H > contentCeil {
		c.fail(fmt.Errorf("%w: %s at (%.3f,%.3f) size (%.3f,%.3f)",
			ErrOutOfBounds, kind, r.X, r.Y, r.W, r.H))
		return false
	}
	return true
}

// checkPoint validates that a point lies inside the content band.
func (c *Canvas) checkPoint(kind string, p Point) bool {
	if c.err != nil {
		return false
	}
	if p.X < 0 || p.X > 1 || p.Y < contentFloor || p.Y > contentCeil {
		c.fail(fmt.Errorf("%w: %s at (%.3f,%.3f)", ErrOutOfBounds, kind, p.X, p.Y))
		return false
	}
	return true
}

// toX converts a normalized x coordinate to SVG user units.
func toX(x float64) float64 {
	return x * pageWidthUnits
}

// toY converts a normalized y coordinate (origin bottom-left) to SVG
// user units (origin top-left).
func toY(y float64) float64 {
	return (1 - y) * pageHeightUnits
}

// fontUnits converts a point size to SVG user units at 100 units/in.
func fontUnits(pt float64) float64 {
	return pt * 100.0 / 72.0
}
