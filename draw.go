package archdeck

import (
	"math"

	"github.com/capnet-labs/archdeck/internal/svgutil"
)

// CornerStyle selects box corner rendering.
type CornerStyle int

const (
	CornerRounded CornerStyle = iota
	CornerSquare
)

// HeadStyle selects arrow termination.
type HeadStyle int

const (
	HeadFilled HeadStyle = iota // solid arrowhead at the end point
	HeadNone                    // plain line (lifelines, connectors)
)

// Align selects horizontal text alignment relative to the anchor.
type Align int

const (
	AlignCenter Align = iota
	AlignLeft
	AlignRight
)

// Default font sizes in points.
const (
	defaultBoxFont      = 11.0
	defaultSublabelFont = 8.0
	defaultNoteFont     = 9.0
	arrowLabelFont      = 8.0
	badgeFont           = 8.0
)

// boxCornerRadius is the corner radius for rounded boxes, in user units.
const boxCornerRadius = 10.0

// ZoneSpec describes a background grouping region (e.g. a trust
// boundary) with a tinted fill, dashed border, and corner label.
type ZoneSpec struct {
	Rect    Rect
	Label   string // small caps label drawn inside the zone
	LabelAt Point
	Token   string // zone tint; Fill is the region, Text the label color
	Stroke  string // dashed border color
}

// BoxSpec describes a labeled rounded box.
//
// Exactly one of Token or Fill selects the box color: Token resolves
// fill and text colors through the palette; Fill is an explicit color
// with TextColor (default white) for the label.
type BoxSpec struct {
	Rect         Rect
	Label        string
	Sublabel     string // second line, smaller and italic
	Token        string
	Fill         string
	TextColor    string
	FontSize     float64 // points; default 11
	SublabelSize float64 // points; default 8
	Corner       CornerStyle
	FillOpacity  float64 // 0 means fully opaque
	Stroke       string  // border color; default "#333333"
	StrokeWidth  float64 // border width; default 1.5
}

// ArrowSpec describes a directional arrow with an optional midpoint
// label. The label, when present, is rendered in a small rounded
// bubble at the segment midpoint plus LabelOffset so it stays legible
// over crossing lines.
type ArrowSpec struct {
	From, To    Point
	Token       string  // color via palette fill, or
	Color       string  // explicit color (default "#333333")
	Width       float64 // stroke width in user units; default 2
	Dashed      bool
	Head        HeadStyle
	Opacity     float64 // 0 means fully opaque (lifelines use 0.3)
	Label       string
	LabelOffset Point
}

// NoteSpec describes free-standing annotation text, optionally set on
// a rounded background bubble.
type NoteSpec struct {
	At       Point
	Text     string
	Token    string  // text colored with the token's fill (actor hue), or
	Color    string  // explicit text color (default "#212121")
	FontSize float64 // points; default 9
	Bold     bool
	Italic   bool
	Align    Align
	Bubble   *Bubble
}

// Bubble is a rounded background behind a note or arrow label.
type Bubble struct {
	Fill   string
	Stroke string
}

// BadgeSpec describes a small filled disc with a short label, used for
// step numbers.
type BadgeSpec struct {
	At     Point
	Text   string
	Token  string
	Radius float64 // normalized; default 0.015
}

// Surface is the drawable content area of a page, scoped between the
// reserved header and footer bands. All coordinates are normalized to
// [0,1] with the origin at the bottom-left of the page; geometry
// escaping the content area fails the page.
type Surface struct {
	canvas *Canvas
}

// Err returns the first drawing failure on the underlying canvas.
func (s *Surface) Err() error {
	return s.canvas.Err()
}

// Zone draws a background grouping region. Zones render below every
// box and arrow regardless of call order.
func (s *Surface) Zone(spec ZoneSpec) {
	c := s.canvas
	if !c.checkRect("zone", spec.Rect) || !c.checkPoint("zone label", spec.LabelAt) {
		return
	}
	style, err := c.palette.Resolve(spec.Token)
	if err != nil {
		c.fail(err)
		return
	}

	c.add(layerBackground, svgutil.Rect(svgutil.RectOpts{
		X: toX(spec.Rect.X), Y: toY(spec.Rect.Y + spec.Rect.H),
		W: spec.Rect.W * pageWidthUnits, H: spec.Rect.H * pageHeightUnits,
		Rx:   boxCornerRadius,
		Fill: style.Fill, FillOpacity: 0.5,
		Stroke: spec.Stroke, StrokeWidth: 2.5, Dashed: true,
	}))
	c.add(layerBackground, svgutil.Text(spec.Label, svgutil.TextOpts{
		X: toX(spec.LabelAt.X), Y: toY(spec.LabelAt.Y),
		Size: fontUnits(10), Fill: style.Text, Bold: true, Anchor: "start",
	}))
	c.record(drawOp{kind: "zone", rect: spec.Rect})
}

// Box draws a rounded rectangle with a centered primary label and an
// optional smaller italic sublabel beneath it.
func (s *Surface) Box(spec BoxSpec) {
	c := s.canvas
	if !c.checkRect("box", spec.Rect) {
		return
	}
	fill, text := spec.Fill, spec.TextColor
	if spec.Token != "" {
		style, err := c.palette.Resolve(spec.Token)
		if err != nil {
			c.fail(err)
			return
		}
		fill, text = style.Fill, style.Text
	}
	if text == "" {
		text = "#FFFFFF"
	}

	radius := boxCornerRadius
	if spec.Corner == CornerSquare {
		radius = 0
	}
	stroke := spec.Stroke
	if stroke == "" {
		stroke = boxStroke
	}
	strokeWidth := spec.StrokeWidth
	if strokeWidth == 0 {
		strokeWidth = 1.5
	}
	c.add(layerShape, svgutil.Rect(svgutil.RectOpts{
		X: toX(spec.Rect.X), Y: toY(spec.Rect.Y + spec.Rect.H),
		W: spec.Rect.W * pageWidthUnits, H: spec.Rect.H * pageHeightUnits,
		Rx:   radius,
		Fill: fill, FillOpacity: spec.FillOpacity,
		Stroke: stroke, StrokeWidth: strokeWidth,
	}))

	fontSize := spec.FontSize
	if fontSize == 0 {
		fontSize = defaultBoxFont
	}
	cx := spec.Rect.X + spec.Rect.W/2

	if spec.Label != "" {
		labelY := spec.Rect.Y + spec.Rect.H/2
		if spec.Sublabel != "" {
			labelY = spec.Rect.Y + spec.Rect.H*0.62
		}
		c.add(layerLabel, svgutil.Text(spec.Label, svgutil.TextOpts{
			X: toX(cx), Y: toY(labelY), Size: fontUnits(fontSize),
			Fill: text, Bold: true,
		}))
	}
	if spec.Sublabel != "" {
		subSize := spec.SublabelSize
		if subSize == 0 {
			subSize = defaultSublabelFont
		}
		c.add(layerLabel, svgutil.Text(spec.Sublabel, svgutil.TextOpts{
			X: toX(cx), Y: toY(spec.Rect.Y + spec.Rect.H*0.30),
			Size: fontUnits(subSize), Fill: text, Italic: true, Opacity: 0.9,
		}))
	}
	c.record(drawOp{kind: "box", rect: spec.Rect})
}

// Arrow draws a directional line from From to To with an arrowhead at
// To (unless Head is HeadNone) and an optional midpoint label bubble.
func (s *Surface) Arrow(spec ArrowSpec) {
	c := s.canvas
	if !c.checkPoint("arrow start", spec.From) || !c.checkPoint("arrow end", spec.To) {
		return
	}
	color := spec.Color
	if spec.Token != "" {
		style, err := c.palette.Resolve(spec.Token)
		if err != nil {
			c.fail(err)
			return
		}
		color = style.Fill
	}
	if color == "" {
		color = "#333333"
	}
	width := spec.Width
	if width == 0 {
		width = 2
	}

	x1, y1 := toX(spec.From.X), toY(spec.From.Y)
	x2, y2 := toX(spec.To.X), toY(spec.To.Y)

	endX, endY := x2, y2
	if spec.Head == HeadFilled {
		// Shorten the shaft so it does not poke through the head.
		const headLen, headHalf = 11.0, 4.5
		dx, dy := x2-x1, y2-y1
		dist := math.Hypot(dx, dy)
		if dist > 0 {
			ux, uy := dx/dist, dy/dist
			baseX, baseY := x2-headLen*ux, y2-headLen*uy
			endX, endY = baseX, baseY
			c.add(layerArrow, svgutil.Polygon([][2]float64{
				{x2, y2},
				{baseX + headHalf*uy, baseY - headHalf*ux},
				{baseX - headHalf*uy, baseY + headHalf*ux},
			}, color))
		}
	}
	c.add(layerArrow, svgutil.Line(svgutil.LineOpts{
		X1: x1, Y1: y1, X2: endX, Y2: endY,
		Stroke: color, StrokeWidth: width,
		Dashed: spec.Dashed, Opacity: spec.Opacity,
	}))

	op := drawOp{kind: "arrow", rect: rectFromSegment(spec.From, spec.To)}
	if spec.Label != "" {
		anchor := Point{
			X: (spec.From.X+spec.To.X)/2 + spec.LabelOffset.X,
			Y: (spec.From.Y+spec.To.Y)/2 + spec.LabelOffset.Y,
		}
		if !c.checkPoint("arrow label", anchor) {
			return
		}
		s.labelBubble(anchor, spec.Label, color, Bubble{Fill: "#FFFFFF", Stroke: color})
		op.labelAt = anchor
		op.hasLbl = true
	}
	c.record(op)
}

// Note draws annotation text, optionally on a rounded bubble.
func (s *Surface) Note(spec NoteSpec) {
	c := s.canvas
	if !c.checkPoint("note", spec.At) {
		return
	}
	color := spec.Color
	if spec.Token != "" {
		style, err := c.palette.Resolve(spec.Token)
		if err != nil {
			c.fail(err)
			return
		}
		color = style.Fill
	}
	if color == "" {
		color = "#212121"
	}
	fontSize := spec.FontSize
	if fontSize == 0 {
		fontSize = defaultNoteFont
	}

	anchor := "middle"
	switch spec.Align {
	case AlignLeft:
		anchor = "start"
	case AlignRight:
		anchor = "end"
	}

	if spec.Bubble != nil {
		s.bubbleRect(spec.At, spec.Text, fontUnits(fontSize), spec.Align, *spec.Bubble)
	}
	c.add(layerLabel, svgutil.Text(spec.Text, svgutil.TextOpts{
		X: toX(spec.At.X), Y: toY(spec.At.Y), Size: fontUnits(fontSize),
		Fill: color, Bold: spec.Bold, Italic: spec.Italic, Anchor: anchor,
	}))
	c.record(drawOp{kind: "note", rect: Rect{X: spec.At.X, Y: spec.At.Y}})
}

// Badge draws a small filled disc with a single short label, used for
// numbered steps.
func (s *Surface) Badge(spec BadgeSpec) {
	c := s.canvas
	radius := spec.Radius
	if radius == 0 {
		radius = 0.015
	}
	extent := Rect{X: spec.At.X - radius, Y: spec.At.Y - radius, W: 2 * radius, H: 2 * radius}
	if !c.checkRect("badge", extent) {
		return
	}
	style, err := c.palette.Resolve(spec.Token)
	if err != nil {
		c.fail(err)
		return
	}

	c.add(layerLabel, svgutil.Circle(toX(spec.At.X), toY(spec.At.Y), radius*pageHeightUnits, style.Fill))
	c.add(layerLabel, svgutil.Text(spec.Text, svgutil.TextOpts{
		X: toX(spec.At.X), Y: toY(spec.At.Y), Size: fontUnits(badgeFont),
		Fill: style.Text, Bold: true,
	}))
	c.record(drawOp{kind: "badge", rect: extent})
}

// labelBubble renders bold bubble text for arrow midpoint labels.
func (s *Surface) labelBubble(at Point, text, color string, bubble Bubble) {
	s.bubbleRect(at, text, fontUnits(arrowLabelFont), AlignCenter, bubble)
	s.canvas.add(layerLabel, svgutil.Text(text, svgutil.TextOpts{
		X: toX(at.X), Y: toY(at.Y), Size: fontUnits(arrowLabelFont),
		Fill: color, Bold: true,
	}))
}

// bubbleRect draws the rounded background behind bubble text.
func (s *Surface) bubbleRect(at Point, text string, sizeUnits float64, align Align, bubble Bubble) {
	const padX, padY = 8.0, 5.0
	w, h := svgutil.TextExtent(text, sizeUnits, 0)
	x := toX(at.X) - w/2 - padX
	switch align {
	case AlignLeft:
		x = toX(at.X) - padX
	case AlignRight:
		x = toX(at.X) - w - padX
	}
	s.canvas.add(layerLabel, svgutil.Rect(svgutil.RectOpts{
		X: x, Y: toY(at.Y) - h/2 - padY,
		W: w + 2*padX, H: h + 2*padY,
		Rx:   6,
		Fill: bubble.Fill, FillOpacity: 0.95,
		Stroke: bubble.Stroke, StrokeWidth: 1,
	}))
}

// rectFromSegment returns the bounding extent of a segment.
func rectFromSegment(a, b Point) Rect {
	x, y := a.X, a.Y
	if b.X < x {
		x = b.X
	}
	if b.Y < y {
		y = b.Y
	}
	return Rect{X: x, Y: y, W: abs(a.X - b.X), H: abs(a.Y - b.Y)}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
