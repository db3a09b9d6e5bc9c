package plotstyle

import (
	"image/color"
	"strconv"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// -------------------------------------------------------------------------
// Markers

type MarkerShape int

const (
	SquareMarker MarkerShape = iota // filled square, the default
	CircleMarker
	TriangleMarker
	RingMarker
	CrossMarker
	PlusMarker
)

func String2MarkerShape(s string) MarkerShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return MarkerShape(n % (int(PlusMarker) + 1))
	}
	switch s {
	case "square":
		return SquareMarker
	case "circle":
		return CircleMarker
	case "triangle":
		return TriangleMarker
	case "ring":
		return RingMarker
	case "cross":
		return CrossMarker
	case "plus":
		return PlusMarker
	}
	return SquareMarker
}

// Glyph returns the drawer for the shape.
func (m MarkerShape) Glyph() draw.GlyphDrawer {
	switch m {
	case SquareMarker:
		return draw.BoxGlyph{}
	case CircleMarker:
		return draw.CircleGlyph{}
	case TriangleMarker:
		return draw.PyramidGlyph{}
	case RingMarker:
		return draw.RingGlyph{}
	case CrossMarker:
		return draw.CrossGlyph{}
	case PlusMarker:
		return draw.PlusGlyph{}
	}
	return draw.BoxGlyph{}
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	SolidLine LineType = iota
	DashedLine
	DottedLine
	DotDashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(DotDashLine) + 1))
	}
	switch s {
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	default:
		return SolidLine
	}
}

// Dashes returns the dash pattern of the line type, nil for solid.
// The dashed pattern uses the long postscript-style dashes of the
// original publication style.
func (lt LineType) Dashes() []vg.Length {
	switch lt {
	case DashedLine:
		return []vg.Length{vg.Points(9), vg.Points(9)}
	case DottedLine:
		return []vg.Length{vg.Points(1.5), vg.Points(3)}
	case DotDashLine:
		return []vg.Length{vg.Points(1.5), vg.Points(3), vg.Points(9), vg.Points(3)}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors
//
// Series colors follow the collaboration conventions: data black,
// model/MC blue, fit red (where a single series of each kind is
// shown).

var (
	DataColor  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ModelColor = color.RGBA{0x00, 0x00, 0xff, 0xff}
	FitColor   = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// White is the mandatory canvas and frame background.
var White = color.RGBA{0xff, 0xff, 0xff, 0xff}

// Transparent is used for the legend fill so figures behind the
// legend entries stay visible.
var Transparent = color.NRGBA{0xff, 0xff, 0xff, 0x00}
