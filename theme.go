package plotstyle

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// FrameStyle covers the canvas and frame of a figure.
type FrameStyle struct {
	Background color.Color
	Border     bool
}

// LineDefaults covers line drawing: the default width and the dash
// pattern used for a secondary line series.
type LineDefaults struct {
	Width     vg.Length
	Secondary LineType
}

// Typography selects one font family for all text and the size of
// each text role. Sizes are fractions of the canvas height.
type Typography struct {
	Typeface font.Typeface
	Variant  font.Variant

	LabelSize      float64
	TitleSize      float64
	LegendSize     float64
	AnnotationSize float64
}

// Font returns the profile face at a fraction of the canvas height.
func (t Typography) Font(rel float64, height vg.Length) font.Font {
	return font.Font{
		Typeface: t.Typeface,
		Variant:  t.Variant,
		Size:     vg.Length(rel) * height,
	}
}

// LegendStyle covers the legend: no border, transparent fill, text in
// the profile face.
type LegendStyle struct {
	BorderSize vg.Length
	Fill       color.Color
}

// StyleProfile is a named bundle of visual defaults for collaboration
// figures. Construct one with NewProfile, install it with Apply, then
// create figures through NewFigure; figures and plotters created
// afterwards inherit the profile unless a property is overridden on
// the object itself.
type StyleProfile struct {
	Name        string
	Description string

	Frame      FrameStyle
	Line       LineDefaults
	Typography Typography
	Axis       AxisStyle
	Legend     LegendStyle
	Marker     MarkerShape
	MarkerSize vg.Length
	Palette    Palette

	// All false: no auto-drawn title, no statistics box, no
	// fit-parameter box.
	ShowTitle  bool
	ShowStats  bool
	ShowFitBox bool
}

// NewProfile constructs a profile with every attribute at its
// documented default.
func NewProfile(name, description string) *StyleProfile {
	return &StyleProfile{
		Name:        name,
		Description: description,
		Frame: FrameStyle{
			Background: White,
			Border:     false,
		},
		Line: LineDefaults{
			Width:     vg.Points(2),
			Secondary: DashedLine,
		},
		Typography: Typography{
			Typeface:       "Liberation",
			Variant:        "Serif",
			LabelSize:      0.05,
			TitleSize:      0.06,
			LegendSize:     0.04,
			AnnotationSize: 0.06,
		},
		Axis: AxisStyle{
			LabelOffset: 0.01,
			TickLength:  0.015,
			TitleOffset: 0.8,
			LabelSize:   0.05,
			TitleSize:   0.06,
			TitleColor:  color.Black,
		},
		Legend: LegendStyle{
			BorderSize: 0,
			Fill:       Transparent,
		},
		Marker:     SquareMarker,
		MarkerSize: vg.Points(3),
		Palette:    PaletteInvertedBlackBody,
	}
}

// SecondaryLineStyle returns the dashed line style for a second line
// series on the same figure. Figures comparing several models or fits
// differentiate them by line style, not only by color.
func (s *StyleProfile) SecondaryLineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color:  color.Black,
		Width:  s.Line.Width,
		Dashes: s.Line.Secondary.Dashes(),
	}
}

// Apply installs the profile into the toolkit's global default slots,
// the ones consulted when a plot object is created. It must run
// before any plot object is constructed; objects made earlier keep
// the built-in defaults. Applying twice is a no-op. Apply mutates
// process-wide state and must not race with plot creation.
func (s *StyleProfile) Apply() error {
	if _, err := s.Palette.Resolve(); err != nil {
		return err
	}

	face := font.Font{Typeface: s.Typography.Typeface, Variant: s.Typography.Variant}
	plot.DefaultFont = face
	plotter.DefaultFont = face

	plotter.DefaultLineStyle.Width = s.Line.Width
	plotter.DefaultGlyphStyle.Shape = s.Marker.Glyph()
	plotter.DefaultGlyphStyle.Radius = s.MarkerSize

	return nil
}
