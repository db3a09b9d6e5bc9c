package plotstyle

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PreliminaryText is the mandatory label embedded on every figure
// that shows unapproved data.
const PreliminaryText = "Preliminary"

// Watermark draws a fixed text label at a position in normalized
// device coordinates, so placement is independent of the canvas size.
// The text is right-aligned and vertically centered on the position.
type Watermark struct {
	Text string
	X, Y float64 // in [0,1], fractions of the canvas

	TextStyle text.Style
}

// NewWatermark returns the preliminary label at the given normalized
// position. Figure.Watermark fills in the profile typography.
func NewWatermark(x, y float64) *Watermark {
	return &Watermark{Text: PreliminaryText, X: x, Y: y}
}

// style resolves the annotation text style against a profile and a
// canvas height.
func (w *Watermark) style(s *StyleProfile, height vg.Length) {
	w.TextStyle.Font = s.Typography.Font(s.Typography.AnnotationSize, height)
	w.TextStyle.Color = color.Black
	w.TextStyle.XAlign = text.XRight
	w.TextStyle.YAlign = text.YCenter
}

// Plot implements plot.Plotter.
func (w *Watermark) Plot(c draw.Canvas, plt *plot.Plot) {
	sty := w.TextStyle
	if sty.Handler == nil {
		sty.Handler = plt.TextHandler
	}
	pt := vg.Point{
		X: c.Min.X + vg.Length(w.X)*(c.Max.X-c.Min.X),
		Y: c.Min.Y + vg.Length(w.Y)*(c.Max.Y-c.Min.Y),
	}
	c.FillText(sty, pt, w.Text)
}
