package plotstyle

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// AxisStyle holds every per-axis attribute of the profile. One value
// is applied to x, y and z alike, so the three axes cannot drift
// apart. All lengths are fractions of the canvas height, the way the
// original publication style measures text.
type AxisStyle struct {
	LabelOffset float64 // axis line to tick labels
	TickLength  float64
	TitleOffset float64 // title padding, as a multiple of the title size
	LabelSize   float64
	TitleSize   float64
	TitleColor  color.Color
}

// StyleAxis applies the profile's axis style to an additional axis,
// such as the color scale of a density figure. It is the same
// synchronized path NewFigure runs for x and y, so styled axes cannot
// differ.
func (s *StyleProfile) StyleAxis(ax *plot.Axis, a Aspect) {
	s.Axis.apply(ax, length(a.Size().H))
}

// apply styles one toolkit axis. height is the canvas height used to
// resolve the relative fractions. Every axis of a figure goes through
// this one function; there is no per-axis styling path.
func (a AxisStyle) apply(ax *plot.Axis, height vg.Length) {
	ax.Padding = vg.Length(a.LabelOffset) * height
	ax.Tick.Length = vg.Length(a.TickLength) * height
	ax.Tick.Label.Font.Size = vg.Length(a.LabelSize) * height
	ax.Label.Padding = vg.Length(a.TitleOffset*a.TitleSize) * height
	ax.Label.TextStyle.Font.Size = vg.Length(a.TitleSize) * height
	ax.Label.TextStyle.Color = a.TitleColor
}
