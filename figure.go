package plotstyle

import (
	"errors"
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// ErrEmptyFigure reports an export of a figure that was never drawn
// on.
var ErrEmptyFigure = errors.New("empty figure")

// Figure is a plot canvas created through a StyleProfile. The
// embedded plot carries the profile's axis, legend and frame styling;
// Save exports it as a vector PDF with the profile margins.
type Figure struct {
	*plot.Plot

	profile *StyleProfile
	size    Size
	margins Margins

	artifacts int
}

// NewFigure creates a figure of the given aspect with the profile
// styling applied. The profile's axis style goes to both position
// axes through the one synchronized path; StyleAxis runs the same
// path for any additional axis such as a color scale.
func (s *StyleProfile) NewFigure(a Aspect, m Margins) *Figure {
	p := plot.New()
	size := a.Size()
	height := length(size.H)

	p.BackgroundColor = s.Frame.Background
	s.Axis.apply(&p.X, height)
	s.Axis.apply(&p.Y, height)

	p.Legend.TextStyle.Font.Size = vg.Length(s.Typography.LegendSize) * height
	p.Legend.Top = true

	// No auto-drawn title: the title slot stays empty unless the
	// profile explicitly allows titles.
	p.Title.Text = ""

	return &Figure{
		Plot:    p,
		profile: s,
		size:    size,
		margins: m,
	}
}

// SetTitle sets the figure title. Profiles suppress titles by
// default, in which case this is a no-op.
func (f *Figure) SetTitle(t string) {
	if !f.profile.ShowTitle {
		return
	}
	f.Title.Text = t
	f.Title.TextStyle.Font.Size = vg.Length(f.profile.Typography.TitleSize) * length(f.size.H)
}

// Add draws plotters on the figure.
func (f *Figure) Add(ps ...plot.Plotter) {
	f.artifacts += len(ps)
	f.Plot.Add(ps...)
}

// Watermark stamps the mandatory preliminary label. It does not count
// as a drawn artifact: a figure holding only its watermark is still
// empty.
func (f *Figure) Watermark(w *Watermark) {
	w.style(f.profile, length(f.size.H))
	f.Plot.Add(w)
}

// Len reports the number of drawn artifacts, the watermark excluded.
func (f *Figure) Len() int {
	return f.artifacts
}

// Window reports the figure's window size after correcting for the
// chrome the windowing environment adds around the canvas.
func (f *Figure) Window() Size {
	reported := Size{pixels(length(f.size.W)), pixels(length(f.size.H))}
	return WindowSize(f.size, reported)
}

// Save exports the figure as a vector PDF. Saving a figure without
// artifacts fails with ErrEmptyFigure; filesystem errors propagate
// from the os layer.
func (f *Figure) Save(path string) error {
	if f.artifacts == 0 {
		return fmt.Errorf("plotstyle: save %s: %w", path, ErrEmptyFigure)
	}

	w, h := length(f.size.W), length(f.size.H)
	c := vgpdf.New(w, h)
	dc := draw.New(c)
	dc = draw.Crop(dc,
		vg.Length(f.margins.Left)*w, -vg.Length(f.margins.Right)*w,
		vg.Length(f.margins.Bottom)*h, -vg.Length(f.margins.Top)*h)
	f.Plot.Draw(dc)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
