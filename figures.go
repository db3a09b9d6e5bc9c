package plotstyle

import (
	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Sample counts for the reference figures.
const (
	samples1D = 100
	samples2D = 2500
)

// ReferenceFigure1D builds the canonical 1D figure: a red Gaussian
// fit curve, a blue MC histogram filled from the same distribution
// and scaled down, black data points with error bars and square
// markers, a borderless 3-entry legend and the preliminary watermark.
func ReferenceFigure1D(s *StyleProfile, seed uint64) (*Figure, error) {
	fig := s.NewFigure(Aspect4to3, Margins1D())
	fig.X.Label.Text = "β₁₄"
	fig.Y.Label.Text = "R³ / Rₐᵥ³"
	fig.X.Min, fig.X.Max = 0, 1
	fig.Y.Min, fig.Y.Max = 0, 1.05

	dist := distuv.Normal{Mu: 0, Sigma: 0.5, Src: rand.NewSource(seed)}

	// Unit-amplitude Gaussian, as a fit of the data would return it.
	fit := plotter.NewFunction(func(x float64) float64 {
		return dist.Prob(x) / dist.Prob(dist.Mu)
	})
	fit.Color = FitColor

	// MC histogram: random fill from the fit shape, restricted to the
	// histogram range, then scaled below the data.
	h := hbook.NewH1D(10, 0, 1)
	for n := 0; n < samples1D; {
		x := dist.Rand()
		if x < 0 || x >= 1 {
			continue
		}
		h.Fill(x, 1)
		n++
	}
	h.Scale(0.05)
	hh := hplot.NewH1D(h)
	hh.LineStyle.Color = ModelColor
	hh.LineStyle.Width = s.Line.Width

	// Data points with error bars.
	xy := plotter.XYs{
		{X: 0.1, Y: 0.6}, {X: 0.4, Y: 0.5}, {X: 0.6, Y: 0.4}, {X: 0.8, Y: 0.3},
	}
	yerr := make(plotter.YErrors, len(xy))
	for i := range yerr {
		yerr[i].Low, yerr[i].High = 0.05, 0.05
	}
	points := struct {
		plotter.XYs
		plotter.YErrors
	}{xy, yerr}

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  DataColor,
		Radius: s.MarkerSize,
		Shape:  s.Marker.Glyph(),
	}
	bars, err := plotter.NewYErrorBars(points)
	if err != nil {
		return nil, err
	}
	bars.LineStyle.Color = DataColor

	fig.Add(fit, hh, scatter, bars)

	fig.Legend.Add("Gaussian fit", fit)
	fig.Legend.Add("MC histogram", hh)
	fig.Legend.Add("Data", scatter)

	fig.Watermark(NewWatermark(0.88, 0.65))
	return fig, nil
}

// ReferenceFigure2D builds the canonical 2D figure: a density map of
// samples distributed as x²+y², drawn with the profile palette, plus
// the watermark. Title and statistics boxes stay suppressed.
func ReferenceFigure2D(s *StyleProfile, seed uint64) (*Figure, error) {
	fig := s.NewFigure(Aspect4to3, Margins2D())
	fig.X.Label.Text = "X² (mm)"
	fig.Y.Label.Text = "Y² (mm)"

	h2 := hbook.NewH2D(40, -4, 4, 40, -20, 20)
	rnd := rand.New(rand.NewSource(seed))
	for n := 0; n < samples2D; {
		x := -4 + 8*rnd.Float64()
		y := -4 + 8*rnd.Float64()
		// Accept proportional to x²+y², max 32 on the sampled square.
		if rnd.Float64()*32 > x*x+y*y {
			continue
		}
		h2.Fill(x, y, 1)
		n++
	}

	pal, err := s.Palette.Resolve()
	if err != nil {
		return nil, err
	}
	fig.Add(hplot.NewH2D(h2, pal))

	fig.Watermark(NewWatermark(0.78, 0.5))
	return fig, nil
}
