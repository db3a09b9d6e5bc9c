package plotstyle

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// Size is a canvas or window size in pixels.
type Size struct {
	W, H int
}

// canvasDPI converts between requested pixel dimensions and vg
// lengths on export.
const canvasDPI = 96

// length converts a pixel dimension to a vg length at canvasDPI.
func length(px int) vg.Length {
	return vg.Inch * vg.Length(px) / canvasDPI
}

// pixels converts a vg length back to whole pixels at canvasDPI.
func pixels(l vg.Length) int {
	return int(math.Round(float64(l / vg.Inch * canvasDPI)))
}

// Aspect selects the canvas dimensions of a figure.
type Aspect struct {
	size Size
}

var (
	// Aspect4to3 is the squarer format used for most figures.
	Aspect4to3 = Aspect{Size{800, 600}}
	// Aspect16to9 is the wide format for slides.
	Aspect16to9 = Aspect{Size{1600, 900}}
)

// CustomAspect requests explicit canvas dimensions.
func CustomAspect(w, h int) Aspect {
	return Aspect{Size{w, h}}
}

func (a Aspect) Size() Size {
	return a.size
}

// WindowSize corrects the window dimensions for the chrome the host
// windowing environment adds around a canvas. The toolkit reports an
// intended canvas size that excludes this chrome; without the
// correction, exported pixel dimensions differ across platforms.
func WindowSize(requested, reported Size) Size {
	return Size{
		W: requested.W + (requested.W - reported.W),
		H: requested.H + (requested.H - reported.H),
	}
}

// Margins are fractions of the canvas reserved around the data frame
// for axis titles and, on 2D color figures, the color scale.
type Margins struct {
	Left, Right, Bottom, Top float64
}

// MarginDefault is the fraction reserved on the left and bottom of
// every figure.
const MarginDefault = 0.2

// Margins1D reserves space for the axis titles.
func Margins1D() Margins {
	return Margins{Left: MarginDefault, Bottom: MarginDefault}
}

// Margins2D additionally reserves the right edge for a color scale.
func Margins2D() Margins {
	return Margins{Left: MarginDefault, Right: MarginDefault, Bottom: MarginDefault}
}
