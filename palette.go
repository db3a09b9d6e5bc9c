package plotstyle

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// Palette is the symbolic name of a color gradient for 2D density
// plots. Only names from the closed colorblind-safe set resolve; the
// underlying toolkit code is looked up at apply time and never stored.
type Palette string

const (
	// PaletteInvertedBlackBody is the default: the black-body
	// radiator gradient running from light to dark, so high density
	// prints dark on a white canvas.
	PaletteInvertedBlackBody Palette = "inverted-blackbody"
	PaletteBlackBody         Palette = "blackbody"
	PaletteKindlmann         Palette = "kindlmann"
	PaletteExtendedKindlmann Palette = "extended-kindlmann"
	PaletteSmoothBlueRed     Palette = "smooth-blue-red"
	PaletteYlGnBu            Palette = "ylgnbu"
)

// safePalettes is the closed set of perceptually uniform,
// colorblind-safe gradients. Rainbow-style gradients are deliberately
// absent.
var safePalettes = NewStringSetFrom([]string{
	string(PaletteInvertedBlackBody),
	string(PaletteBlackBody),
	string(PaletteKindlmann),
	string(PaletteExtendedKindlmann),
	string(PaletteSmoothBlueRed),
	string(PaletteYlGnBu),
})

// SafePalettes returns the sorted names of the closed safe set.
func SafePalettes() []string {
	return safePalettes.Elements()
}

// UnknownPaletteError reports a palette name outside the closed safe
// set.
type UnknownPaletteError struct {
	Name  string
	Valid []string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("plotstyle: unknown palette %q, valid palettes are %s",
		e.Name, strings.Join(e.Valid, ", "))
}

// paletteColors is the number of colors a gradient is sampled at.
const paletteColors = 255

// Resolve maps the symbolic name to the toolkit palette. Names
// outside the safe set fail with an UnknownPaletteError.
func (p Palette) Resolve() (palette.Palette, error) {
	if !safePalettes.Contains(string(p)) {
		return nil, &UnknownPaletteError{Name: string(p), Valid: SafePalettes()}
	}
	switch p {
	case PaletteInvertedBlackBody:
		return reversed{moreland.ExtendedBlackBody().Palette(paletteColors)}, nil
	case PaletteBlackBody:
		return moreland.BlackBody().Palette(paletteColors), nil
	case PaletteKindlmann:
		return moreland.Kindlmann().Palette(paletteColors), nil
	case PaletteExtendedKindlmann:
		return moreland.ExtendedKindlmann().Palette(paletteColors), nil
	case PaletteSmoothBlueRed:
		return moreland.SmoothBlueRed().Palette(paletteColors), nil
	case PaletteYlGnBu:
		pal, err := brewer.GetPalette(brewer.TypeAny, "YlGnBu", 9)
		if err != nil {
			return nil, fmt.Errorf("plotstyle: palette %q: %w", p, err)
		}
		return pal, nil
	}
	// Unreachable: the switch covers the safe set.
	return nil, &UnknownPaletteError{Name: string(p), Valid: SafePalettes()}
}

// reversed runs a palette back to front.
type reversed struct {
	p palette.Palette
}

func (r reversed) Colors() []color.Color {
	cs := r.p.Colors()
	rev := make([]color.Color, len(cs))
	for i, c := range cs {
		rev[len(cs)-1-i] = c
	}
	return rev
}
