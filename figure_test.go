package plotstyle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"
)

// Scenario: default profile, 800x600 canvas with 0.2 left/bottom
// margins, red fit curve, blue histogram, black error-bar graph with
// square markers, 3-entry borderless legend, watermark, PDF export.
func TestReferenceFigure1D(t *testing.T) {
	defer snapshotDefaults()()

	s := NewProfile("collab", "")
	if err := s.Apply(); err != nil {
		t.Fatal(err)
	}

	fig, err := ReferenceFigure1D(s, 12345)
	if err != nil {
		t.Fatal(err)
	}

	if fig.Len() != 4 {
		t.Errorf("Got %d artifacts want 4", fig.Len())
	}
	if fig.Window() != (Size{800, 600}) {
		t.Errorf("Got window = %v", fig.Window())
	}
	if fig.margins != Margins1D() {
		t.Errorf("Got margins = %+v", fig.margins)
	}
	if fig.X.Label.TextStyle.Font.Variant != "Serif" {
		t.Errorf("Got axis title variant = %q", fig.X.Label.TextStyle.Font.Variant)
	}
	if want := vg.Length(0.06) * length(600); fig.X.Label.TextStyle.Font.Size != want {
		t.Errorf("Got axis title size = %v want %v", fig.X.Label.TextStyle.Font.Size, want)
	}
	if fig.X.Label.Text != "β₁₄" {
		t.Errorf("Got x title = %q", fig.X.Label.Text)
	}
	if fig.Y.Label.Text != "R³ / Rₐᵥ³" {
		t.Errorf("Got y title = %q", fig.Y.Label.Text)
	}

	fname := filepath.Join(t.TempDir(), "example1D.pdf")
	if err := fig.Save(fname); err != nil {
		t.Fatal(err)
	}
	st, err := os.Stat(fname)
	if err != nil {
		t.Fatal(err)
	}
	if st.Size() == 0 {
		t.Errorf("empty pdf written")
	}
}

// Scenario: default profile, 2D density map with 0.2/0.2/0.2
// margins, safe palette, watermark, no stats box, no auto-title.
func TestReferenceFigure2D(t *testing.T) {
	defer snapshotDefaults()()

	s := NewProfile("collab", "")
	if err := s.Apply(); err != nil {
		t.Fatal(err)
	}

	fig, err := ReferenceFigure2D(s, 12345)
	if err != nil {
		t.Fatal(err)
	}

	if fig.Len() != 1 {
		t.Errorf("Got %d artifacts want 1", fig.Len())
	}
	if fig.margins != Margins2D() {
		t.Errorf("Got margins = %+v", fig.margins)
	}
	if fig.Title.Text != "" {
		t.Errorf("auto-title drawn: %q", fig.Title.Text)
	}

	fname := filepath.Join(t.TempDir(), "example2D.pdf")
	if err := fig.Save(fname); err != nil {
		t.Fatal(err)
	}
	if st, err := os.Stat(fname); err != nil || st.Size() == 0 {
		t.Errorf("Got stat = %v, %v", st, err)
	}
}

func TestSaveEmptyFigure(t *testing.T) {
	s := NewProfile("collab", "")
	fig := s.NewFigure(Aspect4to3, Margins1D())

	err := fig.Save(filepath.Join(t.TempDir(), "empty.pdf"))
	if !errors.Is(err, ErrEmptyFigure) {
		t.Errorf("Got err = %v", err)
	}

	// A watermark alone does not make a figure.
	fig.Watermark(NewWatermark(0.88, 0.65))
	err = fig.Save(filepath.Join(t.TempDir(), "empty.pdf"))
	if !errors.Is(err, ErrEmptyFigure) {
		t.Errorf("Got err = %v after watermark", err)
	}
}

func TestSetTitleSuppressed(t *testing.T) {
	s := NewProfile("collab", "")
	fig := s.NewFigure(Aspect4to3, Margins1D())
	fig.SetTitle("should not appear")
	if fig.Title.Text != "" {
		t.Errorf("Got title = %q", fig.Title.Text)
	}

	s.ShowTitle = true
	fig = s.NewFigure(Aspect4to3, Margins1D())
	fig.SetTitle("appears")
	if fig.Title.Text != "appears" {
		t.Errorf("Got title = %q", fig.Title.Text)
	}
}

func TestCustomAspectFigure(t *testing.T) {
	s := NewProfile("collab", "")
	fig := s.NewFigure(Aspect16to9, Margins1D())
	if fig.Window() != (Size{1600, 900}) {
		t.Errorf("Got window = %v", fig.Window())
	}
	fig = s.NewFigure(CustomAspect(1024, 768), Margins1D())
	if fig.Window() != (Size{1024, 768}) {
		t.Errorf("Got window = %v", fig.Window())
	}
}
