package plotstyle

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveSafePalettes(t *testing.T) {
	for _, name := range SafePalettes() {
		pal, err := Palette(name).Resolve()
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if len(pal.Colors()) == 0 {
			t.Errorf("%s: empty palette", name)
		}
	}
}

func TestResolveUnknownPalette(t *testing.T) {
	_, err := Palette("rainbow").Resolve()
	if err == nil {
		t.Fatalf("rainbow resolved")
	}
	var perr *UnknownPaletteError
	if !errors.As(err, &perr) {
		t.Fatalf("Got err = %v", err)
	}
	if perr.Name != "rainbow" {
		t.Errorf("Got name = %q", perr.Name)
	}
	if !NewStringSetFrom(perr.Valid).Equals(SafePalettes()) {
		t.Errorf("Got valid = %v", perr.Valid)
	}
	if !strings.Contains(err.Error(), "rainbow") {
		t.Errorf("error does not name the palette: %s", err)
	}
	for _, name := range SafePalettes() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error does not list %s: %s", name, err)
		}
	}
}

func TestInvertedPaletteIsReversed(t *testing.T) {
	inv, err := PaletteInvertedBlackBody.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	fwd := inv.(reversed).p.Colors()
	rev := inv.Colors()
	if len(fwd) != len(rev) {
		t.Fatalf("Got %d and %d colors", len(fwd), len(rev))
	}
	for i := range rev {
		if rev[i] != fwd[len(fwd)-1-i] {
			t.Errorf("color %d not reversed", i)
		}
	}
}
