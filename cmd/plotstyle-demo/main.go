// Plotstyle-demo renders the two reference figures of the
// collaboration plot style to PDF. It doubles as a smoke test of the
// style: the output must match the documented visual contract.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hepstyle/plotstyle"
)

func main() {
	log.SetPrefix("plotstyle-demo: ")
	log.SetFlags(0)

	outdir := flag.String("o", ".", "output directory for the PDF files")
	seed := flag.Uint64("seed", 12345, "random seed for the example data")
	flag.Parse()

	style := plotstyle.NewProfile("collab", "collaboration style for publications")
	if err := style.Apply(); err != nil {
		log.Fatal(err)
	}

	fig1, err := plotstyle.ReferenceFigure1D(style, *seed)
	if err != nil {
		log.Fatal(err)
	}
	if err := fig1.Save(filepath.Join(*outdir, "example1D.pdf")); err != nil {
		log.Fatal(err)
	}

	fig2, err := plotstyle.ReferenceFigure2D(style, *seed)
	if err != nil {
		log.Fatal(err)
	}
	if err := fig2.Save(filepath.Join(*outdir, "example2D.pdf")); err != nil {
		log.Fatal(err)
	}
}
