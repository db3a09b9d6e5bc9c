// Plotstyle provides the collaboration plot style for figures made
// with gonum/plot and go-hep.
//
// # Style Profiles
//
// A StyleProfile is a named bundle of visual defaults: white canvas
// with no frame borders, bold lines, a Times-like serif face for all
// text, synchronized axis styling, a borderless legend, filled square
// markers and a colorblind-safe palette for density plots. Titles,
// statistics boxes and fit-parameter boxes are suppressed.
//
// The profile is applied once, before any plot object is created:
//
//	style := plotstyle.NewProfile("collab", "publication style")
//	if err := style.Apply(); err != nil { ... }
//	fig := style.NewFigure(plotstyle.Aspect4to3)
//
// Apply installs the profile into the global default slots gonum/plot
// consults at object-creation time. Objects created before Apply keep
// the toolkit's built-in defaults; that ordering is the caller's
// responsibility. Apply is idempotent but must not race with plot
// creation.
//
// # General Rules
//
// Every figure carries an embedded "Preliminary" watermark. Where a
// single series of each kind is shown, data is black points with
// error bars, a model histogram is blue and a fit curve is red.
// Isotropy axes are labelled with the Greek symbol and normalized
// radius axes with explicit cube exponents. Figures are exported to
// PDF so they scale without loss.
package plotstyle
