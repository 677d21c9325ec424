// Package figures renders the exploratory plots: class balance and quality
// bars, per-class feature histograms and box plots, and the correlation
// heat map. Every function draws one figure and saves it to the given path.
package figures

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"winescope/pkg/wine"
)

// classColors keeps the two classes visually consistent across figures.
var classColors = map[wine.Color]color.NRGBA{
	wine.Red:   {R: 148, G: 23, B: 47, A: 255},
	wine.White: {R: 218, G: 165, B: 32, A: 255},
}

// fillColor is the class color at fill opacity.
func fillColor(c wine.Color) color.NRGBA {
	cc := classColors[c]
	cc.A = 90
	return cc
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

func save(p *plot.Plot, path string) error {
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
