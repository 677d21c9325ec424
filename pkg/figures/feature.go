package figures

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"winescope/pkg/dataset"
	"winescope/pkg/profile"
	"winescope/pkg/wine"
)

// FeatureHistogram overlays the two per-class histograms of one attribute
// as filled staircase outlines over the shared bin edges.
func FeatureHistogram(h profile.Histogram, path string) error {
	p := newPlot(h.Column+" by type", h.Column, "wines")

	for _, c := range []wine.Color{wine.Red, wine.White} {
		counts := h.Counts[c]
		pts := make(plotter.XYs, 0, 2*len(counts))
		for i, n := range counts {
			pts = append(pts,
				plotter.XY{X: h.Edges[i], Y: n},
				plotter.XY{X: h.Edges[i+1], Y: n},
			)
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("histogram figure %q: %w", h.Column, err)
		}
		line.Color = classColors[c]
		line.Width = vg.Points(1.5)
		line.FillColor = fillColor(c)
		p.Add(line)
		p.Legend.Add(string(c), line)
	}
	p.Legend.Top = true

	return save(p, path)
}

// FeatureBox draws side-by-side box plots of one attribute, red and white.
func FeatureBox(ds *dataset.Dataset, a wine.Attribute, path string) error {
	p := newPlot(a.String()+" by type", "", a.String())

	for i, c := range []wine.Color{wine.Red, wine.White} {
		vals := plotter.Values(ds.Subset(c).Column(a))
		if len(vals) == 0 {
			return fmt.Errorf("box figure %q: no %s samples", a, c)
		}
		box, err := plotter.NewBoxPlot(vg.Points(50), float64(i), vals)
		if err != nil {
			return fmt.Errorf("box figure %q: %w", a, err)
		}
		box.FillColor = fillColor(c)
		p.Add(box)
	}
	p.NominalX(string(wine.Red), string(wine.White))

	return save(p, path)
}
