package figures

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"winescope/pkg/profile"
	"winescope/pkg/wine"
)

// ClassBalance draws the red/white count comparison as a bar chart.
func ClassBalance(b profile.Balance, path string) error {
	p := newPlot("Class balance", "", "wines")

	for i, c := range []wine.Color{wine.Red, wine.White} {
		bar, err := plotter.NewBarChart(plotter.Values{float64(b.Counts[c])}, vg.Points(50))
		if err != nil {
			return fmt.Errorf("class balance figure: %w", err)
		}
		bar.Color = classColors[c]
		bar.XMin = float64(i)
		p.Add(bar)
	}
	p.NominalX(string(wine.Red), string(wine.White))

	return save(p, path)
}

// QualityDistribution draws the per-class quality tallies as grouped bars,
// one group per observed score.
func QualityDistribution(qc profile.QualityCounts, path string) error {
	if len(qc.Scores) == 0 {
		return fmt.Errorf("quality figure: no scores to draw")
	}
	p := newPlot("Quality by type", "quality score", "wines")

	w := vg.Points(12)
	offsets := map[wine.Color]vg.Length{wine.Red: -w / 2, wine.White: w / 2}
	for _, c := range []wine.Color{wine.Red, wine.White} {
		vals := make(plotter.Values, len(qc.Scores))
		for i, q := range qc.Scores {
			vals[i] = float64(qc.ByColor[c][q])
		}
		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return fmt.Errorf("quality figure: %w", err)
		}
		bars.Color = classColors[c]
		bars.Offset = offsets[c]
		p.Add(bars)
		p.Legend.Add(string(c), bars)
	}

	labels := make([]string, len(qc.Scores))
	for i, q := range qc.Scores {
		labels[i] = strconv.Itoa(q)
	}
	p.NominalX(labels...)
	p.Legend.Top = true

	return save(p, path)
}
