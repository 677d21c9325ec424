package figures

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"winescope/pkg/profile"
)

// corrGrid adapts a correlation matrix to the heat map's grid interface.
type corrGrid struct {
	m *profile.Matrix
}

func (g corrGrid) Dims() (c, r int)   { n := len(g.m.Columns); return n, n }
func (g corrGrid) Z(c, r int) float64 { return g.m.At(c, r) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// CorrelationHeatMap draws the full correlation matrix on a diverging
// blue-red scale pinned to [-1, 1], so hue encodes sign and saturation
// encodes strength.
func CorrelationHeatMap(m *profile.Matrix, path string) error {
	if m == nil || len(m.Columns) == 0 {
		return fmt.Errorf("heat map figure: empty matrix")
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(corrGrid{m: m}, cm.Palette(255))
	hm.Min, hm.Max = -1, 1

	p := newPlot("Correlation matrix", "", "")
	p.Add(hm)

	ticks := make([]plot.Tick, len(m.Columns))
	for i, name := range m.Columns {
		ticks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p.Save(7*vg.Inch, 6*vg.Inch, path)
}
