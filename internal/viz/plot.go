package viz

import (
	"github.com/guptarohit/asciigraph"
)

// PlotSeries draws data as an ASCII line chart. Long series are
// decimated to a few points per column before plotting.
func PlotSeries(data []float64, caption string, width, height int) string {
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(Decimate(data, 4*width),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Decimate keeps every k-th value so at most maxPoints remain; the last
// value is always kept.
func Decimate(data []float64, maxPoints int) []float64 {
	if maxPoints < 2 || len(data) <= maxPoints {
		return data
	}
	stride := (len(data) + maxPoints - 2) / (maxPoints - 1)
	out := make([]float64, 0, maxPoints)
	for i := 0; i < len(data); i += stride {
		out = append(out, data[i])
	}
	if (len(data)-1)%stride != 0 {
		out = append(out, data[len(data)-1])
	}
	return out
}
