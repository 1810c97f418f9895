package center

import (
	"math"

	"github.com/ironsheep/colormap-tools-mcp/internal/colormap"
)

// centerLimits returns lim with x0 inside it, along with the deviations of
// the returned limits from x0.
//
// When x0 lies outside lim, every limit at the smallest absolute deviation is
// moved to x0.
func centerLimits(lim Limits, x0 float64) (Limits, [2]float64) {
	vals := [2]float64{lim.Lo, lim.Hi}
	dev := [2]float64{lim.Lo - x0, lim.Hi - x0}

	if sign(dev[0]) == sign(dev[1]) {
		nearest := math.Min(math.Abs(dev[0]), math.Abs(dev[1]))
		for i := range dev {
			if math.Abs(dev[i]) == nearest {
				vals[i] = x0
				dev[i] = 0
			}
		}
	}
	return Limits{Lo: vals[0], Hi: vals[1]}, dev
}

// percentDeviation returns each absolute deviation as a fraction of the
// larger one. ok is false when both deviations are zero, in which case no
// trimming applies.
func percentDeviation(dev [2]float64) (perc [2]float64, ok bool) {
	maxDev := math.Max(math.Abs(dev[0]), math.Abs(dev[1]))
	if maxDev == 0 {
		return perc, false
	}
	for i, d := range dev {
		perc[i] = math.Abs(d) / maxDev
	}
	return perc, true
}

// trim shortens each half of cmap to its share of halfStep entries. The high
// end is cut first. Both counts come from the original length.
func trim(cmap colormap.Colormap, perc [2]float64) (out colormap.Colormap, low, high int) {
	halfStep := len(cmap) / 2
	high = halfStep - int(math.Round(perc[1]*float64(halfStep)))
	low = halfStep - int(math.Round(perc[0]*float64(halfStep)))

	out = cmap[:len(cmap)-high]
	out = out[low:]
	return out.Clone(), low, high
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
