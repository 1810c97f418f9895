package colormap

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultSize is the number of entries generated when no size is requested.
const DefaultSize = 64

// ErrUnknownPalette is returned by Palette for names it does not know.
var ErrUnknownPalette = errors.New("unknown palette")

// Anchor colors, low end first. The ColorBrewer sets are the 11-class
// diverging schemes.
var anchors = map[string][]string{
	"RdBu": {
		"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7",
		"#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061",
	},
	"BrBG": {
		"#543005", "#8c510a", "#bf812d", "#dfc27d", "#f6e8c3", "#f5f5f5",
		"#c7eae5", "#80cdc1", "#35978f", "#01665e", "#003c30",
	},
	"PuOr": {
		"#7f3b08", "#b35806", "#e08214", "#fdb863", "#fee0b6", "#f7f7f7",
		"#d8daeb", "#b2abd2", "#8073ac", "#542788", "#2d004b",
	},
	"PiYG": {
		"#8e0152", "#c51b7d", "#de77ae", "#f1b6da", "#fde0ef", "#f7f7f7",
		"#e6f5d0", "#b8e186", "#7fbc41", "#4d9221", "#276419",
	},
	"coolwarm": {"#3b4cc0", "#dddddd", "#b40426"},
	"bwr":      {"#0000ff", "#ffffff", "#ff0000"},
}

// Names returns the built-in palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(anchors))
	for name := range anchors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Palette generates the named diverging palette with n entries.
//
// Entries are spaced evenly between the first and last anchor. Between two
// anchors the colors are blended in L*a*b* and clamped back into RGB gamut.
// A single-entry palette holds the neutral midpoint.
func Palette(name string, n int) (Colormap, error) {
	hex, ok := anchors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	if n < 1 {
		return nil, fmt.Errorf("palette size must be at least 1, got %d", n)
	}

	stops, err := ParseHex(hex)
	if err != nil {
		return nil, err
	}

	cmap := make(Colormap, n)
	last := float64(len(stops) - 1)
	for i := range cmap {
		t := 0.5
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		pos := t * last
		k := int(math.Floor(pos))
		if k >= len(stops)-1 {
			k = len(stops) - 2
		}
		cmap[i] = stops[k].BlendLab(stops[k+1], pos-float64(k)).Clamped()
	}
	return cmap, nil
}
