// Package center rescales diverging colormaps so that a chosen center value
// maps to the palette midpoint.
//
// # Algorithm
//
// Given color limits (lo, hi) and a center x0, the deviations lo-x0 and hi-x0
// are computed. When x0 lies outside the limits, the limit nearer to x0 is
// moved out to meet it. Each side's share of the larger deviation then decides
// how much of that half of the colormap survives:
//
//	halfStep = floor(N/2)
//	trimHigh = halfStep - round(percHigh*halfStep)   // removed from the end
//	trimLow  = halfStep - round(percLow*halfStep)    // removed from the start
//
// The side with the larger deviation keeps its whole half, and the other side
// is shortened in proportion.
//
// # Limits
//
// Limits may be given explicitly, left empty (both bounds taken from the
// axes), or given with a NaN bound (that bound taken from the axes). Bounds
// taken from axes are the minimum low limit and maximum high limit over all
// target axes.
//
// # Side Effects
//
// Prepare is pure. Plan.Apply pushes the resolved limits and the centered
// colormap to every target axis, in order, unless the request is a dry run.
// All validation finishes before the first axis is touched. When the
// environment is a PendingEnvironment with no current axis yet, the axis is
// created by Apply, so failed and dry-run calls add nothing.
package center

import (
	"fmt"
	"math"

	"github.com/ironsheep/colormap-tools-mcp/internal/axes"
	"github.com/ironsheep/colormap-tools-mcp/internal/colormap"
)

// Request describes one centering call.
type Request struct {
	// Colormap is the palette to center. It is not modified.
	Colormap colormap.Colormap

	// Center is the data value that should map to the palette midpoint.
	Center float64

	// Axes are the target axes. Empty means the environment's current axis.
	Axes []axes.Axis

	// Limits holds the color limits as [lo, hi]. Empty means both bounds
	// come from the axes, and a NaN element means that bound does.
	Limits []float64

	// DryRun skips applying the result to the axes.
	DryRun bool
}

// Limits is a resolved pair of color limits.
type Limits struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Plan is a validated, fully computed centering result that has not been
// applied yet.
type Plan struct {
	// Colormap is the trimmed colormap.
	Colormap colormap.Colormap

	// Limits are the color limits pushed to the axes, after any limit was
	// moved to the center.
	Limits Limits

	Center float64

	// Deviation is (Limits.Lo-Center, Limits.Hi-Center).
	Deviation [2]float64

	// PercDev is each side's absolute deviation as a fraction of the larger.
	PercDev [2]float64

	TrimLow  int
	TrimHigh int

	// Axes are the resolved target axes. DefaultAxis reports whether they
	// came from the environment.
	Axes        []axes.Axis
	DefaultAxis bool

	DryRun bool

	env     axes.Environment
	pending bool
}

// Scale centers req.Colormap on req.Center, applies the result to the target
// axes unless req.DryRun is set, and returns the trimmed colormap.
func Scale(env axes.Environment, req Request) (colormap.Colormap, error) {
	p, err := Prepare(env, req)
	if err != nil {
		return nil, err
	}
	p.Apply()
	return p.Colormap, nil
}

// Prepare validates req, resolves its axes and limits, and computes the
// trimmed colormap without touching any axis.
//
// Axes are read only when a limit has to be taken from them.
func Prepare(env axes.Environment, req Request) (*Plan, error) {
	if err := req.Colormap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidColormap, err)
	}
	if math.IsNaN(req.Center) || math.IsInf(req.Center, 0) {
		return nil, errorf(ErrInvalidCenter, "x0 must be a finite real number, got %g", req.Center)
	}

	targets, defaulted, pending, err := resolveAxes(env, req.Axes)
	if err != nil {
		return nil, err
	}

	lim, err := resolveLimits(req.Limits, targets, defaulted)
	if err != nil {
		return nil, err
	}

	lim, dev := centerLimits(lim, req.Center)
	perc, ok := percentDeviation(dev)

	cmap, low, high := req.Colormap.Clone(), 0, 0
	if ok {
		cmap, low, high = trim(req.Colormap, perc)
	}

	return &Plan{
		Colormap:    cmap,
		Limits:      lim,
		Center:      req.Center,
		Deviation:   dev,
		PercDev:     perc,
		TrimLow:     low,
		TrimHigh:    high,
		Axes:        targets,
		DefaultAxis: defaulted,
		DryRun:      req.DryRun,
		env:         env,
		pending:     pending,
	}, nil
}

// Apply sets the limits and colormap of every target axis, in order. It does
// nothing for a dry run. A default axis that did not exist during Prepare is
// created here and replaces the stand-in in p.Axes.
func (p *Plan) Apply() {
	if p.DryRun {
		return
	}
	if p.pending {
		p.Axes = []axes.Axis{p.env.CurrentAxis()}
		p.pending = false
	}
	for _, ax := range p.Axes {
		ax.SetLimits(p.Limits.Lo, p.Limits.Hi)
		ax.SetColormap(p.Colormap)
	}
}

// resolveAxes reports whether the targets were defaulted from env, and
// whether the default axis still has to be created.
func resolveAxes(env axes.Environment, given []axes.Axis) (targets []axes.Axis, defaulted, pending bool, err error) {
	if len(given) == 0 {
		if env == nil {
			return nil, false, false, errorf(ErrInvalidAxes, "no axes given and no environment to supply a current axis")
		}
		var ax axes.Axis
		exists := true
		if pe, ok := env.(axes.PendingEnvironment); ok {
			ax, exists = pe.PeekAxis()
		} else {
			ax = env.CurrentAxis()
		}
		if ax == nil {
			return nil, false, false, errorf(ErrInvalidAxes, "environment has no current axis")
		}
		return []axes.Axis{ax}, true, !exists, nil
	}

	out := make([]axes.Axis, len(given))
	for i, ax := range given {
		if ax == nil {
			return nil, false, false, errorf(ErrInvalidAxes, "axis %d is nil", i+1)
		}
		out[i] = ax
	}
	return out, false, false, nil
}

func resolveLimits(clim []float64, targets []axes.Axis, defaulted bool) (Limits, error) {
	lim := Limits{Lo: math.NaN(), Hi: math.NaN()}

	switch len(clim) {
	case 0:
	case 2:
		for i, v := range clim {
			if math.IsInf(v, 0) {
				return Limits{}, errorf(ErrInvalidLimits, "clim[%d] is infinite", i)
			}
		}
		lim = Limits{Lo: clim[0], Hi: clim[1]}
		if !math.IsNaN(lim.Lo) && !math.IsNaN(lim.Hi) && lim.Lo >= lim.Hi {
			return Limits{}, errorf(ErrInvalidLimits, "clim (%g, %g) must be increasing", lim.Lo, lim.Hi)
		}
	default:
		return Limits{}, errorf(ErrInvalidLimits, "clim must have 2 elements, got %d", len(clim))
	}

	autoLo, autoHi := math.IsNaN(lim.Lo), math.IsNaN(lim.Hi)
	if !autoLo && !autoHi {
		return lim, nil
	}

	axLim, err := axesExtent(targets, defaulted)
	if err != nil {
		return Limits{}, err
	}
	if autoLo {
		lim.Lo = axLim.Lo
	}
	if autoHi {
		lim.Hi = axLim.Hi
	}
	if lim.Lo >= lim.Hi {
		return Limits{}, errorf(ErrInvalidLimits, "resolved clim (%g, %g) must be increasing", lim.Lo, lim.Hi)
	}
	return lim, nil
}

// axesExtent returns the smallest low limit and largest high limit over
// targets. Axes are numbered from 1 in error messages.
func axesExtent(targets []axes.Axis, defaulted bool) (Limits, error) {
	ext := Limits{Lo: math.Inf(1), Hi: math.Inf(-1)}
	for i, ax := range targets {
		lo, hi := ax.Limits()
		if !finite(lo) || !finite(hi) {
			name := fmt.Sprintf("axis %d", i+1)
			if p, ok := ax.(*axes.Panel); ok {
				name += fmt.Sprintf(" (id %d)", p.ID())
			}
			if defaulted {
				name = "the current axis"
			}
			return Limits{}, errorf(ErrNonFiniteAxisLimits, "%s reports clim (%g, %g)", name, lo, hi)
		}
		ext.Lo = math.Min(ext.Lo, lo)
		ext.Hi = math.Max(ext.Hi, hi)
	}
	return ext, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func errorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
