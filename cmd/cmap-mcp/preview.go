package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ironsheep/colormap-tools-mcp/internal/axes"
	"github.com/ironsheep/colormap-tools-mcp/internal/center"
	"github.com/ironsheep/colormap-tools-mcp/internal/colormap"
)

// runPreview centers a built-in palette against a scratch axis and prints
// the before and after swatches.
func runPreview(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(w)
	name := fs.String("name", "RdBu", "built-in palette name")
	size := fs.Int("size", colormap.DefaultSize, "palette size")
	x0 := fs.Float64("x0", 0, "center value")
	climFlag := fs.String("clim", "", "color limits as lo,hi (either may be \"auto\")")
	width := fs.Int("width", 64, "swatch width in terminal cells")
	axisLim := fs.String("axis", "-1,1", "limits of the scratch axis used for auto bounds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cmap, err := colormap.Palette(*name, *size)
	if err != nil {
		return err
	}
	clim, err := parsePair(*climFlag)
	if err != nil {
		return fmt.Errorf("-clim: %w", err)
	}
	axLim, err := parsePair(*axisLim)
	if err != nil || len(axLim) != 2 {
		return fmt.Errorf("-axis: expected lo,hi")
	}

	fig := axes.NewFigure()
	if _, err := fig.NewAxes(axLim[0], axLim[1], true); err != nil {
		return fmt.Errorf("-axis: %w", err)
	}

	plan, err := center.Prepare(fig, center.Request{
		Colormap: cmap,
		Center:   *x0,
		Limits:   clim,
		DryRun:   true,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "palette   %s (%d entries)\n", *name, cmap.Len())
	fmt.Fprintf(w, "original  %s\n", colormap.SwatchString(cmap, *width))
	fmt.Fprintf(w, "centered  %s\n", colormap.SwatchString(plan.Colormap, *width))
	fmt.Fprintf(w, "clim      [%g, %g]  x0 %g\n", plan.Limits.Lo, plan.Limits.Hi, plan.Center)
	fmt.Fprintf(w, "trimmed   %d low, %d high, %d remain\n", plan.TrimLow, plan.TrimHigh, plan.Colormap.Len())
	return nil
}

// parsePair parses "lo,hi". Empty input yields nil. "auto" yields NaN.
func parsePair(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected lo,hi, got %q", s)
	}
	out := make([]float64, 2)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if strings.EqualFold(p, "auto") {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
