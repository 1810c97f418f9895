package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/ironsheep/colormap-tools-mcp/internal/axes"
	"github.com/ironsheep/colormap-tools-mcp/internal/center"
	"github.com/ironsheep/colormap-tools-mcp/internal/colormap"
)

// defaultPalette is used when a tool call names no colormap at all.
const defaultPalette = "RdBu"

// isNull reports whether raw is absent or JSON null.
func isNull(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}

// parseLimits decodes a clim argument. Absent or null means no limits.
// Auto bounds come back as NaN.
func parseLimits(raw json.RawMessage) ([]float64, error) {
	if isNull(raw) {
		return nil, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, fmt.Errorf("%w: clim must be an array", center.ErrInvalidLimits)
	}
	out := make([]float64, len(elems))
	for i, e := range elems {
		v, err := parseLimit(e)
		if err != nil {
			return nil, fmt.Errorf("%w: clim[%d]: %v", center.ErrInvalidLimits, i, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseLimit(raw json.RawMessage) (float64, error) {
	if isNull(raw) {
		return math.NaN(), nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("expected a number, null or string, got %s", raw)
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "nan":
		return math.NaN(), nil
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	}
	return 0, fmt.Errorf("unrecognized value %q", s)
}

// parseCenter decodes the required x0 argument.
func parseCenter(raw json.RawMessage) (float64, error) {
	if isNull(raw) {
		return 0, fmt.Errorf("%w: x0 is required", center.ErrInvalidCenter)
	}
	var x0 float64
	if err := json.Unmarshal(raw, &x0); err != nil {
		return 0, fmt.Errorf("%w: x0 must be a single real number, got %s", center.ErrInvalidCenter, raw)
	}
	return x0, nil
}

// parseFlag decodes an optional boolean argument.
func parseFlag(raw json.RawMessage, name string, def bool) (bool, error) {
	if isNull(raw) {
		return def, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %s", center.ErrInvalidFlag, name, raw)
	}
	return b, nil
}

// parseOutputs decodes the optional outputs argument, which defaults to 1.
func parseOutputs(raw json.RawMessage) (int, error) {
	if isNull(raw) {
		return 1, nil
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("%w: outputs must be an integer, got %s", center.ErrInvalidUsage, raw)
	}
	if err := center.CheckOutputs(n); err != nil {
		return 0, err
	}
	return n, nil
}

// lookupAxes decodes a list of axis ids and returns the matching panels.
// Absent or empty means none.
func (s *Server) lookupAxes(raw json.RawMessage) ([]axes.Axis, error) {
	if isNull(raw) {
		return nil, nil
	}
	var ids []int
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("%w: axes must be a list of axis ids", center.ErrInvalidAxes)
	}
	out := make([]axes.Axis, 0, len(ids))
	for _, id := range ids {
		p, err := s.figure.Axes(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", center.ErrInvalidAxes, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// colormapSource is the colormap part of a tool's arguments. The first of
// colormap, hex and name that is present wins.
type colormapSource struct {
	Colormap json.RawMessage `json:"colormap"`
	Hex      []string        `json:"hex"`
	Name     string          `json:"name"`
	Size     int             `json:"size"`
}

func (s *Server) resolveColormap(src colormapSource) (colormap.Colormap, error) {
	switch {
	case !isNull(src.Colormap):
		var rows [][]*float64
		if err := json.Unmarshal(src.Colormap, &rows); err != nil {
			return nil, fmt.Errorf("%w: colormap must be a table of numbers", center.ErrInvalidColormap)
		}
		table := make([][]float64, len(rows))
		for i, row := range rows {
			table[i] = make([]float64, len(row))
			for j, v := range row {
				table[i][j] = math.NaN()
				if v != nil {
					table[i][j] = *v
				}
			}
		}
		cmap, err := colormap.FromRows(table)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", center.ErrInvalidColormap, err)
		}
		return cmap, nil

	case len(src.Hex) > 0:
		cmap, err := colormap.ParseHex(src.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", center.ErrInvalidColormap, err)
		}
		return cmap, nil
	}

	name := src.Name
	if name == "" {
		name = defaultPalette
	}
	size := src.Size
	if size == 0 {
		size = s.paletteSize
	}
	cmap, err := colormap.Palette(name, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", center.ErrInvalidColormap, err)
	}
	return cmap, nil
}
