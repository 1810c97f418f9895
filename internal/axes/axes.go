// Package axes defines the plotting-surface collaborator consumed by the
// centering tools, along with an in-memory implementation of it.
//
// An Axis exposes only what colormap centering needs: its current color
// limits, and setters for those limits and its colormap. An Environment
// supplies the "current axis" used when a caller names no axes.
//
// Figure and Panel are safe for concurrent use. Figure keeps panels across
// calls so the MCP server can build up plots step by step.
package axes

import (
	"errors"
	"math"
	"sync"

	"github.com/ironsheep/colormap-tools-mcp/internal/colormap"
)

// Axis is a plotting surface with color limits and an active colormap.
type Axis interface {
	// Limits returns the data values mapped onto the low and high ends of
	// the colormap.
	Limits() (lo, hi float64)
	SetLimits(lo, hi float64)
	SetColormap(cmap colormap.Colormap)
}

// Environment supplies the axis used when a caller names none.
type Environment interface {
	CurrentAxis() Axis
}

// PendingEnvironment is an Environment that can describe its current axis
// without creating it.
type PendingEnvironment interface {
	Environment

	// PeekAxis returns the current axis and true. When CurrentAxis would
	// have to create the axis, it returns a detached axis carrying the
	// limits the new one would get, and false.
	PeekAxis() (Axis, bool)
}

// ErrNoSuchAxis is returned when an axis ID is not registered in a Figure.
var ErrNoSuchAxis = errors.New("no such axis")

// Default color limits for a fresh panel.
const (
	DefaultLo = 0.0
	DefaultHi = 1.0
)

// Panel is an in-memory Axis.
//
// Panel stores whatever limits it is given, including infinite ones. It is up
// to the caller to decide whether such limits are usable.
type Panel struct {
	mu   sync.RWMutex
	id   int
	lo   float64
	hi   float64
	cmap colormap.Colormap
}

// NewPanel creates a detached panel with the given ID and limits.
func NewPanel(id int, lo, hi float64) *Panel {
	return &Panel{id: id, lo: lo, hi: hi}
}

// ID returns the panel's identifier within its figure.
func (p *Panel) ID() int { return p.id }

// Limits implements Axis.
func (p *Panel) Limits() (lo, hi float64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lo, p.hi
}

// SetLimits implements Axis.
func (p *Panel) SetLimits(lo, hi float64) {
	p.mu.Lock()
	p.lo, p.hi = lo, hi
	p.mu.Unlock()
}

// SetColormap implements Axis. The panel keeps its own copy of cmap.
func (p *Panel) SetColormap(cmap colormap.Colormap) {
	c := cmap.Clone()
	p.mu.Lock()
	p.cmap = c
	p.mu.Unlock()
}

// Colormap returns a copy of the panel's colormap, or nil if none was set.
func (p *Panel) Colormap() colormap.Colormap {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cmap.Clone()
}

// PanelInfo is a JSON-friendly snapshot of a panel.
//
// Non-finite limits are reported as the strings "inf", "-inf" or "nan", since
// JSON has no encoding for them.
type PanelInfo struct {
	ID           int            `json:"id"`
	CLim         [2]interface{} `json:"clim"`
	ColormapSize int            `json:"colormap_size"`
	Current      bool           `json:"current"`
}

// Info returns a snapshot of the panel.
func (p *Panel) Info() PanelInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return PanelInfo{
		ID:           p.id,
		CLim:         [2]interface{}{LimitValue(p.lo), LimitValue(p.hi)},
		ColormapSize: len(p.cmap),
	}
}

// LimitValue returns v unchanged if it is finite, and its string spelling
// otherwise.
func LimitValue(v float64) interface{} {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return v
}
