package axes

import (
	"fmt"
	"sync"
)

// Figure is a registry of panels with a notion of the current panel.
//
// Panel IDs start at 1 and are never reused within a figure. Figure is safe
// for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	fig := axes.NewFigure()
//	p, _ := fig.NewAxes(-2, 3, true)
//	ax := fig.CurrentAxis() // p
type Figure struct {
	mu      sync.RWMutex
	panels  map[int]*Panel
	order   []int
	nextID  int
	current int
}

// NewFigure creates an empty figure.
func NewFigure() *Figure {
	return &Figure{
		panels: make(map[int]*Panel),
		nextID: 1,
	}
}

// NewAxes adds a panel with the given limits.
//
// The new panel becomes current if makeCurrent is set or if the figure had
// no current panel. The limits must be increasing.
func (f *Figure) NewAxes(lo, hi float64, makeCurrent bool) (*Panel, error) {
	if !(lo < hi) {
		return nil, fmt.Errorf("axis limits (%g, %g) must be increasing", lo, hi)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addLocked(lo, hi, makeCurrent), nil
}

func (f *Figure) addLocked(lo, hi float64, makeCurrent bool) *Panel {
	p := NewPanel(f.nextID, lo, hi)
	f.nextID++
	f.panels[p.id] = p
	f.order = append(f.order, p.id)
	if makeCurrent || f.current == 0 {
		f.current = p.id
	}
	return p
}

// Axes returns the panel with the given ID.
func (f *Figure) Axes(id int) (*Panel, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	p, ok := f.panels[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchAxis, id)
	}
	return p, nil
}

// List returns every panel in creation order.
func (f *Figure) List() []*Panel {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]*Panel, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.panels[id])
	}
	return out
}

// Len returns the number of panels.
func (f *Figure) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.order)
}

// CurrentID returns the ID of the current panel, or 0 if there is none.
func (f *Figure) CurrentID() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// SetCurrent makes the panel with the given ID current.
func (f *Figure) SetCurrent(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.panels[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNoSuchAxis, id)
	}
	f.current = id
	return nil
}

// CurrentAxis implements Environment. An empty figure gets a new panel with
// the default limits, which becomes current.
func (f *Figure) CurrentAxis() Axis {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.panels[f.current]; ok {
		return p
	}
	return f.addLocked(DefaultLo, DefaultHi, true)
}

// PeekAxis implements PendingEnvironment. It never adds a panel. For an
// empty figure it returns an unregistered panel with ID 0 and the default
// limits.
func (f *Figure) PeekAxis() (Axis, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if p, ok := f.panels[f.current]; ok {
		return p, true
	}
	return NewPanel(0, DefaultLo, DefaultHi), false
}

// Remove deletes the panel with the given ID. If it was current, the most
// recently created remaining panel becomes current.
func (f *Figure) Remove(id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.panels[id]; !ok {
		return fmt.Errorf("%w: %d", ErrNoSuchAxis, id)
	}
	delete(f.panels, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	if f.current == id {
		f.current = 0
		if n := len(f.order); n > 0 {
			f.current = f.order[n-1]
		}
	}
	return nil
}

// Clear removes all panels. IDs keep counting from where they were.
func (f *Figure) Clear() {
	f.mu.Lock()
	f.panels = make(map[int]*Panel)
	f.order = nil
	f.current = 0
	f.mu.Unlock()
}
