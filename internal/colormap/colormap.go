package colormap

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/multierr"
)

// ErrEmpty is returned when a colormap has no entries.
var ErrEmpty = errors.New("colormap has no entries")

// Colormap is an ordered color lookup table, low end first.
type Colormap []colorful.Color

// Len returns the number of entries.
func (c Colormap) Len() int { return len(c) }

// Clone returns a copy that shares no storage with c.
func (c Colormap) Clone() Colormap {
	if c == nil {
		return nil
	}
	out := make(Colormap, len(c))
	copy(out, c)
	return out
}

// Validate checks that c is non-empty and that every channel of every entry is
// a number in [0,1].
//
// All offending entries are reported. The returned error can be split into its
// parts with multierr.Errors.
func (c Colormap) Validate() error {
	if len(c) == 0 {
		return ErrEmpty
	}
	var err error
	for i, e := range c {
		err = multierr.Append(err, checkEntry(i, e.R, e.G, e.B))
	}
	return err
}

func checkEntry(i int, r, g, b float64) error {
	var err error
	for _, ch := range []struct {
		name string
		v    float64
	}{{"red", r}, {"green", g}, {"blue", b}} {
		switch {
		case math.IsNaN(ch.v):
			err = multierr.Append(err, fmt.Errorf("entry %d: %s channel is missing", i, ch.name))
		case ch.v < 0 || ch.v > 1:
			err = multierr.Append(err, fmt.Errorf("entry %d: %s channel %g outside [0,1]", i, ch.name, ch.v))
		}
	}
	return err
}

// FromRows builds a colormap from a table of [r, g, b] rows.
//
// Every row must have exactly three columns. The result is validated.
func FromRows(rows [][]float64) (Colormap, error) {
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	var err error
	cmap := make(Colormap, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			err = multierr.Append(err, fmt.Errorf("entry %d: expected 3 columns, got %d", i, len(row)))
			continue
		}
		cmap = append(cmap, colorful.Color{R: row[0], G: row[1], B: row[2]})
	}
	if err != nil {
		return nil, err
	}
	if err := cmap.Validate(); err != nil {
		return nil, err
	}
	return cmap, nil
}

// Rows returns c as a table of [r, g, b] rows.
func (c Colormap) Rows() [][]float64 {
	rows := make([][]float64, len(c))
	for i, e := range c {
		rows[i] = []float64{e.R, e.G, e.B}
	}
	return rows
}

// Hex returns every entry as a lowercase "#rrggbb" string.
func (c Colormap) Hex() []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.Hex()
	}
	return out
}

// ParseHex builds a colormap from "#rrggbb" or "#rgb" strings.
func ParseHex(hex []string) (Colormap, error) {
	if len(hex) == 0 {
		return nil, ErrEmpty
	}
	var err error
	cmap := make(Colormap, 0, len(hex))
	for i, h := range hex {
		col, perr := colorful.Hex(h)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("entry %d: invalid hex color %q", i, h))
			continue
		}
		cmap = append(cmap, col)
	}
	if err != nil {
		return nil, err
	}
	return cmap, nil
}

// Resample picks n entries from c by nearest index, preserving order.
func (c Colormap) Resample(n int) Colormap {
	if n < 1 || len(c) == 0 {
		return nil
	}
	out := make(Colormap, n)
	for i := range out {
		out[i] = c[i*len(c)/n]
	}
	return out
}
