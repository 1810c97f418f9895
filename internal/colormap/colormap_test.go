package colormap

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/multierr"
)

// grayRamp creates an n-entry colormap running from black to white
func grayRamp(n int) Colormap {
	cmap := make(Colormap, n)
	for i := range cmap {
		v := 0.0
		if n > 1 {
			v = float64(i) / float64(n-1)
		}
		cmap[i] = colorful.Color{R: v, G: v, B: v}
	}
	return cmap
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cmap     Colormap
		wantErrs int
	}{
		{"single entry", Colormap{{R: 0.5, G: 0.5, B: 0.5}}, 0},
		{"ramp", grayRamp(16), 0},
		{"bounds inclusive", Colormap{{R: 0, G: 0, B: 0}, {R: 1, G: 1, B: 1}}, 0},
		{"negative channel", Colormap{{R: -0.1, G: 0, B: 0}}, 1},
		{"channel above one", Colormap{{R: 0, G: 1.5, B: 0}}, 1},
		{"missing channel", Colormap{{R: 0, G: 0, B: math.NaN()}}, 1},
		{"several entries bad", Colormap{{R: 2, G: 0, B: 0}, {R: 0, G: 0, B: 0}, {R: math.NaN(), G: -1, B: 0}}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmap.Validate()
			if got := len(multierr.Errors(err)); got != tt.wantErrs {
				t.Errorf("got %d errors (%v), want %d", got, err, tt.wantErrs)
			}
		})
	}
}

func TestValidate_Empty(t *testing.T) {
	if err := (Colormap{}).Validate(); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty colormap: got %v, want ErrEmpty", err)
	}
	var nilMap Colormap
	if err := nilMap.Validate(); !errors.Is(err, ErrEmpty) {
		t.Errorf("nil colormap: got %v, want ErrEmpty", err)
	}
}

func TestFromRows(t *testing.T) {
	cmap, err := FromRows([][]float64{{0, 0, 1}, {1, 1, 1}, {1, 0, 0}})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if cmap.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", cmap.Len())
	}
	if cmap[0].B != 1 || cmap[2].R != 1 {
		t.Errorf("entries out of order: %v", cmap)
	}

	rows := cmap.Rows()
	if len(rows) != 3 || len(rows[1]) != 3 || rows[1][0] != 1 {
		t.Errorf("Rows: got %v", rows)
	}
}

func TestFromRows_Invalid(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"empty", nil},
		{"two columns", [][]float64{{0, 0}}},
		{"four columns", [][]float64{{0, 0, 0, 1}}},
		{"out of range", [][]float64{{0, 0, 0}, {0, 255, 0}}},
		{"missing value", [][]float64{{0, math.NaN(), 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRows(tt.rows); err == nil {
				t.Error("FromRows should fail")
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	in := []string{"#0000ff", "#ffffff", "#ff0000"}
	cmap, err := ParseHex(in)
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	got := cmap.Hex()
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("entry %d: got %s, want %s", i, got[i], in[i])
		}
	}
}

func TestParseHex_Invalid(t *testing.T) {
	_, err := ParseHex([]string{"#000000", "not-a-color", "#12"})
	if err == nil {
		t.Fatal("ParseHex should fail")
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("got %d errors, want 2: %v", n, err)
	}
}

func TestClone(t *testing.T) {
	orig := grayRamp(4)
	c := orig.Clone()
	c[0].R = 1
	if orig[0].R != 0 {
		t.Error("Clone shares storage with the original")
	}
	var nilMap Colormap
	if nilMap.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestResample(t *testing.T) {
	cmap := grayRamp(4)

	tests := []struct {
		name    string
		n       int
		wantIdx []int
	}{
		{"same size", 4, []int{0, 1, 2, 3}},
		{"upsample", 8, []int{0, 0, 1, 1, 2, 2, 3, 3}},
		{"downsample", 2, []int{0, 2}},
		{"zero", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cmap.Resample(tt.n)
			if len(got) != len(tt.wantIdx) {
				t.Fatalf("len: got %d, want %d", len(got), len(tt.wantIdx))
			}
			for i, idx := range tt.wantIdx {
				if got[i] != cmap[idx] {
					t.Errorf("entry %d: got %v, want cmap[%d]", i, got[i], idx)
				}
			}
		})
	}
}
