package main

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ironsheep/colormap-tools-mcp/internal/center"
)

func TestParsePair(t *testing.T) {
	got, err := parsePair(" -2, auto ")
	if err != nil {
		t.Fatalf("parsePair failed: %v", err)
	}
	if got[0] != -2 || !math.IsNaN(got[1]) {
		t.Errorf("got %v", got)
	}

	if got, err := parsePair(""); err != nil || got != nil {
		t.Errorf("empty: got %v, %v", got, err)
	}
	for _, bad := range []string{"1", "1,2,3", "a,b"} {
		if _, err := parsePair(bad); err == nil {
			t.Errorf("parsePair(%q) should fail", bad)
		}
	}
}

func TestRunPreview(t *testing.T) {
	var out bytes.Buffer
	err := runPreview([]string{"-name", "bwr", "-size", "10", "-x0", "20", "-clim", "5,10", "-width", "10"}, &out)
	if err != nil {
		t.Fatalf("runPreview failed: %v", err)
	}

	text := out.String()
	for _, want := range []string{"bwr (10 entries)", "clim      [5, 20]", "0 low, 5 high, 5 remain"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunPreview_AutoLimits(t *testing.T) {
	var out bytes.Buffer
	if err := runPreview([]string{"-axis", "-3,4", "-clim", "auto,8"}, &out); err != nil {
		t.Fatalf("runPreview failed: %v", err)
	}
	if !strings.Contains(out.String(), "clim      [-3, 8]") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRunPreview_Errors(t *testing.T) {
	var out bytes.Buffer
	if err := runPreview([]string{"-name", "jet"}, &out); err == nil {
		t.Error("unknown palette should fail")
	}
	if err := runPreview([]string{"-clim", "3,1"}, &out); !errors.Is(err, center.ErrInvalidLimits) {
		t.Errorf("decreasing limits: got %v", err)
	}
	if err := runPreview([]string{"-axis", "1"}, &out); err == nil {
		t.Error("bad -axis should fail")
	}
}
