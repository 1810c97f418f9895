package colormap

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// Default colorbar dimensions for a horizontal bar. A vertical bar swaps them.
const (
	DefaultBarLength    = 256
	DefaultBarThickness = 24
)

// RenderResult contains a rendered colorbar.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Entries     int    `json:"entries"`
	Orientation string `json:"orientation"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Render draws cmap as a colorbar of the given final size.
//
// Every entry gets an equal share of the bar, with no smoothing between
// neighbors. A horizontal bar runs low to high from left to right. A vertical
// bar runs low to high from bottom to top.
func Render(cmap Colormap, width, height int, vertical bool) (*RenderResult, error) {
	if err := cmap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid colormap: %w", err)
	}
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid colorbar size %dx%d: both dimensions must be at least 1", width, height)
	}

	strip := image.NewRGBA(image.Rect(0, 0, len(cmap), 1))
	for i, c := range cmap {
		strip.Set(i, 0, c)
	}

	var bar image.Image
	orientation := "horizontal"
	if vertical {
		orientation = "vertical"
		// Lay the strip out along the bar's length, then turn it so the
		// low end ends up at the bottom.
		bar = imaging.Rotate90(transform.Resize(strip, height, width, transform.NearestNeighbor))
	} else {
		bar = transform.Resize(strip, width, height, transform.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, bar); err != nil {
		return nil, fmt.Errorf("failed to encode colorbar: %w", err)
	}

	return &RenderResult{
		Width:       bar.Bounds().Dx(),
		Height:      bar.Bounds().Dy(),
		Entries:     len(cmap),
		Orientation: orientation,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
