// Package colormap provides the color lookup tables used by the centering tools.
//
// A Colormap is an ordered list of RGB entries running from the "low" end of a
// color scale to the "high" end. Entries are go-colorful colors, so every channel
// is a float64 in [0,1].
//
// # Validity
//
// A valid colormap has at least one entry, and every channel of every entry lies
// in [0,1]. A NaN channel is treated as a missing value and is never valid.
// Validate reports every offending entry, not just the first one.
//
// # Wire Forms
//
// Colormaps cross the MCP boundary in one of two forms:
//   - Rows: a table of [r, g, b] triples with channels in [0,1]
//   - Hex: a list of "#rrggbb" strings
//
// # Built-in Palettes
//
// Palette generates diverging palettes (RdBu, BrBG, PuOr, PiYG, coolwarm, bwr)
// at any size by blending a fixed set of anchor colors in CIE-L*a*b* space.
//
// # Inspection
//
// Render draws a colormap as a PNG colorbar, and SwatchString draws it as a
// single line of colored terminal cells.
package colormap
