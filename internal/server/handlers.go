package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/ironsheep/colormap-tools-mcp/internal/axes"
	"github.com/ironsheep/colormap-tools-mcp/internal/center"
	"github.com/ironsheep/colormap-tools-mcp/internal/colormap"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "axes_create", "colormap_center").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	s.log.Debug("tool call", zap.String("tool", params.Name))
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Info("tool failed", zap.String("tool", params.Name), zap.Error(err))
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if isNull(args) {
		args = json.RawMessage("{}")
	}

	switch name {
	// Axes
	case "axes_create":
		return s.handleAxesCreate(args)
	case "axes_list":
		return s.handleAxesList(args)
	case "axes_get":
		return s.handleAxesGet(args)
	case "axes_set_limits":
		return s.handleAxesSetLimits(args)
	case "axes_set_current":
		return s.handleAxesSetCurrent(args)
	case "axes_remove":
		return s.handleAxesRemove(args)

	// Colormaps
	case "colormap_list":
		return s.handleColormapList(args)
	case "colormap_get":
		return s.handleColormapGet(args)
	case "colormap_center":
		return s.handleColormapCenter(args)
	case "colormap_render":
		return s.handleColormapRender(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to a pretty-printed JSON string.
// A marshal error is discarded and yields an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Axes Handlers ===

type axisIDArgs struct {
	ID int `json:"id"`
}

type axesCreateArgs struct {
	CLim        json.RawMessage `json:"clim"`
	MakeCurrent *bool           `json:"make_current"`
}

func (s *Server) panelInfo(p *axes.Panel) axes.PanelInfo {
	info := p.Info()
	info.Current = s.figure.CurrentID() == p.ID()
	return info
}

func (s *Server) handleAxesCreate(args json.RawMessage) (interface{}, error) {
	var a axesCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	clim, err := parseLimits(a.CLim)
	if err != nil {
		return nil, err
	}
	lo, hi := axes.DefaultLo, axes.DefaultHi
	if clim != nil {
		if len(clim) != 2 || !finite(clim[0]) || !finite(clim[1]) {
			return nil, fmt.Errorf("%w: clim must be two finite numbers", center.ErrInvalidLimits)
		}
		lo, hi = clim[0], clim[1]
	}
	makeCurrent := true
	if a.MakeCurrent != nil {
		makeCurrent = *a.MakeCurrent
	}

	p, err := s.figure.NewAxes(lo, hi, makeCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", center.ErrInvalidLimits, err)
	}
	return s.panelInfo(p), nil
}

// AxesListResult lists every axis in the figure.
type AxesListResult struct {
	Axes    []axes.PanelInfo `json:"axes"`
	Current int              `json:"current"`
}

func (s *Server) handleAxesList(args json.RawMessage) (interface{}, error) {
	panels := s.figure.List()
	infos := make([]axes.PanelInfo, len(panels))
	for i, p := range panels {
		infos[i] = s.panelInfo(p)
	}
	return &AxesListResult{Axes: infos, Current: s.figure.CurrentID()}, nil
}

// AxisDetail is an axis snapshot including its colormap.
type AxisDetail struct {
	axes.PanelInfo
	Colormap [][]float64 `json:"colormap,omitempty"`
	Hex      []string    `json:"hex,omitempty"`
}

func (s *Server) handleAxesGet(args json.RawMessage) (interface{}, error) {
	var a axisIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.figure.Axes(a.ID)
	if err != nil {
		return nil, err
	}
	detail := &AxisDetail{PanelInfo: s.panelInfo(p)}
	if cmap := p.Colormap(); cmap != nil {
		detail.Colormap = cmap.Rows()
		detail.Hex = cmap.Hex()
	}
	return detail, nil
}

type axesSetLimitsArgs struct {
	ID   int             `json:"id"`
	CLim json.RawMessage `json:"clim"`
}

func (s *Server) handleAxesSetLimits(args json.RawMessage) (interface{}, error) {
	var a axesSetLimitsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	p, err := s.figure.Axes(a.ID)
	if err != nil {
		return nil, err
	}
	clim, err := parseLimits(a.CLim)
	if err != nil {
		return nil, err
	}
	if len(clim) != 2 || math.IsNaN(clim[0]) || math.IsNaN(clim[1]) {
		return nil, fmt.Errorf("%w: clim must be two numbers", center.ErrInvalidLimits)
	}
	if !(clim[0] < clim[1]) {
		return nil, fmt.Errorf("%w: clim (%g, %g) must be increasing", center.ErrInvalidLimits, clim[0], clim[1])
	}
	p.SetLimits(clim[0], clim[1])
	return s.panelInfo(p), nil
}

func (s *Server) handleAxesSetCurrent(args json.RawMessage) (interface{}, error) {
	var a axisIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.figure.SetCurrent(a.ID); err != nil {
		return nil, err
	}
	p, err := s.figure.Axes(a.ID)
	if err != nil {
		return nil, err
	}
	return s.panelInfo(p), nil
}

func (s *Server) handleAxesRemove(args json.RawMessage) (interface{}, error) {
	var a axisIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.figure.Remove(a.ID); err != nil {
		return nil, err
	}
	return map[string]interface{}{"removed": a.ID, "current": s.figure.CurrentID()}, nil
}

// === Colormap Handlers ===

// PaletteListResult lists the built-in palettes.
type PaletteListResult struct {
	Palettes    []string `json:"palettes"`
	DefaultSize int      `json:"default_size"`
}

func (s *Server) handleColormapList(args json.RawMessage) (interface{}, error) {
	return &PaletteListResult{Palettes: colormap.Names(), DefaultSize: s.paletteSize}, nil
}

type colormapGetArgs struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// PaletteResult contains a generated palette.
type PaletteResult struct {
	Name     string      `json:"name"`
	Size     int         `json:"size"`
	Colormap [][]float64 `json:"colormap"`
	Hex      []string    `json:"hex"`
}

func (s *Server) handleColormapGet(args json.RawMessage) (interface{}, error) {
	var a colormapGetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = s.paletteSize
	}
	cmap, err := colormap.Palette(a.Name, a.Size)
	if err != nil {
		return nil, err
	}
	return &PaletteResult{Name: a.Name, Size: cmap.Len(), Colormap: cmap.Rows(), Hex: cmap.Hex()}, nil
}

type colormapCenterArgs struct {
	colormapSource
	X0      json.RawMessage `json:"x0"`
	Axes    json.RawMessage `json:"axes"`
	CLim    json.RawMessage `json:"clim"`
	SetVals json.RawMessage `json:"set_vals"`
	Outputs json.RawMessage `json:"outputs"`
}

// CenterResult summarizes a colormap_center call.
//
// Colormap and Hex are omitted when the caller asked for no outputs.
type CenterResult struct {
	Colormap     [][]float64 `json:"colormap,omitempty"`
	Hex          []string    `json:"hex,omitempty"`
	Size         int         `json:"size"`
	OriginalSize int         `json:"original_size"`
	CLim         [2]float64  `json:"clim"`
	X0           float64     `json:"x0"`
	PercDev      [2]float64  `json:"perc_dev"`
	TrimLow      int         `json:"trim_low"`
	TrimHigh     int         `json:"trim_high"`
	Applied      bool        `json:"applied"`
	Axes         []int       `json:"axes"`
}

func (s *Server) handleColormapCenter(args json.RawMessage) (interface{}, error) {
	var a colormapCenterArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	// Decode in the same order Prepare validates, so the first problem
	// reported is the same either way.
	cmap, err := s.resolveColormap(a.colormapSource)
	if err != nil {
		return nil, err
	}
	x0, err := parseCenter(a.X0)
	if err != nil {
		return nil, err
	}
	targets, err := s.lookupAxes(a.Axes)
	if err != nil {
		return nil, err
	}
	clim, err := parseLimits(a.CLim)
	if err != nil {
		return nil, err
	}
	setVals, err := parseFlag(a.SetVals, "set_vals", true)
	if err != nil {
		return nil, err
	}
	outputs, err := parseOutputs(a.Outputs)
	if err != nil {
		return nil, err
	}

	plan, err := center.Prepare(s.figure, center.Request{
		Colormap: cmap,
		Center:   x0,
		Axes:     targets,
		Limits:   clim,
		DryRun:   !setVals,
	})
	if err != nil {
		return nil, err
	}
	plan.Apply()

	s.log.Debug("centered colormap",
		zap.Float64("x0", x0),
		zap.Float64("lo", plan.Limits.Lo),
		zap.Float64("hi", plan.Limits.Hi),
		zap.Int("trim_low", plan.TrimLow),
		zap.Int("trim_high", plan.TrimHigh),
		zap.Bool("applied", setVals))

	result := &CenterResult{
		Size:         plan.Colormap.Len(),
		OriginalSize: cmap.Len(),
		CLim:         [2]float64{plan.Limits.Lo, plan.Limits.Hi},
		X0:           x0,
		PercDev:      plan.PercDev,
		TrimLow:      plan.TrimLow,
		TrimHigh:     plan.TrimHigh,
		Applied:      setVals,
		Axes:         make([]int, 0, len(plan.Axes)),
	}
	for _, ax := range plan.Axes {
		if p, ok := ax.(*axes.Panel); ok && p.ID() > 0 {
			result.Axes = append(result.Axes, p.ID())
		}
	}
	if outputs > 0 {
		result.Colormap = plan.Colormap.Rows()
		result.Hex = plan.Colormap.Hex()
	}
	return result, nil
}

type colormapRenderArgs struct {
	colormapSource
	Axis        *int   `json:"axis"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Orientation string `json:"orientation"`
}

func (s *Server) handleColormapRender(args json.RawMessage) (interface{}, error) {
	var a colormapRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var vertical bool
	switch a.Orientation {
	case "", "horizontal":
	case "vertical":
		vertical = true
	default:
		return nil, fmt.Errorf("unknown orientation: %s", a.Orientation)
	}
	if a.Width == 0 {
		a.Width = colormap.DefaultBarLength
		if vertical {
			a.Width = colormap.DefaultBarThickness
		}
	}
	if a.Height == 0 {
		a.Height = colormap.DefaultBarThickness
		if vertical {
			a.Height = colormap.DefaultBarLength
		}
	}

	var cmap colormap.Colormap
	if a.Axis != nil {
		p, err := s.figure.Axes(*a.Axis)
		if err != nil {
			return nil, err
		}
		if cmap = p.Colormap(); cmap == nil {
			return nil, errors.New("axis has no colormap; run colormap_center on it first")
		}
	} else {
		var err error
		if cmap, err = s.resolveColormap(a.colormapSource); err != nil {
			return nil, err
		}
	}

	return colormap.Render(cmap, a.Width, a.Height, vertical)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
