package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// climSchema describes a [lo, hi] pair whose elements may be numbers, null or
// the strings "auto", "nan", "inf" and "-inf".
func climSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": []string{"number", "string", "null"},
		},
		"minItems":    2,
		"maxItems":    2,
		"description": description,
	}
}

// colormapSourceProperties are the properties shared by tools that accept a
// colormap.
func colormapSourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"colormap": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":     "array",
				"items":    map[string]interface{}{"type": []string{"number", "null"}},
				"minItems": 3,
				"maxItems": 3,
			},
			"description": "Colormap as [r, g, b] rows with channels in [0,1], low end first",
		},
		"hex": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Colormap as \"#rrggbb\" strings, low end first. Used when colormap is omitted.",
		},
		"name": map[string]interface{}{
			"type":        "string",
			"description": "Built-in palette name (see colormap_list). Used when colormap and hex are omitted. Default RdBu.",
		},
		"size": map[string]interface{}{
			"type":        "integer",
			"description": "Number of entries for a built-in palette",
		},
	}
}

func withProperties(base map[string]interface{}, extra map[string]interface{}) map[string]interface{} {
	for k, v := range extra {
		base[k] = v
	}
	return base
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Axes
		{
			Name:        "axes_create",
			Description: "Create an axis with the given color limits. Returns its id.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"clim": climSchema("Color limits [lo, hi] with lo < hi. Default [0, 1]"),
					"make_current": map[string]interface{}{
						"type":        "boolean",
						"description": "Make the new axis current (default true)",
						"default":     true,
					},
				},
			},
		},
		{
			Name:        "axes_list",
			Description: "List all axes with their color limits and colormap sizes.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "axes_get",
			Description: "Get an axis's color limits and colormap.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{"type": "integer", "description": "Axis id"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "axes_set_limits",
			Description: "Set an axis's color limits, as a plot would after drawing data. Limits must be increasing; infinite limits are allowed here.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":   map[string]interface{}{"type": "integer", "description": "Axis id"},
					"clim": climSchema("Color limits [lo, hi]; \"inf\" and \"-inf\" are accepted"),
				},
				"required": []string{"id", "clim"},
			},
		},
		{
			Name:        "axes_set_current",
			Description: "Make an axis the current axis, used when colormap_center names no axes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{"type": "integer", "description": "Axis id"},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "axes_remove",
			Description: "Delete an axis.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{"type": "integer", "description": "Axis id"},
				},
				"required": []string{"id"},
			},
		},

		// Colormaps
		{
			Name:        "colormap_list",
			Description: "List the built-in diverging palettes.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "colormap_get",
			Description: "Generate a built-in diverging palette as [r, g, b] rows and hex strings.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{"type": "string", "description": "Palette name"},
					"size": map[string]interface{}{"type": "integer", "description": "Number of entries"},
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "colormap_center",
			Description: "Trim a diverging colormap so that x0 maps to its neutral midpoint, then set the color limits and colormap of the target axes.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(colormapSourceProperties(), map[string]interface{}{
					"x0": map[string]interface{}{
						"type":        "number",
						"description": "Center value of the data",
					},
					"axes": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Target axis ids. Default: the current axis",
					},
					"clim": climSchema("Color limits [lo, hi]. Omit to take both from the axes; use null for one bound to take it from the axes"),
					"set_vals": map[string]interface{}{
						"type":        "boolean",
						"description": "Apply the limits and colormap to the axes (default true)",
						"default":     true,
					},
					"outputs": map[string]interface{}{
						"type":        "integer",
						"description": "1 to return the centered colormap, 0 to return only the summary (default 1)",
						"default":     1,
					},
				}),
				"required": []string{"x0"},
			},
		},
		{
			Name:        "colormap_render",
			Description: "Render a colormap, or an axis's colormap, as a base64-encoded PNG colorbar.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withProperties(colormapSourceProperties(), map[string]interface{}{
					"axis": map[string]interface{}{
						"type":        "integer",
						"description": "Render this axis's colormap instead of a given one",
					},
					"width":  map[string]interface{}{"type": "integer", "description": "Image width in pixels"},
					"height": map[string]interface{}{"type": "integer", "description": "Image height in pixels"},
					"orientation": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"horizontal", "vertical"},
						"description": "Bar orientation (default horizontal)",
						"default":     "horizontal",
					},
				}),
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
