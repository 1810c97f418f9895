// Package server implements the MCP (Model Context Protocol) server for colormap centering tools.
//
// This package provides a JSON-RPC 2.0 server that exposes diverging-colormap
// centering through the MCP protocol, backed by an in-memory figure of axes.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Axes:
//   - axes_create: Add an axis with color limits
//   - axes_list: List all axes
//   - axes_get: Get one axis
//   - axes_set_limits: Set an axis's color limits
//   - axes_set_current: Choose the current axis
//   - axes_remove: Delete an axis
//
// Colormaps:
//   - colormap_list: List built-in palettes
//   - colormap_get: Generate a built-in palette
//   - colormap_center: Center a colormap on a value and apply it to axes
//   - colormap_render: Draw a colormap as a PNG colorbar
//
// # Color Limits on the Wire
//
// JSON has no NaN or infinity, so clim elements may be:
//   - a number: a literal bound
//   - null, "auto" or "nan": take this bound from the axes
//   - "inf" or "-inf": an infinite bound (rejected by colormap_center)
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string, which starts with the failure category
//     (for example "invalid color limits: ...")
//
// # Usage
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
