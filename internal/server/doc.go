// Package server implements the MCP (Model Context Protocol) server for the
// image mosaic tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the mosaic builder
// through the MCP protocol, so an MCP client can turn images into mosaics of
// squares, circles or stars and inspect how a source is sampled.
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
// Source Images:
//   - image_load: Load image and get metadata and mosaic grid size
//
// Mosaic Operations:
//   - mosaic_create: Build a mosaic, return it as PNG and optionally save it
//   - mosaic_sample_grid: Return the sampled colors as hex rows
//   - mosaic_sample_overlay: Show the sample points over the source
//   - mosaic_shapes: List the supported shapes
//
// Every tool that reads a source caps its width first (max_width, default
// 1024) so that large photos do not yield enormous mosaics.
//
// # Image Caching
//
// Sources are cached by path as decoded, before the width cap. Building the
// same image again with another shape or stride reuses the cached copy; every
// build draws a fresh canvas.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes;
//     a line that is not JSON gets -32700 with a null id
//   - message: Human-readable error description
//   - data: The Go error string, which starts with "invalid shape",
//     "invalid configuration" or "invalid image" for rejected input
//
// # Usage
//
//	srv := server.New()
//	srv.SetDebug(os.Getenv("MOSAIC_MCP_LOG_LEVEL") == "debug")
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
