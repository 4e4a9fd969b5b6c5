// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Trajectory MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, source contract.DataSource, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Trajectory Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		source:  source,
		mgr:     mgr,
	}

	// --- 1. Tool: get_trajectory ---
	s.AddTool(mcp.NewTool("get_trajectory",
		mcp.WithDescription("Align the cumulative confirmed-case histories of several countries, derive daily new cases and optionally smooth both. Returns the aligned matrices with per-country summaries."),
		mcp.WithString("countries", mcp.Description("Comma-separated country identifiers or names (e.g. 'italy, US, Korea (South)'). Cannot be combined with threshold.")),
		mcp.WithNumber("threshold", mcp.Description("Select every country with at least this many total confirmed cases. Cannot be combined with countries.")),
		mcp.WithBoolean("smoothing", mcp.Description("Apply the centered moving average to totals and daily counts.")),
		mcp.WithNumber("window", mcp.Description("Odd moving-average window in days. Defaults to 5.")),
		mcp.WithNumber("degree", mcp.Description("Number of smoothing passes. Defaults to 2.")),
		mcp.WithNumber("visibility", mcp.Description("Points at or below this count are hidden in frames. Defaults to 5.")),
		mcp.WithBoolean("include_frames", mcp.Description("Also return the per-day animation frames and axis bounds.")),
	), h.handleGetTrajectory)

	// --- 2. Tool: list_countries ---
	s.AddTool(mcp.NewTool("list_countries",
		mcp.WithDescription("List every valid country of the upstream feed with its identifier, display name and total confirmed cases."),
	), h.handleListCountries)

	return s
}

// StartMCPServer starts the Trajectory MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, source contract.DataSource, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, source, mgr)
	return server.ServeStdio(s)
}
