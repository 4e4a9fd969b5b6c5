package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/trajectory/core"
	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	source  contract.DataSource
	mgr     contract.StoreManager
}

// trajectoryResponse is the JSON payload of get_trajectory.
type trajectoryResponse struct {
	Result *schema.TrajectoryResult `json:"result"`
	Frames *schema.FrameSet         `json:"animation,omitempty"`
}

func (h *toolHandler) handleGetTrajectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	// A selection passed by the caller replaces the server's selection mode.
	// Passing both in one call is still a conflict.
	countries := request.GetString("countries", "")
	threshold := request.GetInt("threshold", 0)
	if countries != "" || threshold > 0 {
		cfg.Countries = nil
		cfg.Threshold = 0
	}
	if countries != "" {
		cfg.Countries = []string{countries}
	}
	if threshold > 0 {
		cfg.Threshold = int64(threshold)
	}
	cfg.Smoothing = request.GetBool("smoothing", cfg.Smoothing)
	cfg.Window = request.GetInt("window", cfg.Window)
	cfg.Degree = request.GetInt("degree", cfg.Degree)
	cfg.Visibility = int64(request.GetInt("visibility", int(cfg.Visibility)))

	if err := contract.RevalidateSelection(cfg); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid trajectory parameters: %v", err)), nil
	}
	if cfg.Visibility < 0 {
		return mcp.NewToolResultError(fmt.Sprintf("invalid trajectory parameters: visibility must not be negative (received %d)", cfg.Visibility)), nil
	}

	result, frames, err := core.GetTrajectoryResultQuiet(ctx, cfg, h.source, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trajectory failed: %v", err)), nil
	}

	resp := trajectoryResponse{Result: result}
	if request.GetBool("include_frames", false) {
		resp.Frames = &frames
	}
	jsonData, _ := json.MarshalIndent(resp, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListCountries(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, err := core.ListCountries(ctx, h.source)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing countries failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(records, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
