package cmd

import (
	"github.com/huangsam/trajectory/internal/history"
	"github.com/huangsam/trajectory/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Trajectory MCP server",
	Long:  `Launch an MCP server on stdio that allows AI agents to build trajectories and list countries via standard tools.`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, source, history.Manager)
	},
}
