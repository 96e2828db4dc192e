package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"mgcheck/internal/logging"
	"mgcheck/internal/mcpserver"
	"mgcheck/internal/workflow"
)

var serveFlags struct {
	baseDir  string
	workflow string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server over stdio for agent integration",
	Long: `Starts an MCP server over stdin/stdout exposing check_events and
inspect_downstream, so agents can gate pipeline stages on a passing
validation.

The server monitors for parent process death. When the connected agent
disconnects, the server self-terminates to prevent zombie processes.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.baseDir, "base-dir", "", "Default base directory for tool calls (default: working directory)")
	f.StringVar(&serveFlags.workflow, "workflow", workflow.DefaultFilename, "Workflow configuration file")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logging.Init(slog.LevelInfo, "text")

	srv := mcpserver.NewServer(serveFlags.baseDir, serveFlags.workflow)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	mcpserver.WatchParent(ctx, cancel)

	logging.New("mcp").Info("starting mgcheck MCP server over stdio (parent watchdog active)")
	return srv.MCPServer.Run(ctx, &sdkmcp.StdioTransport{})
}
