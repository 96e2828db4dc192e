// Package mcpserver exposes the artifact checker as MCP tools over stdio,
// so coding agents can gate pipeline stages on a passing validation instead
// of scraping console output.
package mcpserver

import (
	"context"
	"fmt"
	"os"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"mgcheck/internal/check"
	"mgcheck/internal/logging"
	"mgcheck/internal/wiring"
	"mgcheck/internal/workflow"
)

// Server wraps the MCP SDK server. Checks are synchronous and read-only, so
// tools run inline; there is no session state to manage.
type Server struct {
	MCPServer *sdkmcp.Server

	// BaseDir and WorkflowPath are the defaults a tool call falls back to
	// when its input leaves them empty.
	BaseDir      string
	WorkflowPath string
}

// NewServer creates an MCP server with the validation tools registered.
// Empty baseDir defaults to the current working directory so relative trees
// resolve the same way the CLI resolves them.
func NewServer(baseDir, workflowPath string) *Server {
	if baseDir == "" {
		baseDir, _ = os.Getwd()
	}
	if workflowPath == "" {
		workflowPath = workflow.DefaultFilename
	}
	s := &Server{BaseDir: baseDir, WorkflowPath: workflowPath}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "mgcheck", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "check_events",
		Description: "Validate the event-generation artifact tree. Returns the structured summary with per-process missing artifacts and the overall verdict.",
	}, s.handleCheckEvents)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "inspect_downstream",
		Description: "Check only the directory layout the Delphes-reading stage expects under the configured input root.",
	}, s.handleInspectDownstream)
}

// --- Tool input/output types ---

type checkEventsInput struct {
	BaseDir  string `json:"base_dir,omitempty" jsonschema:"base directory to validate (default: server base dir)"`
	Parallel int    `json:"parallel,omitempty" jsonschema:"process directories to validate concurrently (default 1 = serial)"`
}

type checkEventsOutput struct {
	Pass         bool           `json:"pass"`
	TotalChecked int            `json:"total_checked"`
	TotalFailed  int            `json:"total_failed"`
	Summary      *check.Summary `json:"summary"`
}

type inspectDownstreamInput struct {
	Workflow string `json:"workflow,omitempty" jsonschema:"workflow configuration file path (default: server workflow path)"`
}

type inspectDownstreamOutput struct {
	Downstream check.Downstream `json:"downstream"`
}

// --- Tool handlers ---

func (s *Server) handleCheckEvents(_ context.Context, _ *sdkmcp.CallToolRequest, input checkEventsInput) (*sdkmcp.CallToolResult, checkEventsOutput, error) {
	base := input.BaseDir
	if base == "" {
		base = s.BaseDir
	}

	logging.New("mcp").Info("check_events", "base_dir", base, "parallel", input.Parallel)
	sum, err := wiring.Run(wiring.Options{
		BaseDir:      base,
		WorkflowPath: s.WorkflowPath,
		Parallel:     input.Parallel,
	})
	if err != nil {
		return nil, checkEventsOutput{}, fmt.Errorf("check_events: %w", err)
	}

	return nil, checkEventsOutput{
		Pass:         sum.Pass,
		TotalChecked: sum.TotalChecked,
		TotalFailed:  sum.TotalFailed,
		Summary:      sum,
	}, nil
}

func (s *Server) handleInspectDownstream(_ context.Context, _ *sdkmcp.CallToolRequest, input inspectDownstreamInput) (*sdkmcp.CallToolResult, inspectDownstreamOutput, error) {
	path := input.Workflow
	if path == "" {
		path = s.WorkflowPath
	}
	cfg, err := workflow.LoadFromPath(path)
	if err != nil {
		return nil, inspectDownstreamOutput{}, fmt.Errorf("inspect_downstream: %w", err)
	}

	d := check.CheckDownstream(*cfg, check.NopTrace())
	return nil, inspectDownstreamOutput{Downstream: d}, nil
}
