package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/deskpilot/deskpilot/internal/ax"
	"github.com/deskpilot/deskpilot/internal/config"
	"github.com/deskpilot/deskpilot/internal/output"
	"github.com/deskpilot/deskpilot/internal/plan"
	"github.com/deskpilot/deskpilot/internal/platform"
	"github.com/deskpilot/deskpilot/internal/session"
	"github.com/deskpilot/deskpilot/internal/version"
)

// mcpServer wraps the MCP server with the platform provider and the
// assistant session.
type mcpServer struct {
	provider   *platform.Provider
	cfg        config.Config
	performer  *ax.Performer
	session    *session.Session
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all deskpilot tools.
func newMCPServer() (*mcpServer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg.LogLevel)
	performer := ax.NewPerformer(provider)
	client := plan.NewClient(cfg.PlannerURL, cfg.PlannerTimeout)

	s := &mcpServer{
		provider:  provider,
		cfg:       cfg,
		performer: performer,
		session:   session.New(client, performer, capturer(provider, cfg), log),
	}

	s.mcp = mcpserver.NewMCPServer("deskpilot", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("snapshot",
			mcp.WithDescription("Capture the focused window's interactive elements (role, title, enabled, frame)"),
			mcp.WithNumber("limit", mcp.Description("Max elements to capture")),
			mcp.WithNumber("depth", mcp.Description("Max traversal depth")),
		),
		s.handleSnapshot,
	)

	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click the element whose title matches the label, with a synthetic-mouse fallback"),
			mcp.WithString("label", mcp.Description("Free-text label to resolve"), mcp.Required()),
			mcp.WithBoolean("confirm", mcp.Description("Proceed even when the label looks destructive")),
		),
		s.handleClick,
	)

	s.mcp.AddTool(
		mcp.NewTool("type",
			mcp.WithDescription("Type text into the text-input element matching the label"),
			mcp.WithString("text", mcp.Description("Text to enter"), mcp.Required()),
			mcp.WithString("label", mcp.Description("Free-text label to resolve"), mcp.Required()),
			mcp.WithBoolean("confirm", mcp.Description("Proceed even when the label looks destructive")),
		),
		s.handleType,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Move keyboard focus to the element matching the label"),
			mcp.WithString("label", mcp.Description("Free-text label to resolve"), mcp.Required()),
			mcp.WithBoolean("confirm", mcp.Description("Proceed even when the label looks destructive")),
		),
		s.handleFocus,
	)

	s.mcp.AddTool(
		mcp.NewTool("ask",
			mcp.WithDescription("Send a natural-language instruction to the planning service and enact its decision. The words \"confirm\" and \"cancel\" resolve a held destructive action."),
			mcp.WithString("instruction", mcp.Description("What to do, in plain language"), mcp.Required()),
		),
		s.handleAsk,
	)
}

// resultToText serializes an action result to YAML for the MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}

func (s *mcpServer) handleSnapshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	limit := IntParam(params, "limit", s.cfg.SnapshotLimit)
	depth := IntParam(params, "depth", s.cfg.SnapshotDepth)

	s.providerMu.Lock()
	nodes, err := ax.Capture(s.provider.Accessor, limit, depth)
	s.providerMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.SnapshotResult{
		TS:       time.Now().Unix(),
		Count:    len(nodes),
		Elements: nodes,
	})), nil
}

func (s *mcpServer) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.performTool(ax.Action{
		Name:   ax.ActionClick,
		Target: StringParam(params, "label", ""),
	}, BoolParam(params, "confirm", false))
}

func (s *mcpServer) handleType(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.performTool(ax.Action{
		Name:   ax.ActionType,
		Target: StringParam(params, "label", ""),
		Text:   StringParam(params, "text", ""),
	}, BoolParam(params, "confirm", false))
}

func (s *mcpServer) handleFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.performTool(ax.Action{
		Name:   ax.ActionFocus,
		Target: StringParam(params, "label", ""),
	}, BoolParam(params, "confirm", false))
}

func (s *mcpServer) performTool(act ax.Action, confirmed bool) (*mcp.CallToolResult, error) {
	if act.Target == "" {
		return mcp.NewToolResultError("label is required"), nil
	}
	s.providerMu.Lock()
	err := s.performer.Perform(act, confirmed)
	s.providerMu.Unlock()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultToText(output.ActionResult{
		Status: "ok",
		Action: act.Name,
		Target: act.Target,
		Detail: act.Describe(),
	})), nil
}

func (s *mcpServer) handleAsk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instruction := StringParam(request.GetArguments(), "instruction", "")
	if instruction == "" {
		return mcp.NewToolResultError("instruction is required"), nil
	}

	res, err := s.session.Submit(ctx, instruction)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out := output.AskResult{Status: string(res.Status), Response: res.Text}
	if res.Action != nil {
		out.Action = res.Action.Describe()
	}
	if res.Pending != nil {
		out.Pending = res.Pending.Describe()
	}
	if res.Status == session.StatusFailed {
		return mcp.NewToolResultError(resultToText(out)), nil
	}
	return mcp.NewToolResultText(resultToText(out)), nil
}
