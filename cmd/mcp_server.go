package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/saptools/sapgui-cli/internal/session"
)

// mcpServer exposes the automation core over the Model Context Protocol.
// One attached session is shared by all tools; the mutex serializes remote
// access, since the scripting interface is single-threaded per session.
type mcpServer struct {
	session *session.Session
	mu      sync.Mutex
	mcp     *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer attaches to the configured session and registers the tools.
func newMCPServer() (*mcpServer, error) {
	s, err := attachSession()
	if err != nil {
		return nil, err
	}

	srv := &mcpServer{session: s}
	srv.mcp = mcpserver.NewMCPServer(
		"sapgui-cli",
		"1.0.0",
	)
	srv.registerTools()
	return srv, nil
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

func (s *mcpServer) close() {
	s.session.Close()
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("start_transaction",
			mcp.WithDescription("Navigate to a transaction by code (e.g. 'SE16H', 'FBL1N'). Returns the resulting status bar message."),
			mcp.WithString("code", mcp.Description("Transaction code"), mcp.Required()),
		),
		s.handleStartTransaction,
	)

	s.mcp.AddTool(
		mcp.NewTool("set_field_value",
			mcp.WithDescription("Write a screen field. 'name' is the semantic field name; the control type is probed automatically. Set 'by_id' to address the control directly."),
			mcp.WithString("name", mcp.Description("Field name, or full control address with by_id"), mcp.Required()),
			mcp.WithString("value", mcp.Description("Value to write"), mcp.Required()),
			mcp.WithBoolean("by_id", mcp.Description("Treat name as a full control address")),
		),
		s.handleSetFieldValue,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_field_value",
			mcp.WithDescription("Read a screen field by semantic name, or by full control address with by_id."),
			mcp.WithString("name", mcp.Description("Field name, or full control address with by_id"), mcp.Required()),
			mcp.WithBoolean("by_id", mcp.Description("Treat name as a full control address")),
		),
		s.handleGetFieldValue,
	)

	s.mcp.AddTool(
		mcp.NewTool("press_button",
			mcp.WithDescription("Press a button by semantic name, or by full control address with by_id (toolbar buttons like 'wnd[0]/tbar[1]/btn[8]' only have addresses). Redraws the screen."),
			mcp.WithString("name", mcp.Description("Button name, or full control address with by_id"), mcp.Required()),
			mcp.WithBoolean("by_id", mcp.Description("Treat name as a full control address")),
		),
		s.handlePressButton,
	)

	s.mcp.AddTool(
		mcp.NewTool("send_enter",
			mcp.WithDescription("Send a virtual key to the current window. Default is Enter; 'key' accepts names like 'f8' (execute), 'back', 'cancel', or a numeric code."),
			mcp.WithString("key", mcp.Description("Virtual key name or code (default: enter)")),
		),
		s.handleSendEnter,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_screen_state",
			mcp.WithDescription("Describe the current screen: session context, status bar, and every control with its address, kind, text and editability. Call after navigation to decide the next action."),
		),
		s.handleGetScreenState,
	)
}

// toolText serializes v to YAML for an MCP text result.
func toolText(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(b))
}

func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func boolParam(params map[string]interface{}, key string) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return false
}

func (s *mcpServer) handleStartTransaction(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := stringParam(request.GetArguments(), "code")
	if code == "" {
		return mcp.NewToolResultError("code is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.StartTransaction(code); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	status, err := s.session.StatusError()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("transaction started but status unreadable: %v", err)), nil
	}
	return toolText(TxResult{OK: status == "", Action: "start", Code: code, Status: status}), nil
}

func (s *mcpServer) handleSetFieldValue(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name")
	value := stringParam(params, "value")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if boolParam(params, "by_id") {
		err = s.session.SetFieldByID(name, value)
	} else {
		err = s.session.SetField(name, value)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolText(SetResult{OK: true, Action: "set", Target: name, Value: value}), nil
}

func (s *mcpServer) handleGetFieldValue(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var value string
	var err error
	if boolParam(params, "by_id") {
		value, err = s.session.GetFieldByID(name)
	} else {
		value, err = s.session.GetField(name)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(value), nil
}

func (s *mcpServer) handlePressButton(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	name := stringParam(params, "name")
	if name == "" {
		return mcp.NewToolResultError("name is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if boolParam(params, "by_id") {
		err = s.session.PressButtonByID(name)
	} else {
		err = s.session.PressButton(name)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolText(SetResult{OK: true, Action: "press", Target: name}), nil
}

func (s *mcpServer) handleSendEnter(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := stringParam(request.GetArguments(), "key")
	if key == "" {
		key = "enter"
	}
	code, err := parseVKey(key)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.session.SendVKey(code, ""); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toolText(VKeyResult{OK: true, Key: key, Code: code, Window: "wnd[0]"}), nil
}

func (s *mcpServer) handleGetScreenState(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text, err := s.session.DescribeScreen()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}
