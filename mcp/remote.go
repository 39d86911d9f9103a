package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	ai "github.com/omnigen-ai/omnigen"
	"github.com/omnigen-ai/omnigen/tool"
)

// RemoteTools provides access to the tools of an MCP server. Tool calls are
// proxied to the server; the tool list is cached locally and can be updated
// with [RemoteTools.Refresh].
//
// RemoteTools is safe for concurrent use.
type RemoteTools struct {
	client *client.Client
	mu     sync.RWMutex
	tools  map[string]ai.Tool
}

// Connect creates a RemoteTools connected to an MCP server via stdio.
// The command is the path to the MCP server executable, and args are
// passed to it.
//
// Example:
//
//	remote, err := mcp.Connect(ctx, "./my-mcp-server", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer remote.Close()
func Connect(ctx context.Context, command string, env []string, args ...string) (*RemoteTools, error) {
	c, err := client.NewStdioMCPClient(command, env, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to create MCP client: %w", err)
	}

	return newRemoteTools(ctx, c)
}

// ConnectSSE creates a RemoteTools connected to an MCP server via SSE.
func ConnectSSE(ctx context.Context, baseURL string) (*RemoteTools, error) {
	c, err := client.NewSSEMCPClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSE MCP client: %w", err)
	}

	return newRemoteTools(ctx, c)
}

// NewRemoteToolsFromClient creates a RemoteTools from an existing MCP
// client. The client is started, the session initialized, and the tool
// list fetched.
func NewRemoteToolsFromClient(ctx context.Context, c *client.Client) (*RemoteTools, error) {
	return newRemoteTools(ctx, c)
}

func newRemoteTools(ctx context.Context, c *client.Client) (*RemoteTools, error) {
	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start MCP client: %w", err)
	}

	_, err := c.Initialize(ctx, mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    "omnigen-mcp-client",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to initialize MCP session: %w", err)
	}

	r := &RemoteTools{
		client: c,
		tools:  make(map[string]ai.Tool),
	}

	if err := r.Refresh(ctx); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}

	return r, nil
}

// Close closes the connection to the MCP server.
func (r *RemoteTools) Close() error {
	return r.client.Close()
}

// Refresh fetches the current list of tools from the MCP server.
func (r *RemoteTools) Refresh(ctx context.Context) error {
	result, err := r.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tools = make(map[string]ai.Tool, len(result.Tools))
	for _, t := range result.Tools {
		r.tools[t.Name] = FromMCPTool(t)
	}

	return nil
}

// Tools returns the declarations of all tools available from the server.
func (r *RemoteTools) Tools() []ai.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]ai.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		tools = append(tools, t)
	}
	return tools
}

// Get retrieves a tool declaration by name.
func (r *RemoteTools) Get(name string) (ai.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tools[name]
	return t, ok
}

// Has returns true if the server exposes a tool with the given name.
func (r *RemoteTools) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns the names of all available tools.
func (r *RemoteTools) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Len returns the number of available tools.
func (r *RemoteTools) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Execute calls a tool on the remote MCP server. Transport failures are
// reported as failed results rather than errors so a generation loop can
// feed them back to the model.
func (r *RemoteTools) Execute(ctx context.Context, call ai.ToolCall) (ai.ToolResult, error) {
	req := ToMCPCallToolRequest(call)

	result, err := r.client.CallTool(ctx, req)
	if err != nil {
		return ai.ToolResult{
			ToolCallID: call.ID,
			Error:      err.Error(),
		}, nil
	}

	return FromMCPCallToolResult(call.ID, result), nil
}

// Install registers every remote tool into a local registry as a callable
// proxy. The remote schema is carried through as the tool's raw parameter
// schema; argument validation happens on the server.
//
// Existing registrations with the same name are overwritten.
func (r *RemoteTools) Install(registry *tool.Registry) {
	for _, decl := range r.Tools() {
		registry.Set(r.proxy(decl))
	}
}

func (r *RemoteTools) proxy(decl ai.Tool) *tool.Tool {
	name := decl.Name
	return &tool.Tool{
		Name:          name,
		Description:   decl.Description,
		RawParameters: decl.Parameters,
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			data, err := json.Marshal(args)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal arguments: %w", err)
			}
			result, err := r.Execute(ctx, ai.ToolCall{Name: name, Arguments: string(data)})
			if err != nil {
				return nil, err
			}
			if result.Failed() {
				return nil, errors.New(result.Error)
			}
			return result.Result, nil
		},
	}
}
