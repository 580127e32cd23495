// Package mcpserver serves a toolbox.ToolBox over the MCP protocol using the
// official MCP Go SDK. The SDK owns framing, request correlation and
// per-request goroutines; this package binds the catalogue and the dispatch
// path to it.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rd4r3/ai-incident-analyzer/pkg/tools/toolbox"
)

// MCPServer serves tools over the MCP protocol.
type MCPServer struct {
	server *mcp.Server
	log    *slog.Logger
}

// New creates a new MCPServer with the given name and version. A nil logger
// discards all output.
func New(name, version string, log *slog.Logger) *MCPServer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    name,
		Version: version,
	}, nil)

	return &MCPServer{server: server, log: log}
}

// Register publishes every tool in the ToolBox. Calls are dispatched back
// through tb.Call so that validation and error normalization apply on every
// path.
func (s *MCPServer) Register(tb *toolbox.ToolBox) error {
	for _, t := range tb.Tools() {
		schema := t.Schema
		if schema == nil {
			schema = toolbox.NewSchema()
		}

		schemaJSON, err := json.Marshal(schema)
		if err != nil {
			return fmt.Errorf("mcpserver: marshal schema for %q: %w", t.Name, err)
		}

		s.server.AddTool(&mcp.Tool{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: json.RawMessage(schemaJSON),
		}, s.dispatch(tb, t.Name))
	}

	return nil
}

// Serve starts serving MCP requests. It reads requests from in and writes
// responses to out. It blocks until ctx is cancelled or the transport
// closes; in-flight calls are abandoned on cancellation.
func (s *MCPServer) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	transport := &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	}

	return s.run(ctx, transport)
}

// run starts the server with the given transport. Exported via Serve for
// production use; called directly by tests with InMemoryTransport.
func (s *MCPServer) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// dispatch wraps one catalogue entry as an SDK ToolHandler. A normalized
// ToolResult maps onto a CallToolResult with a single text block; a server
// fault is logged and returned to the SDK as an error so it surfaces as a
// protocol-level failure instead of a misleading tool error.
func (s *MCPServer) dispatch(tb *toolbox.ToolBox, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments
		if args == nil {
			args = json.RawMessage("{}")
		}

		result, err := tb.Call(ctx, name, args)
		if err != nil {
			s.log.ErrorContext(ctx, "tool dispatch fault", "tool", name, "error", err)
			return nil, err
		}

		if result.IsError {
			s.log.WarnContext(ctx, "tool call failed", "tool", name, "message", result.Content)
		} else {
			s.log.DebugContext(ctx, "tool call completed", "tool", name)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result.Content}},
			IsError: result.IsError,
		}, nil
	}
}

// nopWriteCloser wraps an io.Writer as an io.WriteCloser with a no-op Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
