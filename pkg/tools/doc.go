// Package tools provides the tool catalogue and MCP (Model Context Protocol)
// integration.
//
// It is organized into sub-packages:
//   - [github.com/rd4r3/ai-incident-analyzer/pkg/tools/toolbox] — Tool type, argument schemas, and the ToolBox dispatcher for registering, listing, and calling tools
//   - [github.com/rd4r3/ai-incident-analyzer/pkg/tools/incidenttools] — the incident-analysis tool catalogue backed by the remote incident API
//   - [github.com/rd4r3/ai-incident-analyzer/pkg/tools/mcpserver] — MCP server using the official MCP Go SDK for exposing the catalogue over stdio
//
// The toolbox sub-package is the foundation layer: every invocation, whether
// it arrives over MCP or from the CLI, goes through ToolBox.Call so argument
// validation and error normalization behave identically on both paths.
package tools
