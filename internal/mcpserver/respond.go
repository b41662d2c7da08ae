// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/failure"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/paginate"
)

// ok wraps text in a success envelope, applying the character ceiling as the
// last step so even a single oversized item is bounded.
func (s *Server) ok(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: paginate.Truncate(text, s.opts.CharacterLimit)},
		},
	}
}

// okJSON serializes payload as indented JSON and wraps it like ok.
func (s *Server) okJSON(payload any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return s.fail("", failure.Internalf("serializing response: %v", err))
	}
	return s.ok(string(b)), nil
}

// fail converts a pipeline failure into the transport's error shape.
//
// Default variant: an in-band envelope with IsError set, carrying the tool
// name, likely cause, and suggested alternative. Strict variant: a JSON-RPC
// wire error whose code comes from the failure's ProtocolCode, so the client
// sees -32602/-32601/-32603 rather than an opaque code. Internal failures
// always take the protocol path and are the only ones logged as server
// faults; expected failures are the caller's to fix and stay out of the
// operator log.
func (s *Server) fail(tool string, f *failure.Failure) (*mcp.CallToolResult, error) {
	if !f.Expected() {
		slog.Error("tool call failed", "tool", tool, "kind", f.Kind, "error", f.Message)
	}
	if f.Kind == failure.Internal {
		// Generic message only: no internal paths, stacks, or credentials.
		msg := "internal error; see server log"
		if tool != "" {
			msg = fmt.Sprintf("internal error handling %s; see server log", tool)
		}
		return nil, &jsonrpc.Error{
			Code:    int64(f.ProtocolCode()),
			Message: msg,
		}
	}
	if s.opts.StrictProtocolErrors {
		return nil, &jsonrpc.Error{
			Code:    int64(f.ProtocolCode()),
			Message: f.Error(),
		}
	}

	msg := f.Message
	if tool != "" {
		msg = fmt.Sprintf("%s: %s", tool, f.Message)
	}
	if f.Hint != "" {
		msg += "\n\n" + f.Hint
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}, nil
}
