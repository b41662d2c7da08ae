// Copyright 2026 The Push Chain MCP Server Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements the MCP (Model Context Protocol) server that
// exposes Push Chain documentation and SDK introspection as tools and
// resources over stdio transport.
//
// Every tool call runs the same pipeline: validate arguments against the
// declared schema, execute the lookup, bound the result (item count, then
// character ceiling), and wrap it in a response envelope. Unknown tool names
// never reach a pipeline; the protocol library rejects them during dispatch.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kshitij-hash/push-chain-mcp-server/internal/lookup"
	"github.com/kshitij-hash/push-chain-mcp-server/internal/paginate"
)

// Options tune the server's response handling.
type Options struct {
	// CharacterLimit is the hard ceiling on serialized response text.
	// Zero selects paginate.DefaultCharacterLimit.
	CharacterLimit int

	// StrictProtocolErrors raises typed protocol errors (with JSON-RPC code
	// categories) for expected failures instead of in-band error envelopes.
	StrictProtocolErrors bool
}

// Server wraps the MCP server with the tool and resource handlers.
type Server struct {
	mcp    *mcp.Server
	engine *lookup.Engine
	opts   Options
}

// New creates an MCP server with all Push Chain tools and resources
// registered against the given lookup engine.
func New(version string, engine *lookup.Engine, opts Options) *Server {
	if opts.CharacterLimit <= 0 {
		opts.CharacterLimit = paginate.DefaultCharacterLimit
	}
	s := &Server{
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    "push-chain-mcp-server",
			Title:   "Push Chain Documentation & SDK",
			Version: version,
		}, nil),
		engine: engine,
		opts:   opts,
	}
	s.registerTools()
	s.registerResources()
	return s
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *mcp.Server { return s.mcp }

// Run serves MCP on the given transport. It blocks until the client
// disconnects or the context is cancelled.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcp.Run(ctx, transport)
}
