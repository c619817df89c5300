// Package mcp exposes the arena store as MCP tools over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/ludus/internal/storage"
	"github.com/louisbranch/ludus/internal/telemetry"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Ludus Arena MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server backed by the given store. Write
// tools emit audit events through the emitter; a nil emitter disables
// auditing.
func New(store storage.Store, emitter *telemetry.Emitter) (*Server, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerTools(mcpServer, store, emitter)

	return &Server{mcpServer: mcpServer}, nil
}

func registerTools(server *mcp.Server, store storage.Store, emitter *telemetry.Emitter) {
	mcp.AddTool(server, ArenaCreateTool(), ArenaCreateHandler(store, emitter))
	mcp.AddTool(server, ArenaListTool(), ArenaListHandler(store))
	mcp.AddTool(server, EventCreateTool(), EventCreateHandler(store, emitter))
	mcp.AddTool(server, EventDeleteTool(), EventDeleteHandler(store, emitter))
	mcp.AddTool(server, EventDetailsTool(), EventDetailsHandler(store))
	mcp.AddTool(server, ParticipantUpsertTool(), ParticipantUpsertHandler(store, emitter))
	mcp.AddTool(server, ParticipantListTool(), ParticipantListHandler(store))
	mcp.AddTool(server, BeastAddTool(), BeastAddHandler(store, emitter))
	mcp.AddTool(server, BeastListTool(), BeastListHandler(store))
	mcp.AddTool(server, BattleResultRecordTool(), BattleResultRecordHandler(store, emitter))
	mcp.AddTool(server, SummaryParticipantsTool(), SummaryParticipantsHandler(store))
	mcp.AddTool(server, SummaryBeastsTool(), SummaryBeastsHandler(store))
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path, not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
