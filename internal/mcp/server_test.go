package mcp

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestNewRequiresStore(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatal("expected error for nil store")
	}
}

// startServer serves the MCP server over an in-memory transport and
// returns a connected client session.
func startServer(t *testing.T, server *Server) *mcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "dev"}, nil)
	connectCtx, connectCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer connectCancel()
	session, err := client.Connect(connectCtx, clientTransport, nil)
	if err != nil {
		cancel()
		t.Fatalf("connect client: %v", err)
	}

	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		select {
		case err := <-serveErr:
			if err != nil {
				t.Errorf("serve returned error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("server did not stop after cancel")
		}
	})
	return session
}

func TestServerListsTools(t *testing.T) {
	store, emitter := newHandlerStore(t)
	server, err := New(store, emitter)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	session := startServer(t, server)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}

	expected := []string{
		"arena_create",
		"arena_list",
		"battle_result_record",
		"beast_add",
		"beast_list",
		"event_create",
		"event_delete",
		"event_details",
		"participant_list",
		"participant_upsert",
		"summary_beasts",
		"summary_participants",
	}
	actual := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		actual = append(actual, tool.Name)
	}
	sort.Strings(actual)
	if len(actual) != len(expected) {
		t.Fatalf("expected %d tools, got %d: %v", len(expected), len(actual), actual)
	}
	for i, name := range expected {
		if actual[i] != name {
			t.Fatalf("expected tool %q at position %d, got %q", name, i, actual[i])
		}
	}
}

// decodeStructuredContent decodes structured MCP content into the target type.
func decodeStructuredContent[T any](t *testing.T, value any) T {
	t.Helper()

	data, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var output T
	if err := json.Unmarshal(data, &output); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	return output
}

func TestServerExecutesToolCalls(t *testing.T) {
	store, emitter := newHandlerStore(t)
	server, err := New(store, emitter)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	session := startServer(t, server)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	arenaResult, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "arena_create",
		Arguments: map[string]any{
			"name":     "Римский Колизей",
			"city":     "Рим",
			"capacity": 50000,
		},
	})
	if err != nil {
		t.Fatalf("call arena_create: %v", err)
	}
	if arenaResult == nil || arenaResult.IsError {
		t.Fatalf("arena_create failed: %+v", arenaResult)
	}
	createdArena := decodeStructuredContent[ArenaCreateResult](t, arenaResult.StructuredContent)
	if createdArena.ID == 0 {
		t.Fatal("arena_create returned zero id")
	}

	eventResult, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "event_create",
		Arguments: map[string]any{
			"arena_id":   createdArena.ID,
			"date":       "0080-06-01",
			"event_type": "бой с варварами",
		},
	})
	if err != nil {
		t.Fatalf("call event_create: %v", err)
	}
	if eventResult == nil || eventResult.IsError {
		t.Fatalf("event_create failed: %+v", eventResult)
	}
	createdEvent := decodeStructuredContent[EventCreateResult](t, eventResult.StructuredContent)
	if createdEvent.Date != "0080-06-01" {
		t.Fatalf("unexpected event date %q", createdEvent.Date)
	}

	upsertResult, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "participant_upsert",
		Arguments: map[string]any{
			"event_id": createdEvent.ID,
			"type":     "gladiator",
			"count":    4,
			"strength": "experienced",
		},
	})
	if err != nil {
		t.Fatalf("call participant_upsert: %v", err)
	}
	if upsertResult == nil || upsertResult.IsError {
		t.Fatalf("participant_upsert failed: %+v", upsertResult)
	}

	detailsResult, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "event_details",
		Arguments: map[string]any{"event_id": createdEvent.ID},
	})
	if err != nil {
		t.Fatalf("call event_details: %v", err)
	}
	details := decodeStructuredContent[EventDetailsResult](t, detailsResult.StructuredContent)
	if details.Arena != "Римский Колизей" || details.City != "Рим" {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestServerReportsToolErrors(t *testing.T) {
	store, emitter := newHandlerStore(t)
	_, eventID := seedEventFixture(t, store)
	server, err := New(store, emitter)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	session := startServer(t, server)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "participant_upsert",
		Arguments: map[string]any{
			"event_id": eventID,
			"type":     "senator",
			"count":    1,
			"strength": "novice",
		},
	})
	if err != nil {
		t.Fatalf("call participant_upsert: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatalf("expected tool error for unknown participant type, got %+v", result)
	}
}
