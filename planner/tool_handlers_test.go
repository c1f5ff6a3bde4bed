package planner

import (
	"context"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func TestParseToolKind(t *testing.T) {
	tests := []struct {
		name     string
		expected ToolKind
	}{
		{FindLocalPlacesKey, FindLocalPlaces},
		{CreateMapsQueryKey, CreateMapsQuery},
		{ExtractEventDataKey, ExtractEventData},
		{CreateCalendarEventKey, CreateCalendarEvent},
	}

	for _, tc := range tests {
		kind, err := parseToolKind(tc.name)
		if err != nil {
			t.Errorf("unexpected error for %q: %s", tc.name, err)
		}
		if kind != tc.expected {
			t.Errorf("parseToolKind(%q) = %d, expected %d", tc.name, kind, tc.expected)
		}
	}

	if _, err := parseToolKind("delete_everything"); err == nil {
		t.Error("expected an error for an unknown tool name")
	}
}

func TestGetToolOutputsUnknownToolFailsFast(t *testing.T) {
	dg := newMockDiscordSession(BOT_ID)
	p := newTestPlanner(dg)
	session := p.State.GetOrCreateSession("chan")

	toolCalls := []openai.ToolCall{
		{
			ID: "call-1",
			Function: openai.FunctionCall{
				Name:      "delete_everything",
				Arguments: "{}",
			},
		},
	}

	outputs, err := GetToolOutputs(context.Background(), toolCalls, "chan", session, p)
	if err == nil {
		t.Fatal("expected an error for an unrecognized tool name")
	}
	if outputs != nil {
		t.Errorf("expected no outputs on failure got %d", len(outputs))
	}
}

func TestGetToolOutputsFindLocalPlaces(t *testing.T) {
	client, server := newTestPlacesClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"places": [
				{
					"displayName": {"text": "The Patio"},
					"formattedAddress": "412 Emerson St, Palo Alto, CA",
					"googleMapsLinks": {"placeUri": "https://maps.google.com/?cid=1"}
				}
			]
		}`))
	})
	defer server.Close()

	dg := newMockDiscordSession(BOT_ID)
	p := newTestPlanner(dg)
	p.Places = client
	session := p.State.GetOrCreateSession("chan")

	toolCalls := []openai.ToolCall{
		{
			ID: "call-1",
			Function: openai.FunctionCall{
				Name:      FindLocalPlacesKey,
				Arguments: `{"query": "dinner near Stanford"}`,
			},
		},
	}

	outputs, err := GetToolOutputs(context.Background(), toolCalls, "chan", session, p)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(outputs) != 1 {
		t.Fatalf("expected 1 output got %d", len(outputs))
	}
	if outputs[0].Role != openai.ChatMessageRoleTool {
		t.Errorf("expected tool role got %q", outputs[0].Role)
	}
	if outputs[0].ToolCallID != "call-1" {
		t.Errorf("expected tool call id echoed got %q", outputs[0].ToolCallID)
	}
	if outputs[0].Content == "" {
		t.Error("expected non-empty tool output")
	}
}

func TestHandleCreateCalendarEventWithoutCalendar(t *testing.T) {
	dg := newMockDiscordSession(BOT_ID)
	p := newTestPlanner(dg)
	session := p.State.GetOrCreateSession("chan")

	funcArg := FuncArgs{
		ToolID:    "call-1",
		FuncName:  CreateCalendarEventKey,
		JsonValue: `{"title": "Birthday", "date": "March 5th", "time": "6 PM"}`,
	}

	output, err := handleCreateCalendarEvent(funcArg, "chan", session, p)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if output != "Calendar integration is not configured" {
		t.Errorf("expected configuration notice got %q", output)
	}
}
