package api

import (
	"context"
	"fmt"
)

// ChatTurnRequest is one conversational turn. SessionID is empty on
// the first turn of a topic; the server issues one in its reply.
type ChatTurnRequest struct {
	Username   string `json:"username"`
	Query      string `json:"query"`
	IsNewTopic bool   `json:"is_new_topic"`
	SessionID  string `json:"session_id,omitempty"`
}

// ChatTurnResponse carries the generated reply plus the session id to
// use on subsequent turns. ProcessingDetails is opaque pedagogical
// metadata (cognitive-level indicators) passed through for display.
type ChatTurnResponse struct {
	Response          string         `json:"response"`
	SessionID         string         `json:"session_id"`
	Username          string         `json:"username"`
	Timestamp         string         `json:"timestamp"`
	ProcessingDetails map[string]any `json:"processing_details,omitempty"`
}

// ChatTurn sends one turn to the tutoring flow.
func (c *Client) ChatTurn(ctx context.Context, req ChatTurnRequest) (*ChatTurnResponse, error) {
	var resp ChatTurnResponse
	if err := c.post(ctx, "/socratic-flow/chat", nil, req, &resp); err != nil {
		return nil, err
	}
	if resp.Response == "" {
		return nil, &InvalidResponseError{Err: fmt.Errorf("empty response text")}
	}
	return &resp, nil
}

// EndChatSession tells the backend a conversation is over. Callers
// treat failures as best-effort: the local reset proceeds regardless.
func (c *Client) EndChatSession(ctx context.Context, sessionID string) error {
	body := struct {
		SessionID string `json:"session_id"`
	}{sessionID}
	return c.post(ctx, "/socratic-flow/end-session", nil, body, nil)
}

// LegacyChatRequest is the older chat endpoint's shape, which carries
// the learning settings on every turn.
type LegacyChatRequest struct {
	Query      string `json:"query"`
	Grade      int    `json:"grade"`
	Difficulty int    `json:"difficulty"`
	Subject    string `json:"subject"`
	SessionID  string `json:"session_id,omitempty"`
}

// LegacyChatTurn sends a turn through the legacy chat path. First
// turns go to the base endpoint; follow-ups to the session's follow-up
// endpoint.
func (c *Client) LegacyChatTurn(ctx context.Context, req LegacyChatRequest) (*ChatTurnResponse, error) {
	path := "/chat-new/chat/"
	if req.SessionID != "" {
		path = fmt.Sprintf("/chat-new/chat/%s/follow-up", req.SessionID)
	}
	var resp ChatTurnResponse
	if err := c.post(ctx, path, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
