package chat

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/raneesh-edsmartly/socratic/internal/api"
	"github.com/raneesh-edsmartly/socratic/internal/auth"
	chatflow "github.com/raneesh-edsmartly/socratic/internal/chat"
	"github.com/raneesh-edsmartly/socratic/internal/screen"
	"github.com/raneesh-edsmartly/socratic/internal/store"
	"github.com/raneesh-edsmartly/socratic/internal/ui/components"
	"github.com/raneesh-edsmartly/socratic/internal/ui/layout"
)

type replyMsg struct {
	gen  int
	resp *api.ChatTurnResponse
}

type failMsg struct {
	gen int
	err error
}

type sessionSavedMsg struct{}

// ChatScreen is the Socratic tutoring conversation.
type ChatScreen struct {
	api      *api.Client
	auth     *auth.Store
	sessions store.SessionRepo

	ctrl  *chatflow.Controller
	input components.TextInput

	// scroll is the number of transcript lines hidden below the
	// viewport; 0 means pinned to the latest message.
	scroll int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates the chat screen, resuming the conversation persisted from
// a previous run when one exists.
func New(client *api.Client, store *auth.Store, sessions store.SessionRepo) *ChatScreen {
	sessionID := ""
	if sessions != nil {
		sessionID, _ = sessions.ChatSessionID(context.Background())
	}

	return &ChatScreen{
		api:      client,
		auth:     store,
		sessions: sessions,
		ctrl:     chatflow.New(sessionID),
		input:    components.NewTextInput("Ask anything...", false, 500),
	}
}

func (c *ChatScreen) Title() string { return "Socratic Chat" }

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+N", Description: "New topic"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if !c.ctrl.ApplyReply(msg.gen, msg.resp.Response, msg.resp.SessionID, msg.resp.ProcessingDetails) {
			return c, nil
		}
		c.scroll = 0
		return c, c.persistSession(msg.resp.SessionID)

	case failMsg:
		c.ctrl.ApplyFailure(msg.gen, msg.err)
		return c, nil

	case sessionSavedMsg:
		return c, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return c, c.send()
		case "ctrl+n":
			return c, c.newTopic()
		case "pgup":
			c.scroll++
			return c, nil
		case "pgdown":
			if c.scroll > 0 {
				c.scroll--
			}
			return c, nil
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send begins a turn and dispatches the request.
func (c *ChatScreen) send() tea.Cmd {
	req, err := c.ctrl.BeginTurn(c.input.Value())
	if err != nil {
		// Empty input and turn-in-flight are silent: the transcript
		// already shows what is going on.
		return nil
	}
	c.input.Model.SetValue("")
	c.scroll = 0

	user := c.auth.User()
	if user == nil {
		c.ctrl.ApplyFailure(req.Gen, errors.New("authentication required"))
		return nil
	}

	client := c.api
	username := user.Username
	return func() tea.Msg {
		resp, err := client.ChatTurn(context.Background(), api.ChatTurnRequest{
			Username:   username,
			Query:      req.Query,
			IsNewTopic: req.SessionID == "",
			SessionID:  req.SessionID,
		})
		if err != nil {
			return failMsg{gen: req.Gen, err: err}
		}
		return replyMsg{gen: req.Gen, resp: resp}
	}
}

// newTopic resets the conversation. The backend is told best-effort;
// the local reset never waits on it.
func (c *ChatScreen) newTopic() tea.Cmd {
	ended := c.ctrl.Reset()
	c.scroll = 0

	client := c.api
	sessions := c.sessions
	return func() tea.Msg {
		if ended != "" {
			ctx, cancel := context.WithTimeout(context.Background(), endSessionTimeout)
			defer cancel()
			_ = client.EndChatSession(ctx, ended)
		}
		if sessions != nil {
			_ = sessions.ClearChatSession(context.Background())
		}
		return sessionSavedMsg{}
	}
}

func (c *ChatScreen) persistSession(sessionID string) tea.Cmd {
	if c.sessions == nil || sessionID == "" {
		return nil
	}
	sessions := c.sessions
	return func() tea.Msg {
		_ = sessions.SaveChatSession(context.Background(), sessionID)
		return sessionSavedMsg{}
	}
}
