// Package chat holds the client-side state machine for one Socratic
// conversation: an ordered transcript, a running session id, and a
// single in-flight turn at a time.
package chat

import (
	"errors"
	"strings"
	"time"
)

// Sender identifies who produced a message.
type Sender int

const (
	SenderUser Sender = iota
	SenderAssistant
)

// Message is one transcript entry.
type Message struct {
	Sender    Sender
	Text      string
	Timestamp time.Time

	// Details is optional processing metadata attached to assistant
	// replies (cognitive-level indicators from the backend).
	Details map[string]any
}

// Status is the controller's current state.
type Status int

const (
	// StatusIdle: ready to accept a new turn.
	StatusIdle Status = iota
	// StatusAwaitingReply: a turn is in flight; submits are rejected.
	StatusAwaitingReply
	// StatusError: the last turn failed; the user message is kept.
	StatusError
)

// ErrEmptyInput is returned when a submitted turn is empty or
// whitespace-only. No request is made.
var ErrEmptyInput = errors.New("message is empty")

// ErrTurnInFlight is returned when a turn is submitted while another
// is still awaiting its reply.
var ErrTurnInFlight = errors.New("a turn is already in flight")

// TurnRequest is what the caller must send to the backend for the
// turn begun by BeginTurn. Gen ties the eventual reply back to the
// controller state that issued it; replies with a stale Gen are
// dropped (the user reset or started a new topic in the meantime).
type TurnRequest struct {
	Query     string
	SessionID string
	Gen       int
}

// Controller sequences conversational turns. It is not safe for
// concurrent use; the single-threaded UI event loop drives it.
type Controller struct {
	status     Status
	transcript []Message
	sessionID  string
	errMsg     string
	gen        int

	now func() time.Time
}

// New creates an idle Controller. A session id restored from local
// storage may be supplied to resume a previous conversation.
func New(sessionID string) *Controller {
	return &Controller{
		sessionID: sessionID,
		now:       time.Now,
	}
}

// Status returns the current state.
func (c *Controller) Status() Status { return c.status }

// SessionID returns the running session id, or "" before the first
// successful turn.
func (c *Controller) SessionID() string { return c.sessionID }

// Transcript returns the ordered message sequence. The returned slice
// must not be mutated.
func (c *Controller) Transcript() []Message { return c.transcript }

// Err returns the recorded flow-level error message, if any.
func (c *Controller) Err() string { return c.errMsg }

// BeginTurn validates and registers a new user turn. The user message
// is appended optimistically; the caller sends the returned request to
// the backend and feeds the outcome to ApplyReply or ApplyFailure.
func (c *Controller) BeginTurn(text string) (TurnRequest, error) {
	if strings.TrimSpace(text) == "" {
		return TurnRequest{}, ErrEmptyInput
	}
	if c.status == StatusAwaitingReply {
		return TurnRequest{}, ErrTurnInFlight
	}

	c.errMsg = ""
	c.transcript = append(c.transcript, Message{
		Sender:    SenderUser,
		Text:      text,
		Timestamp: c.now(),
	})
	c.status = StatusAwaitingReply

	return TurnRequest{
		Query:     text,
		SessionID: c.sessionID,
		Gen:       c.gen,
	}, nil
}

// ApplyReply records a successful backend reply. Replies carrying a
// stale generation (issued before a reset) are discarded: the reported
// bool is false and no state changes.
func (c *Controller) ApplyReply(gen int, text, sessionID string, details map[string]any) bool {
	if gen != c.gen {
		return false
	}

	c.transcript = append(c.transcript, Message{
		Sender:    SenderAssistant,
		Text:      text,
		Timestamp: c.now(),
		Details:   details,
	})
	if sessionID != "" {
		c.sessionID = sessionID
	}
	c.status = StatusIdle
	c.errMsg = ""
	return true
}

// ApplyFailure records a failed turn. The optimistic user message is
// kept (not rolled back). When the failure text indicates an
// authentication problem, the session id is cleared so the next turn
// starts fresh. Stale failures are discarded like stale replies.
func (c *Controller) ApplyFailure(gen int, err error) bool {
	if gen != c.gen {
		return false
	}

	c.status = StatusError
	if err != nil {
		c.errMsg = err.Error()
		if strings.Contains(strings.ToLower(err.Error()), "authentication") {
			c.sessionID = ""
		}
	} else {
		c.errMsg = "request failed"
	}
	return true
}

// Reset starts a new topic: transcript emptied, session id and error
// cleared, state Idle. It returns the session id that was active so
// the caller can notify the backend best-effort; an empty return means
// there is nothing to end. Any in-flight reply is invalidated.
func (c *Controller) Reset() (endedSession string) {
	endedSession = c.sessionID
	c.transcript = nil
	c.sessionID = ""
	c.errMsg = ""
	c.status = StatusIdle
	c.gen++
	return endedSession
}
