package chat

import (
	"errors"
	"testing"
)

func TestBeginTurnRejectsEmptyInput(t *testing.T) {
	c := New("")

	for _, input := range []string{"", "   ", "\n\t "} {
		if _, err := c.BeginTurn(input); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("BeginTurn(%q): expected ErrEmptyInput, got %v", input, err)
		}
	}
	if len(c.Transcript()) != 0 {
		t.Errorf("expected empty transcript, got %d messages", len(c.Transcript()))
	}
}

func TestBeginTurnRejectsWhileInFlight(t *testing.T) {
	c := New("")

	if _, err := c.BeginTurn("what is photosynthesis?"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.BeginTurn("second question"); !errors.Is(err, ErrTurnInFlight) {
		t.Errorf("expected ErrTurnInFlight, got %v", err)
	}
}

func TestTranscriptAlternatesAndGrows(t *testing.T) {
	c := New("")

	turns := []string{"why is the sky blue?", "what about sunsets?", "so it scatters?"}
	for i, q := range turns {
		req, err := c.BeginTurn(q)
		if err != nil {
			t.Fatalf("turn %d: %v", i, err)
		}
		if !c.ApplyReply(req.Gen, "and what do you think?", "sess-1", nil) {
			t.Fatalf("turn %d: reply dropped", i)
		}
	}

	transcript := c.Transcript()
	if len(transcript) != 2*len(turns) {
		t.Fatalf("expected %d messages after %d turns, got %d", 2*len(turns), len(turns), len(transcript))
	}
	for i, m := range transcript {
		wantSender := SenderUser
		if i%2 == 1 {
			wantSender = SenderAssistant
		}
		if m.Sender != wantSender {
			t.Errorf("message %d: wrong sender", i)
		}
	}
}

func TestSessionIDAdoptedFromFirstReply(t *testing.T) {
	c := New("")

	req, _ := c.BeginTurn("hello")
	if req.SessionID != "" {
		t.Errorf("first turn should carry no session id, got %q", req.SessionID)
	}
	c.ApplyReply(req.Gen, "hi", "sess-42", nil)

	req2, _ := c.BeginTurn("next")
	if req2.SessionID != "sess-42" {
		t.Errorf("expected session id sess-42 on follow-up, got %q", req2.SessionID)
	}
}

func TestRestoredSessionIDIsUsed(t *testing.T) {
	c := New("restored-7")

	req, _ := c.BeginTurn("continue where we left off")
	if req.SessionID != "restored-7" {
		t.Errorf("expected restored session id, got %q", req.SessionID)
	}
}

func TestFailureKeepsUserMessage(t *testing.T) {
	c := New("")

	req, _ := c.BeginTurn("hello")
	c.ApplyFailure(req.Gen, errors.New("server error (HTTP 500)"))

	if c.Status() != StatusError {
		t.Errorf("expected StatusError, got %v", c.Status())
	}
	if len(c.Transcript()) != 1 {
		t.Errorf("optimistic user message should be kept, transcript has %d", len(c.Transcript()))
	}
	if c.Err() == "" {
		t.Error("expected error message to be recorded")
	}

	// A new turn is allowed after a failure.
	if _, err := c.BeginTurn("try again"); err != nil {
		t.Errorf("expected retry to be allowed, got %v", err)
	}
}

func TestAuthFailureClearsSessionID(t *testing.T) {
	c := New("")
	req, _ := c.BeginTurn("hello")
	c.ApplyReply(req.Gen, "hi", "sess-1", nil)

	req2, _ := c.BeginTurn("more")
	c.ApplyFailure(req2.Gen, errors.New("Authentication required"))

	if c.SessionID() != "" {
		t.Errorf("auth failure should clear session id, got %q", c.SessionID())
	}

	req3, _ := c.BeginTurn("again")
	if req3.SessionID != "" {
		t.Errorf("next turn should start a fresh session, got %q", req3.SessionID)
	}
}

func TestNonAuthFailureKeepsSessionID(t *testing.T) {
	c := New("")
	req, _ := c.BeginTurn("hello")
	c.ApplyReply(req.Gen, "hi", "sess-1", nil)

	req2, _ := c.BeginTurn("more")
	c.ApplyFailure(req2.Gen, errors.New("timeout"))

	if c.SessionID() != "sess-1" {
		t.Errorf("non-auth failure should keep session id, got %q", c.SessionID())
	}
}

func TestResetClearsEverything(t *testing.T) {
	c := New("")
	req, _ := c.BeginTurn("hello")
	c.ApplyReply(req.Gen, "hi", "sess-1", nil)

	ended := c.Reset()
	if ended != "sess-1" {
		t.Errorf("Reset should report the ended session, got %q", ended)
	}
	if len(c.Transcript()) != 0 || c.SessionID() != "" || c.Status() != StatusIdle {
		t.Error("Reset should clear transcript, session id, and status")
	}
}

func TestResetWithoutSessionReportsEmpty(t *testing.T) {
	c := New("")
	if ended := c.Reset(); ended != "" {
		t.Errorf("expected no ended session, got %q", ended)
	}
}

func TestStaleReplyDroppedAfterReset(t *testing.T) {
	c := New("")
	req, _ := c.BeginTurn("hello")
	c.Reset()

	if c.ApplyReply(req.Gen, "late reply", "sess-9", nil) {
		t.Error("reply from before the reset should be dropped")
	}
	if len(c.Transcript()) != 0 {
		t.Error("stale reply must not touch the transcript")
	}
	if c.SessionID() != "" {
		t.Error("stale reply must not install a session id")
	}
}

func TestStaleFailureDroppedAfterReset(t *testing.T) {
	c := New("")
	req, _ := c.BeginTurn("hello")
	c.Reset()

	if c.ApplyFailure(req.Gen, errors.New("late failure")) {
		t.Error("failure from before the reset should be dropped")
	}
	if c.Status() != StatusIdle || c.Err() != "" {
		t.Error("stale failure must not change state")
	}
}
