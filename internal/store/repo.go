package store

import (
	"context"
	"time"

	"github.com/raneesh-edsmartly/socratic/internal/auth"
)

// SessionRepo persists the two session records the client keeps:
// the user session and the chat session id. Both are single-valued;
// writing replaces any previous value.
type SessionRepo interface {
	auth.Repository

	// ChatSessionID returns the stored conversation token, or "" if
	// none is stored.
	ChatSessionID(ctx context.Context) (string, error)

	// SaveChatSession stores the conversation token, replacing any
	// previous one.
	SaveChatSession(ctx context.Context, sessionID string) error

	// ClearChatSession removes the stored conversation token.
	ClearChatSession(ctx context.Context) error
}

// AttemptRecord is one finished quiz in local history.
type AttemptRecord struct {
	ID         int
	SessionID  string
	Topic      string
	Subject    string
	Grade      int
	Difficulty int
	Score      int
	Total      int
	Results    map[string]any
	TakenAt    time.Time
}

// AttemptRepo stores finished quiz attempts for the dashboard.
type AttemptRepo interface {
	// Save appends a finished attempt.
	Save(ctx context.Context, rec *AttemptRecord) error

	// Recent returns up to limit attempts, newest first.
	Recent(ctx context.Context, limit int) ([]AttemptRecord, error)
}
