package store

import (
	"context"
	"fmt"

	"github.com/raneesh-edsmartly/socratic/ent"
	"github.com/raneesh-edsmartly/socratic/ent/chatsession"
	"github.com/raneesh-edsmartly/socratic/ent/userprofile"
	"github.com/raneesh-edsmartly/socratic/internal/auth"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Get(ctx context.Context) (*auth.UserSession, error) {
	p, err := r.client.UserProfile.Query().
		Order(ent.Desc(userprofile.FieldUpdatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user profile: %w", err)
	}
	return &auth.UserSession{
		Username:   p.Username,
		Name:       p.Name,
		Grade:      p.Grade,
		Subjects:   p.Subjects,
		Curriculum: p.Curriculum,
	}, nil
}

func (r *sessionRepo) Put(ctx context.Context, s *auth.UserSession) error {
	// Single-record semantics: drop whatever was stored before.
	if _, err := r.client.UserProfile.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear user profile: %w", err)
	}
	_, err := r.client.UserProfile.Create().
		SetUsername(s.Username).
		SetName(s.Name).
		SetGrade(s.Grade).
		SetSubjects(s.Subjects).
		SetCurriculum(s.Curriculum).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save user profile: %w", err)
	}
	return nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	if _, err := r.client.UserProfile.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear user profile: %w", err)
	}
	return nil
}

func (r *sessionRepo) ChatSessionID(ctx context.Context) (string, error) {
	cs, err := r.client.ChatSession.Query().
		Order(ent.Desc(chatsession.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query chat session: %w", err)
	}
	return cs.SessionID, nil
}

func (r *sessionRepo) SaveChatSession(ctx context.Context, sessionID string) error {
	if _, err := r.client.ChatSession.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear chat session: %w", err)
	}
	_, err := r.client.ChatSession.Create().
		SetSessionID(sessionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save chat session: %w", err)
	}
	return nil
}

func (r *sessionRepo) ClearChatSession(ctx context.Context) error {
	if _, err := r.client.ChatSession.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear chat session: %w", err)
	}
	return nil
}
