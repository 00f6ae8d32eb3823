package store

import (
	"context"
	"fmt"

	"github.com/raneesh-edsmartly/socratic/ent"
	"github.com/raneesh-edsmartly/socratic/ent/quizattempt"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Save(ctx context.Context, rec *AttemptRecord) error {
	builder := r.client.QuizAttempt.Create().
		SetTopic(rec.Topic).
		SetSubject(rec.Subject).
		SetGrade(rec.Grade).
		SetDifficulty(rec.Difficulty).
		SetScore(rec.Score).
		SetTotal(rec.Total)

	if rec.SessionID != "" {
		builder = builder.SetSessionID(rec.SessionID)
	}
	if rec.Results != nil {
		builder = builder.SetResults(rec.Results)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("save quiz attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]AttemptRecord, error) {
	rows, err := r.client.QuizAttempt.Query().
		Order(ent.Desc(quizattempt.FieldTakenAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}

	records := make([]AttemptRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, AttemptRecord{
			ID:         row.ID,
			SessionID:  row.SessionID,
			Topic:      row.Topic,
			Subject:    row.Subject,
			Grade:      row.Grade,
			Difficulty: row.Difficulty,
			Score:      row.Score,
			Total:      row.Total,
			Results:    row.Results,
			TakenAt:    row.TakenAt,
		})
	}
	return records, nil
}
