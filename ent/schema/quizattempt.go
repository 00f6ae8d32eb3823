package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAttempt records one finished quiz locally, feeding the dashboard's
// performance view.
type QuizAttempt struct {
	ent.Schema
}

func (QuizAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Optional().
			Comment("Server-issued quiz session id, when one was given"),
		field.String("topic").
			NotEmpty(),
		field.String("subject").
			Optional(),
		field.Int("grade"),
		field.Int("difficulty"),
		field.Int("score"),
		field.Int("total"),
		field.JSON("results", map[string]any{}).
			Optional().
			Comment("Per-question correctness and explanations"),
		field.Time("taken_at").
			Default(time.Now),
	}
}

func (QuizAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("taken_at"),
		index.Fields("subject"),
	}
}
