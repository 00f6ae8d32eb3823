package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ChatSession holds the opaque conversation token issued by the
// backend, persisted so a restart resumes the conversation. At most
// one row exists at a time.
type ChatSession struct {
	ent.Schema
}

func (ChatSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Opaque token issued by the backend"),
		field.Time("started_at").
			Default(time.Now),
	}
}
