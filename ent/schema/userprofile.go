package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProfile is the locally persisted user session: identity plus
// profile fields, restored at startup so a relaunch does not
// re-authenticate. At most one row exists at a time.
type UserProfile struct {
	ent.Schema
}

func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			Unique(),
		field.String("name").
			Optional(),
		field.String("grade").
			Optional(),
		field.JSON("subjects", []string{}).
			Optional(),
		field.String("curriculum").
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (UserProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
	}
}
