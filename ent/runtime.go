// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/raneesh-edsmartly/socratic/ent/chatsession"
	"github.com/raneesh-edsmartly/socratic/ent/quizattempt"
	"github.com/raneesh-edsmartly/socratic/ent/schema"
	"github.com/raneesh-edsmartly/socratic/ent/userprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescSessionID is the schema descriptor for session_id field.
	chatsessionDescSessionID := chatsessionFields[0].Descriptor()
	// chatsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chatsession.SessionIDValidator = chatsessionDescSessionID.Validators[0].(func(string) error)
	// chatsessionDescStartedAt is the schema descriptor for started_at field.
	chatsessionDescStartedAt := chatsessionFields[1].Descriptor()
	// chatsession.DefaultStartedAt holds the default value on creation for the started_at field.
	chatsession.DefaultStartedAt = chatsessionDescStartedAt.Default.(func() time.Time)
	quizattemptFields := schema.QuizAttempt{}.Fields()
	_ = quizattemptFields
	// quizattemptDescTopic is the schema descriptor for topic field.
	quizattemptDescTopic := quizattemptFields[1].Descriptor()
	// quizattempt.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	quizattempt.TopicValidator = quizattemptDescTopic.Validators[0].(func(string) error)
	// quizattemptDescTakenAt is the schema descriptor for taken_at field.
	quizattemptDescTakenAt := quizattemptFields[8].Descriptor()
	// quizattempt.DefaultTakenAt holds the default value on creation for the taken_at field.
	quizattempt.DefaultTakenAt = quizattemptDescTakenAt.Default.(func() time.Time)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescUsername is the schema descriptor for username field.
	userprofileDescUsername := userprofileFields[0].Descriptor()
	// userprofile.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	userprofile.UsernameValidator = userprofileDescUsername.Validators[0].(func(string) error)
	// userprofileDescUpdatedAt is the schema descriptor for updated_at field.
	userprofileDescUpdatedAt := userprofileFields[5].Descriptor()
	// userprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	userprofile.DefaultUpdatedAt = userprofileDescUpdatedAt.Default.(func() time.Time)
	// userprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	userprofile.UpdateDefaultUpdatedAt = userprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
}
