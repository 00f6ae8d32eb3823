// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// QuizAttempt is the predicate function for quizattempt builders.
type QuizAttempt func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)
