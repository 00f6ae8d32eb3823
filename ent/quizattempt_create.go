// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/raneesh-edsmartly/socratic/ent/quizattempt"
)

// QuizAttemptCreate is the builder for creating a QuizAttempt entity.
type QuizAttemptCreate struct {
	config
	mutation *QuizAttemptMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *QuizAttemptCreate) SetSessionID(v string) *QuizAttemptCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableSessionID(v *string) *QuizAttemptCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *QuizAttemptCreate) SetTopic(v string) *QuizAttemptCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *QuizAttemptCreate) SetSubject(v string) *QuizAttemptCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableSubject(v *string) *QuizAttemptCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *QuizAttemptCreate) SetGrade(v int) *QuizAttemptCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuizAttemptCreate) SetDifficulty(v int) *QuizAttemptCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *QuizAttemptCreate) SetScore(v int) *QuizAttemptCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *QuizAttemptCreate) SetTotal(v int) *QuizAttemptCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetResults sets the "results" field.
func (_c *QuizAttemptCreate) SetResults(v map[string]interface{}) *QuizAttemptCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetTakenAt sets the "taken_at" field.
func (_c *QuizAttemptCreate) SetTakenAt(v time.Time) *QuizAttemptCreate {
	_c.mutation.SetTakenAt(v)
	return _c
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_c *QuizAttemptCreate) SetNillableTakenAt(v *time.Time) *QuizAttemptCreate {
	if v != nil {
		_c.SetTakenAt(*v)
	}
	return _c
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_c *QuizAttemptCreate) Mutation() *QuizAttemptMutation {
	return _c.mutation
}

// Save creates the QuizAttempt in the database.
func (_c *QuizAttemptCreate) Save(ctx context.Context) (*QuizAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizAttemptCreate) SaveX(ctx context.Context) *QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizAttemptCreate) defaults() {
	if _, ok := _c.mutation.TakenAt(); !ok {
		v := quizattempt.DefaultTakenAt()
		_c.mutation.SetTakenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizAttemptCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "QuizAttempt.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := quizattempt.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "QuizAttempt.grade"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "QuizAttempt.difficulty"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "QuizAttempt.score"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "QuizAttempt.total"`)}
	}
	if _, ok := _c.mutation.TakenAt(); !ok {
		return &ValidationError{Name: "taken_at", err: errors.New(`ent: missing required field "QuizAttempt.taken_at"`)}
	}
	return nil
}

func (_c *QuizAttemptCreate) sqlSave(ctx context.Context) (*QuizAttempt, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizAttemptCreate) createSpec() (*QuizAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizattempt.Table, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(quizattempt.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(quizattempt.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(quizattempt.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(quizattempt.FieldGrade, field.TypeInt, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(quizattempt.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(quizattempt.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(quizattempt.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.TakenAt(); ok {
		_spec.SetField(quizattempt.FieldTakenAt, field.TypeTime, value)
		_node.TakenAt = value
	}
	return _node, _spec
}

// QuizAttemptCreateBulk is the builder for creating many QuizAttempt entities in bulk.
type QuizAttemptCreateBulk struct {
	config
	err      error
	builders []*QuizAttemptCreate
}

// Save creates the QuizAttempt entities in the database.
func (_c *QuizAttemptCreateBulk) Save(ctx context.Context) ([]*QuizAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizAttemptMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizAttemptCreateBulk) SaveX(ctx context.Context) []*QuizAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
