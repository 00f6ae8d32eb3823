// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/raneesh-edsmartly/socratic/ent/predicate"
	"github.com/raneesh-edsmartly/socratic/ent/quizattempt"
)

// QuizAttemptUpdate is the builder for updating QuizAttempt entities.
type QuizAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdate) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *QuizAttemptUpdate) SetSessionID(v string) *QuizAttemptUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableSessionID(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *QuizAttemptUpdate) ClearSessionID() *QuizAttemptUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizAttemptUpdate) SetTopic(v string) *QuizAttemptUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTopic(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuizAttemptUpdate) SetSubject(v string) *QuizAttemptUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableSubject(v *string) *QuizAttemptUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *QuizAttemptUpdate) ClearSubject() *QuizAttemptUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *QuizAttemptUpdate) SetGrade(v int) *QuizAttemptUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableGrade(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *QuizAttemptUpdate) AddGrade(v int) *QuizAttemptUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizAttemptUpdate) SetDifficulty(v int) *QuizAttemptUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableDifficulty(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuizAttemptUpdate) AddDifficulty(v int) *QuizAttemptUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdate) SetScore(v int) *QuizAttemptUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableScore(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdate) AddScore(v int) *QuizAttemptUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizAttemptUpdate) SetTotal(v int) *QuizAttemptUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTotal(v *int) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizAttemptUpdate) AddTotal(v int) *QuizAttemptUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetResults sets the "results" field.
func (_u *QuizAttemptUpdate) SetResults(v map[string]interface{}) *QuizAttemptUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *QuizAttemptUpdate) ClearResults() *QuizAttemptUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *QuizAttemptUpdate) SetTakenAt(v time.Time) *QuizAttemptUpdate {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *QuizAttemptUpdate) SetNillableTakenAt(v *time.Time) *QuizAttemptUpdate {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdate) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizattempt.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizattempt.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(quizattempt.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizattempt.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(quizattempt.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(quizattempt.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(quizattempt.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(quizattempt.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizattempt.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(quizattempt.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizattempt.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizattempt.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(quizattempt.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(quizattempt.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(quizattempt.FieldTakenAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizAttemptUpdateOne is the builder for updating a single QuizAttempt entity.
type QuizAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizAttemptMutation
}

// SetSessionID sets the "session_id" field.
func (_u *QuizAttemptUpdateOne) SetSessionID(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableSessionID(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *QuizAttemptUpdateOne) ClearSessionID() *QuizAttemptUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTopic sets the "topic" field.
func (_u *QuizAttemptUpdateOne) SetTopic(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTopic(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *QuizAttemptUpdateOne) SetSubject(v string) *QuizAttemptUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableSubject(v *string) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *QuizAttemptUpdateOne) ClearSubject() *QuizAttemptUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetGrade sets the "grade" field.
func (_u *QuizAttemptUpdateOne) SetGrade(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableGrade(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *QuizAttemptUpdateOne) AddGrade(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuizAttemptUpdateOne) SetDifficulty(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableDifficulty(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *QuizAttemptUpdateOne) AddDifficulty(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *QuizAttemptUpdateOne) SetScore(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableScore(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *QuizAttemptUpdateOne) AddScore(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *QuizAttemptUpdateOne) SetTotal(v int) *QuizAttemptUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTotal(v *int) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *QuizAttemptUpdateOne) AddTotal(v int) *QuizAttemptUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetResults sets the "results" field.
func (_u *QuizAttemptUpdateOne) SetResults(v map[string]interface{}) *QuizAttemptUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *QuizAttemptUpdateOne) ClearResults() *QuizAttemptUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetTakenAt sets the "taken_at" field.
func (_u *QuizAttemptUpdateOne) SetTakenAt(v time.Time) *QuizAttemptUpdateOne {
	_u.mutation.SetTakenAt(v)
	return _u
}

// SetNillableTakenAt sets the "taken_at" field if the given value is not nil.
func (_u *QuizAttemptUpdateOne) SetNillableTakenAt(v *time.Time) *QuizAttemptUpdateOne {
	if v != nil {
		_u.SetTakenAt(*v)
	}
	return _u
}

// Mutation returns the QuizAttemptMutation object of the builder.
func (_u *QuizAttemptUpdateOne) Mutation() *QuizAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizAttemptUpdate builder.
func (_u *QuizAttemptUpdateOne) Where(ps ...predicate.QuizAttempt) *QuizAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizAttemptUpdateOne) Select(field string, fields ...string) *QuizAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizAttempt entity.
func (_u *QuizAttemptUpdateOne) Save(ctx context.Context) (*QuizAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) SaveX(ctx context.Context) *QuizAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := quizattempt.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "QuizAttempt.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizAttemptUpdateOne) sqlSave(ctx context.Context) (_node *QuizAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizattempt.Table, quizattempt.Columns, sqlgraph.NewFieldSpec(quizattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizattempt.FieldID)
		for _, f := range fields {
			if !quizattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizattempt.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(quizattempt.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(quizattempt.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(quizattempt.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(quizattempt.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(quizattempt.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(quizattempt.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(quizattempt.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(quizattempt.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(quizattempt.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(quizattempt.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(quizattempt.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(quizattempt.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(quizattempt.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(quizattempt.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.TakenAt(); ok {
		_spec.SetField(quizattempt.FieldTakenAt, field.TypeTime, value)
	}
	_node = &QuizAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
