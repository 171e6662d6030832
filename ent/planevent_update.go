// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/eduvision/ent/planevent"
	"github.com/abhisek/eduvision/ent/predicate"
)

// PlanEventUpdate is the builder for updating PlanEvent entities.
type PlanEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlanEventMutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdate) Where(ps ...predicate.PlanEvent) *PlanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *PlanEventUpdate) SetMode(v string) *PlanEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableMode(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *PlanEventUpdate) SetAge(v string) *PlanEventUpdate {
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableAge(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PlanEventUpdate) SetSubject(v string) *PlanEventUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableSubject(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PlanEventUpdate) SetTopic(v string) *PlanEventUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableTopic(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLearningGoal sets the "learning_goal" field.
func (_u *PlanEventUpdate) SetLearningGoal(v string) *PlanEventUpdate {
	_u.mutation.SetLearningGoal(v)
	return _u
}

// SetNillableLearningGoal sets the "learning_goal" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableLearningGoal(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetLearningGoal(*v)
	}
	return _u
}

// SetTiming sets the "timing" field.
func (_u *PlanEventUpdate) SetTiming(v string) *PlanEventUpdate {
	_u.mutation.SetTiming(v)
	return _u
}

// SetNillableTiming sets the "timing" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableTiming(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetTiming(*v)
	}
	return _u
}

// SetModules sets the "modules" field.
func (_u *PlanEventUpdate) SetModules(v []string) *PlanEventUpdate {
	_u.mutation.SetModules(v)
	return _u
}

// AppendModules appends value to the "modules" field.
func (_u *PlanEventUpdate) AppendModules(v []string) *PlanEventUpdate {
	_u.mutation.AppendModules(v)
	return _u
}

// ClearModules clears the value of the "modules" field.
func (_u *PlanEventUpdate) ClearModules() *PlanEventUpdate {
	_u.mutation.ClearModules()
	return _u
}

// SetInterests sets the "interests" field.
func (_u *PlanEventUpdate) SetInterests(v string) *PlanEventUpdate {
	_u.mutation.SetInterests(v)
	return _u
}

// SetNillableInterests sets the "interests" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableInterests(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetInterests(*v)
	}
	return _u
}

// SetDifferentiation sets the "differentiation" field.
func (_u *PlanEventUpdate) SetDifferentiation(v bool) *PlanEventUpdate {
	_u.mutation.SetDifferentiation(v)
	return _u
}

// SetNillableDifferentiation sets the "differentiation" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableDifferentiation(v *bool) *PlanEventUpdate {
	if v != nil {
		_u.SetDifferentiation(*v)
	}
	return _u
}

// SetVisualLanguage sets the "visual_language" field.
func (_u *PlanEventUpdate) SetVisualLanguage(v string) *PlanEventUpdate {
	_u.mutation.SetVisualLanguage(v)
	return _u
}

// SetNillableVisualLanguage sets the "visual_language" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableVisualLanguage(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetVisualLanguage(*v)
	}
	return _u
}

// SetHTML sets the "html" field.
func (_u *PlanEventUpdate) SetHTML(v string) *PlanEventUpdate {
	_u.mutation.SetHTML(v)
	return _u
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableHTML(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetHTML(*v)
	}
	return _u
}

// SetPromptCount sets the "prompt_count" field.
func (_u *PlanEventUpdate) SetPromptCount(v int) *PlanEventUpdate {
	_u.mutation.ResetPromptCount()
	_u.mutation.SetPromptCount(v)
	return _u
}

// SetNillablePromptCount sets the "prompt_count" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillablePromptCount(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetPromptCount(*v)
	}
	return _u
}

// AddPromptCount adds value to the "prompt_count" field.
func (_u *PlanEventUpdate) AddPromptCount(v int) *PlanEventUpdate {
	_u.mutation.AddPromptCount(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PlanEventUpdate) SetSuccess(v bool) *PlanEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableSuccess(v *bool) *PlanEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanEventUpdate) SetErrorMessage(v string) *PlanEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableErrorMessage(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdate) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(planevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(planevent.FieldAge, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(planevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(planevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningGoal(); ok {
		_spec.SetField(planevent.FieldLearningGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timing(); ok {
		_spec.SetField(planevent.FieldTiming, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(planevent.FieldModules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldModules, value)
		})
	}
	if _u.mutation.ModulesCleared() {
		_spec.ClearField(planevent.FieldModules, field.TypeJSON)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(planevent.FieldInterests, field.TypeString, value)
	}
	if value, ok := _u.mutation.Differentiation(); ok {
		_spec.SetField(planevent.FieldDifferentiation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VisualLanguage(); ok {
		_spec.SetField(planevent.FieldVisualLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.HTML(); ok {
		_spec.SetField(planevent.FieldHTML, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptCount(); ok {
		_spec.SetField(planevent.FieldPromptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptCount(); ok {
		_spec.AddField(planevent.FieldPromptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(planevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(planevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanEventUpdateOne is the builder for updating a single PlanEvent entity.
type PlanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanEventMutation
}

// SetMode sets the "mode" field.
func (_u *PlanEventUpdateOne) SetMode(v string) *PlanEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableMode(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetAge sets the "age" field.
func (_u *PlanEventUpdateOne) SetAge(v string) *PlanEventUpdateOne {
	_u.mutation.SetAge(v)
	return _u
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableAge(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetAge(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *PlanEventUpdateOne) SetSubject(v string) *PlanEventUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableSubject(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *PlanEventUpdateOne) SetTopic(v string) *PlanEventUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableTopic(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetLearningGoal sets the "learning_goal" field.
func (_u *PlanEventUpdateOne) SetLearningGoal(v string) *PlanEventUpdateOne {
	_u.mutation.SetLearningGoal(v)
	return _u
}

// SetNillableLearningGoal sets the "learning_goal" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableLearningGoal(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetLearningGoal(*v)
	}
	return _u
}

// SetTiming sets the "timing" field.
func (_u *PlanEventUpdateOne) SetTiming(v string) *PlanEventUpdateOne {
	_u.mutation.SetTiming(v)
	return _u
}

// SetNillableTiming sets the "timing" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableTiming(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetTiming(*v)
	}
	return _u
}

// SetModules sets the "modules" field.
func (_u *PlanEventUpdateOne) SetModules(v []string) *PlanEventUpdateOne {
	_u.mutation.SetModules(v)
	return _u
}

// AppendModules appends value to the "modules" field.
func (_u *PlanEventUpdateOne) AppendModules(v []string) *PlanEventUpdateOne {
	_u.mutation.AppendModules(v)
	return _u
}

// ClearModules clears the value of the "modules" field.
func (_u *PlanEventUpdateOne) ClearModules() *PlanEventUpdateOne {
	_u.mutation.ClearModules()
	return _u
}

// SetInterests sets the "interests" field.
func (_u *PlanEventUpdateOne) SetInterests(v string) *PlanEventUpdateOne {
	_u.mutation.SetInterests(v)
	return _u
}

// SetNillableInterests sets the "interests" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableInterests(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetInterests(*v)
	}
	return _u
}

// SetDifferentiation sets the "differentiation" field.
func (_u *PlanEventUpdateOne) SetDifferentiation(v bool) *PlanEventUpdateOne {
	_u.mutation.SetDifferentiation(v)
	return _u
}

// SetNillableDifferentiation sets the "differentiation" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableDifferentiation(v *bool) *PlanEventUpdateOne {
	if v != nil {
		_u.SetDifferentiation(*v)
	}
	return _u
}

// SetVisualLanguage sets the "visual_language" field.
func (_u *PlanEventUpdateOne) SetVisualLanguage(v string) *PlanEventUpdateOne {
	_u.mutation.SetVisualLanguage(v)
	return _u
}

// SetNillableVisualLanguage sets the "visual_language" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableVisualLanguage(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetVisualLanguage(*v)
	}
	return _u
}

// SetHTML sets the "html" field.
func (_u *PlanEventUpdateOne) SetHTML(v string) *PlanEventUpdateOne {
	_u.mutation.SetHTML(v)
	return _u
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableHTML(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetHTML(*v)
	}
	return _u
}

// SetPromptCount sets the "prompt_count" field.
func (_u *PlanEventUpdateOne) SetPromptCount(v int) *PlanEventUpdateOne {
	_u.mutation.ResetPromptCount()
	_u.mutation.SetPromptCount(v)
	return _u
}

// SetNillablePromptCount sets the "prompt_count" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillablePromptCount(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetPromptCount(*v)
	}
	return _u
}

// AddPromptCount adds value to the "prompt_count" field.
func (_u *PlanEventUpdateOne) AddPromptCount(v int) *PlanEventUpdateOne {
	_u.mutation.AddPromptCount(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PlanEventUpdateOne) SetSuccess(v bool) *PlanEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableSuccess(v *bool) *PlanEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanEventUpdateOne) SetErrorMessage(v string) *PlanEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableErrorMessage(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdateOne) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdateOne) Where(ps ...predicate.PlanEvent) *PlanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanEventUpdateOne) Select(field string, fields ...string) *PlanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanEvent entity.
func (_u *PlanEventUpdateOne) Save(ctx context.Context) (*PlanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdateOne) SaveX(ctx context.Context) *PlanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlanEventUpdateOne) sqlSave(ctx context.Context) (_node *PlanEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planevent.FieldID)
		for _, f := range fields {
			if !planevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planevent.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(planevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Age(); ok {
		_spec.SetField(planevent.FieldAge, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(planevent.FieldSubject, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(planevent.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningGoal(); ok {
		_spec.SetField(planevent.FieldLearningGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timing(); ok {
		_spec.SetField(planevent.FieldTiming, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modules(); ok {
		_spec.SetField(planevent.FieldModules, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModules(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planevent.FieldModules, value)
		})
	}
	if _u.mutation.ModulesCleared() {
		_spec.ClearField(planevent.FieldModules, field.TypeJSON)
	}
	if value, ok := _u.mutation.Interests(); ok {
		_spec.SetField(planevent.FieldInterests, field.TypeString, value)
	}
	if value, ok := _u.mutation.Differentiation(); ok {
		_spec.SetField(planevent.FieldDifferentiation, field.TypeBool, value)
	}
	if value, ok := _u.mutation.VisualLanguage(); ok {
		_spec.SetField(planevent.FieldVisualLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.HTML(); ok {
		_spec.SetField(planevent.FieldHTML, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptCount(); ok {
		_spec.SetField(planevent.FieldPromptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPromptCount(); ok {
		_spec.AddField(planevent.FieldPromptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(planevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(planevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &PlanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
