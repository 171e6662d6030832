// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/eduvision/ent/planevent"
)

// PlanEventCreate is the builder for creating a PlanEvent entity.
type PlanEventCreate struct {
	config
	mutation *PlanEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PlanEventCreate) SetSequence(v int64) *PlanEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PlanEventCreate) SetTimestamp(v time.Time) *PlanEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableTimestamp(v *time.Time) *PlanEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetMode sets the "mode" field.
func (_c *PlanEventCreate) SetMode(v string) *PlanEventCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableMode(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetAge sets the "age" field.
func (_c *PlanEventCreate) SetAge(v string) *PlanEventCreate {
	_c.mutation.SetAge(v)
	return _c
}

// SetNillableAge sets the "age" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableAge(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetAge(*v)
	}
	return _c
}

// SetSubject sets the "subject" field.
func (_c *PlanEventCreate) SetSubject(v string) *PlanEventCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableSubject(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetTopic sets the "topic" field.
func (_c *PlanEventCreate) SetTopic(v string) *PlanEventCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableTopic(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetLearningGoal sets the "learning_goal" field.
func (_c *PlanEventCreate) SetLearningGoal(v string) *PlanEventCreate {
	_c.mutation.SetLearningGoal(v)
	return _c
}

// SetNillableLearningGoal sets the "learning_goal" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableLearningGoal(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetLearningGoal(*v)
	}
	return _c
}

// SetTiming sets the "timing" field.
func (_c *PlanEventCreate) SetTiming(v string) *PlanEventCreate {
	_c.mutation.SetTiming(v)
	return _c
}

// SetNillableTiming sets the "timing" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableTiming(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetTiming(*v)
	}
	return _c
}

// SetModules sets the "modules" field.
func (_c *PlanEventCreate) SetModules(v []string) *PlanEventCreate {
	_c.mutation.SetModules(v)
	return _c
}

// SetInterests sets the "interests" field.
func (_c *PlanEventCreate) SetInterests(v string) *PlanEventCreate {
	_c.mutation.SetInterests(v)
	return _c
}

// SetNillableInterests sets the "interests" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableInterests(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetInterests(*v)
	}
	return _c
}

// SetDifferentiation sets the "differentiation" field.
func (_c *PlanEventCreate) SetDifferentiation(v bool) *PlanEventCreate {
	_c.mutation.SetDifferentiation(v)
	return _c
}

// SetNillableDifferentiation sets the "differentiation" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableDifferentiation(v *bool) *PlanEventCreate {
	if v != nil {
		_c.SetDifferentiation(*v)
	}
	return _c
}

// SetVisualLanguage sets the "visual_language" field.
func (_c *PlanEventCreate) SetVisualLanguage(v string) *PlanEventCreate {
	_c.mutation.SetVisualLanguage(v)
	return _c
}

// SetNillableVisualLanguage sets the "visual_language" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableVisualLanguage(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetVisualLanguage(*v)
	}
	return _c
}

// SetHTML sets the "html" field.
func (_c *PlanEventCreate) SetHTML(v string) *PlanEventCreate {
	_c.mutation.SetHTML(v)
	return _c
}

// SetNillableHTML sets the "html" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableHTML(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetHTML(*v)
	}
	return _c
}

// SetPromptCount sets the "prompt_count" field.
func (_c *PlanEventCreate) SetPromptCount(v int) *PlanEventCreate {
	_c.mutation.SetPromptCount(v)
	return _c
}

// SetNillablePromptCount sets the "prompt_count" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillablePromptCount(v *int) *PlanEventCreate {
	if v != nil {
		_c.SetPromptCount(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *PlanEventCreate) SetSuccess(v bool) *PlanEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableSuccess(v *bool) *PlanEventCreate {
	if v != nil {
		_c.SetSuccess(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PlanEventCreate) SetErrorMessage(v string) *PlanEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PlanEventCreate) SetNillableErrorMessage(v *string) *PlanEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the PlanEventMutation object of the builder.
func (_c *PlanEventCreate) Mutation() *PlanEventMutation {
	return _c.mutation
}

// Save creates the PlanEvent in the database.
func (_c *PlanEventCreate) Save(ctx context.Context) (*PlanEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanEventCreate) SaveX(ctx context.Context) *PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := planevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Mode(); !ok {
		v := planevent.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Age(); !ok {
		v := planevent.DefaultAge
		_c.mutation.SetAge(v)
	}
	if _, ok := _c.mutation.Subject(); !ok {
		v := planevent.DefaultSubject
		_c.mutation.SetSubject(v)
	}
	if _, ok := _c.mutation.Topic(); !ok {
		v := planevent.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.LearningGoal(); !ok {
		v := planevent.DefaultLearningGoal
		_c.mutation.SetLearningGoal(v)
	}
	if _, ok := _c.mutation.Timing(); !ok {
		v := planevent.DefaultTiming
		_c.mutation.SetTiming(v)
	}
	if _, ok := _c.mutation.Interests(); !ok {
		v := planevent.DefaultInterests
		_c.mutation.SetInterests(v)
	}
	if _, ok := _c.mutation.Differentiation(); !ok {
		v := planevent.DefaultDifferentiation
		_c.mutation.SetDifferentiation(v)
	}
	if _, ok := _c.mutation.VisualLanguage(); !ok {
		v := planevent.DefaultVisualLanguage
		_c.mutation.SetVisualLanguage(v)
	}
	if _, ok := _c.mutation.HTML(); !ok {
		v := planevent.DefaultHTML
		_c.mutation.SetHTML(v)
	}
	if _, ok := _c.mutation.PromptCount(); !ok {
		v := planevent.DefaultPromptCount
		_c.mutation.SetPromptCount(v)
	}
	if _, ok := _c.mutation.Success(); !ok {
		v := planevent.DefaultSuccess
		_c.mutation.SetSuccess(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := planevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PlanEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PlanEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "PlanEvent.mode"`)}
	}
	if _, ok := _c.mutation.Age(); !ok {
		return &ValidationError{Name: "age", err: errors.New(`ent: missing required field "PlanEvent.age"`)}
	}
	if _, ok := _c.mutation.Subject(); !ok {
		return &ValidationError{Name: "subject", err: errors.New(`ent: missing required field "PlanEvent.subject"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "PlanEvent.topic"`)}
	}
	if _, ok := _c.mutation.LearningGoal(); !ok {
		return &ValidationError{Name: "learning_goal", err: errors.New(`ent: missing required field "PlanEvent.learning_goal"`)}
	}
	if _, ok := _c.mutation.Timing(); !ok {
		return &ValidationError{Name: "timing", err: errors.New(`ent: missing required field "PlanEvent.timing"`)}
	}
	if _, ok := _c.mutation.Interests(); !ok {
		return &ValidationError{Name: "interests", err: errors.New(`ent: missing required field "PlanEvent.interests"`)}
	}
	if _, ok := _c.mutation.Differentiation(); !ok {
		return &ValidationError{Name: "differentiation", err: errors.New(`ent: missing required field "PlanEvent.differentiation"`)}
	}
	if _, ok := _c.mutation.VisualLanguage(); !ok {
		return &ValidationError{Name: "visual_language", err: errors.New(`ent: missing required field "PlanEvent.visual_language"`)}
	}
	if _, ok := _c.mutation.HTML(); !ok {
		return &ValidationError{Name: "html", err: errors.New(`ent: missing required field "PlanEvent.html"`)}
	}
	if _, ok := _c.mutation.PromptCount(); !ok {
		return &ValidationError{Name: "prompt_count", err: errors.New(`ent: missing required field "PlanEvent.prompt_count"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "PlanEvent.success"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "PlanEvent.error_message"`)}
	}
	return nil
}

func (_c *PlanEventCreate) sqlSave(ctx context.Context) (*PlanEvent, error) {
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

func (_c *PlanEventCreate) createSpec() (*PlanEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(planevent.Table, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(planevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(planevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(planevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Age(); ok {
		_spec.SetField(planevent.FieldAge, field.TypeString, value)
		_node.Age = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(planevent.FieldSubject, field.TypeString, value)
		_node.Subject = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(planevent.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.LearningGoal(); ok {
		_spec.SetField(planevent.FieldLearningGoal, field.TypeString, value)
		_node.LearningGoal = value
	}
	if value, ok := _c.mutation.Timing(); ok {
		_spec.SetField(planevent.FieldTiming, field.TypeString, value)
		_node.Timing = value
	}
	if value, ok := _c.mutation.Modules(); ok {
		_spec.SetField(planevent.FieldModules, field.TypeJSON, value)
		_node.Modules = value
	}
	if value, ok := _c.mutation.Interests(); ok {
		_spec.SetField(planevent.FieldInterests, field.TypeString, value)
		_node.Interests = value
	}
	if value, ok := _c.mutation.Differentiation(); ok {
		_spec.SetField(planevent.FieldDifferentiation, field.TypeBool, value)
		_node.Differentiation = value
	}
	if value, ok := _c.mutation.VisualLanguage(); ok {
		_spec.SetField(planevent.FieldVisualLanguage, field.TypeString, value)
		_node.VisualLanguage = value
	}
	if value, ok := _c.mutation.HTML(); ok {
		_spec.SetField(planevent.FieldHTML, field.TypeString, value)
		_node.HTML = value
	}
	if value, ok := _c.mutation.PromptCount(); ok {
		_spec.SetField(planevent.FieldPromptCount, field.TypeInt, value)
		_node.PromptCount = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(planevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(planevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// PlanEventCreateBulk is the builder for creating many PlanEvent entities in bulk.
type PlanEventCreateBulk struct {
	config
	err      error
	builders []*PlanEventCreate
}

// Save creates the PlanEvent entities in the database.
func (_c *PlanEventCreateBulk) Save(ctx context.Context) ([]*PlanEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanEventMutation)
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
func (_c *PlanEventCreateBulk) SaveX(ctx context.Context) []*PlanEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
