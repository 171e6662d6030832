package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanEvent archives one plan generation with the form answers behind it.
type PlanEvent struct {
	ent.Schema
}

func (PlanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("mode").
			Default("").
			Comment("Persona: teacher or student"),
		field.String("age").Default(""),
		field.String("subject").Default(""),
		field.String("topic").Default(""),
		field.String("learning_goal").Default(""),
		field.String("timing").Default(""),
		field.Strings("modules").
			Optional().
			Comment("Selected visual module ids, A-F"),
		field.String("interests").Default(""),
		field.Bool("differentiation").Default(false),
		field.String("visual_language").Default(""),
		field.Text("html").
			Default("").
			Comment("Generated plan, prompts script included"),
		field.Int("prompt_count").Default(0),
		field.Bool("success").Default(false),
		field.String("error_message").Default(""),
	}
}

func (PlanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject"),
		index.Fields("success"),
	}
}
