package store

import (
	"context"
	"fmt"

	"github.com/abhisek/eduvision/ent"
	"github.com/abhisek/eduvision/ent/planevent"
)

func (r *eventRepo) AppendPlanEvent(ctx context.Context, data PlanEventData) (int, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.PlanEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(r.now().UTC()).
		SetMode(data.Mode).
		SetAge(data.Age).
		SetSubject(data.Subject).
		SetTopic(data.Topic).
		SetLearningGoal(data.LearningGoal).
		SetTiming(data.Timing).
		SetInterests(data.Interests).
		SetDifferentiation(data.Differentiation).
		SetVisualLanguage(data.VisualLanguage).
		SetHTML(data.HTML).
		SetPromptCount(data.PromptCount).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage)

	if len(data.Modules) > 0 {
		builder = builder.SetModules(data.Modules)
	}

	e, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save plan event: %w", err)
	}
	return e.ID, nil
}

func (r *eventRepo) QueryPlanEvents(ctx context.Context, opts QueryOpts) ([]PlanEventRecord, error) {
	query := r.client.PlanEvent.Query().
		Order(ent.Desc(planevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(planevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(planevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(planevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(planevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query plan events: %w", err)
	}

	records := make([]PlanEventRecord, len(events))
	for i, e := range events {
		records[i] = toPlanRecord(e)
	}
	return records, nil
}

func (r *eventRepo) GetPlanEvent(ctx context.Context, id int) (*PlanEventRecord, error) {
	e, err := r.client.PlanEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan event: %w", err)
	}
	rec := toPlanRecord(e)
	return &rec, nil
}

func toPlanRecord(e *ent.PlanEvent) PlanEventRecord {
	var modules []string
	if len(e.Modules) > 0 {
		modules = e.Modules
	}
	return PlanEventRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		PlanEventData: PlanEventData{
			Mode:            e.Mode,
			Age:             e.Age,
			Subject:         e.Subject,
			Topic:           e.Topic,
			LearningGoal:    e.LearningGoal,
			Timing:          e.Timing,
			Modules:         modules,
			Interests:       e.Interests,
			Differentiation: e.Differentiation,
			VisualLanguage:  e.VisualLanguage,
			HTML:            e.HTML,
			PromptCount:     e.PromptCount,
			Success:         e.Success,
			ErrorMessage:    e.ErrorMessage,
		},
	}
}
