package service

import (
	"time"

	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"
)

// StageEngine owns stage advancement. Stages are linear
// (pre_production -> production -> post_production -> completed), no
// skipping, no cycle.
type StageEngine struct{}

func NewStageEngine() *StageEngine {
	return &StageEngine{}
}

const dateLayout = "2006-01-02"

// dateBefore compares calendar days, ignoring time of day and zone.
func dateBefore(a, b time.Time) bool {
	return a.Format(dateLayout) < b.Format(dateLayout)
}

// Advance moves the event exactly one stage forward when its date is in the
// past relative to today. One stage per call, never production -> completed
// in a single invocation. Advancing a completed event is a no-op, never an
// error.
func (e *StageEngine) Advance(event *entity.ScheduledEvent, today time.Time) bool {
	if event.Stage == entity.StageCompleted {
		return false
	}
	if !dateBefore(event.Date, today) {
		return false
	}
	next, ok := event.Stage.Next()
	if !ok {
		return false
	}
	event.Stage = next
	return true
}

// MoveToPostProduction bypasses the date rule. It is the only way, together
// with MarkDataCopied, to move an event into post-production ahead of date.
// Returns false when the event is already at or past post-production.
func (e *StageEngine) MoveToPostProduction(event *entity.ScheduledEvent) bool {
	if !event.Stage.Before(entity.StagePostProduction) {
		return false
	}
	event.Stage = entity.StagePostProduction
	return true
}

// MarkDataCopied records that the shoot data has been copied off the cards
// and moves the event into post-production when it is still earlier.
func (e *StageEngine) MarkDataCopied(event *entity.ScheduledEvent) {
	event.DataCopied = true
	if event.Stage.Before(entity.StagePostProduction) {
		event.Stage = entity.StagePostProduction
	}
}

// ClearDataCopied retracts the data-copied flag only. The stage is never
// reversed through this engine.
func (e *StageEngine) ClearDataCopied(event *entity.ScheduledEvent) {
	event.DataCopied = false
}
