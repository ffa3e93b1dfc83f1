package service

import (
	"testing"
	"time"

	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAdvanceOnlyWhenDatePassed(t *testing.T) {
	engine := NewStageEngine()
	today := day("2026-05-10")

	event := &entity.ScheduledEvent{Stage: entity.StagePreProduction, Date: day("2026-05-10")}
	if engine.Advance(event, today) {
		t.Error("event dated today must not advance")
	}

	event.Date = day("2026-05-11")
	if engine.Advance(event, today) {
		t.Error("future event must not advance")
	}

	event.Date = day("2026-05-09")
	if !engine.Advance(event, today) {
		t.Fatal("past event should advance")
	}
	if event.Stage != entity.StageProduction {
		t.Errorf("stage = %s, want production", event.Stage)
	}
}

func TestAdvanceOneStagePerCall(t *testing.T) {
	engine := NewStageEngine()
	event := &entity.ScheduledEvent{Stage: entity.StagePreProduction, Date: day("2026-01-01")}
	today := day("2026-05-10")

	engine.Advance(event, today)
	if event.Stage != entity.StageProduction {
		t.Fatalf("after one call stage = %s, want production", event.Stage)
	}

	engine.Advance(event, today)
	if event.Stage != entity.StagePostProduction {
		t.Fatalf("after two calls stage = %s, want post_production", event.Stage)
	}
}

func TestAdvanceCompletedIsNoOp(t *testing.T) {
	engine := NewStageEngine()
	event := &entity.ScheduledEvent{Stage: entity.StageCompleted, Date: day("2020-01-01")}

	if engine.Advance(event, day("2026-05-10")) {
		t.Error("completed event must never advance")
	}
	if event.Stage != entity.StageCompleted {
		t.Errorf("stage = %s, want completed", event.Stage)
	}
}

func TestAdvanceIgnoresTimeOfDay(t *testing.T) {
	engine := NewStageEngine()
	event := &entity.ScheduledEvent{
		Stage: entity.StagePreProduction,
		Date:  time.Date(2026, 5, 10, 23, 0, 0, 0, time.UTC),
	}
	today := time.Date(2026, 5, 10, 1, 0, 0, 0, time.UTC)

	if engine.Advance(event, today) {
		t.Error("same calendar day must not advance regardless of clock time")
	}
}

func TestMoveToPostProduction(t *testing.T) {
	engine := NewStageEngine()

	event := &entity.ScheduledEvent{Stage: entity.StagePreProduction}
	if !engine.MoveToPostProduction(event) {
		t.Fatal("pre_production event should move")
	}
	if event.Stage != entity.StagePostProduction {
		t.Errorf("stage = %s, want post_production", event.Stage)
	}

	if engine.MoveToPostProduction(event) {
		t.Error("event already at post_production must not move")
	}

	event.Stage = entity.StageCompleted
	if engine.MoveToPostProduction(event) {
		t.Error("completed event must not move back")
	}
	if event.Stage != entity.StageCompleted {
		t.Errorf("stage = %s, want completed", event.Stage)
	}
}

func TestMarkDataCopied(t *testing.T) {
	engine := NewStageEngine()

	event := &entity.ScheduledEvent{Stage: entity.StageProduction}
	engine.MarkDataCopied(event)
	if !event.DataCopied {
		t.Error("data copied flag should be set")
	}
	if event.Stage != entity.StagePostProduction {
		t.Errorf("stage = %s, want post_production", event.Stage)
	}

	// Marking again once completed keeps the stage.
	event.Stage = entity.StageCompleted
	engine.MarkDataCopied(event)
	if event.Stage != entity.StageCompleted {
		t.Errorf("stage = %s, want completed", event.Stage)
	}
}

func TestClearDataCopiedKeepsStage(t *testing.T) {
	engine := NewStageEngine()
	event := &entity.ScheduledEvent{Stage: entity.StagePostProduction, DataCopied: true}

	engine.ClearDataCopied(event)
	if event.DataCopied {
		t.Error("data copied flag should be cleared")
	}
	if event.Stage != entity.StagePostProduction {
		t.Errorf("stage = %s, want post_production unchanged", event.Stage)
	}
}
