package entity

import (
	"testing"

	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"

	"github.com/google/uuid"
)

func TestStageNext(t *testing.T) {
	cases := []struct {
		stage Stage
		next  Stage
		ok    bool
	}{
		{StagePreProduction, StageProduction, true},
		{StageProduction, StagePostProduction, true},
		{StagePostProduction, StageCompleted, true},
		{StageCompleted, StageCompleted, false},
	}

	for _, tc := range cases {
		next, ok := tc.stage.Next()
		if ok != tc.ok || next != tc.next {
			t.Errorf("%s.Next() = (%s, %v), want (%s, %v)", tc.stage, next, ok, tc.next, tc.ok)
		}
	}
}

func TestStageBefore(t *testing.T) {
	if !StagePreProduction.Before(StageCompleted) {
		t.Error("pre_production should come before completed")
	}
	if StagePostProduction.Before(StagePostProduction) {
		t.Error("a stage is not before itself")
	}
	if StageCompleted.Before(StageProduction) {
		t.Error("completed is not before production")
	}
	if Stage("bogus").Before(StageProduction) {
		t.Error("unknown stage is never before anything")
	}
}

func TestAssignmentForSkipsReassigned(t *testing.T) {
	memberID := uuid.New()
	event := &ScheduledEvent{
		Assignments: AssignmentList{
			{ID: uuid.New(), TeamMemberID: memberID, Status: AssignmentStatusReassigned},
		},
	}

	if event.AssignmentFor(memberID) != nil {
		t.Error("reassigned occupancy should not bind the member")
	}

	event.Assignments = append(event.Assignments, EventAssignment{
		ID: uuid.New(), TeamMemberID: memberID, Status: AssignmentStatusPending,
	})
	got := event.AssignmentFor(memberID)
	if got == nil || got.Status != AssignmentStatusPending {
		t.Fatal("expected the pending assignment to bind the member")
	}
}

func TestRequiredCount(t *testing.T) {
	event := &ScheduledEvent{PhotographersCount: 2, VideographersCount: 1}

	if got := event.RequiredCount(teamentity.RolePhotographer); got != 2 {
		t.Errorf("photographer headcount = %d, want 2", got)
	}
	if got := event.RequiredCount(teamentity.RoleVideographer); got != 1 {
		t.Errorf("videographer headcount = %d, want 1", got)
	}
	if got := event.RequiredCount(teamentity.RoleEditor); got != 0 {
		t.Errorf("editor headcount = %d, want 0", got)
	}
}

func TestCloneIsolation(t *testing.T) {
	event := &ScheduledEvent{
		Stage: StagePreProduction,
		Assignments: AssignmentList{
			{ID: uuid.New(), Status: AssignmentStatusPending},
		},
		TimeTracking: TimeEntryList{{Hours: 2}},
	}

	cp := event.Clone()
	cp.Stage = StageProduction
	cp.Assignments[0].Status = AssignmentStatusAccepted
	cp.TimeTracking[0].Hours = 5
	cp.Assignments = append(cp.Assignments, EventAssignment{ID: uuid.New()})

	if event.Stage != StagePreProduction {
		t.Error("clone mutation leaked into the original stage")
	}
	if event.Assignments[0].Status != AssignmentStatusPending {
		t.Error("clone mutation leaked into the original assignments")
	}
	if event.TimeTracking[0].Hours != 2 {
		t.Error("clone mutation leaked into the original time tracking")
	}
	if len(event.Assignments) != 1 {
		t.Error("clone append leaked into the original assignments")
	}
}
