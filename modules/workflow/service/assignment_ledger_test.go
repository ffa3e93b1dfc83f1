package service

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/DevTechAI/photosyncwork-sub003/core/errors"
	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"

	"github.com/google/uuid"
)

type fakeSink struct {
	notes []string
	err   error
}

func (f *fakeSink) Notify(ctx context.Context, recipientID uuid.UUID, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.notes = append(f.notes, subject+": "+body)
	return nil
}

func newMember(name string, role teamentity.Role) *teamentity.TeamMember {
	m := &teamentity.TeamMember{Name: name, Role: role}
	m.ID = uuid.New()
	return m
}

func singleSlotEvent() *entity.ScheduledEvent {
	event := &entity.ScheduledEvent{
		Name:               "Wedding Tran-Le",
		PhotographersCount: 1,
		Stage:              entity.StagePreProduction,
		Assignments:        entity.AssignmentList{},
	}
	event.ID = uuid.New()
	return event
}

func TestAssignFillsSlotUntilDeclined(t *testing.T) {
	ledger := NewAssignmentLedger(&fakeSink{})
	event := singleSlotEvent()
	alice := newMember("Alice", teamentity.RolePhotographer)
	bob := newMember("Bob", teamentity.RolePhotographer)

	if _, appErr := ledger.Assign(event, alice, teamentity.RolePhotographer); appErr != nil {
		t.Fatalf("first assign failed: %v", appErr)
	}

	// The pending assignment occupies the single slot.
	_, appErr := ledger.Assign(event, bob, teamentity.RolePhotographer)
	if appErr == nil || appErr.Code != apperrors.ErrCapacityExceeded {
		t.Fatalf("expected capacity exceeded, got %v", appErr)
	}

	// Declining frees the slot.
	if _, appErr := ledger.Transition(context.Background(), event, alice, entity.AssignmentStatusDeclined); appErr != nil {
		t.Fatalf("decline failed: %v", appErr)
	}
	if _, appErr := ledger.Assign(event, bob, teamentity.RolePhotographer); appErr != nil {
		t.Fatalf("assign after decline failed: %v", appErr)
	}

	if len(event.Assignments) != 2 {
		t.Fatalf("assignments = %d, want 2", len(event.Assignments))
	}
}

func TestAssignRejectsDoubleAssignment(t *testing.T) {
	ledger := NewAssignmentLedger(nil)
	event := singleSlotEvent()
	event.VideographersCount = 1
	alice := newMember("Alice", teamentity.RolePhotographer)

	if _, appErr := ledger.Assign(event, alice, teamentity.RolePhotographer); appErr != nil {
		t.Fatalf("assign failed: %v", appErr)
	}

	// A member holding any assignment on the event cannot take another role.
	_, appErr := ledger.Assign(event, alice, teamentity.RoleVideographer)
	if appErr == nil || appErr.Code != apperrors.ErrAlreadyAssigned {
		t.Fatalf("expected already assigned, got %v", appErr)
	}
}

func TestAssignRoleWithoutHeadcount(t *testing.T) {
	ledger := NewAssignmentLedger(nil)
	event := singleSlotEvent()
	eddie := newMember("Eddie", teamentity.RoleEditor)

	_, appErr := ledger.Assign(event, eddie, teamentity.RoleEditor)
	if appErr == nil || appErr.Code != apperrors.ErrCapacityExceeded {
		t.Fatalf("role with zero headcount should be full, got %v", appErr)
	}
}

func TestTransitionUnknownAssignment(t *testing.T) {
	ledger := NewAssignmentLedger(nil)
	event := singleSlotEvent()
	stranger := newMember("Stranger", teamentity.RolePhotographer)

	_, appErr := ledger.Transition(context.Background(), event, stranger, entity.AssignmentStatusAccepted)
	if appErr == nil || appErr.Code != apperrors.ErrUnknownAssignment {
		t.Fatalf("expected unknown assignment, got %v", appErr)
	}
}

func TestTransitionIllegalEdge(t *testing.T) {
	ledger := NewAssignmentLedger(nil)
	event := singleSlotEvent()
	alice := newMember("Alice", teamentity.RolePhotographer)

	if _, appErr := ledger.Assign(event, alice, teamentity.RolePhotographer); appErr != nil {
		t.Fatalf("assign failed: %v", appErr)
	}
	if _, appErr := ledger.Transition(context.Background(), event, alice, entity.AssignmentStatusDeclined); appErr != nil {
		t.Fatalf("decline failed: %v", appErr)
	}

	// declined -> accepted is not a legal edge, it must go through pending.
	_, appErr := ledger.Transition(context.Background(), event, alice, entity.AssignmentStatusAccepted)
	if appErr == nil || appErr.Code != apperrors.ErrIllegalTransition {
		t.Fatalf("expected illegal transition, got %v", appErr)
	}

	a := event.AssignmentFor(alice.ID)
	if a.Status != entity.AssignmentStatusDeclined {
		t.Errorf("status = %s, want declined untouched", a.Status)
	}
}

func TestTransitionNotifiesAffectedMember(t *testing.T) {
	sink := &fakeSink{}
	ledger := NewAssignmentLedger(sink)
	event := singleSlotEvent()
	alice := newMember("Alice", teamentity.RolePhotographer)

	if _, appErr := ledger.Assign(event, alice, teamentity.RolePhotographer); appErr != nil {
		t.Fatalf("assign failed: %v", appErr)
	}
	if _, appErr := ledger.Transition(context.Background(), event, alice, entity.AssignmentStatusAccepted); appErr != nil {
		t.Fatalf("accept failed: %v", appErr)
	}

	if len(sink.notes) != 1 {
		t.Fatalf("notifications = %d, want 1", len(sink.notes))
	}
}

func TestTransitionSurvivesSinkFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("smtp down")}
	ledger := NewAssignmentLedger(sink)
	ledger.clock = func() time.Time { return day("2026-05-10") }
	event := singleSlotEvent()
	alice := newMember("Alice", teamentity.RolePhotographer)

	if _, appErr := ledger.Assign(event, alice, teamentity.RolePhotographer); appErr != nil {
		t.Fatalf("assign failed: %v", appErr)
	}

	got, appErr := ledger.Transition(context.Background(), event, alice, entity.AssignmentStatusAccepted)
	if appErr != nil {
		t.Fatalf("transition should not fail on sink error: %v", appErr)
	}
	if got.Status != entity.AssignmentStatusAccepted {
		t.Errorf("status = %s, want accepted", got.Status)
	}
}
