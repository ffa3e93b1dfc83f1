package service

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/DevTechAI/photosyncwork-sub003/core/errors"
	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"
	teamservice "github.com/DevTechAI/photosyncwork-sub003/modules/team/service"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/dto"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"

	"github.com/google/uuid"
)

type fakeStore struct {
	events   map[uuid.UUID]*entity.ScheduledEvent
	degraded bool
	saveErr  *apperrors.AppError
	saves    int
}

func newFakeStore(events ...*entity.ScheduledEvent) *fakeStore {
	s := &fakeStore{events: make(map[uuid.UUID]*entity.ScheduledEvent)}
	for _, ev := range events {
		s.events[ev.ID] = ev.Clone()
	}
	return s
}

func (s *fakeStore) Load(ctx context.Context, stage entity.Stage) ([]entity.ScheduledEvent, bool, *apperrors.AppError) {
	out := make([]entity.ScheduledEvent, 0, len(s.events))
	for _, ev := range s.events {
		if stage == "" || ev.Stage == stage {
			out = append(out, *ev.Clone())
		}
	}
	return out, s.degraded, nil
}

func (s *fakeStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledEvent, bool, *apperrors.AppError) {
	ev, ok := s.events[id]
	if !ok {
		return nil, false, apperrors.NewAppError(apperrors.ErrNotFound, "event not found", nil)
	}
	return ev.Clone(), s.degraded, nil
}

func (s *fakeStore) Save(ctx context.Context, event *entity.ScheduledEvent) *apperrors.AppError {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.events[event.ID] = event.Clone()
	return nil
}

func (s *fakeStore) Remove(ctx context.Context, id uuid.UUID) *apperrors.AppError {
	delete(s.events, id)
	return nil
}

type fakeRoster struct {
	members []teamentity.TeamMember
}

func (r *fakeRoster) GetMemberByID(ctx context.Context, id uuid.UUID) (*teamentity.TeamMember, error) {
	for i := range r.members {
		if r.members[i].ID == id {
			return &r.members[i], nil
		}
	}
	return nil, nil
}

func (r *fakeRoster) ListMembers(ctx context.Context) ([]teamentity.TeamMember, error) {
	return r.members, nil
}

type allowAll struct{}

func (allowAll) MayAssign(ctx context.Context, actorID, eventID uuid.UUID) bool { return true }

type denyAll struct{}

func (denyAll) MayAssign(ctx context.Context, actorID, eventID uuid.UUID) bool { return false }

func newCoordinator(store *fakeStore, roster *fakeRoster, authz AuthorizationCheck) *WorkflowCoordinator {
	return NewWorkflowCoordinator(store, roster, NewAssignmentLedger(&fakeSink{}), teamservice.NewAvailabilityFilter(), NewStageEngine(), authz)
}

func TestCreateEventRequiresNameAndDate(t *testing.T) {
	c := newCoordinator(newFakeStore(), &fakeRoster{}, allowAll{})

	_, appErr := c.CreateEvent(context.Background(), &dto.CreateEventRequest{Date: day("2026-06-01")})
	if appErr == nil || appErr.Code != apperrors.ErrInvalidInput {
		t.Fatalf("expected invalid input for missing name, got %v", appErr)
	}

	_, appErr = c.CreateEvent(context.Background(), &dto.CreateEventRequest{Name: "Wedding"})
	if appErr == nil || appErr.Code != apperrors.ErrInvalidInput {
		t.Fatalf("expected invalid input for missing date, got %v", appErr)
	}
}

func TestCreateEventStartsAtPreProduction(t *testing.T) {
	store := newFakeStore()
	c := newCoordinator(store, &fakeRoster{}, allowAll{})

	event, appErr := c.CreateEvent(context.Background(), &dto.CreateEventRequest{
		Name:               "Wedding Tran-Le",
		Date:               day("2026-06-01"),
		ClientName:         "Tran Le",
		PhotographersCount: 2,
	})
	if appErr != nil {
		t.Fatalf("create failed: %v", appErr)
	}

	if event.Stage != entity.StagePreProduction {
		t.Errorf("stage = %s, want pre_production", event.Stage)
	}
	if event.JobCode == "" || event.Slug == "" {
		t.Error("job code and slug should be generated")
	}
	if _, ok := store.events[event.ID]; !ok {
		t.Error("event was not persisted")
	}
}

func TestAssignMemberPersistsPendingAssignment(t *testing.T) {
	event := singleSlotEvent()
	alice := newMember("Alice", teamentity.RolePhotographer)
	store := newFakeStore(event)
	c := newCoordinator(store, &fakeRoster{members: []teamentity.TeamMember{*alice}}, allowAll{})

	assignment, appErr := c.AssignMember(context.Background(), uuid.New(), event.ID, alice.ID, teamentity.RolePhotographer)
	if appErr != nil {
		t.Fatalf("assign failed: %v", appErr)
	}
	if assignment.Status != entity.AssignmentStatusPending {
		t.Errorf("status = %s, want pending", assignment.Status)
	}

	stored := store.events[event.ID]
	if len(stored.Assignments) != 1 {
		t.Fatalf("persisted assignments = %d, want 1", len(stored.Assignments))
	}
}

func TestAssignMemberRollsBackOnStoreFailure(t *testing.T) {
	event := singleSlotEvent()
	alice := newMember("Alice", teamentity.RolePhotographer)
	store := newFakeStore(event)
	store.saveErr = apperrors.NewAppError(apperrors.ErrStoreUnavailable, "event store unavailable", nil)
	c := newCoordinator(store, &fakeRoster{members: []teamentity.TeamMember{*alice}}, allowAll{})

	_, appErr := c.AssignMember(context.Background(), uuid.New(), event.ID, alice.ID, teamentity.RolePhotographer)
	if appErr == nil || appErr.Code != apperrors.ErrStoreUnavailable {
		t.Fatalf("expected store unavailable, got %v", appErr)
	}

	stored := store.events[event.ID]
	if len(stored.Assignments) != 0 {
		t.Error("failed save must not leave a partially applied assignment")
	}
}

func TestAssignMemberForbiddenWithoutPermission(t *testing.T) {
	event := singleSlotEvent()
	alice := newMember("Alice", teamentity.RolePhotographer)
	store := newFakeStore(event)
	c := newCoordinator(store, &fakeRoster{members: []teamentity.TeamMember{*alice}}, denyAll{})

	_, appErr := c.AssignMember(context.Background(), uuid.New(), event.ID, alice.ID, teamentity.RolePhotographer)
	if appErr == nil || appErr.Code != apperrors.ErrForbidden {
		t.Fatalf("expected forbidden, got %v", appErr)
	}
}

func TestRespondToAssignmentPersistsAcceptance(t *testing.T) {
	event := singleSlotEvent()
	alice := newMember("Alice", teamentity.RolePhotographer)
	store := newFakeStore(event)
	c := newCoordinator(store, &fakeRoster{members: []teamentity.TeamMember{*alice}}, allowAll{})

	if _, appErr := c.AssignMember(context.Background(), uuid.New(), event.ID, alice.ID, teamentity.RolePhotographer); appErr != nil {
		t.Fatalf("assign failed: %v", appErr)
	}

	assignment, appErr := c.RespondToAssignment(context.Background(), event.ID, alice.ID, entity.AssignmentStatusAccepted)
	if appErr != nil {
		t.Fatalf("respond failed: %v", appErr)
	}
	if assignment.Status != entity.AssignmentStatusAccepted {
		t.Errorf("status = %s, want accepted", assignment.Status)
	}

	stored := store.events[event.ID]
	if stored.Assignments[0].Status != entity.AssignmentStatusAccepted {
		t.Error("acceptance was not persisted")
	}
}

func TestLogTimeMergesSameMemberSameDay(t *testing.T) {
	event := singleSlotEvent()
	alice := newMember("Alice", teamentity.RolePhotographer)
	store := newFakeStore(event)
	c := newCoordinator(store, &fakeRoster{members: []teamentity.TeamMember{*alice}}, allowAll{})
	c.clock = func() time.Time { return day("2026-05-10") }

	if _, appErr := c.LogTime(context.Background(), event.ID, alice.ID, 2); appErr != nil {
		t.Fatalf("first log failed: %v", appErr)
	}
	entry, appErr := c.LogTime(context.Background(), event.ID, alice.ID, 3)
	if appErr != nil {
		t.Fatalf("second log failed: %v", appErr)
	}

	if entry.Hours != 5 {
		t.Errorf("hours = %v, want 5", entry.Hours)
	}
	stored := store.events[event.ID]
	if len(stored.TimeTracking) != 1 {
		t.Fatalf("time entries = %d, want 1 merged entry", len(stored.TimeTracking))
	}
}

func TestLogTimeSeparatesDaysAndMembers(t *testing.T) {
	event := singleSlotEvent()
	alice := newMember("Alice", teamentity.RolePhotographer)
	bob := newMember("Bob", teamentity.RolePhotographer)
	store := newFakeStore(event)
	c := newCoordinator(store, &fakeRoster{members: []teamentity.TeamMember{*alice, *bob}}, allowAll{})

	c.clock = func() time.Time { return day("2026-05-10") }
	if _, appErr := c.LogTime(context.Background(), event.ID, alice.ID, 2); appErr != nil {
		t.Fatalf("log failed: %v", appErr)
	}
	if _, appErr := c.LogTime(context.Background(), event.ID, bob.ID, 4); appErr != nil {
		t.Fatalf("log failed: %v", appErr)
	}

	c.clock = func() time.Time { return day("2026-05-11") }
	if _, appErr := c.LogTime(context.Background(), event.ID, alice.ID, 1); appErr != nil {
		t.Fatalf("log failed: %v", appErr)
	}

	stored := store.events[event.ID]
	if len(stored.TimeTracking) != 3 {
		t.Fatalf("time entries = %d, want 3", len(stored.TimeTracking))
	}

	_, appErr := c.LogTime(context.Background(), event.ID, alice.ID, 0)
	if appErr == nil || appErr.Code != apperrors.ErrInvalidInput {
		t.Fatalf("expected invalid input for zero hours, got %v", appErr)
	}
}

func TestAdvanceByDateMovesOneStage(t *testing.T) {
	event := singleSlotEvent()
	event.Date = day("2026-01-01")
	store := newFakeStore(event)
	c := newCoordinator(store, &fakeRoster{}, allowAll{})

	moved, appErr := c.AdvanceByDate(context.Background(), []entity.ScheduledEvent{*store.events[event.ID]}, day("2026-05-10"))
	if appErr != nil {
		t.Fatalf("advance failed: %v", appErr)
	}
	if len(moved) != 1 {
		t.Fatalf("moved = %d, want 1", len(moved))
	}
	if store.events[event.ID].Stage != entity.StageProduction {
		t.Errorf("stage = %s, want production after one batch", store.events[event.ID].Stage)
	}
}

func TestListEventsAdvancesFreshlyLoaded(t *testing.T) {
	event := singleSlotEvent()
	event.Date = day("2026-01-01")
	store := newFakeStore(event)
	c := newCoordinator(store, &fakeRoster{}, allowAll{})
	c.clock = func() time.Time { return day("2026-05-10") }

	resp, appErr := c.ListEvents(context.Background(), "")
	if appErr != nil {
		t.Fatalf("list failed: %v", appErr)
	}
	if resp.Degraded {
		t.Error("result should not be degraded")
	}
	if resp.Items[0].Stage != entity.StageProduction {
		t.Errorf("listed stage = %s, want production", resp.Items[0].Stage)
	}
	if store.events[event.ID].Stage != entity.StageProduction {
		t.Error("advance on load was not persisted")
	}
}

func TestListEventsStageFilterExcludesJustAdvanced(t *testing.T) {
	past := singleSlotEvent()
	past.Date = day("2026-01-01")
	current := singleSlotEvent()
	current.Date = day("2026-06-01")
	store := newFakeStore(past, current)
	c := newCoordinator(store, &fakeRoster{}, allowAll{})
	c.clock = func() time.Time { return day("2026-05-10") }

	resp, appErr := c.ListEvents(context.Background(), entity.StagePreProduction)
	if appErr != nil {
		t.Fatalf("list failed: %v", appErr)
	}

	// The past-dated event advanced to production on load, so a
	// pre_production listing must not include it.
	if len(resp.Items) != 1 || resp.Items[0].ID != current.ID {
		t.Fatalf("items = %d, want only the still-pre_production event", len(resp.Items))
	}
	if store.events[past.ID].Stage != entity.StageProduction {
		t.Error("advance on load should still be persisted")
	}
}

func TestListEventsDegradedSkipsAdvance(t *testing.T) {
	event := singleSlotEvent()
	event.Date = day("2026-01-01")
	store := newFakeStore(event)
	store.degraded = true
	c := newCoordinator(store, &fakeRoster{}, allowAll{})
	c.clock = func() time.Time { return day("2026-05-10") }

	resp, appErr := c.ListEvents(context.Background(), "")
	if appErr != nil {
		t.Fatalf("list failed: %v", appErr)
	}
	if !resp.Degraded {
		t.Fatal("result should be marked degraded")
	}
	if resp.Items[0].Stage != entity.StagePreProduction {
		t.Error("cache-served events must not be advanced")
	}
	if store.saves != 0 {
		t.Error("no writes should happen on a degraded read")
	}
}

func TestDeleteEventRefusedWhileDegraded(t *testing.T) {
	event := singleSlotEvent()
	store := newFakeStore(event)
	store.degraded = true
	c := newCoordinator(store, &fakeRoster{}, allowAll{})

	appErr := c.DeleteEvent(context.Background(), event.ID)
	if appErr == nil || appErr.Code != apperrors.ErrStoreUnavailable {
		t.Fatalf("expected store unavailable, got %v", appErr)
	}
	if _, ok := store.events[event.ID]; !ok {
		t.Error("event must survive a refused delete")
	}
}

func TestDeleteEventClearsDataCopiedFirst(t *testing.T) {
	event := singleSlotEvent()
	event.DataCopied = true
	store := newFakeStore(event)
	c := newCoordinator(store, &fakeRoster{}, allowAll{})

	if appErr := c.DeleteEvent(context.Background(), event.ID); appErr != nil {
		t.Fatalf("delete failed: %v", appErr)
	}
	if _, ok := store.events[event.ID]; ok {
		t.Error("event should be removed")
	}
	if store.saves != 1 {
		t.Errorf("saves = %d, want 1 flag retraction before removal", store.saves)
	}
}

func TestListCandidatesFollowsRosterOrder(t *testing.T) {
	event := singleSlotEvent()
	event.PhotographersCount = 3
	event.Date = day("2026-06-01")
	alice := newMember("Alice", teamentity.RolePhotographer)
	bob := newMember("Bob", teamentity.RolePhotographer)
	carol := newMember("Carol", teamentity.RoleVideographer)
	bob.Availability = teamentity.AvailabilityMap{"2026-06-01": teamentity.AvailabilityBusy}

	store := newFakeStore(event)
	roster := &fakeRoster{members: []teamentity.TeamMember{*alice, *bob, *carol}}
	c := newCoordinator(store, roster, allowAll{})

	candidates, appErr := c.ListCandidates(context.Background(), event.ID, teamentity.RolePhotographer)
	if appErr != nil {
		t.Fatalf("list candidates failed: %v", appErr)
	}
	if len(candidates) != 1 || candidates[0].Name != "Alice" {
		t.Fatalf("candidates = %v, want only Alice", candidates)
	}
}
