package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/DevTechAI/photosyncwork-sub003/core/errors"
	"github.com/DevTechAI/photosyncwork-sub003/core/logger"
	"github.com/DevTechAI/photosyncwork-sub003/core/utils"
	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"
	teamservice "github.com/DevTechAI/photosyncwork-sub003/modules/team/service"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/dto"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EventPersistence is the store contract the coordinator mutates through.
type EventPersistence interface {
	Load(ctx context.Context, stage entity.Stage) ([]entity.ScheduledEvent, bool, *errors.AppError)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledEvent, bool, *errors.AppError)
	Save(ctx context.Context, event *entity.ScheduledEvent) *errors.AppError
	Remove(ctx context.Context, id uuid.UUID) *errors.AppError
}

// Roster is the slice of the team repository the coordinator consumes.
type Roster interface {
	GetMemberByID(ctx context.Context, id uuid.UUID) (*teamentity.TeamMember, error)
	ListMembers(ctx context.Context) ([]teamentity.TeamMember, error)
}

// AuthorizationCheck is the external permission inquiry.
type AuthorizationCheck interface {
	MayAssign(ctx context.Context, actorID, eventID uuid.UUID) bool
}

// WorkflowCoordinator is the sole mutator of an event's stage and
// assignments. Every command validates, mutates a working copy, persists
// through the EventStore, and only then publishes the result; on store
// failure nothing observable changes and the error surfaces to the caller.
type WorkflowCoordinator struct {
	store  EventPersistence
	roster Roster
	ledger *AssignmentLedger
	filter *teamservice.AvailabilityFilter
	engine *StageEngine
	authz  AuthorizationCheck
	clock  func() time.Time

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewWorkflowCoordinator(store EventPersistence, roster Roster, ledger *AssignmentLedger, filter *teamservice.AvailabilityFilter, engine *StageEngine, authz AuthorizationCheck) *WorkflowCoordinator {
	return &WorkflowCoordinator{
		store:  store,
		roster: roster,
		ledger: ledger,
		filter: filter,
		engine: engine,
		authz:  authz,
		clock:  time.Now,
		locks:  make(map[uuid.UUID]*sync.Mutex),
	}
}

// lockEvent serializes commands per event id. Commands for different events
// proceed in parallel.
func (c *WorkflowCoordinator) lockEvent(id uuid.UUID) func() {
	c.mu.Lock()
	l, ok := c.locks[id]
	if !ok {
		l = &sync.Mutex{}
		c.locks[id] = l
	}
	c.mu.Unlock()

	l.Lock()
	return l.Unlock
}

func (c *WorkflowCoordinator) member(ctx context.Context, id uuid.UUID) (*teamentity.TeamMember, *errors.AppError) {
	member, err := c.roster.GetMemberByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreUnavailable, "failed to read roster", err)
	}
	if member == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Team member not found", nil)
	}
	return member, nil
}

// CreateEvent manually schedules a job, or materializes one from an approved
// estimate when EstimateID is set.
func (c *WorkflowCoordinator) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*entity.ScheduledEvent, *errors.AppError) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event name is required", nil)
	}
	if req.Date.IsZero() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Event date is required", nil)
	}
	if req.PhotographersCount < 0 || req.VideographersCount < 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Headcounts cannot be negative", nil)
	}

	now := c.clock()
	event := &entity.ScheduledEvent{
		JobCode:            utils.GenerateJobCode(),
		Slug:               slug.Make(req.Name),
		Name:               strings.TrimSpace(req.Name),
		Date:               req.Date,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		Location:           req.Location,
		ClientName:         req.ClientName,
		ClientContact:      req.ClientContact,
		PhotographersCount: req.PhotographersCount,
		VideographersCount: req.VideographersCount,
		Stage:              entity.StagePreProduction,
		Assignments:        entity.AssignmentList{},
		Notes:              req.Notes,
		ClientRequirements: req.ClientRequirements,
		TimeTracking:       entity.TimeEntryList{},
		Deliverables:       entity.DeliverableList{},
		EstimateID:         req.EstimateID,
	}
	event.ID = uuid.New()
	event.CreatedAt = now
	event.UpdatedAt = now

	if appErr := c.store.Save(ctx, event); appErr != nil {
		return nil, appErr
	}

	logger.Info("WorkflowCoordinator:CreateEvent:Success", "event_id", event.ID, "job_code", event.JobCode)
	return event, nil
}

// AssignMember assigns a roster member to a role on the event.
func (c *WorkflowCoordinator) AssignMember(ctx context.Context, actorID, eventID, memberID uuid.UUID, role teamentity.Role) (*entity.EventAssignment, *errors.AppError) {
	if !role.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown role", nil)
	}
	if c.authz != nil && !c.authz.MayAssign(ctx, actorID, eventID) {
		return nil, errors.NewAppError(errors.ErrForbidden, "You are not allowed to assign members to this event", nil)
	}

	unlock := c.lockEvent(eventID)
	defer unlock()

	event, _, appErr := c.store.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	member, appErr := c.member(ctx, memberID)
	if appErr != nil {
		return nil, appErr
	}

	working := event.Clone()
	assignment, appErr := c.ledger.Assign(working, member, role)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := c.store.Save(ctx, working); appErr != nil {
		logger.Error("WorkflowCoordinator:AssignMember:SaveFailed", "error", appErr, "event_id", eventID)
		return nil, appErr
	}

	logger.Info("WorkflowCoordinator:AssignMember:Success",
		"event_id", eventID, "member_id", memberID, "role", role)
	return assignment, nil
}

// RespondToAssignment records an accept/decline/revert/reassign decision.
func (c *WorkflowCoordinator) RespondToAssignment(ctx context.Context, eventID, memberID uuid.UUID, status entity.AssignmentStatus) (*entity.EventAssignment, *errors.AppError) {
	if !status.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown assignment status", nil)
	}

	unlock := c.lockEvent(eventID)
	defer unlock()

	event, _, appErr := c.store.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	member, appErr := c.member(ctx, memberID)
	if appErr != nil {
		return nil, appErr
	}

	working := event.Clone()
	assignment, appErr := c.ledger.Transition(ctx, working, member, status)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := c.store.Save(ctx, working); appErr != nil {
		logger.Error("WorkflowCoordinator:RespondToAssignment:SaveFailed", "error", appErr, "event_id", eventID)
		return nil, appErr
	}

	return assignment, nil
}

// AdvanceByDate runs the date rule over the given events, moving each at
// most one stage this batch. Events whose save fails are skipped and the
// last store error surfaces after the batch completes.
func (c *WorkflowCoordinator) AdvanceByDate(ctx context.Context, events []entity.ScheduledEvent, today time.Time) ([]entity.ScheduledEvent, *errors.AppError) {
	moved := make([]entity.ScheduledEvent, 0)
	var lastErr *errors.AppError

	for i := range events {
		unlock := c.lockEvent(events[i].ID)
		working := events[i].Clone()
		if !c.engine.Advance(working, today) {
			unlock()
			continue
		}
		if appErr := c.store.Save(ctx, working); appErr != nil {
			logger.Error("WorkflowCoordinator:AdvanceByDate:SaveFailed", "error", appErr, "event_id", working.ID)
			lastErr = appErr
			unlock()
			continue
		}
		moved = append(moved, *working)
		unlock()
	}

	if len(moved) > 0 {
		logger.Info("WorkflowCoordinator:AdvanceByDate:Moved", "count", len(moved))
	}
	return moved, lastErr
}

// MarkDataCopied flags the shoot data as copied and moves the event into
// post-production ahead of date when needed.
func (c *WorkflowCoordinator) MarkDataCopied(ctx context.Context, eventID uuid.UUID) (*entity.ScheduledEvent, *errors.AppError) {
	unlock := c.lockEvent(eventID)
	defer unlock()

	event, _, appErr := c.store.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	working := event.Clone()
	c.engine.MarkDataCopied(working)

	if appErr := c.store.Save(ctx, working); appErr != nil {
		return nil, appErr
	}
	return working, nil
}

// MoveToPostProduction is the manual stage override.
func (c *WorkflowCoordinator) MoveToPostProduction(ctx context.Context, eventID uuid.UUID) (*entity.ScheduledEvent, *errors.AppError) {
	unlock := c.lockEvent(eventID)
	defer unlock()

	event, _, appErr := c.store.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	working := event.Clone()
	if !c.engine.MoveToPostProduction(working) {
		return working, nil
	}

	if appErr := c.store.Save(ctx, working); appErr != nil {
		return nil, appErr
	}
	return working, nil
}

// ClearDataCopied is the explicit "delete completed reference" operation.
// It only retracts the data-copied flag; the stage stays where it is.
func (c *WorkflowCoordinator) ClearDataCopied(ctx context.Context, eventID uuid.UUID) (*entity.ScheduledEvent, *errors.AppError) {
	unlock := c.lockEvent(eventID)
	defer unlock()

	event, _, appErr := c.store.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	working := event.Clone()
	c.engine.ClearDataCopied(working)

	if appErr := c.store.Save(ctx, working); appErr != nil {
		return nil, appErr
	}
	return working, nil
}

// LogTime merges hours into the member's entry for today instead of
// appending a duplicate. This is the one place merge-on-key replaces append.
func (c *WorkflowCoordinator) LogTime(ctx context.Context, eventID, memberID uuid.UUID, hours float64) (*entity.TimeEntry, *errors.AppError) {
	if hours <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Hours must be positive", nil)
	}

	unlock := c.lockEvent(eventID)
	defer unlock()

	event, _, appErr := c.store.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	if _, appErr := c.member(ctx, memberID); appErr != nil {
		return nil, appErr
	}

	working := event.Clone()
	day := c.clock().Format(dateLayout)

	var entry *entity.TimeEntry
	for i := range working.TimeTracking {
		t := &working.TimeTracking[i]
		if t.TeamMemberID == memberID && t.Date == day {
			t.Hours += hours
			entry = t
			break
		}
	}
	if entry == nil {
		working.TimeTracking = append(working.TimeTracking, entity.TimeEntry{
			TeamMemberID: memberID,
			Date:         day,
			Hours:        hours,
		})
		entry = &working.TimeTracking[len(working.TimeTracking)-1]
	}

	if appErr := c.store.Save(ctx, working); appErr != nil {
		return nil, appErr
	}
	return entry, nil
}

// UpdateClientRequirements replaces the free-text client requirements.
func (c *WorkflowCoordinator) UpdateClientRequirements(ctx context.Context, eventID uuid.UUID, text string) (*entity.ScheduledEvent, *errors.AppError) {
	unlock := c.lockEvent(eventID)
	defer unlock()

	event, _, appErr := c.store.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	working := event.Clone()
	working.ClientRequirements = &text

	if appErr := c.store.Save(ctx, working); appErr != nil {
		return nil, appErr
	}
	return working, nil
}

// DeleteEvent removes the event by explicit user action, retracting its
// data-copied flag first so no stale copy claims the data was secured.
func (c *WorkflowCoordinator) DeleteEvent(ctx context.Context, eventID uuid.UUID) *errors.AppError {
	unlock := c.lockEvent(eventID)
	defer unlock()

	event, degraded, appErr := c.store.GetByID(ctx, eventID)
	if appErr != nil {
		return appErr
	}
	if degraded {
		return errors.NewAppError(errors.ErrStoreUnavailable, "cannot remove an event while the store is unreachable", nil)
	}

	working := event.Clone()
	c.engine.ClearDataCopied(working)
	if appErr := c.store.Save(ctx, working); appErr != nil {
		return appErr
	}

	return c.store.Remove(ctx, eventID)
}

// ListEvents loads events for a stage. Loading is the observation window for
// the date rule: each freshly loaded event is advanced at most one stage and
// persisted, unless the result is degraded (cache-served reads are never
// written back).
func (c *WorkflowCoordinator) ListEvents(ctx context.Context, stage entity.Stage) (*dto.EventListResponse, *errors.AppError) {
	events, degraded, appErr := c.store.Load(ctx, stage)
	if appErr != nil {
		return nil, appErr
	}
	if degraded {
		return &dto.EventListResponse{Items: events, Degraded: true}, nil
	}

	today := c.clock()
	out := make([]entity.ScheduledEvent, 0, len(events))
	for i := range events {
		working := events[i].Clone()
		if c.engine.Advance(working, today) {
			if saveErr := c.store.Save(ctx, working); saveErr != nil {
				logger.Warn("WorkflowCoordinator:ListEvents:AdvanceSaveFailed", "error", saveErr, "event_id", working.ID)
				out = append(out, events[i])
				continue
			}
			// The advance may have moved the event out of the requested stage.
			if stage != "" && working.Stage != stage {
				continue
			}
		}
		out = append(out, *working)
	}

	return &dto.EventListResponse{Items: out, Degraded: false}, nil
}

// ListCandidates returns eligible members for a role on the event, in roster
// order.
func (c *WorkflowCoordinator) ListCandidates(ctx context.Context, eventID uuid.UUID, role teamentity.Role) ([]teamentity.TeamMember, *errors.AppError) {
	if !role.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown role", nil)
	}

	event, _, appErr := c.store.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	roster, err := c.roster.ListMembers(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreUnavailable, "failed to read roster", err)
	}

	return c.filter.CandidatesFor(roster, event, role), nil
}

// ListAssignments returns the event's assignments with resolved members.
func (c *WorkflowCoordinator) ListAssignments(ctx context.Context, eventID uuid.UUID) ([]teamservice.AssignedEntry, *errors.AppError) {
	event, _, appErr := c.store.GetByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	roster, err := c.roster.ListMembers(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrStoreUnavailable, "failed to read roster", err)
	}

	return c.filter.AssignedFor(event, roster), nil
}
