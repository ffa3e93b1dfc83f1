package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DevTechAI/photosyncwork-sub003/core/errors"
	"github.com/DevTechAI/photosyncwork-sub003/core/logger"
	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"

	"github.com/google/uuid"
)

// NotificationSink delivers a fire-and-forget message to an affected party.
type NotificationSink interface {
	Notify(ctx context.Context, recipientID uuid.UUID, subject, body string) error
}

// AssignmentLedger owns the list of assignments for one event: creation,
// status transitions and capacity enforcement.
type AssignmentLedger struct {
	sink  NotificationSink
	clock func() time.Time
}

func NewAssignmentLedger(sink NotificationSink) *AssignmentLedger {
	return &AssignmentLedger{
		sink:  sink,
		clock: time.Now,
	}
}

// CapacityReached reports whether the role's required headcount is filled.
// Declined and reassigned assignments never count against capacity.
func (l *AssignmentLedger) CapacityReached(event *entity.ScheduledEvent, role teamentity.Role) bool {
	count := 0
	for _, a := range event.Assignments {
		if a.Role == role && a.Status.CountsAgainstCapacity() {
			count++
		}
	}
	return count >= event.RequiredCount(role)
}

// Assign appends a new pending assignment for the member. This is the only
// way new assignments are created.
func (l *AssignmentLedger) Assign(event *entity.ScheduledEvent, member *teamentity.TeamMember, role teamentity.Role) (*entity.EventAssignment, *errors.AppError) {
	if l.CapacityReached(event, role) {
		return nil, errors.NewAppError(errors.ErrCapacityExceeded, "This role is already fully staffed", nil)
	}
	if event.AssignmentFor(member.ID) != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyAssigned, fmt.Sprintf("%s already holds an assignment on this event", member.Name), nil)
	}

	now := l.clock()
	assignment := entity.EventAssignment{
		ID:           uuid.New(),
		EventID:      event.ID,
		TeamMemberID: member.ID,
		Role:         role,
		Status:       entity.AssignmentStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	event.Assignments = append(event.Assignments, assignment)

	return &event.Assignments[len(event.Assignments)-1], nil
}

// Transition moves the member's assignment to a new status along the legal
// edges and triggers a notification to the affected party. The trigger is
// fire-and-forget: a sink failure is logged and never rolls back the
// transition.
func (l *AssignmentLedger) Transition(ctx context.Context, event *entity.ScheduledEvent, member *teamentity.TeamMember, newStatus entity.AssignmentStatus) (*entity.EventAssignment, *errors.AppError) {
	assignment := event.AssignmentFor(member.ID)
	if assignment == nil {
		return nil, errors.NewAppError(errors.ErrUnknownAssignment, "No assignment exists for this member on this event", nil)
	}
	if !assignment.Status.CanTransitionTo(newStatus) {
		return nil, errors.NewAppError(errors.ErrIllegalTransition,
			fmt.Sprintf("Assignment cannot move from %s to %s", assignment.Status, newStatus), nil)
	}

	assignment.Status = newStatus
	assignment.UpdatedAt = l.clock()

	if l.sink != nil {
		subject := fmt.Sprintf("Assignment update: %s", event.Name)
		body := fmt.Sprintf("%s is now %s for %s", member.Name, newStatus, event.Name)
		if err := l.sink.Notify(ctx, member.ID, subject, body); err != nil {
			logger.Warn("AssignmentLedger:Transition:NotifyFailed", "error", err, "event_id", event.ID, "member_id", member.ID)
		}
	}

	return assignment, nil
}
