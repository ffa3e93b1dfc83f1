package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"

	"github.com/google/uuid"
)

// AssignmentStatus is the acceptance state of one role occupancy.
type AssignmentStatus string

const (
	AssignmentStatusPending    AssignmentStatus = "pending"
	AssignmentStatusAccepted   AssignmentStatus = "accepted"
	AssignmentStatusDeclined   AssignmentStatus = "declined"
	AssignmentStatusReassigned AssignmentStatus = "reassigned"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentStatusPending, AssignmentStatusAccepted, AssignmentStatusDeclined, AssignmentStatusReassigned:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine allows the edge.
// Legal edges: pending -> accepted | declined | reassigned,
// accepted -> pending | reassigned, declined -> pending.
// reassigned is terminal.
func (s AssignmentStatus) CanTransitionTo(next AssignmentStatus) bool {
	switch s {
	case AssignmentStatusPending:
		return next == AssignmentStatusAccepted || next == AssignmentStatusDeclined || next == AssignmentStatusReassigned
	case AssignmentStatusAccepted:
		return next == AssignmentStatusPending || next == AssignmentStatusReassigned
	case AssignmentStatusDeclined:
		return next == AssignmentStatusPending
	}
	return false
}

// CountsAgainstCapacity reports whether an assignment in this status
// occupies a role slot. Declined and reassigned assignments free the slot.
func (s AssignmentStatus) CountsAgainstCapacity() bool {
	return s != AssignmentStatusDeclined && s != AssignmentStatusReassigned
}

// EventAssignment links one team member to one event for one role occupancy.
type EventAssignment struct {
	ID           uuid.UUID        `json:"id"`
	EventID      uuid.UUID        `json:"event_id"`
	TeamMemberID uuid.UUID        `json:"team_member_id"`
	Role         teamentity.Role  `json:"role"`
	Status       AssignmentStatus `json:"status"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Holds reports whether the assignment still binds the member to the event.
// A reassigned occupancy no longer holds its member.
func (a *EventAssignment) Holds() bool {
	return a.Status != AssignmentStatusReassigned
}

// AssignmentList is the JSONB column holding an event's assignments.
type AssignmentList []EventAssignment

func (l AssignmentList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(AssignmentList{})
	}
	return json.Marshal(l)
}

func (l *AssignmentList) Scan(value interface{}) error {
	if value == nil {
		*l = AssignmentList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}
