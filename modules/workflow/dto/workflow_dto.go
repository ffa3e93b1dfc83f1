package dto

import (
	"time"

	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Name               string     `json:"name"`
	Date               time.Time  `json:"event_date"`
	StartTime          *string    `json:"start_time,omitempty"`
	EndTime            *string    `json:"end_time,omitempty"`
	Location           *string    `json:"location,omitempty"`
	ClientName         string     `json:"client_name"`
	ClientContact      *string    `json:"client_contact,omitempty"`
	PhotographersCount int        `json:"photographers_count"`
	VideographersCount int        `json:"videographers_count"`
	Notes              *string    `json:"notes,omitempty"`
	ClientRequirements *string    `json:"client_requirements,omitempty"`
	EstimateID         *uuid.UUID `json:"estimate_id,omitempty"`
}

type AssignMemberRequest struct {
	TeamMemberID uuid.UUID       `json:"team_member_id"`
	Role         teamentity.Role `json:"role"`
}

type RespondToAssignmentRequest struct {
	TeamMemberID uuid.UUID               `json:"team_member_id"`
	Status       entity.AssignmentStatus `json:"status"`
}

type LogTimeRequest struct {
	TeamMemberID uuid.UUID `json:"team_member_id"`
	Hours        float64   `json:"hours"`
}

type UpdateClientRequirementsRequest struct {
	ClientRequirements string `json:"client_requirements"`
}

// EventListResponse marks cache-served results as degraded so callers never
// mistake them for authoritative reads.
type EventListResponse struct {
	Items    []entity.ScheduledEvent `json:"items"`
	Degraded bool                    `json:"degraded"`
}
