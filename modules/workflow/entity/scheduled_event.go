package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/DevTechAI/photosyncwork-sub003/core/entity"
	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"

	"github.com/google/uuid"
)

// Stage is one of the four ordered production phases of a scheduled event.
type Stage string

const (
	StagePreProduction  Stage = "pre_production"
	StageProduction     Stage = "production"
	StagePostProduction Stage = "post_production"
	StageCompleted      Stage = "completed"
)

var stageOrder = []Stage{StagePreProduction, StageProduction, StagePostProduction, StageCompleted}

func (s Stage) Valid() bool {
	for _, st := range stageOrder {
		if s == st {
			return true
		}
	}
	return false
}

// Next returns the following stage. ok is false on completed.
func (s Stage) Next() (Stage, bool) {
	for i, st := range stageOrder {
		if s == st && i < len(stageOrder)-1 {
			return stageOrder[i+1], true
		}
	}
	return s, false
}

// Before reports whether s comes earlier than other in the workflow order.
func (s Stage) Before(other Stage) bool {
	si, oi := -1, -1
	for i, st := range stageOrder {
		if s == st {
			si = i
		}
		if other == st {
			oi = i
		}
	}
	return si >= 0 && oi >= 0 && si < oi
}

// TimeEntry is one member's logged hours for one calendar day.
type TimeEntry struct {
	TeamMemberID uuid.UUID `json:"team_member_id"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Hours        float64   `json:"hours"`
}

type TimeEntryList []TimeEntry

func (l TimeEntryList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(TimeEntryList{})
	}
	return json.Marshal(l)
}

func (l *TimeEntryList) Scan(value interface{}) error {
	if value == nil {
		*l = TimeEntryList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

// Deliverable is one promised output of the job (gallery, album, film cut).
type Deliverable struct {
	ID      uuid.UUID  `json:"id"`
	Name    string     `json:"name"`
	Status  string     `json:"status"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

type DeliverableList []Deliverable

func (l DeliverableList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(DeliverableList{})
	}
	return json.Marshal(l)
}

func (l *DeliverableList) Scan(value interface{}) error {
	if value == nil {
		*l = DeliverableList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

// QualityCheck records the final review of the delivered work.
type QualityCheck struct {
	CheckedBy uuid.UUID `json:"checked_by"`
	CheckedAt time.Time `json:"checked_at"`
	Passed    bool      `json:"passed"`
	Notes     string    `json:"notes,omitempty"`
}

// NullQualityCheck is a nullable JSONB quality check column.
type NullQualityCheck struct {
	QualityCheck
	Valid bool `json:"-"`
}

func (n NullQualityCheck) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return json.Marshal(n.QualityCheck)
}

func (n *NullQualityCheck) Scan(value interface{}) error {
	if value == nil {
		n.Valid = false
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	if err := json.Unmarshal(b, &n.QualityCheck); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n NullQualityCheck) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.QualityCheck)
}

func (n *NullQualityCheck) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		n.Valid = false
		return nil
	}
	if err := json.Unmarshal(b, &n.QualityCheck); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// ScheduledEvent is one production job.
type ScheduledEvent struct {
	JobCode            string           `db:"job_code" json:"job_code"`
	Slug               string           `db:"slug" json:"slug"`
	Name               string           `db:"name" json:"name"`
	Date               time.Time        `db:"event_date" json:"event_date"`
	StartTime          *string          `db:"start_time" json:"start_time,omitempty"` // HH:MM
	EndTime            *string          `db:"end_time" json:"end_time,omitempty"`
	Location           *string          `db:"location" json:"location,omitempty"`
	ClientName         string           `db:"client_name" json:"client_name"`
	ClientContact      *string          `db:"client_contact" json:"client_contact,omitempty"`
	PhotographersCount int              `db:"photographers_count" json:"photographers_count"`
	VideographersCount int              `db:"videographers_count" json:"videographers_count"`
	Stage              Stage            `db:"stage" json:"stage"`
	Assignments        AssignmentList   `db:"assignments" json:"assignments"`
	Notes              *string          `db:"notes" json:"notes,omitempty"`
	ClientRequirements *string          `db:"client_requirements" json:"client_requirements,omitempty"`
	TimeTracking       TimeEntryList    `db:"time_tracking" json:"time_tracking"`
	Deliverables       DeliverableList  `db:"deliverables" json:"deliverables"`
	DataCopied         bool             `db:"data_copied" json:"data_copied"`
	EstimateID         *uuid.UUID       `db:"estimate_id" json:"estimate_id,omitempty"`
	QualityCheck       NullQualityCheck `db:"quality_check" json:"quality_check"`
	Version            int64            `db:"version" json:"version"`
	entity.BaseEntity
}

// RequiredCount returns the required headcount for a role on this event.
// Only photographers and videographers carry a headcount.
func (e *ScheduledEvent) RequiredCount(role teamentity.Role) int {
	switch role {
	case teamentity.RolePhotographer:
		return e.PhotographersCount
	case teamentity.RoleVideographer:
		return e.VideographersCount
	}
	return 0
}

// AssignmentFor returns the member's holding assignment on this event, if
// any. Reassigned occupancies do not bind the member.
func (e *ScheduledEvent) AssignmentFor(memberID uuid.UUID) *EventAssignment {
	for i := range e.Assignments {
		a := &e.Assignments[i]
		if a.TeamMemberID == memberID && a.Holds() {
			return a
		}
	}
	return nil
}

// Clone returns a deep copy safe to mutate without publishing the change.
func (e *ScheduledEvent) Clone() *ScheduledEvent {
	cp := *e
	cp.Assignments = append(AssignmentList(nil), e.Assignments...)
	cp.TimeTracking = append(TimeEntryList(nil), e.TimeTracking...)
	cp.Deliverables = append(DeliverableList(nil), e.Deliverables...)
	return &cp
}
