package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/DevTechAI/photosyncwork-sub003/core/entity"
)

// Role is the single production role a roster member fills.
type Role string

const (
	RolePhotographer  Role = "photographer"
	RoleVideographer  Role = "videographer"
	RoleEditor        Role = "editor"
	RoleProduction    Role = "production"
	RoleAlbumDesigner Role = "album_designer"
)

func (r Role) Valid() bool {
	switch r {
	case RolePhotographer, RoleVideographer, RoleEditor, RoleProduction, RoleAlbumDesigner:
		return true
	}
	return false
}

// AvailabilityState is the per-date availability of a member.
type AvailabilityState string

const (
	AvailabilityAvailable AvailabilityState = "available"
	AvailabilityBusy      AvailabilityState = "busy"
)

// AvailabilityDateLayout keys the availability map by calendar date.
const AvailabilityDateLayout = "2006-01-02"

// AvailabilityMap maps calendar dates to availability. Absence of a key
// means available.
type AvailabilityMap map[string]AvailabilityState

func (a AvailabilityMap) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal(AvailabilityMap{})
	}
	return json.Marshal(a)
}

func (a *AvailabilityMap) Scan(value interface{}) error {
	if value == nil {
		*a = AvailabilityMap{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, a)
}

// TeamMember is a roster entry.
type TeamMember struct {
	Name         string          `db:"name" json:"name"`
	Email        *string         `db:"email" json:"email,omitempty"`
	Phone        *string         `db:"phone" json:"phone,omitempty"`
	Role         Role            `db:"role" json:"role"`
	Availability AvailabilityMap `db:"availability" json:"availability"`
	IsFreelancer bool            `db:"is_freelancer" json:"is_freelancer"`
	entity.BaseEntity
}

// BusyOn reports whether the member is marked busy on the given date.
// Availability is authoritative per date; a missing entry means available.
func (m *TeamMember) BusyOn(date time.Time) bool {
	if m.Availability == nil {
		return false
	}
	return m.Availability[date.Format(AvailabilityDateLayout)] == AvailabilityBusy
}
