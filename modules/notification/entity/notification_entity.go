package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/DevTechAI/photosyncwork-sub003/core/entity"

	"github.com/google/uuid"
)

const (
	TypeAssignmentUpdate = "assignment_update"
	TypeStageChange      = "stage_change"
)

type Notification struct {
	RecipientID uuid.UUID `db:"recipient_id" json:"recipient_id"`
	Subject     string    `db:"subject" json:"subject"`
	Body        string    `db:"body" json:"body"`
	Type        string    `db:"type" json:"type"`
	Data        JSONB     `db:"data" json:"data"`
	IsRead      bool      `db:"is_read" json:"is_read"`
	entity.BaseEntity
}

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
