package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/DevTechAI/photosyncwork-sub003/core/database"
	"github.com/DevTechAI/photosyncwork-sub003/core/logger"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"

	"github.com/google/uuid"
)

// ErrStaleVersion is returned by Update when the optimistic version guard
// matched no row.
var ErrStaleVersion = errors.New("store: stale version")

// StoreBackend is the authoritative persistence contract. Any store
// satisfying these operations can back the EventStore.
type StoreBackend interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.ScheduledEvent, error)
	Query(ctx context.Context, stage entity.Stage) ([]entity.ScheduledEvent, error)
	Insert(ctx context.Context, event *entity.ScheduledEvent) error
	Update(ctx context.Context, id uuid.UUID, event *entity.ScheduledEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
}

const eventColumns = `
	id, job_code, slug, name, event_date, start_time, end_time, location,
	client_name, client_contact, photographers_count, videographers_count,
	stage, assignments, notes, client_requirements, time_tracking,
	deliverables, data_copied, estimate_id, quality_check, version,
	created_at, updated_at`

// EventRepository is the Postgres StoreBackend.
type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) Get(ctx context.Context, id uuid.UUID) (*entity.ScheduledEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM scheduled_events WHERE id = $1`

	var event entity.ScheduledEvent
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:Get", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) Query(ctx context.Context, stage entity.Stage) ([]entity.ScheduledEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM scheduled_events`
	args := []any{}
	if stage != "" {
		query += ` WHERE stage = $1`
		args = append(args, stage)
	}
	query += ` ORDER BY event_date ASC, created_at ASC`

	var events []entity.ScheduledEvent
	err := r.DB.SelectContext(ctx, &events, query, args...)
	if err != nil {
		logger.Error("EventRepository:Query", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) Insert(ctx context.Context, event *entity.ScheduledEvent) error {
	query := `
		INSERT INTO scheduled_events (
			id, job_code, slug, name, event_date, start_time, end_time, location,
			client_name, client_contact, photographers_count, videographers_count,
			stage, assignments, notes, client_requirements, time_tracking,
			deliverables, data_copied, estimate_id, quality_check, version,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22,
			NOW(), NOW()
		)
	`

	err := r.DB.ExecContext(ctx, query,
		event.ID, event.JobCode, event.Slug, event.Name, event.Date,
		event.StartTime, event.EndTime, event.Location,
		event.ClientName, event.ClientContact,
		event.PhotographersCount, event.VideographersCount,
		event.Stage, event.Assignments, event.Notes, event.ClientRequirements,
		event.TimeTracking, event.Deliverables, event.DataCopied,
		event.EstimateID, event.QualityCheck, event.Version)
	if err != nil {
		logger.Error("EventRepository:Insert", err)
		return err
	}

	return nil
}

// Update replaces the full row. The WHERE clause guards on the caller's
// version; no matching row means a concurrent writer got there first.
func (r *EventRepository) Update(ctx context.Context, id uuid.UUID, event *entity.ScheduledEvent) error {
	query := `
		UPDATE scheduled_events SET
			job_code = $2, slug = $3, name = $4, event_date = $5,
			start_time = $6, end_time = $7, location = $8,
			client_name = $9, client_contact = $10,
			photographers_count = $11, videographers_count = $12,
			stage = $13, assignments = $14, notes = $15, client_requirements = $16,
			time_tracking = $17, deliverables = $18, data_copied = $19,
			estimate_id = $20, quality_check = $21,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $22
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query,
		id, event.JobCode, event.Slug, event.Name, event.Date,
		event.StartTime, event.EndTime, event.Location,
		event.ClientName, event.ClientContact,
		event.PhotographersCount, event.VideographersCount,
		event.Stage, event.Assignments, event.Notes, event.ClientRequirements,
		event.TimeTracking, event.Deliverables, event.DataCopied,
		event.EstimateID, event.QualityCheck, event.Version)
	if err != nil {
		logger.Error("EventRepository:Update", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("EventRepository:Update - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return ErrStaleVersion
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM scheduled_events WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("EventRepository:Delete", err)
		return err
	}
	return nil
}
