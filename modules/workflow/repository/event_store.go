package repository

import (
	"context"
	"sort"

	"github.com/DevTechAI/photosyncwork-sub003/core/errors"
	"github.com/DevTechAI/photosyncwork-sub003/core/logger"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"

	"github.com/google/uuid"
)

// EventStore reconciles the authoritative store with the advisory cache.
// The authoritative store always wins; the cache is only a read fallback and
// is never presented as proof of a durable write.
type EventStore struct {
	backend StoreBackend
	cache   Cache
}

func NewEventStore(backend StoreBackend, cache Cache) *EventStore {
	return &EventStore{backend: backend, cache: cache}
}

// Load reads events from the authoritative store, optionally filtered by
// stage. On store failure it falls back to the cache and reports the result
// as degraded.
func (s *EventStore) Load(ctx context.Context, stage entity.Stage) ([]entity.ScheduledEvent, bool, *errors.AppError) {
	events, err := s.backend.Query(ctx, stage)
	if err == nil {
		return events, false, nil
	}

	logger.Warn("EventStore:Load:AuthoritativeFailed", "error", err, "stage", stage)

	cached, cerr := s.cache.ListEvents(ctx)
	if cerr != nil {
		logger.Error("EventStore:Load:CacheFallbackFailed", "error", cerr)
		return nil, false, errors.NewAppError(errors.ErrStoreUnavailable, "event store unavailable", err)
	}

	filtered := cached[:0:0]
	for _, ev := range cached {
		if stage == "" || ev.Stage == stage {
			filtered = append(filtered, ev)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		if !filtered[i].Date.Equal(filtered[j].Date) {
			return filtered[i].Date.Before(filtered[j].Date)
		}
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})

	return filtered, true, nil
}

// GetByID reads one event, cache fallback marks the result degraded.
func (s *EventStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.ScheduledEvent, bool, *errors.AppError) {
	event, err := s.backend.Get(ctx, id)
	if err == nil {
		if event == nil {
			return nil, false, errors.NewAppError(errors.ErrNotFound, "event not found", nil)
		}
		return event, false, nil
	}

	logger.Warn("EventStore:GetByID:AuthoritativeFailed", "error", err, "event_id", id)

	cached, cerr := s.cache.GetEvent(ctx, id)
	if cerr != nil || cached == nil {
		return nil, false, errors.NewAppError(errors.ErrStoreUnavailable, "event store unavailable", err)
	}
	return cached, true, nil
}

// Save upserts the event: existence check on the authoritative store, then
// update-or-insert. The cache write afterwards is best-effort; its failure
// is logged and never surfaced. A failed authoritative write means the
// mutation is not durable regardless of the cache.
func (s *EventStore) Save(ctx context.Context, event *entity.ScheduledEvent) *errors.AppError {
	existing, err := s.backend.Get(ctx, event.ID)
	if err != nil {
		logger.Error("EventStore:Save:ExistenceCheck", "error", err, "event_id", event.ID)
		return errors.NewAppError(errors.ErrStoreUnavailable, "event store unavailable", err)
	}

	if existing == nil {
		if err := s.backend.Insert(ctx, event); err != nil {
			logger.Error("EventStore:Save:Insert", "error", err, "event_id", event.ID)
			return errors.NewAppError(errors.ErrStoreUnavailable, "failed to save event", err)
		}
	} else {
		err := s.backend.Update(ctx, event.ID, event)
		if err == ErrStaleVersion {
			return errors.NewAppError(errors.ErrConflict, "event was modified by another writer, re-fetch and retry", err)
		}
		if err != nil {
			logger.Error("EventStore:Save:Update", "error", err, "event_id", event.ID)
			return errors.NewAppError(errors.ErrStoreUnavailable, "failed to save event", err)
		}
		event.Version++
	}

	if cerr := s.cache.PutEvent(ctx, event); cerr != nil {
		logger.Warn("EventStore:Save:CacheWriteFailed", "error", cerr, "event_id", event.ID)
	}

	return nil
}

// Remove deletes the event and evicts its cached copy.
func (s *EventStore) Remove(ctx context.Context, id uuid.UUID) *errors.AppError {
	if err := s.backend.Delete(ctx, id); err != nil {
		logger.Error("EventStore:Remove", "error", err, "event_id", id)
		return errors.NewAppError(errors.ErrStoreUnavailable, "failed to remove event", err)
	}
	if cerr := s.cache.RemoveEvent(ctx, id); cerr != nil {
		logger.Warn("EventStore:Remove:CacheEvictFailed", "error", cerr, "event_id", id)
	}
	return nil
}
