package repository

import (
	"context"
	"encoding/json"

	"github.com/DevTechAI/photosyncwork-sub003/core/cache"
	"github.com/DevTechAI/photosyncwork-sub003/core/constants"
	"github.com/DevTechAI/photosyncwork-sub003/core/logger"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"

	"github.com/google/uuid"
)

// Cache is the advisory event cache contract. It may be stale or
// unreachable and is only consulted when the authoritative store fails.
type Cache interface {
	GetEvent(ctx context.Context, id uuid.UUID) (*entity.ScheduledEvent, error)
	PutEvent(ctx context.Context, event *entity.ScheduledEvent) error
	RemoveEvent(ctx context.Context, id uuid.UUID) error
	ListEvents(ctx context.Context) ([]entity.ScheduledEvent, error)
}

// eventCache stores each event as JSON under its own key plus a set of ids
// for listing.
type eventCache struct {
	c cache.Cache
}

func NewEventCache(c cache.Cache) Cache {
	return &eventCache{c: c}
}

func eventKey(id uuid.UUID) string {
	return constants.EventCacheKeyPrefix + id.String()
}

func (e *eventCache) GetEvent(ctx context.Context, id uuid.UUID) (*entity.ScheduledEvent, error) {
	raw, err := e.c.Get(ctx, eventKey(id))
	if err == cache.ErrCacheMiss {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var event entity.ScheduledEvent
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (e *eventCache) PutEvent(ctx context.Context, event *entity.ScheduledEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := e.c.Set(ctx, eventKey(event.ID), string(raw), constants.EventCacheTTL); err != nil {
		return err
	}
	return e.c.SAdd(ctx, constants.EventCacheIndexKey, event.ID.String())
}

func (e *eventCache) RemoveEvent(ctx context.Context, id uuid.UUID) error {
	if err := e.c.Del(ctx, eventKey(id)); err != nil {
		return err
	}
	return e.c.SRem(ctx, constants.EventCacheIndexKey, id.String())
}

func (e *eventCache) ListEvents(ctx context.Context) ([]entity.ScheduledEvent, error) {
	ids, err := e.c.SMembers(ctx, constants.EventCacheIndexKey)
	if err != nil {
		return nil, err
	}

	events := make([]entity.ScheduledEvent, 0, len(ids))
	for _, idStr := range ids {
		id, err := uuid.Parse(idStr)
		if err != nil {
			logger.Warn("EventCache:ListEvents:BadIndexEntry", "id", idStr)
			continue
		}
		event, err := e.GetEvent(ctx, id)
		if err != nil || event == nil {
			// Expired or unreadable entries are skipped, the cache is advisory.
			continue
		}
		events = append(events, *event)
	}
	return events, nil
}
