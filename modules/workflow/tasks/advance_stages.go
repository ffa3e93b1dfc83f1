package tasks

import (
	"context"
	"time"

	"github.com/DevTechAI/photosyncwork-sub003/core/constants"
	"github.com/DevTechAI/photosyncwork-sub003/core/logger"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/service"

	"github.com/hibiken/asynq"
)

// NewAdvanceStagesTask builds the periodic stage-advance task.
func NewAdvanceStagesTask() *asynq.Task {
	return asynq.NewTask(constants.TaskAdvanceStages, nil)
}

// AdvanceStagesHandler runs the nightly date rule over all non-completed
// events. One stage per event per run; a long-unobserved event catches up
// one stage per night.
type AdvanceStagesHandler struct {
	store       service.EventPersistence
	coordinator *service.WorkflowCoordinator
	clock       func() time.Time
}

func NewAdvanceStagesHandler(store service.EventPersistence, coordinator *service.WorkflowCoordinator) *AdvanceStagesHandler {
	return &AdvanceStagesHandler{
		store:       store,
		coordinator: coordinator,
		clock:       time.Now,
	}
}

func (h *AdvanceStagesHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	events, degraded, appErr := h.store.Load(ctx, "")
	if appErr != nil {
		logger.Error("AdvanceStagesHandler:ProcessTask:Load", "error", appErr)
		return appErr
	}
	if degraded {
		// Cache-served reads cannot be written back, skip this run.
		logger.Warn("AdvanceStagesHandler:ProcessTask:DegradedLoad")
		return nil
	}

	pending := make([]entity.ScheduledEvent, 0, len(events))
	for _, ev := range events {
		if ev.Stage != entity.StageCompleted {
			pending = append(pending, ev)
		}
	}

	moved, appErr := h.coordinator.AdvanceByDate(ctx, pending, h.clock())
	logger.Info("AdvanceStagesHandler:ProcessTask:Done", "checked", len(pending), "moved", len(moved))
	if appErr != nil {
		return appErr
	}
	return nil
}
