package queue

import (
	"github.com/DevTechAI/photosyncwork-sub003/core/config"
	"github.com/DevTechAI/photosyncwork-sub003/core/constants"
	"github.com/DevTechAI/photosyncwork-sub003/core/logger"

	"github.com/hibiken/asynq"
)

// Queue owns the asynq worker and scheduler for periodic jobs.
type Queue struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

func NewQueue(cfg config.QueueConfig) *Queue {
	redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: constants.QueueWorkerConcurrency,
		Queues:      map[string]int{constants.QueueDefault: 1},
	})

	scheduler := asynq.NewScheduler(redisOpt, nil)

	return &Queue{
		server:    server,
		scheduler: scheduler,
		mux:       asynq.NewServeMux(),
	}
}

// Handle registers a task handler on the worker mux.
func (q *Queue) Handle(pattern string, handler asynq.Handler) {
	q.mux.Handle(pattern, handler)
}

// Schedule registers a periodic task with the given cron spec.
func (q *Queue) Schedule(cronSpec string, task *asynq.Task) error {
	entryID, err := q.scheduler.Register(cronSpec, task)
	if err != nil {
		logger.Error("Queue:Schedule:Register", "error", err, "task", task.Type())
		return err
	}
	logger.Info("Queue:Schedule:Registered", "task", task.Type(), "cron", cronSpec, "entry_id", entryID)
	return nil
}

// Start runs the worker and scheduler in background goroutines.
func (q *Queue) Start() {
	go func() {
		if err := q.server.Run(q.mux); err != nil {
			logger.Error("Queue:Start:ServerRun", "error", err)
		}
	}()
	go func() {
		if err := q.scheduler.Run(); err != nil {
			logger.Error("Queue:Start:SchedulerRun", "error", err)
		}
	}()
}

// Shutdown stops the worker and scheduler.
func (q *Queue) Shutdown() {
	q.scheduler.Shutdown()
	q.server.Shutdown()
}
