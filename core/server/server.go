package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DevTechAI/photosyncwork-sub003/core/cache"
	"github.com/DevTechAI/photosyncwork-sub003/core/config"
	"github.com/DevTechAI/photosyncwork-sub003/core/constants"
	"github.com/DevTechAI/photosyncwork-sub003/core/database"
	"github.com/DevTechAI/photosyncwork-sub003/core/logger"
	"github.com/DevTechAI/photosyncwork-sub003/core/middleware"
	"github.com/DevTechAI/photosyncwork-sub003/core/queue"
	"github.com/DevTechAI/photosyncwork-sub003/modules/notification"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/tasks"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the API server, the cache, and the background queue, then blocks
// until shutdown.
func Run() error {
	if err := config.Load(); err != nil {
		return err
	}
	cfg := config.Get()

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware()

	v1 := e.Group("/api/v1")
	private := v1.Group("/private")

	team.Init(private, &db, mw)
	notifSvc := notification.Init(private, &db, mw)
	coordinator, store := workflow.Init(private, &db, redisCache, mw, notifSvc)

	q := queue.NewQueue(cfg.Queue)
	q.Handle(constants.TaskAdvanceStages, tasks.NewAdvanceStagesHandler(store, coordinator))
	if err := q.Schedule(cfg.Queue.AdvanceCronSpec, tasks.NewAdvanceStagesTask()); err != nil {
		return err
	}
	q.Start()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run:Start", "error", err)
		}
	}()
	logger.Info("Server:Run:Listening", "addr", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server:Run:ShuttingDown")
	q.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
