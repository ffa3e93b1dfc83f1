package notification

import (
	"github.com/DevTechAI/photosyncwork-sub003/core/database"
	"github.com/DevTechAI/photosyncwork-sub003/core/middleware"
	"github.com/DevTechAI/photosyncwork-sub003/modules/notification/controller"
	"github.com/DevTechAI/photosyncwork-sub003/modules/notification/repository"
	"github.com/DevTechAI/photosyncwork-sub003/modules/notification/router"
	"github.com/DevTechAI/photosyncwork-sub003/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.IDatabase, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
