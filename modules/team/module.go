package team

import (
	"github.com/DevTechAI/photosyncwork-sub003/core/database"
	"github.com/DevTechAI/photosyncwork-sub003/core/middleware"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/controller"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/repository"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/router"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the team module and registers routes.
func Init(e *echo.Group, db database.IDatabase, mw *middleware.Middleware) {
	repo := repository.NewTeamRepository(db)
	svc := service.NewTeamService(repo)
	ctrl := controller.NewTeamController(svc)
	rtr := router.NewTeamRouter(ctrl)

	rtr.Setup(e, mw)
}
