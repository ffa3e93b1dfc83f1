package router

import (
	"github.com/DevTechAI/photosyncwork-sub003/core/middleware"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/controller"

	"github.com/labstack/echo/v4"
)

// TeamRouter handles roster routes.
type TeamRouter struct {
	TeamController *controller.TeamController
}

func NewTeamRouter(teamController *controller.TeamController) *TeamRouter {
	return &TeamRouter{
		TeamController: teamController,
	}
}

// Setup registers roster routes. All routes are protected.
func (r *TeamRouter) Setup(e *echo.Group, mw *middleware.Middleware) {
	teamRoutes := e.Group("/team", mw.AuthMiddleware())

	teamRoutes.POST("", r.TeamController.CreateMember)
	teamRoutes.GET("", r.TeamController.ListMembers)
	teamRoutes.GET("/:id", r.TeamController.GetMember)
	teamRoutes.PUT("/:id", r.TeamController.UpdateMember)
	teamRoutes.PUT("/:id/availability", r.TeamController.SetAvailability)
	teamRoutes.DELETE("/:id", r.TeamController.DeleteMember)
}
