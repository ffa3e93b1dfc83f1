package router

import (
	"github.com/DevTechAI/photosyncwork-sub003/core/middleware"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/controller"

	"github.com/labstack/echo/v4"
)

// WorkflowRouter handles scheduled-event routes.
type WorkflowRouter struct {
	WorkflowController *controller.WorkflowController
}

func NewWorkflowRouter(workflowController *controller.WorkflowController) *WorkflowRouter {
	return &WorkflowRouter{
		WorkflowController: workflowController,
	}
}

// Setup registers event routes. All routes are protected.
func (r *WorkflowRouter) Setup(e *echo.Group, mw *middleware.Middleware) {
	eventRoutes := e.Group("/events", mw.AuthMiddleware())

	eventRoutes.POST("", r.WorkflowController.CreateEvent)
	eventRoutes.GET("", r.WorkflowController.ListEvents)
	eventRoutes.DELETE("/:id", r.WorkflowController.DeleteEvent)

	// Staffing
	eventRoutes.POST("/:id/assignments", r.WorkflowController.AssignMember)
	eventRoutes.GET("/:id/assignments", r.WorkflowController.ListAssignments)
	eventRoutes.PUT("/:id/assignments/respond", r.WorkflowController.RespondToAssignment)
	eventRoutes.GET("/:id/candidates", r.WorkflowController.ListCandidates)

	// Stage control
	eventRoutes.POST("/:id/data-copied", r.WorkflowController.MarkDataCopied)
	eventRoutes.DELETE("/:id/data-copied", r.WorkflowController.ClearDataCopied)
	eventRoutes.POST("/:id/post-production", r.WorkflowController.MoveToPostProduction)

	// Tracking
	eventRoutes.POST("/:id/time", r.WorkflowController.LogTime)
	eventRoutes.PUT("/:id/requirements", r.WorkflowController.UpdateClientRequirements)
}
