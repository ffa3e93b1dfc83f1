package controller

import (
	"github.com/DevTechAI/photosyncwork-sub003/core/constants"
	"github.com/DevTechAI/photosyncwork-sub003/core/controller"
	"github.com/DevTechAI/photosyncwork-sub003/core/errors"
	"github.com/DevTechAI/photosyncwork-sub003/core/utils"
	teamentity "github.com/DevTechAI/photosyncwork-sub003/modules/team/entity"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/dto"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/entity"
	"github.com/DevTechAI/photosyncwork-sub003/modules/workflow/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// WorkflowController handles scheduled-event HTTP requests.
type WorkflowController struct {
	controller.BaseController
	Coordinator *service.WorkflowCoordinator
}

func NewWorkflowController(coordinator *service.WorkflowCoordinator) *WorkflowController {
	return &WorkflowController{
		BaseController: controller.NewBaseController(),
		Coordinator:    coordinator,
	}
}

// getUserIDFromContext extracts user ID from JWT context
func (c *WorkflowController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

func (c *WorkflowController) eventIDFromPath(ctx echo.Context) (uuid.UUID, error) {
	return uuid.Parse(ctx.Param("id"))
}

// CreateEvent handles POST /events
// @Summary Schedule a production job
// @Tags Workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 200 {object} entity.ScheduledEvent
// @Failure 400 {object} errors.AppError
// @Router /private/events [post]
func (c *WorkflowController) CreateEvent(ctx echo.Context) error {
	if _, err := c.getUserIDFromContext(ctx); err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.Coordinator.CreateEvent(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event scheduled successfully")
}

// ListEvents handles GET /events
// @Summary List events, optionally by stage
// @Tags Workflow
// @Security BearerAuth
// @Produce json
// @Param stage query string false "Workflow stage filter"
// @Success 200 {object} dto.EventListResponse
// @Router /private/events [get]
func (c *WorkflowController) ListEvents(ctx echo.Context) error {
	stage := entity.Stage(ctx.QueryParam("stage"))
	if stage != "" && !stage.Valid() {
		return c.BadRequest(errors.ErrInvalidInput, "Unknown workflow stage")
	}

	result, appErr := c.Coordinator.ListEvents(ctx.Request().Context(), stage)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// AssignMember handles POST /events/:id/assignments
// @Summary Assign a team member to a role on the event
// @Tags Workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.AssignMemberRequest true "Member and role"
// @Success 200 {object} entity.EventAssignment
// @Failure 409 {object} errors.AppError
// @Router /private/events/{id}/assignments [post]
func (c *WorkflowController) AssignMember(ctx echo.Context) error {
	actorID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := c.eventIDFromPath(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.AssignMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.Coordinator.AssignMember(ctx.Request().Context(), actorID, eventID, req.TeamMemberID, req.Role)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Member assigned successfully")
}

// RespondToAssignment handles PUT /events/:id/assignments/respond
// @Summary Accept, decline, revert or reassign an assignment
// @Tags Workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.RespondToAssignmentRequest true "Member and new status"
// @Success 200 {object} entity.EventAssignment
// @Failure 409 {object} errors.AppError
// @Router /private/events/{id}/assignments/respond [put]
func (c *WorkflowController) RespondToAssignment(ctx echo.Context) error {
	eventID, err := c.eventIDFromPath(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.RespondToAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.Coordinator.RespondToAssignment(ctx.Request().Context(), eventID, req.TeamMemberID, req.Status)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Assignment updated successfully")
}

// ListAssignments handles GET /events/:id/assignments
// @Summary List the event's assignments with resolved members
// @Tags Workflow
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} teamservice.AssignedEntry
// @Router /private/events/{id}/assignments [get]
func (c *WorkflowController) ListAssignments(ctx echo.Context) error {
	eventID, err := c.eventIDFromPath(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.Coordinator.ListAssignments(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListCandidates handles GET /events/:id/candidates
// @Summary List eligible members for a role on the event
// @Tags Workflow
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Param role query string true "Role to staff"
// @Success 200 {array} teamentity.TeamMember
// @Router /private/events/{id}/candidates [get]
func (c *WorkflowController) ListCandidates(ctx echo.Context) error {
	eventID, err := c.eventIDFromPath(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	role := teamentity.Role(ctx.QueryParam("role"))
	result, appErr := c.Coordinator.ListCandidates(ctx.Request().Context(), eventID, role)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// MarkDataCopied handles POST /events/:id/data-copied
// @Summary Record that the shoot data has been copied
// @Tags Workflow
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} entity.ScheduledEvent
// @Router /private/events/{id}/data-copied [post]
func (c *WorkflowController) MarkDataCopied(ctx echo.Context) error {
	eventID, err := c.eventIDFromPath(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.Coordinator.MarkDataCopied(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Data copy recorded")
}

// ClearDataCopied handles DELETE /events/:id/data-copied
// @Summary Retract the data-copied flag
// @Tags Workflow
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} entity.ScheduledEvent
// @Router /private/events/{id}/data-copied [delete]
func (c *WorkflowController) ClearDataCopied(ctx echo.Context) error {
	eventID, err := c.eventIDFromPath(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.Coordinator.ClearDataCopied(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Data copy flag cleared")
}

// MoveToPostProduction handles POST /events/:id/post-production
// @Summary Move the event into post-production ahead of its date
// @Tags Workflow
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} entity.ScheduledEvent
// @Router /private/events/{id}/post-production [post]
func (c *WorkflowController) MoveToPostProduction(ctx echo.Context) error {
	eventID, err := c.eventIDFromPath(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.Coordinator.MoveToPostProduction(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event moved to post-production")
}

// LogTime handles POST /events/:id/time
// @Summary Log working hours for a member on the event
// @Tags Workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.LogTimeRequest true "Member and hours"
// @Success 200 {object} entity.TimeEntry
// @Router /private/events/{id}/time [post]
func (c *WorkflowController) LogTime(ctx echo.Context) error {
	eventID, err := c.eventIDFromPath(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.LogTimeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.Coordinator.LogTime(ctx.Request().Context(), eventID, req.TeamMemberID, req.Hours)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Time logged successfully")
}

// UpdateClientRequirements handles PUT /events/:id/requirements
// @Summary Replace the event's client requirements text
// @Tags Workflow
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateClientRequirementsRequest true "Requirements text"
// @Success 200 {object} entity.ScheduledEvent
// @Router /private/events/{id}/requirements [put]
func (c *WorkflowController) UpdateClientRequirements(ctx echo.Context) error {
	eventID, err := c.eventIDFromPath(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UpdateClientRequirementsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.Coordinator.UpdateClientRequirements(ctx.Request().Context(), eventID, req.ClientRequirements)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Client requirements updated")
}

// DeleteEvent handles DELETE /events/:id
// @Summary Remove a scheduled event
// @Tags Workflow
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 503 {object} errors.AppError
// @Router /private/events/{id} [delete]
func (c *WorkflowController) DeleteEvent(ctx echo.Context) error {
	eventID, err := c.eventIDFromPath(ctx)
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.Coordinator.DeleteEvent(ctx.Request().Context(), eventID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted successfully")
}
