package controller

import (
	"github.com/DevTechAI/photosyncwork-sub003/core/controller"
	"github.com/DevTechAI/photosyncwork-sub003/core/errors"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/dto"
	"github.com/DevTechAI/photosyncwork-sub003/modules/team/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TeamController handles roster HTTP requests.
type TeamController struct {
	controller.BaseController
	TeamService *service.TeamService
}

func NewTeamController(svc *service.TeamService) *TeamController {
	return &TeamController{
		BaseController: controller.NewBaseController(),
		TeamService:    svc,
	}
}

// CreateMember handles POST /team
// @Summary Add a roster member
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMemberRequest true "Member details"
// @Success 200 {object} entity.TeamMember
// @Failure 400 {object} errors.AppError
// @Router /private/team [post]
func (c *TeamController) CreateMember(ctx echo.Context) error {
	var req dto.CreateMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TeamService.CreateMember(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Member created successfully")
}

// GetMember handles GET /team/:id
// @Summary Get a roster member
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} entity.TeamMember
// @Failure 404 {object} errors.AppError
// @Router /private/team/{id} [get]
func (c *TeamController) GetMember(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid member ID")
	}

	result, appErr := c.TeamService.GetMember(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListMembers handles GET /team
// @Summary List the roster in insertion order
// @Tags Team
// @Security BearerAuth
// @Produce json
// @Success 200 {array} entity.TeamMember
// @Router /private/team [get]
func (c *TeamController) ListMembers(ctx echo.Context) error {
	result, appErr := c.TeamService.ListMembers(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateMember handles PUT /team/:id
// @Summary Update a roster member
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body dto.UpdateMemberRequest true "Member details"
// @Success 200 {object} entity.TeamMember
// @Failure 404 {object} errors.AppError
// @Router /private/team/{id} [put]
func (c *TeamController) UpdateMember(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid member ID")
	}

	var req dto.UpdateMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.TeamService.UpdateMember(ctx.Request().Context(), id, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Member updated successfully")
}

// SetAvailability handles PUT /team/:id/availability
// @Summary Replace a member's availability calendar
// @Tags Team
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body dto.SetAvailabilityRequest true "Availability by date"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.AppError
// @Router /private/team/{id}/availability [put]
func (c *TeamController) SetAvailability(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid member ID")
	}

	var req dto.SetAvailabilityRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	if appErr := c.TeamService.SetAvailability(ctx.Request().Context(), id, req.Availability); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Availability updated successfully")
}

// DeleteMember handles DELETE /team/:id
// @Summary Remove a roster member
// @Tags Team
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/team/{id} [delete]
func (c *TeamController) DeleteMember(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid member ID")
	}

	if appErr := c.TeamService.DeleteMember(ctx.Request().Context(), id); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Member deleted successfully")
}
