package controller

import (
	"net/http"

	"github.com/prasen-shakya/Schedulify/core/constants"
	"github.com/prasen-shakya/Schedulify/core/controller"
	"github.com/prasen-shakya/Schedulify/core/utils"
	"github.com/prasen-shakya/Schedulify/modules/availability/dto"
	"github.com/prasen-shakya/Schedulify/modules/availability/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AvailabilityController handles availability HTTP requests.
type AvailabilityController struct {
	controller.BaseController
	AvailabilityService service.AvailabilityServiceInterface
}

func NewAvailabilityController(svc service.AvailabilityServiceInterface) *AvailabilityController {
	return &AvailabilityController{
		BaseController:      controller.NewBaseController(),
		AvailabilityService: svc,
	}
}

func (c *AvailabilityController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// UpdateAvailability handles POST /api/updateAvailability
// @Summary Replace the caller's availability for an event
// @Description Swaps the caller's stored slots for the event with the submitted set in one transaction
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateAvailabilityRequest true "Replacement availability"
// @Success 201 {object} dto.UpdateAvailabilityResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 401 {object} controller.MessageResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /updateAvailability [post]
func (c *AvailabilityController) UpdateAvailability(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Not authenticated")
	}

	requestData := new(dto.UpdateAvailabilityRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(ctx, "Invalid request data")
	}

	result, appErr := c.AvailabilityService.ReplaceAvailability(ctx.Request().Context(), userID, requestData)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}

	return c.Created(ctx, result)
}

// DeleteAvailability handles DELETE /api/availability/:eventId
// @Summary Remove the caller's availability and participation for an event
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} controller.MessageResponse
// @Failure 401 {object} controller.MessageResponse
// @Router /availability/{eventId} [delete]
func (c *AvailabilityController) DeleteAvailability(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.NotFound(ctx, "Event not found.")
	}

	if appErr := c.AvailabilityService.ClearAvailability(ctx.Request().Context(), eventID, userID); appErr != nil {
		return c.AppError(ctx, appErr)
	}

	return c.Message(ctx, http.StatusOK, "All availabilities successfully deleted.")
}

// GetAvailability handles GET /api/getAvailability/:eventId
// @Summary All submissions for an event, grouped by user then date
// @Tags Availability
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {array} dto.UserAvailability
// @Failure 404 {object} controller.ErrorResponse
// @Router /getAvailability/{eventId} [get]
func (c *AvailabilityController) GetAvailability(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.NotFound(ctx, "Event not found.")
	}

	result, appErr := c.AvailabilityService.GetEventAvailability(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}

	return c.OK(ctx, result)
}

// GetUserAvailability handles GET /api/getUserAvailability/:eventId
// @Summary The caller's own slots for an event
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {array} dto.UserSlot
// @Failure 401 {object} controller.MessageResponse
// @Router /getUserAvailability/{eventId} [get]
func (c *AvailabilityController) GetUserAvailability(ctx echo.Context) error {
	userID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.NotFound(ctx, "Event not found.")
	}

	result, appErr := c.AvailabilityService.GetUserAvailability(ctx.Request().Context(), eventID, userID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}

	return c.OK(ctx, result)
}

// GetAvailabilityHeatmap handles GET /api/getAvailabilityHeatmap/:eventId
// @Summary Hour coverage buckets plus participant count for an event
// @Tags Availability
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} service.HeatmapResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /getAvailabilityHeatmap/{eventId} [get]
func (c *AvailabilityController) GetAvailabilityHeatmap(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.NotFound(ctx, "Event not found.")
	}

	result, appErr := c.AvailabilityService.GetHeatmap(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}

	return c.OK(ctx, result)
}
