package controller

import (
	"net/http"

	"github.com/prasen-shakya/Schedulify/core/constants"
	"github.com/prasen-shakya/Schedulify/core/controller"
	"github.com/prasen-shakya/Schedulify/core/utils"
	"github.com/prasen-shakya/Schedulify/modules/event/dto"
	"github.com/prasen-shakya/Schedulify/modules/event/service"
	"github.com/prasen-shakya/Schedulify/modules/event/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventController handles event HTTP requests.
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

func (c *EventController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, bool) {
	claims, ok := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

// CreateEvent handles POST /api/createEvent
// @Summary Create an event
// @Description Creates an event with a date range and a shared daily time window
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event details"
// @Success 201 {object} dto.CreateEventResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 401 {object} controller.MessageResponse
// @Router /createEvent [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	organizerID, ok := c.getUserIDFromContext(ctx)
	if !ok {
		return c.Unauthorized(ctx, "Not authenticated")
	}

	requestData := new(dto.CreateEventRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(ctx, "Invalid request data")
	}

	validationResult := validator.ValidateCreateEventRequest(requestData)
	if validationResult.HasError() {
		return c.BadRequest(ctx, validationResult.First())
	}

	result, appErr := c.EventService.CreateEvent(ctx.Request().Context(), organizerID, requestData)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}

	return c.Created(ctx, result)
}

// GetEvent handles GET /api/getEvent/:eventId
// @Summary Get an event
// @Tags Event
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /getEvent/{eventId} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.NotFound(ctx, "Event not found.")
	}

	result, appErr := c.EventService.GetEventByID(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}

	return c.OK(ctx, result)
}

// GetEventParticipants handles GET /api/getEventParticipants/:eventId
// @Summary List the users who have submitted availability for an event
// @Tags Event
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {array} entity.Participant
// @Failure 404 {object} controller.ErrorResponse
// @Router /getEventParticipants/{eventId} [get]
func (c *EventController) GetEventParticipants(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.NotFound(ctx, "Event not found.")
	}

	participants, appErr := c.EventService.GetEventParticipants(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}

	return c.OK(ctx, participants)
}

// ExportICS handles GET /api/events/:eventId/export.ics
// @Summary Export the event window as an iCalendar file
// @Tags Event
// @Produce plain
// @Param eventId path string true "Event ID"
// @Success 200 {string} string "text/calendar payload"
// @Failure 404 {object} controller.ErrorResponse
// @Router /events/{eventId}/export.ics [get]
func (c *EventController) ExportICS(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.NotFound(ctx, "Event not found.")
	}

	payload, filename, appErr := c.EventService.ExportICS(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.AppError(ctx, appErr)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Blob(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}
