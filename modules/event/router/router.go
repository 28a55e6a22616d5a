package router

import (
	"github.com/prasen-shakya/Schedulify/core/middleware"
	"github.com/prasen-shakya/Schedulify/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter registers event routes.
type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

func (r *EventRouter) Setup(g *echo.Group, mw *middleware.Middleware) {
	g.POST("/createEvent", r.EventController.CreateEvent, mw.AuthMiddleware())
	g.GET("/getEvent/:eventId", r.EventController.GetEvent)
	g.GET("/getEventParticipants/:eventId", r.EventController.GetEventParticipants)
	g.GET("/events/:eventId/export.ics", r.EventController.ExportICS)
}
