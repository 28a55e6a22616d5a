package router

import (
	"github.com/prasen-shakya/Schedulify/core/middleware"
	"github.com/prasen-shakya/Schedulify/modules/availability/controller"

	"github.com/labstack/echo/v4"
)

// AvailabilityRouter registers availability routes.
type AvailabilityRouter struct {
	AvailabilityController *controller.AvailabilityController
}

func NewAvailabilityRouter(availabilityController *controller.AvailabilityController) *AvailabilityRouter {
	return &AvailabilityRouter{AvailabilityController: availabilityController}
}

func (r *AvailabilityRouter) Setup(g *echo.Group, mw *middleware.Middleware) {
	g.POST("/updateAvailability", r.AvailabilityController.UpdateAvailability, mw.AuthMiddleware())
	g.DELETE("/availability/:eventId", r.AvailabilityController.DeleteAvailability, mw.AuthMiddleware())
	g.GET("/getAvailability/:eventId", r.AvailabilityController.GetAvailability)
	g.GET("/getUserAvailability/:eventId", r.AvailabilityController.GetUserAvailability, mw.AuthMiddleware())
	g.GET("/getAvailabilityHeatmap/:eventId", r.AvailabilityController.GetAvailabilityHeatmap)
}
