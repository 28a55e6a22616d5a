package availability

import (
	"github.com/prasen-shakya/Schedulify/core/database"
	"github.com/prasen-shakya/Schedulify/core/middleware"
	"github.com/prasen-shakya/Schedulify/modules/availability/controller"
	"github.com/prasen-shakya/Schedulify/modules/availability/repository"
	"github.com/prasen-shakya/Schedulify/modules/availability/router"
	"github.com/prasen-shakya/Schedulify/modules/availability/service"
	eventrepo "github.com/prasen-shakya/Schedulify/modules/event/repository"

	"github.com/labstack/echo/v4"
)

// Init wires the availability module and registers its routes on g. The
// event repository is borrowed from the event module so slot dates can be
// validated against the event window.
func Init(g *echo.Group, db database.IDatabase, eventRepo eventrepo.EventRepositoryInterface, mw *middleware.Middleware) {
	repo := repository.NewAvailabilityRepository(db)
	svc := service.NewAvailabilityService(repo, eventRepo)
	ctrl := controller.NewAvailabilityController(svc)

	router.NewAvailabilityRouter(ctrl).Setup(g, mw)
}
