package event

import (
	"github.com/prasen-shakya/Schedulify/core/database"
	"github.com/prasen-shakya/Schedulify/core/middleware"
	"github.com/prasen-shakya/Schedulify/modules/event/controller"
	"github.com/prasen-shakya/Schedulify/modules/event/repository"
	"github.com/prasen-shakya/Schedulify/modules/event/router"
	"github.com/prasen-shakya/Schedulify/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init wires the event module and registers its routes on g. The repository
// is returned so the availability module can validate slot dates against
// event windows without re-wiring its own copy.
func Init(g *echo.Group, db database.IDatabase, mw *middleware.Middleware) repository.EventRepositoryInterface {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Setup(g, mw)

	return repo
}
