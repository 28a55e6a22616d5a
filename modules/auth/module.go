package auth

import (
	"github.com/prasen-shakya/Schedulify/core/cache"
	"github.com/prasen-shakya/Schedulify/core/database"
	"github.com/prasen-shakya/Schedulify/core/middleware"
	"github.com/prasen-shakya/Schedulify/modules/auth/controller"
	"github.com/prasen-shakya/Schedulify/modules/auth/repository"
	"github.com/prasen-shakya/Schedulify/modules/auth/router"
	"github.com/prasen-shakya/Schedulify/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and registers its routes on g.
func Init(g *echo.Group, db database.IDatabase, c cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Setup(g, mw)
}
