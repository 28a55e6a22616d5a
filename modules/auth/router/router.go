package router

import (
	"github.com/prasen-shakya/Schedulify/core/middleware"
	"github.com/prasen-shakya/Schedulify/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

// AuthRouter registers authentication routes.
type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{AuthController: authController}
}

func (r *AuthRouter) Setup(g *echo.Group, mw *middleware.Middleware) {
	g.POST("/register", r.AuthController.Register)
	g.POST("/login", r.AuthController.Login)
	g.POST("/logout", r.AuthController.Logout)
	g.GET("/checkAuthenticationStatus", r.AuthController.CheckAuthenticationStatus, mw.AuthMiddleware())
}
