package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prasen-shakya/Schedulify/core/cache"
	"github.com/prasen-shakya/Schedulify/core/config"
	"github.com/prasen-shakya/Schedulify/core/constants"
	"github.com/prasen-shakya/Schedulify/core/database"
	"github.com/prasen-shakya/Schedulify/core/logger"
	"github.com/prasen-shakya/Schedulify/core/middleware"
	"github.com/prasen-shakya/Schedulify/modules/auth"
	"github.com/prasen-shakya/Schedulify/modules/availability"
	"github.com/prasen-shakya/Schedulify/modules/event"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Run boots the API: configuration, logging, storage, cache, routes, then
// serves until SIGINT/SIGTERM, draining in-flight requests before exit.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(context.Background()); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	c := cache.New(cfg.Redis)
	defer c.Close()

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     strings.Split(cfg.Server.AllowOrigins, ","),
		AllowCredentials: true,
	}))
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(ctx echo.Context, v echomw.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	mw := middleware.NewMiddleware(c)
	api := e.Group("/api")

	auth.Init(api, db, c, mw)
	eventRepo := event.Init(api, db, mw)
	availability.Init(api, db, eventRepo, mw)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Run", err)
		}
	}()
	logger.Info("Server:Run", "port", cfg.Server.Port, "env", cfg.Env)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server:Run", "detail", "shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
