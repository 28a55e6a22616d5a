package main

import (
	"github.com/prasen-shakya/Schedulify/core/logger"
	"github.com/prasen-shakya/Schedulify/core/server"

	_ "github.com/prasen-shakya/Schedulify/docs" // Swagger docs
)

// @title Schedulify API
// @version 1.0
// @description Backend for Schedulify, a group-scheduling app: create events, submit availability, find the hours that work for everyone.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
