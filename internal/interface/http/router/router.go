package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/wichananm65/account-service/internal/interface/http/handler"
	"github.com/wichananm65/account-service/internal/interface/http/middleware"
)

type Options struct {
	AllowOrigins string
}

// New builds the fiber app with middleware and all routes registered.
func New(log logrus.FieldLogger, opts Options, accountHandler *handler.AccountHandler, healthHandler *handler.HealthHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               handler.ServiceName,
		ErrorHandler:          handler.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	setupCORS(app, opts.AllowOrigins)

	healthHandler.RegisterRoutes(app)
	accountHandler.RegisterRoutes(app)

	return app
}

func setupCORS(app *fiber.App, origins string) {
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}
