package api

import (
	"tripledger/docs"
	"tripledger/internal/api/handlers"
	"tripledger/pkg/auth"
	"tripledger/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	tripHandler *handlers.TripHandler,
	expenseHandler *handlers.ExpenseHandler,
	plannerHandler *handlers.PlannerHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - importing the docs package registers the spec via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	trips := protected.Group("/trips")
	trips.Post("", tripHandler.CreateTrip)
	trips.Get("", tripHandler.ListTrips)
	trips.Get("/:id/resumo", tripHandler.GetResumo)
	trips.Post("/:id/emergency-fund", tripHandler.UseEmergencyFund)
	trips.Get("/:id/expenses", expenseHandler.ListExpenses)

	protected.Post("/expenses", expenseHandler.CreateExpense)

	protected.Get("/weather/curitiba/june", plannerHandler.JuneWeather)
	protected.Get("/weather/curitiba/june/13-18", plannerHandler.JunePeriodWeather)
	protected.Get("/train/serra-verde/june/13-18", plannerHandler.TrainAvailability)
	protected.Get("/planner", plannerHandler.BuildPlanner)

	return app
}
