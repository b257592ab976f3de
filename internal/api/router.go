package api

import (
	_ "clubbooks/docs"
	"clubbooks/internal/api/handlers"
	"clubbooks/pkg/auth"
	"clubbooks/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	transactionHandler *handlers.TransactionHandler,
	journalHandler *handlers.JournalHandler,
	chartHandler *handlers.ChartHandler,
	assetHandler *handlers.AssetHandler,
	budgetHandler *handlers.BudgetHandler,
	reportHandler *handlers.ReportHandler,
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

	transactions := protected.Group("/transactions")
	transactions.Post("", transactionHandler.Create)
	transactions.Get("", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.Get)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete)

	protected.Post("/journals", journalHandler.Create)

	accounts := protected.Group("/accounts")
	accounts.Post("", chartHandler.CreateAccount)
	accounts.Get("", chartHandler.ListAccounts)
	accounts.Put("/:id", chartHandler.UpdateAccount)
	accounts.Delete("/:id", chartHandler.DeleteAccount)
	accounts.Post("/:id/reassign", chartHandler.ReassignTransactions)

	categories := protected.Group("/categories")
	categories.Post("", chartHandler.CreateCategory)
	categories.Get("", chartHandler.ListCategories)
	categories.Put("/:id", chartHandler.UpdateCategory)
	categories.Delete("/:id", chartHandler.DeleteCategory)

	assets := protected.Group("/assets")
	assets.Post("", assetHandler.Create)
	assets.Get("/:id", assetHandler.Get)
	assets.Delete("/:id", assetHandler.Delete)

	budgets := protected.Group("/budgets")
	budgets.Post("", budgetHandler.CreatePlan)
	budgets.Get("", budgetHandler.GetPlan)
	budgets.Put("/lines", budgetHandler.UpsertLine)
	budgets.Delete("/lines/:id", budgetHandler.DeleteLine)
	budgets.Get("/variance/:id", budgetHandler.AccountVariance)

	reports := protected.Group("/reports")
	reports.Get("/income-statement", reportHandler.IncomeStatement)
	reports.Get("/balance-sheet", reportHandler.BalanceSheet)
	reports.Get("/cash-flow", reportHandler.CashFlow)
	reports.Get("/ytd", reportHandler.YTDStatement)
	reports.Get("/budget-variance", reportHandler.BudgetVariance)
	reports.Get("/register", reportHandler.Register)
	reports.Get("/assets", reportHandler.AssetReport)
	reports.Get("", reportHandler.ListRecords)
	reports.Delete("/:id", reportHandler.DeleteRecord)

	protected.Get("/dashboard", reportHandler.Dashboard)

	return app
}
