package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-inventory-ledger/internal/handler"
	"go-inventory-ledger/internal/job"
	"go-inventory-ledger/internal/ledger"
	"go-inventory-ledger/internal/middleware"
	"go-inventory-ledger/internal/model"
	"go-inventory-ledger/internal/repository"
	"go-inventory-ledger/internal/service"
	"go-inventory-ledger/internal/ws"
	"go-inventory-ledger/pkg/config"
	"go-inventory-ledger/pkg/database"
	"go-inventory-ledger/pkg/jwt"
	"go-inventory-ledger/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	// 1. Config + logger
	cfg := config.Load()
	log := logger.New(cfg.Env)

	// 2. Database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	db.AutoMigrate(&model.User{}, &model.Product{})

	seedAdmin(db, log)

	// 3. Spreadsheet ledger client
	ctx := context.Background()
	sheetLedger, err := ledger.NewSheetsLedger(ctx, cfg.GoogleCredentials, cfg.SpreadsheetID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create sheets ledger client")
	}
	ranges := ledger.Ranges{
		WasteSheet:   cfg.WasteSheet,
		ProductSheet: cfg.ProductSheet,
		CountSheet:   cfg.CountSheet,
	}

	// 4. WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	tokens := jwt.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer)

	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	inventoryService := service.NewInventoryService(productRepo, sheetLedger, ranges, wsHub)
	productService := service.NewProductService(productRepo, sheetLedger, ranges)

	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	userHandler := handler.NewUserHandler(userService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	productHandler := handler.NewProductHandler(productService)

	// 6. Scheduled reconciliation (daily at midnight)
	scheduler := cron.New()
	reconcile := job.NewReconcileJob(productRepo, sheetLedger, ranges, wsHub, log)
	if _, err := scheduler.AddJob(cfg.ReconcileCronSpec, reconcile); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.ReconcileCronSpec).Msg("invalid reconcile cron spec")
	}
	scheduler.Start()

	// 7. Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Inventory Ledger API v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowCredentials: true,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 8. Routes
	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireRole(model.RoleAdmin)

	user := app.Group("/user")
	user.Post("/login", authHandler.Login)
	user.Post("/create", requireAuth, requireAdmin, userHandler.CreateUser)
	user.Get("/tokendata", requireAuth, authHandler.TokenData)
	user.Get("/", requireAuth, requireAdmin, userHandler.GetUsers)
	user.Delete("/delete/:name/:establishmentId", requireAuth, requireAdmin, userHandler.DeleteUser)

	inventory := app.Group("/inventory", requireAuth)
	inventory.Post("/inventory", middleware.RequireRole(model.RoleProductManagement), inventoryHandler.RecordEvent)
	inventory.Post("/recentproduct", inventoryHandler.RecentProduct)

	product := app.Group("/product", requireAuth)
	product.Post("/", productHandler.Lookup)
	product.Post("/submit-product", productHandler.SubmitProduct)
	product.Post("/add-product", productHandler.AddProduct)
	product.Get("/search", productHandler.Search)
	product.Get("/search2", productHandler.SearchWithSKU)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	scheduler.Stop()
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// seedAdmin creates the bootstrap admin account if no user holds the admin
// role yet, so a fresh deployment can log in and create staff.
func seedAdmin(db *gorm.DB, log zerolog.Logger) {
	var count int64
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	admin := &model.User{
		Name: "admin",
		Role: model.RoleAdmin,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Warn().Err(err).Msg("failed to hash bootstrap admin password")
		return
	}
	if err := db.Create(admin).Error; err != nil {
		log.Warn().Err(err).Msg("failed to create bootstrap admin user")
		return
	}
	log.Info().Msg("bootstrap admin user created: admin / admin123")
}
