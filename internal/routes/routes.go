package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/brandsbridge/internal/cache"
	"github.com/example/brandsbridge/internal/config"
	"github.com/example/brandsbridge/internal/handlers"
	"github.com/example/brandsbridge/internal/middleware"
	"github.com/example/brandsbridge/internal/models"
	"github.com/example/brandsbridge/internal/repository"
	"github.com/example/brandsbridge/internal/services"
	"github.com/example/brandsbridge/internal/storage"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config, store storage.Storage, cc *cache.Cache) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	productRepo := repository.NewProductRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	contentRepo := repository.NewContentRepository(db)

	authHandler := handlers.NewAuthHandler(userRepo, cfg)
	userHandler := handlers.NewUserHandler(userRepo)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	brandHandler := handlers.NewBrandHandler(brandRepo)
	productHandler := handlers.NewProductHandler(productRepo)
	inquiryHandler := handlers.NewInquiryHandler(inquiryRepo, telegramService)
	contentHandler := handlers.NewContentHandler(contentRepo, cc)
	uploadHandler := handlers.NewUploadHandler(store)

	api := app.Group("/api")

	authRequired := middleware.AuthMiddleware(cfg)
	adminOnly := middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin)

	// Auth
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/profile", authRequired, authHandler.Profile)

	// Categories
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/slug/:slug", categoryHandler.GetBySlug)
	categories.Get("/:id", categoryHandler.Get)
	categories.Post("/", authRequired, categoryHandler.Create)
	categories.Patch("/:id", authRequired, categoryHandler.Update)
	categories.Patch("/:id/toggle-active", authRequired, categoryHandler.ToggleActive)
	categories.Delete("/:id", authRequired, categoryHandler.Delete)

	// Brands
	brands := api.Group("/brands")
	brands.Get("/", brandHandler.List)
	brands.Get("/featured", brandHandler.ListFeatured)
	brands.Get("/slug/:slug", brandHandler.GetBySlug)
	brands.Get("/:id", brandHandler.Get)
	brands.Post("/", authRequired, brandHandler.Create)
	brands.Patch("/:id", authRequired, brandHandler.Update)
	brands.Patch("/:id/toggle-active", authRequired, brandHandler.ToggleActive)
	brands.Patch("/:id/toggle-featured", authRequired, brandHandler.ToggleFeatured)
	brands.Delete("/:id", authRequired, brandHandler.Delete)

	// Products
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/featured", productHandler.ListFeatured)
	products.Get("/stats", authRequired, productHandler.Stats)
	products.Get("/category/:categoryId", productHandler.ListByCategory)
	products.Get("/brand/:brandId", productHandler.ListByBrand)
	products.Get("/slug/:slug", productHandler.GetBySlug)
	products.Get("/:id", productHandler.Get)
	products.Post("/", authRequired, productHandler.Create)
	products.Patch("/:id", authRequired, productHandler.Update)
	products.Patch("/:id/toggle-active", authRequired, productHandler.ToggleActive)
	products.Patch("/:id/toggle-featured", authRequired, productHandler.ToggleFeatured)
	products.Delete("/:id", authRequired, productHandler.Delete)

	// Inquiries
	inquiries := api.Group("/inquiries")
	inquiries.Post("/", inquiryHandler.Create)
	inquiries.Get("/", authRequired, inquiryHandler.List)
	inquiries.Get("/stats", authRequired, inquiryHandler.Stats)
	inquiries.Get("/:id", authRequired, inquiryHandler.Get)
	inquiries.Patch("/:id/status", authRequired, inquiryHandler.UpdateStatus)
	inquiries.Patch("/:id/notes", authRequired, inquiryHandler.UpdateNotes)
	inquiries.Delete("/:id", authRequired, inquiryHandler.Delete)

	// Content
	content := api.Group("/content")
	content.Get("/public", contentHandler.Public)
	content.Get("/statistics", contentHandler.Statistics)
	content.Get("/values", contentHandler.Values)
	content.Get("/services", contentHandler.Services)
	content.Get("/partners", contentHandler.Partners)
	content.Get("/settings/all", authRequired, contentHandler.Settings)
	content.Get("/settings", contentHandler.SettingsMap)
	content.Patch("/settings/:key", authRequired, contentHandler.UpsertSetting)
	content.Get("/", authRequired, contentHandler.List)
	content.Get("/:key", authRequired, contentHandler.GetByKey)
	content.Post("/", authRequired, contentHandler.Create)
	content.Patch("/:key", authRequired, contentHandler.UpdateByKey)
	content.Delete("/:key", authRequired, contentHandler.DeleteByKey)

	// Uploads
	uploads := api.Group("/uploads", authRequired)
	uploads.Post("/", uploadHandler.Upload)
	uploads.Get("/", uploadHandler.List)
	uploads.Get("/:filename/info", uploadHandler.Info)
	uploads.Delete("/:filename", uploadHandler.Delete)

	// Users (admin management)
	users := api.Group("/users", authRequired, adminOnly)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Post("/", userHandler.Create)
	users.Patch("/:id", userHandler.Update)
	users.Patch("/:id/toggle-active", userHandler.ToggleActive)
	users.Delete("/:id", userHandler.Delete)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
