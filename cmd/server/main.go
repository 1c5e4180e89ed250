package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/brandsbridge/internal/cache"
	"github.com/example/brandsbridge/internal/config"
	"github.com/example/brandsbridge/internal/database"
	"github.com/example/brandsbridge/internal/routes"
	"github.com/example/brandsbridge/internal/storage"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if cfg.SeedOnBoot {
		if err := database.NewSeeder(db).SeedAll(cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	var cc *cache.Cache
	if cfg.RedisURL != "" {
		var err error
		cc, err = cache.New(cfg.RedisURL)
		if err != nil {
			log.Printf("redis unavailable, caching disabled: %v", err)
			cc = nil
		}
	}

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("storage init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Brands Bridge Backend",
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	if local, ok := store.(*storage.LocalStorage); ok {
		app.Static(cfg.UploadBaseURL, local.BasePath())
	}

	routes.Register(app, db, cfg, store, cc)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageDriver == "s3" {
		return storage.NewS3Storage(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			UseSSL:    cfg.S3UseSSL,
		})
	}
	return storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("unhandled error: %v", err)
	}

	return c.Status(code).JSON(fiber.Map{
		"message":    message,
		"statusCode": code,
	})
}
