package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"                 // .env loader for local development
	"github.com/labstack/echo/v4"              // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // built-in Echo middleware (CORS, logger, recover)

	"github.com/rafidhani/tukang-backend/internal/config"
	"github.com/rafidhani/tukang-backend/internal/database"
	"github.com/rafidhani/tukang-backend/internal/handler"
	"github.com/rafidhani/tukang-backend/internal/middleware"
	"github.com/rafidhani/tukang-backend/internal/queue"
	"github.com/rafidhani/tukang-backend/internal/repository"
	"github.com/rafidhani/tukang-backend/internal/router"
	"github.com/rafidhani/tukang-backend/internal/storage"
)

func main() {
	_ = godotenv.Load() // missing .env is fine; env vars and defaults apply
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	uploads, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store: %v", err)
	}

	// Redis is optional: a nil client disables rate limiting and caching.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	users := repository.NewUserRepo(db)
	orders := repository.NewOrderRepo(db)
	chats := repository.NewChatRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS()) // open to any origin; the API is consumed by mobile and web clients directly

	// Uploaded job photos are served back as static files.
	e.Static("/uploads", uploads.Dir())

	router.RegisterRoutes(e)
	router.RegisterAPI(e, router.APIHandlers{
		Auth:     handler.NewAuthHandler(cfg, users),
		Provider: handler.NewProviderHandler(users),
		Order:    handler.NewOrderHandler(orders, uploads),
		Chat:     handler.NewChatHandler(chats),
		Admin:    handler.NewAdminHandler(users),
	}, limiter, cache)

	// Background consumer appends order.created events to logs/orders.log.
	// It reconnects forever on its own; a dead broker never stops the API.
	go func() {
		if err := queue.StartOrderConsumer(); err != nil {
			log.Printf("order consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
