package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/auth-service/internal/cache"      // Redis profile cache
	"github.com/iliyamo/auth-service/internal/config"     // Internal config loader
	"github.com/iliyamo/auth-service/internal/database"   // MySQL connection pool
	"github.com/iliyamo/auth-service/internal/handler"    // HTTP handlers
	"github.com/iliyamo/auth-service/internal/queue"      // Auth event consumer
	"github.com/iliyamo/auth-service/internal/repository" // User directory
	"github.com/iliyamo/auth-service/internal/router"     // Internal router setup
)

func main() {
	_ = godotenv.Load() // Load .env when present; real env vars win

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Redis is optional: a nil client disables the profile cache.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; profile cache disabled")
	}
	userCache := cache.NewUserCache(rdb, config.LoadCacheConfig())

	users := repository.NewUserRepo(db)
	auth := handler.NewAuthHandler(cfg, users, userCache)

	// Consume auth events in the background; the consumer reconnects on its
	// own and never takes the server down.
	go func() {
		if err := queue.StartAuthConsumer(); err != nil {
			log.Printf("auth consumer stopped: %v", err)
		}
	}()

	e := echo.New() // Create Echo instance
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	router.RegisterRoutes(e)                    // Health check
	router.RegisterAuth(e, auth, cfg.JWTSecret) // Auth endpoints

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
