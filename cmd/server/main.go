package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/synapsehq/leaderboard-api/internal/audit"
	"github.com/synapsehq/leaderboard-api/internal/config"
	"github.com/synapsehq/leaderboard-api/internal/database"
	"github.com/synapsehq/leaderboard-api/internal/handler"
	"github.com/synapsehq/leaderboard-api/internal/middleware"
	"github.com/synapsehq/leaderboard-api/internal/queue"
	"github.com/synapsehq/leaderboard-api/internal/repository"
	"github.com/synapsehq/leaderboard-api/internal/router"
	"github.com/synapsehq/leaderboard-api/internal/session"
	"github.com/synapsehq/leaderboard-api/internal/utils"
)

func main() {
	_ = godotenv.Load()  // .env is optional; real env vars win
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.InitSchema(ctx, db); err != nil {
		log.Fatalf("schema init: %v", err)
	}
	hash, err := utils.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash bootstrap password: %v", err)
	}
	if _, err := database.EnsureDefaultAdmin(ctx, db, cfg.AdminUsername, hash); err != nil {
		log.Fatalf("bootstrap admin: %v", err)
	}

	// Sessions live in Redis when one is reachable; otherwise fall back to
	// the in-process store (single-replica dev runs only).
	rdb := config.NewRedisClient()
	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb)
	} else {
		log.Printf("redis unavailable, using in-memory session store")
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, cfg.SessionSecret, cfg.SessionTTLMin)

	admins := repository.NewAdminRepo(db)
	members := repository.NewMemberRepo(db)
	stats := repository.NewStatRepo(db)
	audits := repository.NewAuditRepo(db)

	brokerConfigured := os.Getenv("RABBITMQ_URL") != "" || os.Getenv("AMQP_URL") != ""
	recorder := audit.NewRecorder(audits, brokerConfigured)
	if brokerConfigured {
		go func() {
			if err := queue.StartAuditConsumer(); err != nil {
				log.Printf("audit consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	loginLimit := middleware.NewLoginRateLimit(config.LoadRateLimitConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(admins, sessions, recorder), sessions, loginLimit)
	router.RegisterPublic(e, handler.NewPublicHandler(members, stats))
	router.RegisterAdmin(e, handler.NewAdminHandler(members, stats, recorder, audits), sessions)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
