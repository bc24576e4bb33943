package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/HITENDRAS940/turf-booking-api/internal/config"
	"github.com/HITENDRAS940/turf-booking-api/internal/cron"
	"github.com/HITENDRAS940/turf-booking-api/internal/database"
	"github.com/HITENDRAS940/turf-booking-api/internal/handler"
	"github.com/HITENDRAS940/turf-booking-api/internal/logger"
	"github.com/HITENDRAS940/turf-booking-api/internal/model"
	"github.com/HITENDRAS940/turf-booking-api/internal/queue"
	"github.com/HITENDRAS940/turf-booking-api/internal/repository"
	"github.com/HITENDRAS940/turf-booking-api/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments use the environment

	cfg := config.Load()
	logger.Init(cfg.Env)
	defer logger.Sync()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logger.L().Fatalw("database connect failed", "err", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		logger.L().Fatalw("schema migration failed", "err", err)
	}
	cancel()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	turfs := repository.NewTurfRepo(db)
	slots := repository.NewSlotRepo(db)
	bookings := repository.NewBookingRepo(db)
	images := repository.NewImageRepo(db)

	seedManager(users, cfg)

	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.L().Warnw("redis unreachable, cache and rate limiting disabled")
	}

	go queue.StartBookingConsumer()

	sweeper, err := cron.StartCompletionSweep(cfg.CompletionCron, bookings)
	if err != nil {
		logger.L().Fatalw("invalid completion cron spec", "spec", cfg.CompletionCron, "err", err)
	}
	defer sweeper.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	router.Register(e, router.Deps{
		Cfg:       cfg,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
		Redis:     rdb,
		Auth:      handler.NewAuthHandler(cfg, users, tokens),
		Public:    handler.NewPublicHandler(turfs, slots, bookings, images),
		Booking:   handler.NewBookingHandler(turfs, slots, bookings),
		Admin:     handler.NewAdminHandler(turfs, slots, bookings, images),
		Manager:   handler.NewManagerHandler(cfg, users, tokens, turfs),
	})

	addr := ":" + cfg.Port
	logger.L().Infow("listening", "addr", addr, "env", cfg.Env)
	if err := e.Start(addr); err != nil {
		logger.L().Fatalw("server stopped", "err", err)
	}
}

// seedManager creates the bootstrap MANAGER account from
// MANAGER_EMAIL / MANAGER_PASSWORD when both are set and the account
// does not exist yet.  Managers cannot self-register, so a fresh
// deployment needs this to get its first privileged login.
func seedManager(users *repository.UserRepo, cfg config.Config) {
	email := os.Getenv("MANAGER_EMAIL")
	password := os.Getenv("MANAGER_PASSWORD")
	if email == "" || password == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := users.GetByEmail(ctx, email); err == nil {
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		logger.L().Warnw("manager seed lookup failed", "err", err)
		return
	}

	name := os.Getenv("MANAGER_NAME")
	if name == "" {
		name = "Platform Manager"
	}
	if _, err := users.Create(ctx, name, email, "", password, model.RoleManager, nil, cfg.BcryptCost); err != nil {
		logger.L().Warnw("manager seed failed", "err", err)
		return
	}
	logger.L().Infow("manager account seeded", "email", email)
}
