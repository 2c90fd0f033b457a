package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/notes-backend/internal/config"
	"github.com/iliyamo/notes-backend/internal/database"
	"github.com/iliyamo/notes-backend/internal/handler"
	"github.com/iliyamo/notes-backend/internal/logger"
	"github.com/iliyamo/notes-backend/internal/queue"
	"github.com/iliyamo/notes-backend/internal/repository"
	"github.com/iliyamo/notes-backend/internal/router"
	"github.com/iliyamo/notes-backend/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	log, err := logger.New("notes-backend")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log.Desugar())

	if err := run(log); err != nil {
		log.Errorw("startup", "error", err)
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	// Sessions live in Redis when it is reachable; otherwise they are
	// process-local and a restart logs everyone out.
	rdb := config.NewRedisClient()
	var sessions session.Store
	if rdb != nil {
		sessions = session.NewRedisStore(rdb, cfg.SessionTTL())
		log.Infow("session store", "backend", "redis")
	} else {
		sessions = session.NewMemoryStore(cfg.SessionTTL())
		log.Infow("session store", "backend", "memory")
	}

	users := repository.NewUserRepo(db)
	notes := repository.NewNoteRepo(db)
	auth := handler.NewAuthHandler(cfg, users, sessions)
	noteHandler := handler.NewNoteHandler(notes)

	if cfg.ConsumerOn {
		go queue.StartNoteConsumer()
	}

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, cfg, auth, noteHandler, sessions, users, rdb)

	addr := ":" + cfg.Port
	log.Infow("startup", "addr", addr, "env", cfg.Env)
	return e.Start(addr)
}
