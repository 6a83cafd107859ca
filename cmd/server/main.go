package main // Entry point package

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"go-blog/internal/config"
	"go-blog/internal/database"
	"go-blog/internal/handler"
	"go-blog/internal/middleware"
	"go-blog/internal/model"
	"go-blog/internal/queue"
	"go-blog/internal/repository"
	"go-blog/internal/router"
	"go-blog/internal/service"
	"go-blog/internal/utils"
)

func main() {
	_ = godotenv.Load() // optional .env; real env vars win
	cfg := config.Load()

	logger := utils.MustLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName,
		database.Pool{
			MaxOpen:     cfg.DBMaxOpen,
			MaxIdle:     cfg.DBMaxIdle,
			MaxLifetime: time.Duration(cfg.DBConnLifeMin) * time.Minute,
		})
	if err != nil {
		logger.Fatal("database open failed", zap.Error(err))
	}
	defer db.Close()

	// Repositories over the shared pool.
	users := repository.NewUserRepo(db)
	posts := repository.NewPostRepo(db)
	messages := repository.NewMessageRepo(db)
	sessions := repository.NewSessionRepo(db)

	// Workflows. Session lifetime and bcrypt cost come from config;
	// contact submissions are announced on the broker.
	authSvc := service.NewAuthService(users, sessions, cfg.SessionSecret,
		time.Duration(cfg.SessionTTLHour)*time.Hour, cfg.BcryptCost)
	postSvc := service.NewPostService(posts)
	contactSvc := service.NewContactService(messages, queue.PublishContactReceived)

	// Optional response cache for the public pages. A nil Redis client
	// disables it without affecting anything else.
	rdb := config.NewRedisClient()
	if rdb == nil {
		logger.Warn("redis unavailable, response cache disabled")
	}
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	resolve := func(c echo.Context, raw string) (model.User, error) {
		return authSvc.ResolveIdentity(c.Request().Context(), raw)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestLogger(logger))
	router.Register(e,
		handler.NewAuthHandler(authSvc),
		handler.NewPostHandler(postSvc),
		handler.NewContactHandler(contactSvc),
		resolve, cache)

	// Background consumer for contact notifications; reconnects on its
	// own and never brings the server down.
	go queue.StartContactConsumer(logger)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
