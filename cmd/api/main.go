package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"
	"github.com/rapidhub/rapidhub/internal/cache"
	"github.com/rapidhub/rapidhub/internal/config"
	"github.com/rapidhub/rapidhub/internal/database"
	"github.com/rapidhub/rapidhub/internal/handler"
	"github.com/rapidhub/rapidhub/internal/logger"
	"github.com/rapidhub/rapidhub/internal/rapidapi"
	"github.com/rapidhub/rapidhub/internal/repository"
	"github.com/rapidhub/rapidhub/internal/service"
	"go.uber.org/zap"
)

type application struct {
	DB      *pgxpool.Pool
	Logger  *zap.Logger
	Config  *config.Config
	Handler *handler.Handler
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded: %s", cfg)

	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		sugar.Fatal(err)
	}
	defer pool.Close()

	apiClient := rapidapi.NewClient(cfg.RapidAPI)

	if cfg.CacheEnabled() {
		redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := cache.Ping(ctx, redisClient); err != nil {
			sugar.Warnf("redis unreachable, search cache disabled: %v", err)
		} else {
			apiClient.SetCache(cache.NewSearchCache(redisClient, cfg.Redis.CacheTTL))
			sugar.Info("search cache enabled")
		}
	}

	repo := repository.NewRepository(pool)

	h := &handler.Handler{
		Logger: log,
		Jobs:   service.NewJobService(repo, apiClient, log),
		Movies: service.NewMovieService(repo, apiClient, log),
	}

	// The youtube service graph exists only when the feature is enabled;
	// routes.go skips its routes when Handler.YouTube is nil.
	if cfg.YouTube.Enabled {
		h.YouTube = service.NewYouTubeService(repo, apiClient, log)
		sugar.Info("youtube download routes enabled")
	}

	app := &application{
		DB:      pool,
		Logger:  log,
		Config:  cfg,
		Handler: h,
	}

	if err := app.serve(); err != nil {
		sugar.Fatal(err)
	}
}
