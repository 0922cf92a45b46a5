package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/inventorylabs/product-catalog-api/config"
	"github.com/inventorylabs/product-catalog-api/pkg/helpers"
)

// App holds the process-wide dependencies. Everything here is constructed
// explicitly in main at startup and released there at shutdown; modules
// receive the container instead of reaching for implicit globals.
type App struct {
	Config *config.Config
	Logger *logrus.Logger
	PG     *pgxpool.Pool
	Redis  *redis.Client
	JWT    *helpers.JWTManager
}

func New(cfg *config.Config, logger *logrus.Logger, pg *pgxpool.Pool, rdb *redis.Client, jwt *helpers.JWTManager) *App {
	return &App{Config: cfg, Logger: logger, PG: pg, Redis: rdb, JWT: jwt}
}

// Close releases the stateful resources in reverse construction order.
func (a *App) Close() {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	if a.PG != nil {
		a.PG.Close()
	}
}
