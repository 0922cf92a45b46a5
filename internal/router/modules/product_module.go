package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/inventorylabs/product-catalog-api/internal/interface/http"
	"github.com/inventorylabs/product-catalog-api/internal/interface/middleware"
	"github.com/inventorylabs/product-catalog-api/pkg/helpers"
)

// ProductModule wires the catalog CRUD routes. All of them require an
// authenticated session.
type ProductModule struct {
	Handler *handlers.ProductHandler
	JWT     *helpers.JWTManager
	Redis   *redis.Client
}

func NewProductModule(h *handlers.ProductHandler, jwt *helpers.JWTManager, rdb *redis.Client) *ProductModule {
	return &ProductModule{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/products")
	auth.Use(
		middleware.Auth(m.Redis, m.JWT),
		middleware.RateLimit(m.Redis, 300, time.Minute, middleware.KeyByUserID()),
	)
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
		auth.POST("/delete-group", m.Handler.DeleteGroup)
	}
}
