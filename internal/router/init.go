package router

import (
	"github.com/inventorylabs/product-catalog-api/internal/application"
	"github.com/inventorylabs/product-catalog-api/internal/container"
	pginfra "github.com/inventorylabs/product-catalog-api/internal/infrastructure/postgres"
	handlers "github.com/inventorylabs/product-catalog-api/internal/interface/http"
	"github.com/inventorylabs/product-catalog-api/internal/router/modules"
)

// InitModules builds every feature module from the container and registers
// it with the registry. Called once during startup.
func InitModules(r *Registry, app *container.App) {
	userRepo := pginfra.NewUserRepository(app.PG)
	userSvc := application.NewUserService(userRepo, app.JWT, app.Redis, app.Logger, app.Config.SessionTTL)
	userHandler := handlers.NewUserHandler(userSvc, app.Logger, app.Config.CookieDomain, app.Config.CookieSecure)
	r.Add(modules.NewUserModule(userHandler, app.JWT, app.Redis))

	productRepo := pginfra.NewProductRepository(app.PG)
	productSvc := application.NewProductService(productRepo, app.Logger)
	productHandler := handlers.NewProductHandler(productSvc, app.Logger)
	r.Add(modules.NewProductModule(productHandler, app.JWT, app.Redis))

	if app.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(app.Redis))
	}
}
