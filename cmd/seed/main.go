package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/inventorylabs/product-catalog-api/config"
	"github.com/inventorylabs/product-catalog-api/internal/domain/entity"
	pginfra "github.com/inventorylabs/product-catalog-api/internal/infrastructure/postgres"
	"github.com/inventorylabs/product-catalog-api/pkg/helpers"
)

func strptr(s string) *string { return &s }

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)

	existing, err := users.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		log.Fatalf("failed to check admin user: %v", err)
	}
	if existing != nil {
		fmt.Println("admin user already exists")
		return
	}

	hash, err := helpers.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	admin, err := users.Create(ctx, cfg.AdminEmail, hash, strptr("Administrator"))
	if err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	fmt.Printf("seeded admin user: id=%s email=%s\n", admin.ID, admin.Email)

	products := pginfra.NewProductRepository(pool)
	samples := []entity.CreateProductDTO{
		{
			Name:        "Laptop Dell XPS 15",
			Description: strptr("High-performance laptop with 16GB RAM and 512GB SSD"),
			Category:    "Electronics",
			Stock:       15,
		},
		{
			Name:        "Wireless Mouse Logitech",
			Description: strptr("Ergonomic wireless mouse with precision tracking"),
			Category:    "Accessories",
			Stock:       50,
		},
		{
			Name:        "USB-C Hub",
			Description: strptr("Multi-port USB-C hub with HDMI and USB 3.0"),
			Category:    "Accessories",
			Stock:       30,
		},
	}
	for _, s := range samples {
		p, err := products.Create(ctx, s)
		if err != nil {
			log.Fatalf("failed to seed product %q: %v", s.Name, err)
		}
		fmt.Printf("seeded product: id=%s name=%s\n", p.ID, p.Name)
	}
}
