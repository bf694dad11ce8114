// seed registers a demo user and inserts sample products into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/JiyaDuseja/inventory-management/internal/domain"
	"github.com/JiyaDuseja/inventory-management/internal/infrastructure/postgres"
	"github.com/JiyaDuseja/inventory-management/internal/password"
	"github.com/JiyaDuseja/inventory-management/internal/usecase"
)

const (
	seedEmail    = "seed@test.local"
	seedPassword = "seed-password"
)

type productSpec struct {
	name     string
	quantity int64
	price    float64
}

var products = []productSpec{
	{"Widget", 5, 9.99},
	{"Gadget", 12, 24.50},
	{"Sprocket", 0, 3.25}, // zero quantity is legal
	{"Doohickey", 250, 0.99},
	{"Gizmo", 7, 149.00},
	{"Thingamajig", 42, 18.75},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := postgres.RunMigrations(dbURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hasher := password.NewBcryptHasher(password.DefaultCost)
	provider := postgres.NewIdentityProvider(pool, hasher)
	userRepo := postgres.NewUserRepository(pool)

	// Register through the real signup path; re-runs reuse the existing user.
	authUsecase := usecase.NewAuthUsecase(provider, userRepo, []byte("seed-only-secret-not-used-for-tokens"))
	userID, err := authUsecase.Signup(ctx, seedEmail, seedPassword)
	if err != nil {
		if !errors.Is(err, domain.ErrEmailTaken) {
			log.Fatalf("seed user: %v", err)
		}
		u, findErr := userRepo.FindByEmail(ctx, seedEmail)
		if findErr != nil {
			log.Fatalf("find seed user: %v", findErr)
		}
		userID = u.ID
	}

	productRepo := postgres.NewProductRepository(pool)
	productUsecase := usecase.NewProductUsecase(productRepo)

	var inserted int
	for _, spec := range products {
		_, err := productUsecase.Create(ctx, usecase.CreateProductInput{
			Name:      spec.name,
			Quantity:  spec.quantity,
			Price:     spec.price,
			CreatedBy: userID,
		})
		if err != nil {
			log.Fatalf("insert product %q: %v", spec.name, err)
		}
		inserted++
	}

	fmt.Printf("seeded user %s and %d products\n", userID, inserted)
}
