// seed bootstraps a development database: applies the schema, creates the
// main branch, an admin account and a small sample catalog.
//
// Usage: go run ./cmd/seed
// Reads the same environment (DATABASE_URL / DB_*) as the API server.
// The admin password comes from SEED_ADMIN_PASSWORD (default "admin123").
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/faithbit/ssms-api/internal/application/dto"
	"github.com/faithbit/ssms-api/internal/application/usecase"
	"github.com/faithbit/ssms-api/internal/domain/entity"
	"github.com/faithbit/ssms-api/internal/domain/rbac"
	"github.com/faithbit/ssms-api/internal/infrastructure/postgres"
	"github.com/faithbit/ssms-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	schema, err := os.ReadFile("internal/infrastructure/postgres/migrations/001_init.sql")
	if err != nil {
		fail("read schema: %v", err)
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fail("apply schema: %v", err)
	}
	fmt.Println("schema applied")

	now := time.Now()
	branchRepo := postgres.NewBranchRepository(pool)
	branch := &entity.Branch{
		ID:        uuid.New().String(),
		Name:      "Main Branch",
		Code:      "HQ",
		City:      "Dar es Salaam",
		Region:    "Dar es Salaam",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := branchRepo.Create(ctx, branch); err != nil {
		fmt.Println("branch exists, skipping")
	} else {
		fmt.Println("branch created:", branch.Code)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("hash password: %v", err)
	}
	userRepo := postgres.NewUserRepository(pool)
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		Email:        "admin@faithbit.co.tz",
		PasswordHash: string(hash),
		FirstName:    "System",
		LastName:     "Administrator",
		Role:         rbac.RoleAdmin,
		Status:       entity.StatusActive,
		BranchID:     branch.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		fmt.Println("admin exists, skipping")
	} else {
		fmt.Println("admin created:", admin.Username)
	}

	productUC := usecase.NewProductUseCase(postgres.NewProductRepository(pool))
	samples := []dto.CreateProductRequest{
		{
			SKU: "PHN-SAM-A54", Name: "Samsung Galaxy A54", NameSw: "Simu Samsung Galaxy A54",
			Brand: "Samsung", Model: "A54",
			SellingPrice: decimal.NewFromInt(850000), CostPrice: decimal.NewFromInt(700000),
			ReorderLevel: 5, HasIMEI: true,
		},
		{
			SKU: "ACC-CHG-20W", Name: "USB-C Fast Charger 20W", NameSw: "Chaja ya Simu 20W",
			SellingPrice: decimal.NewFromInt(25000), CostPrice: decimal.NewFromInt(15000),
			ReorderLevel: 20,
		},
		{
			SKU: "SRV-SCR-REP", Name: "Screen Replacement", NameSw: "Kubadilisha Kioo",
			Type:         entity.ProductTypeService,
			SellingPrice: decimal.NewFromInt(60000),
		},
	}
	for _, in := range samples {
		if _, err := productUC.Create(ctx, in); err != nil {
			fmt.Printf("product %s: %v\n", in.SKU, err)
			continue
		}
		fmt.Println("product created:", in.SKU)
	}

	customerUC := usecase.NewCustomerUseCase(postgres.NewCustomerRepository(pool), postgres.NewTxRunner(pool))
	walkIn, err := customerUC.Create(ctx, dto.CreateCustomerRequest{
		FirstName: "Walk-in",
		LastName:  "Customer",
		Notes:     "Default counter customer",
	})
	if err != nil {
		fmt.Println("walk-in customer:", err)
	} else {
		fmt.Println("walk-in customer created:", walkIn.CustomerNumber)
	}

	fmt.Println("done")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
