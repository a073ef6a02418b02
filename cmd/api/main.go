package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/faithbit/ssms-api/internal/application/auth"
	"github.com/faithbit/ssms-api/internal/application/usecase"
	"github.com/faithbit/ssms-api/internal/infrastructure/postgres"
	httpRouter "github.com/faithbit/ssms-api/internal/interfaces/http"
	"github.com/faithbit/ssms-api/pkg/config"
	"github.com/faithbit/ssms-api/pkg/logger"
	"github.com/faithbit/ssms-api/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	issuer := token.NewIssuer(
		cfg.JWT.Secret, cfg.JWT.Issuer,
		time.Duration(cfg.JWT.AccessTTLHours)*time.Hour,
		time.Duration(cfg.JWT.RefreshTTLHours)*time.Hour,
	)

	authUC := auth.NewUseCase(userRepo, branchRepo, issuer)
	customerUC := usecase.NewCustomerUseCase(customerRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	branchUC := usecase.NewBranchUseCase(branchRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		ProductUC:   productUC,
		DashboardUC: dashboardUC,
		BranchUC:    branchUC,
		Issuer:      issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
