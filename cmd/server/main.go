package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/SAFE-Rescue/api-administrador/internal/config"
	"github.com/SAFE-Rescue/api-administrador/internal/database"
	"github.com/SAFE-Rescue/api-administrador/internal/handler"
	"github.com/SAFE-Rescue/api-administrador/internal/middleware"
	"github.com/SAFE-Rescue/api-administrador/internal/repository"
	"github.com/SAFE-Rescue/api-administrador/internal/router"
	"github.com/SAFE-Rescue/api-administrador/internal/seed"
	"github.com/SAFE-Rescue/api-administrador/internal/service"
)

func main() {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	rolRepo := repository.NewRolRepo(db)
	credRepo := repository.NewCredencialRepo(db)
	bomberoRepo := repository.NewBomberoRepo(db)

	rolService := service.NewRolService(rolRepo)
	credService := service.NewCredencialService(credRepo, rolRepo, rolService)
	bomberoService := service.NewBomberoService(bomberoRepo, credRepo, credService)

	if cfg.Env == "dev" {
		seed.Run(context.Background(), rolService, credService, bomberoService)
	}

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), config.NewRedisClient())

	e := echo.New()
	router.RegisterRoutes(e,
		handler.NewBomberoHandler(bomberoService),
		handler.NewCredencialHandler(credService),
		handler.NewRolHandler(rolService),
		cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
