package main

import (
	"net/http"

	"CartKeeper/internal/config"
	"CartKeeper/internal/handlers"
	"CartKeeper/internal/middleware"
	"CartKeeper/internal/repo"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}
	if err := repo.Seed(gormDB); err != nil {
		sugar.Fatalw("failed to seed store", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	shoppingRepo := repo.NewShoppingRepository(gormDB)
	categoryRepo := repo.NewCategoryRepository(gormDB)

	h := handlers.NewHandler(userRepo, shoppingRepo, categoryRepo, sugar)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
