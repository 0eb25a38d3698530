package main

import (
	"log/slog"
	"os"

	"cookcal_backend/internal/app/router"
	authhandler "cookcal_backend/internal/feature/auth/transport/handler"
	authusecase "cookcal_backend/internal/feature/auth/usecase"
	foodadapters "cookcal_backend/internal/feature/food/adapters"
	foodhandler "cookcal_backend/internal/feature/food/transport/handler"
	foodusecase "cookcal_backend/internal/feature/food/usecase"
	foodlistadapters "cookcal_backend/internal/feature/foodlist/adapters"
	foodlisthandler "cookcal_backend/internal/feature/foodlist/transport/handler"
	foodlistusecase "cookcal_backend/internal/feature/foodlist/usecase"
	recipesadapters "cookcal_backend/internal/feature/recipes/adapters"
	recipeshandler "cookcal_backend/internal/feature/recipes/transport/handler"
	recipesusecase "cookcal_backend/internal/feature/recipes/usecase"
	usersadapters "cookcal_backend/internal/feature/users/adapters"
	usershandler "cookcal_backend/internal/feature/users/transport/handler"
	usersusecase "cookcal_backend/internal/feature/users/usecase"
	weightsadapters "cookcal_backend/internal/feature/weights/adapters"
	weightshandler "cookcal_backend/internal/feature/weights/transport/handler"
	weightsusecase "cookcal_backend/internal/feature/weights/usecase"
	"cookcal_backend/internal/platform/config"
	"cookcal_backend/internal/platform/db"
	"cookcal_backend/internal/platform/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// db
	gdb, err := db.Open(cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	tokens, err := token.NewService(cfg.TokenSecret, cfg.TokenAlgorithm, cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to build token service", "error", err)
		os.Exit(1)
	}

	// Repository
	userRepo := usersadapters.NewUserPG(gdb)
	foodRepo := foodadapters.NewFoodPG(gdb)
	entryRepo := foodlistadapters.NewEntryPG(gdb)
	recipeRepo := recipesadapters.NewRecipePG(gdb)
	measurementRepo := weightsadapters.NewMeasurementPG(gdb)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	usersUC := usersusecase.NewUsersUsecase(userRepo)
	foodUC := foodusecase.NewFoodUsecase(foodRepo)
	foodlistUC := foodlistusecase.NewFoodlistUsecase(entryRepo)
	recipesUC := recipesusecase.NewRecipesUsecase(recipeRepo)
	weightsUC := weightsusecase.NewWeightsUsecase(measurementRepo)

	// Handler
	handlers := router.Handlers{
		Auth:     authhandler.NewAuthHandler(authUC),
		Users:    usershandler.NewUsersHandler(usersUC, authUC),
		Food:     foodhandler.NewFoodHandler(foodUC, authUC),
		Foodlist: foodlisthandler.NewFoodlistHandler(foodlistUC, authUC),
		Recipes:  recipeshandler.NewRecipesHandler(recipesUC, authUC),
		Weights:  weightshandler.NewWeightsHandler(weightsUC, authUC),
	}

	// ルータ生成
	r := router.New(handlers, authUC)

	slog.Info("server starting", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
