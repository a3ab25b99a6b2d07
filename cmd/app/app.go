package main

import (
	"os"

	"github.com/ananas-shop/commerce-backend/internal/app"
	config "github.com/ananas-shop/commerce-backend/internal/cfg"
	"github.com/ananas-shop/commerce-backend/pkg/logger"
	"github.com/joho/godotenv"
)

// @title Commerce Backend API
// @version 1.0
// @description API интернет-магазина: каталог, корзина, оплата и бухгалтерия.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.NewSlogLogger()

	// Локальный запуск: .env необязателен, в контейнере переменные уже заданы.
	if err := godotenv.Load(); err != nil {
		log.Debugf(".env not loaded: %v", err)
	}

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	if err := app.Run(cfg, log); err != nil {
		os.Exit(1)
	}
}
