package main

import (
	"log"

	"schedulehq-backend/internal/api/routes"
	"schedulehq-backend/internal/config"
	"schedulehq-backend/internal/database"
	"schedulehq-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

//	@title			ScheduleHQ Backend API
//	@version		1.0
//	@description	Shift scheduling backend: shifts, time off, weekly templates, runner assignments, and per-session undo/redo.

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	var db *gorm.DB
	switch cfg.DatabaseDriver {
	case "sqlite":
		db, err = database.InitializeSQLite(cfg.SQLitePath, nil)
	default:
		db, err = database.Initialize(cfg.DatabaseURL, nil)
	}
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router, err := routes.SetupRoutes(db, cfg)
	if err != nil {
		logrus.Fatal("Failed to set up routes:", err)
	}

	logrus.WithFields(logrus.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"db_driver":   cfg.DatabaseDriver,
	}).Info("Starting server")

	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
