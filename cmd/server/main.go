package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"hdbvalue/server/config"
	"hdbvalue/server/internal/api"
	"hdbvalue/server/internal/database"
	"hdbvalue/server/internal/predictor"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	// Best-effort .env for local development
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// The model artifact is the one resource the service cannot run
	// without: missing or corrupt means refuse to start.
	logger.Infof("Loading model artifact from %s", cfg.Resources.ModelPath)
	model, err := predictor.Load(cfg.Resources.ModelPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load model artifact")
	}

	// The historical dataset only feeds the recent-transactions view, so
	// any problem here degrades that view instead of killing the server.
	datasetReady := false
	db, err := database.NewDatabase(logger)
	if err != nil {
		logger.WithError(err).Error("Failed to initialize transaction store")
	} else {
		defer db.Close()
		imported, skipped, err := db.ImportCSV(cfg.Resources.DatasetPath)
		if err != nil {
			logger.WithError(err).Error("Failed to load historical dataset")
		} else {
			logger.Infof("Loaded %d transactions (%d rows skipped)", imported, skipped)
			datasetReady = true
		}
	}

	handler := api.NewHandler(db, model, datasetReady, logger)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	router.LoadHTMLGlob(cfg.Resources.TemplateGlob)

	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
