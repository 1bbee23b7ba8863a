package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"dispatch-report/internal/api/handlers"
	"dispatch-report/internal/api/middleware"
	"dispatch-report/internal/config"
	"dispatch-report/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Environment wins over the config file for the port.
	if port := os.Getenv("API_PORT"); port != "" {
		cfg.Server.Port = port
	}

	if cfg.Server.Mode == "release" || os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(middleware.ErrorHandler())

	reports := store.New(cfg.StoreTTL(), cfg.Report.MaxStored)
	reportHandler := handlers.NewReportHandler(reports, cfg.Report.Filename)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/report", reportHandler.BuildReport)
		api.POST("/report/download", reportHandler.DownloadReport)
		api.POST("/report/manifest", reportHandler.Manifest)
		api.GET("/report/:id/download", reportHandler.GetStoredReport)
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Starting report API on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
