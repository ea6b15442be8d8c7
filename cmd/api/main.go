package main

import (
	"context"
	"flag"
	"log"
	"os"

	"energy-history/internal/api/handlers"
	"energy-history/internal/api/middleware"
	"energy-history/internal/config"
	"energy-history/internal/data"
	"energy-history/internal/observability/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfgPath := flag.String("config", os.Getenv("ENERGY_HISTORY_CONFIG"), "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("history source: %s (refresh every %s)", cfg.HistoryCSV, cfg.Refresh.Interval())

	metrics.Init()

	// The snapshot is rebuilt from scratch on every tick; handlers only ever
	// see a complete pass.
	snap := data.NewSnapshot(cfg.HistoryCSV)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go snap.Run(ctx, cfg.Refresh.Interval())

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	historyHandler := handlers.NewHistoryHandler(snap, cfg.TailRows)
	projectionHandler := handlers.NewProjectionHandler(snap)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/history", historyHandler.GetHistory)
		api.GET("/history/range", historyHandler.GetRange)
		api.GET("/history/summary", historyHandler.GetSummary)
		api.GET("/history/metrics", historyHandler.GetMetrics)
		api.GET("/history/projections", projectionHandler.ListProjections)
		api.GET("/history/projections/:name", projectionHandler.GetProjection)
	}

	log.Printf("Starting API server on %s", cfg.Server.ListenAddr)
	if err := router.Run(cfg.Server.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
