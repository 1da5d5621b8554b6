package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rushed/config"
	"rushed/database"
	"rushed/handlers"
	"rushed/services"
	"rushed/store"
)

func main() {
	cfg := config.Load()

	// Preference persistence is optional for local development; everything
	// except saved preferences lives in memory anyway.
	var prefs handlers.PreferencesRepo
	db, err := database.Open(cfg)
	if err != nil {
		if os.Getenv("REQUIRE_DB") == "true" {
			log.Fatalf("❌ %v", err)
		}
		log.Printf("⚠️  Running without preference storage: %v", err)
	} else {
		defer db.Close()
		prefs = db
	}

	gateway := services.NewSkyscannerClient(cfg)
	sessions := store.NewStore()
	agg := &services.Aggregator{Gateway: gateway, History: historyOrNil(db)}
	h := handlers.New(sessions, gateway, agg, prefs)

	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURLs,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Routes
	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/locations", h.Locations)
		api.GET("/dates/suggestions", h.DateSuggestions)

		api.POST("/sessions", h.CreateSession)
		api.GET("/sessions/:id", h.GetSession)
		api.PATCH("/sessions/:id/criteria", h.UpdateCriteria)
		api.POST("/sessions/:id/search", h.RunSearch)
		api.PUT("/sessions/:id/selections/:category", h.UpdateSelection)
		api.POST("/sessions/:id/bookings", h.DispatchBooking)
		api.GET("/sessions/:id/summary", h.GetSummary)
		api.GET("/sessions/:id/summary.pdf", h.SummaryPDF)

		api.GET("/preferences/:clientID", h.GetPreferences)
		api.PUT("/preferences/:clientID", h.PutPreferences)
	}

	log.Printf("🚀 Rushed backend starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// historyOrNil avoids storing a typed nil in the SearchHistory interface.
func historyOrNil(db *database.Store) services.SearchHistory {
	if db == nil {
		return nil
	}
	return db
}
