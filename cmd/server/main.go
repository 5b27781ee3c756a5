package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/Mousify/shoe-recognition-app-v2-Backend/config"
	httpDelivery "github.com/Mousify/shoe-recognition-app-v2-Backend/internal/delivery/http"
	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/infrastructure/cache"
	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/infrastructure/catalog"
	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/infrastructure/openai"
	"github.com/Mousify/shoe-recognition-app-v2-Backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Mousify Backend v2.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	openaiClient := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model, cfg.OpenAI.RequestsPerMinute)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		openaiClient.SetDebug(true)
		log.Printf("OpenAI client debug mode enabled")
	}
	log.Printf("OpenAI model: %s (base: %s)", cfg.OpenAI.Model, cfg.OpenAI.BaseURL)

	// Load the product catalog; a missing or broken export is not fatal,
	// recommendations just come back empty until it is fixed.
	store := catalog.NewStore()
	if err := catalog.LoadFile(store, cfg.Catalog.CSVPath); err != nil {
		log.Printf("WARNING: initial catalog load failed: %v", err)
	}

	if cfg.Catalog.Watch {
		go func() {
			if err := catalog.Watch(context.Background(), store, cfg.Catalog.CSVPath); err != nil {
				log.Printf("WARNING: catalog watcher stopped: %v", err)
			}
		}()
	}

	// Initialize usecase layer
	analysisService := usecase.NewAnalysisService(
		memoryCache,
		openaiClient,
		store,
		usecase.AnalysisServiceConfig{
			CacheTTL: cfg.Cache.TTL,
			Recommendations: usecase.RecommendationConfig{
				TopK:               cfg.Recommendations.TopK,
				ProductBaseURL:     cfg.Catalog.ProductBaseURL,
				EnableDebugLogging: cfg.Recommendations.EnableDebugLogging,
			},
		},
	)

	log.Printf("Recommendations: top_k=%d, catalog=%s, watch=%v",
		cfg.Recommendations.TopK,
		cfg.Catalog.CSVPath,
		cfg.Catalog.Watch)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(analysisService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
