// SleepBetter API
//
// REST API for tracking sleep debt and planning recovery.
//
//	@title			SleepBetter API
//	@version		1.0
//	@description	Log nights of sleep, track cumulative sleep debt, and get bedtime recommendations, recovery plans and trend analysis.
//
//	@BasePath	/v1
//
//	@tag.name			profiles
//	@tag.description	Sleeper profile management endpoints
//
//	@tag.name			entries
//	@tag.description	Nightly sleep logging endpoints
//
//	@tag.name			analysis
//	@tag.description	Debt, recommendation, plan and trend endpoints
//
//	@tag.name			insights
//	@tag.description	LLM-powered insights endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/neuroccm/sleepbetter/internal/api"
	"github.com/neuroccm/sleepbetter/internal/api/handler"
	"github.com/neuroccm/sleepbetter/internal/config"
	"github.com/neuroccm/sleepbetter/internal/domain"
	"github.com/neuroccm/sleepbetter/internal/langfuse"
	"github.com/neuroccm/sleepbetter/internal/llm"
	"github.com/neuroccm/sleepbetter/internal/repository"
	"github.com/neuroccm/sleepbetter/internal/seed"
	"github.com/neuroccm/sleepbetter/internal/service"
	"github.com/neuroccm/sleepbetter/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op if Langfuse is not configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleepbetter-api")
	if err != nil {
		log.Printf("Warning: failed to initialize tracing: %v", err)
	} else {
		defer func() {
			if err := shutdownTracer(ctx); err != nil {
				log.Printf("Warning: failed to shut down tracer: %v", err)
			}
		}()
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.Profile{}, &domain.SleepEntry{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	// Initialize services
	profileService := service.NewProfileService(profileRepo, cfg.Engine)
	entryService := service.NewEntryService(entryRepo, profileRepo)
	debtService := service.NewDebtService(entryRepo, profileRepo, cfg.Engine)
	recommendationService := service.NewRecommendationService(entryRepo, profileRepo, cfg.Engine)
	planService := service.NewPlanService(entryRepo, profileRepo, cfg.Engine)
	trendsService := service.NewTrendsService(entryRepo, profileRepo, cfg.Engine)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	} else if prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.LangfusePromptName,
		PromptLabel: cfg.LangfuseEnv,
		SavePath:    cfg.LangfusePromptCache,
	}); err == nil {
		openaiClient.UseSystemPrompt(prompt)
	}

	// Initialize Langfuse client for feedback scoring
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize insights service
	insightsService := service.NewInsightsService(debtService, trendsService, planService, openaiClient, profileRepo)

	// Initialize handlers
	profileHandler := handler.NewProfileHandler(profileService)
	entryHandler := handler.NewEntryHandler(entryService)
	analysisHandler := handler.NewAnalysisHandler(debtService, recommendationService, planService, trendsService)
	insightsHandler := handler.NewInsightsHandler(insightsService, langfuseClient)

	// Setup router
	router := api.NewRouter(profileHandler, entryHandler, analysisHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
