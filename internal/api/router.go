package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/neuroccm/sleepbetter/docs"
	"github.com/neuroccm/sleepbetter/internal/api/handler"
	"github.com/neuroccm/sleepbetter/internal/api/middleware"
)

type Router struct {
	profileHandler  *handler.ProfileHandler
	entryHandler    *handler.EntryHandler
	analysisHandler *handler.AnalysisHandler
	insightsHandler *handler.InsightsHandler
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	entryHandler *handler.EntryHandler,
	analysisHandler *handler.AnalysisHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		profileHandler:  profileHandler,
		entryHandler:    entryHandler,
		analysisHandler: analysisHandler,
		insightsHandler: insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Profiles
		r.Route("/profiles", func(r chi.Router) {
			r.Post("/", rt.profileHandler.Create)
			r.Get("/{profileId}", rt.profileHandler.Get)
			r.Patch("/{profileId}", rt.profileHandler.Update)

			// Sleep entries (nested under profiles)
			r.Route("/{profileId}/entries", func(r chi.Router) {
				r.Post("/", rt.entryHandler.Log)
				r.Get("/", rt.entryHandler.List)
				r.Get("/catchup", rt.entryHandler.Catchup)
			})

			// Computed views over the logged history
			r.Route("/{profileId}/sleep", func(r chi.Router) {
				r.Get("/debt", rt.analysisHandler.GetDebt)
				r.Get("/status", rt.analysisHandler.GetStatus)
				r.Get("/recommendation", rt.analysisHandler.GetRecommendation)
				r.Get("/plan", rt.analysisHandler.GetPlan)
				r.Get("/trends", rt.analysisHandler.GetTrends)
				r.Get("/insights", rt.insightsHandler.GetInsights)
				r.Post("/insights/feedback", rt.insightsHandler.PostFeedback)
			})
		})
	})

	return r
}
