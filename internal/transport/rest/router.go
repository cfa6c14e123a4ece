package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"panorama/internal/service"
	"panorama/internal/transport/rest/handler"
	"panorama/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService      *service.AuthService
	PanoramaService  *service.PanoramaService
	ResponseService  *service.ResponseService
	DashboardService *service.DashboardService
	SummaryService   *service.SummaryService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	panoramaHandler := handler.NewPanoramaHandler(c.PanoramaService)
	responseHandler := handler.NewResponseHandler(c.ResponseService)
	analyticsHandler := handler.NewAnalyticsHandler(c.DashboardService, c.SummaryService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/panoramas/{panoramaId}/responses", responseHandler.Submit).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Organizer routes (require organizer auth)
	organizerRoutes := v1.NewRoute().Subrouter()
	organizerRoutes.Use(authMW.RequireOrganizer)

	organizerRoutes.HandleFunc("/panoramas", panoramaHandler.Create).Methods("POST", "OPTIONS")
	organizerRoutes.HandleFunc("/panoramas", panoramaHandler.List).Methods("GET", "OPTIONS")
	organizerRoutes.HandleFunc("/panoramas/{panoramaId}", panoramaHandler.Get).Methods("GET", "OPTIONS")
	organizerRoutes.HandleFunc("/panoramas/{panoramaId}", panoramaHandler.Update).Methods("PUT", "OPTIONS")
	organizerRoutes.HandleFunc("/panoramas/{panoramaId}", panoramaHandler.Delete).Methods("DELETE", "OPTIONS")
	organizerRoutes.HandleFunc("/panoramas/{panoramaId}/responses", responseHandler.List).Methods("GET", "OPTIONS")

	// Analytics routes (organizer only)
	organizerRoutes.HandleFunc("/panoramas/{panoramaId}/analytics/dashboard", analyticsHandler.GetDashboard).Methods("GET", "OPTIONS")
	organizerRoutes.HandleFunc("/panoramas/{panoramaId}/analytics/summary", analyticsHandler.GenerateSummary).Methods("POST", "OPTIONS")
	organizerRoutes.HandleFunc("/panoramas/{panoramaId}/analytics/text/{questionId}", analyticsHandler.GetTextAnalysis).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
