package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"panorama/internal/cache"
	"panorama/internal/config"
	"panorama/internal/repository"
	"panorama/internal/service"
	"panorama/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg := config.Load()

	aiConfig := config.DefaultAIConfig()
	log.Printf("AI Config:")
	log.Printf("  Summary model: %s", aiConfig.Model)
	if aiConfig.IsEnabled() {
		log.Println("  API Key:       configured")
	} else {
		log.Println("  API Key:       NOT SET (using fallback summaries)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := cfg.RedisAddr
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	panoramaRepo := repository.NewPanoramaRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	// Initialize caches
	summaryCache := cache.NewSummaryCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService()
	panoramaSvc := service.NewPanoramaService(panoramaRepo, responseRepo, summaryCache)
	responseSvc := service.NewResponseService(panoramaRepo, responseRepo)
	dashboardSvc := service.NewDashboardService(panoramaRepo, responseRepo)
	summarySvc := service.NewSummaryService(panoramaRepo, responseRepo, summaryCache)

	// Create router with container
	container := &rest.Container{
		AuthService:      authSvc,
		PanoramaService:  panoramaSvc,
		ResponseService:  responseSvc,
		DashboardService: dashboardSvc,
		SummaryService:   summarySvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/panoramas")
		log.Println("  POST /v1/panoramas/{id}/responses")
		log.Println("  GET  /v1/panoramas/{id}/analytics/dashboard")
		log.Println("  POST /v1/panoramas/{id}/analytics/summary")
		log.Println("  GET  /v1/panoramas/{id}/analytics/text/{questionId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
