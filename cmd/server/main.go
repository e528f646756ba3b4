package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizhub/internal/api"
	"quizhub/internal/app/service"
	"quizhub/internal/common/security"
	"quizhub/internal/domain/repository"
	"quizhub/internal/platform/ai"
	"quizhub/internal/platform/cache"
	"quizhub/internal/platform/config"
	"quizhub/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize JWT
	security.InitJWT()
	fmt.Println("JWT initialized.")

	// 3. Initialize MongoDB
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Initialize Redis
	cache.Connect()
	defer cache.Close()
	fmt.Println("Redis connected.")

	// 5. Initialize Repositories
	userRepo := repository.NewMongoUserRepository(database.DB)
	setRepo := repository.NewMongoQuestionSetRepository(database.DB)
	questionRepo := repository.NewMongoQuestionRepository(database.DB)
	testRepo := repository.NewMongoTestRepository(database.DB)
	resultRepo := repository.NewMongoTestResultRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo)
	setService := service.NewQuestionSetService(setRepo, questionRepo)
	questionService := service.NewQuestionService(questionRepo, setRepo)
	testService := service.NewTestService(testRepo, setRepo)
	resultService := service.NewTestResultService(resultRepo, testRepo, questionRepo)
	feedbackService := service.NewFeedbackService(
		ai.NewClient(config.AppConfig.OpenAIAPIKey),
		cache.NewRedisCache(cache.RDB),
		config.AppConfig.FeedbackCacheTTL,
	)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, setService, questionService, testService, resultService, feedbackService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // the feedback endpoint waits on the completion API
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
