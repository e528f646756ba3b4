package api

import (
	"net/http"
	"time"

	"quizhub/internal/api/handler"
	"quizhub/internal/api/middleware"
	"quizhub/internal/app/service"
	"quizhub/internal/platform/config"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(
	authService *service.AuthService,
	setService *service.QuestionSetService,
	questionService *service.QuestionService,
	testService *service.TestService,
	resultService *service.TestResultService,
	feedbackService *service.FeedbackService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// The SPA runs on a different origin and the cookie carrier needs
	// credentialed requests.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AppConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Resolves the session from either carrier and stores the identity in the
	// request context; anonymous requests pass through untouched.
	r.Use(middleware.ResolveIdentity)

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		authHandler := handler.NewAuthHandler(authService)
		v1.Route("/auth", authHandler.RegisterRoutes)

		setHandler := handler.NewQuestionSetHandler(setService)
		v1.Route("/question-sets", setHandler.RegisterRoutes)

		questionHandler := handler.NewQuestionHandler(questionService)
		v1.Route("/questions", questionHandler.RegisterRoutes)

		testHandler := handler.NewTestHandler(testService)
		v1.Route("/tests", testHandler.RegisterRoutes)

		resultHandler := handler.NewTestResultHandler(resultService)
		v1.Route("/test-results", resultHandler.RegisterRoutes)

		feedbackHandler := handler.NewFeedbackHandler(feedbackService)
		v1.Route("/ai-suggestion", feedbackHandler.RegisterRoutes)
	})

	return r
}
