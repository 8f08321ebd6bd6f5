package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/actuallystonmai/course-recommendation-service/internal/handler"
	"github.com/actuallystonmai/course-recommendation-service/internal/metrics"
)

const analyzeIntroQuizRoute = "/users/{userID}/courses/{courseID}/analyze-intro-quiz/{quizSummaryID}"

type Options struct {
	AllowedOrigins []string
}

func Setup(h *handler.Handler, m *metrics.Metrics, log zerolog.Logger, opts Options) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log, m))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	// Routes
	r.Get("/users/{userID}/recommended-courses", h.GetRecommendedCourses)
	r.Post(analyzeIntroQuizRoute, h.AnalyzeIntroQuiz)
	r.Options(analyzeIntroQuizRoute, h.AcknowledgeOptions)
	r.Get("/health", healthCheck)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
