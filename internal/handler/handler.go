package handler

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
)

// Service is what the handlers need from the service layer.
type Service interface {
	GetRecommendations(ctx context.Context, userID int64) ([]domain.Course, error)
	AnalyzeIntroQuiz(ctx context.Context, userID, courseID, quizSummaryID int64) (*domain.QuizAnalysis, error)
}

type Handler struct {
	service Service
	log     zerolog.Logger
}

func NewHandler(svc Service, log zerolog.Logger) *Handler {
	return &Handler{service: svc, log: log}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
