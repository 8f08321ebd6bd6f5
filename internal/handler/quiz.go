package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
	"github.com/actuallystonmai/course-recommendation-service/internal/model"
)

const analysisStatusError = "error"

// POST /users/{userID}/courses/{courseID}/analyze-intro-quiz/{quizSummaryID}
func (h *Handler) AnalyzeIntroQuiz(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(chi.URLParam(r, "userID"))
	if err != nil {
		writeAnalysisError(w, http.StatusNotFound, "Invalid user_id parameter")
		return
	}
	courseID, err := parseID(chi.URLParam(r, "courseID"))
	if err != nil {
		writeAnalysisError(w, http.StatusNotFound, "Invalid course_id parameter")
		return
	}
	quizSummaryID, err := parseID(chi.URLParam(r, "quizSummaryID"))
	if err != nil {
		writeAnalysisError(w, http.StatusNotFound, "Invalid quiz_summary_id parameter")
		return
	}

	analysis, err := h.service.AnalyzeIntroQuiz(r.Context(), userID, courseID, quizSummaryID)
	if err != nil {
		h.log.Error().Err(err).
			Int64("user_id", userID).
			Int64("course_id", courseID).
			Int64("quiz_summary_id", quizSummaryID).
			Msg("quiz analysis failed")
		writeAnalysisError(w, http.StatusInternalServerError, analysisErrorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// OPTIONS pre-flight for the analyze route.
func (h *Handler) AcknowledgeOptions(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func analysisErrorMessage(err error) string {
	if model.IsVectorizationError(err) {
		return "Failed to analyze quiz"
	}
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return ue.Message()
	}
	return "An unexpected error occurred"
}

func writeAnalysisError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, AnalysisErrorResponse{Status: analysisStatusError, Error: message})
}
