package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
	"github.com/actuallystonmai/course-recommendation-service/internal/model"
)

// GET /users/{userID}/recommended-courses
func (h *Handler) GetRecommendedCourses(w http.ResponseWriter, r *http.Request) {
	// Parse and validate user_id
	userID, err := parseID(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Invalid user_id parameter")
		return
	}

	recs, err := h.service.GetRecommendations(r.Context(), userID)
	if err != nil {
		status, msg := categorizeRecommendationError(err)
		if status >= http.StatusInternalServerError {
			h.log.Error().Err(err).Int64("user_id", userID).Msg("recommendation request failed")
		}
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, recs)
}

func categorizeRecommendationError(err error) (int, string) {
	// User not found
	if errors.Is(err, domain.ErrUserNotFound) {
		return http.StatusNotFound, "User not found"
	}
	if errors.Is(err, domain.ErrNoCourses) {
		return http.StatusNotFound, "No courses available"
	}
	// Ranking failure
	if model.IsVectorizationError(err) {
		return http.StatusInternalServerError, "Failed to calculate recommendations"
	}
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		return http.StatusInternalServerError, ue.Message()
	}
	return http.StatusInternalServerError, "An unexpected error occurred"
}

// parseID accepts positive decimal ids only. Anything else is treated as
// an unmatched route and answered with 404.
func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, strconv.ErrRange
	}
	return id, nil
}
