package service

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
	"github.com/actuallystonmai/course-recommendation-service/internal/model"
)

// GetRecommendations returns up to the configured number of catalog courses
// the user has not enrolled in, started or completed, ranked by text
// similarity to the user's interests and existing courses.
func (s *Service) GetRecommendations(ctx context.Context, userID int64) ([]domain.Course, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if isStatusError(err) {
			return nil, fmt.Errorf("%w: %w", domain.ErrUserNotFound, err)
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	enrolled, err := s.repo.GetEnrolledCourses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch enrolled courses: %w", err)
	}

	inProgress, err := s.repo.GetInProgressCourses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch in-progress courses: %w", err)
	}

	completed, err := s.repo.GetCompletedCourses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch completed courses: %w", err)
	}

	catalog, err := s.repo.GetAllCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	if len(catalog) == 0 {
		return nil, domain.ErrNoCourses
	}

	recs, err := s.modelClient.Recommend(model.RecommendInput{
		User:       user,
		Enrolled:   enrolled,
		InProgress: inProgress,
		Completed:  completed,
		Catalog:    catalog,
	})
	if err != nil {
		s.metrics.VectorizationFailures.WithLabelValues("recommendation").Inc()
		s.log.Error().Err(err).Int64("user_id", userID).Msg("recommendation calculation failed")
		return nil, fmt.Errorf("rank courses: %w", err)
	}

	s.metrics.RecommendationsServed.Observe(float64(len(recs)))
	s.log.Debug().
		Int64("user_id", userID).
		Int("catalog_size", len(catalog)).
		Int("returned", len(recs)).
		Msg("recommendations generated")

	return recs, nil
}

// isStatusError reports whether the platform answered with a non-success
// status, as opposed to the request failing outright.
func isStatusError(err error) bool {
	ue, ok := asUpstreamError(err)
	return ok && ue.StatusCode != 0
}
