package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
	"github.com/actuallystonmai/course-recommendation-service/internal/metrics"
	"github.com/actuallystonmai/course-recommendation-service/internal/model"
)

// CoursePlatform is the subset of the course platform API the service
// depends on. *repository.Repository implements it.
type CoursePlatform interface {
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
	GetEnrolledCourses(ctx context.Context, userID int64) ([]domain.Course, error)
	GetInProgressCourses(ctx context.Context, userID int64) ([]domain.Course, error)
	GetCompletedCourses(ctx context.Context, userID int64) ([]domain.Course, error)
	GetAllCourses(ctx context.Context) ([]domain.Course, error)
	GetCourseLessons(ctx context.Context, courseID int64) ([]domain.Lesson, error)
	GetIntroQuizSummary(ctx context.Context, userID, courseID, quizSummaryID int64) (*domain.QuizSummary, error)
	CompleteLesson(ctx context.Context, userID, courseID, lessonID int64) error
	MarkCourseInProgress(ctx context.Context, userID, courseID int64) error
}

type Options struct {
	// Minimum overall quiz percentage before any lesson is auto-completed.
	PassingScore float64
	// Minimum knowledge score for an easy lesson to be auto-completed.
	CompletionThreshold float64
}

type Service struct {
	repo        CoursePlatform
	modelClient *model.Client
	metrics     *metrics.Metrics
	log         zerolog.Logger
	opts        Options
}

func NewService(repo CoursePlatform, modelClient *model.Client, m *metrics.Metrics, log zerolog.Logger, opts Options) *Service {
	return &Service{
		repo:        repo,
		modelClient: modelClient,
		metrics:     m,
		log:         log,
		opts:        opts,
	}
}

func asUpstreamError(err error) (*domain.UpstreamError, bool) {
	var ue *domain.UpstreamError
	ok := errors.As(err, &ue)
	return ue, ok
}
