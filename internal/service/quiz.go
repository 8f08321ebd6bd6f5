package service

import (
	"context"
	"fmt"
	"math"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
)

const (
	recommendationSkipAhead = "Great job! Based on your quiz results, %d introductory lesson(s) have been marked as complete. Continue with the remaining lessons of the course."
	recommendationFromStart = "We recommend starting from the beginning of the course to build a strong foundation."
)

// AnalyzeIntroQuiz scores an intro quiz against the course lessons, marks
// the easy lessons the user already knows as complete, and flags the course
// as in progress. Platform writes are best-effort: a failed write is logged
// and the analysis is still returned.
func (s *Service) AnalyzeIntroQuiz(ctx context.Context, userID, courseID, quizSummaryID int64) (*domain.QuizAnalysis, error) {
	analysis, err := s.analyzeIntroQuiz(ctx, userID, courseID, quizSummaryID)
	if err != nil {
		s.metrics.QuizAnalysesTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	return analysis, nil
}

func (s *Service) analyzeIntroQuiz(ctx context.Context, userID, courseID, quizSummaryID int64) (*domain.QuizAnalysis, error) {
	summary, err := s.repo.GetIntroQuizSummary(ctx, userID, courseID, quizSummaryID)
	if err != nil {
		return nil, fmt.Errorf("fetch quiz summary: %w", err)
	}

	lessons, err := s.repo.GetCourseLessons(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("fetch lessons: %w", err)
	}

	overall := overallScore(summary.CorrectCount(), len(summary.QuestionSummaries))

	scores, err := s.modelClient.KnowledgeScores(summary.QuestionSummaries, lessons)
	if err != nil {
		s.metrics.VectorizationFailures.WithLabelValues("quiz").Inc()
		s.log.Error().Err(err).
			Int64("user_id", userID).
			Int64("quiz_summary_id", quizSummaryID).
			Msg("knowledge scoring failed")
		return nil, fmt.Errorf("score knowledge: %w", err)
	}

	// duplicate lesson names collapse to the last lesson's score
	areas := make(map[string]float64, len(lessons))
	for i, lesson := range lessons {
		areas[lesson.Name] = round(scores[i], 4)
	}

	completed := []domain.CompletedLesson{}
	// compared unrounded so 69.999 never passes a 70 threshold
	if overall >= s.opts.PassingScore {
		for i, lesson := range lessons {
			if lesson.DifficultyLevel != domain.DifficultyEasy || scores[i] < s.opts.CompletionThreshold {
				continue
			}
			if err := s.repo.CompleteLesson(ctx, userID, courseID, lesson.ID); err != nil {
				s.log.Warn().Err(err).
					Int64("user_id", userID).
					Int64("course_id", courseID).
					Int64("lesson_id", lesson.ID).
					Msg("mark lesson complete failed")
			}
			completed = append(completed, domain.CompletedLesson{
				ID:             lesson.ID,
				Name:           lesson.Name,
				KnowledgeScore: round(scores[i], 4),
			})
		}
	}
	s.metrics.LessonsCompletedTotal.Add(float64(len(completed)))

	if err := s.repo.MarkCourseInProgress(ctx, userID, courseID); err != nil {
		s.log.Warn().Err(err).
			Int64("user_id", userID).
			Int64("course_id", courseID).
			Msg("mark course in progress failed")
	}

	result := "below_threshold"
	recommendation := recommendationFromStart
	if len(completed) > 0 {
		result = "passed"
		recommendation = fmt.Sprintf(recommendationSkipAhead, len(completed))
	}
	s.metrics.QuizAnalysesTotal.WithLabelValues(result).Inc()

	s.log.Info().
		Int64("user_id", userID).
		Int64("course_id", courseID).
		Int64("quiz_summary_id", quizSummaryID).
		Float64("overall_score", round(overall, 2)).
		Int("lessons_completed", len(completed)).
		Msg("intro quiz analyzed")

	return &domain.QuizAnalysis{
		Status:           domain.StatusSuccess,
		QuizSummaryID:    quizSummaryID,
		OverallScore:     round(overall, 2),
		KnowledgeAreas:   areas,
		LessonsCompleted: completed,
		Recommendation:   recommendation,
	}, nil
}

// overallScore is the unrounded percentage of correct answers, 0 for an
// empty quiz.
func overallScore(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) * 100 / float64(total)
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
