package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
)

const (
	ResourceCourses          = "all courses"
	ResourceLessons          = "course lessons"
	ResourceQuizSummary      = "quiz summary"
	ResourceLessonComplete   = "lesson completion"
	ResourceCourseInProgress = "course progress"
)

func (r *Repository) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	if err := r.getJSON(ctx, ResourceCourses, "/courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *Repository) GetCourseLessons(ctx context.Context, courseID int64) ([]domain.Lesson, error) {
	var lessons []domain.Lesson
	if err := r.getJSON(ctx, ResourceLessons, fmt.Sprintf("/courses/%d/lessons", courseID), &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *Repository) GetIntroQuizSummary(ctx context.Context, userID, courseID, quizSummaryID int64) (*domain.QuizSummary, error) {
	summary := &domain.QuizSummary{}
	path := fmt.Sprintf("/users/%d/courses/%d/intro-quiz-summary/%d", userID, courseID, quizSummaryID)
	if err := r.getJSON(ctx, ResourceQuizSummary, path, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (r *Repository) CompleteLesson(ctx context.Context, userID, courseID, lessonID int64) error {
	path := fmt.Sprintf("/users/%d/courses/%d/lessons/%d/complete", userID, courseID, lessonID)
	return r.post(ctx, ResourceLessonComplete, path)
}

func (r *Repository) MarkCourseInProgress(ctx context.Context, userID, courseID int64) error {
	path := fmt.Sprintf("/users/%d/courses/%d/in-progress", userID, courseID)
	return r.post(ctx, ResourceCourseInProgress, path)
}
