package repository

import (
	"context"
	"fmt"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
)

const (
	ResourceUser              = "user"
	ResourceEnrolledCourses   = "enrolled courses"
	ResourceInProgressCourses = "in-progress courses"
	ResourceCompletedCourses  = "completed courses"
)

// Get single user
func (r *Repository) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user := &domain.User{}
	if err := r.getJSON(ctx, ResourceUser, fmt.Sprintf("/users/%d", userID), user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *Repository) GetEnrolledCourses(ctx context.Context, userID int64) ([]domain.Course, error) {
	return r.userCourses(ctx, ResourceEnrolledCourses, fmt.Sprintf("/users/%d/enrolled-courses", userID))
}

func (r *Repository) GetInProgressCourses(ctx context.Context, userID int64) ([]domain.Course, error) {
	return r.userCourses(ctx, ResourceInProgressCourses, fmt.Sprintf("/users/%d/in-progress-courses", userID))
}

func (r *Repository) GetCompletedCourses(ctx context.Context, userID int64) ([]domain.Course, error) {
	return r.userCourses(ctx, ResourceCompletedCourses, fmt.Sprintf("/users/%d/completed-courses", userID))
}

func (r *Repository) userCourses(ctx context.Context, resource, path string) ([]domain.Course, error) {
	var courses []domain.Course
	if err := r.getJSON(ctx, resource, path, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}
