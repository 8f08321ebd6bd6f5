package model

import "github.com/actuallystonmai/course-recommendation-service/internal/domain"

// RecommendationQueries builds the documents describing what the user already
// cares about: their interests followed by the names of every course they are
// enrolled in, working on, or have finished. A course listed in more than one
// set contributes its name once.
func RecommendationQueries(user *domain.User, taken ...[]domain.Course) []string {
	var docs []string
	if user != nil {
		docs = append(docs, user.Interests...)
	}
	seen := make(map[int64]struct{})
	for _, list := range taken {
		for _, c := range list {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}
			docs = append(docs, c.Name)
		}
	}
	return docs
}

// AvailableCourses keeps catalog order and drops every course whose id is in
// one of the taken lists.
func AvailableCourses(catalog []domain.Course, taken ...[]domain.Course) []domain.Course {
	excluded := domain.CourseIDSet(taken...)
	available := make([]domain.Course, 0, len(catalog))
	for _, c := range catalog {
		if _, skip := excluded[c.ID]; skip {
			continue
		}
		available = append(available, c)
	}
	return available
}

func courseNames(courses []domain.Course) []string {
	names := make([]string, len(courses))
	for i, c := range courses {
		names[i] = c.Name
	}
	return names
}

func questionTexts(questions []domain.QuestionSummary) []string {
	texts := make([]string, len(questions))
	for i, q := range questions {
		texts[i] = q.Question.Name
	}
	return texts
}

func lessonNames(lessons []domain.Lesson) []string {
	names := make([]string, len(lessons))
	for i, l := range lessons {
		names[i] = l.Name
	}
	return names
}
