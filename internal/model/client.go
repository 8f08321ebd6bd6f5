package model

import (
	"sort"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
)

type Config struct {
	// Number of courses returned by Recommend.
	Limit int
	// A question adds to a lesson's score only above this similarity.
	ContributionThreshold float64
	// A question counts towards a lesson's normaliser above this similarity.
	RelevanceThreshold float64
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

type RecommendInput struct {
	User       *domain.User
	Enrolled   []domain.Course
	InProgress []domain.Course
	Completed  []domain.Course
	Catalog    []domain.Course
}

type scoredCourse struct {
	course domain.Course
	score  float64
}

// Recommend ranks the courses the user has not taken by their average
// similarity to the user's interests and existing courses and returns the
// best cfg.Limit of them. Equal scores keep catalog order.
func (c *Client) Recommend(input RecommendInput) ([]domain.Course, error) {
	queries := RecommendationQueries(input.User, input.Enrolled, input.InProgress, input.Completed)
	if len(queries) == 0 {
		return []domain.Course{}, nil
	}

	candidates := AvailableCourses(input.Catalog, input.Enrolled, input.InProgress, input.Completed)
	if len(candidates) == 0 {
		return []domain.Course{}, nil
	}

	sim, err := Similarity(queries, courseNames(candidates))
	if err != nil {
		return nil, err
	}

	scores := ColumnMeans(sim)
	scored := make([]scoredCourse, len(candidates))
	for i, course := range candidates {
		scored[i] = scoredCourse{course: course, score: scores[i]}
	}

	// Sort by score descending
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	// Take top N
	if len(scored) > c.cfg.Limit {
		scored = scored[:c.cfg.Limit]
	}

	out := make([]domain.Course, len(scored))
	for i, s := range scored {
		out[i] = s.course
	}
	return out, nil
}

// KnowledgeScores estimates how well the quiz answers cover each lesson.
// The returned slice is index-aligned with lessons. A lesson accrues the
// similarity of every correctly answered question above the contribution
// threshold, divided by the number of questions above the relevance
// threshold; with no relevant questions its score stays 0.
func (c *Client) KnowledgeScores(questions []domain.QuestionSummary, lessons []domain.Lesson) ([]float64, error) {
	scores := make([]float64, len(lessons))
	if len(questions) == 0 || len(lessons) == 0 {
		return scores, nil
	}

	sim, err := Similarity(questionTexts(questions), lessonNames(lessons))
	if err != nil {
		return nil, err
	}

	for j := range lessons {
		var total float64
		relevant := 0
		for i, q := range questions {
			s := sim.At(i, j)
			if s > c.cfg.ContributionThreshold {
				total += correctness(q) * s
			}
			if s > c.cfg.RelevanceThreshold {
				relevant++
			}
		}
		if relevant > 0 {
			scores[j] = total / float64(relevant)
		}
	}
	return scores, nil
}

func correctness(q domain.QuestionSummary) float64 {
	if q.Correct {
		return 1
	}
	return 0
}
