package model

import (
	"errors"
	"math"
	"testing"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
)

func testClient() *Client {
	return NewClient(Config{Limit: 3, ContributionThreshold: 0.3, RelevanceThreshold: 0.1})
}

func ids(courses []domain.Course) []int64 {
	out := make([]int64, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func TestRecommendPythonExample(t *testing.T) {
	client := testClient()

	results, err := client.Recommend(RecommendInput{
		User: &domain.User{ID: 1, Interests: []string{"Python"}},
		Catalog: []domain.Course{
			{ID: 1, Name: "Python Basics"},
			{ID: 2, Name: "Cooking 101"},
			{ID: 3, Name: "Advanced Python"},
		},
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	got := ids(results)
	want := []int64{1, 3, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected course %d, got %d", i, want[i], got[i])
		}
	}
}

func TestRecommendExcludesTakenCourses(t *testing.T) {
	client := testClient()

	results, err := client.Recommend(RecommendInput{
		User:       &domain.User{ID: 1, Interests: []string{"data science"}},
		Enrolled:   []domain.Course{{ID: 1, Name: "Data Science Foundations"}},
		InProgress: []domain.Course{{ID: 2, Name: "Data Visualization"}},
		Completed:  []domain.Course{{ID: 3, Name: "Statistics for Data Science"}},
		Catalog: []domain.Course{
			{ID: 1, Name: "Data Science Foundations"},
			{ID: 2, Name: "Data Visualization"},
			{ID: 3, Name: "Statistics for Data Science"},
			{ID: 4, Name: "Machine Learning with Data"},
			{ID: 5, Name: "Watercolor Painting"},
		},
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	for _, id := range ids(results) {
		if id == 1 || id == 2 || id == 3 {
			t.Errorf("course %d is already taken and must not be recommended", id)
		}
	}
	if len(results) != 2 || results[0].ID != 4 {
		t.Errorf("expected [4 5], got %v", ids(results))
	}
}

func TestRecommendStableTies(t *testing.T) {
	client := testClient()

	// nothing matches, every candidate scores 0
	results, err := client.Recommend(RecommendInput{
		User: &domain.User{Interests: []string{"astronomy"}},
		Catalog: []domain.Course{
			{ID: 9, Name: "Knitting"},
			{ID: 7, Name: "Pottery"},
			{ID: 8, Name: "Gardening"},
			{ID: 6, Name: "Woodwork"},
		},
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	got := ids(results)
	want := []int64{9, 7, 8}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected catalog order %v, got %v", want, got)
			break
		}
	}
}

func TestRecommendEmptyQueryCorpus(t *testing.T) {
	client := testClient()

	// catalog is only stop words: if the ranker ran it would fail
	results, err := client.Recommend(RecommendInput{
		User:    &domain.User{ID: 1},
		Catalog: []domain.Course{{ID: 1, Name: "the"}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Errorf("expected empty non-nil result, got %v", results)
	}
}

func TestRecommendNoCandidates(t *testing.T) {
	client := testClient()

	results, err := client.Recommend(RecommendInput{
		User:      &domain.User{Interests: []string{"Go"}},
		Completed: []domain.Course{{ID: 1, Name: "Go Basics"}},
		Catalog:   []domain.Course{{ID: 1, Name: "Go Basics"}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected empty result, got %v", ids(results))
	}
}

func TestRecommendLimit(t *testing.T) {
	client := NewClient(Config{Limit: 2})

	results, err := client.Recommend(RecommendInput{
		User: &domain.User{Interests: []string{"music"}},
		Catalog: []domain.Course{
			{ID: 1, Name: "Music Theory"}, {ID: 2, Name: "Music History"},
			{ID: 3, Name: "Music Production"}, {ID: 4, Name: "Guitar"},
		},
	})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestRecommendVectorizationFailure(t *testing.T) {
	client := testClient()

	_, err := client.Recommend(RecommendInput{
		User:    &domain.User{Interests: []string{"the"}},
		Catalog: []domain.Course{{ID: 1, Name: "a"}},
	})
	if !IsVectorizationError(err) {
		t.Fatalf("expected VectorizationError, got %v", err)
	}
	if !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("expected ErrEmptyVocabulary cause, got %v", err)
	}
}

func TestKnowledgeScores(t *testing.T) {
	client := testClient()

	questions := []domain.QuestionSummary{
		{Question: domain.Question{ID: 1, Name: "Python lists basics"}, Correct: true},
		{Question: domain.Question{ID: 2, Name: "Python dictionaries basics"}, Correct: false},
	}
	lessons := []domain.Lesson{
		{ID: 10, Name: "Python lists"},
		{ID: 11, Name: "Python dictionaries"},
		{ID: 12, Name: "Baking bread"},
	}

	scores, err := client.KnowledgeScores(questions, lessons)
	if err != nil {
		t.Fatalf("KnowledgeScores failed: %v", err)
	}
	if len(scores) != len(lessons) {
		t.Fatalf("expected %d scores, got %d", len(lessons), len(scores))
	}

	// one correct question at ~0.773 contributes, both questions are relevant
	if math.Abs(scores[0]-0.3867) > 1e-3 {
		t.Errorf("expected lists ~0.387, got %f", scores[0])
	}
	// only question above 0.3 was answered wrong
	if scores[1] != 0 {
		t.Errorf("expected dictionaries 0, got %f", scores[1])
	}
	// no relevant questions: zero, not NaN
	if scores[2] != 0 || math.IsNaN(scores[2]) {
		t.Errorf("expected baking 0, got %f", scores[2])
	}
}

func TestKnowledgeScoresEmptyInputs(t *testing.T) {
	client := testClient()
	lessons := []domain.Lesson{{ID: 1, Name: "Intro"}, {ID: 2, Name: "Setup"}}

	scores, err := client.KnowledgeScores(nil, lessons)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(scores) != 2 || scores[0] != 0 || scores[1] != 0 {
		t.Errorf("expected zero scores, got %v", scores)
	}

	scores, err = client.KnowledgeScores([]domain.QuestionSummary{{Correct: true}}, nil)
	if err != nil || len(scores) != 0 {
		t.Errorf("expected empty scores, got %v (%v)", scores, err)
	}
}
