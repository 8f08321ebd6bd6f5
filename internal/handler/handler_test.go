package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/actuallystonmai/course-recommendation-service/internal/domain"
	"github.com/actuallystonmai/course-recommendation-service/internal/model"
)

type stubService struct {
	recs     []domain.Course
	recErr   error
	analysis *domain.QuizAnalysis
	quizErr  error

	gotUserID, gotCourseID, gotQuizID int64
}

func (s *stubService) GetRecommendations(ctx context.Context, userID int64) ([]domain.Course, error) {
	s.gotUserID = userID
	return s.recs, s.recErr
}

func (s *stubService) AnalyzeIntroQuiz(ctx context.Context, userID, courseID, quizSummaryID int64) (*domain.QuizAnalysis, error) {
	s.gotUserID, s.gotCourseID, s.gotQuizID = userID, courseID, quizSummaryID
	return s.analysis, s.quizErr
}

func newTestRouter(svc Service) http.Handler {
	h := NewHandler(svc, zerolog.Nop())
	r := chi.NewRouter()
	r.Get("/users/{userID}/recommended-courses", h.GetRecommendedCourses)
	r.Post("/users/{userID}/courses/{courseID}/analyze-intro-quiz/{quizSummaryID}", h.AnalyzeIntroQuiz)
	r.Options("/users/{userID}/courses/{courseID}/analyze-intro-quiz/{quizSummaryID}", h.AcknowledgeOptions)
	return r
}

func serve(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeCourses(t *testing.T, rec *httptest.ResponseRecorder) []domain.Course {
	t.Helper()
	var courses []domain.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &courses); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
	return courses
}

func TestGetRecommendedCoursesOK(t *testing.T) {
	var c1, c2 domain.Course
	if err := json.Unmarshal([]byte(`{"id":3,"name":"Advanced Python","level":"hard"}`), &c1); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"id":5,"name":"Machine Learning Foundations"}`), &c2); err != nil {
		t.Fatal(err)
	}
	svc := &stubService{recs: []domain.Course{c1, c2}}

	rec := serve(t, newTestRouter(svc), http.MethodGet, "/users/42/recommended-courses")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}
	if svc.gotUserID != 42 {
		t.Errorf("expected user 42 to reach the service, got %d", svc.gotUserID)
	}

	var raw []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(raw) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(raw))
	}
	if raw[0]["level"] != "hard" {
		t.Errorf("expected upstream fields to pass through, got %v", raw[0])
	}
}

func TestGetRecommendedCoursesEmpty(t *testing.T) {
	svc := &stubService{recs: []domain.Course{}}

	rec := serve(t, newTestRouter(svc), http.MethodGet, "/users/2/recommended-courses")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := decodeCourses(t, rec); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

func TestGetRecommendedCoursesErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "user not found",
			err:        fmt.Errorf("%w: %w", domain.ErrUserNotFound, &domain.UpstreamError{Resource: "user", StatusCode: 404}),
			wantStatus: http.StatusNotFound,
			wantMsg:    "User not found",
		},
		{
			name:       "no courses",
			err:        domain.ErrNoCourses,
			wantStatus: http.StatusNotFound,
			wantMsg:    "No courses available",
		},
		{
			name:       "upstream failure",
			err:        fmt.Errorf("get completed: %w", &domain.UpstreamError{Resource: "completed courses", StatusCode: 503}),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to get completed courses",
		},
		{
			name:       "vectorization failure",
			err:        fmt.Errorf("rank courses: %w", &model.VectorizationError{Op: "fit", Err: model.ErrEmptyVocabulary}),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Failed to calculate recommendations",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{recErr: tt.err}
			rec := serve(t, newTestRouter(svc), http.MethodGet, "/users/1/recommended-courses")

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Error != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}

func TestGetRecommendedCoursesInvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-4", "1.5"} {
		t.Run(id, func(t *testing.T) {
			svc := &stubService{}
			rec := serve(t, newTestRouter(svc), http.MethodGet, "/users/"+id+"/recommended-courses")
			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}
			if svc.gotUserID != 0 {
				t.Error("service should not be called for an invalid id")
			}
		})
	}
}

func TestAnalyzeIntroQuizOK(t *testing.T) {
	svc := &stubService{analysis: &domain.QuizAnalysis{
		Status:         domain.StatusSuccess,
		QuizSummaryID:  100,
		OverallScore:   80,
		KnowledgeAreas: map[string]float64{"Lists and Loops": 0.5831},
		LessonsCompleted: []domain.CompletedLesson{
			{ID: 12, Name: "Lists and Loops", KnowledgeScore: 0.5831},
		},
		Recommendation: "Great job!",
	}}

	rec := serve(t, newTestRouter(svc), http.MethodPost, "/users/1/courses/7/analyze-intro-quiz/100")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.gotUserID != 1 || svc.gotCourseID != 7 || svc.gotQuizID != 100 {
		t.Errorf("unexpected ids passed: %d %d %d", svc.gotUserID, svc.gotCourseID, svc.gotQuizID)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, key := range []string{"status", "quiz_summary_id", "overall_score", "knowledge_areas", "lessons_completed", "recommendation"} {
		if _, ok := body[key]; !ok {
			t.Errorf("missing key %q in %v", key, body)
		}
	}
	if body["status"] != "success" {
		t.Errorf("expected status success, got %v", body["status"])
	}
}

func TestAnalyzeIntroQuizErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"upstream", &domain.UpstreamError{Resource: "quiz summary", StatusCode: 500}, "Failed to get quiz summary"},
		{"vectorization", &model.VectorizationError{Op: "fit", Err: model.ErrEmptyVocabulary}, "Failed to analyze quiz"},
		{"unexpected", errors.New("boom"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{quizErr: tt.err}
			rec := serve(t, newTestRouter(svc), http.MethodPost, "/users/1/courses/1/analyze-intro-quiz/100")

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500, got %d", rec.Code)
			}
			var body AnalysisErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body.Status != "error" {
				t.Errorf("expected status error, got %q", body.Status)
			}
			if body.Error != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, body.Error)
			}
		})
	}
}

func TestAnalyzeIntroQuizInvalidIDs(t *testing.T) {
	paths := []string{
		"/users/x/courses/1/analyze-intro-quiz/1",
		"/users/1/courses/0/analyze-intro-quiz/1",
		"/users/1/courses/1/analyze-intro-quiz/nope",
	}
	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			rec := serve(t, newTestRouter(&stubService{}), http.MethodPost, p)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}
		})
	}
}

func TestAcknowledgeOptions(t *testing.T) {
	svc := &stubService{}
	rec := serve(t, newTestRouter(svc), http.MethodOptions, "/users/1/courses/1/analyze-intro-quiz/1")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
	if svc.gotQuizID != 0 {
		t.Error("OPTIONS must not run the analysis")
	}
}
