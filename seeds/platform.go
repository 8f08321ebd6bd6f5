package seeds

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

type LessonCompletion struct {
	UserID, CourseID, LessonID int64
}

type CourseProgress struct {
	UserID, CourseID int64
}

// Platform serves a Catalog over the course platform's REST routes and
// records the writes it receives.
type Platform struct {
	router chi.Router

	mu         sync.Mutex
	catalog    *Catalog
	failures   map[string]int
	calls      map[string]int
	completed  []LessonCompletion
	inProgress []CourseProgress
}

func NewPlatform(catalog *Catalog) *Platform {
	p := &Platform{
		catalog:  catalog,
		failures: make(map[string]int),
		calls:    make(map[string]int),
	}

	r := chi.NewRouter()
	p.route(r, http.MethodGet, "/users/{userID}", p.getUser)
	p.route(r, http.MethodGet, "/users/{userID}/enrolled-courses", p.userCourses(func(c *Catalog) map[int64][]int64 { return c.Enrolled }))
	p.route(r, http.MethodGet, "/users/{userID}/in-progress-courses", p.userCourses(func(c *Catalog) map[int64][]int64 { return c.InProgress }))
	p.route(r, http.MethodGet, "/users/{userID}/completed-courses", p.userCourses(func(c *Catalog) map[int64][]int64 { return c.Completed }))
	p.route(r, http.MethodGet, "/courses", p.getCourses)
	p.route(r, http.MethodGet, "/courses/{courseID}/lessons", p.getLessons)
	p.route(r, http.MethodGet, "/users/{userID}/courses/{courseID}/intro-quiz-summary/{summaryID}", p.getIntroQuizSummary)
	p.route(r, http.MethodPost, "/users/{userID}/courses/{courseID}/lessons/{lessonID}/complete", p.completeLesson)
	p.route(r, http.MethodPost, "/users/{userID}/courses/{courseID}/in-progress", p.markInProgress)
	p.router = r

	return p
}

func (p *Platform) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p.router.ServeHTTP(w, r)
}

// Fail makes every request to the route pattern (as registered, e.g.
// "/courses/{courseID}/lessons") answer with status.
func (p *Platform) Fail(pattern string, status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures[pattern] = status
}

// Calls reports how many requests the route pattern has received.
func (p *Platform) Calls(pattern string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[pattern]
}

func (p *Platform) CompletedLessons() []LessonCompletion {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]LessonCompletion(nil), p.completed...)
}

func (p *Platform) InProgressMarks() []CourseProgress {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]CourseProgress(nil), p.inProgress...)
}

func (p *Platform) route(r chi.Router, method, pattern string, h http.HandlerFunc) {
	r.Method(method, pattern, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		p.mu.Lock()
		p.calls[pattern]++
		status, fail := p.failures[pattern]
		p.mu.Unlock()

		if fail {
			writeJSON(w, status, map[string]string{"message": "injected failure"})
			return
		}
		h(w, req)
	}))
}

func (p *Platform) getUser(w http.ResponseWriter, r *http.Request) {
	user, ok := p.user(r)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (p *Platform) userCourses(pick func(*Catalog) map[int64][]int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := p.user(r)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
			return
		}

		p.mu.Lock()
		ids := pick(p.catalog)[user.ID]
		courses := make([]CourseRecord, 0, len(ids))
		for _, id := range ids {
			for _, c := range p.catalog.Courses {
				if c.ID == id {
					courses = append(courses, c)
				}
			}
		}
		p.mu.Unlock()

		writeJSON(w, http.StatusOK, courses)
	}
}

func (p *Platform) getCourses(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	courses := append([]CourseRecord{}, p.catalog.Courses...)
	p.mu.Unlock()
	writeJSON(w, http.StatusOK, courses)
}

func (p *Platform) getLessons(w http.ResponseWriter, r *http.Request) {
	courseID, _ := strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)

	p.mu.Lock()
	lessons := append([]LessonRecord{}, p.catalog.Lessons[courseID]...)
	p.mu.Unlock()
	writeJSON(w, http.StatusOK, lessons)
}

func (p *Platform) getIntroQuizSummary(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	courseID, _ := strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
	summaryID, _ := strconv.ParseInt(chi.URLParam(r, "summaryID"), 10, 64)

	p.mu.Lock()
	summary, ok := p.catalog.QuizSummaries[summaryID]
	p.mu.Unlock()

	if !ok || summary.UserID != userID || summary.CourseID != courseID {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Quiz summary not found"})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (p *Platform) completeLesson(w http.ResponseWriter, r *http.Request) {
	c := LessonCompletion{}
	c.UserID, _ = strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	c.CourseID, _ = strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)
	c.LessonID, _ = strconv.ParseInt(chi.URLParam(r, "lessonID"), 10, 64)

	p.mu.Lock()
	p.completed = append(p.completed, c)
	p.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (p *Platform) markInProgress(w http.ResponseWriter, r *http.Request) {
	c := CourseProgress{}
	c.UserID, _ = strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	c.CourseID, _ = strconv.ParseInt(chi.URLParam(r, "courseID"), 10, 64)

	p.mu.Lock()
	p.inProgress = append(p.inProgress, c)
	p.mu.Unlock()

	w.WriteHeader(http.StatusOK)
}

func (p *Platform) user(r *http.Request) (UserRecord, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		return UserRecord{}, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	u, ok := p.catalog.Users[id]
	return u, ok
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
