// Package seeds provides a deterministic course-platform catalog and an
// in-memory HTTP server that speaks the platform's REST contract. It backs
// local development (cmd/platformstub) and the service's tests.
package seeds

import "strconv"

type CourseRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type UserRecord struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	MailID    string   `json:"mailId"`
	Interests []string `json:"interests"`
	Role      string   `json:"role"`
}

type LessonRecord struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	DifficultyLevel string `json:"difficultyLevel"`
}

type QuestionRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type QuestionSummaryRecord struct {
	Question            QuestionRecord `json:"question"`
	Correct             bool           `json:"correct"`
	SelectedOptionIndex int            `json:"selectedOptionIndex"`
}

type QuizSummaryRecord struct {
	ID                int64                   `json:"id"`
	UserID            int64                   `json:"-"`
	CourseID          int64                   `json:"-"`
	Score             int                     `json:"score"`
	QuestionSummaries []QuestionSummaryRecord `json:"questionSummaries"`
}

// Catalog is the platform state served by Platform.
type Catalog struct {
	Users         map[int64]UserRecord
	Courses       []CourseRecord
	Lessons       map[int64][]LessonRecord
	Enrolled      map[int64][]int64
	InProgress    map[int64][]int64
	Completed     map[int64][]int64
	QuizSummaries map[int64]QuizSummaryRecord
}

// Well-known ids in the default catalog.
const (
	UserAda   int64 = 1 // python learner with enrolled and completed courses
	UserLinus int64 = 2 // no interests and no courses
	UserGrace int64 = 3 // web developer, nothing enrolled

	CoursePythonBasics int64 = 1

	QuizPassed       int64 = 100 // 8 of 10 correct
	QuizEmpty        int64 = 101 // no questions
	QuizBelowPassing int64 = 102 // 3 of 10 correct
)

// Default returns a fresh copy of the seeded catalog.
func Default() *Catalog {
	c := &Catalog{
		Users: map[int64]UserRecord{
			UserAda:   {ID: UserAda, Name: "Ada", MailID: "ada@example.com", Interests: []string{"Python", "data science"}, Role: "STUDENT"},
			UserLinus: {ID: UserLinus, Name: "Linus", MailID: "linus@example.com", Interests: []string{}, Role: "STUDENT"},
			UserGrace: {ID: UserGrace, Name: "Grace", MailID: "grace@example.com", Interests: []string{"web development", "JavaScript"}, Role: "STUDENT"},
		},
		Courses: []CourseRecord{
			course(1, "Python Basics"),
			course(2, "Data Science with Python"),
			course(3, "Advanced Python"),
			course(4, "Cooking 101"),
			course(5, "Machine Learning Foundations"),
			course(6, "JavaScript for Web Development"),
			course(7, "Watercolor Painting"),
		},
		Lessons: map[int64][]LessonRecord{
			CoursePythonBasics: {
				{ID: 11, Name: "Variables and Data Types", DifficultyLevel: "EASY"},
				{ID: 12, Name: "Lists and Loops", DifficultyLevel: "EASY"},
				{ID: 13, Name: "Writing Functions", DifficultyLevel: "MEDIUM"},
				{ID: 14, Name: "Classes and Inheritance", DifficultyLevel: "HARD"},
				{ID: 15, Name: "File Handling", DifficultyLevel: "EASY"},
			},
		},
		Enrolled:   map[int64][]int64{UserAda: {1}},
		InProgress: map[int64][]int64{UserAda: {1}},
		Completed:  map[int64][]int64{UserAda: {2}},
		QuizSummaries: map[int64]QuizSummaryRecord{
			QuizPassed:       introQuiz(QuizPassed, []bool{true, true, true, true, true, true, false, false, true, true}),
			QuizEmpty:        {ID: QuizEmpty, UserID: UserAda, CourseID: CoursePythonBasics, QuestionSummaries: []QuestionSummaryRecord{}},
			QuizBelowPassing: introQuiz(QuizBelowPassing, []bool{true, false, true, false, false, false, false, false, true, false}),
		},
	}
	return c
}

var introQuestions = []string{
	"What are variables?",
	"Which data types are immutable?",
	"How do lists grow?",
	"Which loops iterate over lists?",
	"How are functions declared?",
	"What do functions return by default?",
	"What is a class?",
	"How does inheritance work?",
	"When are variables copied?",
	"What is a tuple?",
}

func introQuiz(id int64, answers []bool) QuizSummaryRecord {
	q := QuizSummaryRecord{ID: id, UserID: UserAda, CourseID: CoursePythonBasics}
	for i, correct := range answers {
		if correct {
			q.Score++
		}
		selected := 0
		if !correct {
			selected = 1
		}
		q.QuestionSummaries = append(q.QuestionSummaries, QuestionSummaryRecord{
			Question:            QuestionRecord{ID: int64(1000 + i), Name: introQuestions[i]},
			Correct:             correct,
			SelectedOptionIndex: selected,
		})
	}
	return q
}

func course(id int64, name string) CourseRecord {
	return CourseRecord{
		ID:          id,
		Name:        name,
		Description: name + " course",
		ImageURL:    "https://images.example.com/courses/" + strconv.FormatInt(id, 10) + ".png",
	}
}
