package domain

const StatusSuccess = "success"

type CompletedLesson struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	KnowledgeScore float64 `json:"knowledge_score"`
}

type QuizAnalysis struct {
	Status           string             `json:"status"`
	QuizSummaryID    int64              `json:"quiz_summary_id"`
	OverallScore     float64            `json:"overall_score"`
	KnowledgeAreas   map[string]float64 `json:"knowledge_areas"`
	LessonsCompleted []CompletedLesson  `json:"lessons_completed"`
	Recommendation   string             `json:"recommendation"`
}
