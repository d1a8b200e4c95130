package model

// StudyGuide is the structured result of the generative study-guide call.
type StudyGuide struct {
	Topic             string   `json:"topic"`
	KeyConcepts       []string `json:"key_concepts"`
	Summary           string   `json:"summary"`
	PracticeQuestions []string `json:"practice_questions"`
}
