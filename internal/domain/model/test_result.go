package model

import (
	"time"
)

type Answer struct {
	QuestionID     string `json:"questionId" bson:"question_id"`
	SelectedAnswer string `json:"selectedAnswer" bson:"selected_answer"`
	IsCorrect      bool   `json:"isCorrect" bson:"is_correct"`
}

type TestResult struct {
	ID        string    `json:"id" bson:"_id"`
	TestID    string    `json:"testId" bson:"test_id"`
	StudentID string    `json:"studentId" bson:"student_id"`
	Answers   []Answer  `json:"answers" bson:"answers"`
	Score     int       `json:"score" bson:"score"`
	Total     int       `json:"total" bson:"total"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
