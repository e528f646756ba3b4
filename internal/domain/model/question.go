package model

import (
	"time"
)

// Question is a single multiple-choice question. Options are keyed by their
// label (A, B, C, ...) and CorrectAnswer names one of those keys.
type Question struct {
	ID            string            `json:"id" bson:"_id"`
	QuestionSetID string            `json:"questionSetId" bson:"question_set_id"`
	Text          string            `json:"text" bson:"text"`
	Options       map[string]string `json:"options" bson:"options"`
	CorrectAnswer string            `json:"correctAnswer" bson:"correct_answer"`
	Position      int               `json:"position" bson:"position"`
	CreatedAt     time.Time         `json:"createdAt" bson:"created_at"`
}
