package model

import (
	"time"
)

type Test struct {
	ID              string    `json:"id" bson:"_id"`
	Title           string    `json:"title" bson:"title"`
	Description     string    `json:"description" bson:"description"`
	QuestionSetID   string    `json:"questionSetId" bson:"question_set_id"`
	TeacherID       string    `json:"teacherId" bson:"teacher_id"`
	DurationMinutes int       `json:"durationMinutes" bson:"duration_minutes"`
	CreatedAt       time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updated_at"`
}
