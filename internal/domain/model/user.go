package model

import (
	"time"
)

type User struct {
	ID             string    `json:"id" bson:"_id"`
	Username       string    `json:"username" bson:"username"`
	Email          string    `json:"email" bson:"email"`
	HashedPassword string    `json:"-" bson:"hashed_password"` // Not exposed
	IsTeacher      bool      `json:"isTeacher" bson:"is_teacher"`
	CreatedAt      time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updated_at"`
}
