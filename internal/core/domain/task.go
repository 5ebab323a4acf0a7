package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidTaskID = errors.New("invalid task id")
)

// Task is a unit of work owned by a user. The identifier is assigned by the
// store on insert and is immutable afterwards.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Completed   bool               `bson:"completed" json:"completed"`
}

// TaskPatch is a merge patch over the mutable Task fields. Nil fields are
// left untouched; the identifier can never be patched.
type TaskPatch struct {
	UserID      *string
	Title       *string
	Description *string
	Completed   *bool
}

func (p TaskPatch) IsEmpty() bool {
	return p.UserID == nil && p.Title == nil && p.Description == nil && p.Completed == nil
}

func (p TaskPatch) Apply(t *Task) {
	if p.UserID != nil {
		t.UserID = *p.UserID
	}

	if p.Title != nil {
		t.Title = *p.Title
	}

	if p.Description != nil {
		t.Description = *p.Description
	}

	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}
