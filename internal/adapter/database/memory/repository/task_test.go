package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskmaster/internal/core/domain"
)

var ctx = context.Background()

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateAssignsIdentifier(t *testing.T) {
	repo := NewTaskRepository()

	id, err := repo.Create(ctx, domain.Task{UserID: "u1", Title: "t1"})

	assert.NoError(t, err)
	assert.NotEmpty(t, id)

	task, err := repo.GetByID(ctx, id)

	assert.NoError(t, err)
	assert.Equal(t, "t1", task.Title)
	assert.Equal(t, id, task.ID.Hex())
}

func TestListPreservesInsertionOrderAndFilters(t *testing.T) {
	repo := NewTaskRepository()

	repo.Create(ctx, domain.Task{UserID: "u1", Title: "first"})
	repo.Create(ctx, domain.Task{UserID: "u2", Title: "second"})
	repo.Create(ctx, domain.Task{UserID: "u1", Title: "third"})

	all, err := repo.List(ctx, "")

	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Title)
	assert.Equal(t, "third", all[2].Title)

	mine, err := repo.List(ctx, "u1")

	assert.NoError(t, err)
	assert.Len(t, mine, 2)

	for _, task := range mine {
		assert.Equal(t, "u1", task.UserID)
	}
}

func TestListEmptyIsNotNil(t *testing.T) {
	repo := NewTaskRepository()

	tasks, err := repo.List(ctx, "")

	assert.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestGetByIDUnknown(t *testing.T) {
	repo := NewTaskRepository()

	_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestMalformedIdentifierIsRejected(t *testing.T) {
	repo := NewTaskRepository()

	_, err := repo.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, domain.ErrInvalidTaskID)

	err = repo.Update(ctx, "not-an-id", domain.TaskPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrInvalidTaskID)

	err = repo.Delete(ctx, "not-an-id")
	assert.ErrorIs(t, err, domain.ErrInvalidTaskID)
}

func TestUpdateMergesPatch(t *testing.T) {
	repo := NewTaskRepository()

	id, _ := repo.Create(ctx, domain.Task{UserID: "u1", Title: "t1", Description: "d1"})

	err := repo.Update(ctx, id, domain.TaskPatch{Completed: boolPtr(true)})

	assert.NoError(t, err)

	task, _ := repo.GetByID(ctx, id)

	assert.Equal(t, "t1", task.Title)
	assert.Equal(t, "d1", task.Description)
	assert.True(t, task.Completed)
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	repo := NewTaskRepository()

	id, _ := repo.Create(ctx, domain.Task{UserID: "u1", Title: "t1"})

	assert.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), domain.ErrTaskNotFound)
}
