package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskmaster/internal/adapter/database/mongodb"
	"taskmaster/internal/core/domain"
	"taskmaster/internal/core/port"
)

type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository(db *mongodb.DB) port.TaskRepository {
	return &TaskRepository{collection: db.Tasks()}
}

func (tr *TaskRepository) List(ctx context.Context, userID string) ([]domain.Task, error) {
	filter := bson.M{}

	if userID != "" {
		filter["userId"] = userID
	}

	cursor, err := tr.collection.Find(ctx, filter)

	if err != nil {
		return nil, err
	}

	defer cursor.Close(ctx)

	tasks := []domain.Task{}

	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (tr *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	oid, err := parseID(id)

	if err != nil {
		return domain.Task{}, err
	}

	var task domain.Task

	err = tr.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&task)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	if err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (tr *TaskRepository) Create(ctx context.Context, task domain.Task) (string, error) {
	result, err := tr.collection.InsertOne(ctx, task)

	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)

	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return oid.Hex(), nil
}

func (tr *TaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	oid, err := parseID(id)

	if err != nil {
		return err
	}

	// An empty $set is rejected by the server, so an empty patch degrades to
	// an existence check. The not-found contract still holds.
	if patch.IsEmpty() {
		err := tr.collection.FindOne(ctx, bson.M{"_id": oid}).Err()

		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ErrTaskNotFound
		}

		return err
	}

	result, err := tr.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": setFields(patch)})

	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (tr *TaskRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)

	if err != nil {
		return err
	}

	result, err := tr.collection.DeleteOne(ctx, bson.M{"_id": oid})

	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)

	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidTaskID
	}

	return oid, nil
}

func setFields(patch domain.TaskPatch) bson.M {
	set := bson.M{}

	if patch.UserID != nil {
		set["userId"] = *patch.UserID
	}

	if patch.Title != nil {
		set["title"] = *patch.Title
	}

	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}

	return set
}
