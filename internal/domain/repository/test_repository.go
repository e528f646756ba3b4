package repository

import (
	"context"
	"errors"
	"fmt"

	"quizhub/internal/common"
	"quizhub/internal/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type TestRepository interface {
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id string) (*model.Test, error)
	List(ctx context.Context, teacherID string) ([]model.Test, error)
	Delete(ctx context.Context, id string) error
}

type mongoTestRepository struct {
	col *mongo.Collection
}

func NewMongoTestRepository(db *mongo.Database) TestRepository {
	return &mongoTestRepository{col: db.Collection("tests")}
}

func (r *mongoTestRepository) Create(ctx context.Context, test *model.Test) error {
	if _, err := r.col.InsertOne(ctx, test); err != nil {
		return fmt.Errorf("mongoTestRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoTestRepository) FindByID(ctx context.Context, id string) (*model.Test, error) {
	test := &model.Test{}
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(test); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoTestRepository.FindByID: %w", err)
	}
	return test, nil
}

func (r *mongoTestRepository) List(ctx context.Context, teacherID string) ([]model.Test, error) {
	filter := bson.M{}
	if teacherID != "" {
		filter["teacher_id"] = teacherID
	}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongoTestRepository.List: %w", err)
	}
	tests := []model.Test{}
	if err := cursor.All(ctx, &tests); err != nil {
		return nil, fmt.Errorf("mongoTestRepository.List: decode: %w", err)
	}
	return tests, nil
}

func (r *mongoTestRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongoTestRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
