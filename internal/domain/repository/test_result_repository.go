package repository

import (
	"context"
	"errors"
	"fmt"

	"quizhub/internal/common"
	"quizhub/internal/domain/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type TestResultRepository interface {
	Create(ctx context.Context, result *model.TestResult) error
	FindByID(ctx context.Context, id string) (*model.TestResult, error)
	ListByTestID(ctx context.Context, testID string) ([]model.TestResult, error)
	ListByStudentID(ctx context.Context, studentID string) ([]model.TestResult, error)
}

type mongoTestResultRepository struct {
	col *mongo.Collection
}

func NewMongoTestResultRepository(db *mongo.Database) TestResultRepository {
	return &mongoTestResultRepository{col: db.Collection("test_results")}
}

func (r *mongoTestResultRepository) Create(ctx context.Context, result *model.TestResult) error {
	if _, err := r.col.InsertOne(ctx, result); err != nil {
		return fmt.Errorf("mongoTestResultRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoTestResultRepository) FindByID(ctx context.Context, id string) (*model.TestResult, error) {
	result := &model.TestResult{}
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoTestResultRepository.FindByID: %w", err)
	}
	return result, nil
}

func (r *mongoTestResultRepository) ListByTestID(ctx context.Context, testID string) ([]model.TestResult, error) {
	return r.list(ctx, bson.M{"test_id": testID})
}

func (r *mongoTestResultRepository) ListByStudentID(ctx context.Context, studentID string) ([]model.TestResult, error) {
	return r.list(ctx, bson.M{"student_id": studentID})
}

func (r *mongoTestResultRepository) list(ctx context.Context, filter bson.M) ([]model.TestResult, error) {
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("mongoTestResultRepository.list: %w", err)
	}
	results := []model.TestResult{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("mongoTestResultRepository.list: decode: %w", err)
	}
	return results, nil
}
