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

type QuestionSetRepository interface {
	Create(ctx context.Context, set *model.QuestionSet) error
	FindByID(ctx context.Context, id string) (*model.QuestionSet, error)
	List(ctx context.Context, teacherID string) ([]model.QuestionSet, error)
	Delete(ctx context.Context, id string) error
}

type mongoQuestionSetRepository struct {
	col *mongo.Collection
}

func NewMongoQuestionSetRepository(db *mongo.Database) QuestionSetRepository {
	return &mongoQuestionSetRepository{col: db.Collection("question_sets")}
}

func (r *mongoQuestionSetRepository) Create(ctx context.Context, set *model.QuestionSet) error {
	if _, err := r.col.InsertOne(ctx, set); err != nil {
		return fmt.Errorf("mongoQuestionSetRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoQuestionSetRepository) FindByID(ctx context.Context, id string) (*model.QuestionSet, error) {
	set := &model.QuestionSet{}
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(set); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoQuestionSetRepository.FindByID: %w", err)
	}
	return set, nil
}

// List returns sets owned by teacherID, or every set when teacherID is empty.
func (r *mongoQuestionSetRepository) List(ctx context.Context, teacherID string) ([]model.QuestionSet, error) {
	filter := bson.M{}
	if teacherID != "" {
		filter["teacher_id"] = teacherID
	}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("mongoQuestionSetRepository.List: %w", err)
	}
	sets := []model.QuestionSet{}
	if err := cursor.All(ctx, &sets); err != nil {
		return nil, fmt.Errorf("mongoQuestionSetRepository.List: decode: %w", err)
	}
	return sets, nil
}

func (r *mongoQuestionSetRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongoQuestionSetRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}
