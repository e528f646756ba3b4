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

type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id string) (*model.Question, error)
	ListBySetID(ctx context.Context, questionSetID string) ([]model.Question, error)
	Delete(ctx context.Context, id string) error
	DeleteBySetID(ctx context.Context, questionSetID string) error
}

type mongoQuestionRepository struct {
	col *mongo.Collection
}

func NewMongoQuestionRepository(db *mongo.Database) QuestionRepository {
	return &mongoQuestionRepository{col: db.Collection("questions")}
}

func (r *mongoQuestionRepository) Create(ctx context.Context, question *model.Question) error {
	if _, err := r.col.InsertOne(ctx, question); err != nil {
		return fmt.Errorf("mongoQuestionRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoQuestionRepository) FindByID(ctx context.Context, id string) (*model.Question, error) {
	question := &model.Question{}
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(question); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoQuestionRepository.FindByID: %w", err)
	}
	return question, nil
}

// ListBySetID returns the set's questions in insertion order.
func (r *mongoQuestionRepository) ListBySetID(ctx context.Context, questionSetID string) ([]model.Question, error) {
	cursor, err := r.col.Find(ctx,
		bson.M{"question_set_id": questionSetID},
		options.Find().SetSort(bson.D{{Key: "position", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("mongoQuestionRepository.ListBySetID: %w", err)
	}
	questions := []model.Question{}
	if err := cursor.All(ctx, &questions); err != nil {
		return nil, fmt.Errorf("mongoQuestionRepository.ListBySetID: decode: %w", err)
	}
	return questions, nil
}

func (r *mongoQuestionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("mongoQuestionRepository.Delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *mongoQuestionRepository) DeleteBySetID(ctx context.Context, questionSetID string) error {
	if _, err := r.col.DeleteMany(ctx, bson.M{"question_set_id": questionSetID}); err != nil {
		return fmt.Errorf("mongoQuestionRepository.DeleteBySetID: %w", err)
	}
	return nil
}
