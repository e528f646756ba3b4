package service

import (
	"context"
	"time"

	"quizhub/internal/common"
	"quizhub/internal/domain/model"
	"quizhub/internal/domain/repository"

	"github.com/google/uuid"
)

type QuestionService struct {
	questionRepo repository.QuestionRepository
	setRepo      repository.QuestionSetRepository
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	setRepo repository.QuestionSetRepository,
) *QuestionService {
	return &QuestionService{questionRepo: questionRepo, setRepo: setRepo}
}

type CreateQuestionRequest struct {
	QuestionSetID string            `json:"questionSetId"`
	Text          string            `json:"text"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correctAnswer"`
}

func (s *QuestionService) Create(ctx context.Context, userID string, req CreateQuestionRequest) (*model.Question, error) {
	if req.QuestionSetID == "" || req.Text == "" || len(req.Options) < 2 || req.CorrectAnswer == "" {
		return nil, common.Errorf("missing required fields for question creation: %w", common.ErrBadRequest)
	}
	if _, ok := req.Options[req.CorrectAnswer]; !ok {
		return nil, common.Errorf("correctAnswer must name one of the options: %w", common.ErrValidation)
	}

	set, err := s.setRepo.FindByID(ctx, req.QuestionSetID)
	if err != nil {
		return nil, err
	}
	if set.TeacherID != userID {
		return nil, common.ErrForbidden
	}

	existing, err := s.questionRepo.ListBySetID(ctx, req.QuestionSetID)
	if err != nil {
		return nil, err
	}

	question := &model.Question{
		ID:            uuid.NewString(),
		QuestionSetID: req.QuestionSetID,
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Position:      len(existing) + 1,
		CreatedAt:     time.Now(),
	}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) ListBySet(ctx context.Context, questionSetID string) ([]model.Question, error) {
	if questionSetID == "" {
		return nil, common.Errorf("questionSetId is required: %w", common.ErrBadRequest)
	}
	return s.questionRepo.ListBySetID(ctx, questionSetID)
}

func (s *QuestionService) Delete(ctx context.Context, userID, id string) error {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	set, err := s.setRepo.FindByID(ctx, question.QuestionSetID)
	if err != nil {
		return err
	}
	if set.TeacherID != userID {
		return common.ErrForbidden
	}
	return s.questionRepo.Delete(ctx, id)
}
