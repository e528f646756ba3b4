package service

import (
	"context"
	"time"

	"quizhub/internal/common"
	"quizhub/internal/domain/model"
	"quizhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type QuestionSetService struct {
	setRepo      repository.QuestionSetRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionSetService(
	setRepo repository.QuestionSetRepository,
	questionRepo repository.QuestionRepository,
) *QuestionSetService {
	return &QuestionSetService{setRepo: setRepo, questionRepo: questionRepo}
}

type CreateQuestionSetRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *QuestionSetService) Create(ctx context.Context, teacherID string, req CreateQuestionSetRequest) (*model.QuestionSet, error) {
	if req.Title == "" {
		return nil, common.Errorf("title is required: %w", common.ErrBadRequest)
	}

	now := time.Now()
	set := &model.QuestionSet{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Description: req.Description,
		TeacherID:   teacherID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.setRepo.Create(ctx, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *QuestionSetService) List(ctx context.Context, teacherID string) ([]model.QuestionSet, error) {
	return s.setRepo.List(ctx, teacherID)
}

func (s *QuestionSetService) Get(ctx context.Context, id string) (*model.QuestionSet, error) {
	return s.setRepo.FindByID(ctx, id)
}

// Delete removes the set and all its questions. Only the owning teacher may
// delete a set.
func (s *QuestionSetService) Delete(ctx context.Context, userID, id string) error {
	set, err := s.setRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if set.TeacherID != userID {
		return common.ErrForbidden
	}
	if err := s.setRepo.Delete(ctx, id); err != nil {
		return err
	}
	return s.questionRepo.DeleteBySetID(ctx, id)
}
