package service

import (
	"context"
	"time"

	"quizhub/internal/common"
	"quizhub/internal/domain/model"
	"quizhub/internal/domain/repository"

	"github.com/google/uuid"
)

type TestService struct {
	testRepo repository.TestRepository
	setRepo  repository.QuestionSetRepository
}

func NewTestService(
	testRepo repository.TestRepository,
	setRepo repository.QuestionSetRepository,
) *TestService {
	return &TestService{testRepo: testRepo, setRepo: setRepo}
}

type CreateTestRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	QuestionSetID   string `json:"questionSetId"`
	DurationMinutes int    `json:"durationMinutes"`
}

func (s *TestService) Create(ctx context.Context, teacherID string, req CreateTestRequest) (*model.Test, error) {
	if req.Title == "" || req.QuestionSetID == "" {
		return nil, common.Errorf("missing required fields for test creation: %w", common.ErrBadRequest)
	}

	set, err := s.setRepo.FindByID(ctx, req.QuestionSetID)
	if err != nil {
		return nil, err
	}
	if set.TeacherID != teacherID {
		return nil, common.ErrForbidden
	}

	now := time.Now()
	test := &model.Test{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Description:     req.Description,
		QuestionSetID:   req.QuestionSetID,
		TeacherID:       teacherID,
		DurationMinutes: req.DurationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.testRepo.Create(ctx, test); err != nil {
		return nil, err
	}
	return test, nil
}

func (s *TestService) List(ctx context.Context, teacherID string) ([]model.Test, error) {
	return s.testRepo.List(ctx, teacherID)
}

func (s *TestService) Get(ctx context.Context, id string) (*model.Test, error) {
	return s.testRepo.FindByID(ctx, id)
}

func (s *TestService) Delete(ctx context.Context, userID, id string) error {
	test, err := s.testRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if test.TeacherID != userID {
		return common.ErrForbidden
	}
	return s.testRepo.Delete(ctx, id)
}
