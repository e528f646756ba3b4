package service

import (
	"context"
	"time"

	"quizhub/internal/common"
	"quizhub/internal/domain/model"
	"quizhub/internal/domain/repository"

	"github.com/google/uuid"
)

type TestResultService struct {
	resultRepo   repository.TestResultRepository
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
}

func NewTestResultService(
	resultRepo repository.TestResultRepository,
	testRepo repository.TestRepository,
	questionRepo repository.QuestionRepository,
) *TestResultService {
	return &TestResultService{
		resultRepo:   resultRepo,
		testRepo:     testRepo,
		questionRepo: questionRepo,
	}
}

type SubmittedAnswer struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer"`
}

type SubmitTestRequest struct {
	TestID  string            `json:"testId"`
	Answers []SubmittedAnswer `json:"answers"`
}

// Submit grades the submitted answers against the test's question set and
// persists the result. Grading is a flat comparison of the selected answer
// against each question's correct answer.
func (s *TestResultService) Submit(ctx context.Context, studentID string, req SubmitTestRequest) (*model.TestResult, error) {
	if req.TestID == "" || len(req.Answers) == 0 {
		return nil, common.Errorf("testId and answers are required: %w", common.ErrBadRequest)
	}

	test, err := s.testRepo.FindByID(ctx, req.TestID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListBySetID(ctx, test.QuestionSetID)
	if err != nil {
		return nil, err
	}
	answerKey := make(map[string]string, len(questions))
	for _, q := range questions {
		answerKey[q.ID] = q.CorrectAnswer
	}

	graded := make([]model.Answer, 0, len(req.Answers))
	score := 0
	for _, a := range req.Answers {
		correct, ok := answerKey[a.QuestionID]
		if !ok {
			return nil, common.Errorf("answer references a question outside this test: %w", common.ErrBadRequest)
		}
		isCorrect := a.SelectedAnswer == correct
		if isCorrect {
			score++
		}
		graded = append(graded, model.Answer{
			QuestionID:     a.QuestionID,
			SelectedAnswer: a.SelectedAnswer,
			IsCorrect:      isCorrect,
		})
	}

	result := &model.TestResult{
		ID:        uuid.NewString(),
		TestID:    test.ID,
		StudentID: studentID,
		Answers:   graded,
		Score:     score,
		Total:     len(questions),
		CreatedAt: time.Now(),
	}
	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Get returns a result to the student who took it or to the owning teacher of
// the test; anyone else is rejected.
func (s *TestResultService) Get(ctx context.Context, userID, id string) (*model.TestResult, error) {
	result, err := s.resultRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if result.StudentID == userID {
		return result, nil
	}
	test, err := s.testRepo.FindByID(ctx, result.TestID)
	if err != nil {
		return nil, err
	}
	if test.TeacherID != userID {
		return nil, common.ErrForbidden
	}
	return result, nil
}

func (s *TestResultService) ListByTest(ctx context.Context, userID, testID string) ([]model.TestResult, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if test.TeacherID != userID {
		return nil, common.ErrForbidden
	}
	return s.resultRepo.ListByTestID(ctx, testID)
}

func (s *TestResultService) ListMine(ctx context.Context, studentID string) ([]model.TestResult, error) {
	return s.resultRepo.ListByStudentID(ctx, studentID)
}
