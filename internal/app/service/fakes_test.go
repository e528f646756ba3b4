package service_test

import (
	"context"
	"fmt"
	"sync"

	"quizhub/internal/common"
	"quizhub/internal/domain/model"
)

// In-memory repository fakes. They return copies, like a real store decoding
// fresh documents, so callers mutating results never corrupt stored state.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
		}
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeQuestionSetRepo struct {
	mu   sync.Mutex
	sets map[string]model.QuestionSet
}

func newFakeQuestionSetRepo() *fakeQuestionSetRepo {
	return &fakeQuestionSetRepo{sets: map[string]model.QuestionSet{}}
}

func (r *fakeQuestionSetRepo) Create(ctx context.Context, set *model.QuestionSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[set.ID] = *set
	return nil
}

func (r *fakeQuestionSetRepo) FindByID(ctx context.Context, id string) (*model.QuestionSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sets[id]; ok {
		copied := s
		return &copied, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeQuestionSetRepo) List(ctx context.Context, teacherID string) ([]model.QuestionSet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.QuestionSet{}
	for _, s := range r.sets {
		if teacherID == "" || s.TeacherID == teacherID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeQuestionSetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sets[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.sets, id)
	return nil
}

type fakeQuestionRepo struct {
	mu        sync.Mutex
	questions []model.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{}
}

func (r *fakeQuestionRepo) Create(ctx context.Context, question *model.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questions = append(r.questions, *question)
	return nil
}

func (r *fakeQuestionRepo) FindByID(ctx context.Context, id string) (*model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.questions {
		if q.ID == id {
			copied := q
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeQuestionRepo) ListBySetID(ctx context.Context, questionSetID string) ([]model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Question{}
	for _, q := range r.questions {
		if q.QuestionSetID == questionSetID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *fakeQuestionRepo) DeleteBySetID(ctx context.Context, questionSetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.questions[:0]
	for _, q := range r.questions {
		if q.QuestionSetID != questionSetID {
			kept = append(kept, q)
		}
	}
	r.questions = kept
	return nil
}

type fakeTestRepo struct {
	mu    sync.Mutex
	tests map[string]model.Test
}

func newFakeTestRepo() *fakeTestRepo {
	return &fakeTestRepo{tests: map[string]model.Test{}}
}

func (r *fakeTestRepo) Create(ctx context.Context, test *model.Test) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tests[test.ID] = *test
	return nil
}

func (r *fakeTestRepo) FindByID(ctx context.Context, id string) (*model.Test, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tt, ok := r.tests[id]; ok {
		copied := tt
		return &copied, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeTestRepo) List(ctx context.Context, teacherID string) ([]model.Test, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Test{}
	for _, tt := range r.tests {
		if teacherID == "" || tt.TeacherID == teacherID {
			out = append(out, tt)
		}
	}
	return out, nil
}

func (r *fakeTestRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tests[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.tests, id)
	return nil
}

type fakeTestResultRepo struct {
	mu      sync.Mutex
	results map[string]model.TestResult
}

func newFakeTestResultRepo() *fakeTestResultRepo {
	return &fakeTestResultRepo{results: map[string]model.TestResult{}}
}

func (r *fakeTestResultRepo) Create(ctx context.Context, result *model.TestResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.ID] = *result
	return nil
}

func (r *fakeTestResultRepo) FindByID(ctx context.Context, id string) (*model.TestResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res, ok := r.results[id]; ok {
		copied := res
		return &copied, nil
	}
	return nil, common.ErrNotFound
}

func (r *fakeTestResultRepo) ListByTestID(ctx context.Context, testID string) ([]model.TestResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.TestResult{}
	for _, res := range r.results {
		if res.TestID == testID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeTestResultRepo) ListByStudentID(ctx context.Context, studentID string) ([]model.TestResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.TestResult{}
	for _, res := range r.results {
		if res.StudentID == studentID {
			out = append(out, res)
		}
	}
	return out, nil
}
