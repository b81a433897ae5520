package service

import (
	"context"
	"sync"

	"esg-maturity-backend/internal/model"
	"esg-maturity-backend/internal/repository"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users []model.User
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uint(len(r.users) + 1)
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetAllUsers(ctx context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.User(nil), r.users...), nil
}

func (r *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

type fakeAssessmentRepo struct {
	mu          sync.Mutex
	assessments []*model.Assessment
}

func (r *fakeAssessmentRepo) CreateAssessment(ctx context.Context, a *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = uint(len(r.assessments) + 1)
	stored := *a
	r.assessments = append(r.assessments, &stored)
	return nil
}

func (r *fakeAssessmentRepo) find(sessionID string) *model.Assessment {
	for _, a := range r.assessments {
		if a.SessionID == sessionID {
			return a
		}
	}
	return nil
}

func (r *fakeAssessmentRepo) GetAssessmentBySessionID(ctx context.Context, sessionID string) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.find(sessionID)
	if a == nil {
		return nil, repository.ErrNotFound
	}
	cp := *a
	cp.Answers = append([]model.AnswerRecord(nil), a.Answers...)
	return &cp, nil
}

func (r *fakeAssessmentRepo) GetAssessmentsByUser(ctx context.Context, userID uint) ([]model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Assessment
	for _, a := range r.assessments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAssessmentRepo) GetCompletedAssessments(ctx context.Context) ([]model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Assessment
	for _, a := range r.assessments {
		if a.IsCompleted() {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAssessmentRepo) SaveAnswers(ctx context.Context, assessmentID uint, answers []model.AnswerRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.assessments {
		if a.ID != assessmentID {
			continue
		}
		if a.IsCompleted() {
			return repository.ErrAlreadyCompleted
		}
	next:
		for _, answer := range answers {
			for i := range a.Answers {
				if a.Answers[i].QuestionID == answer.QuestionID {
					a.Answers[i].Answer = answer.Answer
					continue next
				}
			}
			answer.AssessmentID = assessmentID
			a.Answers = append(a.Answers, answer)
		}
		return nil
	}
	return repository.ErrNotFound
}

func (r *fakeAssessmentRepo) CompleteAssessment(ctx context.Context, sessionID string, finalize func(*model.Assessment)) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.find(sessionID)
	if stored == nil {
		return nil, repository.ErrNotFound
	}
	if stored.IsCompleted() {
		return nil, repository.ErrAlreadyCompleted
	}
	finalize(stored)
	done := *stored
	done.Answers = append([]model.AnswerRecord(nil), stored.Answers...)
	return &done, nil
}

// racingAssessmentRepo runs a hook once right before a write reaches the
// store, standing in for a concurrent request that commits first.
type racingAssessmentRepo struct {
	*fakeAssessmentRepo
	beforeSave     func()
	beforeComplete func()
}

func (r *racingAssessmentRepo) SaveAnswers(ctx context.Context, assessmentID uint, answers []model.AnswerRecord) error {
	if hook := r.beforeSave; hook != nil {
		r.beforeSave = nil
		hook()
	}
	return r.fakeAssessmentRepo.SaveAnswers(ctx, assessmentID, answers)
}

func (r *racingAssessmentRepo) CompleteAssessment(ctx context.Context, sessionID string, finalize func(*model.Assessment)) (*model.Assessment, error) {
	if hook := r.beforeComplete; hook != nil {
		r.beforeComplete = nil
		hook()
	}
	return r.fakeAssessmentRepo.CompleteAssessment(ctx, sessionID, finalize)
}

func (r *fakeAssessmentRepo) CountCompleted(ctx context.Context) (int64, error) {
	done, _ := r.GetCompletedAssessments(ctx)
	return int64(len(done)), nil
}
