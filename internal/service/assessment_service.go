package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"esg-maturity-backend/internal/esg"
	"esg-maturity-backend/internal/model"
	"esg-maturity-backend/internal/repository"
	"esg-maturity-backend/utilities"
)

// Requester identifies who is acting on an assessment.
type Requester struct {
	UserID uint
	Role   string
}

func (r Requester) isAdmin() bool {
	return r.Role == model.RoleAdmin
}

type AssessmentService interface {
	Catalog() esg.Catalog
	StartAssessment(ctx context.Context, req Requester) (*model.Assessment, error)
	GetAssessment(ctx context.Context, req Requester, sessionID string) (*model.Assessment, error)
	GetAssessmentsByUser(ctx context.Context, req Requester) ([]model.Assessment, error)
	SaveAnswer(ctx context.Context, req Requester, sessionID, questionID, rawAnswer string) (*model.AnswerRecord, error)
	SaveAnswers(ctx context.Context, req Requester, sessionID string, rawAnswers map[string]string) ([]model.AnswerRecord, error)
	SubmitAssessment(ctx context.Context, req Requester, sessionID string) (*model.Assessment, error)
	Result(ctx context.Context, req Requester, sessionID string) (esg.AssessmentResult, error)
	Plan(ctx context.Context, req Requester, sessionID string) ([]esg.ActionPlanItem, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	catalog        esg.Catalog
	rules          esg.RuleTable
	events         *utilities.EventBus
	now            func() time.Time
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	catalog esg.Catalog,
	rules esg.RuleTable,
	events *utilities.EventBus,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		catalog:        catalog,
		rules:          rules,
		events:         events,
		now:            time.Now,
	}
}

func (s *assessmentService) Catalog() esg.Catalog {
	return s.catalog
}

// StartAssessment opens a new session for the requester.
func (s *assessmentService) StartAssessment(ctx context.Context, req Requester) (*model.Assessment, error) {
	assessment := model.Assessment{
		UserID:    req.UserID,
		SessionID: uuid.New().String(),
		Status:    model.StatusInProgress,
		Answers:   []model.AnswerRecord{},
	}
	if err := s.assessmentRepo.CreateAssessment(ctx, &assessment); err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	utilities.Info("user %d started assessment %s", req.UserID, assessment.SessionID)
	return &assessment, nil
}

// GetAssessment loads a session the requester may see.
func (s *assessmentService) GetAssessment(ctx context.Context, req Requester, sessionID string) (*model.Assessment, error) {
	assessment, err := s.assessmentRepo.GetAssessmentBySessionID(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAssessmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load assessment: %w", err)
	}
	if assessment.UserID != req.UserID && !req.isAdmin() {
		return nil, ErrForbidden
	}
	return assessment, nil
}

func (s *assessmentService) GetAssessmentsByUser(ctx context.Context, req Requester) ([]model.Assessment, error) {
	return s.assessmentRepo.GetAssessmentsByUser(ctx, req.UserID)
}

// SaveAnswer records or replaces one answer of an open session.
func (s *assessmentService) SaveAnswer(ctx context.Context, req Requester, sessionID, questionID, rawAnswer string) (*model.AnswerRecord, error) {
	records, err := s.SaveAnswers(ctx, req, sessionID, map[string]string{questionID: rawAnswer})
	if err != nil {
		return nil, err
	}
	return &records[0], nil
}

// SaveAnswers records a batch of answers keyed by question id. Every id and
// value is validated before anything is written, and the batch is stored
// atomically, in catalog order.
func (s *assessmentService) SaveAnswers(ctx context.Context, req Requester, sessionID string, rawAnswers map[string]string) ([]model.AnswerRecord, error) {
	parsed := make(map[string]esg.Answer, len(rawAnswers))
	for questionID, raw := range rawAnswers {
		if _, ok := s.catalog.Question(questionID); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
		}
		answer, ok := esg.ParseAnswer(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidAnswer, questionID, raw)
		}
		parsed[questionID] = answer
	}

	assessment, err := s.GetAssessment(ctx, req, sessionID)
	if err != nil {
		return nil, err
	}
	if assessment.IsCompleted() {
		return nil, ErrAssessmentFinalized
	}
	if len(parsed) == 0 {
		return []model.AnswerRecord{}, nil
	}

	records := make([]model.AnswerRecord, 0, len(parsed))
	for _, cat := range s.catalog.Categories {
		for _, q := range cat.Questions {
			if answer, ok := parsed[q.ID]; ok {
				records = append(records, model.AnswerRecord{
					AssessmentID: assessment.ID,
					QuestionID:   q.ID,
					Answer:       string(answer),
				})
			}
		}
	}

	if err := s.assessmentRepo.SaveAnswers(ctx, assessment.ID, records); err != nil {
		if errors.Is(err, repository.ErrAlreadyCompleted) {
			return nil, ErrAssessmentFinalized
		}
		return nil, fmt.Errorf("save answers: %w", err)
	}
	return records, nil
}

// SubmitAssessment scores the session and makes it immutable. Scoring runs
// on the answers read under the repository's lock.
func (s *assessmentService) SubmitAssessment(ctx context.Context, req Requester, sessionID string) (*model.Assessment, error) {
	assessment, err := s.GetAssessment(ctx, req, sessionID)
	if err != nil {
		return nil, err
	}
	if assessment.IsCompleted() {
		return nil, ErrAssessmentFinalized
	}

	var result esg.AssessmentResult
	done, err := s.assessmentRepo.CompleteAssessment(ctx, sessionID, func(a *model.Assessment) {
		submittedAt := s.now()
		result = esg.Score(s.catalog, a.AnswersState())
		a.ApplyResult(result)
		a.Status = model.StatusCompleted
		a.SubmittedAt = &submittedAt
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyCompleted) {
			return nil, ErrAssessmentFinalized
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("complete assessment: %w", err)
	}

	utilities.Info("assessment %s submitted: %.1f%% (%s)", sessionID, result.Percentage, result.Level)
	if s.events != nil {
		s.events.Publish(utilities.EventAssessmentSubmitted, sessionID)
	}
	return done, nil
}

// Result returns the stored score of a submitted session or a live score of
// an open one.
func (s *assessmentService) Result(ctx context.Context, req Requester, sessionID string) (esg.AssessmentResult, error) {
	assessment, err := s.GetAssessment(ctx, req, sessionID)
	if err != nil {
		return esg.AssessmentResult{}, err
	}
	return s.resultOf(assessment), nil
}

func (s *assessmentService) Plan(ctx context.Context, req Requester, sessionID string) ([]esg.ActionPlanItem, error) {
	result, err := s.Result(ctx, req, sessionID)
	if err != nil {
		return nil, err
	}
	return esg.GeneratePlan(s.catalog, s.rules, result), nil
}

func (s *assessmentService) resultOf(assessment *model.Assessment) esg.AssessmentResult {
	if assessment.IsCompleted() {
		return assessment.Result()
	}
	return esg.Score(s.catalog, assessment.AnswersState())
}
