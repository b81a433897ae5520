package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"esg-maturity-backend/internal/db"
	"esg-maturity-backend/internal/model"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrAlreadyCompleted = errors.New("assessment already completed")
)

type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, assessment *model.Assessment) error
	GetAssessmentBySessionID(ctx context.Context, sessionID string) (*model.Assessment, error)
	GetAssessmentsByUser(ctx context.Context, userID uint) ([]model.Assessment, error)
	GetCompletedAssessments(ctx context.Context) ([]model.Assessment, error)
	SaveAnswers(ctx context.Context, assessmentID uint, answers []model.AnswerRecord) error
	CompleteAssessment(ctx context.Context, sessionID string, finalize func(*model.Assessment)) (*model.Assessment, error)
	CountCompleted(ctx context.Context) (int64, error)
}

type assessmentRepository struct {
	qe *db.QueryExecutor
}

func NewAssessmentRepository(conn *gorm.DB) AssessmentRepository {
	return &assessmentRepository{qe: db.NewQueryExecutor(conn)}
}

func (r *assessmentRepository) CreateAssessment(ctx context.Context, assessment *model.Assessment) error {
	return r.qe.Conn(ctx).Create(assessment).Error
}

func (r *assessmentRepository) GetAssessmentBySessionID(ctx context.Context, sessionID string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.qe.Conn(ctx).Preload("Answers").Where("session_id = ?", sessionID).First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) GetAssessmentsByUser(ctx context.Context, userID uint) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.qe.Conn(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) GetCompletedAssessments(ctx context.Context) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.qe.Conn(ctx).Where("status = ?", model.StatusCompleted).Order("submitted_at asc, id asc").Find(&assessments).Error
	return assessments, err
}

// lockOpen locks the assessment row for the rest of tx and fails with
// ErrAlreadyCompleted unless it is still in progress.
func lockOpen(tx *gorm.DB, query string, arg interface{}) (*model.Assessment, error) {
	var assessment model.Assessment
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where(query, arg).First(&assessment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if assessment.IsCompleted() {
		return nil, ErrAlreadyCompleted
	}
	return &assessment, nil
}

// SaveAnswers upserts a batch of answers of one open assessment. Either the
// whole batch is stored or none of it.
func (r *assessmentRepository) SaveAnswers(ctx context.Context, assessmentID uint, answers []model.AnswerRecord) error {
	if len(answers) == 0 {
		return nil
	}
	return r.qe.Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := lockOpen(tx, "id = ?", assessmentID); err != nil {
			return err
		}
		for i := range answers {
			answers[i].AssessmentID = assessmentID
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assessment_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"answer", "updated_at"}),
		}).Create(&answers).Error
	})
}

// CompleteAssessment locks the open assessment, reloads its answers, lets
// finalize compute the result and persists it. Concurrent SaveAnswers calls
// wait for the lock and then fail with ErrAlreadyCompleted.
func (r *assessmentRepository) CompleteAssessment(ctx context.Context, sessionID string, finalize func(*model.Assessment)) (*model.Assessment, error) {
	var done *model.Assessment
	err := r.qe.Transaction(ctx, func(tx *gorm.DB) error {
		assessment, err := lockOpen(tx, "session_id = ?", sessionID)
		if err != nil {
			return err
		}
		if err := tx.Where("assessment_id = ?", assessment.ID).Order("id").Find(&assessment.Answers).Error; err != nil {
			return err
		}

		finalize(assessment)
		err = tx.Model(assessment).
			Select("status", "total_score", "max_score", "percentage", "level", "category_scores", "submitted_at").
			Updates(assessment).Error
		if err != nil {
			return err
		}
		done = assessment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return done, nil
}

func (r *assessmentRepository) CountCompleted(ctx context.Context) (int64, error) {
	return r.qe.Count(ctx, &model.Assessment{}, map[string]interface{}{"status": model.StatusCompleted})
}
