package model

import (
	"time"

	"esg-maturity-backend/internal/esg"
)

// User roles.
const (
	RoleAdmin      = "admin"
	RoleRespondent = "respondent"
)

// Assessment statuses.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	Password     string    `json:"password,omitempty" gorm:"-"` // Plain text on input only
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:'respondent'"`
	Organization string    `json:"organization"` // Secretaria or department of the respondent
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Assessment is one respondent's questionnaire session. Score columns are
// filled when the session is submitted.
type Assessment struct {
	ID             uint                         `json:"id" gorm:"primaryKey"`
	UserID         uint                         `json:"user_id" gorm:"not null;index"`
	SessionID      string                       `json:"session_id" gorm:"not null;uniqueIndex"`
	Status         string                       `json:"status" gorm:"not null;default:'in_progress';index"`
	Answers        []AnswerRecord               `json:"answers" gorm:"foreignKey:AssessmentID"`
	TotalScore     float64                      `json:"total_score"`
	MaxScore       float64                      `json:"max_score"`
	Percentage     float64                      `json:"percentage"`
	Level          string                       `json:"level"`
	CategoryScores map[string]esg.CategoryScore `json:"category_scores" gorm:"serializer:json"`
	SubmittedAt    *time.Time                   `json:"submitted_at,omitempty"`
	CreatedAt      time.Time                    `json:"created_at"`
	UpdatedAt      time.Time                    `json:"updated_at"`
}

// AnswerRecord stores one answer; (assessment, question) is unique.
type AnswerRecord struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	AssessmentID uint      `json:"assessment_id" gorm:"not null;uniqueIndex:idx_assessment_question"`
	QuestionID   string    `json:"question_id" gorm:"not null;uniqueIndex:idx_assessment_question"`
	Answer       string    `json:"answer" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsCompleted reports whether the assessment has been submitted.
func (a *Assessment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// AnswersState rebuilds the scoring input from stored answers. Stored values
// that no longer parse are dropped.
func (a *Assessment) AnswersState() esg.AnswersState {
	state := make(esg.AnswersState, len(a.Answers))
	for _, rec := range a.Answers {
		if answer, ok := esg.ParseAnswer(rec.Answer); ok {
			state[rec.QuestionID] = answer
		}
	}
	return state
}

// Result returns the stored score of a completed assessment.
func (a *Assessment) Result() esg.AssessmentResult {
	scores := make(map[string]esg.CategoryScore, len(a.CategoryScores))
	for id, cs := range a.CategoryScores {
		scores[id] = cs
	}
	return esg.AssessmentResult{
		TotalScore:     a.TotalScore,
		MaxScore:       a.MaxScore,
		Percentage:     a.Percentage,
		Level:          esg.Tier(a.Level),
		CategoryScores: scores,
	}
}

// ApplyResult copies a computed score onto the assessment.
func (a *Assessment) ApplyResult(result esg.AssessmentResult) {
	a.TotalScore = result.TotalScore
	a.MaxScore = result.MaxScore
	a.Percentage = result.Percentage
	a.Level = string(result.Level)
	a.CategoryScores = result.CategoryScores
}
