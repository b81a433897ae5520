package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"esg-maturity-backend/internal/esg"
	"esg-maturity-backend/internal/model"
	"esg-maturity-backend/internal/repository"
)

// Overview is the administrative rollup across all submitted assessments.
type Overview struct {
	Respondents int                  `json:"respondents"`
	Result      esg.AssessmentResult `json:"result"`
	Plan        []esg.ActionPlanItem `json:"plan"`
	Groups      []esg.TimeFrameGroup `json:"groups"`
	GeneratedAt time.Time            `json:"generated_at"`
}

type ReportService interface {
	Overview(ctx context.Context) (*Overview, error)
	CompletedAssessments(ctx context.Context) ([]model.Assessment, error)
	WriteMunicipalReport(ctx context.Context, w io.Writer) error
	WriteAssessmentReport(ctx context.Context, req Requester, sessionID string, w io.Writer) error
}

type reportService struct {
	assessmentRepo    repository.AssessmentRepository
	assessmentService AssessmentService
	catalog           esg.Catalog
	rules             esg.RuleTable
	municipality      string
	now               func() time.Time
}

func NewReportService(
	assessmentRepo repository.AssessmentRepository,
	assessmentService AssessmentService,
	catalog esg.Catalog,
	rules esg.RuleTable,
	municipality string,
) ReportService {
	return &reportService{
		assessmentRepo:    assessmentRepo,
		assessmentService: assessmentService,
		catalog:           catalog,
		rules:             rules,
		municipality:      municipality,
		now:               time.Now,
	}
}

func (s *reportService) CompletedAssessments(ctx context.Context) ([]model.Assessment, error) {
	return s.assessmentRepo.GetCompletedAssessments(ctx)
}

// Overview aggregates every submitted assessment. It returns ErrNoResponses
// when nothing has been submitted yet.
func (s *reportService) Overview(ctx context.Context) (*Overview, error) {
	assessments, err := s.assessmentRepo.GetCompletedAssessments(ctx)
	if err != nil {
		return nil, fmt.Errorf("load completed assessments: %w", err)
	}

	results := make([]esg.AssessmentResult, 0, len(assessments))
	for i := range assessments {
		results = append(results, assessments[i].Result())
	}

	aggregate, ok := esg.Aggregate(s.catalog, results)
	if !ok {
		return nil, ErrNoResponses
	}

	plan := esg.GeneratePlan(s.catalog, s.rules, aggregate)
	return &Overview{
		Respondents: len(results),
		Result:      aggregate,
		Plan:        plan,
		Groups:      esg.GroupByTimeFrame(plan),
		GeneratedAt: s.now(),
	}, nil
}

func (s *reportService) WriteMunicipalReport(ctx context.Context, w io.Writer) error {
	overview, err := s.Overview(ctx)
	if err != nil {
		return err
	}
	return renderReportPDF(w, reportDocument{
		Title:        "Relatório Consolidado de Maturidade ESG",
		Subtitle:     fmt.Sprintf("%d avaliações consolidadas", overview.Respondents),
		Municipality: s.municipality,
		Catalog:      s.catalog,
		Result:       overview.Result,
		Plan:         overview.Plan,
		GeneratedAt:  overview.GeneratedAt,
	})
}

func (s *reportService) WriteAssessmentReport(ctx context.Context, req Requester, sessionID string, w io.Writer) error {
	result, err := s.assessmentService.Result(ctx, req, sessionID)
	if err != nil {
		return err
	}
	return renderReportPDF(w, reportDocument{
		Title:        "Relatório de Autoavaliação ESG",
		Subtitle:     "Sessão " + sessionID,
		Municipality: s.municipality,
		Catalog:      s.catalog,
		Result:       result,
		Plan:         esg.GeneratePlan(s.catalog, s.rules, result),
		GeneratedAt:  s.now(),
	})
}
