package controller

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"esg-maturity-backend/internal/service"
)

// ReportController serves the administrative municipal rollup.
type ReportController struct {
	ReportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

func (rc *ReportController) GetOverview(c *gin.Context) {
	overview, err := rc.ReportService.Overview(c.Request.Context())
	if errors.Is(err, service.ErrNoResponses) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no submitted assessments yet"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

func (rc *ReportController) GetPlan(c *gin.Context) {
	overview, err := rc.ReportService.Overview(c.Request.Context())
	if errors.Is(err, service.ErrNoResponses) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no submitted assessments yet"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": overview.Plan, "groups": overview.Groups})
}

func (rc *ReportController) GetCompletedAssessments(c *gin.Context) {
	assessments, err := rc.ReportService.CompletedAssessments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessments)
}

func (rc *ReportController) DownloadReport(c *gin.Context) {
	var buf bytes.Buffer
	err := rc.ReportService.WriteMunicipalReport(c.Request.Context(), &buf)
	if errors.Is(err, service.ErrNoResponses) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no submitted assessments yet"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	sendPDF(c, "relatorio_esg_municipal.pdf", buf.Bytes())
}
