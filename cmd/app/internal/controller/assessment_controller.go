package controller

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"esg-maturity-backend/internal/esg"
	"esg-maturity-backend/internal/service"
)

type AssessmentController struct {
	AssessmentService service.AssessmentService
	ReportService     service.ReportService
}

func NewAssessmentController(assessmentService service.AssessmentService, reportService service.ReportService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService, ReportService: reportService}
}

// GetCatalog lists categories and questions in questionnaire order.
func (ac *AssessmentController) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, ac.AssessmentService.Catalog())
}

func (ac *AssessmentController) StartAssessment(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	assessment, err := ac.AssessmentService.StartAssessment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"session_id": assessment.SessionID,
		"catalog":    ac.AssessmentService.Catalog(),
	})
}

func (ac *AssessmentController) ListAssessments(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	assessments, err := ac.AssessmentService.GetAssessmentsByUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessments)
}

func (ac *AssessmentController) GetAssessment(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	assessment, err := ac.AssessmentService.GetAssessment(c.Request.Context(), req, c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// SaveAnswers records one or more answers. A batch with any unknown question
// or invalid value is rejected without saving anything.
func (ac *AssessmentController) SaveAnswers(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	var body struct {
		Answers map[string]string `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: answers are required"})
		return
	}

	sessionID := c.Param("session_id")
	records, err := ac.AssessmentService.SaveAnswers(c.Request.Context(), req, sessionID, body.Answers)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := ac.AssessmentService.Result(c.Request.Context(), req, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": len(records), "result": result})
}

func (ac *AssessmentController) SubmitAssessment(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	assessment, err := ac.AssessmentService.SubmitAssessment(c.Request.Context(), req, c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment": assessment, "result": assessment.Result()})
}

func (ac *AssessmentController) GetResult(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	result, err := ac.AssessmentService.Result(c.Request.Context(), req, c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (ac *AssessmentController) GetPlan(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	plan, err := ac.AssessmentService.Plan(c.Request.Context(), req, c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan, "groups": esg.GroupByTimeFrame(plan)})
}

func (ac *AssessmentController) DownloadReport(c *gin.Context) {
	req, ok := requester(c)
	if !ok {
		return
	}
	sessionID := c.Param("session_id")
	var buf bytes.Buffer
	if err := ac.ReportService.WriteAssessmentReport(c.Request.Context(), req, sessionID, &buf); err != nil {
		respondError(c, err)
		return
	}
	sendPDF(c, "autoavaliacao_esg_"+sessionID+".pdf", buf.Bytes())
}

func sendPDF(c *gin.Context, filename string, content []byte) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", content)
}
