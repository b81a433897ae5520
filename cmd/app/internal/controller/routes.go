package controller

import (
	"github.com/gin-gonic/gin"

	"esg-maturity-backend/internal/model"
	"esg-maturity-backend/internal/service"
	"esg-maturity-backend/utilities"
)

func RegisterRoutes(
	r *gin.Engine,
	tokens *utilities.TokenManager,
	authService service.AuthService,
	userService service.UserService,
	assessmentService service.AssessmentService,
	reportService service.ReportService,
) {
	// Auth routes.
	authCtrl := NewAuthController(authService)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authCtrl.Register)
		authRoutes.POST("/login", authCtrl.Login)
		authRoutes.POST("/refresh", authCtrl.Refresh)
	}

	assessmentCtrl := NewAssessmentController(assessmentService, reportService)
	r.GET("/catalog", assessmentCtrl.GetCatalog)

	// Assessment routes.
	assessRoutes := r.Group("/assessments", utilities.AuthMiddleware(tokens))
	{
		assessRoutes.GET("", assessmentCtrl.ListAssessments)
		assessRoutes.POST("/start", assessmentCtrl.StartAssessment)
		assessRoutes.GET("/:session_id", assessmentCtrl.GetAssessment)
		assessRoutes.PUT("/:session_id/answers", assessmentCtrl.SaveAnswers)
		assessRoutes.POST("/:session_id/submit", assessmentCtrl.SubmitAssessment)
		assessRoutes.GET("/:session_id/result", assessmentCtrl.GetResult)
		assessRoutes.GET("/:session_id/plan", assessmentCtrl.GetPlan)
		assessRoutes.GET("/:session_id/report", assessmentCtrl.DownloadReport)
	}

	// Admin routes.
	reportCtrl := NewReportController(reportService)
	userCtrl := NewUserController(userService)
	adminRoutes := r.Group("/admin", utilities.AuthMiddleware(tokens), utilities.RequireRole(model.RoleAdmin))
	{
		adminRoutes.GET("/overview", reportCtrl.GetOverview)
		adminRoutes.GET("/plan", reportCtrl.GetPlan)
		adminRoutes.GET("/report", reportCtrl.DownloadReport)
		adminRoutes.GET("/assessments", reportCtrl.GetCompletedAssessments)
		adminRoutes.GET("/users", userCtrl.GetAllUsers)
	}
}
