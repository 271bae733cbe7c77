package routes

import (
	"orcamento_api/internal/adapter/http/handlers"
	"orcamento_api/internal/adapter/http/middleware"
	"orcamento_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth      = "/auth"
	PathDashboard = "/dashboard"
	PathAdmin     = "/admin"
)

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, auth usecase.IAuthUseCase) {
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/validate", authHandler.Validate)
		// Reachable while a password change is still pending.
		authGroup.POST("/password", middleware.RequireAdmin(auth, true), authHandler.ChangePassword)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler, auth usecase.IAuthUseCase) {
	dashboard := rg.Group(PathDashboard, middleware.RequireAdmin(auth, false))
	{
		dashboard.GET("/requests", dashboardHandler.ListRequests)
		dashboard.GET("/requests/status/:status", dashboardHandler.ListRequestsByStatus)
		dashboard.GET("/requests/:id", dashboardHandler.GetRequestByID)
		dashboard.PUT("/requests/:id/status", dashboardHandler.UpdateRequestStatus)
		dashboard.GET("/stats", dashboardHandler.GetStats)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, costFactorsHandler *handlers.CostFactorsHandler, auth usecase.IAuthUseCase) {
	admin := rg.Group(PathAdmin, middleware.RequireAdmin(auth, false))
	{
		admin.GET("/cost-factors", costFactorsHandler.GetCostFactors)
		admin.PUT("/cost-factors", costFactorsHandler.UpdateCostFactors)
	}
}
