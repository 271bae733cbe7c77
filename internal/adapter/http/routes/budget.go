package routes

import (
	"orcamento_api/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudget = "/budget"
	PathExport = "/export"
)

func addBudgetRoutes(rg *gin.RouterGroup, budgetHandler *handlers.BudgetHandler) {
	budget := rg.Group(PathBudget)
	{
		budget.POST("/calculate", budgetHandler.Calculate)
		budget.POST("/submit", budgetHandler.Submit)
	}
}

func addExportRoutes(rg *gin.RouterGroup, exportHandler *handlers.ExportHandler) {
	export := rg.Group(PathExport)
	{
		export.POST("/csv", exportHandler.ExportCSV)
		export.POST("/xlsx", exportHandler.ExportXLSX)
		export.POST("/excel", exportHandler.ExportXLSX)
	}
}
