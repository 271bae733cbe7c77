package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"orcamento_api/internal/adapter/export"
	request "orcamento_api/internal/adapter/http/dto/request"
	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase"
	"orcamento_api/pkg"
	"time"

	"github.com/gin-gonic/gin"
)

// ExportHandler renders a calculated budget as a downloadable spreadsheet.

type ExportHandler struct {
	usecase usecase.IBudgetUseCase
	now     func() time.Time
}

func NewExportHandler(uc usecase.IBudgetUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc, now: time.Now}
}

// ExportCSV godoc
// @Summary      Export a budget as CSV
// @Tags         export
// @Accept       json
// @Produce      text/csv
// @Param        inputs  body  request.BudgetInputsRequest  true  "Building parameters"
// @Success      200     {file}    file
// @Failure      400     {object}  pkg.HTTPError
// @Router       /export/csv [post]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	h.export(c, "csv", export.ContentTypeCSV, export.WriteCSV)
}

// ExportXLSX godoc
// @Summary      Export a budget as an Excel workbook
// @Tags         export
// @Accept       json
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        inputs  body  request.BudgetInputsRequest  true  "Building parameters"
// @Success      200     {file}    file
// @Failure      400     {object}  pkg.HTTPError
// @Router       /export/xlsx [post]
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "xlsx", export.ContentTypeXLSX, export.WriteXLSX)
}

func (h *ExportHandler) export(c *gin.Context, ext, contentType string, write func(io.Writer, entities.BudgetResponse) error) {
	var payload request.BudgetInputsRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}

	budget, err := h.usecase.Calculate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[export][handler] calculate failed format=%s err=%v", ext, err)
		writeError(c, mapBudgetError(err))
		return
	}

	var buf bytes.Buffer
	if err := write(&buf, budget); err != nil {
		log.Printf("[export][handler] render failed format=%s err=%v", ext, err)
		writeError(c, pkg.NewDomainError("EXPORT_FAILED", "Could not generate the export file", err, http.StatusInternalServerError))
		return
	}

	filename := export.Filename(h.now(), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
