package handlers

import (
	"errors"
	"log"
	"net/http"
	request "orcamento_api/internal/adapter/http/dto/request"
	response "orcamento_api/internal/adapter/http/dto/response"
	"orcamento_api/internal/adapter/http/middleware"
	"orcamento_api/internal/usecase"
	"orcamento_api/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the admin review queue.

type DashboardHandler struct {
	usecase usecase.IBudgetRequestUseCase
}

func NewDashboardHandler(uc usecase.IBudgetRequestUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// ListRequests godoc
// @Summary      List budget requests
// @Description  Newest first. The optional status filter accepts PENDING, APPROVED or REJECTED.
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Param        status  query     string  false  "Status filter"
// @Success      200     {array}   response.BudgetRequestResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      401     {object}  pkg.HTTPError
// @Router       /dashboard/requests [get]
func (h *DashboardHandler) ListRequests(c *gin.Context) {
	h.list(c, c.Query("status"))
}

// ListRequestsByStatus godoc
// @Summary      List budget requests with a status
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Param        status  path      string  true  "PENDING, APPROVED or REJECTED"
// @Success      200     {array}   response.BudgetRequestResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /dashboard/requests/status/{status} [get]
func (h *DashboardHandler) ListRequestsByStatus(c *gin.Context) {
	h.list(c, c.Param("status"))
}

func (h *DashboardHandler) list(c *gin.Context, rawStatus string) {
	ctx := c.Request.Context()

	if strings.TrimSpace(rawStatus) == "" {
		items, err := h.usecase.List(ctx)
		if err != nil {
			log.Printf("[dashboard][handler] list failed err=%v", err)
			writeError(c, mapBudgetRequestError(err))
			return
		}
		c.JSON(http.StatusOK, response.FromBudgetRequests(items))
		return
	}

	status, err := usecase.ParseStatus(rawStatus)
	if err != nil {
		writeError(c, mapBudgetRequestError(err))
		return
	}
	items, err := h.usecase.ListByStatus(ctx, status)
	if err != nil {
		log.Printf("[dashboard][handler] list-by-status failed status=%s err=%v", status, err)
		writeError(c, mapBudgetRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetRequests(items))
}

// GetRequestByID godoc
// @Summary      Get a budget request
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Param        id   path      int  true  "Budget request id"
// @Success      200  {object}  response.BudgetRequestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /dashboard/requests/{id} [get]
func (h *DashboardHandler) GetRequestByID(c *gin.Context) {
	id, ok := parseBudgetRequestID(c)
	if !ok {
		return
	}

	br, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapBudgetRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBudgetRequest(br))
}

// UpdateRequestStatus godoc
// @Summary      Approve or reject a budget request
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      int                          true  "Budget request id"
// @Param        request  body      request.StatusUpdateRequest  true  "New status and notes"
// @Success      200      {object}  response.BudgetRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /dashboard/requests/{id}/status [put]
func (h *DashboardHandler) UpdateRequestStatus(c *gin.Context) {
	id, ok := parseBudgetRequestID(c)
	if !ok {
		return
	}

	var payload request.StatusUpdateRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}
	status, err := usecase.ParseStatus(payload.Status)
	if err != nil {
		writeError(c, mapBudgetRequestError(err))
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), id, status, payload.Notes)
	if err != nil {
		log.Printf("[dashboard][handler] update-status failed id=%d status=%s err=%v", id, status, err)
		writeError(c, mapBudgetRequestError(err))
		return
	}
	log.Printf("[dashboard][handler] update-status success id=%d status=%s by=%s", id, updated.Status, c.GetString(middleware.ContextUsername))

	c.JSON(http.StatusOK, response.FromBudgetRequest(updated))
}

// GetStats godoc
// @Summary      Review queue statistics
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardStatsResponse
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		log.Printf("[dashboard][handler] stats failed err=%v", err)
		writeError(c, mapBudgetRequestError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboardStats(stats))
}

func mapBudgetRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be one of PENDING, APPROVED, REJECTED", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBudgetRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid budget request id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetRequestNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_REQUEST_NOT_FOUND", "Budget request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
