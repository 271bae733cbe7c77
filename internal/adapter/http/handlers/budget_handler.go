package handlers

import (
	"errors"
	"log"
	"net/http"
	request "orcamento_api/internal/adapter/http/dto/request"
	response "orcamento_api/internal/adapter/http/dto/response"
	"orcamento_api/internal/usecase"
	"orcamento_api/pkg"

	"github.com/gin-gonic/gin"
)

// BudgetHandler serves the public calculator.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// Calculate godoc
// @Summary      Calculate a budget
// @Description  Prices the building parameters with the current cost factors.
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        inputs  body      request.BudgetInputsRequest  true  "Building parameters"
// @Success      200     {object}  entities.BudgetResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /budget/calculate [post]
func (h *BudgetHandler) Calculate(c *gin.Context) {
	var payload request.BudgetInputsRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}

	res, err := h.usecase.Calculate(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[budget][handler] calculate failed err=%v", err)
		writeError(c, mapBudgetError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// Submit godoc
// @Summary      Submit a budget request
// @Description  Calculates the budget and stores it as a PENDING request for admin review.
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        request  body      request.SubmitBudgetRequest  true  "Client data and building parameters"
// @Success      200      {object}  response.BudgetRequestResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /budget/submit [post]
func (h *BudgetHandler) Submit(c *gin.Context) {
	var payload request.SubmitBudgetRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}

	created, err := h.usecase.Submit(c.Request.Context(), payload.Client(), payload.ToEntity())
	if err != nil {
		log.Printf("[budget][handler] submit failed err=%v", err)
		writeError(c, mapBudgetError(err))
		return
	}
	log.Printf("[budget][handler] submit success id=%d total=%.2f", created.ID, created.TotalBudget)

	c.JSON(http.StatusOK, response.FromBudgetRequest(created))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetInputs):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid budget inputs", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidClientData):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid client data", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
