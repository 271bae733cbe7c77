package handlers

import (
	"errors"
	"log"
	"net/http"
	request "orcamento_api/internal/adapter/http/dto/request"
	"orcamento_api/internal/adapter/http/middleware"
	"orcamento_api/internal/usecase"
	"orcamento_api/pkg"

	"github.com/gin-gonic/gin"
)

type CostFactorsHandler struct {
	usecase usecase.ICostFactorsUseCase
}

func NewCostFactorsHandler(uc usecase.ICostFactorsUseCase) *CostFactorsHandler {
	return &CostFactorsHandler{usecase: uc}
}

// GetCostFactors godoc
// @Summary      Current cost factors
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  entities.CostFactors
// @Failure      401  {object}  pkg.HTTPError
// @Router       /admin/cost-factors [get]
func (h *CostFactorsHandler) GetCostFactors(c *gin.Context) {
	f, err := h.usecase.GetCurrent(c.Request.Context())
	if err != nil {
		log.Printf("[cost-factors][handler] get failed err=%v", err)
		writeError(c, mapCostFactorsError(err))
		return
	}
	c.JSON(http.StatusOK, f)
}

// UpdateCostFactors godoc
// @Summary      Replace the cost factors
// @Description  Every value must be positive. A non-zero version must match the stored one.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        factors  body      request.CostFactorsRequest  true  "All cost factors"
// @Success      200      {object}  entities.CostFactors
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /admin/cost-factors [put]
func (h *CostFactorsHandler) UpdateCostFactors(c *gin.Context) {
	var payload request.CostFactorsRequest
	if appErr := bindJSON(c, &payload); appErr != nil {
		writeError(c, appErr)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[cost-factors][handler] update failed err=%v", err)
		writeError(c, mapCostFactorsError(err))
		return
	}
	log.Printf("[cost-factors][handler] update success version=%d by=%s", updated.Version, c.GetString(middleware.ContextUsername))

	c.JSON(http.StatusOK, updated)
}

func mapCostFactorsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCostFactors):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Every cost factor must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCostFactorsConflict):
		return pkg.NewDomainErrorSimple("COST_FACTORS_CONFLICT", "Cost factors were changed by someone else; reload and retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
