package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	response "orcamento_api/internal/adapter/http/dto/response"
	"orcamento_api/internal/usecase"
	"orcamento_api/pkg"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// BillingPaymentHandler handles HTTP requests for budget payments.

type BillingPaymentHandler struct {
	usecase  usecase.IBillingPaymentUseCase
	mockMode bool
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase, mockMode bool) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePaymentByBudgetRequestID godoc
// @Summary      Pay for an approved budget request
// @Description  Charges the stored budget total through Mercado Pago and records the payment.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        budget_request_id  path      int                                  true  "Budget request id"
// @Param        payload            body      request.BillingPaymentCreateRequest  true  "Mercado Pago payload"
// @Success      200                {object}  response.BillingPaymentResponse
// @Failure      400                {object}  pkg.HTTPError
// @Failure      404                {object}  pkg.HTTPError
// @Failure      409                {object}  pkg.HTTPError
// @Router       /payments/{budget_request_id} [post]
func (h *BillingPaymentHandler) CreatePaymentByBudgetRequestID(c *gin.Context) {
	rawID := c.Param("budget_request_id")
	log.Printf("[payment][handler] create start budget_request_id=%s", rawID)
	id, ok := parseBudgetRequestID(c)
	if !ok {
		return
	}

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if h.mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload budget_request_id=%d err=%v", id, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload budget_request_id=%d err=%v", id, err)
			writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), id, mpPayload)
	if err != nil {
		log.Printf("[payment][handler] create failed budget_request_id=%d err=%v", id, err)
		writeError(c, mapBillingPaymentError(err))
		return
	}
	log.Printf("[payment][handler] create success budget_request_id=%d payment_id=%s status=%s", id, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPaymentByBudgetRequestID godoc
// @Summary      Latest payment of a budget request
// @Tags         payments
// @Produce      json
// @Param        budget_request_id  path      int  true  "Budget request id"
// @Success      200                {object}  response.BillingPaymentResponse
// @Failure      404                {object}  pkg.HTTPError
// @Router       /payments/{budget_request_id} [get]
func (h *BillingPaymentHandler) GetPaymentByBudgetRequestID(c *gin.Context) {
	id, ok := parseBudgetRequestID(c)
	if !ok {
		return
	}
	log.Printf("[payment][handler] get-by-budget-request start budget_request_id=%d", id)

	payments, err := h.usecase.ListByBudgetRequestID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get-by-budget-request failed budget_request_id=%d err=%v", id, err)
		writeError(c, mapBillingPaymentError(err))
		return
	}

	if len(payments) == 0 {
		log.Printf("[payment][handler] get-by-budget-request not-found budget_request_id=%d", id)
		writeError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[payment][handler] get-by-budget-request success budget_request_id=%d payment_id=%s status=%s", id, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

func parseBudgetRequestID(c *gin.Context) (int64, bool) {
	raw := c.Param("budget_request_id")
	if raw == "" {
		raw = c.Param("id")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid budget request id", http.StatusBadRequest))
		return 0, false
	}
	return id, true
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetRequestID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrBudgetRequestNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_REQUEST_NOT_FOUND", "Budget request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetRequestNotApproved):
		return pkg.NewDomainErrorSimple("BUDGET_REQUEST_NOT_APPROVED", "Budget request not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
