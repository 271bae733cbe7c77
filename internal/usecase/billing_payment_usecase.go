package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"
)

//go:generate mockgen -source=billing_payment_usecase.go -destination=../adapter/http/handlers/mocks/billing_payment_usecase_mock.go -package=mocks

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrBudgetRequestNotApproved       = errors.New("budget request not approved")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IBillingPaymentUseCase charges the client for an approved budget request.
//
// A successful payment unlocks the detailed breakdown on the client side; the
// backend only records it.

type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, budgetRequestID int64, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByBudgetRequestID(ctx context.Context, budgetRequestID int64) ([]entities.BillingPayment, error)
}

// PaymentOptions carries the gateway settings the use case needs to shape
// sandbox payloads.
type PaymentOptions struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

func (o PaymentOptions) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(o.AccessToken), "TEST-")
}

type BillingPaymentUseCase struct {
	repo        interfaces.IBillingPaymentRepository
	requestRepo interfaces.IBudgetRequestRepository
	gateway     interfaces.IPaymentGateway
	opts        PaymentOptions
	now         func() time.Time
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, requestRepo interfaces.IBudgetRequestRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		repo:        repo,
		requestRepo: requestRepo,
		gateway:     gateway,
		opts:        opts,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, budgetRequestID int64, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start budget_request_id=%d payload_len=%d", budgetRequestID, len(mpPayload))
	mockMode := u.opts.MockMode
	if budgetRequestID <= 0 {
		return entities.BillingPayment{}, ErrInvalidBudgetRequestID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload budget_request_id=%d", budgetRequestID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	req, err := u.requestRepo.GetByID(ctx, budgetRequestID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading budget request id=%d err=%v", budgetRequestID, err)
		return entities.BillingPayment{}, err
	}
	if req.ID == 0 {
		return entities.BillingPayment{}, ErrBudgetRequestNotFound
	}
	if req.Status != entities.BudgetRequestStatusApproved {
		log.Printf("[payment][usecase] budget request not approved id=%d status=%s", req.ID, req.Status)
		return entities.BillingPayment{}, ErrBudgetRequestNotApproved
	}

	reference := strconv.FormatInt(req.ID, 10)

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil {
		// Valid JSON that is not an object (array, string, number).
		if !mockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id budget_request_id=%d", req.ID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap, req.Client)
		if !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer budget_request_id=%d", req.ID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = reference
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orçamento detalhado #%d", req.ID)
	}
	// The stored budget total is the only source for the amount.
	reqMap["transaction_amount"] = req.TotalBudget
	if b, err := json.Marshal(reqMap); err == nil {
		mpPayload = b
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway budget_request_id=%d", req.ID)
		providerPaymentID, providerStatus, providerResp, err = u.mockPayment(reqMap)
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		err = classifyGatewayError(err)
	}
	if err != nil {
		log.Printf("[payment][usecase] payment gateway failed budget_request_id=%d err=%v", req.ID, err)
		return entities.BillingPayment{}, err
	}
	log.Printf("[payment][usecase] payment gateway success budget_request_id=%d provider_payment_id=%s provider_status=%s", req.ID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed budget_request_id=%d err=%v", req.ID, err)
	}

	p := entities.BillingPayment{
		ID:              providerPaymentID,
		BudgetRequestID: req.ID,
		Amount:          req.TotalBudget,
		Date:            u.now(),
		Status:          paymentStatusFromProvider(providerStatus),
		MPPayloadRaw:    providerResp,
		MPPayload:       parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed budget_request_id=%d payment_id=%s err=%v", req.ID, p.ID, err)
		return entities.BillingPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success budget_request_id=%d payment_id=%s status=%s", req.ID, created.ID, created.Status)
	return created, nil
}

func (u *BillingPaymentUseCase) mockPayment(reqMap map[string]any) (string, string, json.RawMessage, error) {
	now := u.now()
	id := strconv.FormatInt(now.UnixNano(), 10)

	resp := make(map[string]any, len(reqMap)+5)
	for k, v := range reqMap {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills the payer from the budget request contact when the
// caller sent none. In sandbox the configured test payer wins, since Mercado
// Pago rejects real e-mails there.
func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any, client entities.ClientContact) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		if m["payer"] != nil {
			return
		}
		payer = map[string]any{}
		m["payer"] = payer
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	switch {
	case u.opts.sandbox() && strings.TrimSpace(u.opts.TestPayerEmail) != "":
		payer["email"] = strings.TrimSpace(u.opts.TestPayerEmail)
	case u.opts.sandbox():
		payer["email"] = "test_user_br@testuser.com"
	case strings.TrimSpace(client.Email) != "":
		payer["email"] = strings.TrimSpace(client.Email)
	}
}

// normalizeSandboxPayer swaps the configured sandbox test user id for its
// e-mail, which is what the sandbox accepts.
func (u *BillingPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.opts.sandbox() {
		return
	}

	userID := strings.TrimSpace(u.opts.TestPayerUserID)
	email := strings.TrimSpace(u.opts.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func classifyGatewayError(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByBudgetRequestID(ctx context.Context, budgetRequestID int64) ([]entities.BillingPayment, error) {
	if budgetRequestID <= 0 {
		return nil, ErrInvalidBudgetRequestID
	}
	return u.repo.ListByBudgetRequestID(ctx, budgetRequestID)
}
