package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// BillingPayment is a client payment that unlocks an approved budget.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (budget_request_id-index): budget_request_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the provider body (JSON) for traceability/audit.
//   - MPPayload is the parsed representation, useful for querying/debugging.

type BillingPayment struct {
	ID              string        `json:"id"`
	BudgetRequestID int64         `json:"budget_request_id"`
	Amount          float64       `json:"amount"`
	Date            time.Time     `json:"date"`
	Status          PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
