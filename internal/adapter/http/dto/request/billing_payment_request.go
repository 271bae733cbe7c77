package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload of POST /payments/{budget_request_id}.
//
// `mp_payload` is forwarded to Mercado Pago after the amount and references are
// filled from the stored budget request. A bare Mercado Pago body is accepted too.

type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
