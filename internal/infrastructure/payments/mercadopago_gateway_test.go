package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	if _, err := NewMercadoPagoGateway("  "); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}

	g, err := NewMercadoPagoGateway("TEST-123")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !g.sandbox {
		t.Fatalf("expected sandbox gateway for TEST- token")
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
