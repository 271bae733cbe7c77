package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"orcamento_api/internal/domain/entities"
	mock_interfaces "orcamento_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func approvedRequest() entities.BudgetRequest {
	return entities.BudgetRequest{
		ID:          7,
		Client:      entities.ClientContact{Name: "Maria", Email: "maria@example.com"},
		TotalBudget: 227000,
		Status:      entities.BudgetRequestStatusApproved,
	}
}

func TestBillingPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("invalid budget request id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), 0, json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidBudgetRequestID) {
			t.Fatalf("expected ErrInvalidBudgetRequestID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), 7, nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{})
		_, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewBillingPaymentUseCase(nil, requestRepo, nil, PaymentOptions{})

		_, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_BudgetRequestChecks(t *testing.T) {
	t.Run("repository returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, requestRepo, gateway, PaymentOptions{})

		requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.BudgetRequest{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("budget request not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, requestRepo, gateway, PaymentOptions{})

		requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.BudgetRequest{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrBudgetRequestNotFound) {
			t.Fatalf("expected ErrBudgetRequestNotFound, got %v", err)
		}
	})

	t.Run("budget request not approved, even in mock mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewBillingPaymentUseCase(nil, requestRepo, nil, PaymentOptions{MockMode: true})

		pending := approvedRequest()
		pending.Status = entities.BudgetRequestStatusPending
		requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(pending, nil)

		_, err := uc.CreateAndApprove(context.Background(), 7, nil)
		if !errors.Is(err, ErrBudgetRequestNotApproved) {
			t.Fatalf("expected ErrBudgetRequestNotApproved, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, requestRepo, gateway, PaymentOptions{})

		requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(approvedRequest(), nil)

		_, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer without client email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, requestRepo, gateway, PaymentOptions{})

		req := approvedRequest()
		req.Client.Email = ""
		requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(req, nil)

		_, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("json array payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, requestRepo, gateway, PaymentOptions{})

		requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(approvedRequest(), nil)

		_, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`[1,2]`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_Success(t *testing.T) {
	t.Run("amount comes from the stored budget and payer from the client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, requestRepo, gateway, PaymentOptions{})

		requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(approvedRequest(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("gateway got invalid payload: %v", err)
				}
				if m["transaction_amount"] != float64(227000) {
					t.Fatalf("expected transaction_amount 227000, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "7" {
					t.Fatalf("expected external_reference 7, got %v", m["external_reference"])
				}
				payer := m["payer"].(map[string]any)
				if payer["email"] != "maria@example.com" {
					t.Fatalf("expected payer email from client, got %v", payer["email"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) { return p, nil })

		// The client-sent amount must be ignored.
		got, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != "mp-1" || got.BudgetRequestID != 7 || got.Amount != 227000 {
			t.Fatalf("unexpected payment: %+v", got)
		}
		if got.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved status, got %s", got.Status)
		}
		if got.MPPayload["id"] != "mp-1" {
			t.Fatalf("expected parsed provider payload, got %v", got.MPPayload)
		}
	})

	t.Run("sandbox maps configured test user id to e-mail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		opts := PaymentOptions{AccessToken: "TEST-123", TestPayerUserID: "555", TestPayerEmail: "sandbox@testuser.com"}
		uc := NewBillingPaymentUseCase(repo, requestRepo, gateway, opts)

		requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(approvedRequest(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				_ = json.Unmarshal(payload, &m)
				payer := m["payer"].(map[string]any)
				if payer["email"] != "sandbox@testuser.com" {
					t.Fatalf("expected sandbox e-mail, got %v", payer["email"])
				}
				if _, ok := payer["id"]; ok {
					t.Fatalf("expected payer id to be removed, got %v", payer["id"])
				}
				return "mp-2", "in_process", json.RawMessage(`{"id":"mp-2"}`), nil
			})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) { return p, nil })

		got, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"555"}}`))
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending status for in_process, got %s", got.Status)
		}
	})

	t.Run("mock mode skips the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, requestRepo, nil, PaymentOptions{MockMode: true})

		requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(approvedRequest(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) { return p, nil })

		got, err := uc.CreateAndApprove(context.Background(), 7, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID == "" || got.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected mock payment: %+v", got)
		}
		if got.MPPayload["transaction_amount"] != float64(227000) {
			t.Fatalf("expected mock payload to carry the budget total, got %v", got.MPPayload["transaction_amount"])
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(nil, requestRepo, gateway, PaymentOptions{})

			requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(approvedRequest(), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		requestRepo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, requestRepo, gateway, PaymentOptions{})

		requestRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(approvedRequest(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateAndApprove(context.Background(), 7, json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Queries(t *testing.T) {
	t.Run("get by id validates and maps not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, PaymentOptions{})

		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}

		repo.EXPECT().GetByID(gomock.Any(), "mp-1").Return(entities.BillingPayment{}, nil)
		if _, err := uc.GetByID(context.Background(), "mp-1"); !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("list by budget request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		uc := NewBillingPaymentUseCase(repo, nil, nil, PaymentOptions{})

		if _, err := uc.ListByBudgetRequestID(context.Background(), -1); !errors.Is(err, ErrInvalidBudgetRequestID) {
			t.Fatalf("expected ErrInvalidBudgetRequestID, got %v", err)
		}

		repo.EXPECT().ListByBudgetRequestID(gomock.Any(), int64(7)).Return([]entities.BillingPayment{{ID: "mp-1"}}, nil)
		got, err := uc.ListByBudgetRequestID(context.Background(), 7)
		if err != nil || len(got) != 1 {
			t.Fatalf("expected one payment, got %v err=%v", got, err)
		}
	})
}
