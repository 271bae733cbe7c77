package interfaces

import (
	"context"
	"orcamento_api/internal/domain/entities"
)

//go:generate mockgen -source=billing_payment_repository_interface.go -destination=mocks/billing_payment_repository_mock.go -package=mock_interfaces

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByBudgetRequestID(ctx context.Context, budgetRequestID int64) ([]entities.BillingPayment, error)
}
