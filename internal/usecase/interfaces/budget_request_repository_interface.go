package interfaces

import (
	"context"
	"orcamento_api/internal/domain/entities"
)

//go:generate mockgen -source=budget_request_repository_interface.go -destination=mocks/budget_request_repository_mock.go -package=mock_interfaces

// IBudgetRequestRepository abstracts DynamoDB persistence for BudgetRequest.
//
// Lookups that find nothing return a zero-value BudgetRequest (ID == 0) and a
// nil error; the use case turns that into ErrBudgetRequestNotFound.

type IBudgetRequestRepository interface {
	Create(ctx context.Context, r entities.BudgetRequest) (entities.BudgetRequest, error)
	GetByID(ctx context.Context, id int64) (entities.BudgetRequest, error)
	List(ctx context.Context) ([]entities.BudgetRequest, error)
	ListByStatus(ctx context.Context, status entities.BudgetRequestStatus) ([]entities.BudgetRequest, error)
	UpdateStatus(ctx context.Context, id int64, status entities.BudgetRequestStatus, notes string) (entities.BudgetRequest, error)
	CountByStatus(ctx context.Context, status entities.BudgetRequestStatus) (int64, error)
	SumTotalBudgetByStatus(ctx context.Context, status entities.BudgetRequestStatus) (float64, error)
}
