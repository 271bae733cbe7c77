package usecase

import (
	"context"
	"errors"
	"log"
	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"
	"sort"
	"strings"
)

//go:generate mockgen -source=budget_request_usecase.go -destination=../adapter/http/handlers/mocks/budget_request_usecase_mock.go -package=mocks

var (
	ErrBudgetRequestNotFound  = errors.New("budget request not found")
	ErrInvalidBudgetRequestID = errors.New("invalid budget request id")
	ErrInvalidStatus          = errors.New("invalid budget request status")
)

// IBudgetRequestUseCase is the admin review workflow over submitted budgets.

type IBudgetRequestUseCase interface {
	List(ctx context.Context) ([]entities.BudgetRequest, error)
	ListByStatus(ctx context.Context, status entities.BudgetRequestStatus) ([]entities.BudgetRequest, error)
	GetByID(ctx context.Context, id int64) (entities.BudgetRequest, error)
	UpdateStatus(ctx context.Context, id int64, status entities.BudgetRequestStatus, notes string) (entities.BudgetRequest, error)
	Stats(ctx context.Context) (entities.DashboardStats, error)
}

type BudgetRequestUseCase struct {
	repo interfaces.IBudgetRequestRepository
}

var _ IBudgetRequestUseCase = (*BudgetRequestUseCase)(nil)

func NewBudgetRequestUseCase(repo interfaces.IBudgetRequestRepository) *BudgetRequestUseCase {
	return &BudgetRequestUseCase{repo: repo}
}

// ParseStatus normalizes a status coming from a query string or body.
func ParseStatus(raw string) (entities.BudgetRequestStatus, error) {
	s := entities.BudgetRequestStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (u *BudgetRequestUseCase) List(ctx context.Context) ([]entities.BudgetRequest, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(items)
	return items, nil
}

func (u *BudgetRequestUseCase) ListByStatus(ctx context.Context, status entities.BudgetRequestStatus) ([]entities.BudgetRequest, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	items, err := u.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(items)
	return items, nil
}

func (u *BudgetRequestUseCase) GetByID(ctx context.Context, id int64) (entities.BudgetRequest, error) {
	if id <= 0 {
		return entities.BudgetRequest{}, ErrInvalidBudgetRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if r.ID == 0 {
		return entities.BudgetRequest{}, ErrBudgetRequestNotFound
	}
	return r, nil
}

func (u *BudgetRequestUseCase) UpdateStatus(ctx context.Context, id int64, status entities.BudgetRequestStatus, notes string) (entities.BudgetRequest, error) {
	if id <= 0 {
		return entities.BudgetRequest{}, ErrInvalidBudgetRequestID
	}
	if !status.Valid() {
		return entities.BudgetRequest{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status, strings.TrimSpace(notes))
	if err != nil {
		return entities.BudgetRequest{}, err
	}
	if updated.ID == 0 {
		return entities.BudgetRequest{}, ErrBudgetRequestNotFound
	}
	log.Printf("[budget-request][usecase] status updated id=%d status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *BudgetRequestUseCase) Stats(ctx context.Context) (entities.DashboardStats, error) {
	var stats entities.DashboardStats
	var err error

	if stats.PendingCount, err = u.repo.CountByStatus(ctx, entities.BudgetRequestStatusPending); err != nil {
		return entities.DashboardStats{}, err
	}
	if stats.ApprovedCount, err = u.repo.CountByStatus(ctx, entities.BudgetRequestStatusApproved); err != nil {
		return entities.DashboardStats{}, err
	}
	if stats.RejectedCount, err = u.repo.CountByStatus(ctx, entities.BudgetRequestStatusRejected); err != nil {
		return entities.DashboardStats{}, err
	}
	if stats.TotalApprovedBudget, err = u.repo.SumTotalBudgetByStatus(ctx, entities.BudgetRequestStatusApproved); err != nil {
		return entities.DashboardStats{}, err
	}
	return stats, nil
}

// sortNewestFirst orders by creation time descending; ties fall back to the
// higher id so the order is total.
func sortNewestFirst(items []entities.BudgetRequest) {
	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
}
