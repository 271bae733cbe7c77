package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"orcamento_api/internal/domain/calculator"
	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"
	"strings"
	"time"
)

//go:generate mockgen -source=budget_usecase.go -destination=../adapter/http/handlers/mocks/budget_usecase_mock.go -package=mocks

var (
	ErrInvalidBudgetInputs = errors.New("invalid budget inputs")
	ErrInvalidClientData   = errors.New("invalid client data")
)

// IBudgetUseCase prices building parameters and records client submissions.

type IBudgetUseCase interface {
	Calculate(ctx context.Context, inputs entities.BudgetInputs) (entities.BudgetResponse, error)
	Submit(ctx context.Context, client entities.ClientContact, inputs entities.BudgetInputs) (entities.BudgetRequest, error)
}

type BudgetUseCase struct {
	factors ICostFactorsUseCase
	repo    interfaces.IBudgetRequestRepository
	now     func() time.Time
}

var _ IBudgetUseCase = (*BudgetUseCase)(nil)

func NewBudgetUseCase(factors ICostFactorsUseCase, repo interfaces.IBudgetRequestRepository) *BudgetUseCase {
	return &BudgetUseCase{factors: factors, repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *BudgetUseCase) Calculate(ctx context.Context, inputs entities.BudgetInputs) (entities.BudgetResponse, error) {
	if err := validateBudgetInputs(inputs); err != nil {
		return entities.BudgetResponse{}, err
	}

	factors, err := u.factors.GetCurrent(ctx)
	if err != nil {
		return entities.BudgetResponse{}, err
	}
	return calculator.Calculate(inputs, factors), nil
}

func (u *BudgetUseCase) Submit(ctx context.Context, client entities.ClientContact, inputs entities.BudgetInputs) (entities.BudgetRequest, error) {
	client.Name = strings.TrimSpace(client.Name)
	client.Email = strings.TrimSpace(client.Email)
	client.Phone = strings.TrimSpace(client.Phone)
	if client.Name == "" || client.Email == "" {
		return entities.BudgetRequest{}, ErrInvalidClientData
	}

	budget, err := u.Calculate(ctx, inputs)
	if err != nil {
		return entities.BudgetRequest{}, err
	}

	now := u.now()
	r := entities.BudgetRequest{
		Client:      client,
		Inputs:      inputs,
		TotalBudget: budget.Total,
		Status:      entities.BudgetRequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[budget][usecase] submit failed client_email=%s err=%v", client.Email, err)
		return entities.BudgetRequest{}, err
	}
	log.Printf("[budget][usecase] submitted id=%d total=%.2f", created.ID, created.TotalBudget)
	return created, nil
}

// validateBudgetInputs guards the calculator preconditions. The HTTP layer
// rejects most bad payloads earlier with field-level messages.
func validateBudgetInputs(in entities.BudgetInputs) error {
	switch {
	case in.Area <= 0:
		return fmt.Errorf("%w: area must be positive", ErrInvalidBudgetInputs)
	case in.FrameArea < 0, in.FloorArea < 0, in.CeilingArea < 0, in.RoofArea < 0:
		return fmt.Errorf("%w: areas cannot be negative", ErrInvalidBudgetInputs)
	case in.Bathrooms < 0 || in.Bathrooms > 20:
		return fmt.Errorf("%w: bathrooms must be between 0 and 20", ErrInvalidBudgetInputs)
	case in.WastePercentage < 0 || in.WastePercentage > 50:
		return fmt.Errorf("%w: waste percentage must be between 0 and 50", ErrInvalidBudgetInputs)
	}
	return nil
}
