package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"orcamento_api/internal/domain/entities"
	mock_interfaces "orcamento_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleInputs() entities.BudgetInputs {
	return entities.BudgetInputs{
		Area:            100,
		WallType:        entities.WallTypeAlvenaria,
		FinishQuality:   entities.FinishQualityStandard,
		WallFinish:      entities.WallFinishPaint,
		FrameArea:       10,
		Bathrooms:       2,
		FloorArea:       80,
		CeilingArea:     80,
		CeilingType:     entities.CeilingTypePlaster,
		RoofType:        entities.RoofTypeCeramicTile,
		RoofArea:        100,
		FoundationType:  entities.FoundationTypeShallow,
		WastePercentage: 10,
	}
}

func TestBudgetUseCase_Calculate(t *testing.T) {
	t.Run("prices with the current factors", func(t *testing.T) {
		uc := NewBudgetUseCase(NewCostFactorsUseCase(&fakeCostFactorsStore{}), nil)

		res, err := uc.Calculate(context.Background(), sampleInputs())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(res.Items) != 13 || math.Abs(res.Total-227000) > 1e-6 {
			t.Fatalf("expected 13 items totalling 227000, got %d / %v", len(res.Items), res.Total)
		}
	})

	t.Run("rejects non-positive area", func(t *testing.T) {
		uc := NewBudgetUseCase(NewCostFactorsUseCase(&fakeCostFactorsStore{}), nil)

		in := sampleInputs()
		in.Area = 0
		if _, err := uc.Calculate(context.Background(), in); !errors.Is(err, ErrInvalidBudgetInputs) {
			t.Fatalf("expected ErrInvalidBudgetInputs, got %v", err)
		}
	})

	t.Run("propagates factor store failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICostFactorsRepository(ctrl)
		repo.EXPECT().Get(gomock.Any()).Return(entities.CostFactors{}, false, errors.New("db"))
		uc := NewBudgetUseCase(NewCostFactorsUseCase(repo), nil)

		if _, err := uc.Calculate(context.Background(), sampleInputs()); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBudgetUseCase_Submit(t *testing.T) {
	t.Run("persists a pending snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewBudgetUseCase(NewCostFactorsUseCase(&fakeCostFactorsStore{}), repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.BudgetRequest) (entities.BudgetRequest, error) {
				if r.Status != entities.BudgetRequestStatusPending {
					t.Fatalf("expected PENDING, got %s", r.Status)
				}
				if r.CreatedAt.IsZero() || r.CreatedAt.Location().String() != "UTC" {
					t.Fatalf("expected UTC createdAt, got %v", r.CreatedAt)
				}
				r.ID = 1
				return r, nil
			})

		got, err := uc.Submit(context.Background(), entities.ClientContact{Name: " Maria ", Email: "maria@example.com"}, sampleInputs())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got.ID != 1 || got.Client.Name != "Maria" || math.Abs(got.TotalBudget-227000) > 1e-6 {
			t.Fatalf("unexpected stored request: %+v", got)
		}
		if got.Inputs != sampleInputs() {
			t.Fatalf("expected inputs snapshot, got %+v", got.Inputs)
		}
	})

	t.Run("requires client name and email", func(t *testing.T) {
		uc := NewBudgetUseCase(NewCostFactorsUseCase(&fakeCostFactorsStore{}), nil)

		_, err := uc.Submit(context.Background(), entities.ClientContact{Name: " ", Email: "x@y.com"}, sampleInputs())
		if !errors.Is(err, ErrInvalidClientData) {
			t.Fatalf("expected ErrInvalidClientData, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIBudgetRequestRepository(ctrl)
		uc := NewBudgetUseCase(NewCostFactorsUseCase(&fakeCostFactorsStore{}), repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.BudgetRequest{}, errors.New("db"))

		if _, err := uc.Submit(context.Background(), entities.ClientContact{Name: "Maria", Email: "maria@example.com"}, sampleInputs()); err == nil {
			t.Fatalf("expected error")
		}
	})
}
