package interfaces

import (
	"context"
	"errors"
	"orcamento_api/internal/domain/entities"
)

//go:generate mockgen -source=cost_factors_repository_interface.go -destination=mocks/cost_factors_repository_mock.go -package=mock_interfaces

// ErrCostFactorsVersionConflict is returned by Replace when the stored version
// is not the expected one.
var ErrCostFactorsVersionConflict = errors.New("cost factors version conflict")

// ICostFactorsRepository persists the singleton cost factors record.
//
//   - Get returns found=false when no record exists yet.
//   - CreateIfAbsent writes f only when no record exists and returns the record
//     that is stored afterwards (f, or the one a concurrent writer created).
//   - Replace overwrites the record when its version equals expectedVersion
//     (0 means the record must not exist yet).

type ICostFactorsRepository interface {
	Get(ctx context.Context) (f entities.CostFactors, found bool, err error)
	CreateIfAbsent(ctx context.Context, f entities.CostFactors) (entities.CostFactors, error)
	Replace(ctx context.Context, f entities.CostFactors, expectedVersion int64) (entities.CostFactors, error)
}
