package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"orcamento_api/internal/domain/entities"
	"orcamento_api/internal/usecase/interfaces"
	"sync"
	"time"
)

//go:generate mockgen -source=cost_factors_usecase.go -destination=../adapter/http/handlers/mocks/cost_factors_usecase_mock.go -package=mocks

var (
	ErrInvalidCostFactors  = errors.New("invalid cost factors")
	ErrCostFactorsConflict = errors.New("cost factors were modified concurrently")
)

// ICostFactorsUseCase exposes the singleton cost factors.
//
//   - GetCurrent lazily creates the defaults on first access.
//   - Update replaces every value, keeping the record identity.

type ICostFactorsUseCase interface {
	GetCurrent(ctx context.Context) (entities.CostFactors, error)
	Update(ctx context.Context, f entities.CostFactors) (entities.CostFactors, error)
}

// CostFactorsCacheTTL bounds how long another instance's update can go unseen.
const CostFactorsCacheTTL = 15 * time.Second

// CostFactorsUseCase caches the current factors in memory for at most ttl. The
// repository's conditional write keeps creation at-most-once across processes;
// the mutex keeps this process from racing itself.
type CostFactorsUseCase struct {
	repo interfaces.ICostFactorsRepository
	now  func() time.Time
	ttl  time.Duration

	mu       sync.RWMutex
	cached   *entities.CostFactors
	loadedAt time.Time
}

var _ ICostFactorsUseCase = (*CostFactorsUseCase)(nil)

func NewCostFactorsUseCase(repo interfaces.ICostFactorsRepository) *CostFactorsUseCase {
	return &CostFactorsUseCase{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		ttl:  CostFactorsCacheTTL,
	}
}

// fresh must be called with u.mu held.
func (u *CostFactorsUseCase) fresh() bool {
	return u.cached != nil && u.now().Sub(u.loadedAt) < u.ttl
}

// setCached must be called with u.mu held for writing.
func (u *CostFactorsUseCase) setCached(f *entities.CostFactors) {
	u.cached = f
	u.loadedAt = u.now()
}

func (u *CostFactorsUseCase) GetCurrent(ctx context.Context) (entities.CostFactors, error) {
	u.mu.RLock()
	if u.fresh() {
		f := *u.cached
		u.mu.RUnlock()
		return f, nil
	}
	u.mu.RUnlock()

	u.mu.Lock()
	defer u.mu.Unlock()
	if u.fresh() {
		return *u.cached, nil
	}

	f, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.CostFactors{}, err
	}
	if !found {
		defaults := entities.DefaultCostFactors()
		defaults.UpdatedAt = u.now()
		f, err = u.repo.CreateIfAbsent(ctx, defaults)
		if err != nil {
			return entities.CostFactors{}, err
		}
		log.Printf("[cost-factors][usecase] singleton initialized version=%d", f.Version)
	}

	u.setCached(&f)
	return f, nil
}

// Update replaces the stored factors with f.
//
// f.Version is the version the caller last read; zero skips the check.
func (u *CostFactorsUseCase) Update(ctx context.Context, f entities.CostFactors) (entities.CostFactors, error) {
	if err := f.Validate(); err != nil {
		return entities.CostFactors{}, fmt.Errorf("%w: %v", ErrInvalidCostFactors, err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	current, found, err := u.repo.Get(ctx)
	if err != nil {
		return entities.CostFactors{}, err
	}

	var expected int64
	if found {
		expected = current.Version
		if f.Version != 0 && f.Version != current.Version {
			log.Printf("[cost-factors][usecase] stale update rejected client_version=%d stored_version=%d", f.Version, current.Version)
			u.setCached(&current)
			return entities.CostFactors{}, ErrCostFactorsConflict
		}
	}

	f.ID = entities.CostFactorsID
	f.Version = expected + 1
	f.UpdatedAt = u.now()

	stored, err := u.repo.Replace(ctx, f, expected)
	if err != nil {
		if errors.Is(err, interfaces.ErrCostFactorsVersionConflict) {
			u.setCached(nil)
			return entities.CostFactors{}, ErrCostFactorsConflict
		}
		return entities.CostFactors{}, err
	}

	u.setCached(&stored)
	log.Printf("[cost-factors][usecase] updated version=%d", stored.Version)
	return stored, nil
}
