package allocation

import (
	"context"
	"fmt"

	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Store is the persistence the Engine works on.
type Store interface {
	// Transaction runs fn in a transaction. If fn returns an error,
	// all changes made through the Store passed to fn are rolled back.
	Transaction(ctx context.Context, fn func(tx Store) error) error

	// FixedCosts returns all fixed costs of the category booked for the month.
	FixedCosts(ctx context.Context, month types.Month, category string) ([]models.FixedCost, error)

	// EligibleContracts returns all contracts with a completion rate above 0.
	EligibleContracts(ctx context.Context) ([]models.Contract, error)

	// AllocationExists reports if costs of the cost type have already been
	// booked for the month.
	AllocationExists(ctx context.Context, month types.Month, costType string) (bool, error)

	// CreateCosts books the costs.
	CreateCosts(ctx context.Context, costs []models.Cost) error
}

// GormStore implements Store with gorm.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore returns a Store using the database.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Transaction runs fn in a database transaction. If the transaction
// cannot be started, models.ErrGeneral is returned.
func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	started := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		started = true
		return fn(&GormStore{db: tx})
	})

	if err != nil && !started {
		log.Error().Msgf("starting transaction failed: %T: %v", err, err)
		return models.ErrGeneral
	}

	return err
}

func (s *GormStore) FixedCosts(ctx context.Context, month types.Month, category string) ([]models.FixedCost, error) {
	var fixedCosts []models.FixedCost
	err := s.db.WithContext(ctx).
		Where("fixed_costs.month = ? AND fixed_costs.cost_type = ?", month, category).
		Order("fixed_costs.created_at ASC").
		Find(&fixedCosts).Error
	if err != nil {
		return nil, fmt.Errorf("getting fixed costs for %s and %s failed: %w", month, category, err)
	}

	return fixedCosts, nil
}

func (s *GormStore) EligibleContracts(ctx context.Context) ([]models.Contract, error) {
	var contracts []models.Contract
	err := s.db.WithContext(ctx).
		Where("contracts.completion_rate > 0").
		Order("contracts.created_at ASC, contracts.contract_number ASC").
		Find(&contracts).Error
	if err != nil {
		return nil, fmt.Errorf("getting contracts with a completion rate failed: %w", err)
	}

	return contracts, nil
}

func (s *GormStore) AllocationExists(ctx context.Context, month types.Month, costType string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Cost{}).
		Where("costs.cost_type = ? AND costs.cost_date = ?", costType, month.FirstDay()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking for existing allocations failed: %w", err)
	}

	return count > 0, nil
}

func (s *GormStore) CreateCosts(ctx context.Context, costs []models.Cost) error {
	if len(costs) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).Create(&costs).Error
	if err != nil {
		return fmt.Errorf("booking %d allocated costs failed: %w", len(costs), err)
	}

	return nil
}
