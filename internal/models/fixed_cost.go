package models

import (
	"strings"
	"time"

	"github.com/contract-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FixedCost is a cost that is not tied to a contract, e.g. payroll.
//
// Fixed costs are booked per month. All fixed costs of the same month and
// cost type are distributed together by the fixed cost allocation.
type FixedCost struct {
	DefaultModel
	CostType    string          `gorm:"size:100;not null;index:fixed_cost_month_type"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8);not null"`
	CostDate    *time.Time      `gorm:"type:date"`
	Description string          `gorm:"size:500"`
	Month       types.Month     `gorm:"not null;index:fixed_cost_month_type"`
}

func (f *FixedCost) BeforeSave(_ *gorm.DB) error {
	f.CostType = strings.TrimSpace(f.CostType)
	f.Description = strings.TrimSpace(f.Description)

	return nil
}

func (f *FixedCost) AfterSave(_ *gorm.DB) error {
	if strings.TrimSpace(f.CostType) == "" {
		return ErrCostTypeEmpty
	}

	if f.Month.IsZero() {
		return ErrMonthNotSet
	}

	if f.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
