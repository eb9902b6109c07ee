package models

import (
	"strings"
	"time"

	"github.com/contract-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var maxCompletionRate = decimal.NewFromInt(100)

// Contract is a signed agreement with a client.
//
// Payments, invoices and costs belong to exactly one contract and
// are deleted together with it.
type Contract struct {
	DefaultModel
	ProjectName    string              `gorm:"not null"`
	ContractNumber string              `gorm:"uniqueIndex;not null"`
	TotalAmount    decimal.Decimal     `gorm:"type:DECIMAL(20,8);not null"`
	ClientID       *uuid.UUID          `gorm:"index"`
	Client         *Client             `gorm:"constraint:OnDelete:RESTRICT"`
	SignDate       *time.Time          `gorm:"type:date"`
	CompletionRate decimal.NullDecimal `gorm:"type:DECIMAL(5,2);index"` // Percentage, 0 - 100. Not set means 0.
	Suppliers      []Supplier          `gorm:"many2many:contract_suppliers"`
	Payments       []Payment           `gorm:"constraint:OnDelete:CASCADE"`
	Invoices       []Invoice           `gorm:"constraint:OnDelete:CASCADE"`
	Costs          []Cost              `gorm:"constraint:OnDelete:CASCADE"`
}

func (c *Contract) BeforeSave(_ *gorm.DB) error {
	c.ProjectName = strings.TrimSpace(c.ProjectName)
	c.ContractNumber = strings.TrimSpace(c.ContractNumber)

	return nil
}

// AfterSave validates the contract. It runs after updates have been
// assigned to the model, so it sees the final values for both
// creates and updates.
func (c *Contract) AfterSave(_ *gorm.DB) error {
	if strings.TrimSpace(c.ProjectName) == "" {
		return ErrNameEmpty
	}

	if strings.TrimSpace(c.ContractNumber) == "" {
		return ErrContractNumberEmpty
	}

	if !c.TotalAmount.IsPositive() {
		return ErrContractAmountNotPositive
	}

	if c.CompletionRate.Valid && (c.CompletionRate.Decimal.IsNegative() || c.CompletionRate.Decimal.GreaterThan(maxCompletionRate)) {
		return ErrCompletionRateOutOfRange
	}

	return nil
}

// Completion returns the completion rate in percent. A contract without
// a completion rate is 0 % complete.
func (c Contract) Completion() decimal.Decimal {
	return types.DecimalOrZero(c.CompletionRate)
}

// Weight is the basis for distributing fixed costs: the total amount
// multiplied with the completion fraction.
func (c Contract) Weight() decimal.Decimal {
	return types.PercentOf(c.TotalAmount, c.CompletionRate)
}

// TotalPayments returns the sum of all payments. The contract's
// payments must be loaded.
func (c Contract) TotalPayments() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range c.Payments {
		sum = sum.Add(p.Amount)
	}
	return sum
}

// TotalInvoices returns the sum of all invoiced amounts. The contract's
// invoices must be loaded.
func (c Contract) TotalInvoices() decimal.Decimal {
	sum := decimal.Zero
	for _, i := range c.Invoices {
		sum = sum.Add(i.Amount)
	}
	return sum
}

// TotalCosts returns the sum of all costs. The contract's costs must be loaded.
func (c Contract) TotalCosts() decimal.Decimal {
	sum := decimal.Zero
	for _, cost := range c.Costs {
		sum = sum.Add(cost.Amount)
	}
	return sum
}

// RemainingPayment returns the part of the total amount the client has
// not paid yet. It is negative when more was paid than agreed on.
func (c Contract) RemainingPayment() decimal.Decimal {
	return c.TotalAmount.Sub(c.TotalPayments())
}

// RemainingInvoice returns the part of the total amount not invoiced yet.
func (c Contract) RemainingInvoice() decimal.Decimal {
	return c.TotalAmount.Sub(c.TotalInvoices())
}

// IsOverBudget reports if the costs exceed the total amount. Costs
// equal to the total amount are within budget.
func (c Contract) IsOverBudget() bool {
	return c.TotalCosts().GreaterThan(c.TotalAmount)
}
