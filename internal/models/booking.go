package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment is money received for a contract.
type Payment struct {
	DefaultModel
	ContractID  uuid.UUID       `gorm:"index;not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8);not null"`
	PaymentType string          `gorm:"size:50"`
}

func (p *Payment) BeforeSave(_ *gorm.DB) error {
	p.PaymentType = strings.TrimSpace(p.PaymentType)
	p.Date = p.Date.In(time.UTC)

	return nil
}

func (p *Payment) AfterSave(_ *gorm.DB) error {
	return validateBooking(p.ContractID, p.Date, p.Amount)
}

// Invoice is an invoice issued for a contract.
type Invoice struct {
	DefaultModel
	ContractID  uuid.UUID       `gorm:"index;not null"`
	Date        time.Time       `gorm:"type:date;not null"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8);not null"`
	InvoiceType string          `gorm:"size:50"`
}

func (i *Invoice) BeforeSave(_ *gorm.DB) error {
	i.InvoiceType = strings.TrimSpace(i.InvoiceType)
	i.Date = i.Date.In(time.UTC)

	return nil
}

func (i *Invoice) AfterSave(_ *gorm.DB) error {
	return validateBooking(i.ContractID, i.Date, i.Amount)
}

// Cost is a cost booked on a contract.
//
// Costs created by the fixed cost allocation are regular costs, they
// are recognizable by their cost type prefix only.
type Cost struct {
	DefaultModel
	ContractID  uuid.UUID       `gorm:"index;not null"`
	CostType    string          `gorm:"size:100;not null;index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8);not null"`
	CostDate    time.Time       `gorm:"type:date"`
	Description string          `gorm:"size:500"`
}

func (c *Cost) BeforeSave(_ *gorm.DB) error {
	c.CostType = strings.TrimSpace(c.CostType)
	c.Description = strings.TrimSpace(c.Description)
	c.CostDate = c.CostDate.In(time.UTC)

	return nil
}

func (c *Cost) AfterSave(_ *gorm.DB) error {
	if strings.TrimSpace(c.CostType) == "" {
		return ErrCostTypeEmpty
	}

	if c.ContractID == uuid.Nil {
		return ErrContractNotSet
	}

	if c.Amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}

// AfterFind sets the timezone of the dates to UTC.
func (p *Payment) AfterFind(tx *gorm.DB) error {
	p.Date = p.Date.In(time.UTC)
	return p.DefaultModel.AfterFind(tx)
}

func (i *Invoice) AfterFind(tx *gorm.DB) error {
	i.Date = i.Date.In(time.UTC)
	return i.DefaultModel.AfterFind(tx)
}

func (c *Cost) AfterFind(tx *gorm.DB) error {
	c.CostDate = c.CostDate.In(time.UTC)
	return c.DefaultModel.AfterFind(tx)
}

func validateBooking(contractID uuid.UUID, date time.Time, amount decimal.Decimal) error {
	if contractID == uuid.Nil {
		return ErrContractNotSet
	}

	if date.IsZero() {
		return ErrDateNotSet
	}

	if amount.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
