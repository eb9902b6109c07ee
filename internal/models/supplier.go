package models

import (
	"strings"

	"gorm.io/gorm"
)

// Supplier is a company delivering goods or services for contracts.
type Supplier struct {
	DefaultModel
	Name        string     `gorm:"not null"`
	ContactInfo string     `gorm:"size:500"`
	Contracts   []Contract `gorm:"many2many:contract_suppliers"`
}

func (s *Supplier) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.ContactInfo = strings.TrimSpace(s.ContactInfo)

	return nil
}

func (s *Supplier) AfterSave(_ *gorm.DB) error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrNameEmpty
	}

	return nil
}
