package models

import (
	"strings"

	"gorm.io/gorm"
)

// Client is the party a contract is signed with.
type Client struct {
	DefaultModel
	Name        string `gorm:"not null"`
	ContactInfo string `gorm:"size:500"`
}

func (c *Client) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.ContactInfo = strings.TrimSpace(c.ContactInfo)

	return nil
}

func (c *Client) AfterSave(_ *gorm.DB) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameEmpty
	}

	return nil
}
