// Package v1 implements the v1 HTTP API.
package v1

import (
	"github.com/contract-ledger/backend/internal/allocation"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all v1 handlers.
type Controller struct {
	DB     *gorm.DB
	Engine *allocation.Engine
}
