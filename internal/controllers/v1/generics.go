package v1

import (
	"github.com/contract-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Supplier | models.Client | models.Contract | models.Payment | models.Invoice | models.Cost | models.FixedCost](co Controller, c *gin.Context, resource R, options gin.HandlerFunc) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	options(c)
}
