package v1

import (
	"fmt"
	"strings"

	"github.com/contract-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type SupplierEditable struct {
	Name        string `json:"name" example:"Northern Steel Ltd." default:""`                   // Name of the supplier
	ContactInfo string `json:"contact_info" example:"orders@northern-steel.example" default:""` // How to reach the supplier
}

// model returns the database resource for the API representation of the editable fields
func (editable SupplierEditable) model() models.Supplier {
	return models.Supplier{
		Name:        strings.TrimSpace(editable.Name),
		ContactInfo: strings.TrimSpace(editable.ContactInfo),
	}
}

type SupplierLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/suppliers/61027ebb-ab75-4a49-9e23-a104ddd9ba6b"`                // The supplier itself
	Contracts string `json:"contracts" example:"https://example.com/api/v1/suppliers/61027ebb-ab75-4a49-9e23-a104ddd9ba6b/contracts"` // Contracts the supplier works on
}

type Supplier struct {
	models.DefaultModel
	SupplierEditable
	Links SupplierLinks `json:"links"`
}

func newSupplier(c *gin.Context, model models.Supplier) Supplier {
	url := c.GetString(string(models.DBContextURL))

	return Supplier{
		DefaultModel: model.DefaultModel,
		SupplierEditable: SupplierEditable{
			Name:        model.Name,
			ContactInfo: model.ContactInfo,
		},
		Links: SupplierLinks{
			Self:      fmt.Sprintf("%s/v1/suppliers/%s", url, model.ID),
			Contracts: fmt.Sprintf("%s/v1/suppliers/%s/contracts", url, model.ID),
		},
	}
}

type SupplierResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Supplier `json:"data"`                                                          // The resource
}

type SupplierListResponse struct {
	Data       []Supplier  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type SupplierQueryFilter struct {
	Name        string `form:"name" filterField:"false"`         // By name
	ContactInfo string `form:"contact_info" filterField:"false"` // By contact info
	Search      string `form:"search" filterField:"false"`       // By string in name or contact info
	Offset      uint   `form:"offset" filterField:"false"`       // The offset of the first supplier returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`        // Maximum number of suppliers to return. Defaults to 50.
}
