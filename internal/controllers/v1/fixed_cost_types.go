package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type FixedCostEditable struct {
	CostType    string          `json:"cost_type" example:"salary" default:""`                                                                  // Category of the fixed cost
	Amount      decimal.Decimal `json:"amount" example:"10000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount of the fixed cost
	CostDate    *time.Time      `json:"cost_date" example:"2024-06-25T00:00:00Z"`                                                               // Date the cost was incurred
	Description string          `json:"description" example:"Payroll June" default:""`                                                          // Description of the fixed cost
	Month       types.Month     `json:"month" example:"2024-06" swaggertype:"string"`                                                           // The month the fixed cost is allocated in
}

func (editable FixedCostEditable) model() models.FixedCost {
	return models.FixedCost{
		CostType:    strings.TrimSpace(editable.CostType),
		Amount:      editable.Amount,
		CostDate:    editable.CostDate,
		Description: strings.TrimSpace(editable.Description),
		Month:       editable.Month,
	}
}

type FixedCostLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/fixed-costs/9a7c3e21-6f4b-4d8a-b2c5-1e0f9d8c7b6a"` // The fixed cost itself
}

type FixedCost struct {
	models.DefaultModel
	FixedCostEditable
	Links FixedCostLinks `json:"links"`
}

func newFixedCost(c *gin.Context, model models.FixedCost) FixedCost {
	url := c.GetString(string(models.DBContextURL))

	return FixedCost{
		DefaultModel: model.DefaultModel,
		FixedCostEditable: FixedCostEditable{
			CostType:    model.CostType,
			Amount:      model.Amount,
			CostDate:    model.CostDate,
			Description: model.Description,
			Month:       model.Month,
		},
		Links: FixedCostLinks{
			Self: fmt.Sprintf("%s/v1/fixed-costs/%s", url, model.ID),
		},
	}
}

type FixedCostResponse struct {
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *FixedCost `json:"data"`                                                          // The resource
}

type FixedCostListResponse struct {
	Data       []FixedCost `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type FixedCostQueryFilter struct {
	Month       types.Month     `form:"month"`                           // By month, YYYY-MM
	CostType    string          `form:"cost_type"`                       // By category
	Description string          `form:"description" filterField:"false"` // By description
	Amount      decimal.Decimal `form:"amount"`                          // By exact amount
	Offset      uint            `form:"offset" filterField:"false"`      // The offset of the first fixed cost returned. Defaults to 0.
	Limit       int             `form:"limit" filterField:"false"`       // Maximum number of fixed costs to return. Defaults to 50.
}

func (f FixedCostQueryFilter) model() models.FixedCost {
	return FixedCostEditable{
		Month:    f.Month,
		CostType: f.CostType,
		Amount:   f.Amount,
	}.model()
}
