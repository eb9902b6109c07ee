package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/contract-ledger/backend/internal/models"
	ez_uuid "github.com/contract-ledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CostEditable struct {
	ContractID  uuid.UUID       `json:"contract_id" example:"0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"`                                              // The contract the cost is booked on
	CostType    string          `json:"cost_type" example:"material" default:""`                                                                 // Type of the cost
	Amount      decimal.Decimal `json:"amount" example:"1250.5" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount of the cost
	CostDate    time.Time       `json:"cost_date" example:"2024-06-01T00:00:00Z"`                                                                // Date of the cost
	Description string          `json:"description" example:"Rebar, 2 tons" default:""`                                                          // Description of the cost
}

func (editable CostEditable) model() models.Cost {
	return models.Cost{
		ContractID:  editable.ContractID,
		CostType:    strings.TrimSpace(editable.CostType),
		Amount:      editable.Amount,
		CostDate:    editable.CostDate,
		Description: strings.TrimSpace(editable.Description),
	}
}

type CostLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/costs/5e0c2f4a-7b1d-4c3e-8a9f-6d2b1c0e9f87"`         // The cost itself
	Contract string `json:"contract" example:"https://example.com/api/v1/contracts/0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"` // The contract the cost is booked on
}

type Cost struct {
	models.DefaultModel
	CostEditable
	Links CostLinks `json:"links"`
}

func newCost(c *gin.Context, model models.Cost) Cost {
	url := c.GetString(string(models.DBContextURL))

	return Cost{
		DefaultModel: model.DefaultModel,
		CostEditable: CostEditable{
			ContractID:  model.ContractID,
			CostType:    model.CostType,
			Amount:      model.Amount,
			CostDate:    model.CostDate,
			Description: model.Description,
		},
		Links: CostLinks{
			Self:     fmt.Sprintf("%s/v1/costs/%s", url, model.ID),
			Contract: fmt.Sprintf("%s/v1/contracts/%s", url, model.ContractID),
		},
	}
}

type CostResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Cost   `json:"data"`                                                          // The resource
}

type CostListResponse struct {
	Data       []Cost      `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CostQueryFilter struct {
	ContractID  ez_uuid.UUID    `form:"contract"`                        // By contract ID
	CostType    string          `form:"cost_type" filterField:"false"`   // By cost type, supports * wildcards
	Description string          `form:"description" filterField:"false"` // By description
	Amount      decimal.Decimal `form:"amount"`                          // By exact amount
	Offset      uint            `form:"offset" filterField:"false"`      // The offset of the first cost returned. Defaults to 0.
	Limit       int             `form:"limit" filterField:"false"`       // Maximum number of costs to return. Defaults to 50.
	DateRange
}

func (f CostQueryFilter) model() models.Cost {
	return CostEditable{
		ContractID: f.ContractID.UUID,
		Amount:     f.Amount,
	}.model()
}

// costTypeFilter filters by cost type. Patterns containing a * are
// matched against all cost types in use.
func costTypeFilter(db, q *gorm.DB, pattern string) (*gorm.DB, error) {
	if pattern == "" {
		return q, nil
	}

	if !strings.Contains(pattern, glob.GLOB) {
		return q.Where("costs.cost_type = ?", pattern), nil
	}

	var costTypes []string
	err := db.Model(&models.Cost{}).Distinct().Pluck("cost_type", &costTypes).Error
	if err != nil {
		return q, err
	}

	matching := make([]string, 0, len(costTypes))
	for _, costType := range costTypes {
		if glob.Glob(pattern, costType) {
			matching = append(matching, costType)
		}
	}

	return q.Where("costs.cost_type IN ?", matching), nil
}
