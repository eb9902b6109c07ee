package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/contract-ledger/backend/internal/models"
	ez_uuid "github.com/contract-ledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentEditable struct {
	ContractID  uuid.UUID       `json:"contract_id" example:"0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"`                                             // The contract the payment is for
	Date        time.Time       `json:"date" example:"2024-06-28T00:00:00Z"`                                                                    // Date of the payment
	Amount      decimal.Decimal `json:"amount" example:"25000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The amount received
	PaymentType string          `json:"payment_type" example:"advance" default:""`                                                              // Type of the payment
}

func (editable PaymentEditable) model() models.Payment {
	return models.Payment{
		ContractID:  editable.ContractID,
		Date:        editable.Date,
		Amount:      editable.Amount,
		PaymentType: strings.TrimSpace(editable.PaymentType),
	}
}

type PaymentLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/payments/8d3b6c1f-2a44-4b9e-9f61-0c5e7d2a1b33"`      // The payment itself
	Contract string `json:"contract" example:"https://example.com/api/v1/contracts/0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"` // The contract the payment is for
}

type Payment struct {
	models.DefaultModel
	PaymentEditable
	Links PaymentLinks `json:"links"`
}

func newPayment(c *gin.Context, model models.Payment) Payment {
	url := c.GetString(string(models.DBContextURL))

	return Payment{
		DefaultModel: model.DefaultModel,
		PaymentEditable: PaymentEditable{
			ContractID:  model.ContractID,
			Date:        model.Date,
			Amount:      model.Amount,
			PaymentType: model.PaymentType,
		},
		Links: PaymentLinks{
			Self:     fmt.Sprintf("%s/v1/payments/%s", url, model.ID),
			Contract: fmt.Sprintf("%s/v1/contracts/%s", url, model.ContractID),
		},
	}
}

type PaymentResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Payment `json:"data"`                                                          // The resource
}

type PaymentListResponse struct {
	Data       []Payment   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PaymentQueryFilter struct {
	ContractID  ez_uuid.UUID    `form:"contract"`                   // By contract ID
	PaymentType string          `form:"payment_type"`               // By payment type
	Amount      decimal.Decimal `form:"amount"`                     // By exact amount
	Offset      uint            `form:"offset" filterField:"false"` // The offset of the first payment returned. Defaults to 0.
	Limit       int             `form:"limit" filterField:"false"`  // Maximum number of payments to return. Defaults to 50.
	DateRange
}

// model returns the resource to filter by. Only the fields set in the
// query string are used.
func (f PaymentQueryFilter) model() models.Payment {
	return PaymentEditable{
		ContractID:  f.ContractID.UUID,
		PaymentType: f.PaymentType,
		Amount:      f.Amount,
	}.model()
}
