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

type InvoiceEditable struct {
	ContractID  uuid.UUID       `json:"contract_id" example:"0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"`                                             // The contract the invoice is for
	Date        time.Time       `json:"date" example:"2024-06-28T00:00:00Z"`                                                                    // Date of the invoice
	Amount      decimal.Decimal `json:"amount" example:"25000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // The invoiced amount
	InvoiceType string          `json:"invoice_type" example:"partial" default:""`                                                              // Type of the invoice
}

func (editable InvoiceEditable) model() models.Invoice {
	return models.Invoice{
		ContractID:  editable.ContractID,
		Date:        editable.Date,
		Amount:      editable.Amount,
		InvoiceType: strings.TrimSpace(editable.InvoiceType),
	}
}

type InvoiceLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/invoices/8d3b6c1f-2a44-4b9e-9f61-0c5e7d2a1b33"`      // The invoice itself
	Contract string `json:"contract" example:"https://example.com/api/v1/contracts/0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"` // The contract the invoice is for
}

type Invoice struct {
	models.DefaultModel
	InvoiceEditable
	Links InvoiceLinks `json:"links"`
}

func newInvoice(c *gin.Context, model models.Invoice) Invoice {
	url := c.GetString(string(models.DBContextURL))

	return Invoice{
		DefaultModel: model.DefaultModel,
		InvoiceEditable: InvoiceEditable{
			ContractID:  model.ContractID,
			Date:        model.Date,
			Amount:      model.Amount,
			InvoiceType: model.InvoiceType,
		},
		Links: InvoiceLinks{
			Self:     fmt.Sprintf("%s/v1/invoices/%s", url, model.ID),
			Contract: fmt.Sprintf("%s/v1/contracts/%s", url, model.ContractID),
		},
	}
}

type InvoiceResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Invoice `json:"data"`                                                          // The resource
}

type InvoiceListResponse struct {
	Data       []Invoice   `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type InvoiceQueryFilter struct {
	ContractID  ez_uuid.UUID    `form:"contract"`                   // By contract ID
	InvoiceType string          `form:"invoice_type"`               // By invoice type
	Amount      decimal.Decimal `form:"amount"`                     // By exact amount
	Offset      uint            `form:"offset" filterField:"false"` // The offset of the first invoice returned. Defaults to 0.
	Limit       int             `form:"limit" filterField:"false"`  // Maximum number of invoices to return. Defaults to 50.
	DateRange
}

// model returns the resource to filter by. Only the fields set in the
// query string are used.
func (f InvoiceQueryFilter) model() models.Invoice {
	return InvoiceEditable{
		ContractID:  f.ContractID.UUID,
		InvoiceType: f.InvoiceType,
		Amount:      f.Amount,
	}.model()
}
