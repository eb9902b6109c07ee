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

type ContractEditable struct {
	ProjectName    string              `json:"project_name" example:"Riverside bridge renovation" default:""`                                              // Name of the project
	ContractNumber string              `json:"contract_number" example:"RB-2024-017" default:""`                                                           // Unique number of the contract
	TotalAmount    decimal.Decimal     `json:"total_amount" example:"100000" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Total amount agreed on
	ClientID       *uuid.UUID          `json:"client_id" example:"4f4a5a6e-1c3b-4bd8-9c6e-3f7d0b8c5a21"`                                                   // The client the contract is signed with
	SignDate       *time.Time          `json:"sign_date" example:"2024-03-15T00:00:00Z"`                                                                   // Date the contract was signed
	CompletionRate decimal.NullDecimal `json:"completion_rate" example:"50" minimum:"0" maximum:"100" swaggertype:"number"`                                // Completion in percent. Not set means 0 %.
	SupplierIDs    []uuid.UUID         `json:"supplier_ids"`                                                                                               // IDs of the suppliers working on the contract
}

// model returns the database resource for the API representation of the editable fields.
// Suppliers are not set, they are associated separately.
func (editable ContractEditable) model() models.Contract {
	return models.Contract{
		ProjectName:    strings.TrimSpace(editable.ProjectName),
		ContractNumber: strings.TrimSpace(editable.ContractNumber),
		TotalAmount:    editable.TotalAmount,
		ClientID:       editable.ClientID,
		SignDate:       editable.SignDate,
		CompletionRate: editable.CompletionRate,
	}
}

type ContractLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/contracts/0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"`             // The contract itself
	Payments string `json:"payments" example:"https://example.com/api/v1/payments?contract=0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"` // Payments received for the contract
	Invoices string `json:"invoices" example:"https://example.com/api/v1/invoices?contract=0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"` // Invoices issued for the contract
	Costs    string `json:"costs" example:"https://example.com/api/v1/costs?contract=0f2a6bd7-1d65-4f36-a3cb-6e1b9bfa0d54"`       // Costs booked on the contract
}

type Contract struct {
	models.DefaultModel
	ContractEditable
	TotalPayments    decimal.Decimal `json:"total_payments" example:"40000" swaggertype:"number"`    // Sum of all payments
	TotalInvoices    decimal.Decimal `json:"total_invoices" example:"50000" swaggertype:"number"`    // Sum of all invoiced amounts
	TotalCosts       decimal.Decimal `json:"total_costs" example:"37500" swaggertype:"number"`       // Sum of all costs
	RemainingPayment decimal.Decimal `json:"remaining_payment" example:"60000" swaggertype:"number"` // Total amount minus all payments
	RemainingInvoice decimal.Decimal `json:"remaining_invoice" example:"50000" swaggertype:"number"` // Total amount minus all invoiced amounts
	OverBudget       bool            `json:"over_budget" example:"false"`                            // If the costs exceed the total amount
	Links            ContractLinks   `json:"links"`
}

// newContract returns the API representation of the contract. Suppliers,
// payments, invoices and costs of the model must be loaded.
func newContract(c *gin.Context, model models.Contract) Contract {
	url := c.GetString(string(models.DBContextURL))

	supplierIDs := make([]uuid.UUID, 0, len(model.Suppliers))
	for _, s := range model.Suppliers {
		supplierIDs = append(supplierIDs, s.ID)
	}

	return Contract{
		DefaultModel: model.DefaultModel,
		ContractEditable: ContractEditable{
			ProjectName:    model.ProjectName,
			ContractNumber: model.ContractNumber,
			TotalAmount:    model.TotalAmount,
			ClientID:       model.ClientID,
			SignDate:       model.SignDate,
			CompletionRate: model.CompletionRate,
			SupplierIDs:    supplierIDs,
		},
		TotalPayments:    model.TotalPayments(),
		TotalInvoices:    model.TotalInvoices(),
		TotalCosts:       model.TotalCosts(),
		RemainingPayment: model.RemainingPayment(),
		RemainingInvoice: model.RemainingInvoice(),
		OverBudget:       model.IsOverBudget(),
		Links: ContractLinks{
			Self:     fmt.Sprintf("%s/v1/contracts/%s", url, model.ID),
			Payments: fmt.Sprintf("%s/v1/payments?contract=%s", url, model.ID),
			Invoices: fmt.Sprintf("%s/v1/invoices?contract=%s", url, model.ID),
			Costs:    fmt.Sprintf("%s/v1/costs?contract=%s", url, model.ID),
		},
	}
}

type ContractResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Contract `json:"data"`                                                          // The resource
}

type ContractListResponse struct {
	Data       []Contract  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ContractQueryFilter struct {
	ProjectName    string       `form:"project_name" filterField:"false"`    // By project name
	ContractNumber string       `form:"contract_number" filterField:"false"` // By contract number
	ClientID       ez_uuid.UUID `form:"client" filterField:"false"`          // By client ID
	SupplierID     ez_uuid.UUID `form:"supplier" filterField:"false"`        // By supplier ID
	Search         string       `form:"search" filterField:"false"`          // By string in project name or contract number
	OverBudget     bool         `form:"over_budget" filterField:"false"`     // Are the costs higher than the total amount?
	Offset         uint         `form:"offset" filterField:"false"`          // The offset of the first contract returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`           // Maximum number of contracts to return. Defaults to 50.
}
