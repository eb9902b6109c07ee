package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/contract-ledger/backend/internal/controllers/v1"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestContractsCreate() {
	client := suite.createTestClient(v1.ClientEditable{})
	steel := suite.createTestSupplier(v1.SupplierEditable{Name: "Steel"})
	concrete := suite.createTestSupplier(v1.SupplierEditable{Name: "Concrete"})

	contract := suite.createTestContract(v1.ContractEditable{
		ProjectName:    "Harbour wall",
		ContractNumber: " HW-2024-001 ",
		TotalAmount:    decimal.NewFromInt(250000),
		ClientID:       &client.ID,
		CompletionRate: rate("12.5"),
		SupplierIDs:    []uuid.UUID{steel.ID, concrete.ID, steel.ID},
	})

	suite.Assert().Equal("HW-2024-001", contract.ContractNumber)
	suite.Assert().Equal(client.ID, *contract.ClientID)
	suite.Assert().True(decimal.RequireFromString("12.5").Equal(contract.CompletionRate.Decimal))
	suite.Assert().Equal([]uuid.UUID{concrete.ID, steel.ID}, contract.SupplierIDs, "Suppliers are deduplicated and sorted by name")
	suite.Assert().True(contract.TotalCosts.IsZero())
	suite.Assert().False(contract.OverBudget)
	suite.Assert().Equal(fmt.Sprintf("%s/v1/costs?contract=%s", test.BaseURL, contract.ID), contract.Links.Costs)
}

func (suite *TestSuiteStandard) TestContractsCreateFails() {
	existing := suite.createTestContract(v1.ContractEditable{ContractNumber: "TAKEN"})

	tests := []struct {
		name string
		body string
		err  error
	}{
		{"No project name", `{"contract_number": "A-1", "total_amount": 100}`, models.ErrNameEmpty},
		{"No contract number", `{"project_name": "A", "total_amount": 100}`, models.ErrContractNumberEmpty},
		{"Zero amount", `{"project_name": "A", "contract_number": "A-1", "total_amount": 0}`, models.ErrContractAmountNotPositive},
		{"Negative amount", `{"project_name": "A", "contract_number": "A-1", "total_amount": -5}`, models.ErrContractAmountNotPositive},
		{"Completion above 100", `{"project_name": "A", "contract_number": "A-1", "total_amount": 100, "completion_rate": 100.5}`, models.ErrCompletionRateOutOfRange},
		{"Negative completion", `{"project_name": "A", "contract_number": "A-1", "total_amount": 100, "completion_rate": -1}`, models.ErrCompletionRateOutOfRange},
		{"Duplicate number", `{"project_name": "A", "contract_number": "TAKEN", "total_amount": 100}`, models.ErrContractNumberNotUnique},
		{"Unknown client", fmt.Sprintf(`{"project_name": "A", "contract_number": "A-1", "total_amount": 100, "client_id": "%s"}`, uuid.New()), models.ErrReferenceNotFound},
		{"Unknown supplier", fmt.Sprintf(`{"project_name": "A", "contract_number": "A-1", "total_amount": 100, "supplier_ids": ["%s"]}`, uuid.New()), models.ErrSupplierInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, test.BaseURL+"/v1/contracts", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), test.DecodeError(t, &r))
		})
	}

	// Failed creates are rolled back completely
	r := suite.request(http.MethodGet, "/v1/contracts", "")
	suite.assertStatus(r, http.StatusOK)

	var response v1.ContractListResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(existing.ID, response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestContractsTotals() {
	contract := suite.createTestContract(v1.ContractEditable{TotalAmount: decimal.NewFromInt(1000)})

	_ = suite.createTestPayment(v1.PaymentEditable{ContractID: contract.ID, Amount: decimal.NewFromInt(400)})
	_ = suite.createTestPayment(v1.PaymentEditable{ContractID: contract.ID, Amount: decimal.NewFromInt(100)})
	_ = suite.createTestInvoice(v1.InvoiceEditable{ContractID: contract.ID, Amount: decimal.NewFromInt(700)})
	_ = suite.createTestCost(v1.CostEditable{ContractID: contract.ID, Amount: decimal.NewFromInt(1000)})

	r := suite.request(http.MethodGet, "/v1/contracts/"+contract.ID.String(), "")
	suite.assertStatus(r, http.StatusOK)

	var response v1.ContractResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().True(decimal.NewFromInt(500).Equal(response.Data.TotalPayments), "total payments: %s", response.Data.TotalPayments)
	suite.Assert().True(decimal.NewFromInt(700).Equal(response.Data.TotalInvoices), "total invoices: %s", response.Data.TotalInvoices)
	suite.Assert().True(decimal.NewFromInt(1000).Equal(response.Data.TotalCosts), "total costs: %s", response.Data.TotalCosts)
	suite.Assert().False(response.Data.OverBudget, "Costs equal to the total amount are within budget")

	_ = suite.createTestCost(v1.CostEditable{ContractID: contract.ID, Amount: decimal.RequireFromString("0.01")})

	r = suite.request(http.MethodGet, "/v1/contracts/"+contract.ID.String(), "")
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().True(response.Data.OverBudget)
}

func (suite *TestSuiteStandard) TestContractsList() {
	client := suite.createTestClient(v1.ClientEditable{})
	supplier := suite.createTestSupplier(v1.SupplierEditable{})

	bridge := suite.createTestContract(v1.ContractEditable{
		ProjectName:    "Riverside bridge",
		ContractNumber: "RB-1",
		TotalAmount:    decimal.NewFromInt(100),
		ClientID:       &client.ID,
	})
	tower := suite.createTestContract(v1.ContractEditable{
		ProjectName:    "Office tower",
		ContractNumber: "OT-1",
		TotalAmount:    decimal.NewFromInt(100),
		SupplierIDs:    []uuid.UUID{supplier.ID},
	})
	_ = suite.createTestContract(v1.ContractEditable{
		ProjectName:    "Riverside park",
		ContractNumber: "RP-1",
		TotalAmount:    decimal.NewFromInt(100),
	})

	// 0.1 + 0.2 is not 0.3 in floating point
	harbour := suite.createTestContract(v1.ContractEditable{
		ProjectName:    "Harbour",
		ContractNumber: "HB-1",
		TotalAmount:    decimal.RequireFromString("0.3"),
	})

	_ = suite.createTestCost(v1.CostEditable{ContractID: tower.ID, Amount: decimal.NewFromInt(150)})
	_ = suite.createTestCost(v1.CostEditable{ContractID: bridge.ID, Amount: decimal.NewFromInt(60)})
	_ = suite.createTestCost(v1.CostEditable{ContractID: bridge.ID, Amount: decimal.NewFromInt(40)})
	_ = suite.createTestCost(v1.CostEditable{ContractID: harbour.ID, Amount: decimal.RequireFromString("0.1")})
	_ = suite.createTestCost(v1.CostEditable{ContractID: harbour.ID, Amount: decimal.RequireFromString("0.2")})

	tests := []struct {
		query string
		len   int
	}{
		{"", 4},
		{"project_name=riverside", 2},
		{"contract_number=OT", 1},
		{"search=RB-1", 1},
		{"search=river", 2},
		{"client=" + client.ID.String(), 1},
		{"supplier=" + supplier.ID.String(), 1},
		{"over_budget=true", 1},
		{"over_budget=false", 3},
		{"over_budget=false&search=bridge", 1},
		{"over_budget=true&project_name=harbour", 0},
		{"over_budget=false&project_name=harbour", 1},
		{"limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, test.BaseURL+"/v1/contracts?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ContractListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	r := suite.request(http.MethodGet, "/v1/contracts?over_budget=true", "")
	var response v1.ContractListResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(tower.ID, response.Data[0].ID)
	suite.Assert().True(response.Data[0].OverBudget)
	suite.Assert().Equal(int64(1), response.Pagination.Total)

	r = suite.request(http.MethodGet, "/v1/contracts/"+harbour.ID.String(), "")
	var detail v1.ContractResponse
	test.DecodeResponse(suite.T(), r, &detail)
	suite.Assert().True(decimal.RequireFromString("0.3").Equal(detail.Data.TotalCosts), detail.Data.TotalCosts.String())
	suite.Assert().False(detail.Data.OverBudget)

	r = suite.request(http.MethodGet, "/v1/contracts?client=not-a-uuid", "")
	suite.assertStatus(r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestContractsUpdate() {
	steel := suite.createTestSupplier(v1.SupplierEditable{Name: "Steel"})
	glass := suite.createTestSupplier(v1.SupplierEditable{Name: "Glass"})
	contract := suite.createTestContract(v1.ContractEditable{
		ProjectName: "Tower",
		SupplierIDs: []uuid.UUID{steel.ID},
	})

	path := "/v1/contracts/" + contract.ID.String()

	// Updating a column keeps the suppliers
	r := suite.request(http.MethodPatch, path, `{"completion_rate": 40}`)
	suite.assertStatus(r, http.StatusOK)

	var response v1.ContractResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().True(decimal.NewFromInt(40).Equal(response.Data.CompletionRate.Decimal))
	suite.Assert().Equal("Tower", response.Data.ProjectName)
	suite.Assert().Equal([]uuid.UUID{steel.ID}, response.Data.SupplierIDs)

	// Replacing the suppliers keeps the columns
	r = suite.request(http.MethodPatch, path, map[string]any{"supplier_ids": []uuid.UUID{glass.ID}})
	suite.assertStatus(r, http.StatusOK)
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal([]uuid.UUID{glass.ID}, response.Data.SupplierIDs)
	suite.Assert().True(decimal.NewFromInt(40).Equal(response.Data.CompletionRate.Decimal))

	// Unsetting the completion rate and removing all suppliers
	r = suite.request(http.MethodPatch, path, `{"completion_rate": null, "supplier_ids": []}`)
	suite.assertStatus(r, http.StatusOK)
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().False(response.Data.CompletionRate.Valid)
	suite.Assert().Len(response.Data.SupplierIDs, 0)
}

func (suite *TestSuiteStandard) TestContractsUpdateFails() {
	steel := suite.createTestSupplier(v1.SupplierEditable{Name: "Steel"})
	contract := suite.createTestContract(v1.ContractEditable{SupplierIDs: []uuid.UUID{steel.ID}})
	path := "/v1/contracts/" + contract.ID.String()

	tests := []struct {
		name string
		body string
	}{
		{"Completion out of range", `{"completion_rate": 101}`},
		{"Empty number", `{"contract_number": ""}`},
		{"Unknown supplier", fmt.Sprintf(`{"project_name": "Changed", "supplier_ids": ["%s"]}`, uuid.New())},
		{"Unknown field", `{"budget": 5}`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPatch, test.BaseURL+path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}

	// Nothing has changed
	r := suite.request(http.MethodGet, path, "")
	var response v1.ContractResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal(contract.ProjectName, response.Data.ProjectName)
	suite.Assert().Equal([]uuid.UUID{steel.ID}, response.Data.SupplierIDs)
}

func (suite *TestSuiteStandard) TestContractsDeleteCascades() {
	supplier := suite.createTestSupplier(v1.SupplierEditable{})
	contract := suite.createTestContract(v1.ContractEditable{SupplierIDs: []uuid.UUID{supplier.ID}})
	payment := suite.createTestPayment(v1.PaymentEditable{ContractID: contract.ID})
	cost := suite.createTestCost(v1.CostEditable{ContractID: contract.ID})

	r := suite.request(http.MethodDelete, "/v1/contracts/"+contract.ID.String(), "")
	suite.assertStatus(r, http.StatusNoContent)

	for _, path := range []string{
		"/v1/contracts/" + contract.ID.String(),
		"/v1/payments/" + payment.ID.String(),
		"/v1/costs/" + cost.ID.String(),
	} {
		r := suite.request(http.MethodGet, path, "")
		suite.assertStatus(r, http.StatusNotFound)
	}

	// Suppliers are independent of contracts
	r = suite.request(http.MethodGet, "/v1/suppliers/"+supplier.ID.String(), "")
	suite.assertStatus(r, http.StatusOK)
}
