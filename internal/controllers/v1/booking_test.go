package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/contract-ledger/backend/internal/controllers/v1"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(month time.Month, day int) time.Time {
	return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
}

func (suite *TestSuiteStandard) TestPayments() {
	contract := suite.createTestContract(v1.ContractEditable{})
	payment := suite.createTestPayment(v1.PaymentEditable{
		ContractID:  contract.ID,
		Date:        date(time.June, 28),
		Amount:      decimal.NewFromInt(25000),
		PaymentType: " advance ",
	})

	suite.Assert().Equal("advance", payment.PaymentType)
	suite.Assert().Equal(date(time.June, 28), payment.Date)
	suite.Assert().Equal(fmt.Sprintf("%s/v1/contracts/%s", test.BaseURL, contract.ID), payment.Links.Contract)

	r := suite.request(http.MethodPatch, "/v1/payments/"+payment.ID.String(), `{"amount": 26000.50}`)
	suite.assertStatus(r, http.StatusOK)

	var response v1.PaymentResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().True(decimal.RequireFromString("26000.5").Equal(response.Data.Amount))
	suite.Assert().Equal("advance", response.Data.PaymentType)

	r = suite.request(http.MethodDelete, "/v1/payments/"+payment.ID.String(), "")
	suite.assertStatus(r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "/v1/payments/"+payment.ID.String(), "")
	suite.assertStatus(r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestPaymentsList() {
	first := suite.createTestContract(v1.ContractEditable{})
	second := suite.createTestContract(v1.ContractEditable{})

	_ = suite.createTestPayment(v1.PaymentEditable{ContractID: first.ID, Date: date(time.May, 31), Amount: decimal.NewFromInt(100), PaymentType: "advance"})
	_ = suite.createTestPayment(v1.PaymentEditable{ContractID: first.ID, Date: date(time.June, 1), Amount: decimal.NewFromInt(200), PaymentType: "milestone"})
	_ = suite.createTestPayment(v1.PaymentEditable{ContractID: second.ID, Date: date(time.June, 30), Amount: decimal.NewFromInt(100), PaymentType: "final"})

	tests := []struct {
		query string
		len   int
	}{
		{"", 3},
		{"contract=" + first.ID.String(), 2},
		{"payment_type=final", 1},
		{"amount=100", 2},
		{"from_date=2024-06-01", 2},
		{"until_date=2024-06-01", 2},
		{"from_date=2024-06-01&until_date=2024-06-29", 1},
		{"contract=" + second.ID.String() + "&from_date=2024-07-01", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, test.BaseURL+"/v1/payments?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PaymentListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	r := suite.request(http.MethodGet, "/v1/payments", "")
	var response v1.PaymentListResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().Len(response.Data, 3)
	suite.Assert().Equal(date(time.June, 30), response.Data[0].Date, "Payments are sorted by date, newest first")

	r = suite.request(http.MethodGet, "/v1/payments?from_date=June", "")
	suite.assertStatus(r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPaymentsCreateFails() {
	contract := suite.createTestContract(v1.ContractEditable{})

	tests := []struct {
		name string
		body string
		err  error
	}{
		{"No contract", `{"date": "2024-06-01T00:00:00Z", "amount": 5}`, models.ErrReferenceNotFound},
		{"Unknown contract", fmt.Sprintf(`{"contract_id": "%s", "date": "2024-06-01T00:00:00Z", "amount": 5}`, uuid.New()), models.ErrReferenceNotFound},
		{"No date", fmt.Sprintf(`{"contract_id": "%s", "amount": 5}`, contract.ID), models.ErrDateNotSet},
		{"Negative amount", fmt.Sprintf(`{"contract_id": "%s", "date": "2024-06-01T00:00:00Z", "amount": -5}`, contract.ID), models.ErrAmountNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, test.BaseURL+"/v1/payments", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), test.DecodeError(t, &r))
		})
	}
}

func (suite *TestSuiteStandard) TestInvoices() {
	contract := suite.createTestContract(v1.ContractEditable{})
	invoice := suite.createTestInvoice(v1.InvoiceEditable{ContractID: contract.ID, Amount: decimal.NewFromInt(5000), InvoiceType: "partial"})
	_ = suite.createTestInvoice(v1.InvoiceEditable{ContractID: contract.ID, Amount: decimal.NewFromInt(7000), InvoiceType: "final"})

	r := suite.request(http.MethodGet, "/v1/invoices?invoice_type=partial", "")
	suite.assertStatus(r, http.StatusOK)

	var list v1.InvoiceListResponse
	test.DecodeResponse(suite.T(), r, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal(invoice.ID, list.Data[0].ID)

	r = suite.request(http.MethodPatch, "/v1/invoices/"+invoice.ID.String(), `{"date": "2024-07-01T00:00:00Z"}`)
	suite.assertStatus(r, http.StatusOK)

	var response v1.InvoiceResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal(date(time.July, 1), response.Data.Date)

	r = suite.request(http.MethodPatch, "/v1/invoices/"+invoice.ID.String(), `{"amount": -1}`)
	suite.assertStatus(r, http.StatusBadRequest)

	r = suite.request(http.MethodDelete, "/v1/invoices/"+invoice.ID.String(), "")
	suite.assertStatus(r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestCosts() {
	contract := suite.createTestContract(v1.ContractEditable{})
	cost := suite.createTestCost(v1.CostEditable{
		ContractID:  contract.ID,
		CostType:    "material",
		Amount:      decimal.RequireFromString("1250.5"),
		Description: "Rebar, 2 tons",
	})

	suite.Assert().Equal("Rebar, 2 tons", cost.Description)

	r := suite.request(http.MethodPatch, "/v1/costs/"+cost.ID.String(), `{"cost_type": "labour"}`)
	suite.assertStatus(r, http.StatusOK)

	var response v1.CostResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal("labour", response.Data.CostType)
	suite.Assert().True(decimal.RequireFromString("1250.5").Equal(response.Data.Amount))

	r = suite.request(http.MethodPatch, "/v1/costs/"+cost.ID.String(), `{"cost_type": " "}`)
	suite.assertStatus(r, http.StatusBadRequest)
	suite.Assert().Equal(models.ErrCostTypeEmpty.Error(), test.DecodeError(suite.T(), r))

	r = suite.request(http.MethodDelete, "/v1/costs/"+cost.ID.String(), "")
	suite.assertStatus(r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestCostsList() {
	contract := suite.createTestContract(v1.ContractEditable{})

	_ = suite.createTestCost(v1.CostEditable{ContractID: contract.ID, CostType: "material", Description: "Concrete"})
	_ = suite.createTestCost(v1.CostEditable{ContractID: contract.ID, CostType: "fixed-cost-allocation-salary", CostDate: date(time.June, 1)})
	_ = suite.createTestCost(v1.CostEditable{ContractID: contract.ID, CostType: "fixed-cost-allocation-rent", CostDate: date(time.June, 1)})
	_ = suite.createTestCost(v1.CostEditable{ContractID: contract.ID, CostType: "fixed-cost-allocation-salary", CostDate: date(time.July, 1)})

	tests := []struct {
		query string
		len   int
	}{
		{"", 4},
		{"cost_type=material", 1},
		{"cost_type=fixed-cost-allocation-*", 3},
		{"cost_type=*-salary", 2},
		{"cost_type=*", 4},
		{"cost_type=nothing-*", 0},
		{"cost_type=fixed-cost-allocation-*&from_date=2024-07-01", 1},
		{"description=concrete", 1},
		{"description=", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, test.BaseURL+"/v1/costs?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CostListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, int64(tt.len), response.Pagination.Total)
		})
	}
}
