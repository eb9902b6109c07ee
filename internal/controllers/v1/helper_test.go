package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/contract-ledger/backend/internal/controllers/v1"
	"github.com/contract-ledger/backend/internal/types"
	"github.com/contract-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestSupplier(s v1.SupplierEditable) v1.Supplier {
	if s.Name == "" {
		s.Name = "Northern Steel Ltd."
	}

	r := suite.request(http.MethodPost, "/v1/suppliers", s)
	suite.assertStatus(r, http.StatusCreated)

	var response v1.SupplierResponse
	test.DecodeResponse(suite.T(), r, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) createTestClient(c v1.ClientEditable) v1.Client {
	if c.Name == "" {
		c.Name = "City of Riverside"
	}

	r := suite.request(http.MethodPost, "/v1/clients", c)
	suite.assertStatus(r, http.StatusCreated)

	var response v1.ClientResponse
	test.DecodeResponse(suite.T(), r, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) createTestContract(c v1.ContractEditable) v1.Contract {
	if c.ProjectName == "" {
		c.ProjectName = "Riverside bridge renovation"
	}

	if c.ContractNumber == "" {
		c.ContractNumber = uuid.NewString()
	}

	if c.TotalAmount.IsZero() {
		c.TotalAmount = decimal.NewFromInt(100000)
	}

	r := suite.request(http.MethodPost, "/v1/contracts", c)
	suite.assertStatus(r, http.StatusCreated)

	var response v1.ContractResponse
	test.DecodeResponse(suite.T(), r, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) createTestPayment(p v1.PaymentEditable) v1.Payment {
	if p.ContractID == uuid.Nil {
		p.ContractID = suite.createTestContract(v1.ContractEditable{}).ID
	}

	if p.Date.IsZero() {
		p.Date = time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC)
	}

	r := suite.request(http.MethodPost, "/v1/payments", p)
	suite.assertStatus(r, http.StatusCreated)

	var response v1.PaymentResponse
	test.DecodeResponse(suite.T(), r, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) createTestInvoice(i v1.InvoiceEditable) v1.Invoice {
	if i.ContractID == uuid.Nil {
		i.ContractID = suite.createTestContract(v1.ContractEditable{}).ID
	}

	if i.Date.IsZero() {
		i.Date = time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC)
	}

	r := suite.request(http.MethodPost, "/v1/invoices", i)
	suite.assertStatus(r, http.StatusCreated)

	var response v1.InvoiceResponse
	test.DecodeResponse(suite.T(), r, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) createTestCost(c v1.CostEditable) v1.Cost {
	if c.ContractID == uuid.Nil {
		c.ContractID = suite.createTestContract(v1.ContractEditable{}).ID
	}

	if c.CostType == "" {
		c.CostType = "material"
	}

	if c.CostDate.IsZero() {
		c.CostDate = time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	}

	r := suite.request(http.MethodPost, "/v1/costs", c)
	suite.assertStatus(r, http.StatusCreated)

	var response v1.CostResponse
	test.DecodeResponse(suite.T(), r, &response)
	return *response.Data
}

func (suite *TestSuiteStandard) createTestFixedCost(f v1.FixedCostEditable) v1.FixedCost {
	if f.CostType == "" {
		f.CostType = "salary"
	}

	if f.Month.IsZero() {
		f.Month = types.NewMonth(2024, time.June)
	}

	r := suite.request(http.MethodPost, "/v1/fixed-costs", f)
	suite.assertStatus(r, http.StatusCreated)

	var response v1.FixedCostResponse
	test.DecodeResponse(suite.T(), r, &response)
	return *response.Data
}

func rate(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}
