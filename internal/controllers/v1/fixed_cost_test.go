package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/contract-ledger/backend/internal/controllers/v1"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/internal/types"
	"github.com/contract-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestFixedCosts() {
	fixedCost := suite.createTestFixedCost(v1.FixedCostEditable{
		CostType:    " salary ",
		Amount:      decimal.NewFromInt(10000),
		Description: "Payroll June",
	})

	suite.Assert().Equal("salary", fixedCost.CostType)
	suite.Assert().Equal(types.NewMonth(2024, time.June), fixedCost.Month)
	suite.Assert().Nil(fixedCost.CostDate)

	r := suite.request(http.MethodGet, "/v1/fixed-costs/"+fixedCost.ID.String(), "")
	suite.assertStatus(r, http.StatusOK)

	r = suite.request(http.MethodPatch, "/v1/fixed-costs/"+fixedCost.ID.String(), `{"month": "2024-07", "cost_date": "2024-07-25T00:00:00Z"}`)
	suite.assertStatus(r, http.StatusOK)

	var response v1.FixedCostResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal(types.NewMonth(2024, time.July), response.Data.Month)
	suite.Require().NotNil(response.Data.CostDate)
	suite.Assert().True(decimal.NewFromInt(10000).Equal(response.Data.Amount))

	r = suite.request(http.MethodDelete, "/v1/fixed-costs/"+fixedCost.ID.String(), "")
	suite.assertStatus(r, http.StatusNoContent)

	r = suite.request(http.MethodGet, "/v1/fixed-costs/"+fixedCost.ID.String(), "")
	suite.assertStatus(r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestFixedCostsList() {
	_ = suite.createTestFixedCost(v1.FixedCostEditable{CostType: "salary", Amount: decimal.NewFromInt(10000)})
	_ = suite.createTestFixedCost(v1.FixedCostEditable{CostType: "salary", Amount: decimal.NewFromInt(500), Description: "Bonus"})
	_ = suite.createTestFixedCost(v1.FixedCostEditable{CostType: "rent", Amount: decimal.NewFromInt(2000)})
	_ = suite.createTestFixedCost(v1.FixedCostEditable{CostType: "salary", Month: types.NewMonth(2024, time.July), Amount: decimal.NewFromInt(10000)})

	tests := []struct {
		query string
		len   int
	}{
		{"", 4},
		{"month=2024-06", 3},
		{"month=2024-07", 1},
		{"cost_type=salary", 3},
		{"month=2024-06&cost_type=salary", 2},
		{"amount=10000", 2},
		{"description=bonus", 1},
		{"limit=2", 2},
		{"offset=3", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodGet, test.BaseURL+"/v1/fixed-costs?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.FixedCostListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}

	r := suite.request(http.MethodGet, "/v1/fixed-costs?month=June", "")
	suite.assertStatus(r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestFixedCostsCreateFails() {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{"No month", `{"cost_type": "salary", "amount": 100}`, models.ErrMonthNotSet},
		{"No cost type", `{"month": "2024-06", "amount": 100}`, models.ErrCostTypeEmpty},
		{"Negative amount", `{"cost_type": "salary", "month": "2024-06", "amount": -100}`, models.ErrAmountNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, test.BaseURL+"/v1/fixed-costs", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Equal(t, tt.err.Error(), test.DecodeError(t, &r))
		})
	}

	r := suite.request(http.MethodPost, "/v1/fixed-costs", `{"cost_type": "salary", "month": "2024-13"}`)
	suite.assertStatus(r, http.StatusBadRequest)

	r = suite.request(http.MethodGet, "/v1/fixed-costs", "")
	var response v1.FixedCostListResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Len(response.Data, 0)
}
