package v1_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/contract-ledger/backend/internal/allocation"
	v1 "github.com/contract-ledger/backend/internal/controllers/v1"
	"github.com/contract-ledger/backend/internal/httputil"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/internal/types"
	"github.com/contract-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// setupAllocation creates two eligible contracts with equal weight, one
// contract without progress and 15000 of salary fixed costs in June 2024.
func (suite *TestSuiteStandard) setupAllocation() (v1.Contract, v1.Contract) {
	first := suite.createTestContract(v1.ContractEditable{ProjectName: "Bridge", TotalAmount: decimal.NewFromInt(100000), CompletionRate: rate("50")})
	second := suite.createTestContract(v1.ContractEditable{ProjectName: "School", TotalAmount: decimal.NewFromInt(200000), CompletionRate: rate("25")})
	_ = suite.createTestContract(v1.ContractEditable{ProjectName: "Harbour", TotalAmount: decimal.NewFromInt(300000), CompletionRate: rate("0")})

	_ = suite.createTestFixedCost(v1.FixedCostEditable{CostType: "salary", Amount: decimal.NewFromInt(10000)})
	_ = suite.createTestFixedCost(v1.FixedCostEditable{CostType: "salary", Amount: decimal.NewFromInt(5000)})

	return first, second
}

func (suite *TestSuiteStandard) allocatedCosts(costType string) []v1.Cost {
	r := suite.request(http.MethodGet, "/v1/costs?cost_type="+costType, "")
	suite.assertStatus(r, http.StatusOK)

	var response v1.CostListResponse
	test.DecodeResponse(suite.T(), r, &response)
	return response.Data
}

func (suite *TestSuiteStandard) TestAllocationsCreate() {
	first, second := suite.setupAllocation()

	r := suite.request(http.MethodPost, "/v1/allocations", v1.AllocationRequest{Month: "2024-06", CostType: "salary"})
	suite.assertStatus(r, http.StatusCreated)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().NotNil(response.Data)

	result := response.Data
	suite.Assert().Equal(types.NewMonth(2024, time.June), result.Month)
	suite.Assert().Equal("salary", result.CostType)
	suite.Assert().True(decimal.NewFromInt(15000).Equal(result.TotalFixedCost), result.TotalFixedCost.String())
	suite.Assert().True(decimal.NewFromInt(100000).Equal(result.TotalWeight), result.TotalWeight.String())
	suite.Assert().True(decimal.RequireFromString("0.15").Equal(result.AllocationRate), result.AllocationRate.String())
	suite.Require().Len(result.Results, 2)

	for _, contract := range result.Results {
		suite.Assert().True(decimal.NewFromInt(7500).Equal(contract.AllocatedCost), contract.AllocatedCost.String())
	}

	costs := suite.allocatedCosts(allocation.CostType("salary"))
	suite.Require().Len(costs, 2)

	booked := map[string]bool{}
	for _, cost := range costs {
		booked[cost.ContractID.String()] = true
		suite.Assert().Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), cost.CostDate)
		suite.Assert().True(decimal.NewFromInt(7500).Equal(cost.Amount))
		suite.Assert().Contains(cost.Description, "salary")
	}
	suite.Assert().True(booked[first.ID.String()])
	suite.Assert().True(booked[second.ID.String()])

	r = suite.request(http.MethodGet, "/v1/contracts/"+first.ID.String(), "")
	var contract v1.ContractResponse
	test.DecodeResponse(suite.T(), r, &contract)
	suite.Assert().True(decimal.NewFromInt(7500).Equal(contract.Data.TotalCosts), contract.Data.TotalCosts.String())
}

func (suite *TestSuiteStandard) TestAllocationsDefaultCostType() {
	_, _ = suite.setupAllocation()

	r := suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06"}`)
	suite.assertStatus(r, http.StatusCreated)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Equal(allocation.DefaultCategory, response.Data.CostType)
	suite.Assert().Len(suite.allocatedCosts(allocation.CostType(allocation.DefaultCategory)), 2)
}

func (suite *TestSuiteStandard) TestAllocationsDryRun() {
	_, _ = suite.setupAllocation()

	r := suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06", "cost_type": "salary", "dry_run": true}`)
	suite.assertStatus(r, http.StatusOK)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Results, 2)
	suite.Assert().Len(suite.allocatedCosts("fixed-cost-allocation-*"), 0, "A dry run must not book costs")

	// A dry run does not block the real allocation
	r = suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06", "cost_type": "salary"}`)
	suite.assertStatus(r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestAllocationsRepeated() {
	_, _ = suite.setupAllocation()

	r := suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06", "cost_type": "salary"}`)
	suite.assertStatus(r, http.StatusCreated)

	r = suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06", "cost_type": "salary"}`)
	suite.assertStatus(r, http.StatusConflict)
	suite.Assert().Equal(allocation.ErrAllocationExists.Error(), test.DecodeError(suite.T(), r))
	suite.Assert().Len(suite.allocatedCosts(allocation.CostType("salary")), 2)

	// Previewing is still possible
	r = suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06", "cost_type": "salary", "dry_run": true}`)
	suite.assertStatus(r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestAllocationsCategoriesAreIndependent() {
	_, _ = suite.setupAllocation()
	_ = suite.createTestFixedCost(v1.FixedCostEditable{CostType: "rent", Amount: decimal.NewFromInt(3000)})

	r := suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06", "cost_type": "salary"}`)
	suite.assertStatus(r, http.StatusCreated)

	r = suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06", "cost_type": "rent"}`)
	suite.assertStatus(r, http.StatusCreated)

	var response v1.AllocationResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().True(decimal.NewFromInt(3000).Equal(response.Data.TotalFixedCost))

	suite.Assert().Len(suite.allocatedCosts("fixed-cost-allocation-*"), 4)
}

func (suite *TestSuiteStandard) TestAllocationsFails() {
	_, _ = suite.setupAllocation()

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"No month", `{"cost_type": "salary"}`, http.StatusBadRequest, "the month must be set in YYYY-MM format"},
		{"Blank month", `{"month": "  "}`, http.StatusBadRequest, "the month must be set in YYYY-MM format"},
		{"Bad month", `{"month": "June"}`, http.StatusBadRequest, types.ErrInvalidMonth.Error()},
		{"Unknown field", `{"month": "2024-06", "period": "monthly"}`, http.StatusBadRequest, httputil.ErrUnknownField.Error()},
		{"No fixed costs", `{"month": "2024-07"}`, http.StatusBadRequest, allocation.ErrNoFixedCostRecords.Error()},
		{"Unknown category", `{"month": "2024-06", "cost_type": "insurance"}`, http.StatusBadRequest, allocation.ErrNoFixedCostRecords.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, suite.co, http.MethodPost, test.BaseURL+"/v1/allocations", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, &r), tt.err)
		})
	}

	suite.Assert().Len(suite.allocatedCosts("fixed-cost-allocation-*"), 0)
}

func (suite *TestSuiteStandard) TestAllocationsNoEligibleContracts() {
	_ = suite.createTestContract(v1.ContractEditable{CompletionRate: rate("0")})
	_ = suite.createTestContract(v1.ContractEditable{})
	_ = suite.createTestFixedCost(v1.FixedCostEditable{CostType: "salary", Amount: decimal.NewFromInt(1000)})

	r := suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06"}`)
	suite.assertStatus(r, http.StatusBadRequest)
	suite.Assert().Equal(allocation.ErrNoEligibleContracts.Error(), test.DecodeError(suite.T(), r))
}

func (suite *TestSuiteStandard) TestAllocationsDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06"}`)
	suite.assertStatus(r, http.StatusInternalServerError)
	suite.Assert().Contains(test.DecodeError(suite.T(), r), models.ErrGeneral.Error())

	r = suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06", "dry_run": true}`)
	suite.assertStatus(r, http.StatusInternalServerError)
}

// failingStore books no costs and fails with err instead.
type failingStore struct {
	allocation.Store
	err error
}

func (s failingStore) Transaction(ctx context.Context, fn func(tx allocation.Store) error) error {
	return s.Store.Transaction(ctx, func(tx allocation.Store) error {
		return fn(failingStore{Store: tx, err: s.err})
	})
}

func (s failingStore) CreateCosts(_ context.Context, _ []models.Cost) error {
	return s.err
}

// TestAllocationsStoreError verifies that errors which are not caused by
// the request or the data are internal errors, even if they would be
// client errors for other resources.
func (suite *TestSuiteStandard) TestAllocationsStoreError() {
	_, _ = suite.setupAllocation()

	for _, err := range []error{models.ErrAmountNegative, models.ErrReferenceNotFound, errors.New("disk full")} {
		suite.T().Run(err.Error(), func(t *testing.T) {
			co := v1.Controller{
				DB:     suite.co.DB,
				Engine: allocation.NewEngine(failingStore{Store: allocation.NewGormStore(suite.co.DB), err: err}),
			}

			r := test.Request(t, co, http.MethodPost, test.BaseURL+"/v1/allocations", `{"month": "2024-06"}`)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Equal(t, models.ErrGeneral.Error(), test.DecodeError(t, &r))
		})
	}

	// Nothing was booked, the allocation can still run
	r := suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06"}`)
	suite.assertStatus(r, http.StatusCreated)
}
