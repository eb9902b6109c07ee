package v1_test

import (
	"net/http"

	v1 "github.com/contract-ledger/backend/internal/controllers/v1"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCleanup() {
	supplier := suite.createTestSupplier(v1.SupplierEditable{})
	client := suite.createTestClient(v1.ClientEditable{})
	contract := suite.createTestContract(v1.ContractEditable{ClientID: &client.ID, SupplierIDs: []uuid.UUID{supplier.ID}, CompletionRate: rate("40")})
	_ = suite.createTestPayment(v1.PaymentEditable{ContractID: contract.ID})
	_ = suite.createTestInvoice(v1.InvoiceEditable{ContractID: contract.ID})
	_ = suite.createTestCost(v1.CostEditable{ContractID: contract.ID})
	_ = suite.createTestFixedCost(v1.FixedCostEditable{})

	r := suite.request(http.MethodPost, "/v1/allocations", `{"month": "2024-06"}`)
	suite.assertStatus(r, http.StatusCreated)

	r = suite.request(http.MethodDelete, "/v1?confirm=yes-please-delete-everything", "")
	suite.assertStatus(r, http.StatusNoContent)

	tables := []any{
		&models.Supplier{},
		&models.Client{},
		&models.Contract{},
		&models.Payment{},
		&models.Invoice{},
		&models.Cost{},
		&models.FixedCost{},
	}

	for _, table := range tables {
		var count int64
		suite.Require().Nil(suite.db.Unscoped().Model(table).Count(&count).Error)
		suite.Assert().Zero(count, "%T was not deleted", table)
	}

	var associations int64
	suite.Require().Nil(suite.db.Table("contract_suppliers").Count(&associations).Error)
	suite.Assert().Zero(associations, "Contract suppliers were not deleted")
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	_ = suite.createTestSupplier(v1.SupplierEditable{})

	for _, path := range []string{"/v1", "/v1?confirm=yes", "/v1?confirm=yes-please-delete-everything-else"} {
		r := suite.request(http.MethodDelete, path, "")
		suite.assertStatus(r, http.StatusBadRequest)
		suite.Assert().Equal("the confirmation for the cleanup API call was incorrect", test.DecodeError(suite.T(), r))
	}

	r := suite.request(http.MethodGet, "/v1/suppliers", "")
	var response v1.SupplierListResponse
	test.DecodeResponse(suite.T(), r, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestCleanupDatabaseError() {
	suite.CloseDB()

	r := suite.request(http.MethodDelete, "/v1?confirm=yes-please-delete-everything", "")
	suite.assertStatus(r, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), r))
}
