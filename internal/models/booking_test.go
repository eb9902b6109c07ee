package models_test

import (
	"time"

	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBookingValidation() {
	contract := suite.createTestContract(models.Contract{})
	june := time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		model any
		err   error
	}{
		{"Payment without date", &models.Payment{ContractID: contract.ID}, models.ErrDateNotSet},
		{"Payment negative", &models.Payment{ContractID: contract.ID, Date: june, Amount: decimal.NewFromInt(-1)}, models.ErrAmountNegative},
		{"Payment unknown contract", &models.Payment{ContractID: uuid.New(), Date: june}, models.ErrReferenceNotFound},
		{"Invoice without date", &models.Invoice{ContractID: contract.ID}, models.ErrDateNotSet},
		{"Invoice negative", &models.Invoice{ContractID: contract.ID, Date: june, Amount: decimal.NewFromInt(-1)}, models.ErrAmountNegative},
		{"Cost without type", &models.Cost{ContractID: contract.ID, CostType: "  "}, models.ErrCostTypeEmpty},
		{"Cost negative", &models.Cost{ContractID: contract.ID, CostType: "material", Amount: decimal.NewFromInt(-1)}, models.ErrAmountNegative},
		{"Fixed cost without month", &models.FixedCost{CostType: "salary"}, models.ErrMonthNotSet},
		{"Fixed cost without type", &models.FixedCost{Month: types.NewMonth(2024, time.June)}, models.ErrCostTypeEmpty},
		{"Fixed cost negative", &models.FixedCost{CostType: "salary", Month: types.NewMonth(2024, time.June), Amount: decimal.NewFromInt(-1)}, models.ErrAmountNegative},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := suite.db.Create(tt.model).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}

	// Failed validations are rolled back
	for _, model := range []any{&models.Payment{}, &models.Invoice{}, &models.Cost{}, &models.FixedCost{}} {
		var count int64
		suite.Require().Nil(suite.db.Model(model).Count(&count).Error)
		suite.Assert().Zero(count, "%T was saved despite failing validation", model)
	}
}

func (suite *TestSuiteStandard) TestBookingDatesInUTC() {
	contract := suite.createTestContract(models.Contract{})
	berlin := time.FixedZone("CEST", 2*60*60)

	payment := suite.createTestPayment(models.Payment{
		ContractID:  contract.ID,
		Date:        time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC).In(berlin),
		PaymentType: " advance ",
	})
	suite.Assert().Equal("advance", payment.PaymentType)

	var found models.Payment
	suite.Require().Nil(suite.db.First(&found, payment.ID).Error)
	suite.Assert().Equal(time.UTC, found.Date.Location())
	suite.Assert().Equal(time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC), found.Date)
}

func (suite *TestSuiteStandard) TestFixedCostMonthRoundTrip() {
	fixedCost := models.FixedCost{
		CostType:    " salary ",
		Month:       types.NewMonth(2024, time.June),
		Amount:      decimal.RequireFromString("10000.50"),
		Description: " Payroll ",
	}
	suite.Require().Nil(suite.db.Create(&fixedCost).Error)

	var found models.FixedCost
	suite.Require().Nil(suite.db.Where(&models.FixedCost{Month: types.NewMonth(2024, time.June)}).First(&found).Error)
	suite.Assert().Equal(fixedCost.ID, found.ID)
	suite.Assert().Equal("salary", found.CostType)
	suite.Assert().Equal("Payroll", found.Description)
	suite.Assert().True(types.NewMonth(2024, time.June).Equal(found.Month))
	suite.Assert().True(decimal.RequireFromString("10000.5").Equal(found.Amount))
}

func (suite *TestSuiteStandard) TestNotFoundMessage() {
	var fixedCost models.FixedCost
	err := suite.db.First(&fixedCost, uuid.New()).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no fixed cost matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestDatabaseClosed() {
	suite.CloseDB()

	var contracts []models.Contract
	err := suite.db.Find(&contracts).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
