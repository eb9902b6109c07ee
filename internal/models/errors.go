package models

import (
	"errors"
)

var (
	ErrGeneral                 = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound        = errors.New("there is no")
	ErrReferenceNotFound       = errors.New("a referenced resource does not exist")
	ErrResourceStillReferenced = errors.New("the resource is still referenced by other resources and cannot be deleted")
	ErrNameEmpty               = errors.New("the name must not be empty")
)

// Contract errors
var (
	ErrContractNumberNotUnique   = errors.New("the contract number must be unique")
	ErrContractNumberEmpty       = errors.New("the contract number must not be empty")
	ErrContractAmountNotPositive = errors.New("the total amount of a contract must be positive")
	ErrCompletionRateOutOfRange  = errors.New("the completion rate must be between 0 and 100")
)

// Booking errors
var (
	ErrAmountNegative  = errors.New("the amount must not be negative")
	ErrCostTypeEmpty   = errors.New("the cost type must not be empty")
	ErrDateNotSet      = errors.New("the date must be set")
	ErrMonthNotSet     = errors.New("the month must be set")
	ErrContractNotSet  = errors.New("the contract ID must be set")
	ErrSupplierInvalid = errors.New("at least one of the specified suppliers does not exist")
)
