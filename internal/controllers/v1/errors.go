package v1

import (
	"errors"
	"net/http"

	"github.com/contract-ledger/backend/internal/allocation"
	"github.com/contract-ledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, allocation.ErrAllocationExists) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Allocation errors
var (
	errMonthNotSet = errors.New("the month must be set in YYYY-MM format")
)
