package v1

import (
	"net/http"
	"strings"

	"github.com/contract-ledger/backend/internal/allocation"
	"github.com/contract-ledger/backend/internal/httputil"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/contract-ledger/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AllocationRequest struct {
	Month    string `json:"month" example:"2024-06"`    // The month to allocate the fixed costs of, YYYY-MM
	CostType string `json:"cost_type" example:"salary"` // Category of fixed costs. Defaults to the configured default category.
	DryRun   bool   `json:"dry_run" example:"false"`    // Calculate the allocation without booking any costs
}

type AllocationResponse struct {
	Error *string            `json:"error" example:"the fixed costs for this month and cost type have already been allocated"` // The error, if any occurred
	Data  *allocation.Result `json:"data"`                                                                                     // The allocation
}

func (co Controller) RegisterAllocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsAllocations)
	r.POST("", co.CreateAllocation)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/v1/allocations [options]
func (co Controller) OptionsAllocations(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allocate fixed costs
// @Description	Distributes the fixed costs of a month and category across all contracts with a completion rate above 0 and books one cost per contract. With dry_run, the allocation is only calculated.
// @Tags			Allocations
// @Produce		json
// @Success		200			{object}	AllocationResponse
// @Success		201			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		409			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			allocation	body		AllocationRequest	true	"Allocation"
// @Router			/v1/allocations [post]
func (co Controller) CreateAllocation(c *gin.Context) {
	var request AllocationRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	if strings.TrimSpace(request.Month) == "" {
		e := errMonthNotSet.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
		return
	}

	month, err := types.ParseMonth(strings.TrimSpace(request.Month))
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AllocationResponse{
			Error: &e,
		})
		return
	}

	run := co.Engine.Allocate
	code := http.StatusCreated
	if request.DryRun {
		run = co.Engine.Preview
		code = http.StatusOK
	}

	result, err := run(c.Request.Context(), month, request.CostType)
	if err != nil && !allocation.IsRejection(err) {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, AllocationResponse{
			Error: &e,
		})
		return
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	c.JSON(code, AllocationResponse{Data: &result})
}
