package v1

import (
	"net/http"

	"github.com/contract-ledger/backend/internal/httputil"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (co Controller) RegisterCostRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsCosts)
		r.GET("", co.GetCosts)
		r.POST("", co.CreateCost)
	}
	{
		r.OPTIONS("/:id", co.OptionsCostDetail)
		r.GET("/:id", co.GetCost)
		r.PATCH("/:id", co.UpdateCost)
		r.DELETE("/:id", co.DeleteCost)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Costs
// @Success		204
// @Router			/v1/costs [options]
func (co Controller) OptionsCosts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Costs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/costs/{id} [options]
func (co Controller) OptionsCostDetail(c *gin.Context) {
	resourceOptionsDetail(co, c, models.Cost{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create cost
// @Description	Creates a new cost
// @Tags			Costs
// @Produce		json
// @Success		201		{object}	CostResponse
// @Failure		400		{object}	CostResponse
// @Failure		500		{object}	CostResponse
// @Param			cost	body		CostEditable	true	"Cost"
// @Router			/v1/costs [post]
func (co Controller) CreateCost(c *gin.Context) {
	var editable CostEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &e,
		})
		return
	}

	cost := editable.model()
	err = co.DB.Create(&cost).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCost(c, cost)
	c.JSON(http.StatusCreated, CostResponse{Data: &apiResource})
}

// @Summary		Get costs
// @Description	Returns a list of costs
// @Tags			Costs
// @Produce		json
// @Success		200				{object}	CostListResponse
// @Failure		400				{object}	CostListResponse
// @Failure		500				{object}	CostListResponse
// @Router			/v1/costs [get]
// @Param			contract		query	string	false	"Filter by contract ID"
// @Param			cost_type		query	string	false	"Filter by cost type. * matches any sequence of characters, e.g. fixed-cost-allocation-*"
// @Param			description		query	string	false	"Filter by description"
// @Param			amount			query	string	false	"Filter by amount"
// @Param			from_date		query	string	false	"Costs on or after this date, YYYY-MM-DD"
// @Param			until_date		query	string	false	"Costs on or before this date, YYYY-MM-DD"
// @Param			offset			query	uint	false	"The offset of the first cost returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of costs to return. Defaults to 50."
func (co Controller) GetCosts(c *gin.Context) {
	var filter CostQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CostListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := co.DB.Model(&models.Cost{}).
		Order("costs.cost_date DESC, costs.created_at DESC").
		Where(&where, queryFields...)

	q = filter.DateRange.where(q, "costs.cost_date")
	q = stringFilter(q, setFields, "Description", "costs.description", filter.Description)

	q, err := costTypeFilter(co.DB, q, filter.CostType)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostListResponse{
			Error: &e,
		})
		return
	}
	q = q.Session(&gorm.Session{})

	var count int64
	err = q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostListResponse{
			Error: &e,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var costs []models.Cost
	err = q.Find(&costs).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Cost, 0, len(costs))
	for _, cost := range costs {
		data = append(data, newCost(c, cost))
	}

	c.JSON(http.StatusOK, CostListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get cost
// @Description	Returns a specific cost
// @Tags			Costs
// @Produce		json
// @Success		200	{object}	CostResponse
// @Failure		400	{object}	CostResponse
// @Failure		404	{object}	CostResponse
// @Failure		500	{object}	CostResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/costs/{id} [get]
func (co Controller) GetCost(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &e,
		})
		return
	}

	var cost models.Cost
	err = co.DB.First(&cost, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCost(c, cost)
	c.JSON(http.StatusOK, CostResponse{Data: &apiResource})
}

// @Summary		Update cost
// @Description	Updates an existing cost. Only values to be updated need to be specified.
// @Tags			Costs
// @Accept			json
// @Produce		json
// @Success		200		{object}	CostResponse
// @Failure		400		{object}	CostResponse
// @Failure		404		{object}	CostResponse
// @Failure		500		{object}	CostResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			cost	body		CostEditable	true	"Cost"
// @Router			/v1/costs/{id} [patch]
func (co Controller) UpdateCost(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &e,
		})
		return
	}

	var cost models.Cost
	err = co.DB.First(&cost, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CostEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &e,
		})
		return
	}

	var data CostEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.Model(&cost).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CostResponse{
			Error: &e,
		})
		return
	}

	apiResource := newCost(c, cost)
	c.JSON(http.StatusOK, CostResponse{Data: &apiResource})
}

// @Summary		Delete cost
// @Description	Deletes a cost
// @Tags			Costs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/costs/{id} [delete]
func (co Controller) DeleteCost(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var cost models.Cost
	err = co.DB.First(&cost, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&cost).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
