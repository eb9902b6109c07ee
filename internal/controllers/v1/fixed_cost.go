package v1

import (
	"net/http"

	"github.com/contract-ledger/backend/internal/httputil"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (co Controller) RegisterFixedCostRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsFixedCosts)
		r.GET("", co.GetFixedCosts)
		r.POST("", co.CreateFixedCost)
	}
	{
		r.OPTIONS("/:id", co.OptionsFixedCostDetail)
		r.GET("/:id", co.GetFixedCost)
		r.PATCH("/:id", co.UpdateFixedCost)
		r.DELETE("/:id", co.DeleteFixedCost)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Fixed costs
// @Success		204
// @Router			/v1/fixed-costs [options]
func (co Controller) OptionsFixedCosts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Fixed costs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/fixed-costs/{id} [options]
func (co Controller) OptionsFixedCostDetail(c *gin.Context) {
	resourceOptionsDetail(co, c, models.FixedCost{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create fixed cost
// @Description	Creates a new fixed cost
// @Tags			Fixed costs
// @Produce		json
// @Success		201		{object}	FixedCostResponse
// @Failure		400		{object}	FixedCostResponse
// @Failure		500		{object}	FixedCostResponse
// @Param			fixed_cost	body		FixedCostEditable	true	"Fixed cost"
// @Router			/v1/fixed-costs [post]
func (co Controller) CreateFixedCost(c *gin.Context) {
	var editable FixedCostEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostResponse{
			Error: &e,
		})
		return
	}

	fixedCost := editable.model()
	err = co.DB.Create(&fixedCost).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFixedCost(c, fixedCost)
	c.JSON(http.StatusCreated, FixedCostResponse{Data: &apiResource})
}

// @Summary		Get fixed costs
// @Description	Returns a list of fixed costs
// @Tags			Fixed costs
// @Produce		json
// @Success		200				{object}	FixedCostListResponse
// @Failure		400				{object}	FixedCostListResponse
// @Failure		500				{object}	FixedCostListResponse
// @Router			/v1/fixed-costs [get]
// @Param			month			query	string	false	"Filter by month, YYYY-MM"
// @Param			cost_type		query	string	false	"Filter by category"
// @Param			description		query	string	false	"Filter by description"
// @Param			amount			query	string	false	"Filter by amount"
// @Param			offset			query	uint	false	"The offset of the first fixed cost returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of fixed costs to return. Defaults to 50."
func (co Controller) GetFixedCosts(c *gin.Context) {
	var filter FixedCostQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, FixedCostListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := co.DB.Model(&models.FixedCost{}).
		Order("fixed_costs.month DESC, fixed_costs.cost_type ASC, fixed_costs.created_at ASC").
		Where(&where, queryFields...)

	q = stringFilter(q, setFields, "Description", "fixed_costs.description", filter.Description)
	q = q.Session(&gorm.Session{})

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostListResponse{
			Error: &e,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var fixedCosts []models.FixedCost
	err = q.Find(&fixedCosts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostListResponse{
			Error: &e,
		})
		return
	}

	data := make([]FixedCost, 0, len(fixedCosts))
	for _, fixedCost := range fixedCosts {
		data = append(data, newFixedCost(c, fixedCost))
	}

	c.JSON(http.StatusOK, FixedCostListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get fixed cost
// @Description	Returns a specific fixed cost
// @Tags			Fixed costs
// @Produce		json
// @Success		200	{object}	FixedCostResponse
// @Failure		400	{object}	FixedCostResponse
// @Failure		404	{object}	FixedCostResponse
// @Failure		500	{object}	FixedCostResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/fixed-costs/{id} [get]
func (co Controller) GetFixedCost(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostResponse{
			Error: &e,
		})
		return
	}

	var fixedCost models.FixedCost
	err = co.DB.First(&fixedCost, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFixedCost(c, fixedCost)
	c.JSON(http.StatusOK, FixedCostResponse{Data: &apiResource})
}

// @Summary		Update fixed cost
// @Description	Updates an existing fixed cost. Only values to be updated need to be specified.
// @Tags			Fixed costs
// @Accept			json
// @Produce		json
// @Success		200		{object}	FixedCostResponse
// @Failure		400		{object}	FixedCostResponse
// @Failure		404		{object}	FixedCostResponse
// @Failure		500		{object}	FixedCostResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			fixed_cost	body		FixedCostEditable	true	"Fixed cost"
// @Router			/v1/fixed-costs/{id} [patch]
func (co Controller) UpdateFixedCost(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostResponse{
			Error: &e,
		})
		return
	}

	var fixedCost models.FixedCost
	err = co.DB.First(&fixedCost, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, FixedCostEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostResponse{
			Error: &e,
		})
		return
	}

	var data FixedCostEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.Model(&fixedCost).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FixedCostResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFixedCost(c, fixedCost)
	c.JSON(http.StatusOK, FixedCostResponse{Data: &apiResource})
}

// @Summary		Delete fixed cost
// @Description	Deletes a fixed cost
// @Tags			Fixed costs
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/fixed-costs/{id} [delete]
func (co Controller) DeleteFixedCost(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var fixedCost models.FixedCost
	err = co.DB.First(&fixedCost, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&fixedCost).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
