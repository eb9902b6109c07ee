package v1

import (
	"net/http"

	"github.com/contract-ledger/backend/internal/httputil"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (co Controller) RegisterSupplierRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsSuppliers)
		r.GET("", co.GetSuppliers)
		r.POST("", co.CreateSupplier)
	}
	{
		r.OPTIONS("/:id", co.OptionsSupplierDetail)
		r.GET("/:id", co.GetSupplier)
		r.PATCH("/:id", co.UpdateSupplier)
		r.DELETE("/:id", co.DeleteSupplier)
	}
	{
		r.OPTIONS("/:id/contracts", co.OptionsSupplierContracts)
		r.GET("/:id/contracts", co.GetSupplierContracts)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Suppliers
// @Success		204
// @Router			/v1/suppliers [options]
func (co Controller) OptionsSuppliers(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Suppliers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/suppliers/{id} [options]
func (co Controller) OptionsSupplierDetail(c *gin.Context) {
	resourceOptionsDetail(co, c, models.Supplier{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Suppliers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/suppliers/{id}/contracts [options]
func (co Controller) OptionsSupplierContracts(c *gin.Context) {
	resourceOptionsDetail(co, c, models.Supplier{}, httputil.OptionsGet)
}

// @Summary		Create supplier
// @Description	Creates a new supplier
// @Tags			Suppliers
// @Produce		json
// @Success		201			{object}	SupplierResponse
// @Failure		400			{object}	SupplierResponse
// @Failure		500			{object}	SupplierResponse
// @Param			supplier	body		SupplierEditable	true	"Supplier"
// @Router			/v1/suppliers [post]
func (co Controller) CreateSupplier(c *gin.Context) {
	var editable SupplierEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &e,
		})
		return
	}

	supplier := editable.model()
	err = co.DB.Create(&supplier).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSupplier(c, supplier)
	c.JSON(http.StatusCreated, SupplierResponse{Data: &apiResource})
}

// @Summary		Get suppliers
// @Description	Returns a list of suppliers
// @Tags			Suppliers
// @Produce		json
// @Success		200				{object}	SupplierListResponse
// @Failure		400				{object}	SupplierListResponse
// @Failure		500				{object}	SupplierListResponse
// @Router			/v1/suppliers [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			contact_info	query	string	false	"Filter by contact info"
// @Param			search			query	string	false	"Search for this text in name and contact info"
// @Param			offset			query	uint	false	"The offset of the first supplier returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of suppliers to return. Defaults to 50."
func (co Controller) GetSuppliers(c *gin.Context) {
	var filter SupplierQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, SupplierListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := co.DB.Model(&models.Supplier{}).Order("suppliers.name ASC")
	q = stringFilter(q, setFields, "Name", "suppliers.name", filter.Name)
	q = stringFilter(q, setFields, "ContactInfo", "suppliers.contact_info", filter.ContactInfo)
	q = searchFilter(co.DB, q, filter.Search, "suppliers.name", "suppliers.contact_info")
	q = q.Session(&gorm.Session{})

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierListResponse{
			Error: &e,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var suppliers []models.Supplier
	err = q.Find(&suppliers).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Supplier, 0, len(suppliers))
	for _, supplier := range suppliers {
		data = append(data, newSupplier(c, supplier))
	}

	c.JSON(http.StatusOK, SupplierListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get supplier
// @Description	Returns a specific supplier
// @Tags			Suppliers
// @Produce		json
// @Success		200	{object}	SupplierResponse
// @Failure		400	{object}	SupplierResponse
// @Failure		404	{object}	SupplierResponse
// @Failure		500	{object}	SupplierResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/suppliers/{id} [get]
func (co Controller) GetSupplier(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &e,
		})
		return
	}

	var supplier models.Supplier
	err = co.DB.First(&supplier, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSupplier(c, supplier)
	c.JSON(http.StatusOK, SupplierResponse{Data: &apiResource})
}

// @Summary		Get contracts of a supplier
// @Description	Returns the contracts the supplier works on
// @Tags			Suppliers
// @Produce		json
// @Success		200		{object}	ContractListResponse
// @Failure		400		{object}	ContractListResponse
// @Failure		404		{object}	ContractListResponse
// @Failure		500		{object}	ContractListResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			offset	query		uint	false	"The offset of the first contract returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of contracts to return. Defaults to 50."
// @Router			/v1/suppliers/{id}/contracts [get]
func (co Controller) GetSupplierContracts(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractListResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.First(&models.Supplier{}, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractListResponse{
			Error: &e,
		})
		return
	}

	var filter ContractQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ContractListResponse{
			Error: &s,
		})
		return
	}
	filter.SupplierID = uri.ID

	co.listContracts(c, filter)
}

// @Summary		Update supplier
// @Description	Updates an existing supplier. Only values to be updated need to be specified.
// @Tags			Suppliers
// @Accept			json
// @Produce		json
// @Success		200			{object}	SupplierResponse
// @Failure		400			{object}	SupplierResponse
// @Failure		404			{object}	SupplierResponse
// @Failure		500			{object}	SupplierResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			supplier	body		SupplierEditable	true	"Supplier"
// @Router			/v1/suppliers/{id} [patch]
func (co Controller) UpdateSupplier(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &e,
		})
		return
	}

	var supplier models.Supplier
	err = co.DB.First(&supplier, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SupplierEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &e,
		})
		return
	}

	var data SupplierEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.Model(&supplier).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &e,
		})
		return
	}

	apiResource := newSupplier(c, supplier)
	c.JSON(http.StatusOK, SupplierResponse{Data: &apiResource})
}

// @Summary		Delete supplier
// @Description	Deletes a supplier. The supplier is removed from all contracts.
// @Tags			Suppliers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/suppliers/{id} [delete]
func (co Controller) DeleteSupplier(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var supplier models.Supplier
	err = co.DB.First(&supplier, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&supplier).Association("Contracts").Clear(); err != nil {
			return err
		}

		return tx.Delete(&supplier).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
