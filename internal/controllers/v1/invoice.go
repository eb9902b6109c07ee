package v1

import (
	"net/http"

	"github.com/contract-ledger/backend/internal/httputil"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (co Controller) RegisterInvoiceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsInvoices)
		r.GET("", co.GetInvoices)
		r.POST("", co.CreateInvoice)
	}
	{
		r.OPTIONS("/:id", co.OptionsInvoiceDetail)
		r.GET("/:id", co.GetInvoice)
		r.PATCH("/:id", co.UpdateInvoice)
		r.DELETE("/:id", co.DeleteInvoice)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Router			/v1/invoices [options]
func (co Controller) OptionsInvoices(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [options]
func (co Controller) OptionsInvoiceDetail(c *gin.Context) {
	resourceOptionsDetail(co, c, models.Invoice{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create invoice
// @Description	Creates a new invoice
// @Tags			Invoices
// @Produce		json
// @Success		201		{object}	InvoiceResponse
// @Failure		400		{object}	InvoiceResponse
// @Failure		500		{object}	InvoiceResponse
// @Param			invoice	body		InvoiceEditable	true	"Invoice"
// @Router			/v1/invoices [post]
func (co Controller) CreateInvoice(c *gin.Context) {
	var editable InvoiceEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	invoice := editable.model()
	err = co.DB.Create(&invoice).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	apiResource := newInvoice(c, invoice)
	c.JSON(http.StatusCreated, InvoiceResponse{Data: &apiResource})
}

// @Summary		Get invoices
// @Description	Returns a list of invoices
// @Tags			Invoices
// @Produce		json
// @Success		200				{object}	InvoiceListResponse
// @Failure		400				{object}	InvoiceListResponse
// @Failure		500				{object}	InvoiceListResponse
// @Router			/v1/invoices [get]
// @Param			contract		query	string	false	"Filter by contract ID"
// @Param			invoice_type	query	string	false	"Filter by invoice type"
// @Param			amount			query	string	false	"Filter by amount"
// @Param			from_date		query	string	false	"Invoices on or after this date, YYYY-MM-DD"
// @Param			until_date		query	string	false	"Invoices on or before this date, YYYY-MM-DD"
// @Param			offset			query	uint	false	"The offset of the first invoice returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of invoices to return. Defaults to 50."
func (co Controller) GetInvoices(c *gin.Context) {
	var filter InvoiceQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, InvoiceListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := co.DB.Model(&models.Invoice{}).
		Order("invoices.date DESC, invoices.created_at DESC").
		Where(&where, queryFields...)

	q = filter.DateRange.where(q, "invoices.date")
	q = q.Session(&gorm.Session{})

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var invoices []models.Invoice
	err = q.Find(&invoices).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		data = append(data, newInvoice(c, invoice))
	}

	c.JSON(http.StatusOK, InvoiceListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get invoice
// @Description	Returns a specific invoice
// @Tags			Invoices
// @Produce		json
// @Success		200	{object}	InvoiceResponse
// @Failure		400	{object}	InvoiceResponse
// @Failure		404	{object}	InvoiceResponse
// @Failure		500	{object}	InvoiceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [get]
func (co Controller) GetInvoice(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	var invoice models.Invoice
	err = co.DB.First(&invoice, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	apiResource := newInvoice(c, invoice)
	c.JSON(http.StatusOK, InvoiceResponse{Data: &apiResource})
}

// @Summary		Update invoice
// @Description	Updates an existing invoice. Only values to be updated need to be specified.
// @Tags			Invoices
// @Accept			json
// @Produce		json
// @Success		200		{object}	InvoiceResponse
// @Failure		400		{object}	InvoiceResponse
// @Failure		404		{object}	InvoiceResponse
// @Failure		500		{object}	InvoiceResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			invoice	body		InvoiceEditable	true	"Invoice"
// @Router			/v1/invoices/{id} [patch]
func (co Controller) UpdateInvoice(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	var invoice models.Invoice
	err = co.DB.First(&invoice, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InvoiceEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	var data InvoiceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.Model(&invoice).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvoiceResponse{
			Error: &e,
		})
		return
	}

	apiResource := newInvoice(c, invoice)
	c.JSON(http.StatusOK, InvoiceResponse{Data: &apiResource})
}

// @Summary		Delete invoice
// @Description	Deletes a invoice
// @Tags			Invoices
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/invoices/{id} [delete]
func (co Controller) DeleteInvoice(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var invoice models.Invoice
	err = co.DB.First(&invoice, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&invoice).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
