package v1

import (
	"net/http"

	"github.com/contract-ledger/backend/internal/httputil"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (co Controller) RegisterPaymentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsPayments)
		r.GET("", co.GetPayments)
		r.POST("", co.CreatePayment)
	}
	{
		r.OPTIONS("/:id", co.OptionsPaymentDetail)
		r.GET("/:id", co.GetPayment)
		r.PATCH("/:id", co.UpdatePayment)
		r.DELETE("/:id", co.DeletePayment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Router			/v1/payments [options]
func (co Controller) OptionsPayments(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Payments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [options]
func (co Controller) OptionsPaymentDetail(c *gin.Context) {
	resourceOptionsDetail(co, c, models.Payment{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create payment
// @Description	Creates a new payment
// @Tags			Payments
// @Produce		json
// @Success		201		{object}	PaymentResponse
// @Failure		400		{object}	PaymentResponse
// @Failure		500		{object}	PaymentResponse
// @Param			payment	body		PaymentEditable	true	"Payment"
// @Router			/v1/payments [post]
func (co Controller) CreatePayment(c *gin.Context) {
	var editable PaymentEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	payment := editable.model()
	err = co.DB.Create(&payment).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPayment(c, payment)
	c.JSON(http.StatusCreated, PaymentResponse{Data: &apiResource})
}

// @Summary		Get payments
// @Description	Returns a list of payments
// @Tags			Payments
// @Produce		json
// @Success		200				{object}	PaymentListResponse
// @Failure		400				{object}	PaymentListResponse
// @Failure		500				{object}	PaymentListResponse
// @Router			/v1/payments [get]
// @Param			contract		query	string	false	"Filter by contract ID"
// @Param			payment_type	query	string	false	"Filter by payment type"
// @Param			amount			query	string	false	"Filter by amount"
// @Param			from_date		query	string	false	"Payments on or after this date, YYYY-MM-DD"
// @Param			until_date		query	string	false	"Payments on or before this date, YYYY-MM-DD"
// @Param			offset			query	uint	false	"The offset of the first payment returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of payments to return. Defaults to 50."
func (co Controller) GetPayments(c *gin.Context) {
	var filter PaymentQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, PaymentListResponse{
			Error: &s,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()
	q := co.DB.Model(&models.Payment{}).
		Order("payments.date DESC, payments.created_at DESC").
		Where(&where, queryFields...)

	q = filter.DateRange.where(q, "payments.date")
	q = q.Session(&gorm.Session{})

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &e,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var payments []models.Payment
	err = q.Find(&payments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Payment, 0, len(payments))
	for _, payment := range payments {
		data = append(data, newPayment(c, payment))
	}

	c.JSON(http.StatusOK, PaymentListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get payment
// @Description	Returns a specific payment
// @Tags			Payments
// @Produce		json
// @Success		200	{object}	PaymentResponse
// @Failure		400	{object}	PaymentResponse
// @Failure		404	{object}	PaymentResponse
// @Failure		500	{object}	PaymentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [get]
func (co Controller) GetPayment(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	var payment models.Payment
	err = co.DB.First(&payment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPayment(c, payment)
	c.JSON(http.StatusOK, PaymentResponse{Data: &apiResource})
}

// @Summary		Update payment
// @Description	Updates an existing payment. Only values to be updated need to be specified.
// @Tags			Payments
// @Accept			json
// @Produce		json
// @Success		200		{object}	PaymentResponse
// @Failure		400		{object}	PaymentResponse
// @Failure		404		{object}	PaymentResponse
// @Failure		500		{object}	PaymentResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			payment	body		PaymentEditable	true	"Payment"
// @Router			/v1/payments/{id} [patch]
func (co Controller) UpdatePayment(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	var payment models.Payment
	err = co.DB.First(&payment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PaymentEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	var data PaymentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.Model(&payment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PaymentResponse{
			Error: &e,
		})
		return
	}

	apiResource := newPayment(c, payment)
	c.JSON(http.StatusOK, PaymentResponse{Data: &apiResource})
}

// @Summary		Delete payment
// @Description	Deletes a payment
// @Tags			Payments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/payments/{id} [delete]
func (co Controller) DeletePayment(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var payment models.Payment
	err = co.DB.First(&payment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&payment).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
