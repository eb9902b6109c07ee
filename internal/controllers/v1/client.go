package v1

import (
	"net/http"

	"github.com/contract-ledger/backend/internal/httputil"
	"github.com/contract-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func (co Controller) RegisterClientRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsClients)
		r.GET("", co.GetClients)
		r.POST("", co.CreateClient)
	}
	{
		r.OPTIONS("/:id", co.OptionsClientDetail)
		r.GET("/:id", co.GetClient)
		r.PATCH("/:id", co.UpdateClient)
		r.DELETE("/:id", co.DeleteClient)
	}
	{
		r.OPTIONS("/:id/contracts", co.OptionsClientContracts)
		r.GET("/:id/contracts", co.GetClientContracts)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Clients
// @Success		204
// @Router			/v1/clients [options]
func (co Controller) OptionsClients(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Clients
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/clients/{id} [options]
func (co Controller) OptionsClientDetail(c *gin.Context) {
	resourceOptionsDetail(co, c, models.Client{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Clients
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/clients/{id}/contracts [options]
func (co Controller) OptionsClientContracts(c *gin.Context) {
	resourceOptionsDetail(co, c, models.Client{}, httputil.OptionsGet)
}

// @Summary		Create client
// @Description	Creates a new client
// @Tags			Clients
// @Produce		json
// @Success		201			{object}	ClientResponse
// @Failure		400			{object}	ClientResponse
// @Failure		500			{object}	ClientResponse
// @Param			client		body		ClientEditable	true	"Client"
// @Router			/v1/clients [post]
func (co Controller) CreateClient(c *gin.Context) {
	var editable ClientEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientResponse{
			Error: &e,
		})
		return
	}

	client := editable.model()
	err = co.DB.Create(&client).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientResponse{
			Error: &e,
		})
		return
	}

	apiResource := newClient(c, client)
	c.JSON(http.StatusCreated, ClientResponse{Data: &apiResource})
}

// @Summary		Get clients
// @Description	Returns a list of clients
// @Tags			Clients
// @Produce		json
// @Success		200				{object}	ClientListResponse
// @Failure		400				{object}	ClientListResponse
// @Failure		500				{object}	ClientListResponse
// @Router			/v1/clients [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			contact_info	query	string	false	"Filter by contact info"
// @Param			search			query	string	false	"Search for this text in name and contact info"
// @Param			offset			query	uint	false	"The offset of the first client returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of clients to return. Defaults to 50."
func (co Controller) GetClients(c *gin.Context) {
	var filter ClientQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ClientListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := co.DB.Model(&models.Client{}).Order("clients.name ASC")
	q = stringFilter(q, setFields, "Name", "clients.name", filter.Name)
	q = stringFilter(q, setFields, "ContactInfo", "clients.contact_info", filter.ContactInfo)
	q = searchFilter(co.DB, q, filter.Search, "clients.name", "clients.contact_info")
	q = q.Session(&gorm.Session{})

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientListResponse{
			Error: &e,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var clients []models.Client
	err = q.Find(&clients).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Client, 0, len(clients))
	for _, client := range clients {
		data = append(data, newClient(c, client))
	}

	c.JSON(http.StatusOK, ClientListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get client
// @Description	Returns a specific client
// @Tags			Clients
// @Produce		json
// @Success		200	{object}	ClientResponse
// @Failure		400	{object}	ClientResponse
// @Failure		404	{object}	ClientResponse
// @Failure		500	{object}	ClientResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/clients/{id} [get]
func (co Controller) GetClient(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientResponse{
			Error: &e,
		})
		return
	}

	var client models.Client
	err = co.DB.First(&client, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientResponse{
			Error: &e,
		})
		return
	}

	apiResource := newClient(c, client)
	c.JSON(http.StatusOK, ClientResponse{Data: &apiResource})
}

// @Summary		Get contracts of a client
// @Description	Returns the contracts signed with the client
// @Tags			Clients
// @Produce		json
// @Success		200		{object}	ContractListResponse
// @Failure		400		{object}	ContractListResponse
// @Failure		404		{object}	ContractListResponse
// @Failure		500		{object}	ContractListResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			offset	query		uint	false	"The offset of the first contract returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of contracts to return. Defaults to 50."
// @Router			/v1/clients/{id}/contracts [get]
func (co Controller) GetClientContracts(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractListResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.First(&models.Client{}, uri.ID).Error
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
	filter.ClientID = uri.ID

	co.listContracts(c, filter)
}

// @Summary		Update client
// @Description	Updates an existing client. Only values to be updated need to be specified.
// @Tags			Clients
// @Accept			json
// @Produce		json
// @Success		200			{object}	ClientResponse
// @Failure		400			{object}	ClientResponse
// @Failure		404			{object}	ClientResponse
// @Failure		500			{object}	ClientResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			client		body		ClientEditable	true	"Client"
// @Router			/v1/clients/{id} [patch]
func (co Controller) UpdateClient(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientResponse{
			Error: &e,
		})
		return
	}

	var client models.Client
	err = co.DB.First(&client, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientResponse{
			Error: &e,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ClientEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientResponse{
			Error: &e,
		})
		return
	}

	var data ClientEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientResponse{
			Error: &e,
		})
		return
	}

	err = co.DB.Model(&client).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ClientResponse{
			Error: &e,
		})
		return
	}

	apiResource := newClient(c, client)
	c.JSON(http.StatusOK, ClientResponse{Data: &apiResource})
}

// @Summary		Delete client
// @Description	Deletes a client. Clients that still have contracts cannot be deleted.
// @Tags			Clients
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/clients/{id} [delete]
func (co Controller) DeleteClient(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var client models.Client
	err = co.DB.First(&client, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Delete(&client).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
