package v1

import (
	"net/http"

	"github.com/contract-ledger/backend/internal/httputil"
	"github.com/contract-ledger/backend/internal/models"
	ez_uuid "github.com/contract-ledger/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func (co Controller) RegisterContractRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsContracts)
		r.GET("", co.GetContracts)
		r.POST("", co.CreateContract)
	}
	{
		r.OPTIONS("/:id", co.OptionsContractDetail)
		r.GET("/:id", co.GetContract)
		r.PATCH("/:id", co.UpdateContract)
		r.DELETE("/:id", co.DeleteContract)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contracts
// @Success		204
// @Router			/v1/contracts [options]
func (co Controller) OptionsContracts(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contracts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contracts/{id} [options]
func (co Controller) OptionsContractDetail(c *gin.Context) {
	resourceOptionsDetail(co, c, models.Contract{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Create contract
// @Description	Creates a new contract
// @Tags			Contracts
// @Produce		json
// @Success		201			{object}	ContractResponse
// @Failure		400			{object}	ContractResponse
// @Failure		500			{object}	ContractResponse
// @Param			contract	body		ContractEditable	true	"Contract"
// @Router			/v1/contracts [post]
func (co Controller) CreateContract(c *gin.Context) {
	var editable ContractEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	contract := editable.model()
	err = co.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&contract).Error; err != nil {
			return err
		}

		return setSuppliers(tx, &contract, editable.SupplierIDs)
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	co.contractResponse(c, http.StatusCreated, ez_uuid.UUID{UUID: contract.ID})
}

// @Summary		Get contracts
// @Description	Returns a list of contracts with the sums of their payments, invoices and costs
// @Tags			Contracts
// @Produce		json
// @Success		200				{object}	ContractListResponse
// @Failure		400				{object}	ContractListResponse
// @Failure		500				{object}	ContractListResponse
// @Router			/v1/contracts [get]
// @Param			project_name	query	string	false	"Filter by project name"
// @Param			contract_number	query	string	false	"Filter by contract number"
// @Param			client			query	string	false	"Filter by client ID"
// @Param			supplier		query	string	false	"Filter by supplier ID"
// @Param			search			query	string	false	"Search for this text in project name and contract number"
// @Param			over_budget		query	bool	false	"Are the costs higher than the total amount?"
// @Param			offset			query	uint	false	"The offset of the first contract returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of contracts to return. Defaults to 50."
func (co Controller) GetContracts(c *gin.Context) {
	var filter ContractQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ContractListResponse{
			Error: &s,
		})
		return
	}

	co.listContracts(c, filter)
}

// listContracts writes the list of contracts matching the filter.
func (co Controller) listContracts(c *gin.Context, filter ContractQueryFilter) {
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	q := co.DB.Model(&models.Contract{}).Order("contracts.created_at ASC, contracts.contract_number ASC")
	q = stringFilter(q, setFields, "ProjectName", "contracts.project_name", filter.ProjectName)
	q = stringFilter(q, setFields, "ContractNumber", "contracts.contract_number", filter.ContractNumber)
	q = searchFilter(co.DB, q, filter.Search, "contracts.project_name", "contracts.contract_number")

	if !filter.ClientID.IsNil() {
		q = q.Where("contracts.client_id = ?", filter.ClientID.UUID)
	}

	if !filter.SupplierID.IsNil() {
		q = q.Where("contracts.id IN (?)", co.DB.Table("contract_suppliers").Select("contract_id").Where("supplier_id = ?", filter.SupplierID.UUID))
	}

	if slices.Contains(setFields, "OverBudget") {
		ids, err := overBudgetIDs(q, filter.OverBudget)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ContractListResponse{
				Error: &e,
			})
			return
		}
		q = q.Where("contracts.id IN ?", ids)
	}

	q = q.Session(&gorm.Session{})

	var count int64
	err := q.Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractListResponse{
			Error: &e,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var contracts []models.Contract
	err = preloadContract(q).Find(&contracts).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Contract, 0, len(contracts))
	for _, contract := range contracts {
		data = append(data, newContract(c, contract))
	}

	c.JSON(http.StatusOK, ContractListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get contract
// @Description	Returns a specific contract with the sums of its payments, invoices and costs
// @Tags			Contracts
// @Produce		json
// @Success		200	{object}	ContractResponse
// @Failure		400	{object}	ContractResponse
// @Failure		404	{object}	ContractResponse
// @Failure		500	{object}	ContractResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contracts/{id} [get]
func (co Controller) GetContract(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	co.contractResponse(c, http.StatusOK, uri.ID)
}

// @Summary		Update contract
// @Description	Updates an existing contract. Only values to be updated need to be specified. If supplier_ids is set, it replaces all suppliers of the contract.
// @Tags			Contracts
// @Accept			json
// @Produce		json
// @Success		200			{object}	ContractResponse
// @Failure		400			{object}	ContractResponse
// @Failure		404			{object}	ContractResponse
// @Failure		500			{object}	ContractResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contract	body		ContractEditable	true	"Contract"
// @Router			/v1/contracts/{id} [patch]
func (co Controller) UpdateContract(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	var contract models.Contract
	err = co.DB.First(&contract, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ContractEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	var data ContractEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	// Suppliers are an association, not a column
	updateSuppliers := slices.Contains(updateFields, any("SupplierIDs"))
	updateFields = slices.DeleteFunc(updateFields, func(f any) bool {
		return f == "SupplierIDs"
	})

	err = co.DB.Transaction(func(tx *gorm.DB) error {
		if len(updateFields) > 0 {
			err := tx.Model(&contract).Select("", updateFields...).Updates(data.model()).Error
			if err != nil {
				return err
			}
		}

		if updateSuppliers {
			return setSuppliers(tx, &contract, data.SupplierIDs)
		}

		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	co.contractResponse(c, http.StatusOK, uri.ID)
}

// @Summary		Delete contract
// @Description	Deletes a contract with all its payments, invoices and costs
// @Tags			Contracts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contracts/{id} [delete]
func (co Controller) DeleteContract(c *gin.Context) {
	uri, err := bindURI(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var contract models.Contract
	err = co.DB.First(&contract, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = co.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&contract).Association("Suppliers").Clear(); err != nil {
			return err
		}

		return tx.Delete(&contract).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// contractResponse loads the contract with all associations and writes it.
func (co Controller) contractResponse(c *gin.Context, httpStatus int, id ez_uuid.UUID) {
	var contract models.Contract
	err := preloadContract(co.DB).First(&contract, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContractResponse{
			Error: &e,
		})
		return
	}

	apiResource := newContract(c, contract)
	c.JSON(httpStatus, ContractResponse{Data: &apiResource})
}

// preloadContract loads everything newContract needs.
// overBudgetIDs returns the IDs of the contracts matching q whose budget
// state equals overBudget.
//
// The sums are compared in decimal, SQLite would compare them as floats.
func overBudgetIDs(q *gorm.DB, overBudget bool) ([]uuid.UUID, error) {
	var contracts []models.Contract
	err := q.Session(&gorm.Session{}).Select("contracts.id", "contracts.total_amount").Preload("Costs").Find(&contracts).Error
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(contracts))
	for _, contract := range contracts {
		if contract.IsOverBudget() == overBudget {
			ids = append(ids, contract.ID)
		}
	}
	return ids, nil
}

func preloadContract(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Suppliers", func(db *gorm.DB) *gorm.DB {
			return db.Order("suppliers.name ASC")
		}).
		Preload("Payments").
		Preload("Invoices").
		Preload("Costs")
}

// setSuppliers replaces the suppliers of the contract.
func setSuppliers(tx *gorm.DB, contract *models.Contract, ids []uuid.UUID) error {
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(unique, id) {
			unique = append(unique, id)
		}
	}

	if len(unique) == 0 {
		return tx.Model(contract).Association("Suppliers").Clear()
	}

	var suppliers []models.Supplier
	err := tx.Where("suppliers.id IN ?", unique).Find(&suppliers).Error
	if err != nil {
		return err
	}

	if len(suppliers) != len(unique) {
		return models.ErrSupplierInvalid
	}

	return tx.Model(contract).Association("Suppliers").Replace(suppliers)
}
