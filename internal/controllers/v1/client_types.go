package v1

import (
	"fmt"
	"strings"

	"github.com/contract-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ClientEditable struct {
	Name        string `json:"name" example:"City of Riverside" default:""`                     // Name of the client
	ContactInfo string `json:"contact_info" example:"procurement@riverside.example" default:""` // How to reach the client
}

func (editable ClientEditable) model() models.Client {
	return models.Client{
		Name:        strings.TrimSpace(editable.Name),
		ContactInfo: strings.TrimSpace(editable.ContactInfo),
	}
}

type ClientLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/clients/4f4a5a6e-1c3b-4bd8-9c6e-3f7d0b8c5a21"`                // The client itself
	Contracts string `json:"contracts" example:"https://example.com/api/v1/clients/4f4a5a6e-1c3b-4bd8-9c6e-3f7d0b8c5a21/contracts"` // Contracts signed with the client
}

type Client struct {
	models.DefaultModel
	ClientEditable
	Links ClientLinks `json:"links"`
}

func newClient(c *gin.Context, model models.Client) Client {
	url := c.GetString(string(models.DBContextURL))

	return Client{
		DefaultModel: model.DefaultModel,
		ClientEditable: ClientEditable{
			Name:        model.Name,
			ContactInfo: model.ContactInfo,
		},
		Links: ClientLinks{
			Self:      fmt.Sprintf("%s/v1/clients/%s", url, model.ID),
			Contracts: fmt.Sprintf("%s/v1/clients/%s/contracts", url, model.ID),
		},
	}
}

type ClientResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Client `json:"data"`                                                          // The resource
}

type ClientListResponse struct {
	Data       []Client    `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ClientQueryFilter struct {
	Name        string `form:"name" filterField:"false"`         // By name
	ContactInfo string `form:"contact_info" filterField:"false"` // By contact info
	Search      string `form:"search" filterField:"false"`       // By string in name or contact info
	Offset      uint   `form:"offset" filterField:"false"`       // The offset of the first client returned. Defaults to 0.
	Limit       int    `form:"limit" filterField:"false"`        // Maximum number of clients to return. Defaults to 50.
}
